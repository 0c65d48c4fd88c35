package assign_test

import (
	"math/rand"
	"testing"

	"github.com/arfken-labs/mht/assign"
)

// BenchmarkSolveDense measures solver throughput on a dense square problem,
// mirroring the teacher's dense-graph benchmarks for Dijkstra/Dinic.
func BenchmarkSolveDense(b *testing.B) {
	const n = 50
	r := rand.New(rand.NewSource(7))
	arcs := make([]assign.Arc, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			arcs = append(arcs, assign.Arc{Row: i, Col: j, Cost: r.Float64() * 100})
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := assign.Solve(arcs); err != nil {
			b.Fatal(err)
		}
	}
}
