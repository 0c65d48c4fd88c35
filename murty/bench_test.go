package murty_test

import (
	"math/rand"
	"testing"

	"github.com/arfken-labs/mht/assign"
	"github.com/arfken-labs/mht/murty"
)

// BenchmarkPopFirstTen measures the cost of draining the first ten ranked
// solutions from a moderately sized dense problem.
func BenchmarkPopFirstTen(b *testing.B) {
	const n = 8
	r := rand.New(rand.NewSource(3))
	var arcs []assign.Arc
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			arcs = append(arcs, assign.Arc{Row: i, Col: j, Cost: r.Float64() * 50})
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := murty.New[int]()
		q.Add(0, arcs)
		for k := 0; k < 10; k++ {
			if _, ok, err := q.Pop(); err != nil || !ok {
				break
			}
		}
	}
}
