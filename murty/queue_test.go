package murty_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/arfken-labs/mht/assign"
	"github.com/arfken-labs/mht/murty"
)

type MurtySuite struct {
	suite.Suite
}

func TestMurtySuite(t *testing.T) {
	suite.Run(t, new(MurtySuite))
}

// threeByThreeArcs is a small dense problem with several distinct total
// costs, used to check ranked enumeration and completeness.
func threeByThreeArcs() []assign.Arc {
	costs := [3][3]float64{
		{9, 2, 7},
		{6, 4, 3},
		{5, 8, 1},
	}
	var arcs []assign.Arc
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			arcs = append(arcs, assign.Arc{Row: r, Col: c, Cost: costs[r][c], Payload: r*10 + c})
		}
	}

	return arcs
}

func (s *MurtySuite) TestEnumerationIsNonDecreasing() {
	q := murty.New[string]()
	q.Add("p1", threeByThreeArcs())

	var last float64 = math.Inf(-1)
	var count int
	for {
		res, ok, err := q.Pop()
		require.NoError(s.T(), err)
		if !ok {
			break
		}
		require.GreaterOrEqual(s.T(), res.Cost, last)
		last = res.Cost
		require.Equal(s.T(), "p1", res.Handle)
		count++
		if count > 6 {
			break // 3! = 6 total permutations; stop once exhausted
		}
	}
	require.Equal(s.T(), 6, count)
}

func (s *MurtySuite) TestFirstPopIsOptimal() {
	q := murty.New[int]()
	q.Add(1, threeByThreeArcs())

	res, ok, err := q.Pop()
	require.NoError(s.T(), err)
	require.True(s.T(), ok)

	best, _, err := assign.Solve(threeByThreeArcs())
	require.NoError(s.T(), err)
	require.Equal(s.T(), best, res.Cost)
}

func (s *MurtySuite) TestPartitionCoversAllAlternatives() {
	// Enumerate via Murty and via brute force; the sets of total costs must
	// match exactly (§8: "union over child problems... equals the parent's
	// solution set minus the solution just returned").
	q := murty.New[int]()
	q.Add(0, threeByThreeArcs())

	var gotCosts []float64
	for {
		res, ok, err := q.Pop()
		require.NoError(s.T(), err)
		if !ok {
			break
		}
		gotCosts = append(gotCosts, res.Cost)
	}

	wantCosts := allPermutationCosts(threeByThreeArcs(), 3)
	require.ElementsMatch(s.T(), wantCosts, gotCosts)
}

func (s *MurtySuite) TestPeekCostMatchesPop() {
	q := murty.New[int]()
	q.Add(0, threeByThreeArcs())

	peeked, ok, err := q.PeekCost()
	require.NoError(s.T(), err)
	require.True(s.T(), ok)

	popped, ok, err := q.Pop()
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
	require.Equal(s.T(), peeked, popped.Cost)
}

func (s *MurtySuite) TestMultipleProblemsInterleave() {
	q := murty.New[string]()
	q.Add("cheap", []assign.Arc{{Row: 0, Col: 0, Cost: 1}})
	q.Add("expensive", []assign.Arc{{Row: 0, Col: 0, Cost: 100}})

	first, ok, err := q.Pop()
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
	require.Equal(s.T(), "cheap", first.Handle)

	second, ok, err := q.Pop()
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
	require.Equal(s.T(), "expensive", second.Handle)
}

func (s *MurtySuite) TestRemoveHandleDropsDescendants() {
	q := murty.New[string]()
	q.Add("a", threeByThreeArcs())
	q.Add("b", []assign.Arc{{Row: 0, Col: 0, Cost: 100}})

	// Pop once to spawn children of "a" ("a" costs 9, "b" costs 100).
	_, ok, err := q.Pop()
	require.NoError(s.T(), err)
	require.True(s.T(), ok)

	q.RemoveHandle("a")

	for !q.Empty() {
		res, ok, err := q.Pop()
		require.NoError(s.T(), err)
		require.True(s.T(), ok)
		require.Equal(s.T(), "b", res.Handle)
	}
}

func (s *MurtySuite) TestEmptyQueue() {
	q := murty.New[int]()
	require.True(s.T(), q.Empty())
	_, ok, err := q.Pop()
	require.NoError(s.T(), err)
	require.False(s.T(), ok)
}

// TestPartitionHandlesDuplicateCellArcs covers §4.4's common shape: two
// distinct arcs landing on the same (Row, Col) cell, with the cheaper one
// not first in construction order (mirroring buildArcs, which always lists
// a new tree's START child before its FALARM child even though FALARM often
// wins on cost). The rank-2 alternative must still be reachable, and must
// not be a re-derivation of the rank-1 solution.
func (s *MurtySuite) TestPartitionHandlesDuplicateCellArcs() {
	q := murty.New[int]()
	q.Add(0, []assign.Arc{
		{Row: 0, Col: 0, Cost: -1, Payload: "start"},
		{Row: 0, Col: 0, Cost: -5, Payload: "falarm"},
		{Row: 1, Col: 1, Cost: 0, Payload: "other"},
	})

	first, ok, err := q.Pop()
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
	require.Equal(s.T(), -5.0, first.Cost)
	require.Equal(s.T(), "falarm", first.Solution[0].Payload)

	second, ok, err := q.Pop()
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
	require.NotEqual(s.T(), first.Cost, second.Cost)
	require.Equal(s.T(), -1.0, second.Cost)

	var sawStart bool
	for _, a := range second.Solution {
		if a.Payload == "start" {
			sawStart = true
		}
	}
	require.True(s.T(), sawStart, "rank-2 solution must select the surviving duplicate arc, not re-derive rank-1")
}

func (s *MurtySuite) TestUnsolvableProblemIsSilentlyDropped() {
	q := murty.New[int]()
	q.Add(0, []assign.Arc{
		{Row: 0, Col: 0, Cost: 1},
		{Row: 1, Col: 0, Cost: 1},
	}) // two rows competing for one column, no unassignment offered

	_, ok, err := q.Pop()
	require.NoError(s.T(), err)
	require.False(s.T(), ok)
}

// allPermutationCosts enumerates every permutation's total cost for an n x n
// dense arc set.
func allPermutationCosts(arcs []assign.Arc, n int) []float64 {
	cost := make([][]float64, n)
	for i := range cost {
		cost[i] = make([]float64, n)
	}
	for _, a := range arcs {
		cost[a.Row][a.Col] = a.Cost
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var out []float64
	var permute func(k int)
	permute = func(k int) {
		if k == n {
			total := 0.0
			for i, j := range perm {
				total += cost[i][j]
			}
			out = append(out, total)
			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			permute(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	permute(0)

	return out
}
