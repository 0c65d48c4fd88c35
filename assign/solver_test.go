package assign_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/arfken-labs/mht/assign"
)

// AssignSuite exercises the Hungarian solver's contract: optimality,
// optional unassignment, duplicate-arc handling, and infeasibility.
type AssignSuite struct {
	suite.Suite
}

func TestAssignSuite(t *testing.T) {
	suite.Run(t, new(AssignSuite))
}

func (s *AssignSuite) TestEmptyInput() {
	cost, selected, err := assign.Solve(nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.0, cost)
	require.Empty(s.T(), selected)
}

func (s *AssignSuite) TestSimpleSquare() {
	arcs := []assign.Arc{
		{Row: 0, Col: 0, Cost: 4},
		{Row: 0, Col: 1, Cost: 2},
		{Row: 1, Col: 0, Cost: 3},
		{Row: 1, Col: 1, Cost: 1},
	}
	cost, selected, err := assign.Solve(arcs)
	require.NoError(s.T(), err)
	// Optimal: row0->col1 (2) + row1->col0... wait check by brute force below instead.
	require.Len(s.T(), selected, 2)
	require.Equal(s.T(), bruteForceCost(arcs, 2, 2), cost)
}

func (s *AssignSuite) TestDuplicateArcsKeepCheapest() {
	arcs := []assign.Arc{
		{Row: 0, Col: 0, Cost: 9},
		{Row: 0, Col: 0, Cost: 1},
		{Row: 1, Col: 1, Cost: 5},
	}
	cost, selected, err := assign.Solve(arcs)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 6.0, cost)
	for _, a := range selected {
		if a.Row == 0 && a.Col == 0 {
			require.Equal(s.T(), 1.0, a.Cost)
		}
	}
}

func (s *AssignSuite) TestOptionalUnassignmentCheaperThanMatch() {
	// Row 0 can match col 0 at cost 100, or stay unassigned at cost 1.
	arcs := []assign.Arc{
		{Row: 0, Col: 0, Cost: 100},
		{Row: 0, Col: assign.Unassigned, Cost: 1, Payload: "row0-drop"},
		{Row: assign.Unassigned, Col: 0, Cost: 1, Payload: "col0-drop"},
	}
	cost, selected, err := assign.Solve(arcs)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2.0, cost)

	var sawRowDrop, sawColDrop bool
	for _, a := range selected {
		if a.Row == 0 && a.Col == assign.Unassigned {
			sawRowDrop = true
			require.Equal(s.T(), "row0-drop", a.Payload)
		}
		if a.Row == assign.Unassigned && a.Col == 0 {
			sawColDrop = true
			require.Equal(s.T(), "col0-drop", a.Payload)
		}
	}
	require.True(s.T(), sawRowDrop)
	require.True(s.T(), sawColDrop)
}

func (s *AssignSuite) TestUnsolvableWhenNoUnassignmentOffered() {
	// Two rows can only both bind to the same single column, with no
	// unassignment escape hatch: infeasible.
	arcs := []assign.Arc{
		{Row: 0, Col: 0, Cost: 1},
		{Row: 1, Col: 0, Cost: 1},
	}
	_, _, err := assign.Solve(arcs)
	require.ErrorIs(s.T(), err, assign.ErrUnsolvable)
}

func (s *AssignSuite) TestRectangularWithUnassignment() {
	// 3 rows, 1 column: exactly one row matches, the other two must drop.
	arcs := []assign.Arc{
		{Row: 0, Col: 0, Cost: 5},
		{Row: 1, Col: 0, Cost: 2},
		{Row: 2, Col: 0, Cost: 9},
		{Row: 0, Col: assign.Unassigned, Cost: 3},
		{Row: 1, Col: assign.Unassigned, Cost: 3},
		{Row: 2, Col: assign.Unassigned, Cost: 3},
	}
	cost, selected, err := assign.Solve(arcs)
	require.NoError(s.T(), err)
	// Best: row1 takes col0 (2), rows 0 and 2 drop (3 each) = 8.
	require.Equal(s.T(), 8.0, cost)
	require.Len(s.T(), selected, 3)
}

// TestOptimalityAgainstBruteForce verifies assignment optimality on small
// random square problems, per §8's law "for every arc set A, solve(A)
// produces a matching whose cost is no greater than any other valid
// matching of A".
func (s *AssignSuite) TestOptimalityAgainstBruteForce() {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 30; trial++ {
		n := 1 + rng.Intn(6) // up to 6x6, per §8's "<= 7x7" bound
		arcs := make([]assign.Arc, 0, n*n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				arcs = append(arcs, assign.Arc{Row: i, Col: j, Cost: float64(rng.Intn(20))})
			}
		}
		cost, _, err := assign.Solve(arcs)
		require.NoError(s.T(), err)
		require.Equal(s.T(), bruteForceCost(arcs, n, n), cost)
	}
}

// bruteForceCost enumerates all permutations assigning rows to columns
// (allowing no unassignment) over a dense square arc set and returns the
// minimum total cost, for cross-checking Solve on small inputs.
func bruteForceCost(arcs []assign.Arc, n, m int) float64 {
	cost := make([][]float64, n)
	for i := range cost {
		cost[i] = make([]float64, m)
		for j := range cost[i] {
			cost[i][j] = math.Inf(1)
		}
	}
	for _, a := range arcs {
		if a.Row >= 0 && a.Row < n && a.Col >= 0 && a.Col < m && a.Cost < cost[a.Row][a.Col] {
			cost[a.Row][a.Col] = a.Cost
		}
	}
	if n != m {
		return math.NaN() // bruteForceCost only supports square comparisons
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	best := math.Inf(1)
	permute(perm, 0, func(p []int) {
		total := 0.0
		for i, j := range p {
			total += cost[i][j]
		}
		if total < best {
			best = total
		}
	})

	return best
}

func permute(a []int, k int, visit func([]int)) {
	if k == len(a) {
		visit(a)
		return
	}
	for i := k; i < len(a); i++ {
		a[k], a[i] = a[i], a[k]
		permute(a, k+1, visit)
		a[k], a[i] = a[i], a[k]
	}
}
