package murty

import "github.com/arfken-labs/mht/assign"

// Result is one yielded solution: the handle of the problem it solves, the
// full arc selection, and its total cost.
type Result[H comparable] struct {
	Handle   H
	Solution []assign.Arc
	Cost     float64
}

// pair is one problem/solution node in the queue's internal forest of
// partitioned problems (§4.2's ⟨P, S⟩ pairs).
type pair[H comparable] struct {
	handle H

	// baseArcs are arcs forced into every descendant of this pair; baseCost
	// is their summed cost.
	baseArcs []assign.Arc
	baseCost float64

	// residual is the arc list still open to the solver (P in the spec).
	residual []assign.Arc

	// currentCost is the cost this pair would report if popped right now:
	// inherited from the parent until solved, then the true solved cost.
	currentCost float64
	solved      bool

	// solvedResidual/solvedResidualCost cache the solver's answer for
	// residual once solved is true.
	solvedResidual     []assign.Arc
	solvedResidualCost float64
}

// fullSolution returns baseArcs ++ solvedResidual, the complete matching
// this pair represents once solved.
func (p *pair[H]) fullSolution() []assign.Arc {
	out := make([]assign.Arc, 0, len(p.baseArcs)+len(p.solvedResidual))
	out = append(out, p.baseArcs...)
	out = append(out, p.solvedResidual...)

	return out
}

func cloneArcs(arcs []assign.Arc) []assign.Arc {
	out := make([]assign.Arc, len(arcs))
	copy(out, arcs)

	return out
}
