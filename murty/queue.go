package murty

import (
	"errors"
	"math"

	"github.com/arfken-labs/mht/assign"
)

// Queue yields solutions from any number of assignment problems in
// non-decreasing cost order. The zero value is not usable; construct one
// with New. A Queue is per-instance scratch (§5) and must not be shared
// across concurrent MHT engines.
type Queue[H comparable] struct {
	pairs []*pair[H]
}

// New returns an empty ranked-assignments queue.
func New[H comparable]() *Queue[H] {
	return &Queue[H]{}
}

// Add registers a new assignment problem under handle. arcs is copied; the
// caller's slice is never mutated or aliased. The problem is solved lazily,
// on the first Pop/PeekCost that needs its cost.
func (q *Queue[H]) Add(handle H, arcs []assign.Arc) {
	q.pairs = append(q.pairs, &pair[H]{
		handle:      handle,
		residual:    cloneArcs(arcs),
		currentCost: math.Inf(-1), // unknown yet; force a solve before it can win a comparison
	})
}

// RemoveHandle drops every pair (root or partitioned descendant) tagged with
// handle.
func (q *Queue[H]) RemoveHandle(handle H) {
	kept := q.pairs[:0]
	for _, p := range q.pairs {
		if p.handle != handle {
			kept = append(kept, p)
		}
	}
	q.pairs = kept
}

// RemoveAll empties the queue.
func (q *Queue[H]) RemoveAll() {
	q.pairs = nil
}

// Empty reports whether the queue holds no pairs.
func (q *Queue[H]) Empty() bool { return len(q.pairs) == 0 }

// PeekCost returns the cost of the next solution Pop would return, without
// removing it. ok is false if the queue is empty (after dropping any
// unsolvable pairs it discovers along the way).
func (q *Queue[H]) PeekCost() (cost float64, ok bool, err error) {
	p, err := q.resolveBest()
	if err != nil {
		return 0, false, err
	}
	if p == nil {
		return 0, false, nil
	}

	return p.baseCost + p.solvedResidualCost, true, nil
}

// Pop removes and returns the globally cheapest solution across all
// registered problems, then partitions the popped pair into child pairs per
// §4.2's partition rule. ok is false once the queue is empty.
func (q *Queue[H]) Pop() (result Result[H], ok bool, err error) {
	p, err := q.resolveBest()
	if err != nil {
		return Result[H]{}, false, err
	}
	if p == nil {
		return Result[H]{}, false, nil
	}

	q.removePair(p)

	result = Result[H]{
		Handle:   p.handle,
		Solution: p.fullSolution(),
		Cost:     p.baseCost + p.solvedResidualCost,
	}

	q.partition(p)

	return result, true, nil
}

// resolveBest repeatedly solves the best-ranked unsolved pair until the
// globally best pair is solved, dropping any pair the solver reports as
// unsolvable. It returns nil if the queue becomes empty.
func (q *Queue[H]) resolveBest() (*pair[H], error) {
	for {
		if len(q.pairs) == 0 {
			return nil, nil
		}

		best := q.bestIndex()
		p := q.pairs[best]

		if p.solved {
			return p, nil
		}

		cost, solution, solveErr := assign.Solve(p.residual)
		if errors.Is(solveErr, assign.ErrUnsolvable) {
			q.pairs = append(q.pairs[:best], q.pairs[best+1:]...)
			continue
		}

		full := p.baseCost + cost
		if full < p.currentCost-costRegressionTolerance {
			return nil, ErrCostRegression
		}

		p.solvedResidual = solution
		p.solvedResidualCost = cost
		p.currentCost = full
		p.solved = true
		// Another pair may now be cheaper than this freshly solved one;
		// re-scan rather than assume it is still the best.
	}
}

// bestIndex finds the pair with the smallest current cost, breaking ties by
// preferring solved pairs over unsolved ones, then by smaller residual arc
// count (§4.2 step 1).
func (q *Queue[H]) bestIndex() int {
	best := 0
	for i := 1; i < len(q.pairs); i++ {
		if better(q.pairs[i], q.pairs[best]) {
			best = i
		}
	}

	return best
}

// better reports whether a should be preferred over b when scanning for the
// next pair to resolve or return.
func better[H comparable](a, b *pair[H]) bool {
	if a.currentCost != b.currentCost {
		return a.currentCost < b.currentCost
	}
	if a.solved != b.solved {
		return a.solved
	}

	return len(a.residual) < len(b.residual)
}

// removePair deletes p from the live pair list by identity.
func (q *Queue[H]) removePair(target *pair[H]) {
	kept := q.pairs[:0]
	for _, p := range q.pairs {
		if p != target {
			kept = append(kept, p)
		}
	}
	q.pairs = kept
}

// partition splits the just-popped pair p into child pairs per §4.2: each
// arc of p's solution that was not already in its base solution yields (a) a
// sibling child problem with that one arc excluded, then (b) that arc is
// forced into the running base before moving to the next arc.
func (q *Queue[H]) partition(p *pair[H]) {
	working := cloneArcs(p.residual)
	base := cloneArcs(p.baseArcs)
	baseCost := p.baseCost
	lowerBound := p.baseCost + p.solvedResidualCost

	for _, arc := range p.solvedResidual {
		childResidual := removeOne(working, arc)

		rowStillUsable := arc.Row < 0 || stillAppears(childResidual, arc.Row, true)
		colStillUsable := arc.Col < 0 || stillAppears(childResidual, arc.Col, false)
		if rowStillUsable && colStillUsable {
			q.pairs = append(q.pairs, &pair[H]{
				handle:      p.handle,
				baseArcs:    cloneArcs(base),
				baseCost:    baseCost,
				residual:    childResidual,
				currentCost: lowerBound,
			})
		}

		working = removeConflicting(working, arc)
		base = append(base, arc)
		baseCost += arc.Cost
	}
}

// removeOne deletes the first arc identical to target (Row, Col, Cost, and
// Payload) from arcs. Matching on (Row, Col) alone is not enough: distinct
// arcs routinely share a (Row, Col) cell — e.g. a START and a FALARM child
// both referencing the same new report land on the same row/column — and
// deleting the wrong one of that pair would leave target's own arc behind in
// the child's residual, making the child re-derive the just-popped solution
// instead of a genuine alternative.
func removeOne(arcs []assign.Arc, target assign.Arc) []assign.Arc {
	out := make([]assign.Arc, 0, len(arcs))
	removed := false
	for _, a := range arcs {
		if !removed && a == target {
			removed = true
			continue
		}
		out = append(out, a)
	}

	return out
}

// removeConflicting drops every arc touching forced's real row or real
// column, forced itself and any arc sharing its cell included: partition
// moves forced into the base solution, so leaving it in the residual as well
// would count its cost twice. Unassigned (-1) is a sentinel, not a real
// vertex, so it never triggers a deletion.
func removeConflicting(arcs []assign.Arc, forced assign.Arc) []assign.Arc {
	out := make([]assign.Arc, 0, len(arcs))
	for _, a := range arcs {
		if forced.Row >= 0 && a.Row == forced.Row {
			continue
		}
		if forced.Col >= 0 && a.Col == forced.Col {
			continue
		}
		out = append(out, a)
	}

	return out
}

// stillAppears reports whether vertex appears as a row (or column, per
// isRow) in any arc of arcs. Sentinel (-1) callers must short-circuit before
// calling this, per §4.2's "must not be treated as real vertices" rule.
func stillAppears(arcs []assign.Arc, vertex int, isRow bool) bool {
	for _, a := range arcs {
		if isRow && a.Row == vertex {
			return true
		}
		if !isRow && a.Col == vertex {
			return true
		}
	}

	return false
}
