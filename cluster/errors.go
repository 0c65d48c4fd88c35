package cluster

import "errors"

// ErrInvalidatedHypothesis marks a GH whose TH snapshot count no longer
// matches its live link count — it was invalidated by pruning that ran
// between its assignment problem being built and being solved (§4.4: "any
// GH whose TH snapshot count no longer matches its live count is declared
// invalidated"). No function in this module returns it: Regenerate handles
// the condition locally by dropping each popped solution that selects a leaf
// which no longer exists (buildHypothesisFromSolution), so it is never
// propagated as a failure (§7.ii).
var ErrInvalidatedHypothesis = errors.New("cluster: hypothesis invalidated by pruning")
