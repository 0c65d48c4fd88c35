package assign

import "errors"

// ErrUnsolvable indicates that no complete matching exists over the arcs
// given to Solve — every row and column that appears in some arc must be
// matched exactly once, and the arc set admits no such assignment. This is
// a legitimate, expected return (§7.i: "infeasibility... propagated as a
// sentinel"), never retried internally.
var ErrUnsolvable = errors.New("assign: no complete matching exists")
