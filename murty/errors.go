package murty

import "errors"

// ErrCostRegression indicates that a pair's solved cost came in lower than
// its inherited lower-bound estimate by more than costRegressionTolerance.
// Since every child pair's true cost can only be >= its parent's cost
// (§4.2's correctness invariant), this can only mean an internal bookkeeping
// bug in the queue itself — it is a programmer-error class condition
// (§7.iii: "a programmer error; the core must detect it") and is never
// retried.
var ErrCostRegression = errors.New("murty: solved cost regressed below inherited lower bound")

// costRegressionTolerance absorbs floating-point noise in the lower-bound
// comparison; per §9's open question (b), its exact value is a debug-only
// threshold and is not otherwise observable.
const costRegressionTolerance = 0.001
