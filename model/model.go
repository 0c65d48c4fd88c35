package model

// Report is the measurement capability the core needs from a host-supplied
// report payload: its own false-alarm log-likelihood. Everything else about
// a report (sensor coordinates, features, timestamps) is opaque to the core.
type Report interface {
	// FalseAlarmLogLikelihood returns the log-likelihood that this report
	// is a spurious detection rather than an observation of any target.
	FalseAlarmLogLikelihood() float64
}

// Model is the motion-model and likelihood capability the core needs from
// the host application. A single Model instance is shared across every
// track tree the engine manages; all per-track state lives in the opaque
// state values the core stores on each hypothesis node and passes back in.
//
// Node construction contract (§4.3): to extend a leaf by a report (or by no
// report, for a skip), the core calls BeginNewStates once, then GetNewState
// for i in [0, n), then EndNewStates once. This bracket lets a Model cache
// intermediate work (e.g. a single Kalman innovation) across the GetNewState
// calls for one extension. GetNewState may return a nil state for any i,
// silently pruning that candidate hypothesis.
type Model interface {
	// BeginNewStates starts one extension of parentState by report (report
	// is nil for a skip). It returns the number of candidate states the
	// core should request via GetNewState.
	BeginNewStates(parentState any, report Report) (int, error)

	// GetNewState returns the i-th candidate state for this extension, or
	// nil to prune that candidate. i ranges over [0, n) from the matching
	// BeginNewStates call.
	GetNewState(i int, parentState any, report Report) (any, error)

	// EndNewStates closes the bracket opened by BeginNewStates, releasing
	// any cached intermediate work.
	EndNewStates()

	// LogLikelihoodEnd, LogLikelihoodContinue, LogLikelihoodSkip, and
	// LogLikelihoodDetect return the four scalar log-likelihoods the core
	// uses to parametrize END/CONTINUE/SKIP/CONTINUE(detect) nodes (§4.3).
	// math.Inf(-1) means "impossible".
	LogLikelihoodEnd(state any) float64
	LogLikelihoodContinue(state any) float64
	LogLikelihoodSkip(state any) float64
	LogLikelihoodDetect(state any) float64
}

// Factory constructs the single Model instance an mht.Engine uses for its
// whole lifetime, mirroring the teacher's functional-constructor idiom
// (builder.IDFn, builder.WeightFn) rather than an interface the caller must
// implement just to produce one value.
type Factory func() Model

// StateLikelihood is an optional capability a state value returned from
// GetNewState may implement to contribute its own intrinsic log-likelihood
// (e.g. a Kalman innovation term) to the derived node likelihoods of
// START/CONTINUE/SKIP (§4.3: "new-state likelihood"), additive alongside
// the four Model-level scalars. A state that does not implement it
// contributes zero.
type StateLikelihood interface {
	LogLikelihood() float64
}
