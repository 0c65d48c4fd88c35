package track

import "github.com/arfken-labs/mht/model"

// stateLogLikelihood returns the intrinsic log-likelihood a candidate state
// contributes on top of the Model's four scalars, per model.StateLikelihood.
// A state that doesn't implement it contributes zero.
func stateLogLikelihood(state any) float64 {
	if sl, ok := state.(model.StateLikelihood); ok {
		return sl.LogLikelihood()
	}
	return 0
}

// StartIncrement is the log-likelihood increment of a new START node
// (§4.3: "new-state likelihood only").
func StartIncrement(state any) float64 {
	return stateLogLikelihood(state)
}

// ContinueIncrement is the log-likelihood increment of a CONTINUE node
// (§4.3: "continue + detect + new-state").
func ContinueIncrement(continueLL, detectLL float64, state any) float64 {
	return continueLL + detectLL + stateLogLikelihood(state)
}

// SkipIncrement is the log-likelihood increment of a SKIP node (§4.3:
// "continue + skip + new-state(no-report)").
func SkipIncrement(continueLL, skipLL float64, noReportState any) float64 {
	return continueLL + skipLL + stateLogLikelihood(noReportState)
}

// EndIncrement is the log-likelihood increment of an END node (§4.3:
// "skip + end").
func EndIncrement(skipLL, endLL float64) float64 {
	return skipLL + endLL
}

// FalarmIncrement is the log-likelihood increment of a FALARM node (§4.3:
// "report's own false-alarm log-likelihood").
func FalarmIncrement(report model.Report) float64 {
	return report.FalseAlarmLogLikelihood()
}

// DummyIncrement is the log-likelihood increment of a DUMMY node (§4.3:
// "zero, inherits parent value").
func DummyIncrement() float64 { return 0 }
