package main

import (
	"math"

	"github.com/arfken-labs/mht/model"
)

// demoReport is a 1-D position report: a synthetic stand-in for whatever a
// real sensor would supply, carrying only the two scalars the core needs
// (the position itself is opaque to mht, consumed only by demoModel).
type demoReport struct {
	pos          float64
	falseAlarmLL float64
}

func (r demoReport) FalseAlarmLogLikelihood() float64 { return r.falseAlarmLL }

// demoState is a track's position estimate, with its own intrinsic
// log-likelihood contribution (the Gaussian gating score), satisfying
// model.StateLikelihood.
type demoState struct {
	pos float64
	ll  float64
}

func (s demoState) LogLikelihood() float64 { return s.ll }

// demoModel is a 1-D nearest-neighbor validation-gate motion model: a
// candidate continuation is offered only when the new report falls within
// gateWidth of the track's last known position, scored by a Gaussian
// log-likelihood with standard deviation sigma. This is the simplest
// motion model that still exercises every MODEL hook (§6), standing in
// for whatever Kalman filter or particle model a real host would supply.
type demoModel struct {
	gateWidth float64
	sigma     float64
}

func newDemoModel(gateWidth, sigma float64) *demoModel {
	return &demoModel{gateWidth: gateWidth, sigma: sigma}
}

// BeginNewStates reports whether this report is within gating distance of
// parentState (for a continuation) or is simply being offered as a new
// track's first position (parentState == nil). report == nil means "skip
// this scan"; the track's state does not move.
func (m *demoModel) BeginNewStates(parentState any, report model.Report) (int, error) {
	if report == nil {
		return 1, nil
	}
	rep := report.(demoReport)
	if parentState == nil {
		return 1, nil
	}
	parent := parentState.(demoState)
	if math.Abs(rep.pos-parent.pos) > m.gateWidth {
		return 0, nil
	}
	return 1, nil
}

// GetNewState returns the sole candidate state BeginNewStates promised.
func (m *demoModel) GetNewState(i int, parentState any, report model.Report) (any, error) {
	if report == nil {
		if parentState == nil {
			return demoState{}, nil
		}
		parent := parentState.(demoState)
		return demoState{pos: parent.pos}, nil
	}

	rep := report.(demoReport)
	var ll float64
	if parentState != nil {
		parent := parentState.(demoState)
		d := rep.pos - parent.pos
		ll = -(d * d) / (2 * m.sigma * m.sigma)
	}
	return demoState{pos: rep.pos, ll: ll}, nil
}

func (m *demoModel) EndNewStates() {}

func (m *demoModel) LogLikelihoodEnd(state any) float64      { return -1.0 }
func (m *demoModel) LogLikelihoodContinue(state any) float64 { return -0.1 }
func (m *demoModel) LogLikelihoodSkip(state any) float64     { return -2.0 }
func (m *demoModel) LogLikelihoodDetect(state any) float64   { return -0.05 }
