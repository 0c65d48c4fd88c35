package mht

import "github.com/arfken-labs/mht/track"

// growLeaves extends every current leaf of every managed tree by batch
// (§4.3's node-construction contract, §4.5 step 1), then seeds one brand
// new tree per report in batch to stand for "this report starts a new
// target" (§3's trivial scenario: a never-before-seen report always gets
// its own ROOT with START/FALARM/DUMMY children, regardless of whether it
// is also offered to existing leaves as a CONTINUE candidate).
func (e *Engine) growLeaves(batch []track.ReportID) error {
	for _, trackID := range e.store.Trees() {
		tr, err := e.store.Tree(trackID)
		if err != nil {
			continue
		}
		leaves, err := e.store.Leaves(tr.RootID, nil)
		if err != nil {
			return err
		}
		for _, leafID := range leaves {
			leaf, err := e.store.Node(leafID)
			if err != nil {
				continue
			}
			if leaf.EndsTrack {
				continue
			}
			if err := e.growExistingLeaf(leafID, leaf, batch); err != nil {
				return err
			}
		}
	}

	for _, repID := range batch {
		if err := e.seedNewTree(repID); err != nil {
			return err
		}
	}
	return nil
}

// growExistingLeaf installs one CONTINUE child per candidate state the
// model offers for each report in batch, plus one SKIP child and one END
// child representing "undetected this scan" and "track terminates here"
// (§4.3's derived-likelihood formulas). The SKIP child is added only when the
// model offers a non-nil no-report state.
func (e *Engine) growExistingLeaf(leafID track.NodeID, leaf *track.Node, batch []track.ReportID) error {
	for _, repID := range batch {
		rep, err := e.store.Report(repID)
		if err != nil {
			continue
		}

		n, err := e.model.BeginNewStates(leaf.State, rep.Payload)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			state, err := e.model.GetNewState(i, leaf.State, rep.Payload)
			if err != nil {
				e.model.EndNewStates()
				return err
			}
			if state == nil {
				continue
			}
			continueLL := e.model.LogLikelihoodContinue(leaf.State)
			detectLL := e.model.LogLikelihoodDetect(leaf.State)
			inc := track.ContinueIncrement(continueLL, detectLL, state)
			if _, err := e.store.AddChild(leafID, track.KindContinue, repID, state, inc, e.currentTime); err != nil {
				e.model.EndNewStates()
				return err
			}
		}
		e.model.EndNewStates()
	}

	n, err := e.model.BeginNewStates(leaf.State, nil)
	if err != nil {
		return err
	}
	var skipState any
	if n > 0 {
		skipState, err = e.model.GetNewState(0, leaf.State, nil)
		if err != nil {
			e.model.EndNewStates()
			return err
		}
	}
	e.model.EndNewStates()

	continueLL := e.model.LogLikelihoodContinue(leaf.State)
	skipLL := e.model.LogLikelihoodSkip(leaf.State)
	if skipState != nil {
		skipInc := track.SkipIncrement(continueLL, skipLL, skipState)
		if _, err := e.store.AddChild(leafID, track.KindSkip, track.NoReport, skipState, skipInc, e.currentTime); err != nil {
			return err
		}
	}

	endLL := e.model.LogLikelihoodEnd(leaf.State)
	endInc := track.EndIncrement(skipLL, endLL)
	if _, err := e.store.AddChild(leafID, track.KindEnd, track.NoReport, nil, endInc, e.currentTime); err != nil {
		return err
	}

	return nil
}

// seedNewTree plants a new ROOT for repID: one START child per candidate
// state the model offers for a brand-new track, one FALARM child (the
// report's own false-alarm likelihood), and one DUMMY child standing for
// "nothing happened" (§4.3, §8 scenario 1).
func (e *Engine) seedNewTree(repID track.ReportID) error {
	rep, err := e.store.Report(repID)
	if err != nil {
		return err
	}

	tr := e.store.NewTree(e.currentTime)

	n, err := e.model.BeginNewStates(nil, rep.Payload)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		state, err := e.model.GetNewState(i, nil, rep.Payload)
		if err != nil {
			e.model.EndNewStates()
			return err
		}
		if state == nil {
			continue
		}
		inc := track.StartIncrement(state)
		if _, err := e.store.AddChild(tr.RootID, track.KindStart, repID, state, inc, e.currentTime); err != nil {
			e.model.EndNewStates()
			return err
		}
	}
	e.model.EndNewStates()

	falarmInc := track.FalarmIncrement(rep.Payload)
	if _, err := e.store.AddChild(tr.RootID, track.KindFalarm, repID, nil, falarmInc, e.currentTime); err != nil {
		return err
	}

	if _, err := e.store.AddChild(tr.RootID, track.KindDummy, track.NoReport, nil, track.DummyIncrement(), e.currentTime); err != nil {
		return err
	}

	return nil
}
