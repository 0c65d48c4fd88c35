package mht

import (
	"github.com/arfken-labs/mht/model"
	"github.com/arfken-labs/mht/track"
)

// verifyAndCollapse walks every tree's root while it has exactly one child
// and does not end the track, emitting a verification for each removed
// root that requires one, then finally verifies a terminal root reached at
// the end of the loop (§4.5 step 8).
func (e *Engine) verifyAndCollapse() error {
	for _, trackID := range e.store.Trees() {
		for {
			removed, collapsed, err := e.store.CollapseRoot(trackID)
			if err != nil {
				return err
			}
			if !collapsed {
				break
			}
			if removed.MustVerify {
				e.emit(trackID, removed)
			}
		}

		tr, err := e.store.Tree(trackID)
		if err != nil {
			continue
		}
		root, err := e.store.Node(tr.RootID)
		if err != nil {
			continue
		}
		if root.EndsTrack && root.MustVerify && !root.Verified {
			e.emit(trackID, root)
			root.Verified = true
		}
	}
	return nil
}

// emit dispatches n's committed decision to the host Verifier, if any.
func (e *Engine) emit(trackID track.TrackID, n *track.Node) {
	if e.verifier == nil {
		return
	}

	var rep model.Report
	if n.ReportID != track.NoReport {
		if r, err := e.store.Report(n.ReportID); err == nil {
			rep = r.Payload
		}
	}

	switch n.Kind {
	case track.KindStart:
		e.verifier.StartTrack(trackID, n.TimeStamp, n.State, rep)
	case track.KindContinue:
		e.verifier.ContinueTrack(trackID, n.TimeStamp, n.State, rep)
	case track.KindSkip:
		e.verifier.SkipTrack(trackID, n.TimeStamp, n.State)
	case track.KindEnd:
		e.verifier.EndTrack(trackID, n.TimeStamp)
	case track.KindFalarm:
		e.verifier.FalseAlarm(n.TimeStamp, rep)
	}
}
