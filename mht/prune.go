package mht

import "github.com/arfken-labs/mht/track"

// dropUnusedNodes removes every leaf no surviving GH references (§4.5 step
// 7). Removing a leaf can turn its parent into a new leaf, which may itself
// be unused, so each tree is swept repeatedly until a pass removes nothing.
func (e *Engine) dropUnusedNodes(used map[track.NodeID]struct{}) error {
	for _, trackID := range e.store.Trees() {
		for {
			tr, err := e.store.Tree(trackID)
			if err != nil {
				break // the tree itself was pruned away below
			}
			leaves, err := e.store.Leaves(tr.RootID, nil)
			if err != nil {
				return err
			}

			removedAny := false
			for _, leafID := range leaves {
				if _, ok := used[leafID]; ok {
					continue
				}
				if err := e.store.RemoveSubtree(leafID); err != nil {
					return err
				}
				removedAny = true
			}
			if !removedAny {
				break
			}
		}
	}
	return nil
}

// dropDeadTrees removes every tree whose root already ends the track
// (§4.5 step 9): its verification, if any, was already emitted by
// verifyAndCollapse in the same scan.
func (e *Engine) dropDeadTrees() {
	for _, trackID := range e.store.Trees() {
		tr, err := e.store.Tree(trackID)
		if err != nil {
			continue
		}
		root, err := e.store.Node(tr.RootID)
		if err != nil {
			continue
		}
		if root.EndsTrack {
			_ = e.store.RemoveSubtree(tr.RootID)
		}
	}
}

// dropDeadReports removes every report no node references any longer
// (§4.5 step 10, §8: "a report is alive iff at least one TH references
// it").
func (e *Engine) dropDeadReports() {
	for _, id := range e.store.Reports() {
		e.store.RemoveDeadReport(id)
	}
}
