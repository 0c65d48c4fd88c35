package cluster

import "github.com/arfken-labs/mht/track"

// Split partitions each cluster in clusters whose trees no longer share a
// single new cluster id (per idOf) into one cluster per id (§4.4's "Split"
// bullet). Each emitted cluster's ID is normalized to the (now-homogeneous)
// new id its trees carry, so Merge can group by ID directly afterward.
//
// Grounded on mht_group.c's GROUP::splitIfYouMust() / G_HYPO::split(): the
// id to retain is the cluster's first tree's id (an arbitrary but stable
// pick — every GH is split by that same id, valid because every GH in a
// cluster shares the same tree set), and a cluster that still spans more
// than two ids after one split is re-queued until it doesn't.
func Split(store *track.Store, clusters []*Cluster, idOf map[track.TrackID]ID) []*Cluster {
	result := make([]*Cluster, 0, len(clusters))
	queue := append([]*Cluster(nil), clusters...)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if len(cur.Trees) == 0 {
			continue
		}

		keepID, homogeneous := leadingGroupID(cur, idOf)
		if homogeneous {
			cur.ID = keepID
			result = append(result, cur)
			continue
		}

		kept := &Cluster{ID: keepID}
		split := &Cluster{}
		splitID := ID(0)
		splitIDSet := false

		for _, tr := range cur.Trees {
			if idOf[tr] == keepID {
				kept.Trees = append(kept.Trees, tr)
			} else {
				split.Trees = append(split.Trees, tr)
				if !splitIDSet {
					splitID = idOf[tr]
					splitIDSet = true
				}
			}
		}
		split.ID = splitID

		for _, h := range cur.Hyps {
			keptH, splitH := splitHypothesis(store, h, idOf, keepID)
			if keptH != nil {
				kept.Hyps = append(kept.Hyps, keptH)
			}
			if splitH != nil {
				split.Hyps = append(split.Hyps, splitH)
			}
		}

		collapseDuplicates(kept)
		collapseDuplicates(split)

		result = append(result, kept)
		queue = append([]*Cluster{split}, queue...)
	}

	return result
}

// leadingGroupID returns the new id of the cluster's first tree (in Trees
// order), and whether every tree in the cluster already shares that id
// (meaning no split is needed). Which tree is picked is arbitrary — any
// homogeneous id works equally well as the retained one — so the first is
// used rather than consulting c.Hyps/Best().
func leadingGroupID(c *Cluster, idOf map[track.TrackID]ID) (ID, bool) {
	id := idOf[c.Trees[0]]
	homogeneous := true
	for _, tr := range c.Trees {
		if idOf[tr] != id {
			homogeneous = false
			break
		}
	}
	return id, homogeneous
}

// splitHypothesis partitions h's leaves by whether their tree kept keepID,
// recomputing each side's cached likelihood and resetting its snapshot to
// the new (post-split) leaf count.
func splitHypothesis(store *track.Store, h *Hypothesis, idOf map[track.TrackID]ID, keepID ID) (kept, split *Hypothesis) {
	keptLeaves := make(map[track.TrackID]track.NodeID)
	splitLeaves := make(map[track.TrackID]track.NodeID)

	for tr, node := range h.Leaves {
		if idOf[tr] == keepID {
			keptLeaves[tr] = node
		} else {
			splitLeaves[tr] = node
		}
	}

	if len(keptLeaves) > 0 {
		kept = &Hypothesis{Leaves: keptLeaves, LogLikelihood: sumLikelihood(store, keptLeaves), Snapshot: len(keptLeaves)}
	}
	if len(splitLeaves) > 0 {
		split = &Hypothesis{Leaves: splitLeaves, LogLikelihood: sumLikelihood(store, splitLeaves), Snapshot: len(splitLeaves)}
	}
	return kept, split
}

func sumLikelihood(store *track.Store, leaves map[track.TrackID]track.NodeID) float64 {
	total := 0.0
	for _, id := range leaves {
		if n, err := store.Node(id); err == nil {
			total += n.LogLikelihood
		}
	}
	return total
}

// collapseDuplicates removes GHs from c that select exactly the same
// leaves as one already kept (§4.4: "identical GHs... must be collapsed").
func collapseDuplicates(c *Cluster) {
	out := c.Hyps[:0]
	for _, h := range c.Hyps {
		dup := false
		for _, kept := range out {
			if h.sameSelection(kept) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, h)
		}
	}
	c.Hyps = out
}
