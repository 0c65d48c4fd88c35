package cluster

import "github.com/arfken-labs/mht/track"

// ID is a per-scan cluster label (§3: "Cluster ids are re-derived every
// scan; they are only a merge/split workspace and do not persist").
type ID int

// Hypothesis is one group hypothesis (GH, §3): a consistent selection of
// exactly one leaf TH per tree of its cluster, no two of which reference
// the same report.
type Hypothesis struct {
	// Leaves maps each tree in the owning cluster to the node this GH
	// selects as that tree's current leaf.
	Leaves map[track.TrackID]track.NodeID

	// LogLikelihood is the cached sum of the selected leaves' path
	// log-likelihoods.
	LogLikelihood float64

	// Snapshot is the number of leaves this GH held when its assignment
	// problem was last (re)built, for the invalidation check (§4.4).
	Snapshot int
}

// Live reports how many of this GH's selected leaves still exist in store.
func (h *Hypothesis) Live(store *track.Store) int {
	n := 0
	for _, id := range h.Leaves {
		if _, err := store.Node(id); err == nil {
			n++
		}
	}
	return n
}

// Invalidated reports whether pruning has removed a leaf this GH
// referenced since its assignment problem was built (§4.4).
func (h *Hypothesis) Invalidated(store *track.Store) bool {
	return h.Live(store) != h.Snapshot
}

// sameSelection reports whether h and other select the same node for
// every tree (used to collapse duplicate GHs after a split, §4.4).
func (h *Hypothesis) sameSelection(other *Hypothesis) bool {
	if len(h.Leaves) != len(other.Leaves) {
		return false
	}
	for tr, node := range h.Leaves {
		if other.Leaves[tr] != node {
			return false
		}
	}
	return true
}

// Cluster is a maximal set of track trees whose leaves transitively share
// reports (§3), together with its current GH list.
type Cluster struct {
	ID    ID
	Trees []track.TrackID
	Hyps  []*Hypothesis
}

// Best returns the cluster's highest-likelihood GH, or nil if it has none.
func (c *Cluster) Best() *Hypothesis {
	if len(c.Hyps) == 0 {
		return nil
	}
	best := c.Hyps[0]
	for _, h := range c.Hyps[1:] {
		if h.LogLikelihood > best.LogLikelihood {
			best = h
		}
	}
	return best
}

// sortHypsDescending sorts hyps by LogLikelihood, highest first, breaking
// ties by Snapshot for determinism (needed for the merge's likelihood-
// sorted Cartesian product, §4.4).
func sortHypsDescending(hyps []*Hypothesis) {
	for i := 1; i < len(hyps); i++ {
		for j := i; j > 0 && less(hyps[j], hyps[j-1]); j-- {
			hyps[j], hyps[j-1] = hyps[j-1], hyps[j]
		}
	}
}

func less(a, b *Hypothesis) bool {
	if a.LogLikelihood != b.LogLikelihood {
		return a.LogLikelihood > b.LogLikelihood
	}
	return a.Snapshot < b.Snapshot
}
