package cluster

import (
	"math"

	"github.com/arfken-labs/mht/internal/container"
	"github.com/arfken-labs/mht/track"
)

// Merge combines every group of clusters in clusters that now carry the
// same (post-Split, homogeneous) id into one cluster (§4.4: "Any two
// clusters whose trees now share a cluster id merge"), preserving the
// first-seen order of ids.
func Merge(clusters []*Cluster, minGHypoRatio float64, maxGHypos int) []*Cluster {
	order := make([]ID, 0, len(clusters))
	byID := make(map[ID][]*Cluster)

	for _, c := range clusters {
		if _, ok := byID[c.ID]; !ok {
			order = append(order, c.ID)
		}
		byID[c.ID] = append(byID[c.ID], c)
	}

	out := make([]*Cluster, 0, len(order))
	for _, id := range order {
		group := byID[id]
		acc := group[0]
		for _, next := range group[1:] {
			acc = mergeTwo(acc, next, minGHypoRatio, maxGHypos)
		}
		out = append(out, acc)
	}
	return out
}

// mergeTwo merges b into a (§4.4's "hard case" / mht_group.c's
// GROUP::merge()): a likelihood-sorted Cartesian merge via a priority
// queue seeded at the best pair, expanding neighbours lazily, stopping at
// the ratio or k-best cutoff. If either side has exactly one GH the merge
// degenerates to an O(N) in-place combine (spec's "fast path").
func mergeTwo(a, b *Cluster, minGHypoRatio float64, maxGHypos int) *Cluster {
	trees := append(append([]track.TrackID(nil), a.Trees...), b.Trees...)
	merged := &Cluster{ID: a.ID, Trees: trees}

	if len(b.Hyps) == 1 {
		for _, h := range a.Hyps {
			merged.Hyps = append(merged.Hyps, combine(h, b.Hyps[0]))
		}
		return merged
	}
	if len(a.Hyps) == 1 {
		for _, h := range b.Hyps {
			merged.Hyps = append(merged.Hyps, combine(a.Hyps[0], h))
		}
		return merged
	}

	as := append([]*Hypothesis(nil), a.Hyps...)
	bs := append([]*Hypothesis(nil), b.Hyps...)
	sortHypsDescending(as)
	sortHypsDescending(bs)

	type pairIdx struct{ i0, i1 int }
	pairLL := func(p pairIdx) float64 { return as[p.i0].LogLikelihood + bs[p.i1].LogLikelihood }

	pq := container.New(func(x, y pairIdx) bool { return pairLL(x) > pairLL(y) })
	used := map[pairIdx]bool{{0, 0}: true}
	pq.Push(pairIdx{0, 0})

	bestLL := pairLL(pairIdx{0, 0})
	logRatio := math.Log(minGHypoRatio)

	for !pq.Empty() && len(merged.Hyps) < maxGHypos {
		cur := pq.Pop()
		if pairLL(cur)-bestLL < logRatio {
			break
		}
		merged.Hyps = append(merged.Hyps, combine(as[cur.i0], bs[cur.i1]))

		if cur.i0+1 < len(as) {
			n := pairIdx{cur.i0 + 1, cur.i1}
			if !used[n] {
				used[n] = true
				pq.Push(n)
			}
		}
		if cur.i1+1 < len(bs) {
			n := pairIdx{cur.i0, cur.i1 + 1}
			if !used[n] {
				used[n] = true
				pq.Push(n)
			}
		}
	}

	return merged
}

// combine produces the Cartesian-merged GH of h0 and h1: the union of
// their leaf selections, and the sum of their log-likelihoods.
func combine(h0, h1 *Hypothesis) *Hypothesis {
	leaves := make(map[track.TrackID]track.NodeID, len(h0.Leaves)+len(h1.Leaves))
	for tr, n := range h0.Leaves {
		leaves[tr] = n
	}
	for tr, n := range h1.Leaves {
		leaves[tr] = n
	}
	return &Hypothesis{
		Leaves:        leaves,
		LogLikelihood: h0.LogLikelihood + h1.LogLikelihood,
		Snapshot:      len(leaves),
	}
}
