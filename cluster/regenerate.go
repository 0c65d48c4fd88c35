package cluster

import (
	"math"

	"github.com/arfken-labs/mht/assign"
	"github.com/arfken-labs/mht/internal/telemetry"
	"github.com/arfken-labs/mht/murty"
	"github.com/arfken-labs/mht/track"
)

// RegenerateConfig carries the pruning parameters and the N-scanback hook
// hypothesis regeneration must invoke after establishing each cluster's new
// best GH (§4.4).
type RegenerateConfig struct {
	MinGHypoRatio float64
	MaxGHypos     int

	// AfterBest is called once per cluster, immediately after the first
	// (best) new GH is produced, before further alternatives are popped
	// (§4.4: "apply N-scanback pruning... using that best GH"). It may
	// prune nodes the cluster's other GH problems still reference; later
	// pops in this same regeneration are checked against that and
	// silently dropped if invalidated.
	AfterBest func(c *Cluster, best *Hypothesis) error

	// Metrics, if non-nil, is incremented as Regenerate runs: one solver
	// call per GH whose arcs go into the ranked queue, one Murty pop per
	// solution examined, and one pruned-hypothesis count when enumeration
	// stops at the ratio cutoff.
	Metrics *telemetry.Metrics
}

// Regenerate replaces c's GH list with the GHs obtained by growing each of
// its existing GHs by one scan (§4.4: "Hypothesis regeneration"). For
// every existing GH it assembles an assignment problem (rows: reports,
// columns: c.Trees, one arc per leaf-child of each GH's referenced TH),
// adds it to a ranked queue tagged by its originating GH index, then
// iteratively pops solutions in non-decreasing cost order until the
// k-best cap or the ratio cutoff is reached.
func Regenerate(c *Cluster, store *track.Store, cfg RegenerateConfig) error {
	q := murty.New[int]()
	for gi, h := range c.Hyps {
		arcs, err := buildArcs(store, c.Trees, h)
		if err != nil {
			return err
		}
		if len(arcs) > 0 {
			q.Add(gi, arcs)
			if cfg.Metrics != nil {
				cfg.Metrics.SolverCalls.Inc()
			}
		}
	}

	var newHyps []*Hypothesis
	var bestCost float64
	haveBest := false

	for !q.Empty() && len(newHyps) < cfg.MaxGHypos {
		res, ok, err := q.Pop()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if cfg.Metrics != nil {
			cfg.Metrics.MurtyPops.Inc()
		}

		hyp, valid := buildHypothesisFromSolution(store, c.Trees, res.Solution, -res.Cost)
		if !valid {
			continue
		}

		if !haveBest {
			bestCost = res.Cost
			haveBest = true
			newHyps = append(newHyps, hyp)
			if cfg.AfterBest != nil {
				if err := cfg.AfterBest(c, hyp); err != nil {
					return err
				}
			}
			continue
		}

		if res.Cost-bestCost > -math.Log(cfg.MinGHypoRatio) {
			if cfg.Metrics != nil {
				cfg.Metrics.HypothesesPruned.Inc()
			}
			break
		}
		newHyps = append(newHyps, hyp)
	}

	c.Hyps = newHyps
	return nil
}

// buildArcs assembles the sparse arc list for one GH's assignment problem:
// for each tree column, one arc per leaf child of the GH's referenced node
// for that tree (§4.4).
func buildArcs(store *track.Store, trees []track.TrackID, h *Hypothesis) ([]assign.Arc, error) {
	var arcs []assign.Arc
	for col, tr := range trees {
		leafID, ok := h.Leaves[tr]
		if !ok {
			continue
		}
		leaf, err := store.Node(leafID)
		if err != nil {
			continue
		}
		for _, childID := range leaf.Children {
			child, err := store.Node(childID)
			if err != nil {
				continue
			}
			row := -1
			if child.ReportID != track.NoReport {
				if rep, err := store.Report(child.ReportID); err == nil {
					row = rep.RowNumber
				}
			}
			arcs = append(arcs, assign.Arc{Row: row, Col: col, Cost: -child.LogLikelihood, Payload: childID})
		}
	}
	return arcs, nil
}

// buildHypothesisFromSolution turns one assignment solution into a new GH,
// reporting valid=false if any selected leaf has since been pruned away
// (§4.4's invalidation check, applied here because solutions may be popped
// after AfterBest has already pruned nodes they reference).
func buildHypothesisFromSolution(store *track.Store, trees []track.TrackID, solution []assign.Arc, ll float64) (*Hypothesis, bool) {
	leaves := make(map[track.TrackID]track.NodeID, len(solution))
	for _, a := range solution {
		if a.Col < 0 || a.Col >= len(trees) {
			continue
		}
		leafID, ok := a.Payload.(track.NodeID)
		if !ok {
			return nil, false
		}
		if _, err := store.Node(leafID); err != nil {
			return nil, false
		}
		leaves[trees[a.Col]] = leafID
	}
	if len(leaves) != len(trees) {
		return nil, false
	}
	return &Hypothesis{Leaves: leaves, LogLikelihood: ll, Snapshot: len(leaves)}, true
}
