package cluster_test

import (
	"testing"

	"github.com/arfken-labs/mht/cluster"
	"github.com/arfken-labs/mht/track"
)

// BenchmarkRegenerate measures one regeneration pass over a cluster of a
// handful of trees, each leaf fanning out into a few candidate children,
// the shape of §4.4's hypothesis-regeneration step on a single cluster.
func BenchmarkRegenerate(b *testing.B) {
	const trees = 6
	const fanout = 3

	for i := 0; i < b.N; i++ {
		store := track.NewStore()
		var trackIDs []track.TrackID
		leaves := make(map[track.TrackID]track.NodeID, trees)

		for t := 0; t < trees; t++ {
			tr := store.NewTree(0)
			trackIDs = append(trackIDs, tr.TrackID)

			root, err := store.AddChild(tr.RootID, track.KindStart, track.NoReport, nil, 0, 0)
			if err != nil {
				b.Fatal(err)
			}
			leaves[tr.TrackID] = root

			for f := 0; f < fanout; f++ {
				rep := store.NewReport(fakeReport{})
				if err := store.SetRowNumber(rep, t*fanout+f); err != nil {
					b.Fatal(err)
				}
				if _, err := store.AddChild(root, track.KindContinue, rep, nil, -float64(f+1), 1); err != nil {
					b.Fatal(err)
				}
			}
			if _, err := store.AddChild(root, track.KindSkip, track.NoReport, nil, -float64(fanout+1), 1); err != nil {
				b.Fatal(err)
			}
		}

		c := &cluster.Cluster{
			Trees: trackIDs,
			Hyps: []*cluster.Hypothesis{{
				Leaves:        leaves,
				LogLikelihood: 0,
				Snapshot:      trees,
			}},
		}

		if err := cluster.Regenerate(c, store, cluster.RegenerateConfig{
			MinGHypoRatio: 1e-6,
			MaxGHypos:     8,
		}); err != nil {
			b.Fatal(err)
		}
	}
}
