package track_test

import (
	"fmt"

	"github.com/arfken-labs/mht/track"
)

// ExampleStore_CollapseRoot grows a one-branch tree and walks the
// verify-and-collapse loop (§4.5 step 8) until the track ends.
func ExampleStore_CollapseRoot() {
	store := track.NewStore()
	tr := store.NewTree(0)

	rep := store.NewReport(fakeReport{falarmLL: -10})
	start, _ := store.AddChild(tr.RootID, track.KindStart, rep, "state-0", track.StartIncrement("state-0"), 0)
	end, _ := store.AddChild(start, track.KindEnd, track.NoReport, nil, track.EndIncrement(-1, -2), 1)
	_ = end

	for {
		removed, collapsed, err := store.CollapseRoot(tr.TrackID)
		if err != nil || !collapsed {
			break
		}
		if removed.MustVerify {
			fmt.Printf("verify kind=%s\n", removed.Kind)
		}
	}
	// Output:
	// verify kind=START
}
