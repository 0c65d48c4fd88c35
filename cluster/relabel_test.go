package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/arfken-labs/mht/cluster"
	"github.com/arfken-labs/mht/track"
)

type fakeReport struct{ falarmLL float64 }

func (f fakeReport) FalseAlarmLogLikelihood() float64 { return f.falarmLL }

type RelabelSuite struct {
	suite.Suite
	store *track.Store
}

func (s *RelabelSuite) SetupTest() {
	s.store = track.NewStore()
}

// Two trees sharing one report land in the same cluster; a third,
// unrelated tree lands in its own.
func (s *RelabelSuite) TestSharedReportJoinsTrees() {
	rep := s.store.NewReport(fakeReport{})
	t1 := s.store.NewTree(0)
	t2 := s.store.NewTree(0)
	t3 := s.store.NewTree(0)

	_, err := s.store.AddChild(t1.RootID, track.KindStart, rep, nil, 0, 0)
	s.Require().NoError(err)
	_, err = s.store.AddChild(t2.RootID, track.KindStart, rep, nil, 0, 0)
	s.Require().NoError(err)
	_, err = s.store.AddChild(t3.RootID, track.KindDummy, track.NoReport, nil, 0, 0)
	s.Require().NoError(err)

	trees := []track.TrackID{t1.TrackID, t2.TrackID, t3.TrackID}
	idOf := cluster.Relabel(s.store, trees)

	s.Equal(idOf[t1.TrackID], idOf[t2.TrackID])
	s.NotEqual(idOf[t1.TrackID], idOf[t3.TrackID])

	clusters := cluster.BuildClusters(idOf, trees)
	s.Len(clusters, 2)
}

// Transitive closure: t1-t2 share rep A, t2-t3 share rep B; all three must
// land in one cluster even though t1 and t3 share nothing directly.
func (s *RelabelSuite) TestTransitiveClosure() {
	repA := s.store.NewReport(fakeReport{})
	repB := s.store.NewReport(fakeReport{})
	t1 := s.store.NewTree(0)
	t2 := s.store.NewTree(0)
	t3 := s.store.NewTree(0)

	s.store.AddChild(t1.RootID, track.KindStart, repA, nil, 0, 0)
	s.store.AddChild(t2.RootID, track.KindStart, repA, nil, 0, 0)
	s.store.AddChild(t2.RootID, track.KindStart, repB, nil, 0, 0)
	s.store.AddChild(t3.RootID, track.KindStart, repB, nil, 0, 0)

	trees := []track.TrackID{t1.TrackID, t2.TrackID, t3.TrackID}
	idOf := cluster.Relabel(s.store, trees)

	s.Equal(idOf[t1.TrackID], idOf[t2.TrackID])
	s.Equal(idOf[t2.TrackID], idOf[t3.TrackID])
}

func TestRelabelSuite(t *testing.T) {
	suite.Run(t, new(RelabelSuite))
}
