package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/arfken-labs/mht/cluster"
	"github.com/arfken-labs/mht/track"
)

type SplitSuite struct {
	suite.Suite
	store *track.Store
}

func (s *SplitSuite) SetupTest() {
	s.store = track.NewStore()
}

func (s *SplitSuite) leaf(trackID track.NodeID) track.NodeID {
	id, err := s.store.AddChild(trackID, track.KindDummy, track.NoReport, nil, -1, 0)
	s.Require().NoError(err)
	return id
}

func (s *SplitSuite) TestSplitSeparatesByLeadingGHIDs() {
	t1 := s.store.NewTree(0)
	t2 := s.store.NewTree(0)
	t3 := s.store.NewTree(0)
	l1 := s.leaf(t1.RootID)
	l2 := s.leaf(t2.RootID)
	l3 := s.leaf(t3.RootID)

	idOf := map[track.TrackID]cluster.ID{
		t1.TrackID: 0,
		t2.TrackID: 0,
		t3.TrackID: 1,
	}

	c := &cluster.Cluster{
		Trees: []track.TrackID{t1.TrackID, t2.TrackID, t3.TrackID},
		Hyps: []*cluster.Hypothesis{{
			Leaves:        map[track.TrackID]track.NodeID{t1.TrackID: l1, t2.TrackID: l2, t3.TrackID: l3},
			LogLikelihood: -3,
			Snapshot:      3,
		}},
	}

	out := cluster.Split(s.store, []*cluster.Cluster{c}, idOf)
	s.Require().Len(out, 2)

	s.ElementsMatch(out[0].Trees, []track.TrackID{t1.TrackID, t2.TrackID})
	s.ElementsMatch(out[1].Trees, []track.TrackID{t3.TrackID})

	s.Require().Len(out[0].Hyps, 1)
	s.Require().Len(out[1].Hyps, 1)
	s.Equal(-2.0, out[0].Hyps[0].LogLikelihood)
	s.Equal(-1.0, out[1].Hyps[0].LogLikelihood)
}

func (s *SplitSuite) TestSplitNoopWhenHomogeneous() {
	t1 := s.store.NewTree(0)
	t2 := s.store.NewTree(0)
	l1 := s.leaf(t1.RootID)
	l2 := s.leaf(t2.RootID)

	idOf := map[track.TrackID]cluster.ID{t1.TrackID: 7, t2.TrackID: 7}
	c := &cluster.Cluster{
		Trees: []track.TrackID{t1.TrackID, t2.TrackID},
		Hyps: []*cluster.Hypothesis{{
			Leaves:        map[track.TrackID]track.NodeID{t1.TrackID: l1, t2.TrackID: l2},
			LogLikelihood: -2,
			Snapshot:      2,
		}},
	}

	out := cluster.Split(s.store, []*cluster.Cluster{c}, idOf)
	s.Require().Len(out, 1)
	s.Equal(cluster.ID(7), out[0].ID)
	s.Len(out[0].Hyps, 1)
}

func TestSplitSuite(t *testing.T) {
	suite.Run(t, new(SplitSuite))
}
