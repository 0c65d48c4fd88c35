package track

import (
	"fmt"

	"github.com/arfken-labs/mht/model"
)

// Store is the arena that owns every tree's nodes and the process-wide
// report list (§3 "Ownership": "Trees own their nodes... Reports are owned
// by a process-wide list in the MHT engine"). Store plays that role on the
// MHT engine's behalf: an mht.Engine holds exactly one Store for its
// lifetime.
//
// Unlike the teacher's core.Graph, Store carries no mutex: §5 states the
// core is single-threaded and strictly sequential per instance, and a
// Store is never shared between instances, so lock machinery here would
// guard against a scenario the design explicitly rules out.
type Store struct {
	nodes   map[NodeID]*Node
	reports map[ReportID]*Report
	trees   map[TrackID]*Tree
	links   *LinkStore

	nextNodeID   NodeID
	nextReportID ReportID
	nextTrackID  TrackID
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		nodes:   make(map[NodeID]*Node),
		reports: make(map[ReportID]*Report),
		trees:   make(map[TrackID]*Tree),
		links:   newLinkStore(),

		nextNodeID: 1,
	}
}

// Links exposes the report<->node relation store for callers (cluster,
// mht) that need to test report liveness or enumerate referencing nodes.
func (s *Store) Links() *LinkStore { return s.links }

// NewReport admits a new host payload into the report arena. Its row
// number is unset (−1) until SetRowNumber is called during re-import
// (§4.5 step 3); its cluster id starts at −1 per §4.4 step 1.
func (s *Store) NewReport(payload model.Report) ReportID {
	id := s.nextReportID
	s.nextReportID++
	s.reports[id] = &Report{ID: id, Payload: payload, RowNumber: -1, ClusterID: -1}
	return id
}

// Report returns the report with the given id.
func (s *Store) Report(id ReportID) (*Report, error) {
	r, ok := s.reports[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchReport, id)
	}
	return r, nil
}

// SetRowNumber assigns the stable row-number identity used by every
// assignment problem built this scan (§3, §4.5 step 3).
func (s *Store) SetRowNumber(id ReportID, row int) error {
	r, err := s.Report(id)
	if err != nil {
		return err
	}
	r.RowNumber = row
	return nil
}

// ReportAlive reports whether at least one node still references id (§8:
// "a report is alive iff at least one TH references it").
func (s *Store) ReportAlive(id ReportID) bool {
	return s.links.Count(id) > 0
}

// RemoveDeadReport deletes id from the arena if it is no longer referenced
// by any node, returning whether it was removed.
func (s *Store) RemoveDeadReport(id ReportID) bool {
	if s.ReportAlive(id) {
		return false
	}
	if _, ok := s.reports[id]; !ok {
		return false
	}
	delete(s.reports, id)
	return true
}

// Reports returns every live report id, in ascending (import) order.
func (s *Store) Reports() []ReportID {
	out := make([]ReportID, 0, len(s.reports))
	for id := range s.reports {
		out = append(out, id)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// Node returns the node with the given id.
func (s *Store) Node(id NodeID) (*Node, error) {
	n, ok := s.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchNode, id)
	}
	return n, nil
}

// NewTree inserts a fresh ROOT node (§4.3: "insertion of a root") and
// returns the Tree view over it, assigning the next monotonic track id
// (§3: "Track ids are monotonically assigned at tree birth").
func (s *Store) NewTree(timeStamp int) *Tree {
	trackID := s.nextTrackID
	s.nextTrackID++

	rootID := s.nextNodeID
	s.nextNodeID++
	s.nodes[rootID] = &Node{
		ID:         rootID,
		Kind:       KindRoot,
		Parent:     NoNode,
		ReportID:   NoReport,
		TrackStamp: trackID,
		TimeStamp:  timeStamp,
		EndsTrack:  false,
		MustVerify: false,
	}

	t := &Tree{TrackID: trackID, RootID: rootID}
	s.trees[trackID] = t
	return t
}

// Tree returns the Tree view for the given track id.
func (s *Store) Tree(id TrackID) (*Tree, error) {
	t, ok := s.trees[id]
	if !ok {
		return nil, fmt.Errorf("track: no such tree: %d", id)
	}
	return t, nil
}

// Trees returns every live track id, in ascending (birth) order.
func (s *Store) Trees() []TrackID {
	out := make([]TrackID, 0, len(s.trees))
	for id := range s.trees {
		out = append(out, id)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// AddChild installs a new child of kind under parent (§4.3: "installation
// of a child under a named parent"), appending it to the parent's ordered
// child list. increment is the node's own derived log-likelihood
// contribution (§4.3's per-kind formulas); the node's stored LogLikelihood
// is the running path sum, parent.LogLikelihood + increment.
func (s *Store) AddChild(parent NodeID, kind Kind, reportID ReportID, state any, increment float64, timeStamp int) (NodeID, error) {
	p, err := s.Node(parent)
	if err != nil {
		return NoNode, err
	}
	if reportID != NoReport {
		if _, err := s.Report(reportID); err != nil {
			return NoNode, err
		}
	}

	id := s.nextNodeID
	s.nextNodeID++
	n := &Node{
		ID:            id,
		Kind:          kind,
		Parent:        parent,
		ReportID:      reportID,
		State:         state,
		LogLikelihood: p.LogLikelihood + increment,
		EndsTrack:     kind.endsTrack(),
		MustVerify:    kind.mustVerify(),
		TrackStamp:    p.TrackStamp,
		TimeStamp:     timeStamp,
	}
	s.nodes[id] = n
	p.Children = append(p.Children, id)
	s.links.Link(reportID, id)
	return id, nil
}
