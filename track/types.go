package track

import "github.com/arfken-labs/mht/model"

// NodeID identifies a hypothesis node within a Store. The zero value is
// never issued; NoNode marks "no node".
type NodeID int

// ReportID identifies a report within a Store's report arena.
type ReportID int

// TrackID identifies a track tree for the lifetime of that tree.
type TrackID int

// NoNode, NoReport, and NoTrack are sentinels meaning "absent", mirroring
// the solver's use of −1 to mean "unassigned" (assign.Unassigned).
const (
	NoNode   NodeID   = -1
	NoReport ReportID = -1
	NoTrack  TrackID  = -1
)

// Kind tags the seven TH variants (§3).
type Kind int

const (
	KindRoot Kind = iota
	KindStart
	KindContinue
	KindSkip
	KindEnd
	KindFalarm
	KindDummy
)

// String renders a Kind for logging and test failure messages.
func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "ROOT"
	case KindStart:
		return "START"
	case KindContinue:
		return "CONTINUE"
	case KindSkip:
		return "SKIP"
	case KindEnd:
		return "END"
	case KindFalarm:
		return "FALARM"
	case KindDummy:
		return "DUMMY"
	default:
		return "UNKNOWN"
	}
}

// Report wraps one host-supplied model.Report payload together with the
// bookkeeping the core layers on top of it: the row number assigned when it
// was first imported (§3) and its current cluster id (a per-scan merge/split
// workspace, §3 "Identifiers and lifecycles").
type Report struct {
	ID        ReportID
	Payload   model.Report
	RowNumber int
	ClusterID int
}

// Node is one track-hypothesis node (§3). Non-root nodes have exactly one
// parent; EndsTrack and MustVerify are derived once at construction time
// from Kind and never mutated afterward.
type Node struct {
	ID            NodeID
	Kind          Kind
	Parent        NodeID
	Children      []NodeID
	ReportID      ReportID
	State         any
	LogLikelihood float64
	EndsTrack     bool
	MustVerify    bool
	TrackStamp    TrackID
	TimeStamp     int
	Verified      bool
}

// Tree is a thin, Store-relative view of one ordered track tree: its track
// id and its current root. All node storage lives in the owning Store.
type Tree struct {
	TrackID TrackID
	RootID  NodeID
}

// endsTrack reports whether a node of kind k terminates its tree (§3:
// "END/DUMMY/FALARM have ends_track = true").
func (k Kind) endsTrack() bool {
	switch k {
	case KindEnd, KindDummy, KindFalarm:
		return true
	default:
		return false
	}
}

// mustVerify reports whether a node of kind k represents a committed
// decision the host must be told about before the node is collapsed away.
// DUMMY is a placeholder that carries the parent's likelihood through a
// scan without ever committing to anything, and ROOT is never itself
// verified (only nodes that become root via collapse can be).
func (k Kind) mustVerify() bool {
	switch k {
	case KindStart, KindContinue, KindSkip, KindEnd, KindFalarm:
		return true
	default:
		return false
	}
}
