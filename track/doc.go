// Package track implements the track-tree and hypothesis-node model (§4.3):
// an arena-owned forest of ordered trees, each rooted at a ROOT hypothesis
// and growing CONTINUE/SKIP/START/END/FALARM/DUMMY children, together with
// the report arena and the symmetric report<->hypothesis link relation.
//
// Nodes and reports are referenced by stable integer ids rather than
// pointers (§9's design note: "owning containers reference entities by
// stable ids or arena indices... eliminating the 'partner must null first'
// dance"). A Store owns every tree's nodes and the process-wide report
// list; a Tree is a thin view (root id, track id) over the Store it was
// created from. The report<->hypothesis association is a derived relation
// (LinkStore), never an ownership edge: Store owns reports and nodes, GHs
// and higher layers only ever reference them by id.
package track
