// Package digraph: identifier types, the Digraph interface, and sentinel
// errors shared by all graph representations.
package digraph

import "errors"

// ErrNodeRange indicates an endpoint id outside the graph's node range.
var ErrNodeRange = errors.New("digraph: node id out of range")

// Node identifies a node of a graph. Valid ids are non-negative and at most
// MaxNodeID() of the owning graph.
type Node int

// Arc identifies a directed arc of a graph. Valid ids are non-negative and
// at most MaxArcID() of the owning graph.
type Arc int

// Edge identifies an undirected edge of a FullGraph.
type Edge int

// Sentinels returned by lookups when no further item exists.
const (
	// InvalidNode is the "no such node" sentinel.
	InvalidNode Node = -1

	// InvalidArc is the "no such arc" sentinel.
	InvalidArc Arc = -1

	// InvalidEdge is the "no such edge" sentinel.
	InvalidEdge Edge = -1
)

// Digraph is the read surface consumed by graph algorithms: counts, dense
// id bounds, endpoint queries, incidence iteration and canonical arc lookup.
//
// Implementations guarantee:
//   - ids handed out by Nodes()/Arcs() are stable and ≤ MaxNodeID/MaxArcID;
//   - iteration order is fixed for one graph instance;
//   - Source/Target are total over the ids produced by Arcs().
type Digraph interface {
	// NodeNum reports the number of nodes.
	NodeNum() int

	// ArcNum reports the number of directed arcs.
	ArcNum() int

	// MaxNodeID reports the largest valid node id, or -1 on an empty graph.
	MaxNodeID() int

	// MaxArcID reports the largest valid arc id, or -1 when there are no arcs.
	MaxArcID() int

	// Source returns the tail endpoint of arc a.
	Source(a Arc) Node

	// Target returns the head endpoint of arc a.
	Target(a Arc) Node

	// Nodes returns all node ids in iteration order.
	Nodes() []Node

	// Arcs returns all arc ids in iteration order.
	Arcs() []Arc

	// OutArcs returns the arcs whose source is n.
	OutArcs(n Node) []Arc

	// InArcs returns the arcs whose target is n.
	InArcs(n Node) []Arc

	// FindArc enumerates arcs from s to t. Pass InvalidArc to obtain the
	// first such arc, then the previous result to advance; InvalidArc
	// signals exhaustion.
	FindArc(s, t Node, prev Arc) Arc
}

// nodeRange builds the id slice 0..n-1; shared by the complete families.
func nodeRange(n int) []Node {
	nodes := make([]Node, n)
	for i := range nodes {
		nodes[i] = Node(i)
	}

	return nodes
}

// arcRange builds the id slice 0..m-1; shared by the complete families.
func arcRange(m int) []Arc {
	arcs := make([]Arc, m)
	for i := range arcs {
		arcs[i] = Arc(i)
	}

	return arcs
}
