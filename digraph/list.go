package digraph

// List is a grow-only directed multigraph. Nodes and arcs receive dense
// consecutive ids in insertion order; parallel arcs and self-loops are
// permitted. The zero value is an empty graph ready for use.
//
// Memory: O(V + E). All queries are O(1) except incidence iteration,
// which is O(deg), and FindArc, which is O(outdeg(s)).
type List struct {
	src []Node  // arc id -> tail
	dst []Node  // arc id -> head
	out [][]Arc // node id -> outgoing arcs in insertion order
	in  [][]Arc // node id -> incoming arcs in insertion order
}

// NewList returns an empty directed multigraph.
func NewList() *List {
	return &List{}
}

// AddNode creates a fresh node and returns its id.
func (g *List) AddNode() Node {
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)

	return Node(len(g.out) - 1)
}

// AddNodes creates k fresh nodes and returns the id of the first one.
// Convenient for building graphs whose node set is known up front.
func (g *List) AddNodes(k int) Node {
	first := Node(len(g.out))
	for i := 0; i < k; i++ {
		g.AddNode()
	}

	return first
}

// AddArc creates a directed arc s→t and returns its id.
// Returns ErrNodeRange when either endpoint does not exist.
func (g *List) AddArc(s, t Node) (Arc, error) {
	if !g.valid(s) || !g.valid(t) {
		return InvalidArc, ErrNodeRange
	}
	a := Arc(len(g.src))
	g.src = append(g.src, s)
	g.dst = append(g.dst, t)
	g.out[s] = append(g.out[s], a)
	g.in[t] = append(g.in[t], a)

	return a, nil
}

// NodeNum reports the number of nodes.
func (g *List) NodeNum() int { return len(g.out) }

// ArcNum reports the number of arcs.
func (g *List) ArcNum() int { return len(g.src) }

// MaxNodeID reports the largest valid node id, or -1 on an empty graph.
func (g *List) MaxNodeID() int { return len(g.out) - 1 }

// MaxArcID reports the largest valid arc id, or -1 when there are no arcs.
func (g *List) MaxArcID() int { return len(g.src) - 1 }

// Source returns the tail of arc a.
func (g *List) Source(a Arc) Node { return g.src[a] }

// Target returns the head of arc a.
func (g *List) Target(a Arc) Node { return g.dst[a] }

// Nodes returns all node ids in insertion order.
func (g *List) Nodes() []Node { return nodeRange(len(g.out)) }

// Arcs returns all arc ids in insertion order.
func (g *List) Arcs() []Arc { return arcRange(len(g.src)) }

// OutArcs returns the arcs leaving n in insertion order.
// The returned slice is owned by the graph; do not modify it.
func (g *List) OutArcs(n Node) []Arc { return g.out[n] }

// InArcs returns the arcs entering n in insertion order.
// The returned slice is owned by the graph; do not modify it.
func (g *List) InArcs(n Node) []Arc { return g.in[n] }

// FindArc enumerates the arcs from s to t in insertion order.
// Pass InvalidArc for the first arc, then the previous result to advance.
func (g *List) FindArc(s, t Node, prev Arc) Arc {
	if !g.valid(s) || !g.valid(t) {
		return InvalidArc
	}
	// Resume the scan one position past prev within s's out-list.
	started := prev == InvalidArc
	for _, a := range g.out[s] {
		if !started {
			started = a == prev

			continue
		}
		if g.dst[a] == t {
			return a
		}
	}

	return InvalidArc
}

func (g *List) valid(n Node) bool {
	return n >= 0 && int(n) < len(g.out)
}
