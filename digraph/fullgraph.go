package digraph

// FullGraph is the complete undirected graph on n nodes, exposed as a
// bidirected digraph: n(n−1)/2 edges, two arcs per edge, no loops.
//
// Edge ids pack each unordered pair {u,v}, u<v, into [0, n(n−1)/2)
// through a symmetric fold:
//
//	eid(u,v) = u·n + v            when 2u < n−2
//	eid(u,v) = (n−1−u)·n − v − 1  otherwise
//
// and decode by q=eid/n, r=eid%n: the pair is (q,r) when q<r, else
// (n−2−q, n−1−r). The fold keeps both directions O(1) with no tables.
//
// Arc ids are eid·2 | dir: even arcs run from the smaller endpoint to the
// larger one, odd arcs the other way.
type FullGraph struct {
	n int
}

// NewFullGraph returns the complete undirected graph on n nodes (n ≥ 0).
func NewFullGraph(n int) *FullGraph {
	if n < 0 {
		n = 0
	}

	return &FullGraph{n: n}
}

// NodeNum reports the number of nodes.
func (g *FullGraph) NodeNum() int { return g.n }

// EdgeNum reports n(n−1)/2.
func (g *FullGraph) EdgeNum() int { return g.n * (g.n - 1) / 2 }

// ArcNum reports n(n−1): two directed arcs per edge.
func (g *FullGraph) ArcNum() int { return g.n * (g.n - 1) }

// MaxNodeID reports n−1, or -1 on an empty graph.
func (g *FullGraph) MaxNodeID() int { return g.n - 1 }

// MaxEdgeID reports EdgeNum()−1, or -1 when there are no edges.
func (g *FullGraph) MaxEdgeID() int { return g.EdgeNum() - 1 }

// MaxArcID reports ArcNum()−1, or -1 when there are no arcs.
func (g *FullGraph) MaxArcID() int { return g.ArcNum() - 1 }

// NodeAt returns the i-th node, which is simply id i.
func (g *FullGraph) NodeAt(i int) Node { return Node(i) }

// Index returns the position of node n in iteration order (its id).
func (g *FullGraph) Index(n Node) int { return int(n) }

// Edge returns the canonical edge id of the unordered pair {u,v},
// or InvalidEdge for loops and out-of-range ids.
func (g *FullGraph) Edge(u, v Node) Edge {
	if u == v || !g.valid(u) || !g.valid(v) {
		return InvalidEdge
	}
	if u > v {
		u, v = v, u
	}
	if 2*int(u) < g.n-2 {
		return Edge(int(u)*g.n + int(v))
	}

	return Edge((g.n-1-int(u))*g.n - int(v) - 1)
}

// Ends returns the endpoints (u, v) of edge e with u < v.
func (g *FullGraph) Ends(e Edge) (Node, Node) {
	q, r := int(e)/g.n, int(e)%g.n
	if q < r {
		return Node(q), Node(r)
	}

	return Node(g.n - 2 - q), Node(g.n - 1 - r)
}

// Arc returns the directed arc u→v, or InvalidArc for loops and
// out-of-range ids.
func (g *FullGraph) Arc(u, v Node) Arc {
	e := g.Edge(u, v)
	if e == InvalidEdge {
		return InvalidArc
	}
	// dir bit 0: smaller→larger; bit 1: larger→smaller.
	if u < v {
		return Arc(e << 1)
	}

	return Arc(e<<1 | 1)
}

// EdgeOf returns the edge underlying arc a.
func (g *FullGraph) EdgeOf(a Arc) Edge { return Edge(a >> 1) }

// Source returns the tail of arc a.
func (g *FullGraph) Source(a Arc) Node {
	u, v := g.Ends(Edge(a >> 1))
	if a&1 == 0 {
		return u
	}

	return v
}

// Target returns the head of arc a.
func (g *FullGraph) Target(a Arc) Node {
	u, v := g.Ends(Edge(a >> 1))
	if a&1 == 0 {
		return v
	}

	return u
}

// Nodes returns all node ids in ascending order.
func (g *FullGraph) Nodes() []Node { return nodeRange(g.n) }

// Arcs returns all arc ids in ascending order.
func (g *FullGraph) Arcs() []Arc { return arcRange(g.ArcNum()) }

// Edges returns all edge ids in ascending order.
func (g *FullGraph) Edges() []Edge {
	edges := make([]Edge, g.EdgeNum())
	for i := range edges {
		edges[i] = Edge(i)
	}

	return edges
}

// OutArcs returns the n−1 arcs leaving s, one per other node in ascending
// target order.
func (g *FullGraph) OutArcs(s Node) []Arc {
	arcs := make([]Arc, 0, g.n-1)
	for t := Node(0); int(t) < g.n; t++ {
		if t == s {
			continue
		}
		arcs = append(arcs, g.Arc(s, t))
	}

	return arcs
}

// InArcs returns the n−1 arcs entering t, one per other node in ascending
// source order.
func (g *FullGraph) InArcs(t Node) []Arc {
	arcs := make([]Arc, 0, g.n-1)
	for s := Node(0); int(s) < g.n; s++ {
		if s == t {
			continue
		}
		arcs = append(arcs, g.Arc(s, t))
	}

	return arcs
}

// FindArc returns the unique arc s→t on the first call (prev == InvalidArc)
// and InvalidArc on every subsequent call.
func (g *FullGraph) FindArc(s, t Node, prev Arc) Arc {
	if prev != InvalidArc {
		return InvalidArc
	}

	return g.Arc(s, t)
}

// FindEdge returns the unique edge {u,v} on the first call
// (prev == InvalidEdge) and InvalidEdge on every subsequent call.
func (g *FullGraph) FindEdge(u, v Node, prev Edge) Edge {
	if prev != InvalidEdge {
		return InvalidEdge
	}

	return g.Edge(u, v)
}

func (g *FullGraph) valid(n Node) bool {
	return n >= 0 && int(n) < g.n
}
