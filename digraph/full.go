package digraph

// Full is the complete directed graph on n nodes, self-loops included.
// It stores only n; every query is arithmetic on ids:
//
//	arc s→t has id s·n + t, so Arc(s,t), Source and Target are O(1)
//	and OutArcs(s) enumerates the contiguous id range [s·n, s·n+n).
//
// Memory: O(1) beyond the iteration slices requested by the caller.
type Full struct {
	n int
}

// NewFull returns the complete directed graph on n nodes (n ≥ 0).
func NewFull(n int) *Full {
	if n < 0 {
		n = 0
	}

	return &Full{n: n}
}

// NodeNum reports the number of nodes.
func (g *Full) NodeNum() int { return g.n }

// ArcNum reports n², counting one arc per ordered pair including loops.
func (g *Full) ArcNum() int { return g.n * g.n }

// MaxNodeID reports n−1, or -1 on an empty graph.
func (g *Full) MaxNodeID() int { return g.n - 1 }

// MaxArcID reports n²−1, or -1 on an empty graph.
func (g *Full) MaxArcID() int { return g.n*g.n - 1 }

// NodeAt returns the i-th node, which is simply id i.
func (g *Full) NodeAt(i int) Node { return Node(i) }

// Index returns the position of node n in iteration order (its id).
func (g *Full) Index(n Node) int { return int(n) }

// Arc returns the canonical arc s→t, or InvalidArc for out-of-range ids.
func (g *Full) Arc(s, t Node) Arc {
	if !g.valid(s) || !g.valid(t) {
		return InvalidArc
	}

	return Arc(int(s)*g.n + int(t))
}

// Source returns the tail of arc a.
func (g *Full) Source(a Arc) Node { return Node(int(a) / g.n) }

// Target returns the head of arc a.
func (g *Full) Target(a Arc) Node { return Node(int(a) % g.n) }

// Nodes returns all node ids in ascending order.
func (g *Full) Nodes() []Node { return nodeRange(g.n) }

// Arcs returns all arc ids in ascending order.
func (g *Full) Arcs() []Arc { return arcRange(g.n * g.n) }

// OutArcs returns the arcs leaving s: ids s·n .. s·n+n−1.
func (g *Full) OutArcs(s Node) []Arc {
	arcs := make([]Arc, g.n)
	base := int(s) * g.n
	for i := range arcs {
		arcs[i] = Arc(base + i)
	}

	return arcs
}

// InArcs returns the arcs entering t: ids t, t+n, t+2n, ...
func (g *Full) InArcs(t Node) []Arc {
	arcs := make([]Arc, g.n)
	for i := range arcs {
		arcs[i] = Arc(i*g.n + int(t))
	}

	return arcs
}

// FindArc returns the unique arc s→t on the first call (prev == InvalidArc)
// and InvalidArc on every subsequent call.
func (g *Full) FindArc(s, t Node, prev Arc) Arc {
	if prev != InvalidArc {
		return InvalidArc
	}

	return g.Arc(s, t)
}

func (g *Full) valid(n Node) bool {
	return n >= 0 && int(n) < g.n
}
