package mcf

import "github.com/katalvlaran/mcflow/digraph"

// ArcValuer is a read-only arc-indexed map of integers (costs, bounds,
// capacities). Implementations must be total over the arcs of the bound
// graph.
type ArcValuer interface {
	// Value reports the value attached to arc a.
	Value(a digraph.Arc) int64
}

// NodeValuer is a read-only node-indexed map of integers (supplies).
type NodeValuer interface {
	// Value reports the value attached to node n.
	Value(n digraph.Node) int64
}

// ArcSetter is a writable arc-indexed map; the solver publishes the primal
// flow through it.
type ArcSetter interface {
	// Set stores the value attached to arc a.
	Set(a digraph.Arc, v int64)
}

// NodeSetter is a writable node-indexed map; the solver publishes the dual
// potentials through it.
type NodeSetter interface {
	// Set stores the value attached to node n.
	Set(n digraph.Node, v int64)
}

// ArcMap is a map-backed attribute store satisfying both ArcValuer and
// ArcSetter. Absent keys read as zero.
type ArcMap map[digraph.Arc]int64

// Value reports the stored value of a (zero when absent).
func (m ArcMap) Value(a digraph.Arc) int64 { return m[a] }

// Set stores v as the value of a.
func (m ArcMap) Set(a digraph.Arc, v int64) { m[a] = v }

// NodeMap is a map-backed attribute store satisfying both NodeValuer and
// NodeSetter. Absent keys read as zero.
type NodeMap map[digraph.Node]int64

// Value reports the stored value of n (zero when absent).
func (m NodeMap) Value(n digraph.Node) int64 { return m[n] }

// Set stores v as the value of n.
func (m NodeMap) Set(n digraph.Node, v int64) { m[n] = v }

// ArcValuerFunc adapts a plain function to ArcValuer.
type ArcValuerFunc func(a digraph.Arc) int64

// Value invokes the wrapped function.
func (f ArcValuerFunc) Value(a digraph.Arc) int64 { return f(a) }

// NodeValuerFunc adapts a plain function to NodeValuer.
type NodeValuerFunc func(n digraph.Node) int64

// Value invokes the wrapped function.
func (f NodeValuerFunc) Value(n digraph.Node) int64 { return f(n) }

// ConstArcs returns an ArcValuer reporting v for every arc.
func ConstArcs(v int64) ArcValuer { return constArcs(v) }

type constArcs int64

func (c constArcs) Value(digraph.Arc) int64 { return int64(c) }

// ConstNodes returns a NodeValuer reporting v for every node.
func ConstNodes(v int64) NodeValuer { return constNodes(v) }

type constNodes int64

func (c constNodes) Value(digraph.Node) int64 { return int64(c) }

// stSupply is the two-terminal supply vector set by Simplex.STSupply:
// +k at the source, −k at the target, zero elsewhere.
type stSupply struct {
	s, t digraph.Node
	k    int64
}

func (m stSupply) Value(n digraph.Node) int64 {
	switch n {
	case m.s:
		return m.k
	case m.t:
		return -m.k
	default:
		return 0
	}
}
