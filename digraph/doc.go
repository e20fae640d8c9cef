// Package digraph provides static directed graphs over dense integer
// identifiers, built for algorithms that index node and arc attributes by id.
//
// The package offers one general representation and two complete families:
//
//   - List — a grow-only directed multigraph. Nodes and arcs receive
//     consecutive ids in insertion order; self-loops and parallel arcs are
//     allowed. Incidence lists give O(1) amortized insertion and O(deg)
//     iteration.
//
//   - Full — the complete directed graph on n nodes, self-loops included.
//     It stores nothing but n: the arc s→t has id s·n+t, so endpoint
//     lookup, arc lookup and incidence iteration are all arithmetic.
//
//   - FullGraph — the complete undirected graph on n nodes, viewed as a
//     bidirected digraph. Each unordered pair {u,v} maps to one edge id in
//     [0, n(n−1)/2) through a symmetric fold, and every edge yields two
//     arcs: even arc ids run from the smaller endpoint to the larger, odd
//     ids the other way.
//
// # Identity model
//
// Every graph exposes NodeNum/ArcNum together with MaxNodeID/MaxArcID. Ids
// are stable for the lifetime of the graph and dense enough that attribute
// storage as flat slices of length MaxArcID()+1 is the intended pattern.
// Iteration order over Nodes() and Arcs() is fixed per instance.
//
// # Lookup
//
// FindArc(s, t, prev) enumerates the arcs from s to t: pass InvalidArc to
// obtain the first one, then the previous result to obtain the next, until
// InvalidArc signals exhaustion. The complete families return their single
// canonical arc on the first call and InvalidArc thereafter. FullGraph
// additionally exposes Edge/FindEdge for the undirected view.
//
// # Errors
//
//	ErrNodeRange - an endpoint id is outside the graph's node range.
//
// All types are plain data and safe for concurrent reads; mutating a List
// while reading it requires external synchronization.
package digraph
