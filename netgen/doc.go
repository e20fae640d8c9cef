// Package netgen builds deterministic minimum-cost flow instances for
// tests and benchmarks.
//
// Each generator returns an Instance: a digraph plus ready-to-bind cost,
// bound and supply maps. Construction is deterministic for a fixed seed
// and option set, so golden expectations stay stable across runs.
//
// Generators:
//
//   - Transshipment(n, m) — n nodes, m arcs. A directed backbone path from
//     node 0 to node n−1 guarantees feasibility of the generated supply;
//     the remaining arcs are random chords.
//
//   - Grid(rows, cols) — a rows×cols lattice with right and down arcs,
//     supply at the top-left corner and demand at the bottom-right one.
//
// Options follow the functional pattern: WithSeed and WithRand control the
// randomness, WithCostRange / WithCapacityRange the arc attributes, and
// WithSupply the shipped volume. Option constructors validate their inputs
// and panic on meaningless values (programmer error); generators never
// panic and return sentinel errors instead.
//
// Errors:
//
//	ErrTooFewNodes - the requested node count cannot form the topology.
//	ErrTooFewArcs  - fewer arcs requested than the backbone needs.
package netgen
