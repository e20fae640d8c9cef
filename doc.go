// Package mcflow is a minimum-cost flow toolkit for Go.
//
// 🚀 What is mcflow?
//
//	A focused, deterministic library for solving minimum-cost flow problems
//	on directed graphs with integral costs, capacities and supplies:
//
//	  • Static graphs: compact integer-ID digraphs, including complete
//	    directed and complete undirected families with O(1) arc lookup
//	  • Network Simplex: a primal simplex engine over a thread-indexed
//	    spanning tree, with five pluggable pivot (pricing) rules
//	  • Duals included: optimal node potentials certify every solution
//	    via complementary slackness
//
// ✨ Why choose mcflow?
//
//   - Exact              — pure int64 arithmetic, no epsilon tuning
//   - Deterministic      — identical inputs give identical pivots and flows
//   - Flexible           — equality, carry-at-least and ship-at-most
//     supply forms on the same engine
//   - Pure Go            — no cgo, a single assertion dependency in tests
//
// Everything is organized under three subpackages:
//
//	digraph/ — static integer-ID directed graph types & incidence iteration
//	mcf/     — the Network Simplex solver: problem surface, pivots, engine
//	netgen/  — deterministic instance generators for tests and benchmarks
//
// Quick ASCII example:
//
//	    s──▶a──▶t
//	    │       ▲
//	    └──▶b───┘
//
//	two routes from s to t; the cheaper one fills first, capacities and
//	lower bounds permitting.
//
// Dive into README.md for full examples and the solver's termination and
// optimality guarantees.
//
//	go get github.com/katalvlaran/mcflow
package mcflow
