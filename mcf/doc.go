// Package mcf solves minimum-cost flow problems on digraphs with integral
// costs, capacities and supplies, using the primal Network Simplex method.
//
// Given a directed graph, per-arc cost and bound maps and per-node supplies,
// the solver computes an integral flow of minimum total cost together with
// optimal node potentials (dual values) certifying the optimum through
// complementary slackness.
//
// # Problem forms
//
// Writing bal(n) for the net outflow Σout−Σin of node n, three supply
// interpretations are supported:
//
//	EQ   (default)        bal(n) = supply(n)   at every node
//	GEQ  (CarrySupplies)  bal(n) ≥ supply(n)   "carry at least the supplies"
//	LEQ  (SatisfyDemands) bal(n) ≤ supply(n)   "meet every demand, ship at most the supplies"
//
// # Method
//
// The engine augments the graph with an artificial root node and one
// artificial arc per node, yielding a trivially feasible starting basis.
// It then pivots: a pricing rule selects a non-basic arc with violating
// reduced cost, the unique tree cycle through it is traversed for the
// leaving arc, and flows, basis state and potentials are updated along the
// affected subtree in time proportional to its size. The spanning tree is
// kept in flat thread-indexed arrays (parent, predecessor arc, depth,
// preorder thread and its reverse, last successor, subtree size).
//
// Termination on every integral instance is guaranteed by a deterministic
// leaving-arc tie-break (Cunningham's rule); no cost perturbation is used.
//
// # Pricing rules
//
// Five entering-arc strategies are available and give identical optimal
// costs, differing only in pivot counts:
//
//	FirstEligible  - rotating scan, first violating arc
//	BestEligible   - full scan, maximum violation
//	BlockSearch    - √m-sized blocks, best violation per block (default)
//	CandidateList  - cached candidate pool with minor iterations
//	AlteringList   - candidate pool re-sorted and truncated after each pivot
//
// # Usage
//
//	g := digraph.NewList()
//	... // add nodes and arcs
//	s := mcf.New(g).
//		CostMap(costs).
//		UpperMap(caps).
//		SupplyMap(supplies)
//	status, err := s.Run()
//	if err != nil { ... }           // contract violation (e.g. lower > upper)
//	if status == mcf.Optimal {
//		total := s.TotalCost()
//		f := s.Flow(a)
//		pi := s.Potential(n)
//	}
//
// Unbound maps fall back to lower = 0, upper = Uncapacitated, cost = 1 and
// supply = 0. Infeasible and Unbounded are ordinary outcomes reported in
// the Status, not errors.
//
// # Complexity
//
//	Per pivot:  O(V) cycle work + O(subtree) update; pricing per rule.
//	Memory:     O(V + E) flat arrays, reused across runs of one Simplex.
//
// See: docs/MCF.md for the full tutorial and the optimality conditions.
package mcf
