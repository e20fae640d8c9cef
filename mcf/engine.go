// Network Simplex engine: preprocessing, the augmented initial basis,
// the pivot loop and result extraction.
package mcf

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/mcflow/digraph"
)

// Basis state of an arc.
const (
	stateLower int8 = 1
	stateTree  int8 = 0
	stateUpper int8 = -1
)

// Orientation of a node's predecessor arc within the spanning tree.
const (
	dirUp   int8 = 1  // pred arc points node→parent
	dirDown int8 = -1 // pred arc points parent→node
)

// Run executes the solver with the given pivot rule (BlockSearch when
// omitted) and reports the outcome.
//
// The error is non-nil only on contract violations: an unknown pivot rule,
// a missing graph binding, or an arc with lower bound above its upper
// bound. Status is meaningful only when the error is nil; Infeasible and
// Unbounded are ordinary outcomes, not errors.
//
// On Optimal, the primal flow (with lower-bound shifts undone) is written
// to the bound flow map and the dual potentials to the bound potential
// map, exactly once; unbound destinations are kept internally and served
// by Flow, Flows, Potential and Potentials.
func (s *Simplex) Run(rule ...PivotRule) (Status, error) {
	pr := BlockSearch
	if len(rule) > 0 {
		pr = rule[0]
	}
	if pr < FirstEligible || pr > AlteringList {
		return 0, ErrPivotRule
	}
	if s.g == nil {
		return 0, ErrNoGraph
	}

	s.ran = false
	s.pivotCount = 0
	proceed, err := s.init()
	if err != nil {
		return 0, err
	}
	if !proceed {
		// Pre-check infeasibility, or the trivially optimal empty graph;
		// init has already classified and published.
		return s.status, nil
	}

	// Main loop: price, pivot, repeat until no arc violates optimality.
	picker := s.newPicker(pr)
	for {
		e, ok := picker.find()
		if !ok {
			break
		}
		s.inArc = e
		s.findJoin()
		change := s.findLeaving()
		if s.delta >= Uncapacitated {
			// The cycle has no forward capacity limit: a negative-cost
			// directed cycle of uncapacitated arcs.
			s.status = Unbounded

			return s.status, nil
		}
		s.changeFlow(change)
		if change {
			s.updateTree()
			s.updatePotential()
		}
		s.pivotCount++
	}

	// Any residual flow on an artificial arc certifies infeasibility.
	for e := s.searchArcNum; e < s.allArcNum; e++ {
		if s.flowArr[e] != 0 {
			s.status = Infeasible

			return s.status, nil
		}
	}

	s.publish()
	s.status = Optimal

	return s.status, nil
}

// init resolves the bound maps, runs the supply-sum feasibility pre-check,
// performs the lower-bound shift and constructs the augmented graph with
// its initial spanning-tree basis.
//
// It reports proceed=false when the outcome is already decided (pre-check
// infeasibility, empty graph); the decided Status is stored on s.
func (s *Simplex) init() (bool, error) {
	nodes := s.g.Nodes()
	arcs := s.g.Arcs()
	n, m := len(nodes), len(arcs)
	s.nodeNum, s.arcNum = n, m
	s.resArcs, s.resNodes = arcs, nodes

	if n == 0 {
		// Nothing to route; an empty flow is optimal at zero cost.
		s.flowRes = s.flowRes[:0]
		s.potRes = s.potRes[:0]
		s.costRes = s.costRes[:0]
		s.ran = true
		s.status = Optimal

		return false, nil
	}

	// Dense id→index translation for nodes; arcs use iteration order.
	nodeIdx := make([]int, s.g.MaxNodeID()+1)
	for i, nd := range nodes {
		nodeIdx[nd] = i
	}

	s.flowRes = int64Slice(s.flowRes, s.g.MaxArcID()+1)
	s.costRes = int64Slice(s.costRes, s.g.MaxArcID()+1)
	s.potRes = int64Slice(s.potRes, s.g.MaxNodeID()+1)

	// Bound order is a contract check; it precedes the supply pre-check so
	// a violation is reported as ErrBoundOrder in every case.
	for _, a := range arcs {
		if s.lowerValue(a) > s.upperValue(a) {
			return false, ErrBoundOrder
		}
	}

	// Supply resolution and the feasibility pre-check on the sum.
	sup := make([]int64, n)
	var total int64
	for i, nd := range nodes {
		sup[i] = s.supplyValue(nd)
		total += sup[i]
	}
	switch s.form {
	case GEQ:
		if total > 0 {
			s.status = Infeasible

			return false, nil
		}
	case LEQ:
		if total < 0 {
			s.status = Infeasible

			return false, nil
		}
	default: // EQ
		if total != 0 {
			s.status = Infeasible

			return false, nil
		}
	}

	// Arc-indexed arrays over the augmented graph (worst case m+2n arcs).
	allMax := m + 2*n
	s.src = intSlice(s.src, allMax)
	s.dst = intSlice(s.dst, allMax)
	s.capArr = int64Slice(s.capArr, allMax)
	s.flowArr = int64Slice(s.flowArr, allMax)
	s.costArr = int64Slice(s.costArr, allMax)
	s.state = int8Slice(s.state, allMax)
	s.lowArr = int64Slice(s.lowArr, m)

	// Lower-bound shift: capacities become upper−lower, supplies absorb
	// the forced flow; all original arcs start non-basic at their lower
	// bound (zero after the shift).
	var maxCost int64
	for i, a := range arcs {
		lo := s.lowerValue(a)
		up := s.upperValue(a)
		c := s.costValue(a)
		if lo > up {
			return false, ErrBoundOrder
		}
		u, v := nodeIdx[s.g.Source(a)], nodeIdx[s.g.Target(a)]
		s.src[i], s.dst[i] = u, v
		if up >= Uncapacitated {
			s.capArr[i] = Uncapacitated
		} else {
			s.capArr[i] = up - lo
		}
		s.costArr[i] = c
		s.flowArr[i] = 0
		s.state[i] = stateLower
		s.lowArr[i] = lo
		s.costRes[a] = c
		if lo != 0 {
			sup[u] -= lo
			sup[v] += lo
		}
		if c < 0 {
			c = -c
		}
		if c > maxCost {
			maxCost = c
		}
	}

	// artCost strictly dominates the cost of any cycle in the original
	// graph; never a type-max value, so reduced costs cannot overflow.
	artCost := 1 + int64(n+1)*maxCost

	// Node-indexed tree arrays; the artificial root takes index n.
	nn := n + 1
	s.parent = intSlice(s.parent, nn)
	s.pred = intSlice(s.pred, nn)
	s.predDir = int8Slice(s.predDir, nn)
	s.depth = intSlice(s.depth, nn)
	s.thread = intSlice(s.thread, nn)
	s.revThread = intSlice(s.revThread, nn)
	s.lastSucc = intSlice(s.lastSucc, nn)
	s.succNum = intSlice(s.succNum, nn)
	s.pi = int64Slice(s.pi, nn)
	s.seg = s.seg[:0]
	s.path = s.path[:0]
	s.order = s.order[:0]
	s.stack = s.stack[:0]
	s.kidHead = intSlice(s.kidHead, nn)
	s.kidNext = intSlice(s.kidNext, nn)
	s.posBuf = intSlice(s.posBuf, nn)

	root := n
	s.root = root
	s.parent[root] = -1
	s.pred[root] = -1
	s.depth[root] = 0
	s.thread[root] = 0
	s.revThread[0] = root
	s.succNum[root] = nn
	s.lastSucc[root] = root - 1
	s.pi[root] = 0

	// Augmented tree construction. With Σsupply = 0 every node hangs off
	// the root by one artificial arc and equality holds throughout. The
	// inequality forms additionally expose zero-cost slack arcs between
	// each node and the root to the pricing range, so balances may exceed
	// (GEQ) or undershoot (LEQ) the stated supplies at zero dual price.
	switch {
	case total == 0:
		s.searchArcNum = m
		s.allArcNum = m + n
		for u := 0; u < n; u++ {
			e := m + u
			s.attachLeaf(u, e)
			s.capArr[e] = Uncapacitated
			s.state[e] = stateTree
			if sup[u] >= 0 {
				s.predDir[u] = dirUp
				s.pi[u] = 0
				s.src[e], s.dst[e] = u, root
				s.flowArr[e] = sup[u]
				s.costArr[e] = 0
			} else {
				s.predDir[u] = dirDown
				s.pi[u] = artCost
				s.src[e], s.dst[e] = root, u
				s.flowArr[e] = -sup[u]
				s.costArr[e] = artCost
			}
		}

	case total > 0:
		// LEQ: surplus may stay at its node; deficits must be met.
		s.searchArcNum = m + n
		f := m + n
		for u := 0; u < n; u++ {
			e := m + u
			if sup[u] >= 0 {
				s.attachLeaf(u, e)
				s.predDir[u] = dirUp
				s.pi[u] = 0
				s.src[e], s.dst[e] = u, root
				s.capArr[e] = Uncapacitated
				s.flowArr[e] = sup[u]
				s.costArr[e] = 0
				s.state[e] = stateTree
			} else {
				s.attachLeaf(u, f)
				s.predDir[u] = dirDown
				s.pi[u] = artCost
				s.src[f], s.dst[f] = root, u
				s.capArr[f] = Uncapacitated
				s.flowArr[f] = -sup[u]
				s.costArr[f] = artCost
				s.state[f] = stateTree
				s.src[e], s.dst[e] = u, root
				s.capArr[e] = Uncapacitated
				s.flowArr[e] = 0
				s.costArr[e] = 0
				s.state[e] = stateLower
				f++
			}
		}
		s.allArcNum = f

	default:
		// GEQ: deficits may stay unmet in part; supplies must be carried.
		s.searchArcNum = m + n
		f := m + n
		for u := 0; u < n; u++ {
			e := m + u
			if sup[u] <= 0 {
				s.attachLeaf(u, e)
				s.predDir[u] = dirDown
				s.pi[u] = 0
				s.src[e], s.dst[e] = root, u
				s.capArr[e] = Uncapacitated
				s.flowArr[e] = -sup[u]
				s.costArr[e] = 0
				s.state[e] = stateTree
			} else {
				s.attachLeaf(u, f)
				s.predDir[u] = dirUp
				s.pi[u] = -artCost
				s.src[f], s.dst[f] = u, root
				s.capArr[f] = Uncapacitated
				s.flowArr[f] = sup[u]
				s.costArr[f] = artCost
				s.state[f] = stateTree
				s.src[e], s.dst[e] = root, u
				s.capArr[e] = Uncapacitated
				s.flowArr[e] = 0
				s.costArr[e] = 0
				s.state[e] = stateLower
				f++
			}
		}
		s.allArcNum = f
	}

	return true, nil
}

// attachLeaf hangs node u off the root with predecessor arc e, forming the
// initial star-shaped spanning tree in thread order 0,1,...,n-1.
func (s *Simplex) attachLeaf(u, e int) {
	s.parent[u] = s.root
	s.pred[u] = e
	s.depth[u] = 1
	s.thread[u] = u + 1
	s.revThread[u+1] = u
	s.succNum[u] = 1
	s.lastSucc[u] = u
}

// redCost reports cost(e) + pi(source) − pi(target) over internal arcs.
func (s *Simplex) redCost(e int) int64 {
	return s.costArr[e] + s.pi[s.src[e]] - s.pi[s.dst[e]]
}

// publish undoes the lower-bound shift and writes the solution to the
// bound destination maps and the internal result stores.
func (s *Simplex) publish() {
	for i, a := range s.resArcs {
		f := s.flowArr[i] + s.lowArr[i]
		s.flowRes[a] = f
		if s.flowOut != nil {
			s.flowOut.Set(a, f)
		}
	}
	for i, nd := range s.resNodes {
		s.potRes[nd] = s.pi[i]
		if s.potOut != nil {
			s.potOut.Set(nd, s.pi[i])
		}
	}
	s.ran = true
}

// TotalCostIn reports Σ cost(a)·flow(a) of the last optimal run, computed
// in the caller-chosen accumulator type. Choose T wide enough for the
// instance; no overflow checking is performed.
func TotalCostIn[T constraints.Integer | constraints.Float](s *Simplex) T {
	var total T
	if !s.ran {
		return total
	}
	for _, a := range s.resArcs {
		total += T(s.costRes[a]) * T(s.flowRes[a])
	}

	return total
}

// Default readers for unbound parameter maps.

func (s *Simplex) lowerValue(a digraph.Arc) int64 {
	if s.lowerA == nil {
		return 0
	}

	return s.lowerA.Value(a)
}

func (s *Simplex) upperValue(a digraph.Arc) int64 {
	if s.upperA == nil {
		return Uncapacitated
	}

	return s.upperA.Value(a)
}

func (s *Simplex) costValue(a digraph.Arc) int64 {
	if s.costA == nil {
		return 1
	}

	return s.costA.Value(a)
}

func (s *Simplex) supplyValue(n digraph.Node) int64 {
	if s.supplyN == nil {
		return 0
	}

	return s.supplyN.Value(n)
}

// Capacity-keeping slice growth helpers; allocation is avoided whenever a
// retained buffer is large enough.

func intSlice(buf []int, n int) []int {
	if cap(buf) >= n {
		return buf[:n]
	}

	return make([]int, n)
}

func int64Slice(buf []int64, n int) []int64 {
	if cap(buf) >= n {
		return buf[:n]
	}

	return make([]int64, n)
}

func int8Slice(buf []int8, n int) []int8 {
	if cap(buf) >= n {
		return buf[:n]
	}

	return make([]int8, n)
}
