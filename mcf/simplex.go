package mcf

import "github.com/katalvlaran/mcflow/digraph"

// Simplex is the Network Simplex problem surface: a chainable configuration
// builder over one bound graph, plus the result accessors of the last run.
//
// A Simplex borrows the graph and the read-only attribute maps for the
// duration of Run and never mutates them. Two Simplex instances on disjoint
// graphs are independent; one instance must not be used concurrently.
type Simplex struct {
	g digraph.Digraph

	// bound parameter maps (nil means the documented default)
	lowerA  ArcValuer
	upperA  ArcValuer
	costA   ArcValuer
	supplyN NodeValuer
	flowOut ArcSetter
	potOut  NodeSetter
	form    Form

	// results of the last successful run
	ran        bool
	status     Status
	pivotCount int
	resArcs    []digraph.Arc
	resNodes   []digraph.Node
	flowRes    []int64 // indexed by arc id
	potRes     []int64 // indexed by node id
	costRes    []int64 // indexed by arc id; resolved cost of the last run

	// engine state, retained across runs for reuse (see engine.go)
	nodeNum      int
	arcNum       int
	searchArcNum int
	allArcNum    int
	root         int
	src, dst     []int
	capArr       []int64
	flowArr      []int64
	costArr      []int64
	lowArr       []int64
	pi           []int64
	state        []int8
	parent       []int
	pred         []int
	predDir      []int8
	depth        []int
	thread       []int
	revThread    []int
	lastSucc     []int
	succNum      []int

	// pivot frame
	inArc int
	join  int
	uIn   int
	vIn   int
	uOut  int
	delta int64

	// tree-update scratch
	seg     []int
	path    []int
	order   []int
	stack   []int
	kidHead []int
	kidNext []int
	posBuf  []int
}

// New returns a Simplex bound to g with all parameters at their defaults:
// lower = 0, upper = Uncapacitated, cost = 1, supply = 0, form = EQ.
func New(g digraph.Digraph) *Simplex {
	return &Simplex{g: g}
}

// LowerMap binds the arc→lower-bound map. Unbound means zero everywhere.
func (s *Simplex) LowerMap(m ArcValuer) *Simplex {
	s.lowerA = m

	return s
}

// UpperMap binds the arc→upper-bound map. Unbound means Uncapacitated.
func (s *Simplex) UpperMap(m ArcValuer) *Simplex {
	s.upperA = m

	return s
}

// CapacityMap is an alias of UpperMap.
func (s *Simplex) CapacityMap(m ArcValuer) *Simplex { return s.UpperMap(m) }

// BoundMaps binds lower and upper bound maps in one call.
func (s *Simplex) BoundMaps(lower, upper ArcValuer) *Simplex {
	s.lowerA = lower
	s.upperA = upper

	return s
}

// CostMap binds the arc→cost map. Unbound means unit cost on every arc.
func (s *Simplex) CostMap(m ArcValuer) *Simplex {
	s.costA = m

	return s
}

// SupplyMap binds the node→supply map. Unbound means zero supply
// everywhere. SupplyMap and STSupply override each other; the last call
// before Run wins.
func (s *Simplex) SupplyMap(m NodeValuer) *Simplex {
	s.supplyN = m

	return s
}

// STSupply sets supply(src) = +k, supply(dst) = −k and zero elsewhere,
// the single source-target shorthand. Overrides any earlier SupplyMap.
func (s *Simplex) STSupply(src, dst digraph.Node, k int64) *Simplex {
	s.supplyN = stSupply{s: src, t: dst, k: k}

	return s
}

// FlowMap binds the destination of the primal solution. When unbound, the
// solution is still recorded internally and reachable via Flow and Flows.
func (s *Simplex) FlowMap(m ArcSetter) *Simplex {
	s.flowOut = m

	return s
}

// PotentialMap binds the destination of the dual solution. When unbound,
// the solution is still recorded internally and reachable via Potential
// and Potentials.
func (s *Simplex) PotentialMap(m NodeSetter) *Simplex {
	s.potOut = m

	return s
}

// ProblemForm selects the supply interpretation: EQ (default), GEQ
// (CarrySupplies) or LEQ (SatisfyDemands).
func (s *Simplex) ProblemForm(f Form) *Simplex {
	s.form = f

	return s
}

// ResetParams drops every bound map and parameter, restoring the state of
// a freshly constructed Simplex. The graph binding survives.
func (s *Simplex) ResetParams() *Simplex {
	s.lowerA = nil
	s.upperA = nil
	s.costA = nil
	s.supplyN = nil
	s.flowOut = nil
	s.potOut = nil
	s.form = EQ
	s.ran = false

	return s
}

// Reset is ResetParams plus release of all retained solver storage. Use it
// when the bound graph has grown, or to return memory after large runs;
// the next Run re-reads the topology either way.
func (s *Simplex) Reset() *Simplex {
	s.ResetParams()
	s.resArcs, s.resNodes = nil, nil
	s.flowRes, s.potRes, s.costRes = nil, nil, nil
	s.src, s.dst = nil, nil
	s.capArr, s.flowArr, s.costArr, s.lowArr, s.pi = nil, nil, nil, nil, nil
	s.state = nil
	s.parent, s.pred, s.depth = nil, nil, nil
	s.thread, s.revThread, s.lastSucc, s.succNum = nil, nil, nil, nil
	s.predDir = nil
	s.seg, s.path, s.order, s.stack = nil, nil, nil, nil
	s.kidHead, s.kidNext, s.posBuf = nil, nil, nil

	return s
}

// Pivots reports the number of pivots performed by the last run.
func (s *Simplex) Pivots() int { return s.pivotCount }

// Flow returns the flow assigned to arc a by the last optimal run.
func (s *Simplex) Flow(a digraph.Arc) int64 {
	if !s.ran {
		return 0
	}

	return s.flowRes[a]
}

// Potential returns the dual value assigned to node n by the last optimal
// run.
func (s *Simplex) Potential(n digraph.Node) int64 {
	if !s.ran {
		return 0
	}

	return s.potRes[n]
}

// Flows returns the full primal solution of the last optimal run as a
// fresh ArcMap.
func (s *Simplex) Flows() ArcMap {
	m := make(ArcMap, len(s.resArcs))
	if !s.ran {
		return m
	}
	for _, a := range s.resArcs {
		m[a] = s.flowRes[a]
	}

	return m
}

// Potentials returns the full dual solution of the last optimal run as a
// fresh NodeMap.
func (s *Simplex) Potentials() NodeMap {
	m := make(NodeMap, len(s.resNodes))
	if !s.ran {
		return m
	}
	for _, n := range s.resNodes {
		m[n] = s.potRes[n]
	}

	return m
}

// TotalCost reports Σ cost(a)·flow(a) of the last optimal run in int64.
// For other accumulator types see TotalCostIn.
func (s *Simplex) TotalCost() int64 {
	return TotalCostIn[int64](s)
}
