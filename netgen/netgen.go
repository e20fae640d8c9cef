package netgen

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/mcflow/digraph"
	"github.com/katalvlaran/mcflow/mcf"
)

// ErrTooFewNodes indicates the node count cannot form the topology.
var ErrTooFewNodes = errors.New("netgen: too few nodes")

// ErrTooFewArcs indicates fewer arcs were requested than the backbone needs.
var ErrTooFewArcs = errors.New("netgen: too few arcs")

// Defaults - the single source of truth for unset options.
const (
	// DefaultSeed seeds the generator when neither WithSeed nor WithRand
	// is given.
	DefaultSeed = 1

	// DefaultMinCost / DefaultMaxCost bound random arc costs.
	DefaultMinCost = 1
	DefaultMaxCost = 100

	// DefaultMinCap / DefaultMaxCap bound the random capacity part: added
	// to the shipped volume on backbone and grid arcs, the whole capacity
	// of Transshipment chords.
	DefaultMinCap = 0
	DefaultMaxCap = 50

	// DefaultSupply is the shipped volume from source to sink.
	DefaultSupply = 20
)

// Instance is a generated problem: a graph plus attribute maps ready to
// bind onto mcf.New(inst.Graph).
type Instance struct {
	Graph  *digraph.List
	Lower  mcf.ArcMap
	Upper  mcf.ArcMap
	Cost   mcf.ArcMap
	Supply mcf.NodeMap

	// Source and Sink are the terminals carrying the generated supply.
	Source digraph.Node
	Sink   digraph.Node
}

type config struct {
	rng              *rand.Rand
	minCost, maxCost int64
	minCap, maxCap   int64
	supply           int64
}

// Option customizes a generator by mutating its configuration.
type Option func(*config)

// WithSeed locks the generator to a deterministic random stream.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("netgen: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithCostRange bounds random arc costs to [lo, hi]. Panics when lo > hi.
func WithCostRange(lo, hi int64) Option {
	if lo > hi {
		panic("netgen: WithCostRange(lo > hi)")
	}

	return func(c *config) { c.minCost, c.maxCost = lo, hi }
}

// WithCapacityRange bounds the random capacity part to [lo, hi]: backbone
// and grid arcs get the shipped volume plus a value in that range,
// Transshipment chords get a value in that range alone. Panics when
// lo < 0 or lo > hi.
func WithCapacityRange(lo, hi int64) Option {
	if lo < 0 || lo > hi {
		panic("netgen: WithCapacityRange out of order")
	}

	return func(c *config) { c.minCap, c.maxCap = lo, hi }
}

// WithSupply sets the shipped volume. Panics on negative k.
func WithSupply(k int64) Option {
	if k < 0 {
		panic("netgen: WithSupply(negative)")
	}

	return func(c *config) { c.supply = k }
}

func newConfig(opts ...Option) config {
	c := config{
		minCost: DefaultMinCost,
		maxCost: DefaultMaxCost,
		minCap:  DefaultMinCap,
		maxCap:  DefaultMaxCap,
		supply:  DefaultSupply,
	}
	for _, o := range opts {
		o(&c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return c
}

// span draws a value from [lo, hi] using the configured RNG.
func (c *config) span(lo, hi int64) int64 {
	if lo == hi {
		return lo
	}

	return lo + c.rng.Int63n(hi-lo+1)
}

// Transshipment generates n nodes and m arcs with supply at node 0 and
// demand at node n−1. Arcs 0→1→...→n−1 form a backbone whose capacities
// cover the shipped volume, so the instance is always feasible; the
// remaining m−(n−1) arcs are random chords.
//
// Requires n ≥ 2 and m ≥ n−1.
func Transshipment(n, m int, opts ...Option) (*Instance, error) {
	if n < 2 {
		return nil, ErrTooFewNodes
	}
	if m < n-1 {
		return nil, ErrTooFewArcs
	}
	cfg := newConfig(opts...)

	g := digraph.NewList()
	g.AddNodes(n)
	inst := &Instance{
		Graph:  g,
		Lower:  make(mcf.ArcMap, m),
		Upper:  make(mcf.ArcMap, m),
		Cost:   make(mcf.ArcMap, m),
		Supply: make(mcf.NodeMap, 2),
		Source: 0,
		Sink:   digraph.Node(n - 1),
	}

	// Backbone path: feasibility by construction.
	for i := 0; i < n-1; i++ {
		a, _ := g.AddArc(digraph.Node(i), digraph.Node(i+1))
		inst.Cost[a] = cfg.span(cfg.minCost, cfg.maxCost)
		inst.Upper[a] = cfg.supply + cfg.span(cfg.minCap, cfg.maxCap)
	}
	// Random chords; loops are skipped, parallels are fine.
	for len(inst.Cost) < m {
		u := digraph.Node(cfg.rng.Intn(n))
		v := digraph.Node(cfg.rng.Intn(n))
		if u == v {
			continue
		}
		a, _ := g.AddArc(u, v)
		inst.Cost[a] = cfg.span(cfg.minCost, cfg.maxCost)
		inst.Upper[a] = cfg.span(cfg.minCap, cfg.maxCap)
	}

	inst.Supply[inst.Source] = cfg.supply
	inst.Supply[inst.Sink] = -cfg.supply

	return inst, nil
}

// Grid generates a rows×cols lattice with right and down arcs, supply at
// the top-left corner and demand at the bottom-right one. Every arc's
// capacity covers the shipped volume, so the instance is always feasible.
//
// Requires rows ≥ 1, cols ≥ 1 and at least two cells.
func Grid(rows, cols int, opts ...Option) (*Instance, error) {
	if rows < 1 || cols < 1 || rows*cols < 2 {
		return nil, ErrTooFewNodes
	}
	cfg := newConfig(opts...)

	g := digraph.NewList()
	g.AddNodes(rows * cols)
	arcGuess := 2 * rows * cols
	inst := &Instance{
		Graph:  g,
		Lower:  make(mcf.ArcMap, arcGuess),
		Upper:  make(mcf.ArcMap, arcGuess),
		Cost:   make(mcf.ArcMap, arcGuess),
		Supply: make(mcf.NodeMap, 2),
		Source: 0,
		Sink:   digraph.Node(rows*cols - 1),
	}

	at := func(r, c int) digraph.Node { return digraph.Node(r*cols + c) }
	add := func(u, v digraph.Node) {
		a, _ := g.AddArc(u, v)
		inst.Cost[a] = cfg.span(cfg.minCost, cfg.maxCost)
		inst.Upper[a] = cfg.supply + cfg.span(cfg.minCap, cfg.maxCap)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				add(at(r, c), at(r, c+1))
			}
			if r+1 < rows {
				add(at(r, c), at(r+1, c))
			}
		}
	}

	inst.Supply[inst.Source] = cfg.supply
	inst.Supply[inst.Sink] = -cfg.supply

	return inst, nil
}
