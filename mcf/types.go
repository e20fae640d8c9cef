// Package mcf: shared enums, sentinel errors and tuning constants.
package mcf

import (
	"errors"
	"math"
)

// Sentinel errors reported by Run. Infeasibility and unboundedness are NOT
// errors; they are ordinary outcomes carried by Status.
var (
	// ErrNoGraph indicates Run was invoked on a Simplex without a graph.
	ErrNoGraph = errors.New("mcf: no graph bound")

	// ErrBoundOrder indicates some arc has lower bound > upper bound.
	ErrBoundOrder = errors.New("mcf: arc lower bound exceeds upper bound")

	// ErrPivotRule indicates an unknown pivot rule was requested.
	ErrPivotRule = errors.New("mcf: unknown pivot rule")
)

// Uncapacitated is the upper bound meaning "no capacity limit". It is the
// default for every arc while no upper/capacity map is bound.
const Uncapacitated = int64(math.MaxInt64)

// Form selects how node balances relate to the stated supplies.
type Form int

const (
	// EQ requires bal(n) = supply(n) at every node (the default).
	EQ Form = iota

	// GEQ requires bal(n) ≥ supply(n): carry at least the stated supplies.
	GEQ

	// LEQ requires bal(n) ≤ supply(n): meet every stated demand while
	// shipping at most the stated supplies.
	LEQ
)

// Aliases naming the inequality forms by intent.
const (
	// CarrySupplies is the intent-revealing name of GEQ.
	CarrySupplies = GEQ

	// SatisfyDemands is the intent-revealing name of LEQ.
	SatisfyDemands = LEQ
)

// Status classifies the outcome of a run.
type Status int

const (
	// Optimal: a minimum-cost feasible flow was found and published.
	Optimal Status = iota

	// Infeasible: no flow satisfies the supply and bound constraints.
	Infeasible

	// Unbounded: the objective has no finite minimum (a negative-cost
	// directed cycle of uncapacitated arcs exists).
	Unbounded
)

// String reports the conventional name of the status.
func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Infeasible:
		return "infeasible"
	case Unbounded:
		return "unbounded"
	default:
		return "unknown"
	}
}

// PivotRule selects the entering-arc (pricing) strategy.
type PivotRule int

const (
	// FirstEligible scans arcs from a rotating cursor and returns the
	// first violating arc. The cursor persists across pivots.
	FirstEligible PivotRule = iota

	// BestEligible scans all arcs and returns a maximum-violation arc.
	BestEligible

	// BlockSearch scans √m-sized blocks round-robin and returns the best
	// violation found in the first non-empty block. The default.
	BlockSearch

	// CandidateList keeps a pool of violating arcs, picking the best
	// remaining candidate for a few minor iterations between rebuilds.
	CandidateList

	// AlteringList extends the pool blockwise, re-sorts it by violation
	// after each pivot and retains only the strongest head.
	AlteringList
)

// Tuning constants for the pricing rules - the single source of truth.
// They trade pivot count against pricing effort and have no effect on the
// optimality of results.
const (
	// blockSizeFactor scales √m into the BlockSearch block size.
	blockSizeFactor = 1.0

	// minBlockSize floors the BlockSearch block size.
	minBlockSize = 10

	// listLengthFactor scales √m into the CandidateList pool length.
	listLengthFactor = 0.25

	// minListLength floors the CandidateList pool length.
	minListLength = 10

	// minorLimitFactor scales the pool length into the minor-iteration cap.
	minorLimitFactor = 0.1

	// minMinorLimit floors the minor-iteration cap.
	minMinorLimit = 3

	// headLengthFactor scales the AlteringList block size into the number
	// of candidates retained after each pivot.
	headLengthFactor = 0.01

	// minHeadLength floors the retained head length.
	minHeadLength = 3
)
