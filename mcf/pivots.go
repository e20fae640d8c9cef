// Entering-arc (pricing) strategies. Each strategy scans the searchable
// arc range — original arcs plus the zero-cost slack arcs of the
// inequality forms — for a non-basic arc violating its optimality
// condition: state LOWER with negative reduced cost, or state UPPER with
// positive reduced cost. The violation magnitude state·redCost is negative
// exactly on violators, so every rule minimizes that product.
//
// All strategies are admissible (they report a violator whenever one
// exists) and deterministic; they differ only in how much pricing work
// buys how strong an entering arc.
package mcf

import (
	"math"
	"sort"
)

// enteringArc is the strategy surface consumed by the engine loop.
type enteringArc interface {
	// find reports the next entering arc, or ok=false at optimality.
	find() (arc int, ok bool)
}

// newPicker instantiates the requested strategy over the current problem.
// The rule value is validated by Run before init.
func (s *Simplex) newPicker(pr PivotRule) enteringArc {
	switch pr {
	case FirstEligible:
		return &firstEligible{s: s}
	case BestEligible:
		return &bestEligible{s: s}
	case CandidateList:
		return newCandidateList(s)
	case AlteringList:
		return newAlteringList(s)
	default:
		return newBlockSearch(s)
	}
}

// violation reports state·redCost of arc e: negative iff e is a violator.
func violation(s *Simplex, e int) int64 {
	return int64(s.state[e]) * s.redCost(e)
}

// firstEligible scans arcs in id order from a rotating cursor and returns
// the first violator. The cursor survives across pivots, spreading the
// pricing effort over the whole arc set.
type firstEligible struct {
	s    *Simplex
	next int
}

func (r *firstEligible) find() (int, bool) {
	s := r.s
	sa := s.searchArcNum
	e := r.next
	for i := 0; i < sa; i++ {
		if violation(s, e) < 0 {
			r.next = e + 1
			if r.next == sa {
				r.next = 0
			}

			return e, true
		}
		e++
		if e == sa {
			e = 0
		}
	}

	return 0, false
}

// bestEligible prices every arc and returns a maximum violator (Dantzig's
// rule): fewest pivots, costliest pricing.
type bestEligible struct {
	s *Simplex
}

func (r *bestEligible) find() (int, bool) {
	s := r.s
	var best int64
	bestArc := -1
	for e := 0; e < s.searchArcNum; e++ {
		if c := violation(s, e); c < best {
			best, bestArc = c, e
		}
	}
	if bestArc < 0 {
		return 0, false
	}

	return bestArc, true
}

// blockSearch prices √m-sized blocks round-robin from a rotating cursor
// and returns the strongest violator of the first block that has one.
// The default rule: near-BestEligible pivot quality at a fraction of the
// pricing cost.
type blockSearch struct {
	s         *Simplex
	blockSize int
	next      int
}

func newBlockSearch(s *Simplex) *blockSearch {
	bs := int(blockSizeFactor * math.Sqrt(float64(s.searchArcNum)))
	if bs < minBlockSize {
		bs = minBlockSize
	}

	return &blockSearch{s: s, blockSize: bs}
}

func (r *blockSearch) find() (int, bool) {
	s := r.s
	sa := s.searchArcNum
	var best int64
	bestArc := -1
	cnt := r.blockSize
	e := r.next
	for i := 0; i < sa; i++ {
		if c := violation(s, e); c < best {
			best, bestArc = c, e
		}
		cnt--
		if cnt == 0 {
			if bestArc >= 0 {
				break
			}
			cnt = r.blockSize
		}
		e++
		if e == sa {
			e = 0
		}
	}
	if bestArc < 0 {
		return 0, false
	}
	r.next = bestArc + 1
	if r.next == sa {
		r.next = 0
	}

	return bestArc, true
}

// candidateList keeps a pool of known violators. Between rebuilds it runs
// a bounded number of minor iterations that pick the strongest surviving
// candidate, discarding entries that no longer violate.
type candidateList struct {
	s          *Simplex
	listLength int
	minorLimit int
	next       int
	minor      int
	cand       []int
}

func newCandidateList(s *Simplex) *candidateList {
	ll := int(listLengthFactor * math.Sqrt(float64(s.searchArcNum)))
	if ll < minListLength {
		ll = minListLength
	}
	ml := int(minorLimitFactor * float64(ll))
	if ml < minMinorLimit {
		ml = minMinorLimit
	}

	return &candidateList{s: s, listLength: ll, minorLimit: ml}
}

func (r *candidateList) find() (int, bool) {
	s := r.s
	sa := s.searchArcNum

	// Minor iteration: the pool may still hold a violator.
	if r.minor < r.minorLimit && len(r.cand) > 0 {
		r.minor++
		var best int64
		bestArc := -1
		keep := r.cand[:0]
		for _, e := range r.cand {
			if c := violation(s, e); c < 0 {
				keep = append(keep, e)
				if c < best {
					best, bestArc = c, e
				}
			}
		}
		r.cand = keep
		if bestArc >= 0 {
			return bestArc, true
		}
	}

	// Major iteration: rebuild the pool from the rotating cursor.
	r.cand = r.cand[:0]
	r.minor = 1
	var best int64
	bestArc := -1
	e := r.next
	for i := 0; i < sa; i++ {
		if c := violation(s, e); c < 0 {
			r.cand = append(r.cand, e)
			if c < best {
				best, bestArc = c, e
			}
			if len(r.cand) == r.listLength {
				break
			}
		}
		e++
		if e == sa {
			e = 0
		}
	}
	if bestArc < 0 {
		r.cand = r.cand[:0]

		return 0, false
	}
	r.next = e + 1
	if r.next >= sa {
		r.next = 0
	}

	return bestArc, true
}

// alteringList extends its pool blockwise until a violator is known,
// re-sorts the surviving candidates by current violation after every pivot
// and retains only the strongest head for the next one.
type alteringList struct {
	s          *Simplex
	blockSize  int
	headLength int
	next       int
	cand       []int
}

func newAlteringList(s *Simplex) *alteringList {
	bs := int(blockSizeFactor * math.Sqrt(float64(s.searchArcNum)))
	if bs < minBlockSize {
		bs = minBlockSize
	}
	hl := int(headLengthFactor * float64(bs))
	if hl < minHeadLength {
		hl = minHeadLength
	}

	return &alteringList{s: s, blockSize: bs, headLength: hl}
}

func (r *alteringList) find() (int, bool) {
	s := r.s
	sa := s.searchArcNum

	// Drop candidates that stopped violating since the last pivot.
	keep := r.cand[:0]
	for _, e := range r.cand {
		if violation(s, e) < 0 {
			keep = append(keep, e)
		}
	}
	r.cand = keep

	// Extend blockwise from the cursor until the pool is non-empty or the
	// whole range has been priced.
	e := r.next
	scanned := 0
	for scanned < sa {
		for cnt := r.blockSize; cnt > 0 && scanned < sa; cnt-- {
			if violation(s, e) < 0 {
				r.cand = append(r.cand, e)
			}
			scanned++
			e++
			if e == sa {
				e = 0
			}
		}
		if len(r.cand) > 0 {
			break
		}
	}
	r.next = e
	if len(r.cand) == 0 {
		return 0, false
	}

	// Strongest first; arc id breaks exact ties to keep runs reproducible.
	sort.Slice(r.cand, func(i, j int) bool {
		ci, cj := violation(s, r.cand[i]), violation(s, r.cand[j])
		if ci != cj {
			return ci < cj
		}

		return r.cand[i] < r.cand[j]
	})
	best := r.cand[0]
	tail := r.cand[1:]
	if len(tail) > r.headLength-1 {
		tail = tail[:r.headLength-1]
	}
	r.cand = append(r.cand[:0], tail...)

	return best, true
}
