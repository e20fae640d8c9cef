// Spanning-tree mechanics of one pivot: cycle discovery, the leaving-arc
// search with its anti-cycling tie-break, flow augmentation, subtree
// rerooting and the potential shift.
package mcf

// findJoin locates the apex of the cycle closed by the entering arc: the
// lowest common ancestor of its endpoints, reached by ascending the deeper
// side first.
func (s *Simplex) findJoin() {
	u, v := s.src[s.inArc], s.dst[s.inArc]
	for u != v {
		switch {
		case s.depth[u] > s.depth[v]:
			u = s.parent[u]
		case s.depth[v] > s.depth[u]:
			v = s.parent[v]
		default:
			u = s.parent[u]
			v = s.parent[v]
		}
	}
	s.join = u
}

// findLeaving walks both tree paths of the cycle, computes the residual
// bottleneck δ and selects the leaving arc.
//
// The cycle is oriented along the entering arc's violating direction: from
// its source when entering at the lower bound, reversed when at the upper.
// Ties are broken deterministically (Cunningham's second-candidate rule):
// the first path accepts a new minimum only strictly, the second also on
// equality, which guarantees finite termination under degeneracy.
//
// Reports false when the entering arc itself is the blocking arc, in which
// case the pivot is a bound flip and the tree is unchanged.
func (s *Simplex) findLeaving() bool {
	var first, second int
	if s.state[s.inArc] == stateLower {
		first, second = s.src[s.inArc], s.dst[s.inArc]
	} else {
		first, second = s.dst[s.inArc], s.src[s.inArc]
	}
	s.delta = s.capArr[s.inArc]

	result := 0
	for u := first; u != s.join; u = s.parent[u] {
		e := s.pred[u]
		d := s.flowArr[e]
		if s.predDir[u] == dirDown {
			if c := s.capArr[e]; c >= Uncapacitated {
				d = Uncapacitated
			} else {
				d = c - s.flowArr[e]
			}
		}
		if d < s.delta {
			s.delta = d
			s.uOut = u
			result = 1
		}
	}
	for u := second; u != s.join; u = s.parent[u] {
		e := s.pred[u]
		d := s.flowArr[e]
		if s.predDir[u] == dirUp {
			if c := s.capArr[e]; c >= Uncapacitated {
				d = Uncapacitated
			} else {
				d = c - s.flowArr[e]
			}
		}
		if d <= s.delta {
			s.delta = d
			s.uOut = u
			result = 2
		}
	}

	// uIn is the endpoint of the entering arc inside the subtree that the
	// leaving arc detaches; vIn stays in the main tree.
	if result == 1 {
		s.uIn, s.vIn = first, second
	} else {
		s.uIn, s.vIn = second, first
	}

	return result != 0
}

// changeFlow augments δ along the cycle and updates the basis states of
// the entering and leaving arcs.
func (s *Simplex) changeFlow(change bool) {
	if s.delta > 0 {
		val := int64(s.state[s.inArc]) * s.delta
		s.flowArr[s.inArc] += val
		for u := s.src[s.inArc]; u != s.join; u = s.parent[u] {
			s.flowArr[s.pred[u]] -= int64(s.predDir[u]) * val
		}
		for u := s.dst[s.inArc]; u != s.join; u = s.parent[u] {
			s.flowArr[s.pred[u]] += int64(s.predDir[u]) * val
		}
	}

	if change {
		s.state[s.inArc] = stateTree
		leave := s.pred[s.uOut]
		if s.flowArr[leave] == 0 {
			s.state[leave] = stateLower
		} else {
			s.state[leave] = stateUpper
		}
	} else {
		// Bound flip: the entering arc jumps to its other bound.
		s.state[s.inArc] = -s.state[s.inArc]
	}
}

// updateTree removes the leaving arc, reroots the detached subtree at uIn
// and reattaches it under vIn through the entering arc, restoring every
// tree index (parent, pred, predDir, depth, thread, revThread, lastSucc,
// succNum) in time proportional to the subtree size.
func (s *Simplex) updateTree() {
	uIn, vIn, uOut := s.uIn, s.vIn, s.uOut
	oldLast := s.lastSucc[uOut]

	// 1) Collect the detached subtree: its preorder thread segment.
	s.seg = s.seg[:0]
	for u := uOut; ; u = s.thread[u] {
		s.seg = append(s.seg, u)
		if u == oldLast {
			break
		}
	}
	size := len(s.seg)

	// 2) Splice the segment out of the global thread order.
	before := s.revThread[uOut]
	after := s.thread[oldLast]
	s.thread[before] = after
	s.revThread[after] = before

	// 3) Shrink the severed ancestor chain.
	for a := s.parent[uOut]; a != -1; a = s.parent[a] {
		s.succNum[a] -= size
		if s.lastSucc[a] == oldLast {
			s.lastSucc[a] = before
		}
	}

	// 4) Reverse the basis path uIn..uOut, rerooting the subtree at uIn,
	//    then hang uIn under vIn through the entering arc. Each node on
	//    the path takes over the predecessor arc of its former parent,
	//    with the orientation flipped.
	s.path = s.path[:0]
	for u := uIn; u != uOut; u = s.parent[u] {
		s.path = append(s.path, u)
	}
	s.path = append(s.path, uOut)
	for i := len(s.path) - 1; i > 0; i-- {
		child, par := s.path[i], s.path[i-1]
		s.parent[child] = par
		s.pred[child] = s.pred[par]
		s.predDir[child] = -s.predDir[par]
	}
	s.parent[uIn] = vIn
	s.pred[uIn] = s.inArc
	if s.src[s.inArc] == uIn {
		s.predDir[uIn] = dirUp
	} else {
		s.predDir[uIn] = dirDown
	}

	// 5) Rebuild the subtree's preorder from the new parent pointers.
	//    Child lists are threaded through kidHead/kidNext; pushing the
	//    segment in reverse keeps the list order deterministic.
	for _, u := range s.seg {
		s.kidHead[u] = -1
	}
	for i := len(s.seg) - 1; i >= 0; i-- {
		u := s.seg[i]
		if u == uIn {
			continue
		}
		p := s.parent[u]
		s.kidNext[u] = s.kidHead[p]
		s.kidHead[p] = u
	}
	s.order = s.order[:0]
	s.stack = append(s.stack[:0], uIn)
	for len(s.stack) > 0 {
		u := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		s.order = append(s.order, u)
		for k := s.kidHead[u]; k != -1; k = s.kidNext[k] {
			s.stack = append(s.stack, k)
		}
	}

	// Depth follows parents in preorder; succNum accumulates bottom-up;
	// lastSucc falls out of subtree contiguity in the new preorder.
	s.depth[uIn] = s.depth[vIn] + 1
	for _, u := range s.order[1:] {
		s.depth[u] = s.depth[s.parent[u]] + 1
	}
	for _, u := range s.order {
		s.succNum[u] = 1
	}
	for i := len(s.order) - 1; i > 0; i-- {
		u := s.order[i]
		s.succNum[s.parent[u]] += s.succNum[u]
	}
	for i, u := range s.order {
		s.posBuf[u] = i
	}
	for _, u := range s.order {
		s.lastSucc[u] = s.order[s.posBuf[u]+s.succNum[u]-1]
	}

	// 6) Splice the rerooted segment back in, directly after vIn.
	next := s.thread[vIn]
	s.thread[vIn] = uIn
	s.revThread[uIn] = vIn
	prev := uIn
	for _, u := range s.order[1:] {
		s.thread[prev] = u
		s.revThread[u] = prev
		prev = u
	}
	s.thread[prev] = next
	s.revThread[next] = prev

	// 7) Grow the new ancestor chain.
	lastNew := s.order[len(s.order)-1]
	for a := vIn; a != -1; a = s.parent[a] {
		s.succNum[a] += size
		if s.lastSucc[a] == vIn {
			s.lastSucc[a] = lastNew
		}
	}
}

// updatePotential shifts the potentials of the reattached subtree by the
// reduced cost the entering arc carried, restoring zero reduced cost on
// every tree arc. The subtree is exactly a thread segment, so one linear
// walk suffices.
func (s *Simplex) updatePotential() {
	sigma := s.pi[s.vIn] - s.pi[s.uIn] -
		int64(s.predDir[s.uIn])*s.costArr[s.pred[s.uIn]]
	end := s.thread[s.lastSucc[s.uIn]]
	for u := s.uIn; u != end; u = s.thread[u] {
		s.pi[u] += sigma
	}
}
