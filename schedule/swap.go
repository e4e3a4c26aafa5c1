package schedule

// Swap exchanges the events at positions a and b within row r, keeping
// every derived structure coherent and cost correct.
//
// a == b is a valid no-op. Two consecutive calls with the same (r, a, b)
// restore scheme, Cost, and the collision map bit-for-bit (re-entrancy is
// relied on by the annealer to revert a rejected proposal).
func (g *Grid) Swap(r, a, b int) error {
	if r < 0 || r >= len(g.scheme) {
		return ErrRowOutOfRange
	}
	rowLen := len(g.scheme[r])
	if a < 0 || a >= rowLen || b < 0 || b >= rowLen {
		return ErrEventOutOfRange
	}
	if a == b {
		return nil
	}

	if g.scheme[r][a].Len == g.scheme[r][b].Len {
		g.swapFast(r, a, b)
	} else {
		g.scheme[r][a], g.scheme[r][b] = g.scheme[r][b], g.scheme[r][a]
		g.Update()
	}

	return nil
}

// swapFast implements the equal-length in-row swap by incremental delta
// maintenance (§4.3 fast path): idx and event never change because the
// time layout of row r is unchanged, so only cost and collisions, plus
// the two moved events themselves, need updating.
func (g *Grid) swapFast(r, a, b int) {
	ai := g.idx[r][a]
	bi := g.idx[r][b]
	length := g.scheme[r][a].Len

	evA := g.scheme[r][a]
	evB := g.scheme[r][b]

	newCost := g.cost

	g.collisions.Remove(collKey{Row: r, Idx: a})
	g.collisions.Remove(collKey{Row: r, Idx: b})

	collA := 0 // new contribution accumulating on the position now holding evB
	collB := 0 // new contribution accumulating on the position now holding evA

	// incoming is the leader that will newly occupy this span after the swap;
	// outgoing is the leader that is leaving it.
	scanSpan := func(l int, start int, incoming, outgoing Event, selfCount *int) {
		for off := 0; off < length; off++ {
			t := start + off
			if t >= len(g.event[l]) {
				break
			}
			idxEv := g.event[l][t]
			other := g.scheme[l][idxEv]
			key := collKey{Row: l, Idx: idxEv}

			if leaderEqual(other, incoming) {
				prev, _ := g.collisions.Get(key)
				g.collisions.Set(key, prev+1)
				newCost++
				*selfCount = *selfCount + 1
			}
			if leaderEqual(other, outgoing) {
				prev, ok := g.collisions.Get(key)
				if !ok {
					internalInvariant("swap(%d,%d,%d): missing collision entry for outgoing leader at row %d idx %d", r, a, b, l, idxEv)
				}
				if prev > 1 {
					g.collisions.Set(key, prev-1)
				} else {
					g.collisions.Remove(key)
				}
				newCost--
			}
		}
	}

	for l := range g.scheme {
		if l == r {
			continue
		}
		scanSpan(l, ai, evB, evA, &collA)
		scanSpan(l, bi, evA, evB, &collB)
	}

	if collA >= 1 {
		g.collisions.Set(collKey{Row: r, Idx: a}, collA)
	}
	if collB >= 1 {
		g.collisions.Set(collKey{Row: r, Idx: b}, collB)
	}

	g.scheme[r][a], g.scheme[r][b] = g.scheme[r][b], g.scheme[r][a]
	g.cost = newCost
}
