package anneal

import "github.com/arrowlane/scheduler/schedule"

// runGreedy builds a collision-avoiding row order: for each row
// independently, repeatedly pick the leftmost remaining pool event whose
// leader is not already claimed at the current time column by a
// previously-placed event in any row; fall back to the last pool event if
// none qualifies. Claim columns are global, spanning every row, so a leader
// placed in one row blocks the same column in every other row.
//
// claimed is indexed by the cumulative time counter, not by the pool's
// shrinking length or the row's placement-step counter: indexing by the
// placement-step counter instead would double-stamp or mis-stamp claim
// columns whenever events have length != 1. This implementation uses the
// cumulative counter throughout, consistently.
func runGreedy(g *schedule.Grid, totalLen int) {
	claimed := make([]map[uint64]bool, totalLen)

	claim := func(id uint64, from, length int) {
		for k := 0; k < length; k++ {
			col := from + k
			if col >= totalLen {
				break
			}
			if claimed[col] == nil {
				claimed[col] = make(map[uint64]bool)
			}
			claimed[col][id] = true
		}
	}

	for r := 0; r < g.Rows(); r++ {
		pool := g.RowEvents(r)
		if len(pool) == 0 {
			continue
		}

		order := make([]int, 0, len(pool))
		placed := make([]bool, len(pool))
		time := 0

		for placedCount := 0; placedCount < len(pool); placedCount++ {
			use := -1
			for e := 0; e < len(pool); e++ {
				if placed[e] {
					continue
				}
				ev := pool[e]
				if !ev.HasLeader || time >= totalLen || claimed[time] == nil || !claimed[time][ev.LeaderID] {
					use = e
					break
				}
			}
			if use == -1 {
				for e := len(pool) - 1; e >= 0; e-- {
					if !placed[e] {
						use = e
						break
					}
				}
			}

			ev := pool[use]
			if ev.HasLeader {
				claim(ev.LeaderID, time, ev.Len)
			}
			time += ev.Len
			placed[use] = true
			order = append(order, use)
		}

		if err := g.SetRowOrder(r, order); err != nil {
			internalInvariantf("greedy construction produced an invalid permutation for row %d: %v", r, err)
		}
	}
}
