package schedule

// Grid is the mutable schedule: independent rows of Events plus the
// derived index structures described in doc.go. A Grid is always fully
// coherent between exported calls — see the invariants in doc.go.
//
// Grid is not safe for concurrent use; callers mutate it from a single
// goroutine at a time (see package anneal, which drives it from a single
// optimization loop).
type Grid struct {
	scheme [][]Event // row -> ordered events; the only caller-visible source of truth
	idx    [][]int   // row -> start column of each event, length len(row)+1
	event  [][]int   // row -> column -> owning event index, length = row's own time span

	collisions *collisionIndex // (row, event index) -> positive contribution
	totalLen   int             // sum of every row's time span; sizing bound only

	cost int64
}

// New builds a Grid from a row-of-rows of Events. Derived structures are
// computed from scratch. Rows are copied; the caller's slices are not
// retained.
func New(scheme [][]Event) *Grid {
	g := &Grid{
		scheme: make([][]Event, len(scheme)),
		idx:    make([][]int, len(scheme)),
		event:  make([][]int, len(scheme)),
	}

	leaders := 0
	for r, row := range scheme {
		g.scheme[r] = append([]Event(nil), row...)

		rowLen := 0
		for _, ev := range row {
			rowLen += ev.Len
			if ev.HasLeader {
				leaders++
			}
		}
		g.idx[r] = make([]int, len(row)+1)
		g.event[r] = make([]int, rowLen)
		g.totalLen += rowLen
	}

	g.collisions = newCollisionIndex(leaders)
	g.Update()

	return g
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int {
	return len(g.scheme)
}

// RowLen returns the number of events in row r.
func (g *Grid) RowLen(r int) int {
	return len(g.scheme[r])
}

// Event returns a copy of the event at (r, i).
func (g *Grid) Event(r, i int) Event {
	return g.scheme[r][i]
}

// RowEvents returns a copy of row r's events, safe for the caller to mutate
// or reorder without affecting the Grid.
func (g *Grid) RowEvents(r int) []Event {
	return append([]Event(nil), g.scheme[r]...)
}

// Cost returns the current total collision cost.
func (g *Grid) Cost() int64 {
	return g.cost
}

// CollisionCount returns the number of events currently participating in at
// least one collision.
func (g *Grid) CollisionCount() int {
	return g.collisions.Len()
}

// CollisionAt returns the (row, event index) and contribution of the i-th
// entry in the collision index, for i in [0, CollisionCount()). Used by the
// annealer's collision-biased neighbor selection to sample uniformly by
// position.
func (g *Grid) CollisionAt(i int) (row, idx, contribution int) {
	k, v := g.collisions.At(i)
	return k.Row, k.Idx, v
}

// CollisionSnapshot returns a copy of the full collision map, keyed by
// [row, event index]. Intended for tests and diagnostics, not hot paths.
func (g *Grid) CollisionSnapshot() map[[2]int]int {
	out := make(map[[2]int]int, g.collisions.Len())
	for i := 0; i < g.collisions.Len(); i++ {
		k, v := g.collisions.At(i)
		out[[2]int{k.Row, k.Idx}] = v
	}
	return out
}

// SetRowOrder replaces row r's event order with a permutation of its
// current events: the new row's i-th event is the old row's order[i]-th
// event. Callers must call Update afterward to restore the Grid's
// invariants; SetRowOrder itself only rewrites scheme, leaving idx, event,
// cost and collisions stale until Update runs.
func (g *Grid) SetRowOrder(r int, order []int) error {
	if r < 0 || r >= len(g.scheme) {
		return ErrRowOutOfRange
	}
	row := g.scheme[r]
	if len(order) != len(row) {
		return ErrPermutationMismatch
	}
	seen := make([]bool, len(row))
	next := make([]Event, len(row))
	for i, from := range order {
		if from < 0 || from >= len(row) || seen[from] {
			return ErrPermutationMismatch
		}
		seen[from] = true
		next[i] = row[from]
	}
	g.scheme[r] = next
	return nil
}

// Update performs a full recompute of idx, event, cost, and collisions from
// scheme, in O(totalLen * Rows()). It is used at construction, after
// reshuffling/greedy construction, and as the slow-path fallback of Swap.
//
// The two-pass structure (accumulate counts, then derive collisions) lets
// the first pass define cost via the running-count formulation of §4.2
// ("add the current count, then increment") while the second pass derives
// each event's own contribution from the final per-column counts, which are
// equal formulations of the same total.
func (g *Grid) Update() {
	counts := make([]map[uint64]int, g.totalLen)

	g.cost = 0
	for r, row := range g.scheme {
		col := 0
		for i, ev := range row {
			g.idx[r][i+1] = g.idx[r][i] + ev.Len
			for k := 0; k < ev.Len; k++ {
				if ev.HasLeader {
					if counts[col] == nil {
						counts[col] = make(map[uint64]int)
					}
					prev := counts[col][ev.LeaderID]
					g.cost += int64(prev)
					counts[col][ev.LeaderID] = prev + 1
				}
				g.event[r][col] = i
				col++
			}
		}
	}

	g.collisions.Reset()
	for r, row := range g.scheme {
		col := 0
		for i, ev := range row {
			for k := 0; k < ev.Len; k++ {
				if ev.HasLeader {
					c := counts[col][ev.LeaderID]
					if c >= 2 {
						key := collKey{Row: r, Idx: i}
						prev, _ := g.collisions.Get(key)
						g.collisions.Set(key, prev+c-1)
					}
				}
				col++
			}
		}
	}
}
