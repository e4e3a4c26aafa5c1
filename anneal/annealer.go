package anneal

import (
	"math"
	"math/rand"

	"github.com/arrowlane/scheduler/schedule"
)

// totalLen returns the sum of every row's time span, matching schedule's own
// sizing bound (used only to size the greedy constructor's claim table).
func totalLen(g *schedule.Grid) int {
	n := 0
	for r := 0; r < g.Rows(); r++ {
		for _, ev := range g.RowEvents(r) {
			n += ev.Len
		}
	}
	return n
}

// Run optimizes g in place: optional shuffle, optional greedy warm start,
// then Options.Aging iterations of propose/accept-or-revert, each followed
// by a call to Options.Tick if set. Run returns once the budget is
// exhausted or the grid's cost reaches zero, whichever comes first.
//
// Run drives g from a single goroutine; it is not safe to call concurrently
// with any other method on the same Grid.
func Run(g *schedule.Grid, opts Options) Result {
	if g.Rows() == 0 {
		return Result{State: StateTerminated, Iterations: 0, FinalCost: g.Cost()}
	}

	rng := rngFromSeed(opts.Seed)

	if opts.Shuffling {
		for r := 0; r < g.Rows(); r++ {
			order := permRow(g.RowLen(r), rng)
			if err := g.SetRowOrder(r, order); err != nil {
				internalInvariantf("shuffle produced an invalid permutation for row %d: %v", r, err)
			}
		}
		g.Update()
	}

	if opts.Greedy {
		runGreedy(g, totalLen(g))
		g.Update()
	}

	nonEmptyRows := make([]int, 0, g.Rows())
	for r := 0; r < g.Rows(); r++ {
		if g.RowLen(r) > 0 {
			nonEmptyRows = append(nonEmptyRows, r)
		}
	}
	if len(nonEmptyRows) == 0 {
		g.Update()
		return Result{State: StateTerminated, Iterations: 0, FinalCost: g.Cost()}
	}

	t := 1.0
	iterations := 0
	for iter := 0; iter < opts.Aging; iter++ {
		iterations = iter + 1
		t *= opts.Lambda

		r, a, b := proposeMove(g, opts.Greedy, rng, nonEmptyRows)

		prev := g.Cost()
		if err := g.Swap(r, a, b); err != nil {
			internalInvariantf("proposed move (%d,%d,%d) rejected by Swap: %v", r, a, b, err)
		}
		next := g.Cost()

		if next > prev {
			delta := float64(prev) - float64(next)
			if rng.Float64() >= math.Exp(delta/t) {
				if err := g.Swap(r, a, b); err != nil {
					internalInvariantf("revert move (%d,%d,%d) rejected by Swap: %v", r, a, b, err)
				}
			}
		}

		if opts.Tick != nil {
			opts.Tick()
		}

		if g.Cost() == 0 {
			break
		}
	}

	g.Update()

	return Result{State: StateTerminated, Iterations: iterations, FinalCost: g.Cost()}
}

// proposeMove picks the next (row, a, b) swap candidate: collision-biased
// sampling from the grid's current collision set when biased is true (and
// non-empty), otherwise uniform sampling of row and both positions. Rows
// with zero events are never sampled, since they have no valid positions
// to swap.
func proposeMove(g *schedule.Grid, biased bool, rng *rand.Rand, nonEmptyRows []int) (r, a, b int) {
	if biased && g.CollisionCount() > 0 {
		i := rng.Intn(g.CollisionCount())
		row, idx, _ := g.CollisionAt(i)
		return row, idx, rng.Intn(g.RowLen(row))
	}

	r = nonEmptyRows[rng.Intn(len(nonEmptyRows))]
	a = rng.Intn(g.RowLen(r))
	b = rng.Intn(g.RowLen(r))
	return r, a, b
}
