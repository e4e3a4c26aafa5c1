package anneal

import (
	"testing"

	"github.com/arrowlane/scheduler/schedule"
)

// The greedy constructor must claim columns using the cumulative time
// counter, not the placement-step counter or pool length, or it mis-stamps
// which columns a variable-length event actually occupies. Row 0 here
// places a length-2 event before a length-1 event, so the step counter and
// the cumulative time counter diverge after the first placement; claiming
// by cumulative time lets row 1 find the fully collision-free arrangement
// that exists for this input.
func TestRunGreedy_UsesCumulativeTimeCounter(t *testing.T) {
	e := func(name, leader string, length int) schedule.Event {
		ev, err := schedule.NewEvent(name, leader, length)
		if err != nil {
			t.Fatalf("NewEvent: %v", err)
		}
		return ev
	}

	g := schedule.New([][]schedule.Event{
		{e("a", "x", 2), e("b", "y", 1)},
		{e("c", "x", 1), e("d", "y", 2)},
	})

	runGreedy(g, totalLen(g))
	g.Update()

	if got := g.Cost(); got != 0 {
		t.Fatalf("Cost after greedy construction = %d, want 0 (row 0 is x,x,y; placing d before c makes row 1 y,y,x)", got)
	}
}
