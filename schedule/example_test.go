package schedule_test

import (
	"fmt"

	"github.com/arrowlane/scheduler/schedule"
)

// ExampleGrid builds the two-row grid from spec.md's scenario C: each row
// carries the same pair of leaders in complementary order, so the grid
// starts collision-free. Swapping the second row's two events aligns both
// rows onto the same leader per column, raising the cost back up.
func ExampleGrid() {
	ev := func(name, leader string, length int) schedule.Event {
		e, err := schedule.NewEvent(name, leader, length)
		if err != nil {
			panic(err)
		}
		return e
	}

	g := schedule.New([][]schedule.Event{
		{ev("a", "x", 1), ev("b", "y", 1)},
		{ev("b", "y", 1), ev("a", "x", 1)},
	})
	fmt.Println("initial cost:", g.Cost())

	if err := g.Swap(1, 0, 1); err != nil {
		panic(err)
	}
	fmt.Println("cost after swap:", g.Cost())
	fmt.Println("collisions after swap:", g.CollisionCount())

	// Output:
	// initial cost: 0
	// cost after swap: 2
	// collisions after swap: 4
}
