package schedule

import "github.com/cespare/xxhash/v2"

// Event is an immutable value describing one scheduled activity: a display
// name, an optional leader, and a positive length in time units.
//
// Two events are leader-equal iff both HasLeader and LeaderID match; a
// leader-less event is never leader-equal to anything, including another
// leader-less event (§3 invariant 5: it can never collide).
type Event struct {
	// Name is the display name of the event.
	Name string

	// LeaderName is the leader's name, valid only when HasLeader is true.
	LeaderName string

	// LeaderID is a stable 64-bit hash of LeaderName, valid only when
	// HasLeader is true. Equality of LeaderID (for two HasLeader events) is
	// what the cost function and collision accounting actually compare;
	// LeaderName is carried along only for display/round-tripping.
	LeaderID uint64

	// HasLeader reports whether this event names a leader at all.
	HasLeader bool

	// Len is the number of consecutive time units this event occupies.
	Len int
}

// NewEvent constructs an Event. leaderName == "" means the event has no
// leader. len must be >= 1.
//
// leaderID is derived deterministically from leaderName via xxhash, so two
// events built from the same leader name always compare leader-equal —
// collisions between distinct names are tolerated (they only degrade
// optimization quality, never the correctness of the cost definition, which
// is expressed purely in terms of LeaderID).
func NewEvent(name, leaderName string, length int) (Event, error) {
	if name == "" {
		return Event{}, ErrEmptyName
	}
	if length < 1 {
		return Event{}, ErrInvalidLength
	}

	ev := Event{Name: name, Len: length}
	if leaderName != "" {
		ev.HasLeader = true
		ev.LeaderName = leaderName
		ev.LeaderID = xxhash.Sum64String(leaderName)
	}

	return ev, nil
}

// leaderEqual reports whether a and b are both leader-bearing and share the
// same leader identity.
func leaderEqual(a, b Event) bool {
	return a.HasLeader && b.HasLeader && a.LeaderID == b.LeaderID
}
