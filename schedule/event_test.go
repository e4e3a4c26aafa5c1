package schedule_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arrowlane/scheduler/schedule"
)

func TestNewEvent_NoLeader(t *testing.T) {
	require := require.New(t)

	ev, err := schedule.NewEvent("standup", "", 1)
	require.NoError(err)
	require.False(ev.HasLeader)
	require.Equal("standup", ev.Name)
	require.Equal(1, ev.Len)
}

func TestNewEvent_WithLeaderDeterministicID(t *testing.T) {
	require := require.New(t)

	a, err := schedule.NewEvent("retro", "alice", 3)
	require.NoError(err)
	require.True(a.HasLeader)
	require.NotZero(a.LeaderID)

	b, err := schedule.NewEvent("retro-2", "alice", 5)
	require.NoError(err)
	require.Equal(a.LeaderID, b.LeaderID, "same leader name must hash identically")

	c, err := schedule.NewEvent("retro-3", "bob", 1)
	require.NoError(err)
	require.NotEqual(a.LeaderID, c.LeaderID)
}

func TestNewEvent_Rejections(t *testing.T) {
	require := require.New(t)

	_, err := schedule.NewEvent("", "alice", 1)
	require.True(errors.Is(err, schedule.ErrEmptyName))

	_, err = schedule.NewEvent("standup", "", 0)
	require.True(errors.Is(err, schedule.ErrInvalidLength))

	_, err = schedule.NewEvent("standup", "", -2)
	require.True(errors.Is(err, schedule.ErrInvalidLength))
}
