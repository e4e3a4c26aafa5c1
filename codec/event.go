package codec

import (
	"strconv"
	"strings"

	"github.com/arrowlane/scheduler/schedule"
)

// DecodeEvent parses a single field of the form
// "name[:leader][[n]]" into a schedule.Event. See doc.go for the grammar.
func DecodeEvent(field string) (schedule.Event, error) {
	s := strings.TrimSpace(field)
	length := 1

	if strings.HasSuffix(s, "]") {
		body := s[:len(s)-1]
		other, lenStr, ok := strings.Cut(body, "[")
		if !ok {
			return schedule.Event{}, ErrMissingLen
		}
		n, err := strconv.Atoi(strings.TrimSpace(lenStr))
		if err != nil {
			return schedule.Event{}, ErrInvalidLen
		}
		length = n
		s = strings.TrimSpace(other)
	}

	var name, leader string
	hasLeader := false
	if before, after, ok := strings.Cut(s, ":"); ok {
		name = strings.TrimSpace(before)
		leader = strings.TrimSpace(after)
		if name == "" {
			return schedule.Event{}, ErrMissingName
		}
		if leader == "" {
			return schedule.Event{}, ErrMissingLeader
		}
		hasLeader = true
	} else {
		name = strings.TrimSpace(s)
		if name == "" {
			return schedule.Event{}, ErrMissingName
		}
	}

	leaderArg := ""
	if hasLeader {
		leaderArg = leader
	}
	ev, err := schedule.NewEvent(name, leaderArg, length)
	if err != nil {
		if err == schedule.ErrInvalidLength {
			return schedule.Event{}, ErrInvalidLen
		}
		return schedule.Event{}, err
	}
	return ev, nil
}

// EncodeEvent formats e per the grammar in doc.go, the inverse of
// DecodeEvent modulo whitespace normalization: len == 1 omits the "[n]"
// suffix.
func EncodeEvent(e schedule.Event) string {
	var b strings.Builder
	b.WriteString(e.Name)
	if e.HasLeader {
		b.WriteByte(':')
		b.WriteString(e.LeaderName)
	}
	if e.Len != 1 {
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(e.Len))
		b.WriteByte(']')
	}
	return b.String()
}
