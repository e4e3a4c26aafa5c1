package codec_test

import (
	"errors"
	"testing"

	"github.com/arrowlane/scheduler/codec"
)

// Scenario F (spec.md §8).
func TestDecodeEvent_RoundTrips(t *testing.T) {
	cases := []string{
		"hello:alice[3]",
		"hello",
		"hello[2]",
		"hello:alice",
	}
	for _, in := range cases {
		ev, err := codec.DecodeEvent(in)
		if err != nil {
			t.Fatalf("DecodeEvent(%q): %v", in, err)
		}
		if got := codec.EncodeEvent(ev); got != in {
			t.Fatalf("EncodeEvent(DecodeEvent(%q)) = %q, want %q", in, got, in)
		}
	}
}

func TestDecodeEvent_WhitespaceNormalization(t *testing.T) {
	ev, err := codec.DecodeEvent(" hello : alice [ 3 ] ")
	if err != nil {
		t.Fatalf("DecodeEvent: %v", err)
	}
	if ev.Name != "hello" || ev.LeaderName != "alice" || ev.Len != 3 {
		t.Fatalf("DecodeEvent trimmed wrong: %+v", ev)
	}
}

func TestDecodeEvent_Rejections(t *testing.T) {
	cases := []struct {
		in      string
		wantErr error
	}{
		{":alice", codec.ErrMissingName},
		{"hello:", codec.ErrMissingLeader},
		{"hello[x]", codec.ErrInvalidLen},
		{"", codec.ErrMissingName},
	}
	for _, c := range cases {
		_, err := codec.DecodeEvent(c.in)
		if !errors.Is(err, c.wantErr) {
			t.Fatalf("DecodeEvent(%q) error = %v, want %v", c.in, err, c.wantErr)
		}
	}
}

func TestDecodeEvent_NoLeaderOmitsBrackets(t *testing.T) {
	ev, err := codec.DecodeEvent("solo")
	if err != nil {
		t.Fatalf("DecodeEvent: %v", err)
	}
	if ev.HasLeader {
		t.Fatalf("solo event unexpectedly has a leader: %+v", ev)
	}
	if got := codec.EncodeEvent(ev); got != "solo" {
		t.Fatalf("EncodeEvent = %q, want %q", got, "solo")
	}
}
