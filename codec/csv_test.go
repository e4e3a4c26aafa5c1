package codec_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arrowlane/scheduler/codec"
	"github.com/arrowlane/scheduler/schedule"
)

func TestDecode_VariableRowLengths(t *testing.T) {
	in := "a:x, b:y[2]\nc\n"
	scheme, err := codec.Decode(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(scheme) != 2 {
		t.Fatalf("len(scheme) = %d, want 2", len(scheme))
	}
	if len(scheme[0]) != 2 || len(scheme[1]) != 1 {
		t.Fatalf("row lengths = %d, %d, want 2, 1", len(scheme[0]), len(scheme[1]))
	}
}

func TestDecode_PropagatesFieldErrors(t *testing.T) {
	_, err := codec.Decode(strings.NewReader("hello:\n"))
	if err == nil {
		t.Fatalf("Decode: expected error, got nil")
	}
}

// Testable property 6: decode(encode(G)) == G.
func TestEncodeDecode_RoundTripsGrid(t *testing.T) {
	e := func(name, leader string, length int) schedule.Event {
		ev, err := schedule.NewEvent(name, leader, length)
		if err != nil {
			t.Fatalf("NewEvent: %v", err)
		}
		return ev
	}

	g := schedule.New([][]schedule.Event{
		{e("a", "x", 2), e("b", "y", 1)},
		{e("c", "", 1)},
	})

	var buf bytes.Buffer
	if err := codec.Encode(&buf, g); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	scheme, err := codec.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	g2 := schedule.New(scheme)
	if g2.Rows() != g.Rows() {
		t.Fatalf("Rows = %d, want %d", g2.Rows(), g.Rows())
	}
	for r := 0; r < g.Rows(); r++ {
		want := g.RowEvents(r)
		got := g2.RowEvents(r)
		if len(got) != len(want) {
			t.Fatalf("row %d length = %d, want %d", r, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("row %d event %d = %+v, want %+v", r, i, got[i], want[i])
			}
		}
	}
}
