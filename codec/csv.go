package codec

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/arrowlane/scheduler/schedule"
)

// Decode reads a headerless CSV-like stream from r, one record per row, and
// returns the row-of-rows of Events suitable for schedule.New. Records may
// have differing field counts, matching rows of independent length (§3).
func Decode(r io.Reader) ([][]schedule.Event, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var scheme [][]schedule.Event
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("codec: %w", err)
		}

		row := make([]schedule.Event, len(record))
		for i, field := range record {
			ev, derr := DecodeEvent(field)
			if derr != nil {
				return nil, derr
			}
			row[i] = ev
		}
		scheme = append(scheme, row)
	}

	return scheme, nil
}

// Encode writes g's rows to w, one CSV record per row, each field formatted
// by EncodeEvent.
func Encode(w io.Writer, g *schedule.Grid) error {
	cw := csv.NewWriter(w)
	for r := 0; r < g.Rows(); r++ {
		row := g.RowEvents(r)
		record := make([]string, len(row))
		for i, ev := range row {
			record[i] = EncodeEvent(ev)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("codec: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
