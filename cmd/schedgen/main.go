// Command schedgen emits a trivial N x N schedule: every row holds one
// leadered event per column c, named and led by c, so that every row collides
// with every other row in every column — a worst-case warm-up input for
// schedoptimize.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arrowlane/scheduler/codec"
	"github.com/arrowlane/scheduler/schedule"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "schedgen <n>",
		Short: "Generate an N x N worst-case schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n <= 0 {
				return fmt.Errorf("schedgen: n must be a positive integer, got %q", args[0])
			}

			scheme := make([][]schedule.Event, n)
			for r := 0; r < n; r++ {
				row := make([]schedule.Event, n)
				for c := 0; c < n; c++ {
					name := strconv.Itoa(c)
					leader := strconv.Itoa(c)
					ev, err := schedule.NewEvent(name, leader, 1)
					if err != nil {
						return fmt.Errorf("schedgen: %w", err)
					}
					row[c] = ev
				}
				scheme[r] = row
			}
			g := schedule.New(scheme)

			out, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("schedgen: %w", err)
			}
			defer out.Close()

			return codec.Encode(out, g)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (can be non-existent)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
