// Command schedoptimize reads a schedule from a CSV file, anneals it, and
// writes the result back out, printing the final cost and elapsed time.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/arrowlane/scheduler/anneal"
	"github.com/arrowlane/scheduler/codec"
	"github.com/arrowlane/scheduler/schedule"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		outputPath string
		lambda     float64
		aging      int
		shuffling  bool
		greedy     bool
	)

	cmd := &cobra.Command{
		Use:   "schedoptimize <input-path>",
		Short: "Anneal a schedule to minimize leader collisions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]

			if lambda <= 0 || lambda >= 1 {
				return fmt.Errorf("schedoptimize: lambda must be in (0, 1), got %v", lambda)
			}

			in, err := os.Open(inputPath)
			if err != nil {
				return fmt.Errorf("schedoptimize: %w", err)
			}
			defer in.Close()

			scheme, err := codec.Decode(in)
			if err != nil {
				return err
			}
			g := schedule.New(scheme)

			bar := progressbar.Default(int64(aging))

			opts := anneal.DefaultOptions()
			opts.Lambda = lambda
			opts.Aging = aging
			opts.Shuffling = shuffling
			opts.Greedy = greedy
			opts.Tick = func() { _ = bar.Add(1) }

			start := time.Now()
			res := anneal.Run(g, opts)
			elapsed := time.Since(start)
			_ = bar.Finish()

			out, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("schedoptimize: %w", err)
			}
			defer out.Close()

			if err := codec.Encode(out, g); err != nil {
				return err
			}

			fmt.Printf("results cost: %d\n", res.FinalCost)
			fmt.Printf("calculation time: %.6f\n", elapsed.Seconds())
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (can be non-existent)")
	cmd.Flags().Float64VarP(&lambda, "lambda", "l", anneal.DefaultLambda, "temperature decay factor, in (0, 1)")
	cmd.Flags().IntVarP(&aging, "aging", "a", anneal.DefaultAging, "iteration budget")
	cmd.Flags().BoolVarP(&shuffling, "shuffling", "s", false, "shuffle rows before annealing")
	cmd.Flags().BoolVarP(&greedy, "greedy", "g", false, "run greedy construction and bias neighbor selection toward collisions")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
