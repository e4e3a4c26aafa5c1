package frontend

import (
	"strings"

	"github.com/arrowlane/scheduler/anneal"
	"github.com/arrowlane/scheduler/codec"
	"github.com/arrowlane/scheduler/schedule"
)

// Session is the desktop shell's command surface. The zero value is ready
// to use. Session is not safe for concurrent use.
type Session struct {
	grid     *schedule.Grid
	didOptim bool
}

// optimizeLambda is the temperature-decay factor Optimize anneals with. The
// desktop command contract (spec.md §6) exposes only aging/shuffling/greedy
// to the caller, mirroring the reference Tauri command
// (application/src-tauri/src/lib.rs's work_with), which hardcodes
// schedule.optimize(0.999, aging, true, true, ...) rather than taking lambda
// as a parameter.
const optimizeLambda = 0.999

// OptimizeParams exposes the annealing knobs a desktop shell lets the user
// tune (aging budget, shuffling, greedy) as request parameters instead of
// hard-coded constants. Lambda is deliberately not a parameter here; see
// optimizeLambda.
type OptimizeParams struct {
	Aging     int
	Shuffling bool
	Greedy    bool
}

// SelectInput parses body as a CSV schedule and caches the resulting Grid,
// discarding anything previously selected or optimized.
func (s *Session) SelectInput(body string) error {
	scheme, err := codec.Decode(strings.NewReader(body))
	if err != nil {
		return err
	}
	s.grid = schedule.New(scheme)
	s.didOptim = false
	return nil
}

// Optimize anneals the currently selected schedule in place and returns its
// final cost. Returns ErrNoInputSelected if SelectInput has not succeeded.
func (s *Session) Optimize(params OptimizeParams) (int64, error) {
	if s.grid == nil {
		return 0, ErrNoInputSelected
	}

	opts := anneal.DefaultOptions()
	opts.Lambda = optimizeLambda
	opts.Aging = params.Aging
	opts.Shuffling = params.Shuffling
	opts.Greedy = params.Greedy

	res := anneal.Run(s.grid, opts)
	s.didOptim = true
	return res.FinalCost, nil
}

// Download renders the current schedule as CSV text for the shell to save
// via its own file dialog. Returns ErrNoInputSelected or ErrNotOptimized if
// called out of order.
func (s *Session) Download() (string, error) {
	if s.grid == nil {
		return "", ErrNoInputSelected
	}
	if !s.didOptim {
		return "", ErrNotOptimized
	}

	var b strings.Builder
	if err := codec.Encode(&b, s.grid); err != nil {
		return "", err
	}
	return b.String(), nil
}
