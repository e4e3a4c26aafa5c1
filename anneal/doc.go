// Package anneal drives a schedule.Grid toward fewer collisions using
// simulated annealing with an exponentially decaying temperature, plus an
// optional greedy constructor that builds a collision-avoiding starting
// arrangement before annealing begins. The constructor is a one-pass
// heuristic and can leave collisions even where a collision-free
// arrangement exists.
//
// Run owns the whole optimization: it seeds randomness deterministically
// from Options.Seed, optionally shuffles every row, optionally runs the
// greedy constructor, then repeats propose/accept-or-revert for
// Options.Aging iterations, calling Options.Tick once per iteration so a
// caller can drive progress reporting. Acceptance follows the Metropolis
// criterion: a move that does not increase cost is always kept; a move
// that increases cost is kept with probability exp(-delta/t), and rejected
// moves are undone with the same Grid.Swap call that proposed them, which
// is guaranteed self-inverse.
//
// The run terminates early the moment cost reaches zero.
package anneal
