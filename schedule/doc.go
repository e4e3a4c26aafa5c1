// Package schedule is the core data model of a collision-minimizing
// schedule: independent rows of consecutive-time-unit Events, the
// prefix-sum bookkeeping that maps time columns to event indices, and
// the incremental collision/cost accounting that a local-search
// optimizer can drive without recomputing the whole grid on swaps of
// equal-length events (swaps of unequal lengths fall back to Update).
//
// # Model
//
// A Grid holds rows; each row holds an ordered sequence of Events. Two
// events "collide" when they share a leader and occupy the same time
// column in two different rows — the schedule's cost is the number of
// such pairwise collisions, summed over every column. Rows are
// completely independent: the optimizer (package anneal) only ever
// reorders events within one row at a time.
//
// # Derived structures
//
// For each row r, Grid maintains:
//
//	idx[r]:   idx[r][0]=0, idx[r][i+1] = idx[r][i] + row[r][i].Len
//	event[r]: event[r][t] = i  for every column t occupied by row[r][i]
//
// and a single ordered index, collisions, mapping (row, event index) to
// that event's positive contribution to the total cost. Events that do
// not currently collide with anything are absent from collisions. All
// three are caches derived entirely from the row contents (scheme) —
// callers never mutate them directly; they are kept coherent by Update
// (full recompute) and by Swap (incremental maintenance).
//
// # Invariants
//
// After every exported operation:
//  1. idx[r][i+1] - idx[r][i] == row[r][i].Len
//  2. event[r][idx[r][i]+k] == i for k in [0, row[r][i].Len)
//  3. Cost() equals the total collision count recomputed from Scheme() from scratch
//  4. (r,i) is in collisions iff its contribution is >= 1, with that value
//  5. a leader-less event never appears in collisions and contributes 0
//
// A violation of any of these is a programming bug, not a user error;
// see invariant.go.
package schedule
