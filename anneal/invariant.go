package anneal

import "fmt"

// internalInvariantf panics on conditions that can only arise from a bug in
// this package itself, never from caller input — mirrors schedule's own
// internalInvariant.
func internalInvariantf(format string, args ...interface{}) {
	panic(fmt.Sprintf("anneal: internal invariant violated: "+format, args...))
}
