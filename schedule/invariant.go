package schedule

import "fmt"

// internalInvariant reports a failure of one of the invariants documented in
// doc.go. These can only be reached by a bug in this package's own
// bookkeeping (never by malformed caller input, which is rejected earlier
// with a sentinel error), so per the package's error-handling policy they
// are fatal, loud failures rather than returned errors.
func internalInvariant(format string, args ...interface{}) {
	panic(fmt.Sprintf("schedule: internal invariant violated: "+format, args...))
}
