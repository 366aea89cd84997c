package conformance

import "errors"

// ErrTooLarge indicates execution enumeration hit the configured ceiling
// before exhausting the tree's language (spec §7 Overflow). Evaluate still
// returns usable Metrics when this error is produced: Metrics.Truncated is
// set, and Precision should be read as an upper bound rather than an exact
// value, since the denominator (num_executions) undercounts the true
// language size.
var ErrTooLarge = errors.New("conformance: execution enumeration exceeded ceiling")
