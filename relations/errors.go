package relations

import "errors"

// ErrMissingObject indicates an event relationship references an object ID
// absent from the log's object list. In non-permissive mode Build returns
// this error; in permissive mode the offending relationship is dropped and
// recorded as a warning instead.
var ErrMissingObject = errors.New("relations: referenced object not found")
