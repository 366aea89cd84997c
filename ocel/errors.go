package ocel

import "errors"

// Sentinel errors for the ocel package. Callers branch on these with
// errors.Is; messages are never reformatted at the definition site.
var (
	// ErrMalformedJSON indicates the input could not be parsed as either
	// the canonical or the legacy ocel: dialect.
	ErrMalformedJSON = errors.New("ocel: malformed json")

	// ErrInvalidTimestamp indicates an event's time field failed RFC-3339
	// parsing.
	ErrInvalidTimestamp = errors.New("ocel: invalid timestamp")

	// ErrMissingObject indicates an event relationship references an
	// object ID absent from the log's object list.
	ErrMissingObject = errors.New("ocel: referenced object not found")

	// ErrEmptyLog indicates the log has no events (spec EmptyInput case).
	// Parse never returns it: in either mode, an empty log only adds this
	// error's message to Result.Warnings.
	ErrEmptyLog = errors.New("ocel: log has no events")
)
