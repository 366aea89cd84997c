package model

import "time"

// Relation is a single (event, object) incidence tuple, the atomic unit
// Component A (package relations) flattens an OCEL log into.
//
// Invariant: ObjectID always refers to an object present in the source log,
// and ObjectType is that object's declared type (spec §3).
type Relation struct {
	EventID    string
	Activity   string
	Timestamp  time.Time
	ObjectID   string
	ObjectType string
}

// TraceEvent is one event as seen from a single object's perspective.
type TraceEvent struct {
	EventID   string
	Activity  string
	Timestamp time.Time
}

// Trace is the time-ordered sequence of events belonging to one object,
// after per-object deduplication (spec §3, §4.3). Events are not filtered
// by divergence; dfg.Build applies the divergence check to consecutive
// pairs instead.
type Trace struct {
	ObjectID   string
	ObjectType string
	Events     []TraceEvent
}

// Activities projects a Trace onto its plain activity-name sequence, the
// form Component I's conformance checks and Component F/H's trace-presence
// queries operate on.
func (t Trace) Activities() []string {
	acts := make([]string, len(t.Events))
	for i, e := range t.Events {
		acts[i] = e.Activity
	}

	return acts
}

// Contains reports whether activity occurs anywhere in the trace.
func (t Trace) Contains(activity string) bool {
	for _, e := range t.Events {
		if e.Activity == activity {
			return true
		}
	}

	return false
}

// ContainsAny reports whether any of activities occurs in the trace.
func (t Trace) ContainsAny(activities map[string]struct{}) bool {
	for _, e := range t.Events {
		if _, ok := activities[e.Activity]; ok {
			return true
		}
	}

	return false
}
