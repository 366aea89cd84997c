package relations

import (
	"sort"

	"github.com/opendfg/ocpt/model"
)

// Traces groups rels (assumed already timestamp-ordered, as Build produces)
// into one model.Trace per distinct object ID (spec §3, §4.3). An event
// that relates to the same object through more than one qualified
// relationship collapses to a single TraceEvent: the earliest occurrence in
// rels order wins, later duplicates for that (object, event) pair are
// skipped.
//
// The returned slice is sorted by ObjectID for deterministic downstream
// iteration (spec §5).
func Traces(rels []model.Relation) []model.Trace {
	order := make([]string, 0)
	byObject := make(map[string]*model.Trace)
	seenEvent := make(map[string]map[string]struct{})

	for _, r := range rels {
		trace, ok := byObject[r.ObjectID]
		if !ok {
			trace = &model.Trace{ObjectID: r.ObjectID, ObjectType: r.ObjectType}
			byObject[r.ObjectID] = trace
			seenEvent[r.ObjectID] = make(map[string]struct{})
			order = append(order, r.ObjectID)
		}
		if _, dup := seenEvent[r.ObjectID][r.EventID]; dup {
			continue
		}
		seenEvent[r.ObjectID][r.EventID] = struct{}{}
		trace.Events = append(trace.Events, model.TraceEvent{
			EventID:   r.EventID,
			Activity:  r.Activity,
			Timestamp: r.Timestamp,
		})
	}

	sort.Strings(order)
	out := make([]model.Trace, 0, len(order))
	for _, id := range order {
		out = append(out, *byObject[id])
	}

	return out
}
