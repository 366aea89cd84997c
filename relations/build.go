package relations

import (
	"fmt"
	"sort"

	"github.com/opendfg/ocpt/model"
	"github.com/opendfg/ocpt/ocel"
)

// Result holds the tuples Build produced plus any warnings accumulated in
// permissive mode.
type Result struct {
	Relations []model.Relation
	Warnings  []string
}

// Build flattens log into (event, object) relation tuples (spec §4.1):
// for every event, for every relationship it carries, join against the
// log's object index to produce a Relation tagged with the object's type.
//
// The result is ordered primarily by event ID and then stable-sorted by
// timestamp, so the final order is timestamp-primary with event-id as the
// tie-break — grounded on original_source/src/build_relations_fns.rs, which
// performs the same two-pass sort.
//
// When permissive is false, a relationship referencing an unknown object ID
// fails the call with ErrMissingObject. When permissive is true, such
// relationships are dropped and noted in Result.Warnings.
func Build(log *ocel.Log, permissive bool) (*Result, error) {
	objects := log.ObjectIndex()

	res := &Result{}
	for _, ev := range log.Events {
		for _, rel := range ev.Relationships {
			obj, ok := objects[rel.ObjectID]
			if !ok {
				if !permissive {
					return nil, fmt.Errorf("%w: event %q references object %q", ErrMissingObject, ev.ID, rel.ObjectID)
				}
				res.Warnings = append(res.Warnings, fmt.Sprintf(
					"event %q references unknown object %q, dropped", ev.ID, rel.ObjectID))
				continue
			}
			res.Relations = append(res.Relations, model.Relation{
				EventID:    ev.ID,
				Activity:   ev.Type,
				Timestamp:  ev.Time,
				ObjectID:   obj.ID,
				ObjectType: obj.Type,
			})
		}
	}

	sort.Slice(res.Relations, func(i, j int) bool {
		return res.Relations[i].EventID < res.Relations[j].EventID
	})
	sort.SliceStable(res.Relations, func(i, j int) bool {
		return res.Relations[i].Timestamp.Before(res.Relations[j].Timestamp)
	})

	return res, nil
}
