package fixtures

import (
	"fmt"
	"time"

	"github.com/opendfg/ocpt/ocel"
)

// DefaultObjectType is the single object type every scenario (S1-S6)
// records its traces against.
const DefaultObjectType = "case"

// epoch anchors every generated timestamp; fixtures never read the clock
// (determinism, per SPEC_FULL's test-tooling conventions) so every
// generated log is byte-identical across runs.
var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// logBuilder assembles an ocel.Log one object-trace at a time. It is not
// safe for concurrent use; each fixture constructs its own and discards it
// after calling build.
//
// Invariant violations (an empty object ID, an empty activity list, an
// empty activity name) are programmer errors in a fixture
// definition, not runtime conditions a caller should branch on, so trace
// panics rather than returning an error — the same convention model's
// NewOperator/NewLeaf use.
type logBuilder struct {
	objType  string
	eventSeq int
	events   []ocel.Event
	objects  map[string]ocel.Object
	objOrder []string
}

func newLogBuilder(objType string) *logBuilder {
	if objType == "" {
		panic("fixtures: empty object type")
	}

	return &logBuilder{objType: objType, objects: map[string]ocel.Object{}}
}

// trace appends one object's full activity sequence, spacing each event one
// minute apart starting at epoch plus an offset so traces recorded earlier
// in the builder sort first under relations.Build's timestamp order.
func (b *logBuilder) trace(objectID string, activities ...string) *logBuilder {
	if objectID == "" {
		panic("fixtures: empty object id")
	}
	if len(activities) == 0 {
		panic(fmt.Sprintf("fixtures: trace %q has no activities", objectID))
	}

	if _, ok := b.objects[objectID]; !ok {
		b.objects[objectID] = ocel.Object{ID: objectID, Type: b.objType}
		b.objOrder = append(b.objOrder, objectID)
	}

	for _, activity := range activities {
		if activity == "" {
			panic(fmt.Sprintf("fixtures: trace %q has an empty activity", objectID))
		}
		b.eventSeq++
		b.events = append(b.events, ocel.Event{
			ID:   fmt.Sprintf("e%d", b.eventSeq),
			Type: activity,
			Time: epoch.Add(time.Duration(b.eventSeq) * time.Minute),
			Relationships: []ocel.Relationship{
				{ObjectID: objectID, Qualifier: "performed"},
			},
		})
	}

	return b
}

func (b *logBuilder) build() *ocel.Log {
	objects := make([]ocel.Object, 0, len(b.objOrder))
	for _, id := range b.objOrder {
		objects = append(objects, b.objects[id])
	}

	activityTypes := map[string]struct{}{}
	for _, e := range b.events {
		activityTypes[e.Type] = struct{}{}
	}
	eventTypes := make([]ocel.TypeDef, 0, len(activityTypes))
	for name := range activityTypes {
		eventTypes = append(eventTypes, ocel.TypeDef{Name: name})
	}

	return &ocel.Log{
		EventTypes:  eventTypes,
		ObjectTypes: []ocel.TypeDef{{Name: b.objType}},
		Events:      b.events,
		Objects:     objects,
	}
}
