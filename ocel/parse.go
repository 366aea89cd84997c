package ocel

import (
	"fmt"
	"sort"
	"time"

	json "github.com/goccy/go-json"
)

// ParseOptions configures Parse's tolerance for malformed references.
//
//   - Permissive: a relationship referencing a missing object is dropped
//     with a warning (via Warnings) instead of aborting the parse. When
//     false (the default), Parse returns ErrMissingObject.
type ParseOptions struct {
	Permissive bool
}

// Result wraps a parsed Log with non-fatal diagnostics collected under
// Permissive mode.
type Result struct {
	Log      *Log
	Warnings []string
}

// legacyDoc mirrors the older "ocel:events"/"ocel:objects" dialect.
type legacyDoc struct {
	EventTypes  []TypeDef `json:"ocel:global-log"`
	Events      map[string]legacyEvent  `json:"ocel:events"`
	Objects     map[string]legacyObject `json:"ocel:objects"`
}

type legacyEvent struct {
	Activity  string   `json:"ocel:activity"`
	Timestamp string   `json:"ocel:timestamp"`
	Omap      []string `json:"ocel:omap"`
}

type legacyObject struct {
	ObjectType string `json:"ocel:type"`
}

// canonicalDoc mirrors the canonical dialect described in spec §6.
type canonicalDoc struct {
	EventTypes  []TypeDef `json:"eventTypes"`
	ObjectTypes []TypeDef `json:"objectTypes"`
	Events      []Event   `json:"events"`
	Objects     []Object  `json:"objects"`
}

// Parse normalizes either OCEL JSON dialect into a Log. It validates that
// every relationship's object exists; under Permissive mode such
// relationships are dropped and recorded in Result.Warnings rather than
// aborting.
func Parse(data []byte, opts ParseOptions) (*Result, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	var log *Log
	var err error
	if _, isLegacy := probe["ocel:events"]; isLegacy {
		log, err = parseLegacy(data)
	} else {
		log, err = parseCanonical(data)
	}
	if err != nil {
		return nil, err
	}

	return validateReferences(log, opts)
}

func parseCanonical(data []byte) (*Log, error) {
	var doc canonicalDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	return &Log{
		EventTypes:  doc.EventTypes,
		ObjectTypes: doc.ObjectTypes,
		Events:      doc.Events,
		Objects:     doc.Objects,
	}, nil
}

func parseLegacy(data []byte) (*Log, error) {
	var doc legacyDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	objectTypeSeen := make(map[string]struct{})
	objects := make([]Object, 0, len(doc.Objects))
	objectIDs := make([]string, 0, len(doc.Objects))
	for id := range doc.Objects {
		objectIDs = append(objectIDs, id)
	}
	sort.Strings(objectIDs)
	for _, id := range objectIDs {
		o := doc.Objects[id]
		objects = append(objects, Object{ID: id, Type: o.ObjectType})
		objectTypeSeen[o.ObjectType] = struct{}{}
	}

	eventIDs := make([]string, 0, len(doc.Events))
	for id := range doc.Events {
		eventIDs = append(eventIDs, id)
	}
	sort.Strings(eventIDs)

	eventTypeSeen := make(map[string]struct{})
	events := make([]Event, 0, len(doc.Events))
	for _, id := range eventIDs {
		e := doc.Events[id]
		ts, err := time.Parse(time.RFC3339, e.Timestamp)
		if err != nil {
			ts, err = time.Parse("2006-01-02 15:04:05", e.Timestamp)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: event %q: %v", ErrInvalidTimestamp, id, err)
		}
		rels := make([]Relationship, 0, len(e.Omap))
		for _, oid := range e.Omap {
			rels = append(rels, Relationship{ObjectID: oid})
		}
		events = append(events, Event{ID: id, Type: e.Activity, Time: ts, Relationships: rels})
		eventTypeSeen[e.Activity] = struct{}{}
	}

	return &Log{
		EventTypes:  typeDefsFromSet(eventTypeSeen),
		ObjectTypes: typeDefsFromSet(objectTypeSeen),
		Events:      events,
		Objects:     objects,
	}, nil
}

func typeDefsFromSet(set map[string]struct{}) []TypeDef {
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sort.Strings(names)
	defs := make([]TypeDef, 0, len(names))
	for _, n := range names {
		defs = append(defs, TypeDef{Name: n})
	}

	return defs
}

func validateReferences(log *Log, opts ParseOptions) (*Result, error) {
	index := log.ObjectIndex()
	res := &Result{Log: log}

	if len(log.Events) == 0 {
		res.Warnings = append(res.Warnings, ErrEmptyLog.Error())
	}

	for i := range log.Events {
		kept := log.Events[i].Relationships[:0]
		for _, rel := range log.Events[i].Relationships {
			if _, ok := index[rel.ObjectID]; !ok {
				if !opts.Permissive {
					return nil, fmt.Errorf("%w: event %q references %q", ErrMissingObject, log.Events[i].ID, rel.ObjectID)
				}
				res.Warnings = append(res.Warnings, fmt.Sprintf("event %q: dropping reference to missing object %q", log.Events[i].ID, rel.ObjectID))
				continue
			}
			kept = append(kept, rel)
		}
		log.Events[i].Relationships = kept
	}

	return res, nil
}
