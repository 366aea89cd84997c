package ocel

import "time"

// TypeAttribute describes the declared type of a single event/object
// attribute.
type TypeAttribute struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// TypeDef names an event type or object type and its attribute schema.
type TypeDef struct {
	Name       string          `json:"name"`
	Attributes []TypeAttribute `json:"attributes,omitempty"`
}

// Relationship is a qualified reference from an event to an object, or from
// an object to another object (O2O).
type Relationship struct {
	ObjectID  string `json:"objectId"`
	Qualifier string `json:"qualifier"`
}

// Event is a single occurrence of an activity, total-ordered by Time with
// ties broken by ID (see relations.Build).
type Event struct {
	ID            string                 `json:"id"`
	Type          string                 `json:"type"`
	Time          time.Time              `json:"time"`
	Attributes    map[string]interface{} `json:"attributes,omitempty"`
	Relationships []Relationship         `json:"relationships,omitempty"`
}

// Object is a single object instance, identified by ID and typed.
type Object struct {
	ID            string                 `json:"id"`
	Type          string                 `json:"type"`
	Attributes    map[string]interface{} `json:"attributes,omitempty"`
	Relationships []Relationship         `json:"relationships,omitempty"`
}

// Log is the normalized, in-memory Object-Centric Event Log, independent of
// the JSON dialect it was parsed from.
type Log struct {
	EventTypes  []TypeDef `json:"eventTypes"`
	ObjectTypes []TypeDef `json:"objectTypes"`
	Events      []Event   `json:"events"`
	Objects     []Object  `json:"objects"`
}

// ObjectIndex returns a lookup from object ID to the Object, built once for
// callers that need random access (e.g. relations.Build).
func (l *Log) ObjectIndex() map[string]*Object {
	idx := make(map[string]*Object, len(l.Objects))
	for i := range l.Objects {
		idx[l.Objects[i].ID] = &l.Objects[i]
	}

	return idx
}
