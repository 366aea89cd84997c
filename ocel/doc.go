// Package ocel defines the Object-Centric Event Log data model and its
// JSON boundary parsing.
//
// An OCEL document carries event types, object types, events, and objects.
// Each event references zero or more objects through qualified
// relationships; each object has a type. Two JSON dialects are accepted:
// the canonical shape (eventTypes/objectTypes/events/objects) and the older
// ocel: prefixed shape (ocel:events/ocel:objects); Parse normalizes both
// into the same Log value.
//
// ocel is a pure data/parsing layer: it never touches the discovery or
// conformance algorithms in the sibling packages.
package ocel
