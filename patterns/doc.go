// Package patterns implements Component B: the interaction-pattern
// classifier that, per activity, partitions object types into related
// (every occurrence of the activity touches at least one object of that
// type), deficient (only some occurrences do), convergent (a single
// occurrence can touch more than one object of that type), and divergent
// (the same object-of-that-type subset recurs across occurrences that
// otherwise touch different object combinations) — spec §3, §4.2.
//
// Grounded on original_source/src/interaction_patterns.rs.
package patterns
