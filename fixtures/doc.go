// Package fixtures builds small synthetic object-centric event logs for
// tests and documentation. It plays the same role the teacher's builder
// package plays for graphs: a deterministic, functional-style generator
// that assembles a core structure (here ocel.Log) from a handful of named
// topology constructors instead of every caller hand-writing JSON.
//
// Each exported function corresponds to one end-to-end scenario from
// spec §8 (S1 Sequence through S6 Fallback) and returns the log plus the
// object type its traces were recorded against, ready to feed into
// relations.Build.
package fixtures
