// Package model defines the value types shared across the discovery and
// conformance pipeline: relation tuples, per-object traces, interaction-set
// annotations, and the process tree itself.
//
// Every type here is a plain value: discovery builds a TreeNode bottom-up
// and returns it by value, per spec §5 (no parent pointers, no process-wide
// mutable state).
package model
