// Package discover implements Component G, the tree-builder orchestrator
// (spec §4.7): the recursive function that walks a DFG down to a process
// tree by trying the perfect cut detectors (package cuts) in order, falling
// back to the repair-cost solvers (package fallback) when none apply, and
// terminating via a flower fallback when a level makes no progress.
//
// Grounded on original_source/src/start_cuts_opti_v2.rs's find_cuts_start
// for the overall try-detectors-then-fallback-then-recurse shape, and on
// the teacher's recursive-walker style (dfs/dfs.go) for how the recursion
// itself is structured in Go. The induced start/end set computation
// (induceEndpoints) generalizes start_cuts_opti_v2.rs's
// get_start_and_end_activities: the original derives a side's local
// start/end activities purely from DFG edges crossing the side boundary,
// which alone would yield empty start/end sets at the very first call
// (the whole-log DFG has no "outside" to cross from); this implementation
// additionally carries forward any parent-level start/end activity that
// falls inside the side, seeding the very first call from Component C's
// trace-derived starts and ends and then narrowing by crossing edges at
// every level beneath it.
package discover
