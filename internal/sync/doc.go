// Package sync fans skills out from one source tree to many target trees.
//
// An [Engine] discovers the skills in the source, makes sure every target
// directory exists, and then walks skills in name order, visiting targets in
// the order given for each skill. A destination that does not exist yet is
// always written. An existing destination is put to the run's
// overwrite.Arbiter and either replaced or skipped.
//
// Each (skill, target) pair yields one [Result]. Copy failures are recorded
// in the result and the run continues; only a failure to prepare the
// targets or an error from the overwrite decider stops the run. Results are
// delivered to an optional [Observer] as they happen and collected into the
// [Report].
//
// The engine is single-threaded and keeps no state between runs.
package sync
