// Package trace provides event tracing for dirtree.
//
// Tracing records the shape of a traversal: the run as a whole, every
// directory entered, entries that were skipped and the failure that stopped
// a walk, if any. Events go to stderr or a file as text or NDJSON.
//
// # Usage
//
//	tracer, err := trace.New(trace.Config{Level: trace.LevelDetail, OutputPath: "-"})
//	if err != nil {
//		return err
//	}
//	defer tracer.Close()
//
//	span := trace.Begin(tracer, trace.ScopePass, "list", 0)
//	defer span.End("")
//
// # Levels
//
//   - off: nothing is recorded
//   - error: only error events
//   - phase: run boundaries
//   - detail: every directory entered
//   - debug: everything, including skipped entries
//
// A disabled tracer is the Nop singleton, so call sites never need nil checks.
package trace
