// Package taskcall provides a named-task registry and string-driven
// dispatcher for Go. A process registers a fixed set of callable tasks,
// then dispatches invocation strings such as
//
//	backupDatabase()
//	params('hello', 42, true)
//	cleanup({olderThan: 24})
//
// to the matching handler, reporting the outcome as a plain boolean.
//
// # Quick Start
//
//	d, err := taskcall.New(
//	    taskcall.WithLogger(logger),
//	)
//	d.Register(task.Descriptor{
//	    Name:        "backupDatabase",
//	    Description: "dumps the primary database",
//	    Handler:     backup,
//	})
//	ok := d.Execute(ctx, "backupDatabase()")
//
// # Architecture
//
// The invocation parser converts casual, JSON-like argument text into a
// loosely typed argument list using a safe literal decoder; invocation
// strings are never evaluated as code. The registry resolves task names to
// handlers; the dispatcher runs the handler through a middleware chain
// (panic recovery, logging, tracing, metrics, timeout) and notifies
// extension hooks of every lifecycle event.
//
// Execute never returns an error or panics: malformed input, unknown task
// names, and handler faults are logged and reported as a false outcome.
//
// All call IDs use TypeID: type-prefixed, K-sortable, UUIDv7-based
// identifiers.
package taskcall
