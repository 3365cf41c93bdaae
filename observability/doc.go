// Package observability provides a Prometheus metrics extension for
// taskcall. Register it as an extension to automatically track dispatch
// counts, failure counts, parse failures, and lookup misses.
package observability
