// Package ext defines the extension system for taskcall.
// Extensions are notified of lifecycle events (task registered, call
// started, completed, failed, etc.) and can react to them — logging,
// metrics, auditing, etc.
//
// Each lifecycle hook is a separate interface so extensions opt in only
// to the events they care about. Hook errors are logged, never propagated:
// an extension can observe dispatch but not change its outcome.
package ext
