// Package metrics exposes Prometheus collectors for the editor.
//
// Metrics implements reconcile.Observer, so registering it on a session with
// reconcile.WithObserver records loads, edits, exports and the key counts of
// the loaded locale. Collectors live on their own registry, served at /metrics
// by the start command.
package metrics
