// Package fetchlib implements a concurrent download engine: an
// admission-controlled worker pool that fetches remote resources over
// HTTP(S) into local files, with per-request retry/backoff, streaming
// writes that never leave partial files behind, and an aggregate
// success/failure report.
//
// The building blocks compose bottom-up: Client issues a single HTTP
// attempt, Writer streams a response body to disk, a task drives the
// retry/redirect state machine around the two, and Scheduler runs at
// most N tasks at a time, feeding results into an Aggregator.
package fetchlib
