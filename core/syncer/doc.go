// Package syncer orchestrates multi-terminal sync runs.
//
// A run fetches each registered punch source's batch for the target date
// concurrently (fetches share no mutable state), collects successes and
// failures separately, concatenates all successful batches in source
// registration order, and invokes the reconciliation engine exactly once
// over the combined list — so duplicate or complementary punches from
// different terminals for the same employee and day reconcile together in a
// single pass.
//
// The load-merge-apply section runs behind a single writer lock: the store's
// UpsertAll is the only mutation point and two runs can never interleave. A
// slow or unreachable terminal only costs its own batch; cancellation aborts
// the run before apply and is surfaced as an error.
//
// The Report returned by each run is the operator-facing summary: per-source
// success with event count or failure message, plus totals for merged and
// dropped events.
package syncer
