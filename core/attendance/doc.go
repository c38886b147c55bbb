// Package attendance implements the reconciliation engine that merges raw
// punch events from biometric terminals into the canonical attendance
// ledger: one record per employee per day.
//
// # Merge semantics
//
// Merge is a pure function over an immutable snapshot of the existing ledger
// and a concatenated event list. For each event it resolves the employee and
// lateness threshold from master data, then either creates the day's record
// or folds the event into it:
//
//   - Check-in is the running minimum of all event times for the key.
//   - Check-out is the running maximum, but only ever set to a time strictly
//     after the check-in as resolved when that event is applied. Events are
//     applied sequentially in slice order, so callers own the ordering
//     contract.
//   - Status is always recomputed from the final check-in and the threshold
//     (absent / present / late); excused exists only via manual edits.
//   - Worked hours are always recomputed from check-in and check-out,
//     rounded to one decimal, zero when either side is unrecorded.
//
// Merge is total. Malformed events are dropped and counted, unknown badge
// codes produce "unregistered (<code>)" placeholder records, and an empty
// effective input returns the ledger unchanged. No error path exists.
//
// # Invariants
//
// At most one record exists per (employee code, date). Status and worked
// hours are pure functions of the clock fields and are never stored
// independently by the merge path. Records are only ever destroyed by the
// explicit delete operations on the ledger store, never by a merge.
package attendance
