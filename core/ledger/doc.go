// Package ledger owns storage of the canonical attendance records.
//
// The Store interface is the only surface through which the ledger is read
// or mutated. The reconciliation engine applies merge results through
// UpsertAll as one atomic snapshot replacement; manual operations are the
// explicit DeleteByID and DeleteByDate calls. Consumers read through Query,
// which supports an exact date plus optional substring/equality filters on
// code, name, check-in, check-out and status.
//
// Two implementations ship:
//
//   - MemoryStore: mutex-guarded in-process map, used when no ledger
//     database is configured and throughout the test suite.
//   - GormStore: database-backed store (MySQL in production, SQLite in
//     tests) with a unique index on (employee_code, date) enforcing the
//     one-record-per-employee-per-day invariant at the storage layer too.
package ledger
