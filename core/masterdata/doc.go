// Package masterdata supplies the employee roster and shift catalog the
// reconciliation engine resolves punch events against.
//
// Master data is owned by HR administration and is strictly read-only from
// this service's perspective. The package exposes it as immutable Snapshot
// values: indexed maps of employees by badge code and shifts by id, plus the
// threshold resolution rule (shift start time, falling back to 09:00 when no
// shift resolves).
//
// # Providers
//
// Two Provider implementations exist:
//
//   - GormProvider reads the employees and shifts tables and caches the
//     snapshot for a configurable TTL, with singleflight protection against
//     concurrent rebuilds.
//   - StaticProvider serves a fixed snapshot, for tests and DB-less
//     deployments.
package masterdata
