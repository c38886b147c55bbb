// Package attendance is the HTTP surface over the reconciliation engine:
// ledger queries, sync triggers (all terminals or a single one), manual
// delete operations, finalized-record imports and CSV exports.
//
// All mutations route through the Service, which delegates to the sync
// orchestrator and the ledger store; nothing here touches ledger state
// directly.
package attendance
