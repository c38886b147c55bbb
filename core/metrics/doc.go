// Package metrics defines the Prometheus instruments for the sync pipeline
// (runs, merged/dropped events, per-source failures, ledger size) and the
// Fiber handler for the scrape endpoint.
package metrics
