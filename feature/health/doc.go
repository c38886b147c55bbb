// Package health exposes deployment health checks: HR database tables,
// the punch dump bucket, and the registered terminal inventory.
package health
