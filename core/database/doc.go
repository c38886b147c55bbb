// Package database establishes the connection to the HR database holding
// master data (employees, shifts) and, when persistence is enabled, the
// attendance ledger table.
//
// MySQL is the production driver; SQLite (including :memory:) serves the
// test suite. The connection is treated as optional: a failed connect
// degrades the service to the in-memory ledger and an empty roster instead
// of aborting startup.
package database
