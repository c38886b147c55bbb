// Package config loads the application configuration from environment
// variables and an optional .env file.
//
// Configuration is split into partial configs owned by their packages
// (server, database, storage, log, terminals, sync). Defaults come from
// `default` struct tags, bound into Viper by reflection; environment
// variables map onto nested keys with underscores (SERVER_PORT ->
// server.port, TERMINALS_HTTP -> terminals.http).
package config
