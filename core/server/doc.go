// Package server holds the HTTP server configuration (listen port and API
// key). The server itself is assembled in the start command.
package server
