// Package middleware groups the HTTP middlewares: rayid assigns a
// correlation id to every request, auth enforces the shared API key.
package middleware
