package syncer

import (
	"fmt"
	"strings"
)

// SourceConfig holds configuration for the punch sources.
type SourceConfig struct {
	// HTTP is a comma-separated list of "id=baseURL" pairs, one per
	// terminal exposing a punch endpoint (e.g.
	// "lobby=http://10.0.0.5:8081,annex=http://10.0.0.6:8081").
	HTTP string `mapstructure:"http" default:""`

	// Storage is a comma-separated list of terminal ids whose collectors
	// drop punch dumps into the object storage bucket.
	Storage string `mapstructure:"storage" default:""`

	// TimeoutSeconds is the per-fetch timeout for HTTP terminals.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`

	// RetryAttempts is how many times an HTTP fetch is attempted before the
	// terminal is reported as failed.
	RetryAttempts uint `mapstructure:"retry_attempts" default:"3"`
}

// HTTPEndpoint is one parsed entry of the HTTP terminal list.
type HTTPEndpoint struct {
	ID      string
	BaseURL string
}

// HTTPEndpoints parses the HTTP terminal list, preserving order. Order
// matters: it becomes source registration order, which fixes the merge's
// batch concatenation order.
func (c SourceConfig) HTTPEndpoints() ([]HTTPEndpoint, error) {
	if strings.TrimSpace(c.HTTP) == "" {
		return nil, nil
	}

	var endpoints []HTTPEndpoint
	for _, entry := range strings.Split(c.HTTP, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		id, baseURL, ok := strings.Cut(entry, "=")
		if !ok || strings.TrimSpace(id) == "" || strings.TrimSpace(baseURL) == "" {
			return nil, fmt.Errorf("invalid terminal entry %q, want id=baseURL", entry)
		}
		endpoints = append(endpoints, HTTPEndpoint{
			ID:      strings.TrimSpace(id),
			BaseURL: strings.TrimSpace(baseURL),
		})
	}
	return endpoints, nil
}

// StorageIDs parses the storage terminal list, preserving order.
func (c SourceConfig) StorageIDs() []string {
	if strings.TrimSpace(c.Storage) == "" {
		return nil
	}

	var ids []string
	for _, id := range strings.Split(c.Storage, ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
