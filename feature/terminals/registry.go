package terminals

import (
	"fmt"
	"time"

	"attendance-manager/core/storage"
	"attendance-manager/core/syncer"

	"go.uber.org/zap"
)

// BuildRegistry wires every configured terminal into a source registry:
// HTTP terminals first, storage-dump terminals after, each group in
// configured order. The resulting registration order is the merge's batch
// concatenation order.
func BuildRegistry(cfg syncer.SourceConfig, client storage.Client, bucket string, logger *zap.Logger) (*syncer.Registry, error) {
	registry := syncer.NewRegistry()

	endpoints, err := cfg.HTTPEndpoints()
	if err != nil {
		return nil, fmt.Errorf("invalid terminal configuration: %w", err)
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	for _, ep := range endpoints {
		registry.Register(NewHTTPSource(ep.ID, ep.BaseURL, timeout, cfg.RetryAttempts))
		logger.Info("Registered HTTP terminal",
			zap.String("terminal", ep.ID),
			zap.String("base_url", ep.BaseURL),
		)
	}

	for _, id := range cfg.StorageIDs() {
		if client == nil {
			return nil, fmt.Errorf("terminal %s requires object storage, but no storage client is configured", id)
		}
		registry.Register(NewStorageSource(id, client, bucket))
		logger.Info("Registered storage terminal", zap.String("terminal", id))
	}

	return registry, nil
}
