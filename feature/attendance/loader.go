package attendance

import (
	"attendance-manager/core/ledger"
	"attendance-manager/core/storage"
	"attendance-manager/core/syncer"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the attendance feature. The writer must be the shared
// ledger writer the syncer applies through. The storage client may be nil
// when no object storage is configured; the export-to-storage endpoint then
// reports unavailable.
func NewFeature(store ledger.Store, writer *ledger.Writer, sync *syncer.Syncer, registry *syncer.Registry, client storage.Client, bucket string, logger *zap.Logger) *Feature {
	svc := NewService(store, writer, sync, registry, logger)
	h := NewHandler(svc, client, bucket)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "attendance"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
