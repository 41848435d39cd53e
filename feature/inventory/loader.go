package inventory

import (
	"context"

	"skinfolio/core/cache"
	"skinfolio/core/storage"
	"skinfolio/feature/inventory/steam"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature assembles the inventory feature: fetch client, matcher,
// snapshot store, resolver and orchestrator. storageClient and cooldown may
// be nil, in which case archiving and the rate-limit cooldown are disabled.
// The archive bucket is provisioned here; if that fails, archiving is
// disabled rather than failing startup.
func NewFeature(db *gorm.DB, storageClient storage.Client, bucket string, cooldown cache.Cache, steamCfg steam.Config, syncCfg SyncConfig, logger *zap.Logger) *Feature {
	svc := NewService(
		NewUserResolver(db),
		steam.NewClient(steamCfg, logger),
		NewCatalogMatcher(db),
		NewSnapshotStore(db),
		syncCfg,
		logger,
	)
	if storageClient != nil {
		archiver := NewArchiver(storageClient, bucket)
		if err := archiver.EnsureBucket(context.Background()); err != nil {
			logger.Warn("Payload archiving disabled, bucket provisioning failed",
				zap.String("bucket", bucket), zap.Error(err))
		} else {
			svc.SetArchiver(archiver)
		}
	}
	if cooldown != nil {
		svc.SetCooldown(cooldown)
	}

	h := NewHandler(svc, logger)
	return &Feature{service: svc, handler: h}
}

// Service exposes the orchestrator, for the CLI sync command.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "inventory"
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
