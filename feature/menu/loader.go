package menu

import (
	"context"

	"menu-manager/core/reconcile"
	"menu-manager/core/selector"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Menu feature.
func NewFeature(coordinator *reconcile.Coordinator, logger *zap.Logger) *Feature {
	svc := NewService(coordinator, selector.New(nil), logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "menu"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Service exposes the feature's service, used by the baseline watcher.
func (f *Feature) Service() *Service {
	return f.service
}

// Load resolves the initial menu and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.service.Load(context.Background())
	f.handler.RegisterRoutes(app)
	return nil
}
