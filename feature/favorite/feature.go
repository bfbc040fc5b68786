package favorite

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	store   Store
	handler *Handler
}

// NewFeature creates a new Favorite feature around a store.
func NewFeature(store Store, logger *zap.Logger) *Feature {
	return &Feature{store: store, handler: NewHandler(store, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "favorite"
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

// Store exposes the favorite store so the synchronization service can run
// the update cascade.
func (f *Feature) Store() Store {
	return f.store
}
