package students

import (
	"student-registry/core/loader"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature wires the students store, service and handler into the
// application through the loader.
type Feature struct {
	db     *gorm.DB
	logger *zap.Logger
}

var _ loader.Feature = (*Feature)(nil)

// NewFeature creates the students feature.
func NewFeature(db *gorm.DB, logger *zap.Logger) *Feature {
	return &Feature{db: db, logger: logger}
}

// Name implements loader.Feature.
func (f *Feature) Name() string {
	return "students"
}

// IsEnabled implements loader.Feature. The registry is nothing without its
// records, so the feature is always on.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load runs the idempotent schema migration and registers the routes.
func (f *Feature) Load(app fiber.Router) error {
	store := NewStore(f.db)
	if err := store.Migrate(); err != nil {
		return err
	}

	svc := NewService(store, f.logger)
	NewHandler(svc).RegisterRoutes(app)
	return nil
}
