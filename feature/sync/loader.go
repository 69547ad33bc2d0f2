package sync

import (
	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	runner  *Runner
	handler *Handler
}

// NewFeature creates the sync feature around an already-wired runner.
func NewFeature(runner *Runner) *Feature {
	return &Feature{
		runner:  runner,
		handler: NewHandler(runner),
	}
}

// Runner returns the feature's runner for use by the scheduler and CLI.
func (f *Feature) Runner() *Runner {
	return f.runner
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "sync"
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
