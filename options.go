package arbor

import "go.uber.org/zap"

// Option configures a World.
type Option func(*config)

type config struct {
	logger   *zap.Logger
	events   *EventBus
	capacity int
}

// WithLogger sets the logger the world reports rejected operations and
// disposal cascades to. The default logger discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithEventBus makes the world publish its lifecycle events on bus instead
// of a private one. Several worlds may share a bus; every event carries the
// world it came from.
func WithEventBus(bus *EventBus) Option {
	return func(c *config) {
		c.events = bus
	}
}

// WithInitialCapacity pre-sizes the entity arena for n live entities.
func WithInitialCapacity(n int) Option {
	return func(c *config) {
		c.capacity = n
	}
}
