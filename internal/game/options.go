package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Option configures a GameState during creation.
type Option func(*gameConfig)

type gameConfig struct {
	players int
	logger  *log.Logger
	clock   quartz.Clock
	bus     EventBus
}

// WithPlayers sets the number of players. Default is DefaultPlayers.
func WithPlayers(n int) Option {
	return func(c *gameConfig) {
		c.players = n
	}
}

// WithLogger sets the logger used for elimination and capture diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(c *gameConfig) {
		c.logger = logger
	}
}

// WithClock sets the clock used to timestamp events. Tests pass a
// quartz.Mock for reproducible timestamps.
func WithClock(clock quartz.Clock) Option {
	return func(c *gameConfig) {
		c.clock = clock
	}
}

// WithEventBus publishes game events to the given bus.
func WithEventBus(bus EventBus) Option {
	return func(c *gameConfig) {
		c.bus = bus
	}
}

func defaultGameConfig() *gameConfig {
	return &gameConfig{
		players: DefaultPlayers,
		logger:  log.New(io.Discard),
		clock:   quartz.NewReal(),
		bus:     NewEventBus(),
	}
}
