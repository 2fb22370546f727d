package tetra

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidConfig wraps every Config.Validate failure.
	ErrInvalidConfig = errors.New("invalid board config")
	// ErrSpawnBlocked means the spawn placement does not fit: the game is over.
	ErrSpawnBlocked = errors.New("spawn blocked")
	// ErrGameOver is returned by spawn calls once the board is over, until Reset.
	ErrGameOver = errors.New("game over")
)

// Config is the static setup of a Board.
type Config struct {
	Width, Height int
	// Spawn is the anchor every new piece starts at, in rotation 0.
	Spawn Vec
	// StepDelay is the interval between gravity steps.
	StepDelay time.Duration
	// LockDelay is how long a grounded piece may rest before a gravity step locks it.
	LockDelay time.Duration
	Catalog   Catalog
}

// DefaultConfig returns a 10x20 field with the Standard Rotation System catalog.
func DefaultConfig() Config {
	return Config{
		Width:     10,
		Height:    20,
		Spawn:     Vec{X: -1, Y: 8},
		StepDelay: time.Second,
		LockDelay: 500 * time.Millisecond,
		Catalog:   DefaultCatalog(),
	}
}

// Validate reports the first problem that would keep a Board from running.
// A spawn anchor that does not fit an empty field is not an error here; it
// surfaces as ErrSpawnBlocked on the first spawn.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: field size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.StepDelay <= 0 {
		return fmt.Errorf("%w: step delay %s must be positive", ErrInvalidConfig, c.StepDelay)
	}
	if c.LockDelay < 0 {
		return fmt.Errorf("%w: lock delay %s is negative", ErrInvalidConfig, c.LockDelay)
	}
	return c.Catalog.Validate()
}
