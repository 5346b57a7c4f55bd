// Package config provides YAML-based runner configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// RunnerConfig contains all tunables for the endless runner.
// Distances are world units (the viewport is 800×600 by default); durations are milliseconds.
type RunnerConfig struct {
	Viewport   ViewportConfig   `yaml:"viewport"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  EntityConfig     `yaml:"obstacles"`
	Pickups    EntityConfig     `yaml:"pickups"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ViewportConfig defines the playable area and the horizontal scroll speed.
type ViewportConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	ScrollSpeed int `yaml:"scroll_speed"` // Units every entity moves left per tick
}

// PlayerConfig defines the player's fixed column, size and vertical speed.
type PlayerConfig struct {
	X      int `yaml:"x"`
	StartY int `yaml:"start_y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"` // Units per tick while a direction is held
}

// EntityConfig defines the size of a spawned entity.
type EntityConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpawnConfig defines where and how often entities appear.
type SpawnConfig struct {
	X                int `yaml:"x"`                  // Spawn column (right edge of the viewport)
	ExpiryX          int `yaml:"expiry_x"`           // Entities with x below this are removed
	MinY             int `yaml:"min_y"`              // Inclusive lower bound of the spawn band
	MaxY             int `yaml:"max_y"`              // Inclusive upper bound of the spawn band
	MinSeparation    int `yaml:"min_separation"`     // Pickup/obstacle vertical overlap rule
	PickupIntervalMs int `yaml:"pickup_interval_ms"` // Fixed pickup cadence
}

// DifficultyConfig defines the obstacle cadence progression.
type DifficultyConfig struct {
	Enabled           bool `yaml:"enabled"`
	InitialIntervalMs int  `yaml:"initial_interval_ms"`
	StepEvery         int  `yaml:"step_every"` // Score multiple that triggers a step
	StepMs            int  `yaml:"step_ms"`
	FloorMs           int  `yaml:"floor_ms"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI flag value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// Validate reports configuration values the simulation cannot run with.
func (c RunnerConfig) Validate() error {
	var errs []error

	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewport must be positive, got %dx%d", c.Viewport.Width, c.Viewport.Height))
	}
	if c.Viewport.ScrollSpeed <= 0 {
		errs = append(errs, fmt.Errorf("viewport.scroll_speed must be positive, got %d", c.Viewport.ScrollSpeed))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0 {
		errs = append(errs, errors.New("obstacle size must be positive"))
	}
	if c.Pickups.Width <= 0 || c.Pickups.Height <= 0 {
		errs = append(errs, errors.New("pickup size must be positive"))
	}
	if c.Spawn.MinY > c.Spawn.MaxY {
		errs = append(errs, fmt.Errorf("spawn band is inverted: min_y %d > max_y %d", c.Spawn.MinY, c.Spawn.MaxY))
	}
	if c.Spawn.ExpiryX >= c.Spawn.X {
		errs = append(errs, fmt.Errorf("spawn.expiry_x %d must be left of spawn.x %d", c.Spawn.ExpiryX, c.Spawn.X))
	}
	if c.Spawn.PickupIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("spawn.pickup_interval_ms must be positive, got %d", c.Spawn.PickupIntervalMs))
	}
	if c.Difficulty.InitialIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("difficulty.initial_interval_ms must be positive, got %d", c.Difficulty.InitialIntervalMs))
	}
	if c.Difficulty.Enabled {
		if c.Difficulty.StepEvery <= 0 || c.Difficulty.StepMs <= 0 {
			errs = append(errs, errors.New("difficulty.step_every and difficulty.step_ms must be positive"))
		}
		if c.Difficulty.FloorMs <= 0 || c.Difficulty.FloorMs > c.Difficulty.InitialIntervalMs {
			errs = append(errs, fmt.Errorf("difficulty.floor_ms %d must be in (0, %d]", c.Difficulty.FloorMs, c.Difficulty.InitialIntervalMs))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid runner config: %w", errors.Join(errs...))
	}
	return nil
}
