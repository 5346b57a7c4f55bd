package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the reference runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Viewport: ViewportConfig{
			Width:       800,
			Height:      600,
			ScrollSpeed: 4,
		},
		Player: PlayerConfig{
			X:      100,
			StartY: 300,
			Width:  40,
			Height: 40,
			Speed:  5,
		},
		Obstacles: EntityConfig{
			Width:  30,
			Height: 60,
		},
		Pickups: EntityConfig{
			Width:  30,
			Height: 30,
		},
		Spawn: SpawnConfig{
			X:                800,
			ExpiryX:          -50,
			MinY:             50,
			MaxY:             550,
			MinSeparation:    60,
			PickupIntervalMs: 1500,
		},
		Difficulty: DifficultyConfig{
			Enabled:           true,
			InitialIntervalMs: 1000,
			StepEvery:         20,
			StepMs:            100,
			FloorMs:           400,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
