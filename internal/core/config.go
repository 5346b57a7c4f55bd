package core

// RuntimeConfig contains host parameters passed to the runner at start-up.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay (0 = time based)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// FrameClock converts frames into simulated milliseconds without drift.
// 60 fps yields 16 or 17 ms per frame so that every second sums to 1000.
type FrameClock struct {
	tickRate  int
	remainder int
}

// NewFrameClock creates a clock for the given tick rate. Non-positive rates fall back to 60.
func NewFrameClock(tickRate int) *FrameClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FrameClock{tickRate: tickRate}
}

// Next returns the simulated duration of the next frame in milliseconds.
func (c *FrameClock) Next() int {
	total := 1000 + c.remainder
	ms := total / c.tickRate
	c.remainder = total % c.tickRate
	return ms
}
