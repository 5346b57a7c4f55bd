package config

// DifficultyController maps cumulative score to the obstacle spawn interval.
// The interval starts at InitialIntervalMs and drops by StepMs every time the
// score reaches a positive multiple of StepEvery, never going below FloorMs.
type DifficultyController struct {
	cfg      DifficultyConfig
	interval int
}

// NewDifficultyController creates a controller at the initial interval.
func NewDifficultyController(cfg DifficultyConfig) *DifficultyController {
	d := &DifficultyController{cfg: cfg}
	d.Reset()
	return d
}

// Reset returns the controller to the initial interval for a new run.
func (d *DifficultyController) Reset() {
	d.interval = d.cfg.InitialIntervalMs
}

// Interval returns the current obstacle spawn interval in milliseconds.
func (d *DifficultyController) Interval() int {
	return d.interval
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyController) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.StepEvery > 0 && d.cfg.StepMs > 0
}

// OnScoreIncrement is called every time the score goes up by one.
// It returns the (possibly updated) interval and whether the caller must
// re-arm its obstacle timer with it.
func (d *DifficultyController) OnScoreIncrement(score int) (intervalMs int, reschedule bool) {
	if !d.IsEnabled() || score <= 0 || score%d.cfg.StepEvery != 0 {
		return d.interval, false
	}
	if d.interval <= d.cfg.FloorMs {
		return d.interval, false
	}

	next := d.interval - d.cfg.StepMs
	if next < d.cfg.FloorMs {
		next = d.cfg.FloorMs
	}
	d.interval = next
	return d.interval, true
}
