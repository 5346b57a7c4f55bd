package runner

import "github.com/vovakirdan/tui-runner/internal/config"

// RandomSource supplies spawn positions. *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// Trigger is a periodic event source driven by simulated time.
type Trigger struct {
	period  int
	elapsed int
}

// NewTrigger creates a trigger that fires every periodMs milliseconds.
func NewTrigger(periodMs int) *Trigger {
	return &Trigger{period: periodMs}
}

// Advance adds dtMs of simulated time and returns how many times the trigger fired.
func (t *Trigger) Advance(dtMs int) int {
	if t.period <= 0 || dtMs <= 0 {
		return 0
	}
	t.elapsed += dtMs
	fires := t.elapsed / t.period
	t.elapsed %= t.period
	return fires
}

// Reschedule replaces the firing period. The next firing happens one full
// new period from now; time already elapsed is not applied retroactively.
func (t *Trigger) Reschedule(periodMs int) {
	t.period = periodMs
	t.elapsed = 0
}

// Period returns the current firing period in milliseconds.
func (t *Trigger) Period() int {
	return t.period
}

// SpawnReport summarises what a scheduler tick produced.
type SpawnReport struct {
	Obstacles       int
	Pickups         int
	PickupsRejected int
}

// SpawnScheduler runs the obstacle and pickup triggers and places new
// entities at random heights within the spawn band.
type SpawnScheduler struct {
	field     *EntityField
	rng       RandomSource
	minY      int
	maxY      int
	obstacles *Trigger
	pickups   *Trigger
}

// NewSpawnScheduler creates a scheduler feeding field.
func NewSpawnScheduler(cfg config.RunnerConfig, field *EntityField, rng RandomSource) *SpawnScheduler {
	return &SpawnScheduler{
		field:     field,
		rng:       rng,
		minY:      cfg.Spawn.MinY,
		maxY:      cfg.Spawn.MaxY,
		obstacles: NewTrigger(cfg.Difficulty.InitialIntervalMs),
		pickups:   NewTrigger(cfg.Spawn.PickupIntervalMs),
	}
}

// Reset re-arms both triggers from zero with the given obstacle interval.
// The pickup interval never changes.
func (s *SpawnScheduler) Reset(obstacleMs int) {
	s.obstacles.Reschedule(obstacleMs)
	s.pickups.Reschedule(s.pickups.Period())
}

// Reschedule re-arms the obstacle trigger with a new interval.
func (s *SpawnScheduler) Reschedule(obstacleMs int) {
	s.obstacles.Reschedule(obstacleMs)
}

// ObstacleInterval returns the current obstacle period in milliseconds.
func (s *SpawnScheduler) ObstacleInterval() int {
	return s.obstacles.Period()
}

// Tick advances both triggers by dtMs and performs the due spawns.
// Obstacles are placed before pickups so the overlap rule sees them.
func (s *SpawnScheduler) Tick(dtMs int) SpawnReport {
	var report SpawnReport

	for n := s.obstacles.Advance(dtMs); n > 0; n-- {
		s.field.SpawnObstacle(s.randomY())
		report.Obstacles++
	}

	for n := s.pickups.Advance(dtMs); n > 0; n-- {
		if _, ok := s.field.SpawnPickup(s.randomY()); ok {
			report.Pickups++
		} else {
			report.PickupsRejected++
		}
	}

	return report
}

// randomY draws uniformly from [minY, maxY].
func (s *SpawnScheduler) randomY() int {
	if s.maxY <= s.minY {
		return s.minY
	}
	return s.minY + s.rng.Intn(s.maxY-s.minY+1)
}
