package runner

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func TestTriggerAdvance(t *testing.T) {
	tr := NewTrigger(1000)

	if n := tr.Advance(999); n != 0 {
		t.Errorf("fired early: %d", n)
	}
	if n := tr.Advance(1); n != 1 {
		t.Errorf("expected 1 firing at 1000ms, got %d", n)
	}
	if n := tr.Advance(2500); n != 2 {
		t.Errorf("expected 2 firings over 2500ms, got %d", n)
	}
	if n := tr.Advance(500); n != 1 {
		t.Errorf("leftover 500ms should carry, got %d firings", n)
	}
	if n := tr.Advance(0); n != 0 {
		t.Errorf("zero time should not fire, got %d", n)
	}
}

func TestTriggerReschedule(t *testing.T) {
	tr := NewTrigger(1000)
	tr.Advance(950)

	tr.Reschedule(900)
	if tr.Period() != 900 {
		t.Fatalf("Period() = %d, expected 900", tr.Period())
	}
	// 950ms already elapsed must not fire retroactively
	if n := tr.Advance(899); n != 0 {
		t.Errorf("fired before a full new period: %d", n)
	}
	if n := tr.Advance(1); n != 1 {
		t.Errorf("expected firing one new period after reschedule, got %d", n)
	}
}

func TestSchedulerCadence(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	f := NewEntityField(cfg)
	rng := &scriptedRand{values: []int{0, 400}}
	s := NewSpawnScheduler(cfg, f, rng)

	var total SpawnReport
	for i := 0; i < 300; i++ { // 3000ms
		r := s.Tick(10)
		total.Obstacles += r.Obstacles
		total.Pickups += r.Pickups
		total.PickupsRejected += r.PickupsRejected
	}

	if total.Obstacles != 3 {
		t.Errorf("expected 3 obstacles in 3s, got %d", total.Obstacles)
	}
	if total.Pickups+total.PickupsRejected != 2 {
		t.Errorf("expected 2 pickup attempts in 3s, got %+v", total)
	}
}

func TestSchedulerRandomBand(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawn.PickupIntervalMs = 60000
	f := NewEntityField(cfg)
	rng := &scriptedRand{values: []int{0, 500, 250}}
	s := NewSpawnScheduler(cfg, f, rng)

	want := []int{50, 550, 300}
	for range want {
		s.Tick(1000)
	}

	obs := f.Obstacles()
	if len(obs) != 3 {
		t.Fatalf("expected 3 obstacles, got %d", len(obs))
	}
	for i, o := range obs {
		if o.Y != want[i] {
			t.Errorf("obstacle %d y = %d, expected %d", i, o.Y, want[i])
		}
		if o.Y < cfg.Spawn.MinY || o.Y > cfg.Spawn.MaxY {
			t.Errorf("obstacle %d outside spawn band: %d", i, o.Y)
		}
	}
}

func TestSchedulerObstaclesBeforePickups(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawn.PickupIntervalMs = 1000
	f := NewEntityField(cfg)
	// Obstacle and pickup both draw y=300 in the same tick
	rng := &scriptedRand{values: []int{250}}
	s := NewSpawnScheduler(cfg, f, rng)

	r := s.Tick(1000)
	if r.Obstacles != 1 || r.PickupsRejected != 1 || r.Pickups != 0 {
		t.Errorf("pickup should be rejected against the obstacle spawned in the same tick: %+v", r)
	}
}

func TestSchedulerRescheduleAndReset(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	f := NewEntityField(cfg)
	s := NewSpawnScheduler(cfg, f, &scriptedRand{})

	s.Reschedule(400)
	if s.ObstacleInterval() != 400 {
		t.Errorf("ObstacleInterval() = %d, expected 400", s.ObstacleInterval())
	}
	if r := s.Tick(400); r.Obstacles != 1 {
		t.Errorf("expected obstacle after 400ms, got %+v", r)
	}

	s.Tick(300)
	s.Reset(1000)
	if s.ObstacleInterval() != 1000 {
		t.Errorf("Reset should restore 1000, got %d", s.ObstacleInterval())
	}
	if r := s.Tick(999); r.Obstacles != 0 || r.Pickups+r.PickupsRejected != 0 {
		t.Errorf("Reset should clear elapsed time, got %+v", r)
	}
}
