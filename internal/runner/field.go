// Package runner implements the endless runner simulation: entity field,
// spawn scheduling, collision resolution, difficulty progression and the
// run state machine. It has no terminal dependencies; the platform layer
// drives it one tick at a time.
package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// EntityKind distinguishes obstacles from collectible pickups.
type EntityKind int

const (
	KindObstacle EntityKind = iota
	KindPickup
)

// Entity is a scrolling obstacle or pickup. Position is the centre point.
type Entity struct {
	ID    uint64
	Kind  EntityKind
	X, Y  int
	W, H  int
	Alive bool // Cleared on the obstacle that ended the run
}

// Bounds returns the collision rectangle for this entity.
func (e Entity) Bounds() core.Rect {
	return core.RectAround(e.X, e.Y, e.W, e.H)
}

// EntityField tracks live obstacles and pickups, scrolls them left and
// expires the ones that leave the screen.
type EntityField struct {
	obstacles     []Entity
	pickups       []Entity
	spawnX        int
	expiryX       int
	minSeparation int
	obstacleSize  config.EntityConfig
	pickupSize    config.EntityConfig
	nextID        uint64
}

// NewEntityField creates an empty field using the spawn geometry from cfg.
func NewEntityField(cfg config.RunnerConfig) *EntityField {
	return &EntityField{
		obstacles:     make([]Entity, 0, 16),
		pickups:       make([]Entity, 0, 16),
		spawnX:        cfg.Spawn.X,
		expiryX:       cfg.Spawn.ExpiryX,
		minSeparation: cfg.Spawn.MinSeparation,
		obstacleSize:  cfg.Obstacles,
		pickupSize:    cfg.Pickups,
	}
}

// Advance moves every entity dx units left and removes those whose x falls
// below the expiry threshold. It returns how many live obstacles expired,
// each of which is worth one point.
func (f *EntityField) Advance(dx int) (expiredObstacles int) {
	valid := f.obstacles[:0]
	for _, o := range f.obstacles {
		o.X -= dx
		if o.X < f.expiryX {
			if o.Alive {
				expiredObstacles++
			}
			continue
		}
		valid = append(valid, o)
	}
	f.obstacles = valid

	validPickups := f.pickups[:0]
	for _, p := range f.pickups {
		p.X -= dx
		if p.X < f.expiryX {
			continue
		}
		validPickups = append(validPickups, p)
	}
	f.pickups = validPickups

	return expiredObstacles
}

// SpawnObstacle inserts a new obstacle at (spawnX, y).
func (f *EntityField) SpawnObstacle(y int) Entity {
	f.nextID++
	o := Entity{
		ID:    f.nextID,
		Kind:  KindObstacle,
		X:     f.spawnX,
		Y:     y,
		W:     f.obstacleSize.Width,
		H:     f.obstacleSize.Height,
		Alive: true,
	}
	f.obstacles = append(f.obstacles, o)
	return o
}

// SpawnPickup inserts a new pickup at (spawnX, y) unless an existing obstacle
// sits within the minimum vertical separation. Rejection is silent.
func (f *EntityField) SpawnPickup(y int) (Entity, bool) {
	if f.Blocked(y) {
		return Entity{}, false
	}

	f.nextID++
	p := Entity{
		ID:    f.nextID,
		Kind:  KindPickup,
		X:     f.spawnX,
		Y:     y,
		W:     f.pickupSize.Width,
		H:     f.pickupSize.Height,
		Alive: true,
	}
	f.pickups = append(f.pickups, p)
	return p, true
}

// Blocked reports whether a pickup at y would violate the overlap rule.
func (f *EntityField) Blocked(y int) bool {
	for _, o := range f.obstacles {
		if core.Abs(o.Y-y) < f.minSeparation {
			return true
		}
	}
	return false
}

// Obstacles returns the live obstacles. The slice must not be modified.
func (f *EntityField) Obstacles() []Entity {
	return f.obstacles
}

// Pickups returns the live pickups. The slice must not be modified.
func (f *EntityField) Pickups() []Entity {
	return f.pickups
}

// removePickup destroys the pickup with the given ID.
func (f *EntityField) removePickup(id uint64) bool {
	for i, p := range f.pickups {
		if p.ID == id {
			f.pickups = append(f.pickups[:i], f.pickups[i+1:]...)
			return true
		}
	}
	return false
}

// markHit flags the obstacle that ended the run so it is never reported again.
func (f *EntityField) markHit(id uint64) {
	for i := range f.obstacles {
		if f.obstacles[i].ID == id {
			f.obstacles[i].Alive = false
			return
		}
	}
}

// Clear destroys every entity.
func (f *EntityField) Clear() {
	f.obstacles = f.obstacles[:0]
	f.pickups = f.pickups[:0]
}
