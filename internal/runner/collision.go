package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// CollisionResult reports the outcome of one collision check.
type CollisionResult struct {
	CollidedObstacle bool
	Obstacle         Entity   // The first obstacle hit, when CollidedObstacle is set
	Collected        []Entity // Every pickup overlapped this tick
}

// CollisionResolver tests the player against the entity field using
// axis-aligned bounding boxes.
type CollisionResolver struct{}

// Check evaluates every live obstacle and every pickup exactly once.
// Overlapped pickups are removed from the field and returned as collected.
func (CollisionResolver) Check(player core.Rect, field *EntityField) CollisionResult {
	var res CollisionResult

	for _, o := range field.Obstacles() {
		if o.Alive && player.Intersects(o.Bounds()) {
			res.CollidedObstacle = true
			res.Obstacle = o
			break
		}
	}

	for _, p := range field.Pickups() {
		if player.Intersects(p.Bounds()) {
			res.Collected = append(res.Collected, p)
		}
	}
	for _, p := range res.Collected {
		field.removePickup(p.ID)
	}

	return res
}
