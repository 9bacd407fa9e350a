package engine

import "github.com/vovakirdan/tui-runner/internal/core"

// Hitboxer is anything with a collision rectangle.
type Hitboxer interface {
	Hitbox() core.Rect
}

// CheckCollision reports whether player overlaps any obstacle.
// Runs in time proportional to len(obstacles).
func CheckCollision[T Hitboxer](player core.Rect, obstacles []T) bool {
	for i := range obstacles {
		if core.Intersects(player, obstacles[i].Hitbox()) {
			return true
		}
	}
	return false
}
