package lanes

import (
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Obstacle is a block falling down one lane.
type Obstacle struct {
	Rect core.Rect
	Lane Lane
}

// Hitbox returns the collision rectangle.
func (o Obstacle) Hitbox() core.Rect {
	return o.Rect
}

// ObstacleManager handles spawning, movement, and removal of obstacles.
type ObstacleManager struct {
	obstacles []Obstacle
	rng       *rand.Rand
	track     Track
	cfg       config.LanesConfig
}

// NewObstacleManager creates an empty manager with the given RNG seed.
func NewObstacleManager(seed int64, cfg config.LanesConfig, track Track) *ObstacleManager {
	return &ObstacleManager{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rand.New(rand.NewSource(seed)),
		track:     track,
		cfg:       cfg,
	}
}

// Spawn drops new obstacles just above the top edge. Usually one; with
// probability growing with level, a burst in distinct lanes.
func (om *ObstacleManager) Spawn(level int) {
	count := 1
	if level > om.rng.Intn(100)+1 {
		count = om.cfg.Obstacles.BurstSize
	}

	lanes := om.rng.Perm(config.LaneCount)
	for _, l := range lanes[:count] {
		om.place(Lane(l))
	}
}

func (om *ObstacleManager) place(l Lane) {
	h := om.cfg.Obstacles.Height
	om.obstacles = append(om.obstacles, Obstacle{
		Rect: om.track.Place(l, -h, om.cfg.Obstacles.Width, h),
		Lane: l,
	})
}

// AdvanceAll moves obstacles down by velocity and drops those whose top
// edge has passed the bottom of the playfield.
func (om *ObstacleManager) AdvanceAll(velocity int) {
	for i := range om.obstacles {
		om.obstacles[i].Rect.Y += velocity
	}

	live := om.obstacles[:0]
	for _, o := range om.obstacles {
		if o.Rect.Y < om.cfg.Playfield.Height {
			live = append(live, o)
		}
	}
	om.obstacles = live
}

// Obstacles returns the live obstacles. The slice is reused by AdvanceAll.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return om.obstacles
}
