package jump

import (
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Kind distinguishes obstacles the player must jump from ones it must duck.
type Kind int

const (
	KindGround Kind = iota // sits on the ground; jump over it
	KindAir                // floats at head height; duck under it
)

// String returns the kind name.
func (k Kind) String() string {
	if k == KindAir {
		return "air"
	}
	return "ground"
}

// Obstacle is a hazard scrolling toward the player.
type Obstacle struct {
	Rect core.Rect
	Kind Kind
}

// Hitbox returns the collision rectangle.
func (o Obstacle) Hitbox() core.Rect {
	return o.Rect
}

// ObstacleManager handles spawning, movement, and removal of obstacles.
type ObstacleManager struct {
	obstacles []Obstacle
	rng       *rand.Rand
	cfg       config.JumpConfig
	groundY   int // top edge of a ground obstacle
	airY      int // top edge of an air obstacle
}

// NewObstacleManager creates an empty manager with the given RNG seed.
func NewObstacleManager(seed int64, cfg config.JumpConfig) *ObstacleManager {
	return &ObstacleManager{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rand.New(rand.NewSource(seed)),
		cfg:       cfg,
		groundY:   cfg.Ground.Y - cfg.Obstacles.Height,
		// blocks a standing player, clears a ducking one
		airY: cfg.Ground.Y - cfg.Player.Height - cfg.Obstacles.Height/2,
	}
}

// Spawn adds one obstacle at the right edge of the playfield.
func (om *ObstacleManager) Spawn() {
	kind := KindAir
	if om.rng.Float64() < om.cfg.Obstacles.GroundProbability {
		kind = KindGround
	}
	om.place(kind)
}

func (om *ObstacleManager) place(kind Kind) {
	y := om.groundY
	if kind == KindAir {
		y = om.airY
	}
	om.obstacles = append(om.obstacles, Obstacle{
		Rect: core.NewRect(om.cfg.Playfield.Width, y, om.cfg.Obstacles.Width, om.cfg.Obstacles.Height),
		Kind: kind,
	})
}

// AdvanceAll moves obstacles left by velocity and drops those fully past
// the left edge.
func (om *ObstacleManager) AdvanceAll(velocity int) {
	for i := range om.obstacles {
		om.obstacles[i].Rect.X -= velocity
	}

	live := om.obstacles[:0]
	for _, o := range om.obstacles {
		if o.Rect.Right() > 0 {
			live = append(live, o)
		}
	}
	om.obstacles = live
}

// Obstacles returns the live obstacles. The slice is reused by AdvanceAll.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return om.obstacles
}
