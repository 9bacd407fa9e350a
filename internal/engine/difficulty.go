package engine

// Difficulty is the global scroll speed and level. Both only ever grow, and
// only through SpeedUp.
type Difficulty struct {
	Velocity int // scroll distance per tick
	Level    int // starts at 1
}

// NewDifficulty returns the starting difficulty.
func NewDifficulty(initVelocity int) Difficulty {
	return Difficulty{Velocity: initVelocity, Level: 1}
}

// SpeedUp applies one speed-up event. Level is incremented only while it is
// below maxLevel; a maxLevel of 0 leaves the level untouched.
func (d *Difficulty) SpeedUp(increment, maxLevel int) {
	d.Velocity += increment
	if d.Level < maxLevel {
		d.Level++
	}
}
