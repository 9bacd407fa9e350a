package engine

import "fmt"

// InvariantError reports that a state machine reached a value outside its
// declared enumeration. It is a programming defect: the session is aborted,
// never coerced back to a default state.
type InvariantError struct {
	Component string // e.g. "jump player", "lane player"
	Field     string // e.g. "state", "lane"
	Value     int    // the offending raw value
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("engine: %s reached undeclared %s %d", e.Component, e.Field, e.Value)
}

// EndReason says why a session ended.
type EndReason int

const (
	EndNone      EndReason = iota // still running
	EndQuit                       // user or caller requested quit
	EndCollision                  // player hit an obstacle
	EndAborted                    // invariant violation
)

// String returns the reason name.
func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "running"
	case EndQuit:
		return "quit"
	case EndCollision:
		return "collision"
	case EndAborted:
		return "aborted"
	default:
		return fmt.Sprintf("EndReason(%d)", int(r))
	}
}

// Result is the outcome of a session.
type Result struct {
	Reason   EndReason
	Ticks    int64 // ticks executed, including the terminating one
	Velocity int   // final scroll velocity
	Level    int   // final level
}
