package pong

import "github.com/amorcar/cpong/internal/geom"

// Move is a paddle's vertical intent for a single tick.
type Move int8

const (
	Stopped Move = 0
	Up      Move = 1
	Down    Move = -1
)

func (m Move) String() string {
	switch m {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "stopped"
	}
}

// Side identifies a player by the wall their paddle guards.
type Side uint8

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Ball is positioned by its top-left corner. DX and DY hold the travel
// direction; the magnitude comes from Rules.BallSpeed.
type Ball struct {
	X, Y   float64
	W, H   float64
	DX, DY float64
}

// Rect returns the ball's bounding box.
func (b Ball) Rect() geom.Rect { return geom.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H} }

// Paddle is positioned by its top-left corner.
type Paddle struct {
	X, Y   float64
	W, H   float64
	Intent Move
}

// Rect returns the paddle's bounding box.
func (p Paddle) Rect() geom.Rect { return geom.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H} }

// CenterY returns the vertical center of the paddle.
func (p Paddle) CenterY() float64 { return p.Y + p.H/2 }

// Player owns one paddle and a score.
type Player struct {
	Side   Side
	Paddle Paddle
	Score  int
}

// Controls is the per-tick input snapshot handed to Advance.
type Controls struct {
	Left  Move
	Right Move
}

// Result reports what happened during one Advance call.
type Result struct {
	WallBounce bool
	// Hit is the side whose paddle returned the ball.
	Hit Side
	// Scorer is set when the ball got past a paddle.
	Scorer    Side
	MatchOver bool
	Winner    Side
}

// Goal reports whether the tick ended a rally.
func (r Result) Goal() bool { return r.Scorer != SideNone }
