package pong

import (
	"github.com/google/uuid"

	"github.com/amorcar/cpong/internal/core"
	"github.com/amorcar/cpong/internal/geom"
)

// Match stores all state for one game: two players, the ball and the
// pause/quit state machine. Matches are independent of each other.
type Match struct {
	id    uuid.UUID
	rules Rules
	rng   *geom.RNG
	state State

	ball  Ball
	left  Player
	right Player
}

// New returns a match using the default rules.
func New(seed int64) *Match {
	return NewWithRules(DefaultRules(), seed)
}

// NewWithRules sets up a match: scores zeroed, entities at their initial
// layout and the ball kicked off. A zero seed uses the wall clock.
func NewWithRules(rules Rules, seed int64) *Match {
	m := &Match{
		id:    uuid.New(),
		rules: rules,
		rng:   geom.NewRNG(seed),
		state: StateRunning,
		left:  Player{Side: SideLeft},
		right: Player{Side: SideRight},
	}
	m.StartNewGame()
	return m
}

// Name returns the game identifier.
func (m *Match) Name() string { return "pong" }

// ID uniquely identifies the match.
func (m *Match) ID() string { return m.id.String() }

// Rules returns the rules the match was built with.
func (m *Match) Rules() Rules { return m.rules }

// Size reports the field dimensions.
func (m *Match) Size() core.Size {
	return core.Size{W: int(m.rules.WindowWidth), H: int(m.rules.WindowHeight)}
}

// Ball returns a copy of the ball.
func (m *Match) Ball() Ball { return m.ball }

// Player returns a copy of the player guarding side.
func (m *Match) Player(side Side) Player {
	if side == SideRight {
		return m.right
	}
	return m.left
}

// Score returns both scores, left first.
func (m *Match) Score() (int, int) { return m.left.Score, m.right.Score }

// State returns the current lifecycle state.
func (m *Match) State() State { return m.state }

// Running reports whether Advance will move entities.
func (m *Match) Running() bool { return m.state == StateRunning }

// Paused reports whether the match is paused.
func (m *Match) Paused() bool { return m.state == StatePaused }

// Apply feeds a command to the state machine. Invalid commands leave the
// state untouched and return ErrInvalidTransition.
func (m *Match) Apply(c Command) (State, error) {
	next, err := Transition(m.state, c)
	if err != nil {
		return m.state, err
	}
	m.state = next
	return next, nil
}

// TogglePause switches between running and paused.
func (m *Match) TogglePause() (State, error) { return m.Apply(CommandTogglePause) }

// Quit ends the match.
func (m *Match) Quit() (State, error) { return m.Apply(CommandQuit) }

// Steer records a paddle intent for the next Advance.
func (m *Match) Steer(side Side, mv Move) {
	m.paddle(side).Intent = mv
}

// StartNewGame zeroes both scores, restores the initial layout and kicks off.
func (m *Match) StartNewGame() {
	m.left.Score = 0
	m.right.Score = 0
	m.ResetLayout()
	m.KickOff()
}

// ResetLayout puts the ball in the middle of the field at rest and centers
// both paddles vertically.
func (m *Match) ResetLayout() {
	r := m.rules
	m.ball = Ball{
		X: r.WindowWidth / 2,
		Y: r.WindowHeight / 2,
		W: r.BallSize,
		H: r.BallSize,
	}
	paddleY := r.WindowHeight/2 - r.PaddleHeight/2
	m.left.Paddle = Paddle{X: r.Margin, Y: paddleY, W: r.PaddleWidth, H: r.PaddleHeight}
	m.right.Paddle = Paddle{
		X: r.WindowWidth - r.Margin - r.PaddleWidth/2,
		Y: paddleY,
		W: r.PaddleWidth,
		H: r.PaddleHeight,
	}
}

// KickOff gives the ball a small random direction toward either side.
func (m *Match) KickOff() {
	m.ball.DY = m.rng.Uniform(-0.1, 0.1)
	if m.rng.Uniform(-1, 1) > 0 {
		m.ball.DX = 0.2
	} else {
		m.ball.DX = -0.2
	}
}

// RightPlane is the x the ball must pass to reach the right paddle.
func (m *Match) RightPlane() float64 {
	return m.rules.WindowWidth - m.rules.PaddleWidth - m.rules.Margin
}

// LeftPlane is the x the ball must pass to reach the left paddle.
func (m *Match) LeftPlane() float64 {
	return m.rules.PaddleWidth + m.rules.Margin
}

func (m *Match) player(side Side) *Player {
	if side == SideRight {
		return &m.right
	}
	return &m.left
}

func (m *Match) paddle(side Side) *Paddle {
	return &m.player(side).Paddle
}
