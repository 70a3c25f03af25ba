package pong

import "github.com/amorcar/cpong/internal/geom"

// Advance moves the match forward by dt seconds. Nothing changes unless the
// match is running. A goal restores the initial layout and returns at once
// with the ball at rest; the caller re-issues KickOff once it has shown the
// new score.
func (m *Match) Advance(dt float64, in Controls) Result {
	var res Result
	if m.state != StateRunning || dt < 0 {
		return res
	}
	if in.Left != Stopped {
		m.left.Paddle.Intent = in.Left
	}
	if in.Right != Stopped {
		m.right.Paddle.Intent = in.Right
	}

	b := &m.ball
	step := m.rules.BallSpeed * dt
	stepX := b.DX * step
	stepY := b.DY * step

	// No clamp here; the ball may overshoot a wall for one tick.
	if y := b.Y + stepY; y > m.rules.WindowHeight || y < 0 {
		b.DY = -b.DY
		res.WallBounce = true
	}

	switch {
	case b.DX > 0 && b.X+stepX > m.RightPlane():
		if !m.intercepts(&m.right.Paddle, stepX, stepY, m.RightPlane()) {
			return m.scoreGoal(SideLeft, res)
		}
		m.bounce(&m.right.Paddle, -1)
		res.Hit = SideRight
	case b.DX < 0 && b.X+stepX < m.LeftPlane():
		if !m.intercepts(&m.left.Paddle, stepX, stepY, m.LeftPlane()) {
			return m.scoreGoal(SideRight, res)
		}
		m.bounce(&m.left.Paddle, 1)
		res.Hit = SideLeft
	}

	if b.DX == 0 {
		if stepX > 0 {
			b.DX = 0.5
		} else {
			b.DX = -0.5
		}
	}
	b.X += b.DX * step
	b.Y += b.DY * step

	m.movePaddle(&m.left.Paddle, dt)
	m.movePaddle(&m.right.Paddle, dt)
	return res
}

// intercepts reports whether the paddle covers the ball as it crosses plane.
// The ball height pads the paddle's top only.
func (m *Match) intercepts(p *Paddle, stepX, stepY, plane float64) bool {
	b := m.ball
	y := b.Y + stepY
	if m.rules.SweptCollision && stepX != 0 {
		t := geom.Clamp((plane-b.X)/stepX, 0, 1)
		y = b.Y + stepY*t
	}
	return y+b.H >= p.Y-b.H && y <= p.Y+p.H
}

// bounce reflects the ball off p. The angle uses the ball's position before
// this tick's displacement.
func (m *Match) bounce(p *Paddle, toward float64) {
	angle := geom.BounceAngle(p.CenterY(), m.ball.Y, p.H/2, m.rules.MaxBounceAngle, m.rules.ClampBounce)
	m.ball.DX, m.ball.DY = geom.Reflect(angle, toward)
}

func (m *Match) movePaddle(p *Paddle, dt float64) {
	d := m.rules.PaddleSpeed * dt
	switch p.Intent {
	case Up:
		if p.Y-d > 0 {
			p.Y -= d
		}
	case Down:
		if p.Y+d < m.rules.WindowHeight-p.H {
			p.Y += d
		}
	}
	p.Intent = Stopped
}

// scoreGoal credits scorer and resets the layout. Reaching the winning score
// starts the match over at 0-0.
func (m *Match) scoreGoal(scorer Side, res Result) Result {
	res.Scorer = scorer
	pl := m.player(scorer)
	pl.Score++
	m.ResetLayout()
	if pl.Score >= m.rules.WinningScore {
		res.MatchOver = true
		res.Winner = scorer
		m.left.Score = 0
		m.right.Score = 0
	}
	return res
}
