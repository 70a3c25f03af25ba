package pong

// Track returns the move that brings side's paddle toward the ball's
// vertical center. The paddle holds still while the ball is within deadband
// pixels of its own center.
func Track(m *Match, side Side, deadband float64) Move {
	p := m.Player(side).Paddle
	b := m.Ball()
	target := b.Y + b.H/2
	switch {
	case target < p.CenterY()-deadband:
		return Up
	case target > p.CenterY()+deadband:
		return Down
	default:
		return Stopped
	}
}
