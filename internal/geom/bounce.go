package geom

import "math"

// BounceAngle maps where the ball met a paddle to a reflection angle.
//
// centerY is the paddle's vertical center, y the ball's vertical position and
// half the paddle's half height. The offset is normalized by half and scaled by
// max, so a hit at the center yields 0 and a hit at the paddle's edge yields
// ±max. Positive angles mean the ball met the paddle above its center.
//
// When clamp is false the normalized offset is left as is and hits far from
// the center can exceed max.
func BounceAngle(centerY, y, half, max float64, clamp bool) float64 {
	if half == 0 {
		return 0
	}
	normalized := (centerY - y) / half
	if clamp {
		normalized = Clamp(normalized, -1, 1)
	}
	return normalized * max
}

// Reflect returns the direction vector for a ball leaving a paddle at angle.
// toward is +1 when the ball should travel right afterwards and -1 for left.
func Reflect(angle float64, toward float64) (dx, dy float64) {
	return toward * math.Cos(angle), -math.Sin(angle)
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
