package pong

import (
	"math"
	"strconv"
	"time"

	"github.com/amorcar/cpong/internal/core"
)

// Rules holds the field geometry, speeds and match thresholds. The defaults
// are the game's constants; tests and tools build their own variants.
type Rules struct {
	WindowWidth  float64
	WindowHeight float64

	PaddleWidth  float64
	PaddleHeight float64
	BallSize     float64
	// Margin is the gap between a paddle and its wall.
	Margin float64

	// BallSpeed and PaddleSpeed are in pixels per second.
	BallSpeed      float64
	PaddleSpeed    float64
	MaxBounceAngle float64

	FPS          int
	WinningScore int

	GoalHold  time.Duration
	MatchHold time.Duration

	// ClampBounce limits the normalized paddle offset to [-1, 1] so the
	// reflection never exceeds MaxBounceAngle.
	ClampBounce bool
	// SweptCollision tests the paddle overlap at the point where the ball
	// reaches the collision plane instead of at the end of the tick.
	SweptCollision bool
	// MaxDelta caps a single frame delta. Zero disables the cap.
	MaxDelta time.Duration
}

// DefaultRules returns the standard configuration.
func DefaultRules() Rules {
	return Rules{
		WindowWidth:    800,
		WindowHeight:   600,
		PaddleWidth:    10,
		PaddleHeight:   60,
		BallSize:       15,
		Margin:         10,
		BallSpeed:      400,
		PaddleSpeed:    200,
		MaxBounceAngle: math.Pi / 4,
		FPS:            30,
		WinningScore:   3,
		GoalHold:       500 * time.Millisecond,
		MatchHold:      2000 * time.Millisecond,
		ClampBounce:    true,
		SweptCollision: true,
		MaxDelta:       250 * time.Millisecond,
	}
}

// FrameTarget is the minimum duration of one frame, 1000/FPS milliseconds.
func (r Rules) FrameTarget() time.Duration {
	return core.FrameTarget(r.FPS)
}

// FromMap populates rules from a string map (flag-style key/value pairs).
// Unknown keys and unparsable values are ignored.
func FromMap(cfg map[string]string) Rules {
	r := DefaultRules()
	if cfg == nil {
		return r
	}
	positive := func(key string, dst *float64) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
				*dst = parsed
			}
		}
	}
	positive("window_width", &r.WindowWidth)
	positive("window_height", &r.WindowHeight)
	positive("paddle_width", &r.PaddleWidth)
	positive("paddle_height", &r.PaddleHeight)
	positive("ball_size", &r.BallSize)
	positive("ball_speed", &r.BallSpeed)
	positive("paddle_speed", &r.PaddleSpeed)
	if v, ok := cfg["margin"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			r.Margin = parsed
		}
	}
	if v, ok := cfg["max_bounce_angle_deg"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && parsed < 90 {
			r.MaxBounceAngle = parsed * math.Pi / 180
		}
	}
	if v, ok := cfg["fps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			r.FPS = parsed
		}
	}
	if v, ok := cfg["winning_score"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			r.WinningScore = parsed
		}
	}
	if v, ok := cfg["goal_hold_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			r.GoalHold = time.Duration(parsed) * time.Millisecond
		}
	}
	if v, ok := cfg["match_hold_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			r.MatchHold = time.Duration(parsed) * time.Millisecond
		}
	}
	if v, ok := cfg["max_delta_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			r.MaxDelta = time.Duration(parsed) * time.Millisecond
		}
	}
	if v, ok := cfg["clamp_bounce"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			r.ClampBounce = parsed
		}
	}
	if v, ok := cfg["swept_collision"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			r.SweptCollision = parsed
		}
	}
	return r
}
