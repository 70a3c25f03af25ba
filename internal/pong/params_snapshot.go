package pong

import (
	"math"
	"strconv"
	"time"

	"github.com/amorcar/cpong/internal/core"
)

// Parameters describes the rules in effect for display and logging.
func (m *Match) Parameters() core.ParameterSnapshot {
	r := m.rules
	groups := []core.ParameterGroup{
		{
			Name:    "Field",
			Summary: "Playing area in pixels",
			Params: []core.Parameter{
				floatParam("window_width", "Width", r.WindowWidth),
				floatParam("window_height", "Height", r.WindowHeight),
				floatParam("margin", "Paddle margin", r.Margin),
			},
		},
		{
			Name:    "Ball",
			Summary: "Ball size, speed and paddle reflection",
			Params: []core.Parameter{
				floatParam("ball_size", "Ball size", r.BallSize),
				floatParam("ball_speed", "Ball speed", r.BallSpeed),
				floatParam("max_bounce_angle_deg", "Max bounce angle", math.Round(r.MaxBounceAngle*180/math.Pi*1e6)/1e6),
				boolParam("clamp_bounce", "Clamp bounce", r.ClampBounce),
				boolParam("swept_collision", "Swept collision", r.SweptCollision),
			},
		},
		{
			Name:    "Paddles",
			Summary: "Paddle geometry and speed",
			Params: []core.Parameter{
				floatParam("paddle_width", "Paddle width", r.PaddleWidth),
				floatParam("paddle_height", "Paddle height", r.PaddleHeight),
				floatParam("paddle_speed", "Paddle speed", r.PaddleSpeed),
			},
		},
		{
			Name:    "Match",
			Summary: "Pacing, scoring and holds (ms)",
			Params: []core.Parameter{
				intParam("fps", "Target FPS", r.FPS),
				intParam("winning_score", "Winning score", r.WinningScore),
				durationParam("goal_hold_ms", "Goal hold", r.GoalHold),
				durationParam("match_hold_ms", "Match hold", r.MatchHold),
				durationParam("max_delta_ms", "Max frame delta", r.MaxDelta),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func durationParam(key, label string, value time.Duration) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeDuration,
		Value: strconv.FormatInt(value.Milliseconds(), 10),
	}
}
