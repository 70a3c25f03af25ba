package main

import (
	"fmt"
	"math"

	"github.com/amorcar/cpong/internal/pong"
)

type paramSet struct {
	delta     float64
	ballSpeed float64
	clamp     bool
	swept     bool
}

func (p paramSet) String() string {
	return fmt.Sprintf("dt=%.4fs speed=%.0f clamp=%t swept=%t", p.delta, p.ballSpeed, p.clamp, p.swept)
}

func (p paramSet) rules() pong.Rules {
	r := pong.DefaultRules()
	r.BallSpeed = p.ballSpeed
	r.ClampBounce = p.clamp
	r.SweptCollision = p.swept
	r.MaxDelta = 0
	return r
}

type scenarioResult struct {
	params       paramSet
	matches      int
	goals        int
	hits         int
	wallBounces  int
	longestRally int
	maxAngleDeg  float64
	maxOvershoot float64
	simulated    float64
}

// goalsPerMinute is the scoring rate across all matches of the scenario.
func (r scenarioResult) goalsPerMinute() float64 {
	if r.simulated <= 0 {
		return 0
	}
	return float64(r.goals) / (r.simulated / 60)
}

// matchSeed is the seed for match i of count. Zero would seed from the clock,
// so it is replaced by base+count+1, which no other match in the run uses.
func matchSeed(base int64, i, count int) int64 {
	s := base + int64(i) + 1
	if s == 0 {
		return base + int64(count) + 1
	}
	return s
}

// runScenario plays count independent matches for seconds of simulated time
// each, with both paddles on autopilot. Goals kick off immediately.
func runScenario(p paramSet, count int, seconds float64, seed int64, deadband float64) scenarioResult {
	res := scenarioResult{params: p, matches: count}
	ticks := int(math.Ceil(seconds / p.delta))
	for i := 0; i < count; i++ {
		m := pong.NewWithRules(p.rules(), matchSeed(seed, i, count))
		height := m.Rules().WindowHeight
		rally := 0
		for t := 0; t < ticks; t++ {
			out := m.Advance(p.delta, pong.Controls{
				Left:  pong.Track(m, pong.SideLeft, deadband),
				Right: pong.Track(m, pong.SideRight, deadband),
			})
			if out.WallBounce {
				res.wallBounces++
			}
			if out.Hit != pong.SideNone {
				res.hits++
				rally++
				b := m.Ball()
				angle := math.Atan2(math.Abs(b.DY), math.Abs(b.DX)) * 180 / math.Pi
				res.maxAngleDeg = math.Max(res.maxAngleDeg, angle)
			}
			if out.Goal() {
				res.goals++
				if rally > res.longestRally {
					res.longestRally = rally
				}
				rally = 0
				m.KickOff()
				continue
			}
			b := m.Ball()
			res.maxOvershoot = math.Max(res.maxOvershoot, math.Max(-b.Y, b.Y-height))
		}
		if rally > res.longestRally {
			res.longestRally = rally
		}
		res.simulated += float64(ticks) * p.delta
	}
	return res
}
