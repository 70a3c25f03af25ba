package app

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/amorcar/cpong/internal/core"
	"github.com/amorcar/cpong/internal/pong"
	"github.com/amorcar/cpong/internal/render"
)

// Input is what an InputSource reports for one tick. Quit and TogglePause are
// edge-triggered: they are true only on the tick the key went down.
type Input struct {
	Quit        bool
	TogglePause bool
	Left        pong.Move
	Right       pong.Move
}

// InputSource supplies the input snapshot for a tick.
type InputSource interface {
	Poll() Input
}

// Renderer presents a composed frame.
type Renderer interface {
	Present(render.Frame) error
}

// MoveFromKeys maps the held state of an up/down key pair to a paddle move.
// Holding both keys cancels out.
func MoveFromKeys(up, down bool) pong.Move {
	switch {
	case up && !down:
		return pong.Up
	case down && !up:
		return pong.Down
	default:
		return pong.Stopped
	}
}

// Driver runs the input, simulate, render loop for one match.
type Driver struct {
	match *pong.Match
	input InputSource
	out   Renderer
	clock core.Clock
	pacer *core.FramePacer
	log   logrus.FieldLogger

	fps   float64
	ticks uint64

	// While holding, ticks re-present holdFrame until holdUntil.
	holding   bool
	holdUntil time.Time
	holdFrame render.Frame
}

// NewDriver wires a match to its input, output and clock. A nil clock uses
// the wall clock and a nil logger the logrus standard logger.
func NewDriver(m *pong.Match, in InputSource, out Renderer, clock core.Clock, log logrus.FieldLogger) *Driver {
	if clock == nil {
		clock = core.SystemClock{}
	}
	if log == nil {
		log = logrus.StandardLogger().WithField("match", m.ID())
	}
	rules := m.Rules()
	pacer := core.NewFramePacer(clock, rules.FrameTarget())
	pacer.SetMaxDelta(rules.MaxDelta)
	return &Driver{
		match: m,
		input: in,
		out:   out,
		clock: clock,
		pacer: pacer,
		log:   log,
	}
}

// Match returns the driven match.
func (d *Driver) Match() *pong.Match { return d.match }

// FPS returns the frame rate measured over the previous tick.
func (d *Driver) FPS() float64 { return d.fps }

// Ticks returns the number of completed ticks.
func (d *Driver) Ticks() uint64 { return d.ticks }

// Holding reports whether the post-goal frame is on hold.
func (d *Driver) Holding() bool { return d.holding }

// Run ticks until the match quits or the renderer fails.
func (d *Driver) Run() error {
	d.log.WithFields(logrus.Fields{
		"fps":   d.match.Rules().FPS,
		"frame": d.pacer.Target(),
	}).Info("match started")
	for {
		running, err := d.Tick()
		if err != nil {
			return err
		}
		if !running {
			d.log.WithField("ticks", d.ticks).Info("match quit")
			return nil
		}
	}
}

// Tick runs one iteration of the loop and reports whether the match is
// still live afterwards. After a goal, ticks keep presenting the goal frame
// without reading input until the hold has elapsed, then kick off.
func (d *Driver) Tick() (bool, error) {
	start := d.clock.Now()
	if d.holding {
		if start.Before(d.holdUntil) {
			d.pacer.Wait()
			if err := d.out.Present(d.holdFrame); err != nil {
				return false, fmt.Errorf("present goal frame: %w", err)
			}
			d.finish(start)
			return true, nil
		}
		d.release()
	}

	in := d.input.Poll()
	d.dispatch(in)

	delta, capped := d.pacer.Wait()
	if capped {
		d.log.WithField("delta", delta).Warn("frame delta capped")
	}

	res := d.match.Advance(delta.Seconds(), pong.Controls{Left: in.Left, Right: in.Right})
	frame := render.Compose(d.match, d.fps)
	if res.Goal() {
		d.hold(res, frame)
	}
	if err := d.out.Present(frame); err != nil {
		return false, fmt.Errorf("present frame: %w", err)
	}
	d.finish(start)
	return d.match.State() != pong.StateQuit, nil
}

func (d *Driver) finish(start time.Time) {
	if elapsed := d.clock.Now().Sub(start); elapsed > 0 {
		d.fps = float64(time.Second) / float64(elapsed)
	}
	d.ticks++
}

func (d *Driver) dispatch(in Input) {
	var cmd pong.Command
	switch {
	case in.Quit:
		cmd = pong.CommandQuit
	case in.TogglePause:
		cmd = pong.CommandTogglePause
	default:
		return
	}
	state, err := d.match.Apply(cmd)
	if err != nil {
		d.log.WithError(err).WithField("command", cmd).Debug("command ignored")
		return
	}
	if cmd == pong.CommandTogglePause {
		d.pacer.Reset()
	}
	d.log.WithField("state", state).Debug("state changed")
}

// hold freezes frame on screen for the goal hold, plus the match hold when
// the match just ended.
func (d *Driver) hold(res pong.Result, frame render.Frame) {
	left, right := d.match.Score()
	rules := d.match.Rules()
	d.log.WithFields(logrus.Fields{
		"scorer": res.Scorer,
		"left":   left,
		"right":  right,
	}).Info("goal")
	wait := rules.GoalHold
	if res.MatchOver {
		d.log.WithField("winner", res.Winner).Info("match over")
		wait += rules.MatchHold
	}
	d.holding = true
	d.holdUntil = d.clock.Now().Add(wait)
	d.holdFrame = frame
}

// release ends a hold and serves the next rally.
func (d *Driver) release() {
	d.holding = false
	d.holdFrame = render.Frame{}
	d.pacer.Reset()
	d.match.KickOff()
}
