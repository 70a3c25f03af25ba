package core

import "time"

// Clock is the time source used by the frame loop.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock reads the wall clock and blocks with time.Sleep.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep blocks the calling goroutine for d.
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// FramePacer caps the frame rate: Wait pads short frames up to the frame
// target and reports the time elapsed since the previous frame.
type FramePacer struct {
	clock    Clock
	target   time.Duration
	maxDelta time.Duration
	last     time.Time
}

// DefaultFPS is used when a non-positive frame rate is requested.
const DefaultFPS = 30

// FrameTarget is the minimum frame duration for fps, in whole milliseconds
// (1000/fps truncated, so 30 fps gives 33ms).
func FrameTarget(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Duration(1000/fps) * time.Millisecond
}

// NewFramePacer constructs a pacer with the given minimum frame duration.
func NewFramePacer(clock Clock, target time.Duration) *FramePacer {
	if clock == nil {
		clock = SystemClock{}
	}
	p := &FramePacer{clock: clock}
	p.SetTarget(target)
	p.Reset()
	return p
}

// SetTarget changes the minimum frame duration. A non-positive target falls
// back to DefaultFPS.
func (p *FramePacer) SetTarget(target time.Duration) {
	if target <= 0 {
		target = FrameTarget(DefaultFPS)
	}
	p.target = target
}

// Target returns the minimum frame duration.
func (p *FramePacer) Target() time.Duration { return p.target }

// SetMaxDelta caps the delta returned by Wait. Zero disables the cap.
func (p *FramePacer) SetMaxDelta(d time.Duration) {
	if d < 0 {
		d = 0
	}
	p.maxDelta = d
}

// Reset makes the current instant the reference for the next delta, so time
// spent before the call is not reported.
func (p *FramePacer) Reset() {
	p.last = p.clock.Now()
}

// Wait sleeps out the rest of the frame target, if any, and returns the delta
// since the previous Wait or Reset together with whether it was capped. An
// already slow frame is not slowed down further.
func (p *FramePacer) Wait() (time.Duration, bool) {
	wait := p.target - p.clock.Now().Sub(p.last)
	if wait > 0 && wait <= p.target {
		p.clock.Sleep(wait)
	}
	now := p.clock.Now()
	delta := now.Sub(p.last)
	p.last = now
	if delta < 0 {
		delta = 0
	}
	if p.maxDelta > 0 && delta > p.maxDelta {
		return p.maxDelta, true
	}
	return delta, false
}
