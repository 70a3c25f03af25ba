package app

import (
	"errors"
	"io"
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/amorcar/cpong/internal/pong"
	"github.com/amorcar/cpong/internal/render"
)

type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock { return &fakeClock{now: time.Unix(1000, 0)} }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
}

func (c *fakeClock) slept(d time.Duration) bool {
	for _, s := range c.sleeps {
		if s == d {
			return true
		}
	}
	return false
}

// scriptedInput replays queued inputs, then repeats idle forever.
type scriptedInput struct {
	queue []Input
	idle  Input
	polls int
}

func (s *scriptedInput) Poll() Input {
	s.polls++
	if len(s.queue) == 0 {
		return s.idle
	}
	in := s.queue[0]
	s.queue = s.queue[1:]
	return in
}

type recordingRenderer struct {
	frames []render.Frame
	err    error
}

func (r *recordingRenderer) Present(f render.Frame) error {
	if r.err != nil {
		return r.err
	}
	r.frames = append(r.frames, f)
	return nil
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestDriver(rules pong.Rules, in *scriptedInput) (*Driver, *fakeClock, *recordingRenderer) {
	clock := newFakeClock()
	out := &recordingRenderer{}
	m := pong.NewWithRules(rules, 7)
	return NewDriver(m, in, out, clock, quietLogger()), clock, out
}

func TestTickPadsFrameToTarget(t *testing.T) {
	d, clock, out := newTestDriver(pong.DefaultRules(), &scriptedInput{})
	before := d.Match().Ball()
	running, err := d.Tick()
	if err != nil || !running {
		t.Fatalf("tick: running=%v err=%v", running, err)
	}
	target := 33 * time.Millisecond
	if !clock.slept(target) {
		t.Fatalf("expected a %v sleep, got %v", target, clock.sleeps)
	}
	after := d.Match().Ball()
	want := before.DX * 400 * target.Seconds()
	if math.Abs((after.X-before.X)-want) > 1e-9 {
		t.Fatalf("ball moved %v, expected %v", after.X-before.X, want)
	}
	if len(out.frames) != 1 {
		t.Fatalf("expected one frame, got %d", len(out.frames))
	}
	if want := 1 / target.Seconds(); math.Abs(d.FPS()-want) > 1e-6 {
		t.Fatalf("expected %v fps, got %v", want, d.FPS())
	}
}

func TestPauseFreezesMatchAndShowsBanner(t *testing.T) {
	in := &scriptedInput{queue: []Input{{TogglePause: true}}}
	d, _, out := newTestDriver(pong.DefaultRules(), in)
	before := d.Match().Ball()
	for i := 0; i < 5; i++ {
		if _, err := d.Tick(); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}
	if !d.Match().Paused() {
		t.Fatalf("expected paused match, got %v", d.Match().State())
	}
	if d.Match().Ball() != before {
		t.Fatalf("ball moved while paused: %+v -> %+v", before, d.Match().Ball())
	}
	last := out.frames[len(out.frames)-1]
	if !last.Paused || len(last.Fills) != 0 {
		t.Fatalf("expected pause banner frame, got %+v", last)
	}
}

func TestPausedTimeIsNotSimulated(t *testing.T) {
	in := &scriptedInput{}
	d, clock, _ := newTestDriver(pong.DefaultRules(), in)
	in.queue = []Input{{TogglePause: true}}
	if _, err := d.Tick(); err != nil {
		t.Fatal(err)
	}
	// A long stall while paused.
	clock.now = clock.now.Add(5 * time.Second)
	before := d.Match().Ball()
	in.queue = []Input{{TogglePause: true}}
	if _, err := d.Tick(); err != nil {
		t.Fatal(err)
	}
	if !d.Match().Running() {
		t.Fatalf("expected running match, got %v", d.Match().State())
	}
	after := d.Match().Ball()
	want := before.DX * 400 * (33 * time.Millisecond).Seconds()
	if math.Abs((after.X-before.X)-want) > 1e-9 {
		t.Fatalf("resume simulated %v of travel, expected one frame (%v)", after.X-before.X, want)
	}
}

func TestLongFrameIsCapped(t *testing.T) {
	d, clock, _ := newTestDriver(pong.DefaultRules(), &scriptedInput{})
	clock.now = clock.now.Add(3 * time.Second)
	before := d.Match().Ball()
	if _, err := d.Tick(); err != nil {
		t.Fatal(err)
	}
	after := d.Match().Ball()
	want := math.Abs(before.DX) * 400 * 0.25
	if math.Abs(math.Abs(after.X-before.X)-want) > 1e-9 {
		t.Fatalf("expected travel capped at %v, got %v", want, after.X-before.X)
	}
}

// runUntilGoal steers both paddles to the top so the ball is missed.
func runUntilGoal(t *testing.T, d *Driver) {
	t.Helper()
	for i := 0; i < 400; i++ {
		if _, err := d.Tick(); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if d.Holding() {
			return
		}
	}
	t.Fatal("no goal within 400 ticks")
}

func scoreLabels(f render.Frame) (string, string) {
	var left, right string
	for _, lbl := range f.Labels {
		switch lbl.X {
		case float64(f.Width)/2 - 50:
			left = lbl.Text
		case float64(f.Width)/2 + 50:
			right = lbl.Text
		}
	}
	return left, right
}

func TestGoalFrameIsPresentedThroughoutHold(t *testing.T) {
	in := &scriptedInput{idle: Input{Left: pong.Up, Right: pong.Up}}
	d, clock, out := newTestDriver(pong.DefaultRules(), in)
	runUntilGoal(t, d)

	l, r := d.Match().Score()
	if l+r != 1 {
		t.Fatalf("expected one goal, got %d-%d", l, r)
	}
	wantLeft, wantRight := strconv.Itoa(l), strconv.Itoa(r)
	goalFrame := len(out.frames) - 1
	if gl, gr := scoreLabels(out.frames[goalFrame]); gl != wantLeft || gr != wantRight {
		t.Fatalf("goal frame shows %s-%s, expected %s-%s", gl, gr, wantLeft, wantRight)
	}
	for _, s := range clock.sleeps {
		if s > 33*time.Millisecond {
			t.Fatalf("hold must not block a whole tick, slept %v", s)
		}
	}

	polls := in.polls
	holdStart := clock.now
	holdTicks := 0
	for d.Holding() {
		if holdTicks > 100 {
			t.Fatal("hold never ended")
		}
		if d.Match().Ball().DX != 0 {
			t.Fatalf("ball served during the hold: %+v", d.Match().Ball())
		}
		if _, err := d.Tick(); err != nil {
			t.Fatal(err)
		}
		holdTicks++
	}
	// The final iteration released the hold and played a normal tick.
	held := clock.now.Sub(holdStart)
	if held < 500*time.Millisecond {
		t.Fatalf("hold lasted %v, expected at least 500ms", held)
	}
	if holdTicks < 15 {
		t.Fatalf("expected the goal frame on roughly 15 ticks, got %d", holdTicks)
	}
	for i := goalFrame; i < goalFrame+holdTicks; i++ {
		f := out.frames[i]
		if gl, gr := scoreLabels(f); gl != wantLeft || gr != wantRight {
			t.Fatalf("frame %d during hold shows %s-%s", i, gl, gr)
		}
		if f.Fills[0].Rect.X != d.Match().Rules().WindowWidth/2 {
			t.Fatalf("frame %d during hold shows the ball at x=%v", i, f.Fills[0].Rect.X)
		}
	}
	if in.polls != polls+1 {
		t.Fatalf("input polled %d times during the hold", in.polls-polls-1)
	}
	if b := d.Match().Ball(); math.Abs(b.DX) != 0.2 {
		t.Fatalf("expected kick-off after the hold, got DX=%v", b.DX)
	}
}

func TestWinningGoalHoldsLonger(t *testing.T) {
	rules := pong.DefaultRules()
	rules.WinningScore = 1
	in := &scriptedInput{idle: Input{Left: pong.Up, Right: pong.Up}}
	d, clock, _ := newTestDriver(rules, in)
	runUntilGoal(t, d)
	if l, r := d.Match().Score(); l != 0 || r != 0 {
		t.Fatalf("expected scores reset after the match, got %d-%d", l, r)
	}
	holdStart := clock.now
	for i := 0; d.Holding(); i++ {
		if i > 200 {
			t.Fatal("hold never ended")
		}
		if _, err := d.Tick(); err != nil {
			t.Fatal(err)
		}
	}
	held := clock.now.Sub(holdStart)
	want := rules.GoalHold + rules.MatchHold
	if held < want || held > want+2*rules.FrameTarget() {
		t.Fatalf("match hold lasted %v, expected about %v", held, want)
	}
}

func TestQuitIgnoredDuringHold(t *testing.T) {
	in := &scriptedInput{idle: Input{Left: pong.Up, Right: pong.Up}}
	d, _, _ := newTestDriver(pong.DefaultRules(), in)
	runUntilGoal(t, d)
	in.queue = []Input{{Quit: true}}
	running, err := d.Tick()
	if err != nil || !running {
		t.Fatalf("hold tick: running=%v err=%v", running, err)
	}
	if d.Match().State() == pong.StateQuit {
		t.Fatal("quit was read during the hold")
	}
	for d.Holding() {
		if _, err := d.Tick(); err != nil {
			t.Fatal(err)
		}
	}
	if d.Match().State() != pong.StateQuit {
		t.Fatalf("expected the queued quit after the hold, got %v", d.Match().State())
	}
}

func TestQuitStopsRun(t *testing.T) {
	in := &scriptedInput{queue: []Input{{}, {}, {Quit: true, TogglePause: true}}}
	d, _, out := newTestDriver(pong.DefaultRules(), in)
	if err := d.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if d.Ticks() != 3 {
		t.Fatalf("expected 3 ticks, got %d", d.Ticks())
	}
	if d.Match().State() != pong.StateQuit {
		t.Fatalf("expected quit state, got %v", d.Match().State())
	}
	if len(out.frames) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(out.frames))
	}
}

func TestRendererErrorAbortsRun(t *testing.T) {
	d, _, out := newTestDriver(pong.DefaultRules(), &scriptedInput{})
	out.err = errors.New("screen gone")
	err := d.Run()
	if err == nil || !errors.Is(err, out.err) {
		t.Fatalf("expected wrapped renderer error, got %v", err)
	}
}

func TestMoveFromKeys(t *testing.T) {
	cases := []struct {
		up, down bool
		want     pong.Move
	}{
		{false, false, pong.Stopped},
		{true, false, pong.Up},
		{false, true, pong.Down},
		{true, true, pong.Stopped},
	}
	for _, c := range cases {
		if got := MoveFromKeys(c.up, c.down); got != c.want {
			t.Fatalf("MoveFromKeys(%v, %v) = %v, expected %v", c.up, c.down, got, c.want)
		}
	}
}
