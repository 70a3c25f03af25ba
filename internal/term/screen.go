// Package term renders matches into a terminal with tcell and reads the
// keyboard from the same screen.
package term

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell"

	"github.com/amorcar/cpong/internal/app"
	"github.com/amorcar/cpong/internal/render"
)

const (
	fillRune  = '█'
	eventsCap = 64
)

// Screen is both the renderer and the input source of the terminal front
// end. A single goroutine pumps tcell events into a channel; Poll drains it
// on the loop goroutine.
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
}

// Open initializes the terminal.
func Open() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(s), nil
}

// NewWithScreen wraps an initialized tcell screen and starts the event pump.
func NewWithScreen(s tcell.Screen) *Screen {
	s.HideCursor()
	s.Clear()
	t := &Screen{
		screen: s,
		events: make(chan tcell.Event, eventsCap),
		done:   make(chan struct{}),
	}
	go t.pump()
	return t
}

func (t *Screen) pump() {
	defer close(t.events)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// Close restores the terminal.
func (t *Screen) Close() {
	close(t.done)
	t.screen.Fini()
}

// Poll drains pending key events into one input snapshot. Paddle keys count
// as held for the tick in which they arrived.
func (t *Screen) Poll() app.Input {
	var in app.Input
	var leftUp, leftDown, rightUp, rightDown bool
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				in.Quit = true
				in.Left = app.MoveFromKeys(leftUp, leftDown)
				in.Right = app.MoveFromKeys(rightUp, rightDown)
				return in
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyEscape, tcell.KeyCtrlC:
					in.Quit = true
				case tcell.KeyRune:
					switch ev.Rune() {
					case 'q', 'Q':
						in.Quit = true
					case ' ':
						in.TogglePause = true
					case 'w', 'W':
						leftUp = true
					case 's', 'S':
						leftDown = true
					case 'k', 'K':
						rightUp = true
					case 'j', 'J':
						rightDown = true
					}
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
		default:
			in.Left = app.MoveFromKeys(leftUp, leftDown)
			in.Right = app.MoveFromKeys(rightUp, rightDown)
			return in
		}
	}
}

// Present draws the frame scaled to the current terminal size.
func (t *Screen) Present(f render.Frame) error {
	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 || f.Width <= 0 || f.Height <= 0 {
		return nil
	}
	sx := float64(cols) / float64(f.Width)
	sy := float64(rows) / float64(f.Height)

	bg := tcell.StyleDefault.Background(toColor(f.Background))
	t.screen.Fill(' ', bg)
	for _, fill := range f.Fills {
		style := bg.Foreground(toColor(fill.Color))
		x0, x1 := span(fill.Rect.X, fill.Rect.Right(), sx, cols)
		y0, y1 := span(fill.Rect.Y, fill.Rect.Bottom(), sy, rows)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				t.screen.SetContent(x, y, fillRune, nil, style)
			}
		}
	}
	for _, lbl := range f.Labels {
		style := bg.Foreground(toColor(lbl.Color))
		runes := []rune(lbl.Text)
		x := int(math.Round(lbl.X*sx)) - len(runes)/2
		y := int(lbl.Y * sy)
		if y >= rows {
			y = rows - 1
		}
		if x+len(runes) > cols {
			x = cols - len(runes)
		}
		for i, r := range runes {
			if x+i >= 0 {
				t.screen.SetContent(x+i, y, r, nil, style)
			}
		}
	}
	t.screen.Show()
	return nil
}

// span maps [lo, hi) in logical pixels to a cell range of at least one cell.
func span(lo, hi, scale float64, limit int) (int, int) {
	a := int(math.Floor(lo * scale))
	b := int(math.Ceil(hi * scale))
	if b <= a {
		b = a + 1
	}
	if a < 0 {
		a = 0
	}
	if b > limit {
		b = limit
	}
	return a, b
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
