package render

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/amorcar/cpong/internal/geom"
	"github.com/amorcar/cpong/internal/pong"
)

// FontSize selects between the two label faces.
type FontSize uint8

const (
	FontRegular FontSize = iota
	FontSmall
)

var (
	// Background is the clear color.
	Background = color.RGBA{A: 255}
	// Foreground fills the ball and paddles.
	Foreground = color.RGBA{G: 255, A: 255}
	// TextColor is used for every label.
	TextColor = color.RGBA{R: 155, G: 155, B: 155, A: 255}
)

// Fill is a filled rectangle in logical coordinates.
type Fill struct {
	Rect  geom.Rect
	Color color.RGBA
}

// Label is a text string centered on (X, Y).
type Label struct {
	Text  string
	X, Y  float64
	Size  FontSize
	Color color.RGBA
}

// Frame is everything a renderer needs to draw one tick.
type Frame struct {
	Width, Height int
	Background    color.RGBA
	Fills         []Fill
	Labels        []Label
	Paused        bool
}

// Compose describes the current match state as a frame. A paused match shows
// only the pause banner; the FPS readout is always present.
func Compose(m *pong.Match, fps float64) Frame {
	size := m.Size()
	w, h := float64(size.W), float64(size.H)
	f := Frame{
		Width:      size.W,
		Height:     size.H,
		Background: Background,
		Paused:     m.Paused(),
	}
	if f.Paused {
		f.Labels = append(f.Labels, Label{Text: "PAUSE", X: w * 0.5, Y: h * 0.5, Size: FontRegular, Color: TextColor})
	} else {
		left, right := m.Player(pong.SideLeft), m.Player(pong.SideRight)
		f.Fills = append(f.Fills,
			Fill{Rect: m.Ball().Rect(), Color: Foreground},
			Fill{Rect: left.Paddle.Rect(), Color: Foreground},
			Fill{Rect: right.Paddle.Rect(), Color: Foreground},
		)
		f.Labels = append(f.Labels,
			Label{Text: strconv.Itoa(right.Score), X: w*0.5 + 50, Y: h * 0.1, Size: FontRegular, Color: TextColor},
			Label{Text: strconv.Itoa(left.Score), X: w*0.5 - 50, Y: h * 0.1, Size: FontRegular, Color: TextColor},
		)
	}
	f.Labels = append(f.Labels, Label{Text: FormatFPS(fps), X: w * 0.97, Y: h * 0.98, Size: FontSmall, Color: TextColor})
	return f
}

// FormatFPS renders the FPS readout.
func FormatFPS(fps float64) string {
	return fmt.Sprintf("%2.2f", fps)
}
