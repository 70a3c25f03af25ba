//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/amorcar/cpong/internal/pong"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const trailLength = 48

// Overlay draws optional debugging visuals on top of the field: the paddle
// collision planes (1), the vertical window in which a ball counts as a hit
// (2) and a short trail of recent ball centers (3).
type Overlay struct {
	match       *pong.Match
	showPlanes  bool
	showWindows bool
	showTrail   bool

	trail [trailLength][2]float64
	head  int
	count int

	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for m.
func NewOverlay(m *pong.Match) *Overlay {
	o := &Overlay{match: m}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the toggles and records the ball position.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showPlanes = !o.showPlanes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showWindows = !o.showWindows
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showTrail = !o.showTrail
		o.count = 0
	}
	if o.showTrail && o.match.Running() {
		cx, cy := o.match.Ball().Rect().Center()
		o.trail[o.head] = [2]float64{cx, cy}
		o.head = (o.head + 1) % trailLength
		if o.count < trailLength {
			o.count++
		}
	}
}

// Draw renders the enabled overlays onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.match.Size()
	h := float64(size.H)
	if o.showPlanes {
		planeColor := color.RGBA{R: 223, G: 64, B: 64, A: 160}
		o.drawLine(screen, o.match.LeftPlane(), 0, o.match.LeftPlane(), h, 1, planeColor)
		o.drawLine(screen, o.match.RightPlane(), 0, o.match.RightPlane(), h, 1, planeColor)
	}
	if o.showWindows {
		ball := o.match.Ball()
		for _, side := range []pong.Side{pong.SideLeft, pong.SideRight} {
			p := o.match.Player(side).Paddle
			// Ball top edges in [p.Y-ball.H, p.Y+p.H] count as a hit.
			top := math.Max(p.Y-ball.H, 0)
			bottom := math.Min(p.Y+p.H+ball.H, h)
			o.drawRect(screen, p.X-2, top, p.W+4, bottom-top, color.RGBA{R: 64, G: 164, B: 223, A: 70})
		}
	}
	if o.showTrail {
		for i := 0; i < o.count; i++ {
			idx := (o.head - 1 - i + trailLength) % trailLength
			alpha := uint8(200 * (1 - float64(i)/trailLength))
			pt := o.trail[idx]
			o.drawRect(screen, pt[0]-1, pt[1]-1, 2, 2, color.RGBA{R: 255, G: 200, B: 60, A: alpha})
		}
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	if o.pixel == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
