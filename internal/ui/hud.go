//go:build ebiten

package ui

import (
	"image/color"
	"strings"

	"github.com/amorcar/cpong/internal/core"
	"github.com/amorcar/cpong/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HUD draws the frame labels and an optional rules panel over the field.
type HUD struct {
	rules     core.ParameterProvider
	width     int
	showRules bool
	snapshot  core.ParameterSnapshot

	panel  *ebiten.Image
	glyphs map[string]*ebiten.Image
}

// NewHUD constructs a HUD. The rules panel is width pixels wide and hidden
// until Tab is pressed.
func NewHUD(rules core.ParameterProvider, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{rules: rules, width: width, glyphs: map[string]*ebiten.Image{}}
}

// Update toggles the rules panel and refreshes its snapshot.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.showRules = !h.showRules
	}
	if h.showRules && h.rules != nil {
		h.snapshot = h.rules.Parameters()
	}
}

// Draw paints the frame labels and, when enabled, the rules panel.
func (h *HUD) Draw(screen *ebiten.Image, f render.Frame) {
	if h == nil {
		return
	}
	for _, lbl := range f.Labels {
		switch lbl.Size {
		case render.FontRegular:
			h.drawLarge(screen, lbl)
		default:
			drawSmall(screen, lbl)
		}
	}
	if h.showRules && h.width > 0 {
		h.drawRules(screen, f.Height)
	}
}

// drawLarge renders the label once into a cached glyph image and scales it.
func (h *HUD) drawLarge(screen *ebiten.Image, lbl render.Label) {
	face := basicfont.Face7x13
	img, ok := h.glyphs[lbl.Text]
	if !ok {
		img = renderGlyphs(face, lbl.Text)
		if img == nil {
			return
		}
		h.glyphs[lbl.Text] = img
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(largeScale, largeScale)
	op.GeoM.Translate(lbl.X-float64(b.Dx())*largeScale/2, lbl.Y-float64(b.Dy())*largeScale/2)
	op.ColorScale.ScaleWithColor(lbl.Color)
	screen.DrawImage(img, op)
}

func drawSmall(screen *ebiten.Image, lbl render.Label) {
	face := basicfont.Face7x13
	b := text.BoundString(face, lbl.Text)
	x := int(lbl.X) - b.Dx()/2 - b.Min.X
	y := int(lbl.Y) - b.Dy()/2 - b.Min.Y
	text.Draw(screen, lbl.Text, face, x, y, lbl.Color)
}

func renderGlyphs(face font.Face, s string) *ebiten.Image {
	b := text.BoundString(face, s)
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil
	}
	img := ebiten.NewImage(b.Dx(), b.Dy())
	text.Draw(img, s, face, -b.Min.X, -b.Min.Y, color.White)
	return img
}

func (h *HUD) drawRules(screen *ebiten.Image, height int) {
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 220})
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, "Rules", face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	y += groupSpacing
	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, strings.ToUpper(group.Name), face, panelPadding, y, color.RGBA{R: 140, G: 200, B: 140, A: 255})
		y += lineHeight
		if group.Summary != "" {
			text.Draw(h.panel, group.Summary, face, panelPadding, y, color.RGBA{R: 150, G: 150, B: 160, A: 255})
			y += lineHeight
		}
		for _, p := range group.Params {
			text.Draw(h.panel, p.Label, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
			vb := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-vb.Dx(), y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
			y += lineHeight
		}
		y += groupSpacing - lineHeight
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx()-h.width), 0)
	screen.DrawImage(h.panel, op)
}

const (
	largeScale     = 3
	panelPadding   = 12
	headerBaseline = 18
	lineHeight     = 16
	groupSpacing   = 24
)
