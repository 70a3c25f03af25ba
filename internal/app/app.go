//go:build ebiten

package app

import (
	"github.com/sirupsen/logrus"

	"github.com/amorcar/cpong/internal/core"
	"github.com/amorcar/cpong/internal/pong"
	"github.com/amorcar/cpong/internal/render"
	"github.com/amorcar/cpong/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the frame driver to the ebiten.Game interface. Each Update
// runs one driver tick; Draw paints the last presented frame.
type Game struct {
	driver  *Driver
	hud     *ui.HUD
	overlay *ui.Overlay

	frame  render.Frame
	canvas *ebiten.Image
	buf    []byte
}

// New constructs a Game for the provided match.
func New(m *pong.Match, log logrus.FieldLogger) *Game {
	size := m.Size()
	g := &Game{
		hud:     ui.NewHUD(m, rulesPanelWidth),
		overlay: ui.NewOverlay(m),
		canvas:  ebiten.NewImage(size.W, size.H),
		buf:     make([]byte, 4*size.W*size.H),
	}
	g.driver = NewDriver(m, keyboard{}, g, core.SystemClock{}, log)
	g.frame = render.Compose(m, 0)
	return g
}

// Driver exposes the underlying frame driver.
func (g *Game) Driver() *Driver { return g.driver }

// Present caches the frame for the next Draw.
func (g *Game) Present(f render.Frame) error {
	g.frame = f
	return nil
}

// Update runs one tick of the match.
func (g *Game) Update() error {
	running, err := g.driver.Tick()
	if err != nil {
		return err
	}
	if !running {
		return ebiten.Termination
	}
	g.hud.Update()
	g.overlay.Update()
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	render.Rasterize(g.buf, g.frame.Width, g.frame.Height, g.frame)
	g.canvas.WritePixels(g.buf)
	screen.DrawImage(g.canvas, nil)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.frame)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.driver.Match().Size()
	return s.W, s.H
}

// keyboard reads the ebiten key state. Quit and pause fire on the press
// edge; paddle keys report while held.
type keyboard struct{}

func (keyboard) Poll() Input {
	return Input{
		Quit:        inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ),
		TogglePause: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Left:        MoveFromKeys(ebiten.IsKeyPressed(ebiten.KeyW), ebiten.IsKeyPressed(ebiten.KeyS)),
		Right:       MoveFromKeys(ebiten.IsKeyPressed(ebiten.KeyK), ebiten.IsKeyPressed(ebiten.KeyJ)),
	}
}

const rulesPanelWidth = 260
