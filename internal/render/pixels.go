package render

import (
	"image/color"
	"math"

	"github.com/amorcar/cpong/internal/geom"
)

// Rasterize paints the frame's background and fills into buf, an RGBA pixel
// buffer of w*h pixels. Fills are clipped to the buffer. Labels are left to
// the caller's text renderer.
func Rasterize(buf []byte, w, h int, f Frame) {
	if w <= 0 || h <= 0 || len(buf) < 4*w*h {
		return
	}
	fillRGBA(buf[:4*w*h], f.Background)
	field := geom.Rect{W: float64(w), H: float64(h)}
	for _, fill := range f.Fills {
		if !fill.Rect.Overlaps(field) {
			continue
		}
		x0 := clampInt(int(math.Floor(fill.Rect.X)), 0, w)
		y0 := clampInt(int(math.Floor(fill.Rect.Y)), 0, h)
		x1 := clampInt(int(math.Floor(fill.Rect.Right())), 0, w)
		y1 := clampInt(int(math.Floor(fill.Rect.Bottom())), 0, h)
		for y := y0; y < y1; y++ {
			row := y * w
			for x := x0; x < x1; x++ {
				setPixel(buf, (row+x)*4, fill.Color)
			}
		}
	}
}

// fillRGBA sets every pixel in buf to c.
func fillRGBA(buf []byte, c color.RGBA) {
	for base := 0; base+3 < len(buf); base += 4 {
		setPixel(buf, base, c)
	}
}

func setPixel(buf []byte, base int, c color.RGBA) {
	buf[base+0] = c.R
	buf[base+1] = c.G
	buf[base+2] = c.B
	buf[base+3] = c.A
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
