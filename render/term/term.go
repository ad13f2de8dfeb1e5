// Package term paints L-systems on a terminal screen and lets the user step
// through generation levels interactively.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/aabizri/lindraw"
	"github.com/aabizri/lindraw/render"
)

var ensureInterfaceCompliance lindraw.Painter = &Painter{}

// Pixel is the rune used for every painted cell
const Pixel = '█'

// Painter rasterizes segments into screen cells. The viewport is the screen
// size at construction time; call Resize after the screen changes size.
type Painter struct {
	screen   tcell.Screen
	viewport render.Viewport
	rows     int // reserved at the bottom of the screen
}

func NewPainter(screen tcell.Screen) *Painter {
	p := &Painter{screen: screen}
	p.Resize()
	return p
}

// Resize reads the screen size again
func (p *Painter) Resize() {
	w, h := p.screen.Size()
	p.viewport = render.Viewport{Width: w, Height: h - p.rows}
}

func style(c lindraw.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R()), int32(c.G()), int32(c.B())))
}

// DrawLine plots the segment with Bresenham's algorithm. Cells outside the
// viewport are dropped.
func (p *Painter) DrawLine(x0, y0, x1, y1 float64, c lindraw.Color, _ float64) {
	fx0, fy0 := p.viewport.Map(x0, y0)
	fx1, fy1 := p.viewport.Map(x1, y1)
	fx0, fy0, fx1, fy1, ok := clip(fx0, fy0, fx1, fy1, float64(p.viewport.Width), float64(p.viewport.Height))
	if !ok {
		return
	}
	cx0, cy0 := cell(fx0), cell(fy0)
	cx1, cy1 := cell(fx1), cell(fy1)

	st := style(c)
	dx, sx := abs(cx1-cx0), sign(cx1-cx0)
	dy, sy := -abs(cy1-cy0), sign(cy1-cy0)
	e := dx + dy
	for {
		p.plot(cx0, cy0, st)
		if cx0 == cx1 && cy0 == cy1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			cx0 += sx
		}
		if e2 <= dx {
			e += dx
			cy0 += sy
		}
	}
}

func (p *Painter) plot(x, y int, st tcell.Style) {
	if x < 0 || y < 0 || x >= p.viewport.Width || y >= p.viewport.Height {
		return
	}
	p.screen.SetContent(x, y, Pixel, nil, st)
}

// clip cuts the segment to the rectangle [0,w]x[0,h] (Liang-Barsky).
// ok is false when no part of the segment is inside.
func clip(x0, y0, x1, y1, w, h float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0},
		{dx, w - x0},
		{-dy, y0},
		{dy, h - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			t0 = math.Max(t0, r)
		} else {
			t1 = math.Min(t1, r)
		}
	}
	if t0 > t1 {
		return 0, 0, 0, 0, false
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

// cell returns the index of the cell containing coordinate v
func cell(v float64) int {
	return int(math.Floor(v))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
