// Package render holds what the painters share: the mapping from turtle
// coordinates to a surface, and a Painter that records segments.
package render

import (
	"math"

	"github.com/aabizri/lindraw"
)

// Viewport maps the unit square, x to the right and y up, onto a surface of
// Width by Height units with y growing downwards.
type Viewport struct {
	Width  int
	Height int
}

// Map returns the surface coordinates of the turtle point (x, y)
func (vp Viewport) Map(x, y float64) (float64, float64) {
	return x * float64(vp.Width), (1 - y) * float64(vp.Height)
}

var ensureInterfaceCompliance lindraw.Painter = &Recorder{}

// Line is one recorded segment
type Line struct {
	From  lindraw.Vector2D
	To    lindraw.Vector2D
	Color lindraw.Color
	Width float64
}

// Recorder is a Painter keeping every segment it receives, in order
type Recorder struct {
	Lines []Line
}

func (r *Recorder) DrawLine(x0, y0, x1, y1 float64, c lindraw.Color, width float64) {
	r.Lines = append(r.Lines, Line{
		From:  lindraw.Vector2D{X: x0, Y: y0},
		To:    lindraw.Vector2D{X: x1, Y: y1},
		Color: c,
		Width: width,
	})
}

func (r *Recorder) Reset() {
	r.Lines = r.Lines[:0]
}

// Bounds returns the smallest rectangle covering every recorded segment.
// ok is false when nothing was recorded.
func (r *Recorder) Bounds() (lo, hi lindraw.Vector2D, ok bool) {
	if len(r.Lines) == 0 {
		return lo, hi, false
	}
	lo = lindraw.Vector2D{X: math.Inf(1), Y: math.Inf(1)}
	hi = lindraw.Vector2D{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, l := range r.Lines {
		for _, p := range [2]lindraw.Vector2D{l.From, l.To} {
			lo.X = math.Min(lo.X, p.X)
			lo.Y = math.Min(lo.Y, p.Y)
			hi.X = math.Max(hi.X, p.X)
			hi.Y = math.Max(hi.Y, p.Y)
		}
	}
	return lo, hi, true
}
