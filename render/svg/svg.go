// Package svg paints L-systems as SVG documents
package svg

import (
	"fmt"
	"io"
	"math"

	svgo "github.com/ajstarks/svgo"

	"github.com/aabizri/lindraw"
	"github.com/aabizri/lindraw/render"
)

var ensureInterfaceCompliance lindraw.Painter = &Painter{}

// Painter streams every segment as an SVG line element. Close must be called
// once drawing is done to terminate the document.
type Painter struct {
	canvas   *svgo.SVG
	viewport render.Viewport
}

// NewPainter starts a document of the viewport size on w, with a white background
func NewPainter(w io.Writer, vp render.Viewport) *Painter {
	canvas := svgo.New(w)
	canvas.Start(vp.Width, vp.Height)
	canvas.Rect(0, 0, vp.Width, vp.Height, "fill:white")
	return &Painter{
		canvas:   canvas,
		viewport: vp,
	}
}

func (p *Painter) DrawLine(x0, y0, x1, y1 float64, c lindraw.Color, width float64) {
	px0, py0 := p.viewport.Map(x0, y0)
	px1, py1 := p.viewport.Map(x1, y1)
	p.canvas.Line(
		round(px0), round(py0), round(px1), round(py1),
		fmt.Sprintf("stroke:%s;stroke-width:%g;stroke-linecap:round", c, width),
	)
}

func (p *Painter) Close() {
	p.canvas.End()
}

func round(v float64) int {
	return int(math.Round(v))
}
