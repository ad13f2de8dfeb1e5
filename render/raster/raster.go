// Package raster paints L-systems on an in-memory image, savable as PNG
package raster

import (
	"image"
	"image/draw"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/pkg/errors"

	"github.com/aabizri/lindraw"
	"github.com/aabizri/lindraw/render"
)

var ensureInterfaceCompliance lindraw.Painter = &Painter{}

type Painter struct {
	img      *image.RGBA
	gc       *draw2dimg.GraphicContext
	viewport render.Viewport
}

// NewPainter allocates a white image of the viewport size
func NewPainter(vp render.Viewport) *Painter {
	img := image.NewRGBA(image.Rect(0, 0, vp.Width, vp.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return &Painter{
		img:      img,
		gc:       draw2dimg.NewGraphicContext(img),
		viewport: vp,
	}
}

func (p *Painter) DrawLine(x0, y0, x1, y1 float64, c lindraw.Color, width float64) {
	px0, py0 := p.viewport.Map(x0, y0)
	px1, py1 := p.viewport.Map(x1, y1)

	p.gc.SetStrokeColor(c)
	p.gc.SetLineWidth(width)
	p.gc.BeginPath()
	p.gc.MoveTo(px0, py0)
	p.gc.LineTo(px1, py1)
	p.gc.Stroke()
}

func (p *Painter) Image() *image.RGBA {
	return p.img
}

func (p *Painter) SavePNG(path string) error {
	return errors.Wrapf(draw2dimg.SaveToPngFile(path, p.img), "saving %s", path)
}
