package raster

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/aabizri/lindraw/render"
)

func isWhite(p *Painter, x, y int) bool {
	c := p.Image().RGBAAt(x, y)
	return c.R == 0xff && c.G == 0xff && c.B == 0xff
}

func TestPainterStrokes(t *testing.T) {
	p := NewPainter(render.Viewport{Width: 100, Height: 100})
	if !isWhite(p, 50, 50) {
		t.Fatalf("background is not white")
	}

	p.DrawLine(0.1, 0.5, 0.9, 0.5, 0xff0000, 2)

	if isWhite(p, 50, 49) && isWhite(p, 50, 50) {
		t.Errorf("no pixel painted on the line")
	}
	if !isWhite(p, 50, 10) || !isWhite(p, 5, 50) {
		t.Errorf("pixels off the line painted")
	}
	if c := p.Image().RGBAAt(50, 50); c.G > c.R || c.B > c.R {
		t.Errorf("line pixel %v is not red", c)
	}
}

func TestSavePNG(t *testing.T) {
	p := NewPainter(render.Viewport{Width: 32, Height: 16})
	p.DrawLine(0, 0, 1, 1, 0x000000, 1)

	path := filepath.Join(t.TempDir(), "out.png")
	if err := p.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("saved file is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 16 {
		t.Errorf("image is %dx%d, want 32x16", b.Dx(), b.Dy())
	}
}

func TestSavePNGBadPath(t *testing.T) {
	p := NewPainter(render.Viewport{Width: 4, Height: 4})
	if err := p.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Errorf("saving into a missing directory succeeded")
	}
}
