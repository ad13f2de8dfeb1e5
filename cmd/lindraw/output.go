package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/aabizri/lindraw"
	"github.com/aabizri/lindraw/interchange/job"
	"github.com/aabizri/lindraw/render"
	"github.com/aabizri/lindraw/render/raster"
	"github.com/aabizri/lindraw/render/svg"
)

// counter counts the segments going through a painter
type counter struct {
	lindraw.Painter
	lines int
}

func (c *counter) DrawLine(x0, y0, x1, y1 float64, col lindraw.Color, width float64) {
	c.lines++
	c.Painter.DrawLine(x0, y0, x1, y1, col, width)
}

// renderFile draws ls at level into path, as a size by size image whose
// format follows the extension of path. It returns the number of segments.
func renderFile(path string, ls lindraw.LSystem, level uint, size int) (int, error) {
	vp := render.Viewport{Width: size, Height: size}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".svg":
		f, err := os.Create(path)
		if err != nil {
			return 0, errors.Wrap(err, "creating output")
		}
		defer f.Close()

		w := bufio.NewWriter(f)
		painter := svg.NewPainter(w, vp)
		c := &counter{Painter: painter}
		err = ls.Draw(level, c)
		painter.Close()
		if err != nil {
			return c.lines, err
		}
		if err := w.Flush(); err != nil {
			return c.lines, errors.Wrap(err, "writing output")
		}
		return c.lines, errors.Wrap(f.Close(), "closing output")

	case ".png":
		painter := raster.NewPainter(vp)
		c := &counter{Painter: painter}
		if err := ls.Draw(level, c); err != nil {
			return c.lines, err
		}
		return c.lines, painter.SavePNG(path)

	default:
		return 0, errors.Errorf("unsupported output format %q", ext)
	}
}

func renderJob(j *job.Job) (int, error) {
	ls, err := j.Load()
	if err != nil {
		return 0, err
	}
	if j.Output == "" {
		return 0, errors.New("job has no output")
	}
	return renderFile(j.OutputPath(), ls, j.Level, j.Size)
}
