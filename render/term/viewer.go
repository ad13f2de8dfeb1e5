package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/aabizri/lindraw"
)

// Viewer shows an L-system on a screen and lets the user change the level:
// '+' or Up goes one level deeper, '-' or Down one level back, 'q', Esc and
// Ctrl-C quit. The last screen row is a status line.
type Viewer struct {
	screen  tcell.Screen
	painter *Painter
	ls      lindraw.LSystem

	level    uint
	maxLevel uint
}

// NewViewer prepares a viewer on an initialised screen. Levels above
// maxLevel are refused, generation grows exponentially with the level.
func NewViewer(screen tcell.Screen, ls lindraw.LSystem, level, maxLevel uint) *Viewer {
	painter := &Painter{screen: screen, rows: 1}
	painter.Resize()
	if level > maxLevel {
		level = maxLevel
	}
	return &Viewer{
		screen:   screen,
		painter:  painter,
		ls:       ls,
		level:    level,
		maxLevel: maxLevel,
	}
}

func (v *Viewer) Level() uint {
	return v.level
}

// Run draws and processes events until the user quits
func (v *Viewer) Run() error {
	v.redraw()
	for {
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			// Screen finalized
			return nil
		case *tcell.EventResize:
			v.screen.Sync()
			v.painter.Resize()
			v.redraw()
		case *tcell.EventKey:
			if v.handleKey(ev) {
				return nil
			}
		}
	}
}

// handleKey reports whether the viewer must quit
func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		v.setLevel(v.level + 1)
	case tcell.KeyDown:
		v.setLevel(v.level - 1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case '+':
			v.setLevel(v.level + 1)
		case '-':
			v.setLevel(v.level - 1)
		}
	}
	return false
}

func (v *Viewer) setLevel(level uint) {
	// level-1 wraps around at 0
	if level > v.maxLevel {
		return
	}
	v.level = level
	v.redraw()
}

func (v *Viewer) redraw() {
	v.screen.Clear()

	counter := &lineCounter{Painter: v.painter}
	var status string
	if err := v.ls.Draw(v.level, counter); err != nil {
		status = fmt.Sprintf("level %d: %v", v.level, err)
	} else {
		status = fmt.Sprintf("level %d/%d, %d lines  [+/-] level  [q] quit", v.level, v.maxLevel, counter.lines)
	}
	v.printStatus(status)
	v.screen.Show()
}

func (v *Viewer) printStatus(status string) {
	w, h := v.screen.Size()
	x := 0
	for _, r := range status {
		if x >= w {
			break
		}
		v.screen.SetContent(x, h-1, r, nil, tcell.StyleDefault.Reverse(true))
		x++
	}
}

// lineCounter counts the segments going through a painter
type lineCounter struct {
	lindraw.Painter
	lines int
}

func (c *lineCounter) DrawLine(x0, y0, x1, y1 float64, col lindraw.Color, width float64) {
	c.lines++
	c.Painter.DrawLine(x0, y0, x1, y1, col, width)
}
