package lindraw_test

import (
	"math"
	"sync"
	"testing"

	"github.com/pkg/errors"

	"github.com/aabizri/lindraw"
	"github.com/aabizri/lindraw/render"
)

// koch builds the Koch curve with the setters
func koch(t testing.TB) lindraw.LSystem {
	b := lindraw.NewBuilder().
		SetOrigin(0.05, 0.4).
		SetAngle(0).
		SetUnitLength(0.9).
		SetUnitLengthDegreeScaler(1.0/3.0).
		RegisterProduction('F', "F+F--F+F").
		SetAxiom("F")
	for sym, action := range map[lindraw.Symbol]string{'F': "draw 1", '+': "rotate 60", '-': "rotate -60"} {
		if err := b.RegisterCommand(sym, action); err != nil {
			t.Fatalf("registering %c: %v", sym, err)
		}
	}
	return b.Build()
}

func TestKochEndToEnd(t *testing.T) {
	ls := koch(t)

	if got := ls.Generate(1).String(); got != "F+F--F+F" {
		t.Errorf("Generate(1) = %q", got)
	}

	rec := &render.Recorder{}
	if err := ls.Draw(0, rec); err != nil {
		t.Fatalf("Draw(0): %v", err)
	}
	if len(rec.Lines) != 1 {
		t.Fatalf("Draw(0) painted %d lines, want 1", len(rec.Lines))
	}
	line := rec.Lines[0]
	if !line.From.Equal(lindraw.Vector2D{X: 0.05, Y: 0.4}) {
		t.Errorf("line starts at %v, want (0.05, 0.4)", line.From)
	}
	if !line.To.Equal(lindraw.Vector2D{X: 0.95, Y: 0.4}) {
		t.Errorf("line ends at %v, want (0.95, 0.4)", line.To)
	}
}

func TestKochLevelScaling(t *testing.T) {
	ls := koch(t)
	rec := &render.Recorder{}

	for level := uint(0); level <= 4; level++ {
		rec.Reset()
		if err := ls.Draw(level, rec); err != nil {
			t.Fatalf("Draw(%d): %v", level, err)
		}
		if want := int(math.Pow(4, float64(level))); len(rec.Lines) != want {
			t.Errorf("level %d: %d lines, want %d", level, len(rec.Lines), want)
		}

		// The curve always spans the same width whatever the level
		lo, hi, ok := rec.Bounds()
		if !ok {
			t.Fatalf("level %d: nothing recorded", level)
		}
		if math.Abs(lo.X-0.05) > 1e-9 || math.Abs(hi.X-0.95) > 1e-9 {
			t.Errorf("level %d: spans x from %g to %g", level, lo.X, hi.X)
		}

		// Segments are contiguous
		for i := 1; i < len(rec.Lines); i++ {
			if !rec.Lines[i].From.Equal(rec.Lines[i-1].To) {
				t.Fatalf("level %d: segment %d does not start where %d ends", level, i, i-1)
			}
		}
	}
}

func TestDrawInitialHeading(t *testing.T) {
	b := lindraw.NewBuilder().SetAngle(90).SetUnitLength(0.5).SetAxiom("F")
	b.BindCommand('F', lindraw.DrawCommand(1))

	rec := &render.Recorder{}
	if err := b.Build().Draw(0, rec); err != nil {
		t.Fatal(err)
	}
	if got := rec.Lines[0].To; !got.Equal(lindraw.Vector2D{X: 0, Y: 0.5}) {
		t.Errorf("heading 90 degrees drew to %v, want (0, 0.5)", got)
	}
}

func TestDrawSkipsUnboundSymbols(t *testing.T) {
	b := lindraw.NewBuilder().SetAxiom("XFYZ")
	b.BindCommand('F', lindraw.DrawCommand(1))

	rec := &render.Recorder{}
	if err := b.Build().Draw(0, rec); err != nil {
		t.Fatalf("unbound symbols made the draw fail: %v", err)
	}
	if len(rec.Lines) != 1 {
		t.Errorf("painted %d lines, want 1", len(rec.Lines))
	}
}

func TestDrawBranches(t *testing.T) {
	// A fork: both branches start from the same point
	b := lindraw.NewBuilder().SetAngle(90).SetUnitLength(1).SetAxiom("F[+F][-F]F")
	b.BindCommand('F', lindraw.DrawCommand(1)).
		BindCommand('+', lindraw.RotateCommand(45)).
		BindCommand('-', lindraw.RotateCommand(-45)).
		BindCommand('[', lindraw.PushCommand()).
		BindCommand(']', lindraw.PopCommand())

	rec := &render.Recorder{}
	if err := b.Build().Draw(0, rec); err != nil {
		t.Fatal(err)
	}
	if len(rec.Lines) != 4 {
		t.Fatalf("painted %d lines, want 4", len(rec.Lines))
	}
	fork := lindraw.Vector2D{X: 0, Y: 1}
	for i := 1; i < 4; i++ {
		if !rec.Lines[i].From.Equal(fork) {
			t.Errorf("line %d starts at %v, want the fork %v", i, rec.Lines[i].From, fork)
		}
	}
	if !rec.Lines[3].To.Equal(lindraw.Vector2D{X: 0, Y: 2}) {
		t.Errorf("trunk ends at %v", rec.Lines[3].To)
	}
}

func TestDrawUnbalancedPop(t *testing.T) {
	b := lindraw.NewBuilder().SetAxiom("F]F")
	b.BindCommand('F', lindraw.DrawCommand(1)).BindCommand(']', lindraw.PopCommand())

	rec := &render.Recorder{}
	err := b.Build().Draw(0, rec)
	if !errors.Is(err, lindraw.ErrUnbalancedPop) {
		t.Fatalf("got %v, want ErrUnbalancedPop", err)
	}
	if len(rec.Lines) != 1 {
		t.Errorf("painted %d lines before failing, want 1", len(rec.Lines))
	}
}

func TestBuildIsASnapshot(t *testing.T) {
	b := lindraw.NewBuilder().SetAxiom("F").RegisterProduction('F', "FF")
	b.BindCommand('F', lindraw.DrawCommand(1))
	ls := b.Build()

	b.SetAxiom("G").RegisterProduction('F', "F").BindCommand('F', lindraw.SkipCommand(1)).SetUnitLength(7)

	if got := ls.Generate(1).String(); got != "FF" {
		t.Errorf("built system changed with the builder: Generate(1) = %q", got)
	}
	if cmd, _ := ls.Command('F'); cmd != lindraw.DrawCommand(1) {
		t.Errorf("built command changed with the builder: %s", cmd)
	}
	if ls.UnitLength() != lindraw.DefaultUnitLength {
		t.Errorf("built unit length changed with the builder: %g", ls.UnitLength())
	}

	axiom := ls.Axiom()
	axiom[0] = 'X'
	if ls.Axiom().String() != "F" {
		t.Errorf("axiom modified through its accessor")
	}
	replacement, ok := ls.Production('F')
	if !ok || replacement.String() != "FF" {
		t.Errorf("Production('F') = %q, %v", replacement, ok)
	}
	if _, ok := ls.Production('G'); ok {
		t.Errorf("Production('G') found")
	}
}

func TestConcurrentDraws(t *testing.T) {
	ls := koch(t)
	var wg sync.WaitGroup
	counts := make([]int, 8)
	for i := range counts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec := &render.Recorder{}
			if err := ls.Draw(3, rec); err != nil {
				t.Error(err)
				return
			}
			counts[i] = len(rec.Lines)
		}(i)
	}
	wg.Wait()
	for i, n := range counts {
		if n != 64 {
			t.Errorf("goroutine %d painted %d lines, want 64", i, n)
		}
	}
}
