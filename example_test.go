package lindraw_test

import (
	"fmt"

	"github.com/aabizri/lindraw"
	"github.com/aabizri/lindraw/render"
)

func ExampleBuilder() {
	b := lindraw.NewBuilder().
		SetOrigin(0.05, 0.4).
		SetUnitLength(0.9).
		SetUnitLengthDegreeScaler(1.0/3.0).
		RegisterProduction('F', "F+F--F+F").
		SetAxiom("F")
	b.BindCommand('F', lindraw.DrawCommand(1)).
		BindCommand('+', lindraw.RotateCommand(60)).
		BindCommand('-', lindraw.RotateCommand(-60))
	ls := b.Build()

	fmt.Println(ls.Generate(2))
	// Output: F+F--F+F+F+F--F+F--F+F--F+F+F+F--F+F
}

func ExampleBuilder_ConfigureFromText() {
	b := lindraw.NewBuilder()
	err := b.ConfigureFromText([]string{
		"origin 0.5 0",
		"angle 90",
		"unitLength 0.5",
		"unitLengthDegreeScaler 1/2",
		"command F draw 1",
		"command + rotate 30",
		"command - rotate -30",
		"command [ push",
		"command ] pop",
		"axiom F",
		"production F F[+F][-F]",
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	rec := &render.Recorder{}
	if err := b.Build().Draw(1, rec); err != nil {
		fmt.Println(err)
		return
	}
	for _, l := range rec.Lines {
		fmt.Printf("(%.3f, %.3f) -> (%.3f, %.3f)\n", l.From.X, l.From.Y, l.To.X, l.To.Y)
	}
	// Output:
	// (0.500, 0.000) -> (0.500, 0.250)
	// (0.500, 0.250) -> (0.375, 0.467)
	// (0.500, 0.250) -> (0.625, 0.467)
}

func ExampleBuilder_ConfigureFromText_error() {
	err := lindraw.NewBuilder().ConfigureFromText([]string{"angle 90", "origin 1"})
	fmt.Println(err)
	// Output: line 2: origin: expected 3 tokens, got 2: wrong argument count
}
