// Package lindraw draws fractal curves described by L-systems: an axiom is
// expanded through parallel rewriting and the resulting sequence is read as
// turtle graphics instructions.
package lindraw

import (
	"math"

	"github.com/pkg/errors"
)

// LSystem is a built, immutable L-system. It is safe to Generate and Draw
// from several goroutines at once.
type LSystem struct {
	origin     Vector2D
	angle      float64
	unitLength float64
	scaler     float64

	axiom       Sequence
	productions Productions
	commands    Commands
}

func (ls LSystem) Origin() Vector2D { return ls.origin }
func (ls LSystem) Angle() float64 { return ls.angle }
func (ls LSystem) UnitLength() float64 { return ls.unitLength }
func (ls LSystem) UnitLengthDegreeScaler() float64 { return ls.scaler }

// Axiom returns a copy of the axiom
func (ls LSystem) Axiom() Sequence {
	return append(Sequence(nil), ls.axiom...)
}

// Production returns a copy of the replacement registered for sym
func (ls LSystem) Production(sym Symbol) (Sequence, bool) {
	replacement, ok := ls.productions[sym]
	if !ok {
		return nil, false
	}
	return append(Sequence(nil), replacement...), true
}

func (ls LSystem) Command(sym Symbol) (Command, bool) {
	cmd, ok := ls.commands[sym]
	return cmd, ok
}

// Generate returns the sequence of the given level, level 0 being the axiom
func (ls LSystem) Generate(level uint) Sequence {
	return Generate(ls.axiom, ls.productions, level)
}

// StepLength is the initial step length at the given level: the unit length
// shrunk once per level by the scaler.
func (ls LSystem) StepLength(level uint) float64 {
	return ls.unitLength * math.Pow(ls.scaler, float64(level))
}

// initialState is the turtle state a draw of the given level starts from
func (ls LSystem) initialState(level uint) TurtleState {
	return TurtleState{
		Position:   ls.origin,
		Heading:    Vector2D{1, 0}.Rotated(ls.angle).Normalized(),
		Color:      DefaultColor,
		StepLength: ls.StepLength(level),
	}
}

/*
Draw generates the given level and runs it on a fresh turtle, sending every
painted segment to p in order.

	Symbols without a command are skipped.
	An unbalanced pop stops the draw and returns an error wrapping ErrUnbalancedPop,
	segments painted until then are not taken back.
*/
func (ls LSystem) Draw(level uint, p Painter) error {
	ctx := NewContext(ls.initialState(level))

	for i, sym := range ls.Generate(level) {
		cmd, ok := ls.commands[sym]
		if !ok {
			continue
		}
		if err := cmd.Execute(ctx, p); err != nil {
			return errors.Wrapf(err, "symbol %d %q (%s)", i, rune(sym), cmd)
		}
	}
	return nil
}
