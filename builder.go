package lindraw

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Default values of a new Builder
const (
	DefaultUnitLength = 0.1
	DefaultScaler     = 1
)

// Builder accumulates the parameters of an L-system. It must not be
// configured from several goroutines at once; Build takes a snapshot.
type Builder struct {
	origin     Vector2D
	angle      float64
	unitLength float64
	scaler     float64

	axiom       Sequence
	productions Productions
	commands    Commands
}

func NewBuilder() *Builder {
	return &Builder{
		unitLength:  DefaultUnitLength,
		scaler:      DefaultScaler,
		productions: make(Productions),
		commands:    make(Commands),
	}
}

func (b *Builder) SetOrigin(x, y float64) *Builder {
	b.origin = Vector2D{x, y}
	return b
}

// SetAngle sets the initial heading, in degrees counterclockwise from the x axis
func (b *Builder) SetAngle(angle float64) *Builder {
	b.angle = angle
	return b
}

func (b *Builder) SetUnitLength(unitLength float64) *Builder {
	b.unitLength = unitLength
	return b
}

// SetUnitLengthDegreeScaler sets the factor applied to the unit length once
// per generation level.
func (b *Builder) SetUnitLengthDegreeScaler(scaler float64) *Builder {
	b.scaler = scaler
	return b
}

func (b *Builder) SetAxiom(axiom string) *Builder {
	b.axiom = ParseSequence(axiom)
	return b
}

// RegisterProduction sets the replacement of sym, overwriting any previous one
func (b *Builder) RegisterProduction(sym Symbol, replacement string) *Builder {
	b.productions[sym] = ParseSequence(replacement)
	return b
}

// BindCommand sets the command of sym, overwriting any previous one
func (b *Builder) BindCommand(sym Symbol, cmd Command) *Builder {
	b.commands[sym] = cmd
	return b
}

// RegisterCommand resolves action with ParseCommand and binds it to sym.
// On error the command table is left untouched.
func (b *Builder) RegisterCommand(sym Symbol, action string) error {
	cmd, err := ParseCommand(action)
	if err != nil {
		return &ConfigError{Directive: "command", Err: err}
	}
	b.BindCommand(sym, cmd)
	return nil
}

// Build returns the L-system described so far. The builder may keep being
// configured, the returned value does not change.
func (b *Builder) Build() LSystem {
	productions := make(Productions, len(b.productions))
	for sym, replacement := range b.productions {
		productions[sym] = append(Sequence(nil), replacement...)
	}
	commands := make(Commands, len(b.commands))
	for sym, cmd := range b.commands {
		commands[sym] = cmd
	}

	return LSystem{
		origin:      b.origin,
		angle:       b.angle,
		unitLength:  b.unitLength,
		scaler:      b.scaler,
		axiom:       append(Sequence(nil), b.axiom...),
		productions: productions,
		commands:    commands,
	}
}

// parseSymbol checks that tok is made of exactly one character
func parseSymbol(tok string) (Symbol, error) {
	r, size := utf8.DecodeRuneInString(tok)
	if r == utf8.RuneError || size != len(tok) {
		return 0, errors.Wrapf(ErrInvalidSymbol, "%q", tok)
	}
	return Symbol(r), nil
}
