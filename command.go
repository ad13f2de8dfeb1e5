package lindraw

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// LineWidth is the width of every painted segment
const LineWidth = 1.0

// Painter receives the segments produced while drawing. Coordinates are the
// turtle's own coordinates, mapping them to a surface is up to the painter.
type Painter interface {
	DrawLine(x0, y0, x1, y1 float64, c Color, width float64)
}

// Kind identifies a drawing operation
type Kind uint8

const (
	KindDraw Kind = iota + 1
	KindSkip
	KindScale
	KindRotate
	KindPush
	KindPop
	KindColor
)

var kindNames = map[Kind]string{
	KindDraw:   "draw",
	KindSkip:   "skip",
	KindScale:  "scale",
	KindRotate: "rotate",
	KindPush:   "push",
	KindPop:    "pop",
	KindColor:  "color",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Command is one of the fixed drawing operations. Value is the step for
// Draw and Skip, the factor for Scale and the angle in degrees for Rotate;
// Color is only meaningful for KindColor.
type Command struct {
	Kind  Kind
	Value float64
	Color Color
}

func DrawCommand(step float64) Command { return Command{Kind: KindDraw, Value: step} }
func SkipCommand(step float64) Command { return Command{Kind: KindSkip, Value: step} }
func ScaleCommand(factor float64) Command { return Command{Kind: KindScale, Value: factor} }
func RotateCommand(angle float64) Command { return Command{Kind: KindRotate, Value: angle} }
func PushCommand() Command { return Command{Kind: KindPush} }
func PopCommand() Command { return Command{Kind: KindPop} }
func ColorCommand(color Color) Command { return Command{Kind: KindColor, Color: color} }

// String returns the command in the action syntax accepted by ParseCommand
func (c Command) String() string {
	switch c.Kind {
	case KindDraw, KindSkip, KindScale, KindRotate:
		return c.Kind.String() + " " + strconv.FormatFloat(c.Value, 'g', -1, 64)
	case KindColor:
		return c.Kind.String() + " " + c.Color.Hex()
	default:
		return c.Kind.String()
	}
}

// Execute applies the command to the current state of ctx, painting on p
// when it draws.
func (c Command) Execute(ctx *Context, p Painter) error {
	state := ctx.Current()
	switch c.Kind {
	case KindDraw:
		from := state.Position
		to := from.Translated(state.Heading.Scaled(c.Value * state.StepLength))
		p.DrawLine(from.X, from.Y, to.X, to.Y, state.Color, LineWidth)
		state.Position = to
	case KindSkip:
		state.Position = state.Position.Translated(state.Heading.Scaled(c.Value * state.StepLength))
	case KindScale:
		state.StepLength *= c.Value
	case KindRotate:
		// Renormalize to keep rounding errors from piling up
		state.Heading = state.Heading.Rotated(c.Value).Normalized()
	case KindColor:
		state.Color = c.Color
	case KindPush:
		ctx.Push()
	case KindPop:
		return ctx.Pop()
	default:
		return errors.Errorf("unknown command kind %d", c.Kind)
	}
	return nil
}

// ParseCommand resolves an action such as "draw 1", "rotate -60", "push" or
// "color ff0000" to its Command. Keywords are case-insensitive.
func ParseCommand(action string) (Command, error) {
	args := strings.Fields(action)
	if len(args) == 0 {
		return Command{}, errors.Wrap(ErrArgumentCount, "empty action")
	}

	keyword := strings.ToLower(args[0])
	switch keyword {
	case "push", "pop":
		if len(args) != 1 {
			return Command{}, errors.Wrapf(ErrArgumentCount, "%s takes no argument, got %d", keyword, len(args)-1)
		}
		if keyword == "push" {
			return PushCommand(), nil
		}
		return PopCommand(), nil
	case "draw", "skip", "scale", "rotate", "color":
		if len(args) != 2 {
			return Command{}, errors.Wrapf(ErrArgumentCount, "%s takes exactly one argument, got %d", keyword, len(args)-1)
		}
	default:
		return Command{}, errors.Wrapf(ErrUnknownCommand, "%q", args[0])
	}

	if keyword == "color" {
		color, err := ParseColor(args[1])
		if err != nil {
			return Command{}, err
		}
		return ColorCommand(color), nil
	}

	value, err := parseFloat(args[1])
	if err != nil {
		return Command{}, err
	}
	switch keyword {
	case "draw":
		return DrawCommand(value), nil
	case "skip":
		return SkipCommand(value), nil
	case "scale":
		return ScaleCommand(value), nil
	default:
		return RotateCommand(value), nil
	}
}

// parseFloat accepts finite decimal numbers only: no NaN, infinities or hex floats
func parseFloat(s string) (float64, error) {
	if strings.ContainsAny(s, "xX") {
		return 0, errors.Wrapf(ErrInvalidNumber, "%q is not a decimal number", s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidNumber, "%q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Wrapf(ErrInvalidNumber, "%q is not finite", s)
	}
	return v, nil
}
