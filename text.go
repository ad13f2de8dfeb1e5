package lindraw

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// collapseSpaces replaces every run of whitespace by a single space and trims the ends
func collapseSpaces(line string) string {
	return strings.Join(strings.Fields(line), " ")
}

// Configure reads a text configuration from r, one directive per line.
// Lines have no length limit. See ConfigureFromText for the format.
func (b *Builder) Configure(r io.Reader) error {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			lines = append(lines, strings.TrimSuffix(line, "\n"))
		}
		if err == io.EOF {
			break
		} else if err != nil {
			return errors.Wrap(err, "reading configuration")
		}
	}
	return b.ConfigureFromText(lines)
}

/*
ConfigureFromText applies a text configuration, one directive per line:

	origin <x> <y>
	angle <degrees>
	unitLength <u>
	unitLengthDegreeScaler <s> | <a>/<b>
	axiom <rest of the line>
	production <symbol> <replacement>
	command <symbol> <kind> [<argument>]

Whitespace runs count as one space and blank lines are ignored. The first
invalid line stops the configuration with a *ConfigError; the lines before it
stay applied.
*/
func (b *Builder) ConfigureFromText(lines []string) error {
	for i, raw := range lines {
		line := collapseSpaces(raw)
		if line == "" {
			continue
		}
		args := strings.Split(line, " ")
		if err := b.apply(line, args); err != nil {
			return &ConfigError{Line: i + 1, Directive: args[0], Err: err}
		}
	}
	return nil
}

// apply runs a single directive. Nothing is modified unless the whole line is valid.
func (b *Builder) apply(line string, args []string) error {
	directive := args[0]
	switch directive {
	case "origin":
		if err := expectTokens(args, 3); err != nil {
			return err
		}
		x, err := parseFloat(args[1])
		if err != nil {
			return err
		}
		y, err := parseFloat(args[2])
		if err != nil {
			return err
		}
		b.SetOrigin(x, y)

	case "angle":
		if err := expectTokens(args, 2); err != nil {
			return err
		}
		angle, err := parseFloat(args[1])
		if err != nil {
			return err
		}
		b.SetAngle(angle)

	case "unitLength":
		if err := expectTokens(args, 2); err != nil {
			return err
		}
		unitLength, err := parseFloat(args[1])
		if err != nil {
			return err
		}
		b.SetUnitLength(unitLength)

	case "unitLengthDegreeScaler":
		scaler, err := parseScaler(strings.TrimPrefix(line, directive))
		if err != nil {
			return err
		}
		b.SetUnitLengthDegreeScaler(scaler)

	case "axiom":
		// The axiom is the rest of the line, spaces included
		b.SetAxiom(strings.TrimPrefix(strings.TrimPrefix(line, directive), " "))

	case "production":
		if err := expectTokens(args, 3); err != nil {
			return err
		}
		sym, err := parseSymbol(args[1])
		if err != nil {
			return err
		}
		b.RegisterProduction(sym, args[2])

	case "command":
		if len(args) != 3 && len(args) != 4 {
			return errors.Wrapf(ErrArgumentCount, "expected 3 or 4 tokens, got %d", len(args))
		}
		sym, err := parseSymbol(args[1])
		if err != nil {
			return err
		}
		cmd, err := ParseCommand(strings.Join(args[2:], " "))
		if err != nil {
			return err
		}
		b.BindCommand(sym, cmd)

	default:
		return errors.Wrapf(ErrUnknownDirective, "%q", directive)
	}
	return nil
}

func expectTokens(args []string, n int) error {
	if len(args) != n {
		return errors.Wrapf(ErrArgumentCount, "expected %d tokens, got %d", n, len(args))
	}
	return nil
}

// parseScaler accepts either a number or a ratio of two numbers, "a/b".
// Spaces around the slash are allowed.
func parseScaler(operand string) (float64, error) {
	operand = strings.TrimSpace(operand)
	if operand == "" {
		return 0, errors.Wrap(ErrArgumentCount, "expected a scaler")
	}

	if !strings.Contains(operand, "/") {
		if strings.Contains(operand, " ") {
			return 0, errors.Wrapf(ErrArgumentCount, "expected one scaler, got %q", operand)
		}
		return parseFloat(operand)
	}

	parts := strings.Split(operand, "/")
	if len(parts) != 2 {
		return 0, errors.Wrapf(ErrInvalidNumber, "%q is not a ratio", operand)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
		if strings.Contains(parts[i], " ") {
			return 0, errors.Wrapf(ErrArgumentCount, "expected one ratio, got %q", operand)
		}
	}
	num, err := parseFloat(parts[0])
	if err != nil {
		return 0, err
	}
	den, err := parseFloat(parts[1])
	if err != nil {
		return 0, err
	}
	if den == 0 {
		return 0, errors.Wrapf(ErrInvalidNumber, "%q divides by zero", operand)
	}
	return num / den, nil
}
