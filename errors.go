package lindraw

import (
	"fmt"

	"github.com/pkg/errors"
)

// Causes of a ConfigError, match them with errors.Is
var (
	ErrArgumentCount    = errors.New("wrong argument count")
	ErrInvalidNumber    = errors.New("invalid number")
	ErrInvalidColor     = errors.New("invalid color")
	ErrInvalidSymbol    = errors.New("symbol must be a single character")
	ErrUnknownDirective = errors.New("unrecognized directive")
	ErrUnknownCommand   = errors.New("unrecognized command kind")
)

// ErrUnbalancedPop is returned when a pop would remove the last turtle state,
// meaning the generated sequence pops more often than it pushes.
var ErrUnbalancedPop = errors.New("pop on the initial turtle state")

// ConfigError describes a rejected configuration directive.
type ConfigError struct {
	// Line is 1-based for text configuration, 0 for direct API calls
	Line      int
	Directive string
	Err       error
}

func (e *ConfigError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %v", e.Line, e.Directive, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Directive, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
