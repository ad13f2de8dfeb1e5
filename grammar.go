package lindraw

import "github.com/samber/lo"

// Symbol is a letter of the L-system alphabet
type Symbol rune

// Sequence is a string of symbols, such as an axiom or a generation
type Sequence []Symbol

// ParseSequence returns the symbols of s, one per rune
func ParseSequence(s string) Sequence {
	return lo.Map([]rune(s), func(r rune, _ int) Symbol {
		return Symbol(r)
	})
}

// Sequence stringifier
func (s Sequence) String() string {
	return string(lo.Map(s, func(sym Symbol, _ int) rune {
		return rune(sym)
	}))
}

// Count returns the number of occurrences of sym
func (s Sequence) Count(sym Symbol) int {
	return lo.Count(s, sym)
}

// Productions maps a symbol to its replacement. A symbol without an entry
// rewrites to itself.
type Productions map[Symbol]Sequence

// Commands maps a symbol to the command run when the symbol is drawn. A
// symbol without an entry is skipped.
type Commands map[Symbol]Command

// outputSize returns the exact length of the rewrite of input
func (p Productions) outputSize(input Sequence) int {
	return lo.SumBy(input, func(sym Symbol) int {
		if replacement, ok := p[sym]; ok {
			return len(replacement)
		}
		return 1
	})
}

// rewrite runs one parallel rewriting step: every symbol of input is
// replaced at once, replacements are not rewritten again in the same step.
func (p Productions) rewrite(input Sequence) Sequence {
	output := make(Sequence, 0, p.outputSize(input))
	for _, sym := range input {
		if replacement, ok := p[sym]; ok {
			output = append(output, replacement...)
		} else {
			output = append(output, sym)
		}
	}
	return output
}

// Generate expands axiom through level rewriting steps.
// The result never shares memory with axiom or productions.
func Generate(axiom Sequence, productions Productions, level uint) Sequence {
	current := append(Sequence(nil), axiom...)
	for i := uint(0); i < level; i++ {
		current = productions.rewrite(current)
	}
	return current
}
