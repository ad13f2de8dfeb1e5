// Package interchange loads L-systems described outside of the program
package interchange

import "github.com/aabizri/lindraw"

type Source interface {
	Load() (lindraw.LSystem, error)
}
