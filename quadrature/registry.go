// SPDX-License-Identifier: MIT

package quadrature

import "fmt"

// Method names accepted by New.
const (
	NameLeft        = "left"
	NameRight       = "right"
	NameMid         = "mid"
	NameRandom      = "random"
	NameTrapezoidal = "trapezoidal"
	NameSimpson     = "simpson"
)

var methodNames = []string{
	NameLeft, NameRight, NameMid, NameRandom, NameTrapezoidal, NameSimpson,
}

// Names lists every name New understands, rectangle modes first.
func Names() []string {
	out := make([]string, len(methodNames))
	copy(out, methodNames)
	return out
}

// New builds the Integrator registered under name. The four rectangle names
// coincide with the Mode names; opts are forwarded to NewRectangle and are
// ignored by trapezoidal and simpson.
//
// Errors: ErrUnknownMethod for a name not in Names().
func New(name string, opts ...Option) (Integrator, error) {
	switch name {
	case NameTrapezoidal:
		return NewTrapezoidal(), nil
	case NameSimpson:
		return NewSimpson(), nil
	}

	mode, err := ParseMode(name)
	if err != nil || modeNames[mode] != name {
		return nil, fmt.Errorf("New %q: %w", name, ErrUnknownMethod)
	}
	r, err := NewRectangle(mode, opts...)
	if err != nil {
		return nil, err
	}
	return r, nil
}
