// SPDX-License-Identifier: MIT

package quadrature

import (
	"fmt"
	"strings"
)

// Func is a real integrand f: ℝ → ℝ. It is expected to be pure; strategies
// call it up to n+1 times per Integrate.
type Func func(x float64) float64

// Integrator approximates ∫ₐᵇ f(x) dx using n equal-width subintervals.
//
// Contract:
//   - n must be ≥ 1 (ErrNonPositivePartition otherwise).
//   - a and b must be finite (ErrNonFiniteBound); a > b is allowed.
//   - f must be non-nil (ErrNilIntegrand).
//   - Implementations may add stricter preconditions (Simpson: even n).
type Integrator interface {
	Integrate(a, b float64, n int, f Func) (float64, error)
}

// Mode selects the evaluation point a RectangleMethod samples inside each
// subinterval [x0, x1].
type Mode int

const (
	// Left samples f(x0).
	Left Mode = iota

	// Right samples f(x1).
	Right

	// Mid samples f((x0+x1)/2).
	Mid

	// Random samples f(ξ) with ξ drawn uniformly from [x0, x1].
	Random
)

// modeNames is indexed by Mode; keep in declaration order.
var modeNames = [...]string{
	Left:   "left",
	Right:  "right",
	Mid:    "mid",
	Random: "random",
}

// Valid reports whether m is one of Left, Right, Mid, Random.
func (m Mode) Valid() bool {
	return m >= Left && m <= Random
}

// String returns the lower-case mode name, or "Mode(N)" for values outside
// the enumeration.
func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode maps "left", "right", "mid" or "random" (case-insensitive,
// surrounding blanks ignored) to a Mode.
//
// Errors: ErrInvalidMode for any other input.
func ParseMode(s string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for m, name := range modeNames {
		if name == key {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("ParseMode %q: %w", s, ErrInvalidMode)
}

// Modes returns every valid Mode in declaration order.
func Modes() []Mode {
	return []Mode{Left, Right, Mid, Random}
}
