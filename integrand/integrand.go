// SPDX-License-Identifier: MIT

package integrand

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/quadrature/quadrature"
)

var (
	// ErrUnknownIntegrand indicates Lookup was given a name not in Names().
	ErrUnknownIntegrand = errors.New("integrand: unknown integrand")

	// ErrOutsideDomain indicates Exact was asked for an interval where the
	// antiderivative is undefined.
	ErrOutsideDomain = errors.New("integrand: interval outside antiderivative domain")
)

// Integrand couples f with its antiderivative.
type Integrand struct {
	Name    string
	Formula string
	F       quadrature.Func
	Anti    func(x float64) float64
	// Domain is the open lower bound of Anti's domain; -Inf when unbounded.
	Domain float64
}

// Exact returns ∫ₐᵇ f(x) dx from the antiderivative.
func (in Integrand) Exact(a, b float64) (float64, error) {
	if a <= in.Domain || b <= in.Domain {
		return 0, fmt.Errorf("%s on [%v, %v]: %w", in.Name, a, b, ErrOutsideDomain)
	}
	return in.Anti(b) - in.Anti(a), nil
}

var catalogue = map[string]Integrand{
	"square": {
		Name: "square", Formula: "x^2",
		F:      func(x float64) float64 { return x * x },
		Anti:   func(x float64) float64 { return x * x * x / 3 },
		Domain: math.Inf(-1),
	},
	"cube": {
		Name: "cube", Formula: "x^3",
		F:      func(x float64) float64 { return x * x * x },
		Anti:   func(x float64) float64 { return x * x * x * x / 4 },
		Domain: math.Inf(-1),
	},
	"linear": {
		Name: "linear", Formula: "2x+1",
		F:      func(x float64) float64 { return 2*x + 1 },
		Anti:   func(x float64) float64 { return x*x + x },
		Domain: math.Inf(-1),
	},
	"sin": {
		Name: "sin", Formula: "sin(x)",
		F:      math.Sin,
		Anti:   func(x float64) float64 { return -math.Cos(x) },
		Domain: math.Inf(-1),
	},
	"exp": {
		Name: "exp", Formula: "e^x",
		F:      math.Exp,
		Anti:   math.Exp,
		Domain: math.Inf(-1),
	},
	"inv": {
		Name: "inv", Formula: "1/(1+x)",
		F:      func(x float64) float64 { return 1 / (1 + x) },
		Anti:   func(x float64) float64 { return math.Log1p(x) },
		Domain: -1,
	},
}

// Lookup returns the integrand registered under name.
func Lookup(name string) (Integrand, error) {
	in, ok := catalogue[name]
	if !ok {
		return Integrand{}, fmt.Errorf("Lookup %q: %w", name, ErrUnknownIntegrand)
	}
	return in, nil
}

// Names lists the catalogue in ascending order.
func Names() []string {
	out := make([]string, 0, len(catalogue))
	for name := range catalogue {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
