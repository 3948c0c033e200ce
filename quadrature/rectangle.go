// SPDX-License-Identifier: MIT

package quadrature

import "fmt"

// RectangleMethod approximates the integral by a sum of rectangles, one per
// subinterval, whose height is f sampled at the Mode's evaluation point.
//
// Algorithm:
//  1. dx = (b − a) / n.
//  2. For i = 0..n−1: x0 = a + i·dx, x1 = x0 + dx,
//     ξ = x0 | x1 | (x0+x1)/2 | U[x0, x1] for Left | Right | Mid | Random,
//     total += f(ξ)·dx.
//  3. Return total.
//
// For a > b, dx < 0 and each term is negated. Note that Left on [b, a]
// samples the same nodes as Right on [a, b], so Left(b, a) = −Right(a, b);
// only Mid is antisymmetric in the bounds by itself.
//
// The zero value is a ready-to-use Left method on the process-wide source.
type RectangleMethod struct {
	mode Mode
	src  Source
}

// NewRectangle builds a RectangleMethod for mode.
//
// Errors: ErrInvalidMode if mode is not Left, Right, Mid or Random. The
// check happens here, never at Integrate time.
func NewRectangle(mode Mode, opts ...Option) (*RectangleMethod, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("NewRectangle %v: %w", mode, ErrInvalidMode)
	}
	o := gatherOptions(opts...)
	return &RectangleMethod{mode: mode, src: o.src}, nil
}

// Mode returns the evaluation-point policy fixed at construction.
func (r *RectangleMethod) Mode() Mode {
	return r.mode
}

// Integrate implements Integrator.
//
// Complexity: O(n) evaluations of f, O(1) memory.
func (r *RectangleMethod) Integrate(a, b float64, n int, f Func) (float64, error) {
	dx, err := validateArgs("RectangleMethod.Integrate", a, b, n, f)
	if err != nil {
		return 0, err
	}

	src := r.src
	if src == nil {
		src = globalSource{}
	}

	var (
		total  float64
		x0, xi float64
	)
	for i := 0; i < n; i++ {
		x0 = a + float64(i)*dx
		switch r.mode {
		case Left:
			xi = x0
		case Right:
			xi = x0 + dx
		case Mid:
			xi = (x0 + (x0 + dx)) / 2
		case Random:
			xi = uniform(src, x0, dx)
		default:
			return 0, fmt.Errorf("RectangleMethod.Integrate %v: %w", r.mode, ErrInvalidMode)
		}
		total += f(xi) * dx
	}

	return total, nil
}
