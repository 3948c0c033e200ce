// SPDX-License-Identifier: MIT

// Package quadrature_test holds shared fixtures: polynomial integrands with
// known integrals, tolerances and a scripted Source.
package quadrature_test

import "sync/atomic"

// Tolerances.
const (
	epsExact = 1e-12 // results that are exact in real arithmetic
	epsFine  = 1e-6  // convergent results at large n
)

func identity(x float64) float64 { return x }
func square(x float64) float64   { return x * x }
func cube(x float64) float64     { return x * x * x }
func linear(x float64) float64   { return 2*x + 1 }

// counted wraps f and counts its invocations.
func counted(f func(float64) float64) (func(float64) float64, *int64) {
	var calls int64
	return func(x float64) float64 {
		atomic.AddInt64(&calls, 1)
		return f(x)
	}, &calls
}

// constSource always returns u; it drives Random mode onto a fixed offset.
type constSource float64

func (c constSource) Float64() float64 { return float64(c) }
