// SPDX-License-Identifier: MIT

// Package quadrature approximates definite integrals ∫ₐᵇ f(x) dx over a closed
// interval with the classical fixed-step rules.
//
// 🚀 What is in here?
//
//	One capability and three strategies sharing it:
//	  • Integrator         — Integrate(a, b, n, f) (float64, error)
//	  • RectangleMethod    — left / right / mid / random evaluation point
//	  • TrapezoidalMethod  — linear interpolation between partition nodes
//	  • SimpsonMethod      — parabolic arcs over pairs of subintervals (even n)
//
// ✨ Key properties:
//   - every call is stateless and idempotent, except Random mode which draws
//     one uniform point per subinterval
//   - reversed bounds are not special-cased: dx = (b−a)/n goes negative and
//     every term carries the sign
//   - n ≤ 0 fails fast with ErrNonPositivePartition; Simpson with odd n fails
//     with ErrOddPartition; both match ErrInvalidArgument via errors.Is
//   - Random mode takes an injectable Source (WithSource, WithSeed) so tests and
//     reproducible runs are deterministic
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/quadrature/quadrature"
//
//	mid, err := quadrature.NewRectangle(quadrature.Mid)
//	if err != nil {
//	  // ErrInvalidMode
//	}
//	v, err := mid.Integrate(0, 1, 100, func(x float64) float64 { return x * x })
//
//	simpson := quadrature.NewSimpson()
//	v, err = simpson.Integrate(0, 1, 2, func(x float64) float64 { return x * x * x }) // 0.25
//
// Performance:
//
//   - Time:   O(n) evaluations of f (n for rectangles, n+1 for the others)
//   - Memory: O(1)
//
// Concurrency:
//
//	All strategies are safe for concurrent use provided f itself is. An
//	injected Source is wrapped in a mutex; the default Source is the
//	goroutine-safe process-wide math/rand generator.
package quadrature
