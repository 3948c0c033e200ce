// SPDX-License-Identifier: MIT

package quadrature

import "fmt"

// SimpsonMethod fits a parabola through every pair of adjacent subintervals.
//
//	dx      = (b − a) / n,                 n even
//	coef(i) = 4 for odd i, 2 for even i
//	total   = f(a) + f(b) + Σ_{i=1}^{n−1} coef(i)·f(a + i·dx)
//	I       ≈ total · dx / 3
//
// Exact for polynomials of degree ≤ 3 for every even n ≥ 2.
type SimpsonMethod struct{}

// NewSimpson returns a SimpsonMethod. The zero value works too.
func NewSimpson() *SimpsonMethod {
	return &SimpsonMethod{}
}

// Integrate implements Integrator.
//
// Errors: in addition to the shared checks, ErrOddPartition for odd n. The
// positivity check runs first, so n=0 reports ErrNonPositivePartition.
//
// Complexity: n+1 evaluations of f, O(1) memory.
func (SimpsonMethod) Integrate(a, b float64, n int, f Func) (float64, error) {
	dx, err := validateArgs("SimpsonMethod.Integrate", a, b, n, f)
	if err != nil {
		return 0, err
	}
	if n%2 != 0 {
		return 0, fmt.Errorf("SimpsonMethod.Integrate: n=%d: %w", n, ErrOddPartition)
	}

	total := f(a) + f(b)
	for i := 1; i < n; i++ {
		if i%2 != 0 {
			total += 4 * f(a+float64(i)*dx)
		} else {
			total += 2 * f(a+float64(i)*dx)
		}
	}

	return total * dx / 3, nil
}
