// SPDX-License-Identifier: MIT

package quadrature

// TrapezoidalMethod replaces f on each subinterval by the chord through its
// endpoints.
//
//	dx    = (b − a) / n
//	total = ½·(f(a) + f(b)) + Σ_{i=1}^{n−1} f(a + i·dx)
//	I     ≈ total · dx
//
// Exact for every linear f and every n ≥ 1.
type TrapezoidalMethod struct{}

// NewTrapezoidal returns a TrapezoidalMethod. The zero value works too.
func NewTrapezoidal() *TrapezoidalMethod {
	return &TrapezoidalMethod{}
}

// Integrate implements Integrator.
//
// Complexity: n+1 evaluations of f, O(1) memory.
func (TrapezoidalMethod) Integrate(a, b float64, n int, f Func) (float64, error) {
	dx, err := validateArgs("TrapezoidalMethod.Integrate", a, b, n, f)
	if err != nil {
		return 0, err
	}

	total := 0.5 * (f(a) + f(b))
	for i := 1; i < n; i++ {
		total += f(a + float64(i)*dx)
	}

	return total * dx, nil
}
