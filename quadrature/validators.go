// SPDX-License-Identifier: MIT

package quadrature

import (
	"fmt"
	"math"
)

// validateArgs runs the checks shared by every strategy, in a fixed order:
// integrand → bounds → partition count. It returns the step width on success.
func validateArgs(tag string, a, b float64, n int, f Func) (dx float64, err error) {
	if f == nil {
		return 0, fmt.Errorf("%s: %w", tag, ErrNilIntegrand)
	}
	if !isFinite(a) || !isFinite(b) {
		return 0, fmt.Errorf("%s: [%v, %v]: %w", tag, a, b, ErrNonFiniteBound)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s: n=%d: %w", tag, n, ErrNonPositivePartition)
	}
	return (b - a) / float64(n), nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
