// SPDX-License-Identifier: MIT

package quadrature

import (
	"errors"
	"fmt"
)

// Every sentinel wraps ErrInvalidArgument, so errors.Is(err, ErrInvalidArgument)
// holds for all of them. Match the specific sentinel for the precise reason.
var (
	// ErrInvalidArgument is the root of all argument-validation failures.
	ErrInvalidArgument = errors.New("quadrature: invalid argument")

	// ErrInvalidMode indicates a rectangle Mode outside {left, right, mid, random}.
	ErrInvalidMode = fmt.Errorf("%w: rectangle mode must be one of left, right, mid, random", ErrInvalidArgument)

	// ErrOddPartition indicates Simpson's rule was called with an odd n.
	ErrOddPartition = fmt.Errorf("%w: n must be even for Simpson's rule", ErrInvalidArgument)

	// ErrNonPositivePartition indicates n ≤ 0; dx = (b−a)/n would be undefined.
	ErrNonPositivePartition = fmt.Errorf("%w: partition count n must be >= 1", ErrInvalidArgument)

	// ErrNilIntegrand indicates a nil Func.
	ErrNilIntegrand = fmt.Errorf("%w: integrand is nil", ErrInvalidArgument)

	// ErrNonFiniteBound indicates a or b is NaN or ±Inf.
	ErrNonFiniteBound = fmt.Errorf("%w: interval bounds must be finite", ErrInvalidArgument)

	// ErrUnknownMethod indicates New was asked for a name not in Names().
	ErrUnknownMethod = fmt.Errorf("%w: unknown quadrature method", ErrInvalidArgument)
)
