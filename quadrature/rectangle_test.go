// SPDX-License-Identifier: MIT

package quadrature_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/quadrature/quadrature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRectangle_InvalidModeFailsAtConstruction verifies the mode check lives
// in the constructor and matches the InvalidArgument class.
func TestRectangle_InvalidModeFailsAtConstruction(t *testing.T) {
	for _, m := range []quadrature.Mode{-1, 4, 42} {
		r, err := quadrature.NewRectangle(m)
		assert.Nil(t, r, "mode %d must not build a method", m)
		assert.ErrorIs(t, err, quadrature.ErrInvalidMode)
		assert.ErrorIs(t, err, quadrature.ErrInvalidArgument)
	}
}

// TestRectangle_LeftRightBracket checks left ≤ true ≤ right for increasing f.
func TestRectangle_LeftRightBracket(t *testing.T) {
	left, err := quadrature.NewRectangle(quadrature.Left)
	require.NoError(t, err)
	right, err := quadrature.NewRectangle(quadrature.Right)
	require.NoError(t, err)

	l, err := left.Integrate(0, 1, 10, identity)
	require.NoError(t, err)
	r, err := right.Integrate(0, 1, 10, identity)
	require.NoError(t, err)

	assert.InDelta(t, 0.45, l, epsExact, "left sum of x on [0,1], n=10")
	assert.InDelta(t, 0.55, r, epsExact, "right sum of x on [0,1], n=10")
	assert.LessOrEqual(t, l, 0.5)
	assert.GreaterOrEqual(t, r, 0.5)
}

// TestRectangle_MidExactForLinear verifies the midpoint rule integrates
// straight lines exactly.
func TestRectangle_MidExactForLinear(t *testing.T) {
	mid, err := quadrature.NewRectangle(quadrature.Mid)
	require.NoError(t, err)

	v, err := mid.Integrate(0, 1, 10, identity)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, v, epsExact)

	v, err = mid.Integrate(0, 2, 4, linear)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, v, epsExact)
}

// TestRectangle_Convergence checks every deterministic mode approaches 1/3
// for ∫₀¹ x² dx as n grows.
func TestRectangle_Convergence(t *testing.T) {
	cases := []struct {
		mode quadrature.Mode
		n    int
		tol  float64
	}{
		{quadrature.Left, 1000, 1e-3},
		{quadrature.Right, 1000, 1e-3},
		{quadrature.Mid, 1000, epsFine},
	}
	for _, tc := range cases {
		t.Run(tc.mode.String(), func(t *testing.T) {
			r, err := quadrature.NewRectangle(tc.mode)
			require.NoError(t, err)
			v, err := r.Integrate(0, 1, tc.n, square)
			require.NoError(t, err)
			assert.InDelta(t, 1.0/3.0, v, tc.tol)
		})
	}
}

// TestRectangle_ReversedBounds checks the sign behaviour for a > b.
// Mid is antisymmetric on its own; Left and Right swap roles.
func TestRectangle_ReversedBounds(t *testing.T) {
	left, _ := quadrature.NewRectangle(quadrature.Left)
	right, _ := quadrature.NewRectangle(quadrature.Right)
	mid, _ := quadrature.NewRectangle(quadrature.Mid)

	fwd, err := mid.Integrate(0, 1, 7, square)
	require.NoError(t, err)
	rev, err := mid.Integrate(1, 0, 7, square)
	require.NoError(t, err)
	assert.InDelta(t, fwd, -rev, epsExact, "mid(a,b) = -mid(b,a)")
	assert.Less(t, rev, 0.0)

	l, err := left.Integrate(1, 0, 10, identity)
	require.NoError(t, err)
	r, err := right.Integrate(0, 1, 10, identity)
	require.NoError(t, err)
	assert.InDelta(t, -r, l, epsExact, "left(b,a) = -right(a,b)")
	assert.InDelta(t, -0.55, l, epsExact)
}

// TestRectangle_EmptyInterval verifies a == b yields zero in every mode.
func TestRectangle_EmptyInterval(t *testing.T) {
	for _, m := range quadrature.Modes() {
		r, err := quadrature.NewRectangle(m, quadrature.WithSeed(3))
		require.NoError(t, err)
		v, err := r.Integrate(2.5, 2.5, 8, square)
		require.NoError(t, err)
		assert.Zero(t, v, "mode %v", m)
	}
}

// TestRectangle_CallCount verifies f is sampled exactly n times.
func TestRectangle_CallCount(t *testing.T) {
	for _, m := range quadrature.Modes() {
		f, calls := counted(square)
		r, err := quadrature.NewRectangle(m)
		require.NoError(t, err)
		_, err = r.Integrate(0, 1, 25, f)
		require.NoError(t, err)
		assert.EqualValues(t, 25, *calls, "mode %v", m)
	}
}

// TestRectangle_RandomScriptedSource pins Random mode to the subinterval
// start (u=0) and centre (u=0.5) and compares with Left and Mid.
func TestRectangle_RandomScriptedSource(t *testing.T) {
	left, _ := quadrature.NewRectangle(quadrature.Left)
	mid, _ := quadrature.NewRectangle(quadrature.Mid)

	atStart, err := quadrature.NewRectangle(quadrature.Random, quadrature.WithSource(constSource(0)))
	require.NoError(t, err)
	atCentre, err := quadrature.NewRectangle(quadrature.Random, quadrature.WithSource(constSource(0.5)))
	require.NoError(t, err)

	want, _ := left.Integrate(-1, 3, 16, cube)
	got, err := atStart.Integrate(-1, 3, 16, cube)
	require.NoError(t, err)
	assert.InDelta(t, want, got, epsExact)

	want, _ = mid.Integrate(-1, 3, 16, cube)
	got, err = atCentre.Integrate(-1, 3, 16, cube)
	require.NoError(t, err)
	assert.InDelta(t, want, got, epsExact)
}

// TestRectangle_RandomReversedBounds pins Random mode on [b, a], where dx
// is negative, and compares with Left and Mid on the same reversed interval.
func TestRectangle_RandomReversedBounds(t *testing.T) {
	left, _ := quadrature.NewRectangle(quadrature.Left)
	mid, _ := quadrature.NewRectangle(quadrature.Mid)
	atStart, err := quadrature.NewRectangle(quadrature.Random, quadrature.WithSource(constSource(0)))
	require.NoError(t, err)
	atCentre, err := quadrature.NewRectangle(quadrature.Random, quadrature.WithSource(constSource(0.5)))
	require.NoError(t, err)

	want, err := left.Integrate(1, 0, 10, identity)
	require.NoError(t, err)
	got, err := atStart.Integrate(1, 0, 10, identity)
	require.NoError(t, err)
	assert.InDelta(t, want, got, epsExact)
	assert.InDelta(t, -0.55, got, epsExact)

	want, err = mid.Integrate(3, -1, 16, cube)
	require.NoError(t, err)
	got, err = atCentre.Integrate(3, -1, 16, cube)
	require.NoError(t, err)
	assert.InDelta(t, want, got, epsExact)
	assert.InDelta(t, -20.0, got, 1e-1, "∫₃⁻¹ x³ dx = -20")
}

// TestRectangle_RandomSeedDeterminism verifies equal seeds give equal sums
// and the sample points stay inside their subintervals.
func TestRectangle_RandomSeedDeterminism(t *testing.T) {
	r1, err := quadrature.NewRectangle(quadrature.Random, quadrature.WithSeed(42))
	require.NoError(t, err)
	r2, err := quadrature.NewRectangle(quadrature.Random, quadrature.WithSeed(42))
	require.NoError(t, err)

	v1, err := r1.Integrate(0, 1, 100, square)
	require.NoError(t, err)
	v2, err := r2.Integrate(0, 1, 100, square)
	require.NoError(t, err)
	assert.Equal(t, v1, v2, "same seed must reproduce the same sum")

	left, _ := quadrature.NewRectangle(quadrature.Left)
	right, _ := quadrature.NewRectangle(quadrature.Right)
	lo, _ := left.Integrate(0, 1, 100, square)
	hi, _ := right.Integrate(0, 1, 100, square)
	assert.GreaterOrEqual(t, v1, lo-epsExact)
	assert.LessOrEqual(t, v1, hi+epsExact)
}

// TestRectangle_RandomZeroSeed verifies WithSeed(0) is deterministic and
// equals the default seed.
func TestRectangle_RandomZeroSeed(t *testing.T) {
	r0, _ := quadrature.NewRectangle(quadrature.Random, quadrature.WithSeed(0))
	r1, _ := quadrature.NewRectangle(quadrature.Random, quadrature.WithSeed(1))

	v0, err := r0.Integrate(0, math.Pi, 50, math.Sin)
	require.NoError(t, err)
	v1, err := r1.Integrate(0, math.Pi, 50, math.Sin)
	require.NoError(t, err)
	assert.Equal(t, v1, v0)
}

// TestRectangle_RandomUnseededConverges uses the process-wide source; only
// the limit is checked because the sum differs run to run.
func TestRectangle_RandomUnseededConverges(t *testing.T) {
	r, err := quadrature.NewRectangle(quadrature.Random)
	require.NoError(t, err)
	v, err := r.Integrate(0, 1, 10000, square)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3.0, v, 1e-3)
}

// TestRectangle_ZeroValueIsLeft checks the zero value behaves as Left.
func TestRectangle_ZeroValueIsLeft(t *testing.T) {
	var r quadrature.RectangleMethod
	assert.Equal(t, quadrature.Left, r.Mode())

	v, err := r.Integrate(0, 1, 10, identity)
	require.NoError(t, err)
	assert.InDelta(t, 0.45, v, epsExact)
}

// TestRectangle_InvalidArguments covers the shared validation order.
func TestRectangle_InvalidArguments(t *testing.T) {
	r, err := quadrature.NewRectangle(quadrature.Mid)
	require.NoError(t, err)

	_, err = r.Integrate(0, 1, 0, square)
	assert.ErrorIs(t, err, quadrature.ErrNonPositivePartition, "n=0")
	assert.ErrorIs(t, err, quadrature.ErrInvalidArgument)

	_, err = r.Integrate(0, 1, -3, square)
	assert.ErrorIs(t, err, quadrature.ErrNonPositivePartition, "n<0")

	_, err = r.Integrate(math.NaN(), 1, 4, square)
	assert.ErrorIs(t, err, quadrature.ErrNonFiniteBound)

	_, err = r.Integrate(0, math.Inf(1), 4, square)
	assert.ErrorIs(t, err, quadrature.ErrNonFiniteBound)

	_, err = r.Integrate(0, 1, 4, nil)
	assert.ErrorIs(t, err, quadrature.ErrNilIntegrand)

	// nil integrand is reported before the partition count
	_, err = r.Integrate(0, 1, 0, nil)
	assert.ErrorIs(t, err, quadrature.ErrNilIntegrand)
}
