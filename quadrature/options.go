// SPDX-License-Identifier: MIT

package quadrature

import "math/rand"

const panicNilSource = "quadrature: WithSource: source must be non-nil"

// Source yields uniform variates in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Option configures a RectangleMethod. Options only affect Random mode; the
// deterministic modes accept and ignore them.
type Option func(*options)

type options struct {
	src Source
}

// WithSource makes Random mode draw from src instead of the process-wide
// generator. Every WithSource call for the same src reuses one mutex, so a
// single *rand.Rand may back several methods used from many goroutines.
//
// Panics if src is nil (programmer error).
func WithSource(src Source) Option {
	if src == nil {
		panic(panicNilSource)
	}
	return func(o *options) {
		o.src = newLockedSource(src)
	}
}

// WithSeed makes Random mode reproducible: the same seed gives the same
// sequence of sample points. seed==0 maps to defaultSeed.
func WithSeed(seed int64) Option {
	return WithSource(rngFromSeed(seed))
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) options {
	o := options{src: globalSource{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// compile-time check
var _ Source = (*rand.Rand)(nil)
