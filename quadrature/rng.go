// SPDX-License-Identifier: MIT

// Random sources for RectangleMethod in Random mode.
//
// Policy:
//   - No option: draw from the process-wide math/rand generator. Results are
//     not reproducible between runs.
//   - WithSeed / WithSource: draw from the given generator under a mutex
//     that is unique per generator, shared by every method built on it.
//     Same seed ⇒ same sample points, provided calls are not interleaved.

package quadrature

import (
	"math/rand"
	"reflect"
	"sync"
)

// defaultSeed replaces seed==0 so that WithSeed(0) is still deterministic.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed==0 ⇒ defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// globalSource delegates to the top-level math/rand functions, which are
// safe for concurrent use.
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// lockedSource serialises access to a Source that is not goroutine-safe.
type lockedSource struct {
	mu  sync.Mutex
	src Source
}

// sharedLocks holds exactly one lockedSource per injected Source, so every
// method built on the same generator contends on the same mutex.
var sharedLocks sync.Map // Source → *lockedSource

// newLockedSource returns the lockedSource registered for src, creating it
// on first use. Sources of non-comparable types cannot be keyed and get a
// private lock; being values, they are not shared anyway.
func newLockedSource(src Source) *lockedSource {
	if ls, ok := src.(*lockedSource); ok {
		return ls
	}
	if !reflect.TypeOf(src).Comparable() {
		return &lockedSource{src: src}
	}
	ls, _ := sharedLocks.LoadOrStore(src, &lockedSource{src: src})
	return ls.(*lockedSource)
}

func (l *lockedSource) Float64() float64 {
	l.mu.Lock()
	v := l.src.Float64()
	l.mu.Unlock()
	return v
}

// uniform maps u ∈ [0, 1) onto the subinterval starting at x0 with signed
// width dx. For dx < 0 the point still lies between x0 and x0+dx.
func uniform(src Source, x0, dx float64) float64 {
	return x0 + src.Float64()*dx
}
