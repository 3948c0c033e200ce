// SPDX-License-Identifier: MIT

package quadrature_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/quadrature/quadrature"
)

// benchmarkIntegrate runs m over [0, π] with n subintervals of sin.
func benchmarkIntegrate(b *testing.B, m quadrature.Integrator, n int) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Integrate(0, math.Pi, n, math.Sin); err != nil {
			b.Fatalf("Integrate failed: %v", err)
		}
	}
}

func BenchmarkRectangle_Mid_1e4(b *testing.B) {
	m, _ := quadrature.NewRectangle(quadrature.Mid)
	benchmarkIntegrate(b, m, 10_000)
}

func BenchmarkRectangle_RandomSeeded_1e4(b *testing.B) {
	m, _ := quadrature.NewRectangle(quadrature.Random, quadrature.WithSeed(1))
	benchmarkIntegrate(b, m, 10_000)
}

func BenchmarkTrapezoidal_1e4(b *testing.B) {
	benchmarkIntegrate(b, quadrature.NewTrapezoidal(), 10_000)
}

func BenchmarkSimpson_1e4(b *testing.B) {
	benchmarkIntegrate(b, quadrature.NewSimpson(), 10_000)
}
