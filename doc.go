// Package quadrature is a small fixed-step numerical integration toolkit:
// rectangle, trapezoidal and Simpson rules behind one Integrator interface,
// plus a catalogue of test functions and a command-line driver.
//
// 🚀 What is in the module?
//
//	quadrature/          — Integrator, RectangleMethod (left/right/mid/random),
//	                       TrapezoidalMethod, SimpsonMethod, name registry
//	integrand/           — named functions with closed-form antiderivatives
//	internal/config/     — TOML/YAML run configuration
//	internal/logging/    — slog + tint logger for the CLI
//	internal/report/     — method × n evaluation tables
//	cmd/quadrature/      — cobra CLI (integrate, compare, methods, integrands)
//	examples/            — runnable convergence demo
//
// ✨ Why so small?
//
//   - Teaching-grade rules: the textbook formulas, no adaptive refinement
//   - Pure Go core: the quadrature package imports only the standard library
//   - Deterministic by choice: the random rule takes a seeded source
//
// Quick ASCII picture (mid rule, n = 4):
//
//	f │      ┌──┐
//	  │   ┌──┤  │
//	  │┌──┤  │  │
//	  ├┤  │  │  │
//	  └┴──┴──┴──┴── x
//	   a          b
//
//	go get github.com/katalvlaran/quadrature/quadrature
package quadrature
