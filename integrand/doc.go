// SPDX-License-Identifier: MIT

// Package integrand is a small catalogue of named test functions with known
// antiderivatives. Drivers select integrands by name and compare quadrature
// results against Exact(a, b) = F(b) − F(a).
//
// Catalogue (name — f(x) — F(x)):
//
//	square — x²         — x³/3
//	cube   — x³         — x⁴/4
//	linear — 2x + 1     — x² + x
//	sin    — sin x      — −cos x
//	exp    — eˣ         — eˣ
//	inv    — 1/(1 + x)  — ln(1 + x), defined for x > −1
package integrand
