// Package units declares the collaborator contracts the quantify engine is
// built against, plus the exact rational exponents shared by every other
// package in the module.
//
// The engine never implements unit arithmetic itself: parsing unit strings,
// testing compatibility, converting magnitudes and attaching units to
// labelled data are all delegated to an injected Registry and to values that
// satisfy Quantity or Labelled. This package is the single place those
// obligations are written down.
//
// Contracts:
//
//   - Unit      — one resolved physical unit; closed under Mul and Pow.
//   - Quantity  — a magnitude coupled with a Unit.
//   - Registry  — parses unit strings and quantity expressions, constructs
//     quantities, tests compatibility, converts.
//   - Labelled  — a value carrying optional units metadata alongside its
//     data (the labelled-array protocol): quantify, dequantify, convert,
//     plus a plain "units" string attribute as a fallback source of
//     inherent units.
//
// Concurrency: the engine only ever *reads* through a Registry. A Registry
// implementation must therefore be safe for concurrent read access if
// wrapped functions are to be called from multiple goroutines; no other
// synchronization is required anywhere in this module.
//
// Rational exponents:
//
//	Reference declarations such as "=y / x^(1/2)" demand exact fractional
//	exponents — floating-point drift in an exponent silently corrupts the
//	derived unit. Rational stores a gcd-normalized int64 numerator and
//	positive denominator and is used both by the unitspec expression parser
//	and by Unit.Pow.
//
// Errors (sentinel):
//
//   - None. This package declares contracts and one value type; errors
//     belong to the packages that do the work (unitspec, quant) and to the
//     Registry implementation itself.
package units
