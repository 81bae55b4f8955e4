// Package units: exact rational exponents.
// Rational is the one concrete type this package ships. It backs reference
// expression containers (symbol → exponent) and Unit.Pow, where exactness
// matters: 1/3 must stay 1/3, not 0.333….

package units

import (
	"fmt"
	"strconv"
)

// Rational is an exact rational number with a gcd-normalized int64
// numerator and strictly positive denominator. The zero value is 0/1 and
// is ready to use.
//
// Normalization invariants (maintained by every constructor and method):
//   - den > 0 (sign lives on the numerator)
//   - gcd(|num|, den) == 1
//   - zero is canonically 0/1
type Rational struct {
	num int64
	den int64
}

// Rat constructs the normalized rational num/den.
// Panics if den == 0 — a zero denominator is a programmer error, never a
// data condition, matching the panic policy for invalid construction.
func Rat(num, den int64) Rational {
	if den == 0 {
		panic("units: zero denominator in Rat")
	}

	return normalize(num, den)
}

// RatInt constructs the rational n/1.
func RatInt(n int64) Rational {
	return Rational{num: n, den: 1}
}

// normalize reduces num/den to canonical form.
func normalize(num, den int64) Rational {
	// 1) Move the sign onto the numerator.
	if den < 0 {
		num, den = -num, -den
	}

	// 2) Canonical zero.
	if num == 0 {
		return Rational{num: 0, den: 1}
	}

	// 3) Reduce by the greatest common divisor.
	g := gcd(abs(num), den)

	return Rational{num: num / g, den: den / g}
}

// gcd computes the greatest common divisor of two positive int64 values
// via the Euclidean algorithm.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// abs returns |n| for int64.
func abs(n int64) int64 {
	if n < 0 {
		return -n
	}

	return n
}

// Num returns the normalized numerator (carries the sign).
func (r Rational) Num() int64 {
	if r.den == 0 { // zero value: 0/1
		return 0
	}

	return r.num
}

// Den returns the normalized denominator (always positive).
func (r Rational) Den() int64 {
	if r.den == 0 { // zero value: 0/1
		return 1
	}

	return r.den
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{num: -r.Num(), den: r.Den()}
}

// Add returns r + other, normalized.
func (r Rational) Add(other Rational) Rational {
	return normalize(r.Num()*other.Den()+other.Num()*r.Den(), r.Den()*other.Den())
}

// Mul returns r * other, normalized.
func (r Rational) Mul(other Rational) Rational {
	return normalize(r.Num()*other.Num(), r.Den()*other.Den())
}

// Equal reports exact equality (well-defined because both sides are
// normalized).
func (r Rational) Equal(other Rational) bool {
	return r.Num() == other.Num() && r.Den() == other.Den()
}

// IsZero reports r == 0.
func (r Rational) IsZero() bool { return r.Num() == 0 }

// IsOne reports r == 1.
func (r Rational) IsOne() bool { return r.Num() == 1 && r.Den() == 1 }

// Float64 returns the nearest float64 (for registries whose scale math is
// floating-point; container bookkeeping stays exact).
func (r Rational) Float64() float64 {
	return float64(r.Num()) / float64(r.Den())
}

// String renders "n" for integers and "n/d" otherwise.
func (r Rational) String() string {
	if r.Den() == 1 {
		return strconv.FormatInt(r.Num(), 10)
	}

	return fmt.Sprintf("%d/%d", r.Num(), r.Den())
}
