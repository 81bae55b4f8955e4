// Package unitspec_test: shared test doubles.
// The unitspec pipeline only ever asks a registry to resolve absolute unit
// strings, so a name-allowlist stub is enough here; the full
// dimension-vector registry lives with the quant package tests.
package unitspec_test

import (
	"fmt"

	"github.com/katalvlaran/quantify/units"
)

// stubUnit is an opaque unit identified by its spelling.
type stubUnit struct{ expr string }

func (u stubUnit) Mul(other units.Unit) units.Unit {
	return stubUnit{expr: u.expr + " * " + other.String()}
}

func (u stubUnit) Pow(exp units.Rational) units.Unit {
	return stubUnit{expr: fmt.Sprintf("(%s)^%s", u.expr, exp)}
}

func (u stubUnit) String() string { return u.expr }

// stubQuantity satisfies units.Quantity for the few paths that touch it.
type stubQuantity struct {
	mag  any
	unit units.Unit
}

func (q stubQuantity) Unit() units.Unit { return q.unit }
func (q stubQuantity) Magnitude() any   { return q.mag }

// stubRegistry resolves an allowlist of unit names and rejects the rest.
type stubRegistry struct{ known map[string]bool }

// newStubRegistry builds a registry resolving exactly the given names.
func newStubRegistry(names ...string) *stubRegistry {
	known := make(map[string]bool, len(names))
	for _, name := range names {
		known[name] = true
	}

	return &stubRegistry{known: known}
}

func (r *stubRegistry) Parse(spec string) (units.Unit, error) {
	if !r.known[spec] {
		return nil, fmt.Errorf("unknown unit %q", spec)
	}

	return stubUnit{expr: spec}, nil
}

func (r *stubRegistry) ParseQuantity(expr string) (units.Quantity, error) {
	u, err := r.Parse(expr)
	if err != nil {
		return nil, err
	}

	return stubQuantity{mag: 1.0, unit: u}, nil
}

func (r *stubRegistry) Dimensionless() units.Unit { return stubUnit{expr: "dimensionless"} }

func (r *stubRegistry) Compatible(a, b units.Unit) bool { return a.String() == b.String() }

func (r *stubRegistry) Quantity(magnitude any, u units.Unit) units.Quantity {
	return stubQuantity{mag: magnitude, unit: u}
}

func (r *stubRegistry) Convert(q units.Quantity, target units.Unit) (units.Quantity, error) {
	if !r.Compatible(q.Unit(), target) {
		return nil, fmt.Errorf("cannot convert %s to %s", q.Unit(), target)
	}

	return stubQuantity{mag: q.Magnitude(), unit: target}, nil
}
