// Package quant_test: shared test doubles.
// siRegistry is a small dimension-vector unit system: every unit is a map
// of base dimensions to exact rational exponents plus a float64 scale
// relative to the base representation. It reuses the unitspec expression
// grammar for parsing, so "J / s" and "m^2" work out of the box.
package quant_test

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/quantify/units"
	"github.com/katalvlaran/quantify/unitspec"
)

// ------------------------------------------------------------------------
// Units.
// ------------------------------------------------------------------------

// siUnit is a dimension vector with a scale. name is kept only when the
// unit came straight out of the registry table, purely for display.
type siUnit struct {
	name  string
	dims  map[string]units.Rational
	scale float64
}

func (u *siUnit) Mul(other units.Unit) units.Unit {
	o := other.(*siUnit)
	if len(u.dims) == 0 && u.scale == 1 {
		return o
	}
	if len(o.dims) == 0 && o.scale == 1 {
		return u
	}
	dims := make(map[string]units.Rational, len(u.dims)+len(o.dims))
	for d, e := range u.dims {
		dims[d] = e
	}
	for d, e := range o.dims {
		sum := dims[d].Add(e)
		if sum.IsZero() {
			delete(dims, d)
		} else {
			dims[d] = sum
		}
	}

	return &siUnit{dims: dims, scale: u.scale * o.scale}
}

func (u *siUnit) Pow(exp units.Rational) units.Unit {
	if exp.IsOne() {
		return u
	}
	dims := make(map[string]units.Rational, len(u.dims))
	for d, e := range u.dims {
		dims[d] = e.Mul(exp)
	}

	return &siUnit{dims: dims, scale: math.Pow(u.scale, exp.Float64())}
}

func (u *siUnit) String() string {
	if u.name != "" {
		return u.name
	}
	if len(u.dims) == 0 {
		return "dimensionless"
	}
	names := make([]string, 0, len(u.dims))
	for d := range u.dims {
		names = append(names, d)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, d := range names {
		exp := u.dims[d]
		switch {
		case exp.IsOne():
			parts = append(parts, d)
		case exp.Den() == 1:
			parts = append(parts, fmt.Sprintf("%s^%s", d, exp))
		default:
			parts = append(parts, fmt.Sprintf("%s^(%s)", d, exp))
		}
	}

	return strings.Join(parts, " * ")
}

// sameDims reports dimensional equality, ignoring scale.
func sameDims(a, b *siUnit) bool {
	if len(a.dims) != len(b.dims) {
		return false
	}
	for d, e := range a.dims {
		if !b.dims[d].Equal(e) {
			return false
		}
	}

	return true
}

// ------------------------------------------------------------------------
// Quantities.
// ------------------------------------------------------------------------

type siQuantity struct {
	mag  any
	unit *siUnit
}

func (q *siQuantity) Unit() units.Unit { return q.unit }
func (q *siQuantity) Magnitude() any   { return q.mag }

// scaleMagnitude multiplies a float64 or []float64 magnitude by factor.
func scaleMagnitude(mag any, factor float64) (any, error) {
	switch m := mag.(type) {
	case float64:
		return m * factor, nil
	case []float64:
		scaled := make([]float64, len(m))
		for i, v := range m {
			scaled[i] = v * factor
		}

		return scaled, nil
	default:
		return nil, fmt.Errorf("unsupported magnitude %T", mag)
	}
}

// ------------------------------------------------------------------------
// Registry.
// ------------------------------------------------------------------------

type siRegistry struct {
	table map[string]*siUnit
}

// newSIRegistry builds the fixed unit table the tests run against.
func newSIRegistry() *siRegistry {
	dim := func(name string, d string, exp units.Rational, scale float64) *siUnit {
		return &siUnit{name: name, dims: map[string]units.Rational{d: exp}, scale: scale}
	}

	return &siRegistry{table: map[string]*siUnit{
		"m":             dim("m", "m", units.RatInt(1), 1),
		"cm":            dim("cm", "m", units.RatInt(1), 0.01),
		"km":            dim("km", "m", units.RatInt(1), 1000),
		"s":             dim("s", "s", units.RatInt(1), 1),
		"min":           dim("min", "s", units.RatInt(1), 60),
		"J":             dim("J", "J", units.RatInt(1), 1),
		"kJ":            dim("kJ", "J", units.RatInt(1), 1000),
		"K":             dim("K", "K", units.RatInt(1), 1),
		"dimensionless": {name: "dimensionless", dims: map[string]units.Rational{}, scale: 1},
	}}
}

func (r *siRegistry) Parse(spec string) (units.Unit, error) {
	if u, ok := r.table[spec]; ok {
		return u, nil
	}
	container, err := unitspec.ParseExpression(spec)
	if err != nil {
		return nil, fmt.Errorf("unknown unit %q: %w", spec, err)
	}
	names := make([]string, 0, len(container))
	for name := range container {
		names = append(names, name)
	}
	sort.Strings(names)
	result := units.Unit(r.Dimensionless())
	for _, name := range names {
		base, ok := r.table[name]
		if !ok {
			return nil, fmt.Errorf("unknown unit %q", name)
		}
		result = result.Mul(base.Pow(container[name]))
	}

	return result, nil
}

func (r *siRegistry) ParseQuantity(expr string) (units.Quantity, error) {
	trimmed := strings.TrimSpace(expr)

	// Leading numeric magnitude, if any.
	i := 0
	for i < len(trimmed) && (trimmed[i] == '.' || trimmed[i] == '-' || ('0' <= trimmed[i] && trimmed[i] <= '9')) {
		i++
	}
	mag := 1.0
	if i > 0 {
		if _, err := fmt.Sscanf(trimmed[:i], "%g", &mag); err != nil {
			return nil, fmt.Errorf("bad magnitude in %q", expr)
		}
	}
	rest := strings.TrimSpace(trimmed[i:])
	if rest == "" {
		return &siQuantity{mag: mag, unit: r.Dimensionless().(*siUnit)}, nil
	}
	u, err := r.Parse(rest)
	if err != nil {
		return nil, err
	}

	return &siQuantity{mag: mag, unit: u.(*siUnit)}, nil
}

func (r *siRegistry) Dimensionless() units.Unit { return r.table["dimensionless"] }

func (r *siRegistry) Compatible(a, b units.Unit) bool {
	return sameDims(a.(*siUnit), b.(*siUnit))
}

func (r *siRegistry) Quantity(magnitude any, u units.Unit) units.Quantity {
	return &siQuantity{mag: magnitude, unit: u.(*siUnit)}
}

func (r *siRegistry) Convert(q units.Quantity, target units.Unit) (units.Quantity, error) {
	from := q.Unit().(*siUnit)
	to := target.(*siUnit)
	if !sameDims(from, to) {
		return nil, fmt.Errorf("cannot convert %s to %s", from, to)
	}
	mag, err := scaleMagnitude(q.Magnitude(), from.scale/to.scale)
	if err != nil {
		return nil, err
	}

	return &siQuantity{mag: mag, unit: to}, nil
}

// mustQuantity builds a quantity from a magnitude and unit name.
func mustQuantity(reg *siRegistry, mag float64, unitName string) units.Quantity {
	u, err := reg.Parse(unitName)
	if err != nil {
		panic(err)
	}

	return reg.Quantity(mag, u)
}

// mustUnit resolves a unit name through the registry.
func mustUnit(reg *siRegistry, name string) units.Unit {
	u, err := reg.Parse(name)
	if err != nil {
		panic(err)
	}

	return u
}

// ------------------------------------------------------------------------
// Labelled series.
// ------------------------------------------------------------------------

// testSeries is a minimal labelled-array collaborator: a float64 slice
// with string attributes, optionally quantified.
type testSeries struct {
	data       []float64
	attrs      map[string]string
	quantified bool
	unit       units.Unit
}

// newSeries builds an unquantified series; unitsAttr == "" omits the
// units attribute entirely.
func newSeries(data []float64, unitsAttr string) *testSeries {
	attrs := map[string]string{}
	if unitsAttr != "" {
		attrs["units"] = unitsAttr
	}

	return &testSeries{data: data, attrs: attrs}
}

func (s *testSeries) clone() *testSeries {
	data := make([]float64, len(s.data))
	copy(data, s.data)
	attrs := make(map[string]string, len(s.attrs))
	for k, v := range s.attrs {
		attrs[k] = v
	}

	return &testSeries{data: data, attrs: attrs, quantified: s.quantified, unit: s.unit}
}

func (s *testSeries) IsQuantified() bool { return s.quantified }

func (s *testSeries) Units() units.Unit { return s.unit }

func (s *testSeries) UnitsAttr() (string, bool) {
	v, ok := s.attrs["units"]

	return v, ok
}

func (s *testSeries) Quantify(u units.Unit) (units.Labelled, error) {
	if s.quantified {
		return nil, fmt.Errorf("series already quantified")
	}
	out := s.clone()
	out.quantified = true
	out.unit = u
	delete(out.attrs, "units")

	return out, nil
}

func (s *testSeries) Dequantify() units.Labelled {
	if !s.quantified {
		return s
	}
	out := s.clone()
	out.quantified = false
	out.attrs["units"] = s.unit.String()
	out.unit = nil

	return out
}

func (s *testSeries) Convert(target units.Unit) (units.Labelled, error) {
	if !s.quantified {
		return nil, fmt.Errorf("cannot convert unquantified series")
	}
	from := s.unit.(*siUnit)
	to := target.(*siUnit)
	if !sameDims(from, to) {
		return nil, fmt.Errorf("cannot convert %s to %s", from, to)
	}
	out := s.clone()
	factor := from.scale / to.scale
	for i := range out.data {
		out.data[i] *= factor
	}
	out.unit = target

	return out, nil
}
