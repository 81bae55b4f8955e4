// Package units: collaborator contracts consumed by unitspec and quant.
// This file defines ONLY interfaces. No algorithms, no state, no defaults.
// Implementations live with the embedding application (or the test suite's
// dimension-vector registry); the engine holds a single read-only handle.

package units

// Unit represents one resolved physical unit (absolute, or derived through
// Mul/Pow from the units other arguments were called with).
//
// Implementations must be immutable value-like objects: Mul and Pow return
// fresh units and never modify the receiver. The engine relies on this when
// folding reference declarations, where one definitions entry may be raised
// to several different exponents within a single call.
type Unit interface {
	// Mul returns the product of the receiver and other.
	Mul(other Unit) Unit

	// Pow raises the receiver to the given exact rational exponent.
	Pow(exp Rational) Unit

	// String renders the unit for diagnostics and error messages.
	// The engine never parses the rendered form back.
	String() string
}

// Quantity couples a magnitude with a Unit. The magnitude is deliberately
// untyped (scalar, slice, anything the registry supports); the engine only
// moves it around, it never does arithmetic on it.
type Quantity interface {
	// Unit reports the quantity's own unit.
	Unit() Unit

	// Magnitude returns the bare magnitude, stripped of units metadata.
	Magnitude() any
}

// Registry is the unit-system collaborator: a process-wide, read-mostly
// handle injected into the engine. The engine issues only read operations
// against it (parse, compare, convert); it never registers or mutates
// units.
type Registry interface {
	// Parse resolves a unit string such as "cm" or "J / s" into a Unit.
	Parse(spec string) (Unit, error)

	// ParseQuantity parses a quantity expression such as "5 cm" into a
	// Quantity. A bare unit string parses with magnitude one.
	ParseQuantity(expr string) (Quantity, error)

	// Dimensionless returns the registry's dimensionless unit.
	Dimensionless() Unit

	// Compatible reports whether a quantity in unit a can be converted to
	// unit b (same dimensionality).
	Compatible(a, b Unit) bool

	// Quantity wraps a bare magnitude in a Quantity carrying u.
	Quantity(magnitude any, u Unit) Quantity

	// Convert re-expresses q in the target unit, scaling the magnitude.
	// Implementations should fail on dimensionality mismatch, though the
	// engine checks Compatible first and surfaces its own sentinel.
	Convert(q Quantity, target Unit) (Quantity, error)
}

// Labelled is the labelled-array collaborator: a value whose data may carry
// explicit units metadata (quantified) or merely a plain "units" string
// attribute describing what the bare numbers are assumed to be in.
//
// All methods returning Labelled must return a fresh value; the engine
// never mutates caller-owned data.
type Labelled interface {
	// IsQuantified reports whether the data is already unit-bearing.
	IsQuantified() bool

	// Units returns the explicit units of quantified data. Undefined when
	// IsQuantified is false.
	Units() Unit

	// UnitsAttr returns the plain "units" string attribute and whether one
	// is present. Consulted only when IsQuantified is false.
	UnitsAttr() (string, bool)

	// Quantify attaches u to the data. Fails if already quantified.
	Quantify(u Unit) (Labelled, error)

	// Dequantify strips explicit units, preserving magnitudes and writing
	// the unit back onto the units attribute.
	Dequantify() Labelled

	// Convert re-expresses quantified data in the target unit.
	Convert(target Unit) (Labelled, error)
}
