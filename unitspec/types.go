// Package unitspec: compiled-specification data model.
// Everything here is produced once by Compile (or Parse) and treated as
// immutable afterward; package quant reads these values on every call but
// never writes them.

package unitspec

import "github.com/katalvlaran/quantify/units"

// Container maps reference symbol names to their exact rational exponents.
// "=y / x^2" parses to {y: 1, x: -2}. Symbols whose exponents cancel to
// zero are dropped.
type Container map[string]units.Rational

// Descriptor is one parsed unit alternative.
//
// Exactly one of the following shapes holds:
//   - IsNone             — the spec was nil: pass the value through.
//   - IsRef              — a reference expression; Container holds the
//     symbol → exponent mapping, Unit is nil.
//   - neither            — an absolute unit; Unit holds the resolved unit,
//     Container is nil.
//
// Raw preserves the original spec value for error messages.
type Descriptor struct {
	Raw       any
	Container Container
	Unit      units.Unit
	IsRef     bool
	IsNone    bool
}

// Group is one consistent assignment across all arguments and return
// values for a single "|" alternative index.
//
// In and Out hold the raw spec (string, units.Unit, or nil) per slot for
// this alternative; the call-time engine re-parses them against the
// per-call placeholder values.
//
// Classification of input slots:
//   - Independent maps a symbol name to the argument index whose own
//     call-time units define that symbol.
//   - Dependent lists argument indices whose declared unit is a reference
//     expression combining symbols (ascending).
//   - Constant lists argument indices with an absolute declared unit
//     (ascending); these drive alternative-group selection.
//
// nil specs appear in no role: they pass through.
type Group struct {
	In  []any
	Out []any

	Independent map[string]int
	Dependent   []int
	Constant    []int
}

// Compiled is the immutable product of Compile: every alternative group,
// plus the fixed shape of the declaration. It is computed exactly once per
// wrapped function and never mutated afterward.
type Compiled struct {
	// Groups holds one Group per "|" alternative, in declaration order.
	// Always at least one.
	Groups []Group

	// ScalarOut records whether the return spec was declared as a single
	// item rather than a sequence; fixed at compile time, never inferred
	// per call.
	ScalarOut bool

	// NumIn and NumOut are the declared input and output slot counts.
	NumIn  int
	NumOut int
}
