// Package quant defines the wrapper-facing types, functional options and
// sentinel errors for the call-time engine.
//
// Errors (sentinel):
//
//   - ErrNilRegistry, ErrNilTarget — wrap-time misuse.
//   - ErrArityMismatch, ErrUnexpectedTuple — call shape violations.
//   - ErrIncompatibleUnits, ErrStrictQuantityRequired — enforcement
//     failures against the actual values.
//   - ErrUnresolvedReference — internal-consistency fault, see doc.go.
//
// Error timing contract: Wrap never catches its own errors (a broken
// declaration aborts setup); Call propagates standardization errors
// unmodified — unit mismatches are not transient, so there are no retries
// and no silent coercion beyond the documented strict/convert semantics.

package quant

import "errors"

// Sentinel errors returned by Wrap and Wrapped.Call.
var (
	// ErrNilRegistry indicates that a nil units.Registry was passed to Wrap.
	ErrNilRegistry = errors.New("quant: registry is nil")

	// ErrNilTarget indicates that a nil target function was passed to Wrap.
	ErrNilTarget = errors.New("quant: target function is nil")

	// ErrArityMismatch indicates too few positional arguments for the
	// declared input slots, or too few return values for the declared
	// output slots. The wrapping message reports expected vs. got.
	ErrArityMismatch = errors.New("quant: arity mismatch")

	// ErrUnexpectedTuple indicates that a scalar-output declaration
	// received a sequence of return values.
	ErrUnexpectedTuple = errors.New("quant: got a sequence of return values, expected one value")

	// ErrIncompatibleUnits indicates that an enforced unit is incompatible
	// with a value that carries explicit units.
	ErrIncompatibleUnits = errors.New("quant: incompatible units")

	// ErrStrictQuantityRequired indicates that strict mode rejected a
	// value without explicit units where a unit is enforced.
	ErrStrictQuantityRequired = errors.New("quant: unit-bearing values are required in strict mode")

	// ErrUnresolvedReference indicates that a reference unit names a
	// symbol with no definition for the current call. Wrap-time
	// validation makes this unreachable; it is surfaced as an
	// internal-consistency fault, not a user error.
	ErrUnresolvedReference = errors.New("quant: reference symbol has no unit definition")
)

// Keywords carries per-call keyword arguments. Keys matching a wrap-time
// placeholder default override that default for {name} substitution; all
// keys, recognized or not, pass through to the target untouched.
type Keywords map[string]any

// Target is the shape of a wrappable function: positional arguments
// (already standardized when invoked through Wrapped.Call) plus the
// pass-through keywords. The result may be a single value or a []any
// sequence; which one is legal is fixed by the output declaration.
type Target func(args []any, kw Keywords) (any, error)

// Options configures a wrapped function.
//
// Convert  – convert explicit-unit values to the declared units; when
// false, compatibility is asserted but magnitudes stay untouched.
// Strict   – forbid plain (unit-less) values wherever a unit is enforced.
// Quantify – hand the target unit-bearing values instead of bare
// magnitudes; output quantification always mirrors the inputs regardless.
// Defaults – wrap-time values for {name} placeholders, overridable per
// call through Keywords.
type Options struct {
	Convert  bool
	Strict   bool
	Quantify bool
	Defaults map[string]any
}

// Option represents a functional option for configuring Wrap.
type Option func(*Options)

// DefaultOptions returns the documented defaults: conversion on, strict
// off, quantify off, no placeholder defaults.
func DefaultOptions() Options {
	return Options{
		Convert:  true,
		Strict:   false,
		Quantify: false,
		Defaults: make(map[string]any),
	}
}

// WithoutConversion keeps explicit-unit magnitudes untouched, merely
// asserting compatibility with the declared units.
func WithoutConversion() Option {
	return func(o *Options) {
		o.Convert = false
	}
}

// WithStrict forbids plain, non-unit-bearing values for every slot that
// enforces a unit; such calls fail with ErrStrictQuantityRequired.
func WithStrict() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

// WithQuantify makes the target receive unit-bearing values (quantities
// and quantified labelled data) instead of bare magnitudes. Whether the
// *outputs* carry units still depends solely on whether any input did.
func WithQuantify() Option {
	return func(o *Options) {
		o.Quantify = true
	}
}

// WithDefault sets the wrap-time default for one {name} placeholder.
func WithDefault(name string, value any) Option {
	return func(o *Options) {
		o.Defaults[name] = value
	}
}

// WithDefaults sets wrap-time defaults for several placeholders at once.
// The map is copied; later options may override individual entries.
func WithDefaults(values map[string]any) Option {
	return func(o *Options) {
		for name, value := range values {
			o.Defaults[name] = value
		}
	}
}
