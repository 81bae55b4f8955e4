// Package unitspec: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// unitspec package. All functions MUST return these sentinels and tests
// MUST check them via errors.Is. Context is added with
// fmt.Errorf("%w: ...", ErrX) at the raising site only.
//
// Errors in this package are decoration-time by contract: they surface
// from Compile/Parse when a function is wrapped. Call-time re-parsing can
// reproduce them only when a per-call placeholder value rewrites the spec
// text into something the wrap-time validation never saw.

package unitspec

import "errors"

var (
	// ErrNilRegistry indicates that a nil units.Registry handle was passed
	// where absolute unit strings must be resolved.
	ErrNilRegistry = errors.New("unitspec: registry is nil")

	// ErrInvalidSpec indicates that a specification value is neither a
	// string, a units.Unit, nor nil.
	ErrInvalidSpec = errors.New("unitspec: specification must be a string, units.Unit, or nil")

	// ErrAlternativeCount indicates that two "|"-separated specifications
	// declared different numbers of alternatives.
	ErrAlternativeCount = errors.New("unitspec: non-singleton alternative counts must be equal")

	// ErrNonScalarOutputRequired indicates that input specifications
	// declare alternatives but an output specification does not; output
	// slots never broadcast.
	ErrNonScalarOutputRequired = errors.New("unitspec: alternative input specs require alternative output specs")

	// ErrUndefinedSymbol indicates that a reference expression uses a
	// symbol no independent argument of the same group defines.
	ErrUndefinedSymbol = errors.New("unitspec: reference symbol not defined by any independent argument")

	// ErrUnknownPlaceholder indicates that a {name} placeholder has no
	// value among the supplied defaults and keyword arguments.
	ErrUnknownPlaceholder = errors.New("unitspec: no value for format placeholder")

	// ErrExpressionSyntax indicates a malformed reference expression.
	ErrExpressionSyntax = errors.New("unitspec: malformed reference expression")
)
