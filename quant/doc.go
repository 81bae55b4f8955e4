// Package quant wraps ordinary functions so that their arguments and
// return values are enforced, converted and standardized against a unit
// declaration — the call-time half of the quantify engine. The
// decoration-time half (parsing, grouping, classification) lives in
// package unitspec and runs exactly once, inside Wrap.
//
// 🚀 What happens on a call?
//
//	Each Wrapped.Call executes a fixed nine-stage pipeline:
//	 1. arity check against the declared input slots
//	 2. alternative-group selection from the actual argument units
//	 3. independent arguments standardized first, binding each symbol to
//	    the units that argument was actually called with
//	 4. per-call keyword values merged over wrap-time placeholder defaults
//	 5. dependent and constant arguments standardized against resolved or
//	    declared units
//	 6. the wrapped function invoked with the standardized arguments
//	 7. result normalized (scalar vs. sequence, fixed at wrap time)
//	 8. declared return slots standardized; outputs carry explicit units
//	    exactly when any input did
//	 9. scalar or sequence returned; undeclared extras pass through
//
// ✨ Key behaviors:
//
//   - Quantities, labelled series, quantity-expression strings ("5 cm")
//     and plain numbers are accepted interchangeably; plain numbers are
//     assumed to already be in the declared units.
//   - WithoutConversion asserts compatibility without touching magnitudes.
//   - WithStrict rejects plain numbers wherever a unit is enforced.
//   - WithQuantify hands the wrapped function unit-bearing values instead
//     of bare magnitudes; output quantification still mirrors the inputs.
//   - No state survives a call: selection, definitions and quantification
//     flags are rebuilt from the current arguments every time, so a
//     Wrapped is safe for concurrent use over a concurrent-read-safe
//     registry.
//
// Errors (sentinel):
//
//   - ErrNilRegistry / ErrNilTarget   at wrap time.
//   - ErrArityMismatch                too few arguments or return values.
//   - ErrUnexpectedTuple              scalar declaration, sequence result.
//   - ErrIncompatibleUnits            enforced unit vs. explicit units.
//   - ErrStrictQuantityRequired       strict mode, value without units.
//   - ErrUnresolvedReference          internal-consistency fault (a
//     reference symbol with no definition; unreachable given wrap-time
//     validation).
//
// Example usage:
//
//	w, err := quant.Wrap(reg,
//	    []any{"=x", "=y"}, "=y / x^{order}",
//	    func(args []any, kw quant.Keywords) (any, error) {
//	        // plain float64 math; units are already standardized
//	        return derive(args[0].(float64), args[1].(float64), kw), nil
//	    },
//	    quant.WithDefault("order", 1),
//	)
//	if err != nil {
//	    log.Fatal(err) // broken declarations fail here, not on call
//	}
//	out, err := w.Call([]any{xMeters, ySeconds}, quant.Keywords{"order": 2})
//	// out carries units s / m² when the inputs carried units
package quant
