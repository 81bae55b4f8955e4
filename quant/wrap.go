// Package quant: the wrapper factory and the per-call pipeline.
// Wrap compiles the declaration once and closes over the immutable result;
// Call replays the nine-stage pipeline against fresh per-call state.

package quant

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/quantify/units"
	"github.com/katalvlaran/quantify/unitspec"
)

// Wrapped is a function wrapped with unit enforcement. The compiled
// specification, the registry handle and the options are fixed at Wrap
// time and never mutated afterward; every Call allocates its own state,
// so a Wrapped is safe for concurrent use provided the registry is safe
// for concurrent reads.
type Wrapped struct {
	reg  units.Registry
	spec *unitspec.Compiled
	fn   Target
	opts Options
}

// Wrap builds the unit-enforcing wrapper around fn.
//
// unitsIn and unitsOut accept nil, a single specification, or a sequence
// of specifications; see package unitspec for the grammar ("cm",
// "=y / x^{order}", "J | K", a units.Unit, nil for pass-through).
//
// Decoration-time work — parsing, alternative grouping, dependency
// classification, symbol-closure validation — runs here exactly once. Any
// declaration error aborts Wrap immediately (unitspec sentinels), so a
// broken declaration fails at setup time, not on first use.
//
// Options:
//
//   - WithoutConversion() — assert compatibility, keep magnitudes.
//   - WithStrict()        — forbid plain values where units are enforced.
//   - WithQuantify()      — hand fn unit-bearing values.
//   - WithDefault(k, v) / WithDefaults(m) — {name} placeholder defaults.
//
// Complexity: O(groups × slots × len(spec)); no per-call cost is paid here.
func Wrap(reg units.Registry, unitsIn, unitsOut any, fn Target, opts ...Option) (*Wrapped, error) {
	// 1) Validate collaborators before any parsing work.
	if reg == nil {
		return nil, ErrNilRegistry
	}
	if fn == nil {
		return nil, ErrNilTarget
	}

	// 2) Gather options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Compile the declaration once; this is the only per-function
	//    state and it is immutable from here on.
	spec, err := unitspec.Compile(reg, unitsIn, unitsOut, cfg.Defaults)
	if err != nil {
		return nil, err
	}

	return &Wrapped{reg: reg, spec: spec, fn: fn, opts: cfg}, nil
}

// NumIn reports the number of declared input slots.
func (w *Wrapped) NumIn() int { return w.spec.NumIn }

// NumOut reports the number of declared output slots.
func (w *Wrapped) NumOut() int { return w.spec.NumOut }

// ScalarOut reports whether the output was declared as a single item.
func (w *Wrapped) ScalarOut() bool { return w.spec.ScalarOut }

// callState is the transient record of one call: selected group, symbol
// definitions discovered from the independent arguments, merged
// placeholder values, and whether any input carried explicit units.
// Allocated fresh per call; nothing here is shared or reused.
type callState struct {
	group           int
	definitions     map[string]units.Unit
	fmtArgs         map[string]any
	quantifyResults bool
}

// Call invokes the wrapped function with standardized arguments and
// standardizes its results.
//
// Pipeline:
//
//  1. Arity: at least NumIn positional arguments (ErrArityMismatch).
//  2. Select the alternative group from the actual argument units.
//  3. Standardize independent arguments, binding each symbol to the units
//     its argument was called with and recording whether any input
//     carried explicit units.
//  4. Merge per-call keywords over wrap-time placeholder defaults
//     (call-time values win; defaults fill the gaps).
//  5. Standardize dependent and constant arguments against resolved or
//     declared units.
//  6. Invoke fn with the standardized arguments; every keyword passes
//     through untouched.
//  7. Normalize the result: scalar declarations reject sequences
//     (ErrUnexpectedTuple); sequence declarations require at least NumOut
//     values (ErrArityMismatch).
//  8. Standardize each declared return slot; outputs carry explicit units
//     exactly when any input did.
//  9. Return a single value for scalar declarations, a []any otherwise;
//     undeclared extra arguments and results pass through unchanged.
func (w *Wrapped) Call(args []any, kw Keywords) (any, error) {
	// 1) Arity check against the declared input slots.
	if len(args) < w.spec.NumIn {
		return nil, fmt.Errorf("%w: expected %d positional arguments, got %d", ErrArityMismatch, w.spec.NumIn, len(args))
	}

	// Fresh per-call state; the keyword merge is pure, so computing it
	// here keeps every later stage free of map plumbing.
	st := &callState{
		definitions: make(map[string]units.Unit),
		fmtArgs:     mergeFormatArgs(w.opts.Defaults, kw),
	}

	// 2) Pick the alternative group.
	st.group = selectGroup(w.reg, w.spec, args, st.fmtArgs)
	grp := &w.spec.Groups[st.group]

	// 3) Standardize independent arguments first: their own units define
	//    the symbols every dependent slot resolves against. Sorted symbol
	//    order keeps the walk deterministic.
	newArgs := make([]any, len(args))
	copy(newArgs, args)
	for _, sym := range sortedSymbols(grp.Independent) {
		idx := grp.Independent[sym]
		standardized, discovered, hadUnits, err := standardizeIndependent(w.reg, args[idx], w.opts.Quantify)
		if err != nil {
			return nil, err
		}
		newArgs[idx] = standardized
		st.definitions[sym] = discovered
		st.quantifyResults = st.quantifyResults || hadUnits
	}

	// 4) already merged; 5) dependent then constant slots.
	for _, idx := range append(append([]int{}, grp.Dependent...), grp.Constant...) {
		standardized, hadUnits, err := standardizeDependent(
			w.reg, args[idx], grp.In[idx], st,
			w.opts.Convert, w.opts.Strict, w.opts.Quantify,
		)
		if err != nil {
			return nil, err
		}
		newArgs[idx] = standardized
		st.quantifyResults = st.quantifyResults || hadUnits
	}

	// 6) Invoke the wrapped function.
	result, err := w.fn(newArgs, kw)
	if err != nil {
		return nil, err
	}

	// 7) Normalize the result shape.
	results, err := w.normalizeResult(result)
	if err != nil {
		return nil, err
	}

	// 8) Standardize declared return slots. Strict never applies to
	//    outputs; quantification mirrors the inputs.
	for j := 0; j < w.spec.NumOut; j++ {
		standardized, _, errOut := standardizeDependent(
			w.reg, results[j], grp.Out[j], st,
			w.opts.Convert, false, st.quantifyResults,
		)
		if errOut != nil {
			return nil, errOut
		}
		results[j] = standardized
	}

	// 9) Restore the declared shape.
	if w.spec.ScalarOut {
		return results[0], nil
	}

	return results, nil
}

// normalizeResult coerces the target's return value into a mutable slice
// of at least one element, honoring the shape fixed at wrap time.
func (w *Wrapped) normalizeResult(result any) ([]any, error) {
	if tuple, ok := result.([]any); ok {
		if w.spec.ScalarOut {
			return nil, fmt.Errorf("%w: got %d values", ErrUnexpectedTuple, len(tuple))
		}
		if len(tuple) < w.spec.NumOut {
			return nil, fmt.Errorf("%w: expected %d return values, got %d", ErrArityMismatch, w.spec.NumOut, len(tuple))
		}
		normalized := make([]any, len(tuple))
		copy(normalized, tuple)

		return normalized, nil
	}

	// A bare value is a one-element sequence for declaration purposes.
	if !w.spec.ScalarOut && w.spec.NumOut > 1 {
		return nil, fmt.Errorf("%w: expected %d return values, got 1", ErrArityMismatch, w.spec.NumOut)
	}

	return []any{result}, nil
}

// mergeFormatArgs overlays call-time keyword values onto the wrap-time
// placeholder defaults. Only keys that were declared as defaults
// participate in formatting; everything else is the target's business.
func mergeFormatArgs(defaults map[string]any, kw Keywords) map[string]any {
	merged := make(map[string]any, len(defaults))
	for name, value := range defaults {
		merged[name] = value
	}
	for name, value := range kw {
		if _, declared := defaults[name]; declared {
			merged[name] = value
		}
	}

	return merged
}

// sortedSymbols returns the map's keys in ascending order.
func sortedSymbols(independent map[string]int) []string {
	symbols := make([]string, 0, len(independent))
	for sym := range independent {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	return symbols
}
