// Package unitspec: declaration compiler.
// Compile runs the full decoration-time pipeline — alternative grouping,
// broadcasting, transposition, dependency classification and symbol-closure
// validation — exactly once per wrapped function. The result is immutable.

package unitspec

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/quantify/units"
)

// Compile parses and classifies a full input/output unit declaration.
//
// unitsIn and unitsOut each accept nil, a single specification, or a
// sequence of specifications ([]any or []string); a specification is a
// string (possibly "|"-separated alternatives, possibly with {name}
// placeholders resolved against defaults), a units.Unit, or nil.
//
// Pipeline (all failures abort compilation immediately — a broken
// declaration must fail at wrap time, never on first use):
//
//  1. Normalize unitsIn/unitsOut into slices; record whether the output
//     was declared scalar.
//  2. Split "|" alternatives per slot; all non-singleton counts must be
//     equal (ErrAlternativeCount); output slots must carry alternatives
//     explicitly whenever any slot does (ErrNonScalarOutputRequired).
//  3. Broadcast singleton input slots and transpose into per-alternative
//     Groups.
//  4. Classify each group's input slots into independent / dependent /
//     constant and verify that every symbol referenced by a dependent
//     input or reference output is bound by an independent slot of the
//     same group (ErrUndefinedSymbol).
//
// Complexity: O(groups × slots × len(spec)).
func Compile(reg units.Registry, unitsIn, unitsOut any, defaults map[string]any) (*Compiled, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}

	// 1) Normalize the declaration shape.
	in, _ := specList(unitsIn)
	out, scalarOut := specList(unitsOut)

	// 2) Split alternatives and validate counts.
	slots := make([][]any, 0, len(in)+len(out))
	groupCount := 1
	for _, raw := range append(append([]any{}, in...), out...) {
		alternatives, err := splitAlternatives(raw)
		if err != nil {
			return nil, err
		}
		if len(alternatives) > 1 {
			if groupCount > 1 && len(alternatives) != groupCount {
				return nil, fmt.Errorf("%w: got both %d and %d", ErrAlternativeCount, groupCount, len(alternatives))
			}
			groupCount = len(alternatives)
		}
		slots = append(slots, alternatives)
	}

	// Output slots never broadcast: a declaration with alternatives must
	// say explicitly what each alternative returns.
	if groupCount > 1 {
		for j := range out {
			if len(slots[len(in)+j]) == 1 {
				return nil, fmt.Errorf("%w: output spec %v is singleton across %d alternatives",
					ErrNonScalarOutputRequired, out[j], groupCount)
			}
		}
	}

	// 3) Broadcast singleton input slots and transpose into groups.
	compiled := &Compiled{
		Groups:    make([]Group, groupCount),
		ScalarOut: scalarOut,
		NumIn:     len(in),
		NumOut:    len(out),
	}
	for g := 0; g < groupCount; g++ {
		grp := Group{
			In:          make([]any, len(in)),
			Out:         make([]any, len(out)),
			Independent: make(map[string]int),
		}
		for i := range in {
			grp.In[i] = pick(slots[i], g)
		}
		for j := range out {
			grp.Out[j] = pick(slots[len(in)+j], g)
		}

		// 4) Classify and validate this group.
		if err := classify(reg, &grp, defaults); err != nil {
			return nil, err
		}
		compiled.Groups[g] = grp
	}

	return compiled, nil
}

// specList normalizes a declaration into a slice of raw specs, reporting
// whether it was declared as a single item (scalar) rather than a sequence.
func specList(raw any) ([]any, bool) {
	switch v := raw.(type) {
	case nil:
		return nil, true
	case []any:
		return v, false
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}

		return out, false
	default:
		return []any{v}, true
	}
}

// splitAlternatives expands one raw slot spec into its "|" alternatives.
// Non-string specs are singletons by construction; strings split and trim.
// Type validation happens here first, so Compile rejects bad shapes before
// any classification work.
func splitAlternatives(raw any) ([]any, error) {
	switch v := raw.(type) {
	case nil:
		return []any{nil}, nil
	case units.Unit:
		return []any{v}, nil
	case string:
		parts := strings.Split(v, "|")
		alternatives := make([]any, len(parts))
		for i, part := range parts {
			alternatives[i] = strings.TrimSpace(part)
		}

		return alternatives, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidSpec, raw)
	}
}

// pick returns the g-th alternative of a slot, broadcasting singletons.
func pick(alternatives []any, g int) any {
	if len(alternatives) == 1 {
		return alternatives[0]
	}

	return alternatives[g]
}

// classify partitions one group's input slots into independent, dependent
// and constant roles, then verifies symbol closure for every reference
// (dependent inputs and reference outputs alike).
func classify(reg units.Registry, grp *Group, defaults map[string]any) error {
	// 1) Role assignment over input slots, in declaration order: the first
	//    single-symbol exponent-1 reference claims its symbol; later
	//    references to a claimed symbol become dependent.
	containers := make([]Container, len(grp.In))
	for idx, raw := range grp.In {
		desc, err := Parse(reg, raw, defaults)
		if err != nil {
			return err
		}
		switch {
		case desc.IsNone:
			// Pass-through slot: no role.
		case desc.IsRef:
			containers[idx] = desc.Container
			if sym, ok := soleSymbol(desc.Container); ok {
				if _, claimed := grp.Independent[sym]; !claimed {
					grp.Independent[sym] = idx

					continue
				}
			}
			grp.Dependent = append(grp.Dependent, idx)
		default:
			grp.Constant = append(grp.Constant, idx)
		}
	}

	// 2) Closure check: dependent inputs may only combine symbols bound by
	//    this group's independent slots.
	for _, idx := range grp.Dependent {
		if sym, unbound := firstUnbound(containers[idx], grp.Independent); unbound {
			return fmt.Errorf("%w: %q in input spec %v", ErrUndefinedSymbol, sym, grp.In[idx])
		}
	}

	// 3) Same check for reference outputs, so an unbound output symbol
	//    fails at wrap time instead of surfacing mid-call.
	for _, raw := range grp.Out {
		desc, err := Parse(reg, raw, defaults)
		if err != nil {
			return err
		}
		if !desc.IsRef {
			continue
		}
		if sym, unbound := firstUnbound(desc.Container, grp.Independent); unbound {
			return fmt.Errorf("%w: %q in output spec %v", ErrUndefinedSymbol, sym, raw)
		}
	}

	return nil
}

// soleSymbol reports the single symbol of a container holding exactly one
// entry at exponent 1 — the shape that makes a reference independent.
func soleSymbol(container Container) (string, bool) {
	if len(container) != 1 {
		return "", false
	}
	for sym, exp := range container {
		if exp.IsOne() {
			return sym, true
		}
	}

	return "", false
}

// firstUnbound returns the alphabetically first symbol of container not
// bound in independent; unbound is false when every symbol is bound.
// Sorting keeps error messages deterministic.
func firstUnbound(container Container, independent map[string]int) (sym string, unbound bool) {
	symbols := make([]string, 0, len(container))
	for name := range container {
		symbols = append(symbols, name)
	}
	sort.Strings(symbols)
	for _, name := range symbols {
		if _, ok := independent[name]; !ok {
			return name, true
		}
	}

	return "", false
}
