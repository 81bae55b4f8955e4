// Package quant: the Standardizer. Exactly one value against exactly one
// declared unit per invocation, in one of two modes:
//
//   - independent: the value supplies its own units (explicit quantity,
//     labelled data, or plain number assumed dimensionless); the
//     discovered units feed the call's symbol definitions.
//   - dependent: a declared unit — absolute, or a reference resolved by
//     folding definitions[symbol]^exponent — is enforced on the value.
//
// Both modes dequantify their output to a bare magnitude unless the
// quantify flag asks for the unit-bearing form.

package quant

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/quantify/units"
	"github.com/katalvlaran/quantify/unitspec"
)

// standardizeIndependent quantifies arg using its own units (dimensionless
// when it has none) and reports the discovered units plus whether the
// original value already carried explicit units.
func standardizeIndependent(reg units.Registry, arg any, quantify bool) (any, units.Unit, bool, error) {
	v, err := wrapValue(reg, arg)
	if err != nil {
		return nil, nil, false, err
	}

	switch v.kind {
	case kindQuantity:
		// 1) Explicit quantity: its unit defines the symbol as-is.
		if quantify {
			return v.qty, v.qty.Unit(), true, nil
		}

		return v.qty.Magnitude(), v.qty.Unit(), true, nil

	case kindLabelled:
		// 2) Labelled data: explicit units count as unit-bearing; a bare
		//    units attribute supplies the symbol definition without
		//    making the value "explicitly" unit-bearing.
		lab := v.lab
		hadUnits := lab.IsQuantified()
		if !hadUnits {
			attrUnit := reg.Dimensionless()
			if attr, ok := lab.UnitsAttr(); ok {
				attrUnit, err = reg.Parse(attr)
				if err != nil {
					return nil, nil, false, fmt.Errorf("quant: parsing units attribute %q: %w", attr, err)
				}
			}
			lab, err = lab.Quantify(attrUnit)
			if err != nil {
				return nil, nil, false, fmt.Errorf("quant: quantifying labelled value: %w", err)
			}
		}
		discovered := lab.Units()
		if quantify {
			return lab, discovered, hadUnits, nil
		}

		return lab.Dequantify(), discovered, hadUnits, nil

	default:
		// 3) Plain value: assumed dimensionless.
		dimensionless := reg.Dimensionless()
		if quantify {
			return reg.Quantity(v.raw, dimensionless), dimensionless, false, nil
		}

		return v.raw, dimensionless, false, nil
	}
}

// standardizeDependent enforces one declared unit (absolute or reference)
// on arg. A nil spec is a no-op. Reports whether the value carried
// explicit units going in.
func standardizeDependent(
	reg units.Registry,
	arg any,
	rawSpec any,
	st *callState,
	convert, strict, quantify bool,
) (any, bool, error) {
	// 1) Parse the declared unit against the merged placeholder values.
	desc, err := unitspec.Parse(reg, rawSpec, st.fmtArgs)
	if err != nil {
		return nil, false, err
	}
	if desc.IsNone {
		return arg, false, nil
	}

	// 2) Resolve the enforcement target.
	target, err := resolveTarget(reg, desc, st.definitions)
	if err != nil {
		return nil, false, err
	}

	v, err := wrapValue(reg, arg)
	if err != nil {
		return nil, false, err
	}

	// 3) Enforce per value kind.
	switch v.kind {
	case kindQuantity:
		qty := v.qty
		if !reg.Compatible(qty.Unit(), target) {
			return nil, false, fmt.Errorf("%w: cannot enforce %s on value in %s", ErrIncompatibleUnits, target, qty.Unit())
		}
		if convert {
			qty, err = reg.Convert(qty, target)
			if err != nil {
				return nil, false, fmt.Errorf("quant: converting to %s: %w", target, err)
			}
		}
		if quantify {
			return qty, true, nil
		}

		return qty.Magnitude(), true, nil

	case kindLabelled:
		return standardizeLabelled(reg, v.lab, target, convert, strict, quantify)

	default:
		// Plain value: assume it is already in the declared units (the
		// documented non-strict semantics); strict mode forbids this.
		if strict {
			return nil, false, fmt.Errorf("%w: plain value where %s is enforced", ErrStrictQuantityRequired, target)
		}
		if quantify {
			return reg.Quantity(v.raw, target), false, nil
		}

		return v.raw, false, nil
	}
}

// standardizeLabelled is the labelled-data arm of dependent mode: promote
// a units attribute to explicit units first, then convert or assert, then
// attach the target for attribute-less data unless strict forbids it.
func standardizeLabelled(
	reg units.Registry,
	lab units.Labelled,
	target units.Unit,
	convert, strict, quantify bool,
) (any, bool, error) {
	// 1) A bare units attribute promotes to explicit units up front.
	if !lab.IsQuantified() {
		if attr, ok := lab.UnitsAttr(); ok {
			attrUnit, err := reg.Parse(attr)
			if err != nil {
				return nil, false, fmt.Errorf("quant: parsing units attribute %q: %w", attr, err)
			}
			lab, err = lab.Quantify(attrUnit)
			if err != nil {
				return nil, false, fmt.Errorf("quant: quantifying labelled value: %w", err)
			}
		}
	}

	var hadUnits bool
	switch {
	case lab.IsQuantified():
		hadUnits = true
		if !reg.Compatible(lab.Units(), target) {
			return nil, false, fmt.Errorf("%w: cannot enforce %s on value in %s", ErrIncompatibleUnits, target, lab.Units())
		}
		if convert {
			converted, err := lab.Convert(target)
			if err != nil {
				return nil, false, fmt.Errorf("quant: converting to %s: %w", target, err)
			}
			lab = converted
		}
	case strict:
		return nil, false, fmt.Errorf("%w: labelled value without units where %s is enforced", ErrStrictQuantityRequired, target)
	default:
		assigned, err := lab.Quantify(target)
		if err != nil {
			return nil, false, fmt.Errorf("quant: quantifying labelled value: %w", err)
		}
		lab = assigned
	}

	if quantify {
		return lab, hadUnits, nil
	}

	return lab.Dequantify(), hadUnits, nil
}

// resolveTarget turns a non-none Descriptor into the concrete unit to
// enforce: the absolute unit itself, or the product of
// definitions[symbol]^exponent over the reference container. Symbols are
// folded in sorted order for determinism.
//
// A missing definition is an internal-consistency fault (wrap-time
// validation guarantees closure), surfaced as ErrUnresolvedReference.
func resolveTarget(reg units.Registry, desc unitspec.Descriptor, definitions map[string]units.Unit) (units.Unit, error) {
	if !desc.IsRef {
		return desc.Unit, nil
	}

	symbols := make([]string, 0, len(desc.Container))
	for sym := range desc.Container {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	target := reg.Dimensionless()
	for _, sym := range symbols {
		def, ok := definitions[sym]
		if !ok {
			return nil, fmt.Errorf("%w: %q in spec %v", ErrUnresolvedReference, sym, desc.Raw)
		}
		target = target.Mul(def.Pow(desc.Container[sym]))
	}

	return target, nil
}
