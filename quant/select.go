// Package quant: alternative-group selection. Runs once per call, before
// any standardization, and is deliberately side-effect-free: it inspects
// only the constant-role slots and never raises.

package quant

import (
	"github.com/katalvlaran/quantify/units"
	"github.com/katalvlaran/quantify/unitspec"
)

// selectGroup picks the alternative group to standardize against: the
// first group, in declaration order, whose every constant-role comparison
// between the actual argument's inherent units and the declared absolute
// unit is either vacuous (either side has no units) or compatible.
//
// Fallback policy: when no group satisfies this, the *last* declared group
// is used. The hard failure is deferred to the Standardizer, which raises
// ErrIncompatibleUnits when it actually enforces the fallback group's
// constant units against an incompatible value — selection itself stays
// error-free, and declarations whose fallback group happens to succeed
// (e.g. nil-heavy ones) keep working.
func selectGroup(reg units.Registry, spec *unitspec.Compiled, args []any, fmtArgs map[string]any) int {
	for g := range spec.Groups {
		if constantsMatch(reg, &spec.Groups[g], args, fmtArgs) {
			return g
		}
	}

	return len(spec.Groups) - 1
}

// constantsMatch reports whether every constant slot of grp is vacuous or
// compatible with the corresponding argument's inherent units.
func constantsMatch(reg units.Registry, grp *unitspec.Group, args []any, fmtArgs map[string]any) bool {
	for _, idx := range grp.Constant {
		// 1) Inherent units of the actual argument; nil means vacuous.
		actual := inherentOf(reg, args[idx])
		if actual == nil {
			continue
		}

		// 2) Declared absolute unit of this slot; a spec that fails to
		//    parse under the current placeholder values is vacuous here
		//    and left for the Standardizer to reject.
		desc, err := unitspec.Parse(reg, grp.In[idx], fmtArgs)
		if err != nil || desc.IsNone || desc.Unit == nil {
			continue
		}

		if !reg.Compatible(actual, desc.Unit) {
			return false
		}
	}

	return true
}

// inherentOf derives the units a call argument carries on its own, nil
// when it carries none (or cannot be classified — selection never fails).
func inherentOf(reg units.Registry, arg any) units.Unit {
	v, err := wrapValue(reg, arg)
	if err != nil {
		return nil
	}

	return v.inherentUnits(reg)
}
