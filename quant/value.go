// Package quant: closed variant over the heterogeneous value kinds the
// engine accepts. Every argument and return value is wrapped exactly once
// into a value, and all further dispatch happens over its kind — there are
// no type-inspection chains anywhere else in the package.

package quant

import (
	"fmt"

	"github.com/katalvlaran/quantify/units"
)

// valueKind enumerates the closed set of value shapes.
type valueKind int

const (
	// kindRaw is a plain magnitude with no units metadata (number, slice,
	// anything the registry's Quantity constructor accepts).
	kindRaw valueKind = iota

	// kindQuantity is an explicit units.Quantity (including one parsed
	// from a quantity-expression string such as "5 cm").
	kindQuantity

	// kindLabelled is a labelled value implementing units.Labelled.
	kindLabelled
)

// value is one wrapped argument or result. Exactly one of raw/qty/lab is
// meaningful, per kind.
type value struct {
	kind valueKind
	raw  any
	qty  units.Quantity
	lab  units.Labelled
}

// wrapValue classifies v into the closed variant. Strings are quantity
// expressions and parse through the registry ("5 cm", or a bare unit
// string with magnitude one).
func wrapValue(reg units.Registry, v any) (value, error) {
	switch t := v.(type) {
	case units.Quantity:
		return value{kind: kindQuantity, qty: t}, nil
	case units.Labelled:
		return value{kind: kindLabelled, lab: t}, nil
	case string:
		qty, err := reg.ParseQuantity(t)
		if err != nil {
			return value{}, fmt.Errorf("quant: parsing quantity expression %q: %w", t, err)
		}

		return value{kind: kindQuantity, qty: qty}, nil
	default:
		return value{kind: kindRaw, raw: v}, nil
	}
}

// inherentUnits derives the units v carries on its own: a quantity's unit,
// a labelled value's explicit units or parsed units attribute. Returns nil
// for plain values and for unparseable attributes — selection treats nil
// as vacuous and defers any hard failure to standardization.
func (v value) inherentUnits(reg units.Registry) units.Unit {
	switch v.kind {
	case kindQuantity:
		return v.qty.Unit()
	case kindLabelled:
		if v.lab.IsQuantified() {
			return v.lab.Units()
		}
		if attr, ok := v.lab.UnitsAttr(); ok {
			if u, err := reg.Parse(attr); err == nil {
				return u
			}
		}

		return nil
	default:
		return nil
	}
}
