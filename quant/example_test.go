package quant_test

import (
	"fmt"

	"github.com/katalvlaran/quantify/quant"
	"github.com/katalvlaran/quantify/units"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleWrap
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A finite-difference derivative dy/dx^order. The dependent variable y
//	and coordinate x carry whatever units the caller supplies; the result
//	must come out in y-units per x-units raised to the order.
//
// Declaration:
//   - unitsIn  = ["=x", "=y"] (bind each argument's units to a symbol)
//   - unitsOut = "=y / x**{order}" (reference expression with a placeholder)
//   - WithDefault("order", 1) (placeholder fallback, overridable per call)
//
// ExampleWrap demonstrates reference specs resolving against the units the
// caller actually passed: meters and seconds in, seconds per square meter out.
func ExampleWrap() {
	reg := newSIRegistry()

	deriv := func(args []any, kw quant.Keywords) (any, error) {
		x := args[0].(float64)
		y := args[1].(float64)
		order := 1
		if v, ok := kw["order"].(int); ok {
			order = v
		}
		out := y
		for i := 0; i < order; i++ {
			out /= x
		}

		return out, nil
	}

	w, err := quant.Wrap(reg, []any{"=x", "=y"}, "=y / x**{order}", deriv,
		quant.WithDefault("order", 1),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	res, err := w.Call(
		[]any{mustQuantity(reg, 2, "m"), mustQuantity(reg, 8, "s")},
		quant.Keywords{"order": 2},
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	qty := res.(units.Quantity)
	fmt.Printf("%v %s\n", qty.Magnitude(), qty.Unit())
	// Output:
	// 2 m^-2 * s
}

// ExampleWrap_alternatives demonstrates alternative unit groups: the group
// whose constants are compatible with the call's arguments is enforced.
func ExampleWrap_alternatives() {
	reg := newSIRegistry()

	identity := func(args []any, kw quant.Keywords) (any, error) {
		return args[0], nil
	}

	w, err := quant.Wrap(reg, "J | K", "J / s | K / s", identity)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for _, arg := range []any{
		mustQuantity(reg, 3, "kJ"),
		mustQuantity(reg, 280, "K"),
	} {
		res, err := w.Call([]any{arg}, nil)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		qty := res.(units.Quantity)
		fmt.Printf("%v %s\n", qty.Magnitude(), qty.Unit())
	}
	// Output:
	// 3000 J * s^-1
	// 280 K * s^-1
}
