package unitspec_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/quantify/unitspec"
)

// ExampleParseExpression demonstrates the reference-expression grammar:
// products, quotients, and integer or fractional exponents reduce to a
// map of symbols to exact rational powers.
func ExampleParseExpression() {
	container, err := unitspec.ParseExpression("y / x**2 * t^(1/2)")
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	symbols := make([]string, 0, len(container))
	for sym := range container {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)
	for _, sym := range symbols {
		fmt.Printf("%s^%s\n", sym, container[sym])
	}
	// Output:
	// t^1/2
	// x^-2
	// y^1
}

// ExampleFormat demonstrates placeholder substitution in a raw spec
// string before it is parsed.
func ExampleFormat() {
	formatted, err := unitspec.Format("=y / x**{order}", map[string]any{"order": 3})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(formatted)
	// Output:
	// =y / x**3
}
