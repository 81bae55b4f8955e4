// Package unitspec compiles raw unit declarations into an immutable,
// classified specification — the decoration-time half of the quantify
// engine. It runs exactly once per wrapped function; the call-time half
// (selection and standardization) lives in package quant.
//
// 🚀 What does a declaration look like?
//
//	Each positional argument and return value gets one spec:
//		• nil               — pass through unchanged
//		• units.Unit        — a resolved absolute unit object
//		• "cm", "J / s"     — an absolute unit string, resolved via the Registry
//		• "=y / x^{order}"  — a reference: units derived algebraically from
//		  the symbols other arguments bind ("=x" binds symbol x)
//		• "J | K"           — alternatives, selected per call
//
// Reference expression grammar (after {name} placeholder substitution):
//
//	expr     := term (('*' | '/') term)*      ; adjacent names multiply
//	term     := NAME (('^' | '**') exponent)?
//	exponent := ['-'] NUMBER
//	          | '(' ['-'] NUMBER ['/' NUMBER] ')'
//	NAME     := [a-zA-Z_][a-zA-Z0-9_]*
//	NUMBER   := digits ['.' digits]
//
// Exponents are exact rationals: "x^(1/2)", "x^-2" and "x^0.5" all parse
// without floating-point drift.
//
// Compilation pipeline (Compile):
//
//  1. Split every "|"-bearing string into its alternative list; all
//     non-singleton lists must agree on length; singleton input specs
//     broadcast, output specs must match explicitly.
//  2. Transpose into per-alternative Groups, each holding the full spec
//     tuple for that alternative.
//  3. Classify each group's input slots: a reference of exactly one symbol
//     at exponent 1 whose symbol is unclaimed becomes independent (it
//     *defines* that symbol from the actual argument's own units); other
//     references are dependent; absolute specs are constant; nil is
//     ignored.
//  4. Verify every symbol used by a dependent input or reference output is
//     defined by an independent slot of the same group — a broken
//     declaration fails here, at wrap time, never on the Nth call.
//
// Errors (sentinel):
//
//   - ErrNilRegistry            if no Registry handle was supplied.
//   - ErrInvalidSpec            if a spec is not string/Unit/nil.
//   - ErrAlternativeCount       if "|" alternative counts disagree.
//   - ErrNonScalarOutputRequired if inputs declare alternatives but an
//     output slot does not.
//   - ErrUndefinedSymbol        if a reference uses an unbound symbol.
//   - ErrUnknownPlaceholder     if a {name} placeholder has no value.
//   - ErrExpressionSyntax       if a reference expression is malformed.
//
// Example usage:
//
//	spec, err := unitspec.Compile(reg,
//	    []any{"=x", "=y"},        // input declarations
//	    "=y / x^{order}",          // output declaration (scalar)
//	    map[string]any{"order": 1} // placeholder defaults
//	)
//	if err != nil {
//	    log.Fatal(err) // decoration-time failure, by contract
//	}
package unitspec
