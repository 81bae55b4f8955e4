// Package quantify enforces and converts physical units on the arguments
// and return values of ordinary functions — declare the units once, then
// call with quantities, labelled series, or plain numbers interchangeably.
//
// 🚀 What is quantify?
//
//	A small, synchronous, registry-agnostic engine that brings together:
//		• Absolute unit declarations: "cm", "J / s", or a resolved Unit object
//		• Relational declarations: "=y / x^{order}" — units derived from
//		  the units the *other* arguments were called with
//		• Alternatives: "J | K" — mutually exclusive declarations selected
//		  per call from the actual argument units
//		• Bidirectional standardization: inputs are quantified on the way
//		  in, outputs mirror whether any input carried explicit units
//
// ✨ Why choose quantify?
//
//   - Registry-agnostic – the unit system and the labelled-array protocol
//     are injected collaborators, never vendored assumptions
//   - Fail-fast guarantees – a broken declaration aborts at wrap time,
//     never on the Nth call
//   - Pure Go – no cgo, no hidden deps
//   - Zero shared state – every call derives its state from its own
//     arguments; wrapped functions are safe for concurrent use
//
// Under the hood, everything is organized under three subpackages:
//
//	units/    — collaborator contracts (Registry, Unit, Quantity, Labelled)
//	            and exact rational exponents
//	unitspec/ — declaration pipeline: spec parsing, alternative grouping,
//	            dependency classification (runs once per wrap)
//	quant/    — call-time engine: group selection, standardization and the
//	            wrapper factory
//
// Quick example — an nth-derivative wrapper whose output units follow its
// input units:
//
//	w, err := quant.Wrap(reg,
//	    []any{"=x", "=y"}, "=y / x^{order}",
//	    deriv,
//	    quant.WithDefault("order", 1),
//	)
//	// deriv(1 m, 1 s, order=2) ⇒ 1 s / m²
//
// Dive into the package docs of quant and unitspec for the full grammar,
// option set, and error inventory.
//
//	go get github.com/katalvlaran/quantify
package quantify
