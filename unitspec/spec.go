// Package unitspec: single-spec parsing and placeholder substitution.
// Parse turns one raw specification into a Descriptor; it is invoked at
// decoration time (against the placeholder defaults) and again on every
// call (against the merged per-call placeholder values), so it must stay
// pure and allocation-light.

package unitspec

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/katalvlaran/quantify/units"
)

// placeholderRe matches {name}-style placeholders with identifier names,
// the only substitution form the declaration grammar admits.
var placeholderRe = regexp.MustCompile(`\{[a-zA-Z_]\w*\}`)

// Parse converts one raw specification into a Descriptor.
//
// Accepted shapes for raw:
//   - nil        — pass-through; Descriptor.IsNone is set.
//   - units.Unit — an already-resolved absolute unit.
//   - string     — formatted against fmtArgs first ({name} placeholders),
//     then: a string containing "=" is a reference expression (everything
//     after the first "=" parses under the expression grammar); any other
//     string resolves through reg.Parse into an absolute unit.
//
// Errors:
//
//   - ErrInvalidSpec        for any other dynamic type.
//   - ErrUnknownPlaceholder if a placeholder has no value in fmtArgs.
//   - ErrExpressionSyntax   for malformed reference expressions.
//   - ErrNilRegistry        if an absolute string must resolve but reg is nil.
//   - registry errors, wrapped with the offending string, otherwise.
//
// Complexity: O(len(spec)) plus one registry lookup for absolute strings.
func Parse(reg units.Registry, raw any, fmtArgs map[string]any) (Descriptor, error) {
	switch spec := raw.(type) {
	case nil:
		return Descriptor{IsNone: true}, nil
	case units.Unit:
		return Descriptor{Raw: spec, Unit: spec}, nil
	case string:
		formatted, err := Format(spec, fmtArgs)
		if err != nil {
			return Descriptor{}, err
		}

		// A "=" anywhere marks a reference; the text after the first "="
		// is the algebraic combination of symbols.
		if _, expr, isRef := strings.Cut(formatted, "="); isRef {
			container, errExpr := ParseExpression(expr)
			if errExpr != nil {
				return Descriptor{}, errExpr
			}

			return Descriptor{Raw: raw, Container: container, IsRef: true}, nil
		}

		if reg == nil {
			return Descriptor{}, ErrNilRegistry
		}
		unit, errParse := reg.Parse(strings.TrimSpace(formatted))
		if errParse != nil {
			return Descriptor{}, fmt.Errorf("unitspec: resolving %q: %w", formatted, errParse)
		}

		return Descriptor{Raw: raw, Unit: unit}, nil
	default:
		return Descriptor{}, fmt.Errorf("%w: got %T", ErrInvalidSpec, raw)
	}
}

// Format substitutes every {name} placeholder in spec with its value from
// fmtArgs (rendered through %v). A placeholder without a value yields
// ErrUnknownPlaceholder naming it. Text without placeholders is returned
// unchanged.
func Format(spec string, fmtArgs map[string]any) (string, error) {
	if !strings.Contains(spec, "{") {
		return spec, nil
	}

	var missing string
	formatted := placeholderRe.ReplaceAllStringFunc(spec, func(match string) string {
		name := match[1 : len(match)-1]
		value, ok := fmtArgs[name]
		if !ok {
			if missing == "" {
				missing = name
			}

			return match
		}

		return fmt.Sprintf("%v", value)
	})
	if missing != "" {
		return "", fmt.Errorf("%w: {%s} in %q", ErrUnknownPlaceholder, missing, spec)
	}

	return formatted, nil
}
