// Package unitspec: reference expression parser.
//
// ParseExpression turns the text after the "=" of a reference declaration
// ("y / x^{order}" once placeholders are substituted) into a Container of
// symbol → exact rational exponent. The grammar is deliberately small:
//
//	expr     := term (('*' | '/') term)*     ; adjacent names multiply
//	term     := NAME (('^' | '**') exponent)?
//	exponent := ['-'] NUMBER
//	          | '(' ['-'] NUMBER ['/' NUMBER] ')'
//
// Division binds to the single following term: "a / b * c" is a·c/b.
// Exponents stay exact: "x^(1/2)" and "x^0.5" both yield 1/2.

package unitspec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/quantify/units"
)

// tokenKind enumerates lexical token classes of the expression grammar.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokName
	tokNumber
	tokMul
	tokDiv
	tokPow
	tokMinus
	tokLParen
	tokRParen
)

// token is one lexical unit with its byte offset (for error context).
type token struct {
	kind tokenKind
	text string
	pos  int
}

// lexer is a zero-allocation scanner over the expression source.
type lexer struct {
	src string
	pos int
}

// next returns the following token, skipping whitespace.
func (lx *lexer) next() (token, error) {
	// 1) Skip whitespace; it only separates tokens.
	for lx.pos < len(lx.src) && (lx.src[lx.pos] == ' ' || lx.src[lx.pos] == '\t') {
		lx.pos++
	}

	// 2) End of input.
	if lx.pos >= len(lx.src) {
		return token{kind: tokEOF, pos: lx.pos}, nil
	}

	start := lx.pos
	c := lx.src[lx.pos]
	switch {
	case c == '*':
		// "**" is an alternate spelling of the exponent operator.
		if lx.pos+1 < len(lx.src) && lx.src[lx.pos+1] == '*' {
			lx.pos += 2

			return token{kind: tokPow, text: "**", pos: start}, nil
		}
		lx.pos++

		return token{kind: tokMul, text: "*", pos: start}, nil
	case c == '/':
		lx.pos++

		return token{kind: tokDiv, text: "/", pos: start}, nil
	case c == '^':
		lx.pos++

		return token{kind: tokPow, text: "^", pos: start}, nil
	case c == '-':
		lx.pos++

		return token{kind: tokMinus, text: "-", pos: start}, nil
	case c == '(':
		lx.pos++

		return token{kind: tokLParen, text: "(", pos: start}, nil
	case c == ')':
		lx.pos++

		return token{kind: tokRParen, text: ")", pos: start}, nil
	case isNameStart(c):
		for lx.pos < len(lx.src) && isNamePart(lx.src[lx.pos]) {
			lx.pos++
		}

		return token{kind: tokName, text: lx.src[start:lx.pos], pos: start}, nil
	case isDigit(c):
		for lx.pos < len(lx.src) && (isDigit(lx.src[lx.pos]) || lx.src[lx.pos] == '.') {
			lx.pos++
		}

		return token{kind: tokNumber, text: lx.src[start:lx.pos], pos: start}, nil
	default:
		return token{}, fmt.Errorf("%w: unexpected character %q at offset %d", ErrExpressionSyntax, string(c), start)
	}
}

// isNameStart reports whether c may begin a symbol name.
func isNameStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// isNamePart reports whether c may continue a symbol name.
func isNamePart(c byte) bool { return isNameStart(c) || isDigit(c) }

// isDigit reports whether c is an ASCII digit.
func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// exprParser is a recursive-descent parser with one token of lookahead.
type exprParser struct {
	lx  lexer
	cur token
}

// ParseExpression parses a reference expression into a Container mapping
// each symbol name to its exact rational exponent. Symbols whose exponents
// cancel to zero are dropped ("x * y / x" yields {y: 1}).
//
// Returns ErrExpressionSyntax (wrapped with offset context) on malformed
// input, including the empty expression.
//
// Complexity: O(len(expr)) time, O(symbols) space.
func ParseExpression(expr string) (Container, error) {
	p := exprParser{lx: lexer{src: expr}}
	if err := p.advance(); err != nil {
		return nil, err
	}

	// An empty reference ("=") declares nothing; reject it outright.
	if p.cur.kind == tokEOF {
		return nil, fmt.Errorf("%w: empty expression %q", ErrExpressionSyntax, strings.TrimSpace(expr))
	}

	container := make(Container)

	// 1) First term is always multiplied in.
	sign := int64(1)
	for {
		if err := p.term(container, sign); err != nil {
			return nil, err
		}

		// 2) Decide how the next term combines, if any.
		switch p.cur.kind {
		case tokEOF:
			return container, nil
		case tokMul:
			sign = 1
			if err := p.advance(); err != nil {
				return nil, err
			}
		case tokDiv:
			sign = -1
			if err := p.advance(); err != nil {
				return nil, err
			}
		case tokName:
			// Implicit multiplication: "J s" == "J * s".
			sign = 1
		default:
			return nil, p.unexpected()
		}
	}
}

// advance consumes one token into p.cur.
func (p *exprParser) advance() error {
	tok, err := p.lx.next()
	if err != nil {
		return err
	}
	p.cur = tok

	return nil
}

// unexpected builds the standard syntax error for the current token.
func (p *exprParser) unexpected() error {
	if p.cur.kind == tokEOF {
		return fmt.Errorf("%w: unexpected end of expression", ErrExpressionSyntax)
	}

	return fmt.Errorf("%w: unexpected %q at offset %d", ErrExpressionSyntax, p.cur.text, p.cur.pos)
}

// term parses NAME (('^'|'**') exponent)? and folds it into container with
// the given sign (+1 for multiplication, -1 for division).
func (p *exprParser) term(container Container, sign int64) error {
	// 1) A term must open with a symbol name.
	if p.cur.kind != tokName {
		return p.unexpected()
	}
	name := p.cur.text
	if err := p.advance(); err != nil {
		return err
	}

	// 2) Optional exponent; defaults to 1.
	exp := units.RatInt(1)
	if p.cur.kind == tokPow {
		if err := p.advance(); err != nil {
			return err
		}
		parsed, err := p.exponent()
		if err != nil {
			return err
		}
		exp = parsed
	}

	// 3) Fold into the container; cancelled symbols are removed so the
	//    container always reflects the reduced expression.
	total := container[name].Add(exp.Mul(units.RatInt(sign)))
	if total.IsZero() {
		delete(container, name)
	} else {
		container[name] = total
	}

	return nil
}

// exponent parses ['-'] NUMBER | '(' ['-'] NUMBER ['/' NUMBER] ')'.
func (p *exprParser) exponent() (units.Rational, error) {
	// 1) Leading sign outside parentheses: "x^-2".
	neg := false
	if p.cur.kind == tokMinus {
		neg = true
		if err := p.advance(); err != nil {
			return units.Rational{}, err
		}
	}

	// 2) Parenthesized rational: "x^(1/2)", "x^(-3/4)".
	if p.cur.kind == tokLParen {
		if err := p.advance(); err != nil {
			return units.Rational{}, err
		}
		if p.cur.kind == tokMinus {
			neg = !neg
			if err := p.advance(); err != nil {
				return units.Rational{}, err
			}
		}
		num, err := p.number()
		if err != nil {
			return units.Rational{}, err
		}
		result := num
		if p.cur.kind == tokDiv {
			if err = p.advance(); err != nil {
				return units.Rational{}, err
			}
			den, errDen := p.number()
			if errDen != nil {
				return units.Rational{}, errDen
			}
			if den.IsZero() {
				return units.Rational{}, fmt.Errorf("%w: zero denominator in exponent", ErrExpressionSyntax)
			}
			result = num.Mul(units.Rat(den.Den(), den.Num()))
		}
		if p.cur.kind != tokRParen {
			return units.Rational{}, p.unexpected()
		}
		if err = p.advance(); err != nil {
			return units.Rational{}, err
		}
		if neg {
			result = result.Neg()
		}

		return result, nil
	}

	// 3) Bare numeric exponent: "x^2", "x^0.5".
	result, err := p.number()
	if err != nil {
		return units.Rational{}, err
	}
	if neg {
		result = result.Neg()
	}

	return result, nil
}

// number consumes a NUMBER token and converts it to an exact Rational:
// "2" → 2, "0.5" → 1/2, "1.25" → 5/4.
func (p *exprParser) number() (units.Rational, error) {
	if p.cur.kind != tokNumber {
		return units.Rational{}, p.unexpected()
	}
	text := p.cur.text
	if err := p.advance(); err != nil {
		return units.Rational{}, err
	}

	intPart, fracPart, hasFrac := strings.Cut(text, ".")
	if intPart == "" || strings.Contains(fracPart, ".") || (hasFrac && fracPart == "") {
		return units.Rational{}, fmt.Errorf("%w: malformed number %q", ErrExpressionSyntax, text)
	}
	num, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return units.Rational{}, fmt.Errorf("%w: malformed number %q", ErrExpressionSyntax, text)
	}
	if !hasFrac {
		return units.RatInt(num), nil
	}

	// Decimal fraction: shift into an exact denominator of 10^len(frac).
	den := int64(1)
	for range fracPart {
		den *= 10
	}
	frac, err := strconv.ParseInt(fracPart, 10, 64)
	if err != nil {
		return units.Rational{}, fmt.Errorf("%w: malformed number %q", ErrExpressionSyntax, text)
	}

	return units.Rat(num*den+frac, den), nil
}
