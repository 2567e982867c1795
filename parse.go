package pebbles

import (
	"io"
	"math/big"
	"strings"
)

// Expr = num | Neg | Not | Mul | Div | Rem | Add | Sub | Shr | Shl | And | Xor | Or | '(' Expr ')'
// Neg = '-' Expr
// Not = '~' Expr
// Mul = Expr '*' Expr
// Div = Expr '/' Expr
// Rem = Expr '%' Expr
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Shr = Expr '>>' Expr
// Shl = Expr '<<' Expr
// And = Expr '&' Expr
// Xor = Expr '^' Expr
// Or = Expr '|' Expr

// Expr is a parsed expression. It is immutable; one parsed expression may be
// evaluated any number of times, at any integer kind.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// litMax is one past the largest value the literal container holds, 2^128.
var litMax = new(big.Int).Lsh(big.NewInt(1), 128)

// Parse parses an expression so it can be evaluated with a context. The given
// options are applied in order.
func Parse(src io.RuneScanner, opts ...ParseOption) (*Expr, error) {
	scan := lex(src)
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	n, err := parseterm(scan, &p, exprprec)
	if err != nil {
		return nil, err
	}
	switch tok := scan.must(); tok.kind {
	case tokenEOF:
		if n == nil {
			return nil, &EmptyExpressionError{Col: tok.pos, End: ""}
		}
	case tokenClose:
		return nil, &BracketError{Col: tok.pos, Right: tok.text}
	default:
		return nil, &TrailingTokenError{Col: tok.pos, Token: tok.text}
	}
	return &Expr{n: n}, nil
}

// ParseString is a shortcut to parse an expression from a string.
func ParseString(src string, opts ...ParseOption) (*Expr, error) {
	return Parse(strings.NewReader(src), opts...)
}

// parseterm parses a single term. If there is no error, then parseterm pushes
// the last token it scans, including EOF. If the input is an empty
// subexpression, the result is nil with no error; callers must create an error
// in contexts where empty subexpressions are illegal.
func parseterm(scan *lexer, p *parsectx, until operator) (*node, error) {
	n, err := parselhs(scan, p, until)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	for {
		tok, err := scan.next(p.wseof)
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenOp:
			// Binary operator.
			prec := binop(tok.text)
			if prec.op == nodeNone {
				return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: false}
			}
			if !prec.moreBinding(until) {
				scan.push(tok)
				return n, nil
			}
			rhs, err := parseterm(scan, p, prec)
			if err != nil {
				return nil, err
			}
			if rhs == nil {
				end := scan.must()
				return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
			}
			n = &node{kind: prec.op, left: n, right: rhs}
		case tokenNum, tokenOpen:
			// A literal or a parenthesized term directly after a complete
			// term, e.g. 10 (1) or 1 2. There is no implicit multiplication
			// in this grammar.
			return nil, &TrailingTokenError{Col: tok.pos, Token: tok.text}
		case tokenClose, tokenEOF:
			// End of expression.
			scan.push(tok)
			return n, nil
		default:
			panic("pebbles: unknown token: " + tok.String())
		}
	}
}

// parselhs parses the first component of a term. I.e., operators are unary,
// any encountered token must be valid as the start of a subexpression, and
// whitespace normally lexed as EOF is ignored.
func parselhs(scan *lexer, p *parsectx, until operator) (*node, error) {
	// Don't use EOF whitespace for LHS.
	tok, err := scan.next("")
	if err != nil {
		return nil, err
	}
	var n *node
	switch tok.kind {
	case tokenNum:
		lit, err := litparse(tok)
		if err != nil {
			return nil, err
		}
		n = &node{kind: nodeNum, lit: lit}
	case tokenOp:
		// Unary operator.
		prec := unop(tok.text)
		if prec.op == nodeNone {
			return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: true}
		}
		rhs, err := parseterm(scan, p, prec)
		if err != nil {
			return nil, err
		}
		if rhs == nil {
			end := scan.must()
			return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
		}
		n = &node{kind: prec.op, left: rhs}
	case tokenOpen:
		rhs, err := parseterm(scan, p, exprprec)
		if err != nil {
			return nil, err
		}
		end := scan.must()
		if end.kind != tokenClose {
			// Only EOF ends a term without a close parenthesis.
			return nil, &BracketError{Col: end.pos, Left: tok.text}
		}
		if rhs == nil {
			return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
		}
		n = rhs
	case tokenClose:
		// Let the caller decide whether this is an empty parenthesized
		// expression or a stray close parenthesis.
		scan.push(tok)
		return nil, nil
	case tokenEOF:
		scan.push(tok)
		return nil, nil
	default:
		panic("pebbles: unknown token: " + tok.String())
	}
	return n, nil
}

// litparse converts a literal token to its value in the literal container.
// The lexer has already validated the digits against the radix.
func litparse(tok lexToken) (*big.Int, error) {
	text, base := tok.text, 10
	if len(text) > 2 {
		switch text[:2] {
		case "0x", "0X":
			text, base = text[2:], 16
		case "0o", "0O":
			text, base = text[2:], 8
		}
	}
	v, ok := new(big.Int).SetString(text, base)
	if !ok || v.CmpAbs(litMax) >= 0 {
		return nil, &LiteralError{Col: tok.pos, Text: tok.text}
	}
	return v, nil
}

// String creates a string representation of the parsed expression, fully
// parenthesized.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b)
	return b.String()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of nodeNone.
func binop(text string) operator {
	switch text {
	case "|":
		return operator{1, false, nodeOr}
	case "^":
		return operator{2, false, nodeXor}
	case "&":
		return operator{3, false, nodeAnd}
	case ">>":
		return operator{4, false, nodeShr}
	case "<<":
		return operator{4, false, nodeShl}
	case "+":
		return operator{5, false, nodeAdd}
	case "-":
		return operator{5, false, nodeSub}
	case "*":
		return operator{6, false, nodeMul}
	case "/":
		return operator{6, false, nodeDiv}
	case "%":
		return operator{6, false, nodeRem}
	default:
		return operator{}
	}
}

// unop gets a unary operator for a token string. If there is no such unary
// operator, then the result has an op of nodeNone.
func unop(text string) operator {
	switch text {
	case "-":
		return operator{7, true, nodeNeg}
	case "~":
		return operator{7, true, nodeNot}
	default:
		return operator{}
	}
}

// exprprec is the precedence required to parse an entire subexpression.
var exprprec = operator{-128, true, nodeNone}
