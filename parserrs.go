package pebbles

import "strconv"

// OperatorError is an error indicating an operator token that cannot be used
// in the position it appeared, like the second + of 10 ++ 1. It implements
// InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
	// Unary is whether the parser expected a unary operator at the time.
	Unary bool
}

func (err *OperatorError) Error() string {
	s := "binary"
	if err.Unary {
		s = "unary"
	}
	return errpos(err.Col, "unknown "+s+" operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating unbalanced parentheses in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the token that revealed the imbalance.
	Col int
	// Left is the unclosed open parenthesis, if any.
	Left string
	// Right is the unopened close parenthesis, if any.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close paren "+err.Right+" with no open paren")
	}
	return errpos(err.Col, "open paren "+err.Left+" with no close paren")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// TrailingTokenError is an error indicating a token where no token can
// continue the expression, like the second literal of 1 2. It implements
// InputError.
type TrailingTokenError struct {
	// Col is the position of the token.
	Col int
	// Token is the text of the token.
	Token string
}

func (err *TrailingTokenError) Error() string {
	return errpos(err.Col, "unexpected token "+strconv.Quote(err.Token)+" after complete expression")
}

func (err *TrailingTokenError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty subexpression.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// LiteralError is an error indicating a literal too large for the literal
// container, i.e. at least 2^128. It implements InputError.
type LiteralError struct {
	// Col is the position of the literal.
	Col int
	// Text is the literal's text.
	Text string
}

func (err *LiteralError) Error() string {
	return errpos(err.Col, "literal "+err.Text+" out of range")
}

func (err *LiteralError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*TrailingTokenError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*LiteralError)(nil)
	_ InputError = (*LexError)(nil)
)
