package pebbles

import (
	"io"
	"math/big"
	"strconv"
	"strings"
)

// Context is a context for evaluating expressions at a single integer kind.
// It may be reused for any number of evaluations, but it is not safe to use
// a Context concurrently.
type Context struct {
	kind  Kind
	stack []*big.Int
	err   error
}

// NewContext creates an evaluation context for the given kind.
func NewContext(kind Kind) *Context {
	return &Context{kind: kind}
}

// Kind returns the kind the context evaluates at.
func (ctx *Context) Kind() Kind {
	return ctx.kind
}

// Eval evaluates an expression and returns the result as the kind's unsigned
// bit pattern. If an error occurs, e.g. a literal out of the kind's range or
// a division by zero, then the result is nil and ctx.Err returns the error.
func (ctx *Context) Eval(e *Expr) *big.Int {
	switch len(ctx.stack) {
	case 0: // do nothing
	case 1:
		ctx.stack = ctx.stack[:0]
	default:
		panic("pebbles: Eval during Eval")
	}
	err := e.n.eval(ctx)
	ctx.err = err
	if err != nil {
		ctx.stack = ctx.stack[:0]
		return nil
	}
	return ctx.Result()
}

// Result returns the result obtained after evaluating an expression. Panics
// if ctx has not been used to evaluate an expression. Returns nil if an error
// occurred during evaluation.
func (ctx *Context) Result() *big.Int {
	if ctx.err != nil {
		return nil
	}
	switch len(ctx.stack) {
	case 0:
		panic("pebbles: Context.Result called before evaluating any expression")
	case 1:
		return ctx.stack[0]
	default:
		panic("pebbles: inconsistent stack: " + strconv.Itoa(len(ctx.stack)) + " items (bad AST?)")
	}
}

// Err returns the error that occurred while evaluating the last expression
// with ctx, if any.
func (ctx *Context) Err() error {
	return ctx.err
}

// push puts a value on the stack.
func (ctx *Context) push(v *big.Int) {
	ctx.stack = append(ctx.stack, v)
}

// pop removes the top from the stack and returns it.
func (ctx *Context) pop() *big.Int {
	r := ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	return r
}

// top is a shortcut to get the top element of the stack.
func (ctx *Context) top() *big.Int {
	return ctx.stack[len(ctx.stack)-1]
}

// replace swaps the top of the stack for another value.
func (ctx *Context) replace(v *big.Int) {
	ctx.stack[len(ctx.stack)-1] = v
}

// eval pushes the node's value to the context's stack.
func (n *node) eval(ctx *Context) error {
	k := ctx.kind
	switch n.kind {
	case nodeNum:
		v, err := k.FromLiteral(n.lit)
		if err != nil {
			return err
		}
		ctx.push(v)
	case nodeNeg:
		if k.Signed() && n.left.kind == nodeNum {
			// Negation of a literal needs special handling for signed kinds:
			// -MIN isn't representable, so negate in the literal container
			// before narrowing. This makes -128 legal at i8 even though 128
			// alone is not.
			v, err := k.FromLiteral(new(big.Int).Neg(n.left.lit))
			if err != nil {
				return err
			}
			ctx.push(v)
			return nil
		}
		if err := n.left.eval(ctx); err != nil {
			return err
		}
		ctx.replace(k.Neg(ctx.top()))
	case nodeNot:
		if err := n.left.eval(ctx); err != nil {
			return err
		}
		ctx.replace(k.Not(ctx.top()))
	case nodeDiv, nodeRem:
		if err := n.evalsides(ctx); err != nil {
			return err
		}
		r := ctx.pop()
		l := ctx.top()
		var v *big.Int
		var err error
		if n.kind == nodeDiv {
			v, err = k.Div(l, r)
		} else {
			v, err = k.Rem(l, r)
		}
		if err != nil {
			return err
		}
		ctx.replace(v)
	case nodeMul, nodeAdd, nodeSub, nodeShr, nodeShl, nodeAnd, nodeXor, nodeOr:
		if err := n.evalsides(ctx); err != nil {
			return err
		}
		r := ctx.pop()
		l := ctx.top()
		switch n.kind {
		case nodeMul:
			ctx.replace(k.Mul(l, r))
		case nodeAdd:
			ctx.replace(k.Add(l, r))
		case nodeSub:
			ctx.replace(k.Sub(l, r))
		case nodeShr:
			ctx.replace(k.Shr(l, r))
		case nodeShl:
			ctx.replace(k.Shl(l, r))
		case nodeAnd:
			ctx.replace(k.And(l, r))
		case nodeXor:
			ctx.replace(k.Xor(l, r))
		case nodeOr:
			ctx.replace(k.Or(l, r))
		}
	default:
		panic("pebbles: invalid AST node " + n.kind.String())
	}
	return nil
}

// evalsides evaluates both operands of a binary node.
func (n *node) evalsides(ctx *Context) error {
	if err := n.left.eval(ctx); err != nil {
		return err
	}
	return n.right.eval(ctx)
}

// Eval is a shortcut to parse an expression and evaluate it at a kind.
func Eval(src io.RuneScanner, kind Kind, opts ...ParseOption) (*big.Int, error) {
	a, err := Parse(src, opts...)
	if err != nil {
		return nil, err
	}
	ctx := NewContext(kind)
	ctx.Eval(a)
	return ctx.Result(), ctx.Err()
}

// EvalString is a shortcut to parse and evaluate a string expression at a
// kind.
func EvalString(src string, kind Kind, opts ...ParseOption) (*big.Int, error) {
	return Eval(strings.NewReader(src), kind, opts...)
}

// RangeError is an error from converting a literal that is not representable
// at the evaluation kind.
type RangeError struct {
	// Kind is the kind the literal was converted to.
	Kind Kind
	// Lit is the literal container value that did not fit.
	Lit *big.Int
}

func (err *RangeError) Error() string {
	return "literal " + err.Lit.String() + " out of range for " + err.Kind.Name()
}

// DivisionByZeroError is an error from evaluating a division or remainder
// whose right-hand side is zero.
type DivisionByZeroError struct {
	// Op is the operator, "/" or "%".
	Op string
}

func (err *DivisionByZeroError) Error() string {
	if err.Op == "%" {
		return "remainder by zero"
	}
	return "division by zero"
}
