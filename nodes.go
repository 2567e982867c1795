package pebbles

import (
	"math/big"
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression. A node owns
// its children exclusively; nothing is shared between trees, and a tree is
// never modified after the parser returns it.
type node struct {
	kind nodeKind

	// lit is the literal value for nodeNum. It is held in the widest
	// container any legal literal fits, [0, 2^128); whether it fits the
	// evaluation kind is checked at evaluation time.
	lit *big.Int

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // push lit

	nodeNeg // evaluate left, then negate
	nodeNot // evaluate left, then complement

	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
	nodeRem // evaluate left, rem by right
	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right

	nodeShr // evaluate left, shift right by right
	nodeShl // evaluate left, shift left by right

	nodeAnd // evaluate left, and right
	nodeXor // evaluate left, xor right
	nodeOr  // evaluate left, or right
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeNum:
		return "Num"
	case nodeNeg:
		return "Neg"
	case nodeNot:
		return "Not"
	case nodeMul:
		return "Mul"
	case nodeDiv:
		return "Div"
	case nodeRem:
		return "Rem"
	case nodeAdd:
		return "Add"
	case nodeSub:
		return "Sub"
	case nodeShr:
		return "Shr"
	case nodeShl:
		return "Shl"
	case nodeAnd:
		return "And"
	case nodeXor:
		return "Xor"
	case nodeOr:
		return "Or"
	}
	return "nodeKind(" + strconv.Itoa(int(k)) + ")"
}

// opText returns the operator spelling for a binary node kind.
func (k nodeKind) opText() string {
	switch k {
	case nodeMul:
		return "*"
	case nodeDiv:
		return "/"
	case nodeRem:
		return "%"
	case nodeAdd:
		return "+"
	case nodeSub:
		return "-"
	case nodeShr:
		return ">>"
	case nodeShl:
		return "<<"
	case nodeAnd:
		return "&"
	case nodeXor:
		return "^"
	case nodeOr:
		return "|"
	}
	return ""
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt writes a fully parenthesized rendering of the subtree, with literals
// in decimal regardless of the radix they were written in.
func (n *node) fmt(b *strings.Builder) {
	b.WriteByte('(')
	defer b.WriteByte(')')
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b)
		}
		b.WriteByte('$')
	case nodeNum:
		b.WriteString(n.lit.String())
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b)
	case nodeNot:
		b.WriteByte('~')
		n.left.fmt(b)
	default:
		op := n.kind.opText()
		if op == "" {
			panic("pebbles: invalid node kind " + n.kind.String() + " after writing " + b.String())
		}
		n.left.fmt(b)
		b.WriteString(" " + op + " ")
		n.right.fmt(b)
	}
}
