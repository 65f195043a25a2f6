package sx

import "math"

// kind distinguishes the four node variants. The variant set is closed:
// every traversal in this package switches exhaustively over it.
type kind uint8

const (
	kindConst kind = iota
	kindSymbol
	kindUnary
	kindBinary
)

// node is the shared unit of the expression graph. Nodes are immutable once
// constructed; operand slots are raw pointers so that pointer identity is
// both the structural-equality fast path and the key for external traversal
// state. A node may have any number of parents (the graph is a DAG); cycles
// are impossible because operands always exist before their parent.
type node struct {
	kind kind
	op   Op      // OpConst / OpParam for leaves
	val  float64 // constants only
	name string  // symbols only
	dep  [2]*node
}

func (n *node) ndeps() int {
	switch n.kind {
	case kindUnary:
		return 1
	case kindBinary:
		return 2
	}
	return 0
}

func (n *node) hasDep() bool { return n.kind == kindUnary || n.kind == kindBinary }

func (n *node) isConst() bool { return n.kind == kindConst }

func (n *node) isZero() bool { return n.kind == kindConst && n.val == 0 }

func (n *node) isOne() bool { return n.kind == kindConst && n.val == 1 }

func (n *node) isMinusOne() bool { return n.kind == kindConst && n.val == -1 }

func (n *node) isOp(op Op) bool { return n.hasDep() && n.op == op }

// maxExactInt64 is 2^63 as a float64. Integral values in
// [-maxExactInt64, maxExactInt64) convert to int64 exactly; 2^63 itself is
// representable as a float64 but not as an int64, so the upper bound is
// strict.
const maxExactInt64 = float64(1 << 63)

// isInteger reports whether the node is a constant with a finite integral
// value that converts to int64 without loss. By canonicalization such
// constants always live in the integer cache, so this predicate agrees with
// the construction-time classification; integral values outside the int64
// range (1e300, 2^63) are not "integer" here.
func (n *node) isInteger() bool {
	return n.kind == kindConst && !math.IsNaN(n.val) && !math.IsInf(n.val, 0) &&
		n.val == math.Trunc(n.val) && n.val >= -maxExactInt64 && n.val < maxExactInt64
}
