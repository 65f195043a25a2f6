package sx

import (
	"fmt"
	"math"
)

// Expr is a value handle onto one node of an expression graph. Copying an
// Expr shares the node; the garbage collector reclaims nodes when the last
// handle (and the last parent node) lets go, so a reachable node can never
// dangle.
//
// The zero Expr references nothing; using it panics. Obtain expressions
// from a Context (Lit, Symbol, ...) or by combining existing ones.
type Expr struct {
	c *Context
	n *node
}

func (x Expr) node() *node {
	if x.n == nil {
		panic("sx: use of zero Expr")
	}
	return x.n
}

func (x Expr) ctx() *Context {
	x.node()
	return x.c
}

// Context returns the context the expression belongs to.
func (x Expr) Context() *Context { return x.ctx() }

// Is reports pointer identity: both handles reference the very same node.
// For constants this is exact value equality by canonicalization.
func (x Expr) Is(y Expr) bool { return x.node() == y.node() }

// sameContext guards binary operations; mixing graphs from two contexts is
// a programming error.
func sameContext(x, y Expr) *Context {
	c := x.ctx()
	if y.ctx() != c {
		panic("sx: operands from different contexts")
	}
	return c
}

// ---------------------------------------------------------------------------
// Classification
// ---------------------------------------------------------------------------

// IsLeaf reports whether the node is a constant or a symbol.
func (x Expr) IsLeaf() bool { return !x.node().hasDep() }

// IsConstant reports whether the node is a numeric constant.
func (x Expr) IsConstant() bool { return x.node().isConst() }

// IsInteger reports whether the node is a constant with an integral finite
// value.
func (x Expr) IsInteger() bool { return x.node().isInteger() }

// IsSymbol reports whether the node is a free variable.
func (x Expr) IsSymbol() bool { return x.node().kind == kindSymbol }

// HasDep reports whether the node is an operator node (unary or binary).
func (x Expr) HasDep() bool { return x.node().hasDep() }

// IsZero reports whether the node is the constant 0.
func (x Expr) IsZero() bool { return x.node().isZero() }

// IsAlmostZero reports whether the node is a constant within tol of zero.
// This is the one tolerance-based query; every other predicate is exact.
func (x Expr) IsAlmostZero(tol float64) bool {
	n := x.node()
	return n.isConst() && math.Abs(n.val) <= tol
}

// IsOne reports whether the node is the constant 1.
func (x Expr) IsOne() bool { return x.node().isOne() }

// IsMinusOne reports whether the node is the constant -1.
func (x Expr) IsMinusOne() bool { return x.node().isMinusOne() }

// IsNaN reports whether the node is the NaN constant.
func (x Expr) IsNaN() bool {
	n := x.node()
	return n.isConst() && math.IsNaN(n.val)
}

// IsInf reports whether the node is the +Inf constant.
func (x Expr) IsInf() bool {
	n := x.node()
	return n.isConst() && math.IsInf(n.val, 1)
}

// IsMinusInf reports whether the node is the -Inf constant.
func (x Expr) IsMinusInf() bool {
	n := x.node()
	return n.isConst() && math.IsInf(n.val, -1)
}

// IsOp reports whether the node is an operator node with the given code.
func (x Expr) IsOp(op Op) bool { return x.node().isOp(op) }

// IsCommutative reports whether the operator of the node commutes. Panics
// on leaves.
func (x Expr) IsCommutative() bool {
	n := x.node()
	if !n.hasDep() {
		panic("sx: IsCommutative of a leaf expression")
	}
	return n.op.Commutative()
}

// IsDoubled reports whether the node has the shape t + t (structurally, at
// the context equality depth).
func (x Expr) IsDoubled() bool {
	n := x.node()
	return n.isOp(OpAdd) && eqNodeDepth(n.dep[0], n.dep[1], x.c.opts.EqDepth)
}

// IsNonNegative reports whether the expression is provably >= 0: a
// non-negative constant, a square, or an absolute value. This is a
// conservative syntactic check, not a sign analysis; false means "not
// provably non-negative".
func (x Expr) IsNonNegative() bool {
	n := x.node()
	if n.isConst() {
		return n.val >= 0
	}
	return n.isOp(OpSq) || n.isOp(OpFabs)
}

// IsRegular reports whether a constant is finite. Panics on non-constant
// expressions: regularity of a symbolic expression is unknowable here.
func (x Expr) IsRegular() bool {
	n := x.node()
	if !n.isConst() {
		panic("sx: IsRegular of a symbolic expression")
	}
	return !math.IsNaN(n.val) && !math.IsInf(n.val, 0)
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

// Op returns the operator code; OpConst for constants, OpParam for symbols.
func (x Expr) Op() Op { return x.node().op }

// NDeps returns the operand count of an operator node. Panics on leaves.
func (x Expr) NDeps() int {
	n := x.node()
	if !n.hasDep() {
		panic("sx: NDeps of a leaf expression")
	}
	return n.ndeps()
}

// Dep returns the i-th operand. Panics if i is outside the node's arity.
func (x Expr) Dep(i int) Expr {
	n := x.node()
	if i < 0 || i >= n.ndeps() {
		panic(fmt.Sprintf("sx: Dep(%d) of %s node with %d operand(s)", i, n.op, n.ndeps()))
	}
	return Expr{x.c, n.dep[i]}
}

// Value returns the numeric value of a constant. Panics otherwise.
func (x Expr) Value() float64 {
	n := x.node()
	if !n.isConst() {
		panic("sx: Value of a non-constant expression")
	}
	return n.val
}

// IntValue returns the value of an integral constant. Panics if the node is
// not a constant with an integral finite value.
func (x Expr) IntValue() int64 {
	n := x.node()
	if !n.isInteger() {
		panic("sx: IntValue of a non-integer expression")
	}
	return int64(n.val)
}

// Name returns the name of a symbol. Panics otherwise.
func (x Expr) Name() string {
	n := x.node()
	if n.kind != kindSymbol {
		panic("sx: Name of a non-symbol expression")
	}
	return n.name
}

// Bool extracts a truth value from a constant: nonzero is true. Panics on
// symbolic expressions, which have no definite truth value.
func (x Expr) Bool() bool {
	n := x.node()
	if !n.isConst() {
		panic("sx: truth value of a symbolic expression")
	}
	return n.val != 0
}

// NodeKey is an opaque comparable identity for one graph node, for callers
// that want their own per-node maps alongside Scratch.
type NodeKey struct{ n *node }

// HashKey returns the node identity of x. Two expressions have the same key
// exactly when Is reports true.
func (x Expr) HashKey() NodeKey { return NodeKey{x.node()} }

// ---------------------------------------------------------------------------
// Arithmetic. Everything routes through the simplification engine; with
// Options.Simplify off each call allocates the literal operator node.
// ---------------------------------------------------------------------------

// Add returns x + y.
func (x Expr) Add(y Expr) Expr { return sameContext(x, y).BinaryOp(OpAdd, x, y) }

// Sub returns x - y.
func (x Expr) Sub(y Expr) Expr { return sameContext(x, y).BinaryOp(OpSub, x, y) }

// Mul returns x * y.
func (x Expr) Mul(y Expr) Expr { return sameContext(x, y).BinaryOp(OpMul, x, y) }

// Div returns x / y. Division by a constant zero yields the NaN singleton;
// domain errors are lazy, surfacing only at numeric evaluation.
func (x Expr) Div(y Expr) Expr { return sameContext(x, y).BinaryOp(OpDiv, x, y) }

// Neg returns -x.
func (x Expr) Neg() Expr { return x.ctx().UnaryOp(OpNeg, x) }

// Pow returns x^y, expanding constant integer exponents by repeated
// squaring (see BinaryOp).
func (x Expr) Pow(y Expr) Expr { return sameContext(x, y).BinaryOp(OpPow, x, y) }

// ConstPow returns the opaque constant-power node.
func (x Expr) ConstPow(y Expr) Expr { return sameContext(x, y).BinaryOp(OpConstPow, x, y) }

// Sq returns x².
func (x Expr) Sq() Expr { return x.ctx().UnaryOp(OpSq, x) }

// Sqrt returns √x.
func (x Expr) Sqrt() Expr { return x.ctx().UnaryOp(OpSqrt, x) }

// Inv returns 1/x as a unary reciprocal node.
func (x Expr) Inv() Expr { return x.ctx().UnaryOp(OpInv, x) }

// Exp returns e^x.
func (x Expr) Exp() Expr { return x.ctx().UnaryOp(OpExp, x) }

// Log returns the natural logarithm.
func (x Expr) Log() Expr { return x.ctx().UnaryOp(OpLog, x) }

// Log10 returns log₁₀(x), lowered to log(x)·(1/ln 10).
func (x Expr) Log10() Expr {
	c := x.ctx()
	if !c.opts.Simplify {
		return Expr{c, c.unary(OpLog10, x.n)}
	}
	return x.Log().Mul(c.Lit(1 / math.Ln10))
}

// Sin returns sin(x).
func (x Expr) Sin() Expr { return x.ctx().UnaryOp(OpSin, x) }

// Cos returns cos(x).
func (x Expr) Cos() Expr { return x.ctx().UnaryOp(OpCos, x) }

// Tan returns tan(x).
func (x Expr) Tan() Expr { return x.ctx().UnaryOp(OpTan, x) }

// Asin returns arcsin(x).
func (x Expr) Asin() Expr { return x.ctx().UnaryOp(OpAsin, x) }

// Acos returns arccos(x).
func (x Expr) Acos() Expr { return x.ctx().UnaryOp(OpAcos, x) }

// Atan returns arctan(x).
func (x Expr) Atan() Expr { return x.ctx().UnaryOp(OpAtan, x) }

// Sinh returns sinh(x).
func (x Expr) Sinh() Expr { return x.ctx().UnaryOp(OpSinh, x) }

// Cosh returns cosh(x).
func (x Expr) Cosh() Expr { return x.ctx().UnaryOp(OpCosh, x) }

// Tanh returns tanh(x).
func (x Expr) Tanh() Expr { return x.ctx().UnaryOp(OpTanh, x) }

// Asinh returns arsinh(x).
func (x Expr) Asinh() Expr { return x.ctx().UnaryOp(OpAsinh, x) }

// Acosh returns arcosh(x).
func (x Expr) Acosh() Expr { return x.ctx().UnaryOp(OpAcosh, x) }

// Atanh returns artanh(x).
func (x Expr) Atanh() Expr { return x.ctx().UnaryOp(OpAtanh, x) }

// Floor returns ⌊x⌋.
func (x Expr) Floor() Expr { return x.ctx().UnaryOp(OpFloor, x) }

// Ceil returns ⌈x⌉.
func (x Expr) Ceil() Expr { return x.ctx().UnaryOp(OpCeil, x) }

// Abs returns |x|.
func (x Expr) Abs() Expr { return x.ctx().UnaryOp(OpFabs, x) }

// Sign returns the sign of x (-1, 0 or 1; NaN for NaN).
func (x Expr) Sign() Expr { return x.ctx().UnaryOp(OpSign, x) }

// Erf returns the error function of x.
func (x Expr) Erf() Expr { return x.ctx().UnaryOp(OpErf, x) }

// Erfinv returns the inverse error function of x.
func (x Expr) Erfinv() Expr { return x.ctx().UnaryOp(OpErfinv, x) }

// Mod returns fmod(x, y).
func (x Expr) Mod(y Expr) Expr { return sameContext(x, y).BinaryOp(OpFmod, x, y) }

// Fmin returns min(x, y).
func (x Expr) Fmin(y Expr) Expr { return sameContext(x, y).BinaryOp(OpFmin, x, y) }

// Fmax returns max(x, y).
func (x Expr) Fmax(y Expr) Expr { return sameContext(x, y).BinaryOp(OpFmax, x, y) }

// Atan2 returns atan2(x, y).
func (x Expr) Atan2(y Expr) Expr { return sameContext(x, y).BinaryOp(OpAtan2, x, y) }

// CopySign returns a value with the magnitude of x and the sign of y.
func (x Expr) CopySign(y Expr) Expr { return sameContext(x, y).BinaryOp(OpCopysign, x, y) }

// Lt returns the expression x < y (0/1 valued).
func (x Expr) Lt(y Expr) Expr { return sameContext(x, y).BinaryOp(OpLt, x, y) }

// Le returns the expression x <= y.
func (x Expr) Le(y Expr) Expr { return sameContext(x, y).BinaryOp(OpLe, x, y) }

// Gt returns the expression x > y, lowered to y < x.
func (x Expr) Gt(y Expr) Expr { return y.Lt(x) }

// Ge returns the expression x >= y, lowered to y <= x.
func (x Expr) Ge(y Expr) Expr { return y.Le(x) }

// Eq returns the symbolic equality test x == y. For structural equality of
// two graphs use the package function Equal.
func (x Expr) Eq(y Expr) Expr { return sameContext(x, y).BinaryOp(OpEq, x, y) }

// Ne returns the symbolic inequality test x != y.
func (x Expr) Ne(y Expr) Expr { return sameContext(x, y).BinaryOp(OpNe, x, y) }

// Not returns the logical negation of x.
func (x Expr) Not() Expr { return x.ctx().UnaryOp(OpNot, x) }

// And returns the logical conjunction of x and y.
func (x Expr) And(y Expr) Expr { return sameContext(x, y).BinaryOp(OpAnd, x, y) }

// Or returns the logical disjunction of x and y.
func (x Expr) Or(y Expr) Expr { return sameContext(x, y).BinaryOp(OpOr, x, y) }

// IfElseZero returns "x != 0 ? y : 0".
func (x Expr) IfElseZero(y Expr) Expr { return sameContext(x, y).BinaryOp(OpIfElseZero, x, y) }

// IfElse composes a full conditional from its one-sided halves:
// if_else_zero(cond, t) + if_else_zero(!cond, f).
func IfElse(cond, t, f Expr) Expr {
	return cond.IfElseZero(t).Add(cond.Not().IfElseZero(f))
}
