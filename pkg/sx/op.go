package sx

import "math"

// Op identifies an operation in the expression graph. The table of operators
// is fixed: entries are never constructed at runtime, only referenced.
type Op int

const (
	// Leaf codes. A constant or symbol node reports these from Op().
	OpConst Op = iota
	OpParam

	// Binary arithmetic.
	OpAdd
	OpSub
	OpMul
	OpDiv

	// Unary arithmetic.
	OpNeg
	OpExp
	OpLog
	OpLog10
	OpSqrt
	OpSq
	OpInv

	// Trigonometric / hyperbolic.
	OpSin
	OpCos
	OpTan
	OpAsin
	OpAcos
	OpAtan
	OpSinh
	OpCosh
	OpTanh
	OpAsinh
	OpAcosh
	OpAtanh

	// Rounding and miscellaneous unary.
	OpFloor
	OpCeil
	OpFabs
	OpSign
	OpErf
	OpErfinv

	// Binary non-arithmetic.
	OpPow
	OpConstPow
	OpFmod
	OpFmin
	OpFmax
	OpAtan2
	OpCopysign

	// Comparison and logic. Results are the constants 0 and 1.
	OpLt
	OpLe
	OpEq
	OpNe
	OpNot
	OpAnd
	OpOr

	// Conditional: cond != 0 ? arg : 0.
	OpIfElseZero

	opCount
)

type opInfo struct {
	name  string // function-style name, used by the printer and parser
	infix string // infix symbol, "" if the op prints as a call
	arity int
	comm  bool // commutative (binary ops only)
}

var opTable = [opCount]opInfo{
	OpConst: {name: "const", arity: 0},
	OpParam: {name: "param", arity: 0},

	OpAdd: {name: "add", infix: "+", arity: 2, comm: true},
	OpSub: {name: "sub", infix: "-", arity: 2},
	OpMul: {name: "mul", infix: "*", arity: 2, comm: true},
	OpDiv: {name: "div", infix: "/", arity: 2},

	OpNeg:   {name: "neg", arity: 1},
	OpExp:   {name: "exp", arity: 1},
	OpLog:   {name: "log", arity: 1},
	OpLog10: {name: "log10", arity: 1},
	OpSqrt:  {name: "sqrt", arity: 1},
	OpSq:    {name: "sq", arity: 1},
	OpInv:   {name: "inv", arity: 1},

	OpSin:   {name: "sin", arity: 1},
	OpCos:   {name: "cos", arity: 1},
	OpTan:   {name: "tan", arity: 1},
	OpAsin:  {name: "asin", arity: 1},
	OpAcos:  {name: "acos", arity: 1},
	OpAtan:  {name: "atan", arity: 1},
	OpSinh:  {name: "sinh", arity: 1},
	OpCosh:  {name: "cosh", arity: 1},
	OpTanh:  {name: "tanh", arity: 1},
	OpAsinh: {name: "asinh", arity: 1},
	OpAcosh: {name: "acosh", arity: 1},
	OpAtanh: {name: "atanh", arity: 1},

	OpFloor:  {name: "floor", arity: 1},
	OpCeil:   {name: "ceil", arity: 1},
	OpFabs:   {name: "fabs", arity: 1},
	OpSign:   {name: "sign", arity: 1},
	OpErf:    {name: "erf", arity: 1},
	OpErfinv: {name: "erfinv", arity: 1},

	OpPow:      {name: "pow", arity: 2},
	OpConstPow: {name: "constpow", arity: 2},
	OpFmod:     {name: "fmod", arity: 2},
	OpFmin:     {name: "fmin", arity: 2, comm: true},
	OpFmax:     {name: "fmax", arity: 2, comm: true},
	OpAtan2:    {name: "atan2", arity: 2},
	OpCopysign: {name: "copysign", arity: 2},

	OpLt:  {name: "lt", infix: "<", arity: 2},
	OpLe:  {name: "le", infix: "<=", arity: 2},
	OpEq:  {name: "eq", infix: "==", arity: 2, comm: true},
	OpNe:  {name: "ne", infix: "!=", arity: 2, comm: true},
	OpNot: {name: "not", arity: 1},
	OpAnd: {name: "and", infix: "&&", arity: 2, comm: true},
	OpOr:  {name: "or", infix: "||", arity: 2, comm: true},

	OpIfElseZero: {name: "if_else_zero", arity: 2},
}

// Arity reports the number of operands: 0 for leaf codes, 1 or 2 otherwise.
func (op Op) Arity() int { return opTable[op].arity }

// Commutative reports whether a binary operator commutes. False for all
// unary and leaf codes.
func (op Op) Commutative() bool { return opTable[op].comm }

func (op Op) String() string { return opTable[op].name }

func (op Op) valid() bool { return op >= 0 && op < opCount }

func bool01(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// apply is the numeric specification-of-record for every operator. The
// evaluator, the simplification-disabled construction path and the soundness
// tests all route through it. y is ignored for unary operators. IEEE-754
// semantics throughout: domain errors surface as NaN/Inf values, never as
// Go errors.
func (op Op) apply(x, y float64) float64 {
	switch op {
	case OpAdd:
		return x + y
	case OpSub:
		return x - y
	case OpMul:
		return x * y
	case OpDiv:
		return x / y
	case OpNeg:
		return -x
	case OpExp:
		return math.Exp(x)
	case OpLog:
		return math.Log(x)
	case OpLog10:
		return math.Log10(x)
	case OpSqrt:
		return math.Sqrt(x)
	case OpSq:
		return x * x
	case OpInv:
		return 1 / x
	case OpSin:
		return math.Sin(x)
	case OpCos:
		return math.Cos(x)
	case OpTan:
		return math.Tan(x)
	case OpAsin:
		return math.Asin(x)
	case OpAcos:
		return math.Acos(x)
	case OpAtan:
		return math.Atan(x)
	case OpSinh:
		return math.Sinh(x)
	case OpCosh:
		return math.Cosh(x)
	case OpTanh:
		return math.Tanh(x)
	case OpAsinh:
		return math.Asinh(x)
	case OpAcosh:
		return math.Acosh(x)
	case OpAtanh:
		return math.Atanh(x)
	case OpFloor:
		return math.Floor(x)
	case OpCeil:
		return math.Ceil(x)
	case OpFabs:
		return math.Abs(x)
	case OpSign:
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		case x == 0:
			return 0
		}
		return math.NaN()
	case OpErf:
		return math.Erf(x)
	case OpErfinv:
		return math.Erfinv(x)
	case OpPow, OpConstPow:
		return math.Pow(x, y)
	case OpFmod:
		return math.Mod(x, y)
	case OpFmin:
		return math.Min(x, y)
	case OpFmax:
		return math.Max(x, y)
	case OpAtan2:
		return math.Atan2(x, y)
	case OpCopysign:
		return math.Copysign(x, y)
	case OpLt:
		return bool01(x < y)
	case OpLe:
		return bool01(x <= y)
	case OpEq:
		return bool01(x == y)
	case OpNe:
		return bool01(x != y)
	case OpNot:
		return bool01(x == 0)
	case OpAnd:
		return bool01(x != 0 && y != 0)
	case OpOr:
		return bool01(x != 0 || y != 0)
	case OpIfElseZero:
		if x != 0 {
			return y
		}
		return 0
	}
	return math.NaN()
}
