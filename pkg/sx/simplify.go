package sx

// Construction-time peephole simplification. Every public operation lands
// in UnaryOp or BinaryOp; the rules below return an operand, a singleton or
// a strictly smaller combination instead of allocating a fresh operator
// node whenever they can prove the value unchanged. No rule may increase
// the node count: the engine runs on every single construction, so an
// expansive rewrite here would mean combinatorial graph growth.
//
// With Options.Simplify off both entry points allocate the literal operator
// node unconditionally; that path defines operator semantics and every rule
// must agree with it for all inputs (including NaN and the infinities).

// UnaryOp applies a unary operator to x, simplifying when enabled. Panics
// if op is not unary or x belongs to another context.
func (c *Context) UnaryOp(op Op, x Expr) Expr {
	nx := x.node()
	if x.c != c {
		panic("sx: operand from a different context")
	}
	if !op.valid() || op.Arity() != 1 {
		panic("sx: UnaryOp with non-unary operator " + op.String())
	}
	if !c.opts.Simplify {
		return Expr{c, c.unary(op, nx)}
	}

	switch op {
	case OpNeg:
		switch {
		case nx.isOp(OpNeg): // -(-x) = x
			return Expr{c, nx.dep[0]}
		case nx.isZero():
			return Expr{c, c.zero}
		case nx.isOne():
			return Expr{c, c.minusOne}
		case nx.isMinusOne():
			return Expr{c, c.one}
		}

	case OpInv:
		if nx.isOp(OpInv) { // 1/(1/x) = x
			return Expr{c, nx.dep[0]}
		}

	case OpSqrt:
		if nx.isOp(OpSq) { // sqrt(x²) = |x|
			return c.UnaryOp(OpFabs, Expr{c, nx.dep[0]})
		}

	case OpSq:
		switch {
		case nx.isOp(OpSqrt): // sq(sqrt(x)) = x
			return Expr{c, nx.dep[0]}
		case nx.isOp(OpNeg): // (-x)² = x²
			return c.UnaryOp(OpSq, Expr{c, nx.dep[0]})
		}

	case OpFabs:
		if nx.isOp(OpFabs) || nx.isOp(OpSq) {
			return x
		}

	case OpNot:
		if nx.isOp(OpNot) { // !!x = x
			return Expr{c, nx.dep[0]}
		}

	case OpSinh, OpTanh, OpAsinh, OpAtanh:
		if nx.isZero() { // f(0) = 0
			return Expr{c, c.zero}
		}

	case OpCosh:
		if nx.isZero() { // cosh(0) = 1
			return Expr{c, c.one}
		}

	case OpAcosh:
		if nx.isOne() { // acosh(1) = 0
			return Expr{c, c.zero}
		}
	}

	return Expr{c, c.unary(op, nx)}
}

// BinaryOp applies a binary operator to x and y, simplifying when enabled.
// Panics if op is not binary or an operand belongs to another context.
func (c *Context) BinaryOp(op Op, x, y Expr) Expr {
	nx, ny := x.node(), y.node()
	if x.c != c || y.c != c {
		panic("sx: operand from a different context")
	}
	if !op.valid() || op.Arity() != 2 {
		panic("sx: BinaryOp with non-binary operator " + op.String())
	}
	if !c.opts.Simplify {
		return Expr{c, c.binary(op, nx, ny)}
	}

	switch op {
	case OpAdd:
		return c.simplifyAdd(x, y)
	case OpSub:
		return c.simplifySub(x, y)
	case OpMul:
		return c.simplifyMul(x, y)
	case OpDiv:
		return c.simplifyDiv(x, y)
	case OpPow:
		return c.simplifyPow(x, y)
	case OpLt:
		if x.Sub(y).IsNonNegative() { // x-y >= 0 means x < y is false
			return Expr{c, c.zero}
		}
	case OpLe:
		if y.Sub(x).IsNonNegative() { // y-x >= 0 means x <= y holds
			return Expr{c, c.one}
		}
	case OpEq:
		if eqNodeDepth(nx, ny, c.opts.EqDepth) {
			return Expr{c, c.one}
		}
	case OpNe:
		if eqNodeDepth(nx, ny, c.opts.EqDepth) {
			return Expr{c, c.zero}
		}
	case OpIfElseZero:
		if ny.isZero() {
			return y
		}
		if nx.isConst() {
			if nx.val != 0 {
				return y
			}
			return Expr{c, c.zero}
		}
	}

	return Expr{c, c.binary(op, nx, ny)}
}

func (c *Context) simplifyAdd(x, y Expr) Expr {
	nx, ny := x.n, y.n
	d := c.opts.EqDepth
	switch {
	case nx.isZero():
		return y
	case ny.isZero():
		return x
	case ny.isOp(OpNeg): // x + (-y) = x - y
		return c.simplifySub(x, Expr{c, ny.dep[0]})
	case nx.isOp(OpNeg): // (-x) + y = y - x
		return c.simplifySub(y, Expr{c, nx.dep[0]})
	case nx.isOp(OpMul) && ny.isOp(OpMul) && // 0.5x + 0.5x = x
		nx.dep[0].isConst() && nx.dep[0].val == 0.5 &&
		ny.dep[0].isConst() && ny.dep[0].val == 0.5 &&
		eqNodeDepth(ny.dep[1], nx.dep[1], d):
		return Expr{c, nx.dep[1]}
	case nx.isOp(OpDiv) && ny.isOp(OpDiv) && // x/2 + x/2 = x
		nx.dep[1].isConst() && nx.dep[1].val == 2 &&
		ny.dep[1].isConst() && ny.dep[1].val == 2 &&
		eqNodeDepth(ny.dep[0], nx.dep[0], d):
		return Expr{c, nx.dep[0]}
	case nx.isOp(OpSub) && eqNodeDepth(nx.dep[1], ny, d): // (x-y) + y = x
		return Expr{c, nx.dep[0]}
	case ny.isOp(OpSub) && eqNodeDepth(nx, ny.dep[1], d): // x + (y-x) = y
		return Expr{c, ny.dep[0]}
	case nx.isOp(OpSq) && ny.isOp(OpSq) && // sin²(t) + cos²(t) = 1
		((nx.dep[0].isOp(OpSin) && ny.dep[0].isOp(OpCos)) ||
			(nx.dep[0].isOp(OpCos) && ny.dep[0].isOp(OpSin))) &&
		eqNodeDepth(nx.dep[0].dep[0], ny.dep[0].dep[0], d):
		return Expr{c, c.one}
	}
	return Expr{c, c.binary(OpAdd, nx, ny)}
}

func (c *Context) simplifySub(x, y Expr) Expr {
	nx, ny := x.n, y.n
	d := c.opts.EqDepth
	switch {
	case ny.isZero():
		return x
	case nx.isZero(): // 0 - y = -y
		return c.UnaryOp(OpNeg, y)
	case eqNodeDepth(nx, ny, d): // x - x = 0
		return Expr{c, c.zero}
	case ny.isOp(OpNeg): // x - (-y) = x + y
		return c.simplifyAdd(x, Expr{c, ny.dep[0]})
	case nx.isOp(OpAdd) && eqNodeDepth(nx.dep[1], ny, d): // (a+y) - y = a
		return Expr{c, nx.dep[0]}
	case nx.isOp(OpAdd) && eqNodeDepth(nx.dep[0], ny, d): // (y+a) - y = a
		return Expr{c, nx.dep[1]}
	case ny.isOp(OpAdd) && eqNodeDepth(nx, ny.dep[1], d): // x - (a+x) = -a
		return c.UnaryOp(OpNeg, Expr{c, ny.dep[0]})
	case ny.isOp(OpAdd) && eqNodeDepth(nx, ny.dep[0], d): // x - (x+a) = -a
		return c.UnaryOp(OpNeg, Expr{c, ny.dep[1]})
	case nx.isOp(OpNeg): // (-a) - y = -(a+y)
		return c.UnaryOp(OpNeg, c.simplifyAdd(Expr{c, nx.dep[0]}, y))
	}
	return Expr{c, c.binary(OpSub, nx, ny)}
}

func (c *Context) simplifyMul(x, y Expr) Expr {
	nx, ny := x.n, y.n
	d := c.opts.EqDepth
	switch {
	case eqNodeDepth(ny, nx, d): // x·x = x²
		return c.UnaryOp(OpSq, x)
	case !nx.isConst() && ny.isConst():
		// canonical order: the constant operand goes first
		return c.simplifyMul(y, x)
	case nx.isZero() || ny.isZero():
		return Expr{c, c.zero}
	case nx.isOne():
		return y
	case ny.isOne():
		return x
	case ny.isMinusOne():
		return c.UnaryOp(OpNeg, x)
	case nx.isMinusOne():
		return c.UnaryOp(OpNeg, y)
	case ny.isOp(OpInv): // x·(1/y) = x/y
		return c.simplifyDiv(x, Expr{c, ny.dep[0]})
	case nx.isOp(OpInv): // (1/x)·y = y/x
		return c.simplifyDiv(y, Expr{c, nx.dep[0]})
	case nx.isConst() && ny.isOp(OpMul) && ny.dep[0].isConst() &&
		nx.val*ny.dep[0].val == 1: // 5·(0.2·x) = x
		return Expr{c, ny.dep[1]}
	case nx.isConst() && ny.isOp(OpDiv) && ny.dep[1].isConst() &&
		nx.val == ny.dep[1].val: // 5·(x/5) = x
		return Expr{c, ny.dep[0]}
	case nx.isOp(OpDiv) && eqNodeDepth(nx.dep[1], ny, d): // (a/y)·y = a
		return Expr{c, nx.dep[0]}
	case ny.isOp(OpDiv) && eqNodeDepth(ny.dep[1], nx, d): // x·(a/x) = a
		return Expr{c, ny.dep[0]}
	case nx.isOp(OpNeg): // (-a)·y = -(a·y)
		return c.UnaryOp(OpNeg, c.simplifyMul(Expr{c, nx.dep[0]}, y))
	case ny.isOp(OpNeg): // x·(-a) = -(x·a)
		return c.UnaryOp(OpNeg, c.simplifyMul(x, Expr{c, ny.dep[0]}))
	}
	return Expr{c, c.binary(OpMul, nx, ny)}
}

func (c *Context) simplifyDiv(x, y Expr) Expr {
	nx, ny := x.n, y.n
	d := c.opts.EqDepth
	isDoubled := func(n *node) bool {
		return n.isOp(OpAdd) && eqNodeDepth(n.dep[0], n.dep[1], d)
	}
	switch {
	case ny.isZero():
		// division by zero stays in the graph as NaN, caught (if ever) at
		// numeric evaluation
		return Expr{c, c.nan}
	case nx.isZero():
		return Expr{c, c.zero}
	case ny.isOne():
		return x
	case ny.isMinusOne():
		return c.UnaryOp(OpNeg, x)
	case eqNodeDepth(nx, ny, d): // x/x = 1
		return Expr{c, c.one}
	case isDoubled(nx) && ny.isConst() && ny.val == 2: // (a+a)/2 = a
		return Expr{c, nx.dep[0]}
	case nx.isOp(OpMul) && eqNodeDepth(ny, nx.dep[0], d): // (y·a)/y = a
		return Expr{c, nx.dep[1]}
	case nx.isOp(OpMul) && eqNodeDepth(ny, nx.dep[1], d): // (a·y)/y = a
		return Expr{c, nx.dep[0]}
	case nx.isOne(): // 1/y = inv(y)
		return c.UnaryOp(OpInv, y)
	case ny.isOp(OpInv): // x/(1/a) = x·a
		return c.simplifyMul(x, Expr{c, ny.dep[0]})
	case isDoubled(nx) && isDoubled(ny): // (a+a)/(b+b) = a/b
		return c.simplifyDiv(Expr{c, nx.dep[0]}, Expr{c, ny.dep[0]})
	case ny.isConst() && nx.isOp(OpDiv) && nx.dep[1].isConst() &&
		ny.val*nx.dep[1].val == 1: // (x/5)/0.2 = x
		return Expr{c, nx.dep[0]}
	case ny.isOp(OpMul) && eqNodeDepth(ny.dep[1], nx, d): // x/(a·x) = 1/a
		return Expr{c, c.binary(OpDiv, c.one, ny.dep[0])}
	case nx.isOp(OpNeg) && eqNodeDepth(nx.dep[0], ny, d): // (-x)/x = -1
		return Expr{c, c.minusOne}
	case ny.isOp(OpNeg) && eqNodeDepth(ny.dep[0], nx, d): // x/(-x) = -1
		return Expr{c, c.minusOne}
	case nx.isOp(OpNeg) && ny.isOp(OpNeg) &&
		eqNodeDepth(nx.dep[0], ny.dep[0], d): // (-a)/(-a) = 1
		return Expr{c, c.one}
	case nx.isOp(OpDiv) && eqNodeDepth(ny, nx.dep[0], d): // (y/a)/y = 1/a
		return c.UnaryOp(OpInv, Expr{c, nx.dep[1]})
	case nx.isOp(OpNeg): // (-a)/y = -(a/y)
		return c.UnaryOp(OpNeg, c.simplifyDiv(Expr{c, nx.dep[0]}, y))
	case ny.isOp(OpNeg): // x/(-a) = -(x/a)
		return c.UnaryOp(OpNeg, c.simplifyDiv(x, Expr{c, ny.dep[0]}))
	}
	return Expr{c, c.binary(OpDiv, nx, ny)}
}

// simplifyPow expands constant integer exponents by repeated squaring,
// bounded by MaxPowDepth. Exponents past the bound, and constant exponents
// that are neither integral nor 0.5, become opaque constpow nodes.
func (c *Context) simplifyPow(x, y Expr) Expr {
	ny := y.n
	if !ny.isConst() {
		return Expr{c, c.binary(OpPow, x.n, ny)}
	}
	if ny.isInteger() {
		// the bound is checked in the float domain so the int64 conversion
		// below is always in range
		if ny.val > MaxPowDepth || ny.val < -MaxPowDepth {
			return Expr{c, c.binary(OpConstPow, x.n, ny)}
		}
		n := int64(ny.val)
		switch {
		case n == 0:
			return Expr{c, c.one}
		case n < 0: // x^(-n) = 1/x^n
			return c.simplifyDiv(Expr{c, c.one}, c.simplifyPow(x, c.Int(-n)))
		case n%2 == 1: // odd
			return c.simplifyMul(x, c.simplifyPow(x, c.Int(n-1)))
		default: // even: x^(2k) = (x^k)², shared
			rt := c.simplifyPow(x, c.Int(n/2))
			return c.simplifyMul(rt, rt)
		}
	}
	if ny.val == 0.5 {
		return c.UnaryOp(OpSqrt, x)
	}
	return Expr{c, c.binary(OpConstPow, x.n, ny)}
}
