package sx

import (
	"math"
	"math/rand"
	"testing"
)

func TestAdditiveRules(t *testing.T) {
	c := NewContext()
	x := c.Symbol("x")
	y := c.Symbol("y")

	t.Run("x+0 is x", func(t *testing.T) {
		if !x.Add(c.Zero()).Is(x) {
			t.Fatal("x+0 did not collapse to x")
		}
	})
	t.Run("0+y is y", func(t *testing.T) {
		if !c.Zero().Add(y).Is(y) {
			t.Fatal("0+y did not collapse to y")
		}
	})
	t.Run("x+(-y) becomes x-y", func(t *testing.T) {
		e := x.Add(y.Neg())
		if !e.IsOp(OpSub) || !e.Dep(0).Is(x) || !e.Dep(1).Is(y) {
			t.Fatalf("got %s", e)
		}
	})
	t.Run("(-x)+y becomes y-x", func(t *testing.T) {
		e := x.Neg().Add(y)
		if !e.IsOp(OpSub) || !e.Dep(0).Is(y) || !e.Dep(1).Is(x) {
			t.Fatalf("got %s", e)
		}
	})
	t.Run("(x-y)+y is x", func(t *testing.T) {
		if !x.Sub(y).Add(y).Is(x) {
			t.Fatal("(x-y)+y did not collapse to x")
		}
	})
	t.Run("x+(y-x) is y", func(t *testing.T) {
		if !x.Add(y.Sub(x)).Is(y) {
			t.Fatal("x+(y-x) did not collapse to y")
		}
	})
	t.Run("half sums collapse", func(t *testing.T) {
		half := c.Lit(0.5)
		if !half.Mul(x).Add(half.Mul(x)).Is(x) {
			t.Fatal("0.5x+0.5x did not collapse to x")
		}
		if !x.Div(c.Two()).Add(x.Div(c.Two())).Is(x) {
			t.Fatal("x/2+x/2 did not collapse to x")
		}
	})
	t.Run("sin²+cos² is 1", func(t *testing.T) {
		if !x.Sin().Sq().Add(x.Cos().Sq()).Is(c.One()) {
			t.Fatal("sin²(x)+cos²(x) did not collapse to 1")
		}
		if !x.Cos().Sq().Add(x.Sin().Sq()).Is(c.One()) {
			t.Fatal("cos²(x)+sin²(x) did not collapse to 1")
		}
	})
}

func TestSubtractiveRules(t *testing.T) {
	c := NewContext()
	x := c.Symbol("x")
	y := c.Symbol("y")

	t.Run("x-0 is x", func(t *testing.T) {
		if !x.Sub(c.Zero()).Is(x) {
			t.Fatal("x-0 did not collapse")
		}
	})
	t.Run("0-x is -x", func(t *testing.T) {
		e := c.Zero().Sub(x)
		if !e.IsOp(OpNeg) || !e.Dep(0).Is(x) {
			t.Fatalf("got %s", e)
		}
	})
	t.Run("x-x is 0", func(t *testing.T) {
		if !x.Sub(x).Is(c.Zero()) {
			t.Fatal("x-x did not collapse to 0")
		}
	})
	t.Run("x-(-y) becomes x+y", func(t *testing.T) {
		e := x.Sub(y.Neg())
		if !e.IsOp(OpAdd) || !e.Dep(0).Is(x) || !e.Dep(1).Is(y) {
			t.Fatalf("got %s", e)
		}
	})
	t.Run("additive unwinding", func(t *testing.T) {
		if !x.Add(y).Sub(y).Is(x) {
			t.Fatal("(x+y)-y did not collapse to x")
		}
		if !y.Add(x).Sub(y).Is(x) {
			t.Fatal("(y+x)-y did not collapse to x")
		}
		e := x.Sub(y.Add(x))
		if !e.IsOp(OpNeg) || !e.Dep(0).Is(y) {
			t.Fatalf("x-(y+x): got %s", e)
		}
		e = x.Sub(x.Add(y))
		if !e.IsOp(OpNeg) || !e.Dep(0).Is(y) {
			t.Fatalf("x-(x+y): got %s", e)
		}
	})
	t.Run("(-x)-y becomes -(x+y)", func(t *testing.T) {
		e := x.Neg().Sub(y)
		if !e.IsOp(OpNeg) || !e.Dep(0).IsOp(OpAdd) {
			t.Fatalf("got %s", e)
		}
	})
}

func TestMultiplicativeRules(t *testing.T) {
	c := NewContext()
	x := c.Symbol("x")
	y := c.Symbol("y")

	t.Run("x·x becomes x²", func(t *testing.T) {
		e := x.Mul(x)
		if !e.IsOp(OpSq) || !e.Dep(0).Is(x) {
			t.Fatalf("got %s", e)
		}
	})
	t.Run("constant operand moves left", func(t *testing.T) {
		five := c.Lit(5)
		e := x.Mul(five)
		if !e.IsOp(OpMul) || !e.Dep(0).Is(five) || !e.Dep(1).Is(x) {
			t.Fatalf("got %s", e)
		}
	})
	t.Run("zero one minus-one folding", func(t *testing.T) {
		if !c.Zero().Mul(x).Is(c.Zero()) {
			t.Fatal("0·x did not fold")
		}
		if !x.Mul(c.Zero()).Is(c.Zero()) {
			t.Fatal("x·0 did not fold")
		}
		if !c.One().Mul(x).Is(x) {
			t.Fatal("1·x did not fold")
		}
		if !x.Mul(c.One()).Is(x) {
			t.Fatal("x·1 did not fold")
		}
		e := c.MinusOne().Mul(x)
		if !e.IsOp(OpNeg) || !e.Dep(0).Is(x) {
			t.Fatalf("(-1)·x: got %s", e)
		}
	})
	t.Run("reciprocal cancellation", func(t *testing.T) {
		e := x.Mul(y.Inv())
		if !e.IsOp(OpDiv) || !e.Dep(0).Is(x) || !e.Dep(1).Is(y) {
			t.Fatalf("x·(1/y): got %s", e)
		}
		three := c.Lit(3)
		if !three.Div(y).Mul(y).Is(three) {
			t.Fatal("(3/y)·y did not collapse to 3")
		}
		if !x.Mul(three.Div(x)).Is(three) {
			t.Fatal("x·(3/x) did not collapse to 3")
		}
	})
	t.Run("inverse constants cancel", func(t *testing.T) {
		if !c.Lit(4).Mul(c.Lit(0.25).Mul(x)).Is(x) {
			t.Fatal("4·(0.25·x) did not collapse to x")
		}
		if !c.Lit(5).Mul(x.Div(c.Lit(5))).Is(x) {
			t.Fatal("5·(x/5) did not collapse to x")
		}
	})
	t.Run("sign propagation", func(t *testing.T) {
		e := x.Neg().Mul(y)
		if !e.IsOp(OpNeg) || !e.Dep(0).IsOp(OpMul) {
			t.Fatalf("(-x)·y: got %s", e)
		}
		e = x.Mul(y.Neg())
		if !e.IsOp(OpNeg) || !e.Dep(0).IsOp(OpMul) {
			t.Fatalf("x·(-y): got %s", e)
		}
	})
}

func TestDivisionRules(t *testing.T) {
	c := NewContext()
	x := c.Symbol("x")
	y := c.Symbol("y")

	t.Run("division by constant zero is NaN", func(t *testing.T) {
		e := x.Div(c.Zero())
		if !e.Is(c.NaN()) || !e.IsNaN() {
			t.Fatalf("x/0: got %s", e)
		}
	})
	t.Run("zero numerator", func(t *testing.T) {
		if !c.Zero().Div(x).Is(c.Zero()) {
			t.Fatal("0/x did not fold")
		}
	})
	t.Run("unit denominators", func(t *testing.T) {
		if !x.Div(c.One()).Is(x) {
			t.Fatal("x/1 did not fold")
		}
		e := x.Div(c.MinusOne())
		if !e.IsOp(OpNeg) || !e.Dep(0).Is(x) {
			t.Fatalf("x/(-1): got %s", e)
		}
	})
	t.Run("self division", func(t *testing.T) {
		if !x.Div(x).Is(c.One()) {
			t.Fatal("x/x did not fold to 1")
		}
	})
	t.Run("doubled numerator", func(t *testing.T) {
		if !x.Add(x).Div(c.Two()).Is(x) {
			t.Fatal("(x+x)/2 did not collapse")
		}
		e := x.Add(x).Div(y.Add(y))
		if !e.IsOp(OpDiv) || !e.Dep(0).Is(x) || !e.Dep(1).Is(y) {
			t.Fatalf("(x+x)/(y+y): got %s", e)
		}
	})
	t.Run("reciprocal forms", func(t *testing.T) {
		e := c.One().Div(x)
		if !e.IsOp(OpInv) || !e.Dep(0).Is(x) {
			t.Fatalf("1/x: got %s", e)
		}
		e = x.Div(y.Inv())
		if !e.IsOp(OpMul) {
			t.Fatalf("x/(1/y): got %s", e)
		}
	})
	t.Run("constant chains", func(t *testing.T) {
		if !x.Div(c.Lit(4)).Div(c.Lit(0.25)).Is(x) {
			t.Fatal("(x/4)/0.25 did not collapse")
		}
		inner := c.Lit(3).Mul(x)
		e := x.Div(inner)
		if !e.IsOp(OpDiv) || !e.Dep(0).Is(c.One()) || e.Dep(1).Value() != 3 {
			t.Fatalf("x/(3·x): got %s", e)
		}
	})
	t.Run("sign cancellation", func(t *testing.T) {
		if !x.Neg().Div(x).Is(c.MinusOne()) {
			t.Fatal("(-x)/x did not fold to -1")
		}
		if !x.Div(x.Neg()).Is(c.MinusOne()) {
			t.Fatal("x/(-x) did not fold to -1")
		}
		if !x.Neg().Div(x.Neg()).Is(c.One()) {
			t.Fatal("(-x)/(-x) did not fold to 1")
		}
		e := x.Neg().Div(y)
		if !e.IsOp(OpNeg) || !e.Dep(0).IsOp(OpDiv) {
			t.Fatalf("(-x)/y: got %s", e)
		}
	})
	t.Run("nested division", func(t *testing.T) {
		e := x.Div(y).Div(x)
		if !e.IsOp(OpInv) || !e.Dep(0).Is(y) {
			t.Fatalf("(x/y)/x: got %s", e)
		}
	})
	t.Run("multiplied numerator", func(t *testing.T) {
		if !y.Mul(x).Div(y).Is(x) {
			t.Fatal("(y·x)/y did not collapse")
		}
	})
}

func TestUnaryRules(t *testing.T) {
	c := NewContext()
	x := c.Symbol("x")

	t.Run("negation", func(t *testing.T) {
		if !x.Neg().Neg().Is(x) {
			t.Fatal("-(-x) did not cancel")
		}
		if !c.Zero().Neg().Is(c.Zero()) {
			t.Fatal("-0 is not the zero singleton")
		}
		if !c.One().Neg().Is(c.MinusOne()) {
			t.Fatal("-1 is not the minus-one singleton")
		}
		if !c.MinusOne().Neg().Is(c.One()) {
			t.Fatal("-(-1) is not the one singleton")
		}
	})
	t.Run("reciprocal", func(t *testing.T) {
		if !x.Inv().Inv().Is(x) {
			t.Fatal("inv(inv(x)) did not cancel")
		}
	})
	t.Run("square and root", func(t *testing.T) {
		e := x.Sq().Sqrt()
		if !e.IsOp(OpFabs) || !e.Dep(0).Is(x) {
			t.Fatalf("sqrt(x²): got %s", e)
		}
		if !x.Sqrt().Sq().Is(x) {
			t.Fatal("sq(sqrt(x)) did not cancel")
		}
		e = x.Neg().Sq()
		if !e.IsOp(OpSq) || !e.Dep(0).Is(x) {
			t.Fatalf("(-x)²: got %s", e)
		}
	})
	t.Run("absolute value", func(t *testing.T) {
		a := x.Abs()
		if !a.Abs().Is(a) {
			t.Fatal("|abs| did not collapse")
		}
		s := x.Sq()
		if !s.Abs().Is(s) {
			t.Fatal("|x²| did not collapse")
		}
	})
	t.Run("logical not", func(t *testing.T) {
		if !x.Not().Not().Is(x) {
			t.Fatal("!!x did not cancel")
		}
	})
	t.Run("trivial trig identities", func(t *testing.T) {
		zero := c.Zero()
		if !zero.Sinh().Is(zero) {
			t.Fatal("sinh(0) != 0")
		}
		if !zero.Cosh().Is(c.One()) {
			t.Fatal("cosh(0) != 1")
		}
		if !zero.Tanh().Is(zero) {
			t.Fatal("tanh(0) != 0")
		}
		if !zero.Asinh().Is(zero) {
			t.Fatal("asinh(0) != 0")
		}
		if !zero.Atanh().Is(zero) {
			t.Fatal("atanh(0) != 0")
		}
		if !c.One().Acosh().Is(zero) {
			t.Fatal("acosh(1) != 0")
		}
	})
}

func TestComparisonRules(t *testing.T) {
	c := NewContext()
	x := c.Symbol("x")
	y := c.Symbol("y")

	if !x.Sq().Ge(c.Zero()).Is(c.One()) {
		t.Fatal("x² >= 0 did not fold to 1")
	}
	if !x.Abs().Lt(c.Zero()).Is(c.Zero()) {
		t.Fatal("|x| < 0 did not fold to 0")
	}
	if !x.Eq(x).Is(c.One()) {
		t.Fatal("x == x did not fold to 1")
	}
	if !x.Ne(x).Is(c.Zero()) {
		t.Fatal("x != x did not fold to 0")
	}
	e := x.Lt(y)
	if !e.IsOp(OpLt) {
		t.Fatalf("x < y: got %s", e)
	}
}

func TestIfElseZeroRules(t *testing.T) {
	c := NewContext()
	x := c.Symbol("x")
	y := c.Symbol("y")

	if !x.IfElseZero(c.Zero()).Is(c.Zero()) {
		t.Fatal("if_else_zero(x, 0) did not fold")
	}
	if !c.Lit(3).IfElseZero(y).Is(y) {
		t.Fatal("if_else_zero(3, y) did not fold to y")
	}
	if !c.Zero().IfElseZero(y).Is(c.Zero()) {
		t.Fatal("if_else_zero(0, y) did not fold to 0")
	}
	e := x.IfElseZero(y)
	if !e.IsOp(OpIfElseZero) {
		t.Fatalf("got %s", e)
	}
}

func TestPowerExpansion(t *testing.T) {
	c := NewContext()
	x := c.Symbol("x")

	t.Run("zero exponent is the one singleton", func(t *testing.T) {
		if !x.Pow(c.Zero()).Is(c.One()) {
			t.Fatal("x^0 is not the one singleton")
		}
	})
	t.Run("square becomes sq node", func(t *testing.T) {
		e := x.Pow(c.Two())
		if !e.IsOp(OpSq) || !e.Dep(0).Is(x) {
			t.Fatalf("x^2: got %s", e)
		}
	})
	t.Run("half exponent becomes sqrt", func(t *testing.T) {
		e := x.Pow(c.Lit(0.5))
		if !e.IsOp(OpSqrt) || !e.Dep(0).Is(x) {
			t.Fatalf("x^0.5: got %s", e)
		}
	})
	t.Run("non-integer exponent becomes constpow", func(t *testing.T) {
		e := x.Pow(c.Lit(1.7))
		if !e.IsOp(OpConstPow) {
			t.Fatalf("x^1.7: got %s", e)
		}
	})
	t.Run("symbolic exponent stays pow", func(t *testing.T) {
		y := c.Symbol("y")
		e := x.Pow(y)
		if !e.IsOp(OpPow) {
			t.Fatalf("x^y: got %s", e)
		}
	})
	t.Run("out-of-range exponents stay opaque", func(t *testing.T) {
		// the large integral values exercise the float-domain bound: they
		// must reach the constpow branch without an int64 round trip
		for _, n := range []float64{101, -101, 100000, 1e18, -1e18, math.Ldexp(1, 63), 1e300, -1e300} {
			e := x.Pow(c.Lit(n))
			if !e.IsOp(OpConstPow) {
				t.Fatalf("x^%v: got %s", n, e)
			}
			if e.Dep(1).Value() != n {
				t.Fatalf("x^%v: exponent operand is %v", n, e.Dep(1).Value())
			}
		}
	})
	t.Run("negative exponent is a reciprocal", func(t *testing.T) {
		e := x.Pow(c.MinusOne())
		if !e.IsOp(OpInv) || !e.Dep(0).Is(x) {
			t.Fatalf("x^-1: got %s", e)
		}
	})
	t.Run("numeric agreement over the whole range", func(t *testing.T) {
		const xv = 1.37
		env := map[string]float64{"x": xv}
		for n := -100; n <= 100; n++ {
			e := x.Pow(c.Int(int64(n)))
			got, err := Eval(e, env)
			if err != nil {
				t.Fatalf("x^%d: %v", n, err)
			}
			want := math.Pow(xv, float64(n))
			if !almostEqual(got, want, 1e-9) {
				t.Fatalf("x^%d: got %v, want %v", n, got, want)
			}
		}
	})
	t.Run("expansion shares repeated squarings", func(t *testing.T) {
		e := x.Pow(c.Lit(16))
		// sq(sq(sq(sq(x)))): 5 distinct nodes, not 16 multiplications
		if n := NodeCount(e); n != 5 {
			t.Fatalf("x^16 has %d nodes, want 5", n)
		}
	})
}

func TestSimplifierDisabled(t *testing.T) {
	c := NewContextWith(Options{Simplify: false})
	x := c.Symbol("x")

	e := x.Add(c.Zero())
	if !e.IsOp(OpAdd) || !e.Dep(1).Is(c.Zero()) {
		t.Fatalf("raw x+0: got %s", e)
	}
	e = x.Mul(c.One())
	if !e.IsOp(OpMul) {
		t.Fatalf("raw x·1: got %s", e)
	}
	e = x.Pow(c.Lit(3))
	if !e.IsOp(OpPow) {
		t.Fatalf("raw x^3: got %s", e)
	}
	e = x.Sub(x)
	if !e.IsOp(OpSub) {
		t.Fatalf("raw x-x: got %s", e)
	}
	e = c.UnaryOp(OpNeg, x.Neg())
	if !e.IsOp(OpNeg) || !e.Dep(0).IsOp(OpNeg) {
		t.Fatalf("raw -(-x): got %s", e)
	}
}

// TestConstructionScenarios walks two end-to-end shapes: cancellation
// through a shared literal, and constant operand normalization.
func TestConstructionScenarios(t *testing.T) {
	c := NewContext()

	t.Run("(a+b)-b collapses to a", func(t *testing.T) {
		a := c.Symbol("x")
		b := c.Lit(2.0)
		e := a.Add(b).Sub(b)
		if !e.Is(a) {
			t.Fatalf("(x+2)-2: got %s", e)
		}
	})
	t.Run("5·x normalizes constant first", func(t *testing.T) {
		five := c.Lit(5.0)
		e := five.Mul(c.Symbol("x"))
		if !e.IsOp(OpMul) || !e.Dep(0).Is(five) {
			t.Fatalf("got %s", e)
		}
		if n := NodeCount(e); n != 3 {
			t.Fatalf("5·x has %d nodes, want 3", n)
		}
	})
}

// buildPair constructs the same random expression against two contexts,
// driving both builds from identically-seeded generators so the shapes
// match choice for choice.
func buildRandom(c *Context, r *rand.Rand, syms []Expr, depth int) Expr {
	if depth == 0 || r.Intn(4) == 0 {
		if r.Intn(2) == 0 {
			return syms[r.Intn(len(syms))]
		}
		consts := []float64{0, 0.5, 1, 2, -1, 3.25, -2.5}
		return c.Lit(consts[r.Intn(len(consts))])
	}
	// Division is exercised by its own deterministic tests: a random
	// denominator that simplifies to the zero node hits the deliberate
	// x/0 = NaN policy, which differs from the raw graph's IEEE Inf.
	switch r.Intn(8) {
	case 0:
		a := buildRandom(c, r, syms, depth-1)
		b := buildRandom(c, r, syms, depth-1)
		return a.Add(b)
	case 1:
		a := buildRandom(c, r, syms, depth-1)
		b := buildRandom(c, r, syms, depth-1)
		return a.Sub(b)
	case 2:
		a := buildRandom(c, r, syms, depth-1)
		b := buildRandom(c, r, syms, depth-1)
		return a.Mul(b)
	case 3:
		return buildRandom(c, r, syms, depth-1).Neg()
	case 4:
		return buildRandom(c, r, syms, depth-1).Sq()
	case 5:
		return buildRandom(c, r, syms, depth-1).Sin()
	case 6:
		return buildRandom(c, r, syms, depth-1).Cos()
	default:
		// Non-negative exponents only: a constant-zero base with a negative
		// exponent hits the x/0 = NaN policy on the simplified side.
		a := buildRandom(c, r, syms, depth-1)
		return a.Pow(c.Lit(float64(r.Intn(4))))
	}
}

func almostEqual(a, b, tol float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= tol*scale
}

// TestSimplifierSoundness checks that randomized graphs evaluate to the
// same value whether built with the engine on or off.
func TestSimplifierSoundness(t *testing.T) {
	env := map[string]float64{"x": 1.3, "y": -0.7, "z": 2.1}
	names := []string{"x", "y", "z"}

	for seed := int64(0); seed < 200; seed++ {
		simp := NewContext()
		raw := NewContextWith(Options{Simplify: false})

		var simpSyms, rawSyms []Expr
		for _, n := range names {
			simpSyms = append(simpSyms, simp.Symbol(n))
			rawSyms = append(rawSyms, raw.Symbol(n))
		}

		e1 := buildRandom(simp, rand.New(rand.NewSource(seed)), simpSyms, 5)
		e2 := buildRandom(raw, rand.New(rand.NewSource(seed)), rawSyms, 5)

		v1, err1 := Eval(e1, env)
		v2, err2 := Eval(e2, env)
		if err1 != nil || err2 != nil {
			t.Fatalf("seed %d: eval errors %v / %v", seed, err1, err2)
		}
		if !almostEqual(v1, v2, 1e-9) {
			t.Fatalf("seed %d: simplified %v != raw %v\nsimplified: %s\nraw: %s",
				seed, v1, v2, e1, e2)
		}
	}
}

// TestDivisionSoundness does the same over division-heavy shapes with a
// denominator kept away from zero.
func TestDivisionSoundness(t *testing.T) {
	env := map[string]float64{"x": 1.3, "y": -0.7}
	cases := []func(c *Context, x, y Expr) Expr{
		func(c *Context, x, y Expr) Expr { return x.Div(y) },
		func(c *Context, x, y Expr) Expr { return x.Add(x).Div(y.Add(y)) },
		func(c *Context, x, y Expr) Expr { return x.Div(y.Inv()) },
		func(c *Context, x, y Expr) Expr { return x.Div(c.Lit(4)).Div(c.Lit(0.25)) },
		func(c *Context, x, y Expr) Expr { return x.Neg().Div(y.Neg()) },
		func(c *Context, x, y Expr) Expr { return x.Div(c.Lit(3).Mul(x)) },
		func(c *Context, x, y Expr) Expr { return x.Div(y).Div(x) },
		func(c *Context, x, y Expr) Expr { return c.One().Div(y) },
		func(c *Context, x, y Expr) Expr { return x.Mul(y).Div(y) },
	}
	for i, build := range cases {
		simp := NewContext()
		raw := NewContextWith(Options{Simplify: false})
		v1, err1 := Eval(build(simp, simp.Symbol("x"), simp.Symbol("y")), env)
		v2, err2 := Eval(build(raw, raw.Symbol("x"), raw.Symbol("y")), env)
		if err1 != nil || err2 != nil {
			t.Fatalf("case %d: eval errors %v / %v", i, err1, err2)
		}
		if !almostEqual(v1, v2, 1e-9) {
			t.Fatalf("case %d: simplified %v != raw %v", i, v1, v2)
		}
	}
}

func TestIfElseNumeric(t *testing.T) {
	c := NewContext()
	cond := c.Symbol("c")
	tb := c.Symbol("t")
	fb := c.Symbol("f")
	e := IfElse(cond, tb, fb)

	for _, tc := range []struct {
		cond, want float64
	}{
		{0, -5},
		{1, 7},
		{3.5, 7},
	} {
		got, err := Eval(e, map[string]float64{"c": tc.cond, "t": 7, "f": -5})
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Fatalf("cond=%v: got %v, want %v", tc.cond, got, tc.want)
		}
	}
}
