package sx

import (
	"math"
	"strconv"

	"github.com/google/uuid"
)

// Defaults for the tunables of the engine.
const (
	// DefaultEqDepth is the recursion budget the simplifier hands to
	// structural equality: identity plus one level of operator/operand
	// comparison.
	DefaultEqDepth = 1

	// MaxPowDepth bounds integer power expansion by repeated squaring.
	// Exponents with |n| > MaxPowDepth become opaque constpow nodes.
	MaxPowDepth = 100
)

// Options control graph construction on a per-Context basis.
type Options struct {
	// Simplify enables construction-time rewriting. When false every
	// operation allocates the literal operator node; that path is the
	// specification-of-record for operator semantics.
	Simplify bool `yaml:"simplify"`

	// EqDepth is the structural-equality depth used by the simplifier.
	EqDepth int `yaml:"eq_depth"`
}

// DefaultOptions returns the options a plain NewContext uses.
func DefaultOptions() Options {
	return Options{Simplify: true, EqDepth: DefaultEqDepth}
}

// Context owns all mutable construction state: the pre-allocated singleton
// nodes, the integer and real constant caches, and the construction options.
// Nothing is process-wide. Expressions from different contexts
// never share nodes, so independent graphs (one per test, say) cannot
// interfere.
//
// A Context is not safe for concurrent use. Nodes themselves are immutable
// once published, so finished graphs may be read from any goroutine; only
// construction must be single-threaded (the caches are the sole mutation
// points).
type Context struct {
	opts Options

	zero     *node
	one      *node
	two      *node
	minusOne *node
	nan      *node
	inf      *node
	minusInf *node

	intCache  map[int64]*node
	realCache map[float64]*node

	symSeq int64 // fresh-symbol counter, for readable prefixes

	allocs int64 // debug counter of nodes allocated by this context
}

// NewContext returns a context with DefaultOptions. Singletons are allocated
// eagerly; the caches start empty and are never evicted (constants live for
// the context lifetime, a deliberate trade of memory for sharing).
func NewContext() *Context {
	return NewContextWith(DefaultOptions())
}

// NewContextWith returns a context with the given options. An EqDepth of
// zero or below falls back to DefaultEqDepth.
func NewContextWith(opts Options) *Context {
	if opts.EqDepth <= 0 {
		opts.EqDepth = DefaultEqDepth
	}
	c := &Context{
		opts:      opts,
		intCache:  make(map[int64]*node),
		realCache: make(map[float64]*node),
	}
	c.zero = c.newConst(0)
	c.one = c.newConst(1)
	c.two = c.newConst(2)
	c.minusOne = c.newConst(-1)
	c.nan = c.newConst(math.NaN())
	c.inf = c.newConst(math.Inf(1))
	c.minusInf = c.newConst(math.Inf(-1))
	return c
}

// Options returns the options the context was built with.
func (c *Context) Options() Options { return c.opts }

// Allocs returns the number of nodes this context has allocated so far,
// singletons included. Canonicalization and simplification show up here as
// the counter *not* moving.
func (c *Context) Allocs() int64 { return c.allocs }

func (c *Context) newConst(v float64) *node {
	c.allocs++
	return &node{kind: kindConst, op: OpConst, val: v}
}

func (c *Context) newSymbol(name string) *node {
	c.allocs++
	return &node{kind: kindSymbol, op: OpParam, name: name}
}

// unary and binary allocate literal operator nodes with no rewriting. The
// simplifier bottoms out here.
func (c *Context) unary(op Op, x *node) *node {
	c.allocs++
	return &node{kind: kindUnary, op: op, dep: [2]*node{x, nil}}
}

func (c *Context) binary(op Op, x, y *node) *node {
	c.allocs++
	return &node{kind: kindBinary, op: op, dep: [2]*node{x, y}}
}

// Zero returns the canonical 0 node.
func (c *Context) Zero() Expr { return Expr{c, c.zero} }

// One returns the canonical 1 node.
func (c *Context) One() Expr { return Expr{c, c.one} }

// Two returns the canonical 2 node.
func (c *Context) Two() Expr { return Expr{c, c.two} }

// MinusOne returns the canonical -1 node.
func (c *Context) MinusOne() Expr { return Expr{c, c.minusOne} }

// NaN returns the canonical NaN node. Division by a zero operand rewrites
// to this node rather than failing.
func (c *Context) NaN() Expr { return Expr{c, c.nan} }

// Inf returns the canonical +Inf node.
func (c *Context) Inf() Expr { return Expr{c, c.inf} }

// MinusInf returns the canonical -Inf node.
func (c *Context) MinusInf() Expr { return Expr{c, c.minusInf} }

// Lit returns the canonical constant node for v. The classification is the
// same on every call: NaN and the infinities map to their singletons;
// integral values that fit an int64 check the 0/1/2/-1 singletons and then
// the integer cache; everything else (integral values at or beyond 2^63
// included) goes through the real cache. Two Lit calls with equal argument
// therefore always return the identical node.
func (c *Context) Lit(v float64) Expr {
	if math.IsNaN(v) {
		return Expr{c, c.nan}
	}
	if math.IsInf(v, 0) {
		if v > 0 {
			return Expr{c, c.inf}
		}
		return Expr{c, c.minusInf}
	}
	if v == math.Trunc(v) && v >= -maxExactInt64 && v < maxExactInt64 {
		switch v {
		case 0:
			return Expr{c, c.zero}
		case 1:
			return Expr{c, c.one}
		case 2:
			return Expr{c, c.two}
		case -1:
			return Expr{c, c.minusOne}
		}
		iv := int64(v)
		if n, ok := c.intCache[iv]; ok {
			return Expr{c, n}
		}
		n := c.newConst(v)
		c.intCache[iv] = n
		return Expr{c, n}
	}
	if n, ok := c.realCache[v]; ok {
		return Expr{c, n}
	}
	n := c.newConst(v)
	c.realCache[v] = n
	return Expr{c, n}
}

// Int is Lit for integer literals.
func (c *Context) Int(v int64) Expr { return c.Lit(float64(v)) }

// Symbol returns a new free variable. Every call allocates a fresh leaf:
// two symbols with the same name are distinct nodes (names are labels, not
// identities).
func (c *Context) Symbol(name string) Expr {
	return Expr{c, c.newSymbol(name)}
}

// FreshSymbol returns a symbol whose name is guaranteed unique across
// contexts and processes, for auxiliary variables introduced by
// transformations. The name is prefix_<seq>_<uuid fragment>.
func (c *Context) FreshSymbol(prefix string) Expr {
	if prefix == "" {
		prefix = "v"
	}
	c.symSeq++
	name := prefix + "_" + strconv.FormatInt(c.symSeq, 10) + "_" + uuid.NewString()[:8]
	return Expr{c, c.newSymbol(name)}
}
