package sx

// Equal reports whether a and b are structurally equal within the given
// recursion depth. Identical nodes compare equal at any depth (for
// constants this is exact, by canonicalization); depth 0 degrades to the
// identity check. For positive depth the comparison recurses into operator
// structure: operator codes must match and every operand pair must be Equal
// within depth-1.
//
// A true result is certain. A false result only means "not provably equal
// within the budget": two value-equal graphs built from distinct nodes
// deeper than the budget compare unequal.
func Equal(a, b Expr, depth int) bool {
	return eqNodeDepth(a.node(), b.node(), depth)
}

func eqNodeDepth(a, b *node, depth int) bool {
	if a == b {
		return true
	}
	if depth <= 0 {
		return false
	}
	return eqNodeRec(a, b, depth)
}

// eqNodeRec is the recursive arm; callers must have handled identity and a
// non-positive budget already.
func eqNodeRec(a, b *node, depth int) bool {
	if depth < 1 {
		panic("sx: structural equality recursion with non-positive depth")
	}
	if a.kind != b.kind || a.op != b.op {
		return false
	}
	nd := a.ndeps()
	if nd == 0 {
		// Distinct leaves: distinct symbols are distinct variables, and
		// equal-valued constants would have been identical.
		return false
	}
	for i := 0; i < nd; i++ {
		if !eqNodeDepth(a.dep[i], b.dep[i], depth-1) {
			return false
		}
	}
	return true
}
