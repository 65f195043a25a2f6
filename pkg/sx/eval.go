package sx

import "fmt"

// Eval computes the numeric value of e with symbols bound by env. Every
// distinct node is evaluated once (results are memoized across shared
// sub-expressions). An unbound symbol is an error; mathematical domain
// violations are not: they surface as NaN/Inf values per IEEE-754, the
// same laziness the simplifier applies to division by zero.
func Eval(e Expr, env map[string]float64) (float64, error) {
	memo := make(map[*node]float64)
	return evalNode(e.node(), env, memo)
}

func evalNode(n *node, env map[string]float64, memo map[*node]float64) (float64, error) {
	if v, ok := memo[n]; ok {
		return v, nil
	}
	var v float64
	switch n.kind {
	case kindConst:
		v = n.val
	case kindSymbol:
		bound, ok := env[n.name]
		if !ok {
			return 0, fmt.Errorf("sx: unbound symbol %q", n.name)
		}
		v = bound
	case kindUnary:
		x, err := evalNode(n.dep[0], env, memo)
		if err != nil {
			return 0, err
		}
		v = n.op.apply(x, 0)
	case kindBinary:
		x, err := evalNode(n.dep[0], env, memo)
		if err != nil {
			return 0, err
		}
		y, err := evalNode(n.dep[1], env, memo)
		if err != nil {
			return 0, err
		}
		v = n.op.apply(x, y)
	}
	memo[n] = v
	return v, nil
}
