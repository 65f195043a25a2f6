package sx

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// String renders the expression in a human-readable infix form. The form is
// a debugging aid, not a stable serialization format: operator nodes print
// fully parenthesized, constants in shortest float notation.
func (x Expr) String() string {
	var b strings.Builder
	writeInfix(&b, x.node())
	return b.String()
}

func writeInfix(b *strings.Builder, n *node) {
	switch n.kind {
	case kindConst:
		b.WriteString(formatConst(n.val))
	case kindSymbol:
		b.WriteString(n.name)
	case kindUnary:
		switch n.op {
		case OpNeg:
			b.WriteString("(-")
			writeInfix(b, n.dep[0])
			b.WriteString(")")
		case OpInv:
			b.WriteString("(1/")
			writeInfix(b, n.dep[0])
			b.WriteString(")")
		case OpNot:
			b.WriteString("(!")
			writeInfix(b, n.dep[0])
			b.WriteString(")")
		default:
			b.WriteString(n.op.String())
			b.WriteString("(")
			writeInfix(b, n.dep[0])
			b.WriteString(")")
		}
	case kindBinary:
		if sym := opTable[n.op].infix; sym != "" {
			b.WriteString("(")
			writeInfix(b, n.dep[0])
			b.WriteString(sym)
			writeInfix(b, n.dep[1])
			b.WriteString(")")
		} else {
			b.WriteString(n.op.String())
			b.WriteString("(")
			writeInfix(b, n.dep[0])
			b.WriteString(",")
			writeInfix(b, n.dep[1])
			b.WriteString(")")
		}
	}
}

func formatConst(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteTree dumps the operator tree of e to w, one node per line, children
// indented under their parent. Sub-expressions with more than one parent
// are labeled #n on first visit and printed as "@n" afterwards, making the
// sharing that String hides visible.
func WriteTree(w io.Writer, e Expr) error {
	n := e.node()

	parents := make(map[*node]int)
	countParents(n, parents, make(map[*node]bool))

	labels := make(map[*node]int)
	printed := make(map[*node]bool)
	next := 0
	var dump func(n *node, depth int) error
	dump = func(n *node, depth int) error {
		indent := strings.Repeat("  ", depth)
		if printed[n] {
			_, err := fmt.Fprintf(w, "%s@%d\n", indent, labels[n])
			return err
		}
		label := ""
		if parents[n] > 1 {
			next++
			labels[n] = next
			printed[n] = true
			label = fmt.Sprintf("  #%d", next)
		}
		var head string
		switch n.kind {
		case kindConst:
			head = formatConst(n.val)
		case kindSymbol:
			head = n.name
		default:
			head = n.op.String()
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", indent, head, label); err != nil {
			return err
		}
		for i := 0; i < n.ndeps(); i++ {
			if err := dump(n.dep[i], depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	return dump(n, 0)
}

func countParents(n *node, parents map[*node]int, seen map[*node]bool) {
	if seen[n] {
		return
	}
	seen[n] = true
	for i := 0; i < n.ndeps(); i++ {
		parents[n.dep[i]]++
		countParents(n.dep[i], parents, seen)
	}
}
