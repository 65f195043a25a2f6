package sx

// Scratch holds transient per-node traversal state (an integer slot and a
// mark bit) outside the nodes themselves, keyed by node identity. Each
// traversal owns its own Scratch, so nested or repeated traversals cannot
// see each other's leftovers; "resetting between uses" is just dropping the
// value.
type Scratch struct {
	temp   map[*node]int
	marked map[*node]bool
}

// NewScratch returns empty traversal state.
func NewScratch() *Scratch {
	return &Scratch{
		temp:   make(map[*node]int),
		marked: make(map[*node]bool),
	}
}

// SetTemp stores an integer against the node of x.
func (s *Scratch) SetTemp(x Expr, v int) { s.temp[x.node()] = v }

// GetTemp returns the integer stored for the node of x, zero if unset.
func (s *Scratch) GetTemp(x Expr) int { return s.temp[x.node()] }

// Mark marks the node of x.
func (s *Scratch) Mark(x Expr) { s.marked[x.node()] = true }

// Marked reports whether the node of x is marked.
func (s *Scratch) Marked(x Expr) bool { return s.marked[x.node()] }

// Walk visits every distinct node reachable from e exactly once, operands
// before parents (a topological order of the DAG), calling fn on each.
func Walk(e Expr, fn func(Expr)) {
	s := NewScratch()
	walkNode(e.ctx(), e.node(), s, fn)
}

func walkNode(c *Context, n *node, s *Scratch, fn func(Expr)) {
	if s.marked[n] {
		return
	}
	s.marked[n] = true
	for i := 0; i < n.ndeps(); i++ {
		walkNode(c, n.dep[i], s, fn)
	}
	fn(Expr{c, n})
}

// NodeCount returns the number of distinct nodes in the graph of e. Shared
// sub-expressions count once; this is the quantity simplification and
// canonicalization keep small.
func NodeCount(e Expr) int {
	count := 0
	Walk(e, func(Expr) { count++ })
	return count
}
