// Package sx builds and manipulates directed acyclic graphs of scalar
// symbolic expressions, the intermediate representation consumed by
// automatic-differentiation and code-generation layers.
//
// Expressions are immutable nodes (constants, symbols, unary and binary
// operator applications) shared freely between parents. A Context owns
// the canonicalization state: numeric literals are hash-consed (one node
// per distinct value, with pre-allocated singletons for 0, 1, 2, -1, NaN
// and the infinities), so value-equal constants are pointer-identical.
// Every operator construction runs a set of peephole rewrite rules that
// return an existing node whenever the result is provably equal, keeping
// graphs minimal without ever changing their value; the rules can be
// switched off per Context, in which case each operation allocates its
// literal operator node.
//
// Construction is single-threaded per Context. Finished graphs are
// immutable and may be read concurrently.
package sx
