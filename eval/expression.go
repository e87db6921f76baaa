package eval

import (
	"fmt"
	"strings"

	"github.com/zerkel-lang/zerkel/hfset"
	"github.com/zerkel-lang/zerkel/term"
)

// Expression is one node of the lazy evaluation graph: either closed (it
// already holds a value) or lazy (it still names a term.Node and the
// Expressions bound to that node's free variables). Mirroring term.Node's
// own design, both states share a single struct instead of a ClosedExpression/
// LazyExpression class pair — the closed flag is the discriminant.
type Expression struct {
	closed      bool
	value       *hfset.Set
	interpreter *Interpreter
	node        *term.Node
	parameters  []*Expression
}

// IsClosed reports whether e already holds a value.
func (e *Expression) IsClosed() bool { return e.closed }

// Value returns e's value. Only meaningful once IsClosed reports true.
func (e *Expression) Value() *hfset.Set { return e.value }

// Node returns the term.Node e currently names. Meaningless once e is closed.
func (e *Expression) Node() *term.Node { return e.node }

// Parameters returns the Expressions bound to e.node's free variables.
func (e *Expression) Parameters() []*Expression { return e.parameters }

func (e *Expression) assignValue(v *hfset.Set) {
	e.value = v
	e.closed = true
}

// changeNode rewrites e in place to name a different term.Node and argument
// list: every evaluation step that isn't a terminal assignment is exactly
// this kind of rewrite (Projection peeling padding, Composition descending
// into its compounds, Recursion unfolding one step of ∈-induction).
func (e *Expression) changeNode(node *term.Node, parameters []*Expression) {
	e.node = node
	e.parameters = parameters
}

func (e *Expression) String() string {
	if e.closed {
		return e.value.String()
	}
	parts := make([]string, len(e.parameters))
	for i, p := range e.parameters {
		parts[i] = p.String()
	}
	return fmt.Sprintf("%s(%s)", e.node, strings.Join(parts, ", "))
}

// lazyKey identifies a (node, parameters) pair for the interpreter's
// memoization cache. Two Expressions built from the same node and the same
// (identical, not merely equal) parameter Expressions are the same
// Expression — matching the source interpreter's tuple-of-object-identity
// cache key.
type lazyKey struct {
	node   *term.Node
	params string
}

func paramKey(parameters []*Expression) string {
	var b strings.Builder
	for _, p := range parameters {
		fmt.Fprintf(&b, "%p;", p)
	}
	return b.String()
}

// newClosedExpression returns the (cached) Expression wrapping value under
// interp. Closed expressions are cached by value identity: since hfset.Set
// values are hash-consed, every occurrence of the same set reuses one
// Expression.
func newClosedExpression(interp *Interpreter, value *hfset.Set) *Expression {
	if existing, ok := interp.closedCache[value]; ok {
		return existing
	}
	e := &Expression{closed: true, value: value, interpreter: interp}
	interp.closedCache[value] = e
	return e
}

// newLazyExpression returns the (cached) Expression naming node applied to
// parameters under interp.
func newLazyExpression(interp *Interpreter, node *term.Node, parameters []*Expression) *Expression {
	key := lazyKey{node: node, params: paramKey(parameters)}
	if existing, ok := interp.lazyCache[key]; ok {
		return existing
	}
	e := &Expression{interpreter: interp, node: node, parameters: parameters}
	interp.lazyCache[key] = e
	return e
}
