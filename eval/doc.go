/*
Package eval reduces a term.Node, applied to concrete arguments, to its
value: a hereditarily finite set.

Evaluation is lazy term rewriting over a stack of Expression records. Each
step pops (or rewrites in place) the top-of-stack Expression according to
its Node's Kind, following exactly the reduction rules of the term
language: Identity and UnionPlus close as soon as their arguments do,
IfThenElse and In dispatch on equality and membership of their evaluated
arguments, Composition and Projection rewrite into a new Expression over
the existing stack entries, and Recursion unfolds one step of ∈-induction
at a time via the internal Union/Merge node kinds. A handful of frequently
re-entered term shapes (the recursive definitions behind if-then-else
and the two constant-zero base cases) are intercepted by a native
Function callback instead of going through the general rewrite, the way a
hot path gets special-cased in a tree-walking interpreter.
*/
package eval

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'zerkel.eval'.
func tracer() tracing.Trace {
	return tracing.Select("zerkel.eval")
}
