/*
Package enum enumerates the well-formed terms of a given size and arity.

Size is term.Node.Size: one plus the sizes of a term's children, except that
a Projection counts its child's size plus one per padding argument.
Enumeration proceeds by induction on size, running at each size/arity pair
every applicable one of five term-building strategies — the membership
operator, left/right argument padding, ∈-recursion, and composition — each
of which recurses into smaller sizes via the same memoized generate call. A blacklist of known-reducible
shapes and three simplification predicates prune terms that are provably
equal to a smaller term already produced elsewhere, and a constant cache
keeps only the smallest representative of each distinct arity-0 result.
*/
package enum

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'zerkel.enum'.
func tracer() tracing.Trace {
	return tracing.Select("zerkel.enum")
}
