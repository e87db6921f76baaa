/*
Package hfset implements hereditarily finite pure sets: a finite collection
of sets, unordered and deduplicated, with no infinite descending membership
chain. It is the sole data type the zerkel term language operates over.

Sets are interned: at most one in-memory representative exists per distinct
set value, for the lifetime of the process (or until Clear is called). Two
sets are structurally equal iff they are the same interned pointer.
*/
package hfset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'zerkel.hfset'.
func tracer() tracing.Trace {
	return tracing.Select("zerkel.hfset")
}
