/*
Package term implements the abstract syntax of the zerkel term language: a
handful of primitive combinators over hereditarily finite sets, interned so
that structurally identical terms share one node, plus a semantic analyser
that validates the arity invariants a well-formed term must satisfy.
*/
package term

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'zerkel.term'.
func tracer() tracing.Trace {
	return tracing.Select("zerkel.term")
}
