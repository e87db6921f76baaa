/*
Package lang parses zerkel program text into term.Node trees.

The surface syntax has two layers: a primitive single-character notation
(E I + ? ! < > o R, directly mirroring the term package's constructors) and
a library of English-keyword macros (successor, pair, map, select, …) that
expand to primitive notation before a term.Node is built. A macro's
expansion is itself parsed by the same grammar, so macros may reference
other macros; the expansion terminates because every macro ultimately
bottoms out in primitive notation.
*/
package lang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'zerkel.lang'.
func tracer() tracing.Trace {
	return tracing.Select("zerkel.lang")
}
