package lang

import (
	"fmt"
	"strings"
)

// zeroArgMacros maps a keyword to the fixed primitive-syntax template it
// expands to. None of these consume an expression from the surrounding
// input — the keyword alone fully determines the resulting term.Node.
// Templates are taken verbatim (as term strings) from the original
// interpreter's parser, and may themselves reference other keywords,
// which the parser resolves recursively.
var zeroArgMacros = map[string]string{
	"successor":     "o+II",
	"singleton":     "o+<EI",
	"pair":          "o+> singleton <I",
	"couple":        "o pair > singleton pair",
	"union":         "oRo?<>I>>I<>I<<III",
	"inter":         "o filter o o and map o in <I>I <I>I union I",
	"not":           "o?<E<1<EI",
	"and":           "o?<Eo?<1<E<1I<EI",
	"or":            "o?<1<E<1I",
	"in":            "o?<<1<<E>I<I",
	"subset":        "o and map in",
	"equal":         "o?<<1<<0>I+",
	"not equal":     "oR?<<1>I+",
	"discard":       "o union filter not equal",
	"is singleton":  "o and o map o and o map equal <I>I II",
	"is pair": `o and o map oo and map o?<<<1 oo and map o
                    or o pair o equal >>I<>I o equal >>I<<I<>I<<I>>
                    I<<<E o equal >>I<<I<>I<<I>>I III`,
	"is transitive": "o all all in II",
	"is ordinal":    "R o and o pair >I < is transitive",
	"is limit":      "o and o pair o not equal I <E o all o not equal > successor <I II",
	"is omega":      "o and o pair all o not is limit is limit",
	"extract omega":  "o union filter is omega",
	"log omega":      "oo? o log >I<I <<E<<E<I I extract omega",
	"add":            "op successor << singleton",
	"&":              "o?<o?<1<E<EI<<E<<E>I",
	"sub":            "iop add",
	"mult":           "op add <<<o successor E",
	"div":            "iop mult",
	"power":          "op mult <<<oo singleton successor E",
	"log":            "iop power",
	"predecessor":    "Ro?>R+>I>R+<I",
	"rank":           "o predecessor R>R+",
	"get first":      "o union o union filter is singleton",
	"get second":     "oo?<Io discard > union <I<<E> is singleton I get first",
}

// templateAll/templateAny build the "all"/"any" universal/existential
// quantifier macros over a supplied predicate p.
func templateAll(p string) string { return fmt.Sprintf("o and map %s", p) }
func templateAny(p string) string { return fmt.Sprintf("o or map %s", p) }

// templateMap/templateFilter build the map/filter combinators over a
// supplied function p of arity n, by recursion over the elements of the
// leading argument. Ported verbatim (as term strings) from the original
// interpreter's _build_map/_build_filter.
func templateMap(p string, n int) string {
	return fmt.Sprintf(
		"select 0 0 ... among %d for Ro? select 1 3 ... among %d"+
			" for o singleton %s select 0 among %d for I select 1"+
			" among %d for I select 2 among %d for I",
		n, n+2, p, n+2, n+2, n+2)
}

func templateFilter(p string, n int) string {
	return fmt.Sprintf(
		"select 0 0 ... among %d for Ro? select 1 3 ... among %d"+
			" for o ? select 0 among %d for singleton select none among %d"+
			" select none among %d %s select 0 among %d for I"+
			" select 1 among %d for I select 2 among %d for I",
		n, n+2, n, n, n, p, n+2, n+2, n+2)
}

// templateOp/templateIop build the general binary-operator and inverse-
// operator combinators: op folds recursiveFn/initFn over a pair's elements;
// iop searches for the y solving op(x, y) = target.
func templateOp(recursiveFn, initFn string) string {
	return fmt.Sprintf(
		"o union oRo? select 0 2 among 3 for o singleton o union map "+
			"%s %s <<<E<>I<I>I",
		recursiveFn, initFn)
}

func templateIop(op string) string {
	return fmt.Sprintf(
		"oo union o filter o?>> successor >>>Eo %s"+
			" <<I>>I<>I>I>I<I> successor <I",
		op)
}

// templateConstant builds the literal natural number n out of n nested
// successor applications of the empty set.
func templateConstant(n int) string {
	return strings.Repeat("o successor ", n) + "E"
}
