package enum

import "github.com/zerkel-lang/zerkel/term"

// inConstructorCanBeSimplified reports whether In(p, q) is provably reducible
// to a smaller term: when the two branches coincide, when either branch is
// itself a known-reducible shape, or when both branches are left-padded
// projections of arity above 2 (in which case the padding can be hoisted
// out of the In node entirely).
func inConstructorCanBeSimplified(p, q *term.Node) bool {
	if p == q {
		return true
	}
	if isBlacklisted(p) || isBlacklisted(q) {
		return true
	}
	if p.Kind == term.ProjectionKind && q.Kind == term.ProjectionKind &&
		p.Left > 0 && q.Left > 0 && p.Arity > 2 {
		return true
	}
	return false
}

// compoundsCanBeSimplified reports whether a Composition's argument list is
// provably reducible: a lone Identity or Composition compound collapses
// into its parent, and a list of projections that all share a side with no
// projected-over content can have that padding hoisted to the parent.
func compoundsCanBeSimplified(compounds []*term.Node) bool {
	if len(compounds) == 1 {
		switch compounds[0].Kind {
		case term.IdentityKind, term.CompositionKind:
			return true
		}
	}
	allProjections := true
	for _, c := range compounds {
		if c.Kind != term.ProjectionKind {
			allProjections = false
			break
		}
	}
	if !allProjections {
		return false
	}
	containsLeft, containsRight := true, true
	for _, c := range compounds {
		f := c.Children[0]
		if !(c.Left > 0 || f.Arity == 0) {
			containsLeft = false
		}
		if !(c.Right > 0 || f.Arity == 0) {
			containsRight = false
		}
	}
	return containsLeft || containsRight
}

// compositionCanBeSimplified reports whether Composition(f, g...) is
// provably reducible: f being a blacklisted shape, f being IfThenElse with
// either argument pair equal, f being R(IfThenElse()) with a degenerate
// accumulator or equal membership operands (its second and third
// compounds), or f being an In node whose last two compounds are both
// constants.
func compositionCanBeSimplified(p *term.Node) bool {
	if isBlacklisted(p) {
		return true
	}
	f := p.Children[0]
	g := p.Children[1:]
	if f.Kind == term.IfThenElseKind && (g[0] == g[1] || g[2] == g[3]) {
		return true
	}
	if f == term.Recursion(term.IfThenElse()) {
		degenerate := g[0].Kind == term.ProjectionKind && g[0].Children[0] == term.EmptySet()
		if degenerate || g[1] == g[2] {
			return true
		}
	}
	if f.Kind == term.InKind {
		allConstant := true
		for _, c := range g[len(g)-2:] {
			if c.Arity != 0 {
				allConstant = false
				break
			}
		}
		if allConstant {
			return true
		}
	}
	return false
}
