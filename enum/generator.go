package enum

import "github.com/zerkel-lang/zerkel/term"

// Padding controls how Generator.generate pads the argument list of the
// terms it builds at a given recursion depth.
type Padding int

const (
	// NoPadding forbids introducing a Projection at this depth.
	NoPadding Padding = iota
	// RightOnly allows only right-padding Projections (generateRight).
	RightOnly
	// LeftAndRight allows both left- and right-padding Projections
	// (generateLeftRight).
	LeftAndRight
)

// Generator enumerates the well-formed terms of a fixed size and arity.
// UseInOperator selects whether the membership operator (In) may appear in
// the enumeration at all, or whether IfThenElse stands in for it at size 1,
// arity 4 instead — the two term languages the original interpreter
// supports.
type Generator struct {
	Size          int
	Arity         int
	UseInOperator bool

	cache map[generateKey][]*term.Node
}

// NewGenerator returns a Generator for terms of the given size and arity.
func NewGenerator(size, arity int, useInOperator bool) *Generator {
	return &Generator{
		Size:          size,
		Arity:         arity,
		UseInOperator: useInOperator,
		cache:         map[generateKey][]*term.Node{},
	}
}

// Generate returns every well-formed term of g.Size and g.Arity.
func (g *Generator) Generate() []*term.Node {
	return g.generate(g.Size, g.Arity, NoPadding, true, true)
}

type generateKey struct {
	useInOperator    bool
	size, arity      int
	padding          Padding
	allowComposition bool
	allowInOperator  bool
}

// generate is the memoized core of the enumeration: every recursive call
// the five generate* helpers make routes back through here, so a given
// (size, arity, padding, allowComposition, allowInOperator) combination is
// built exactly once per Generator.
func (g *Generator) generate(size, arity int, padding Padding, allowComposition, allowInOperator bool) []*term.Node {
	key := generateKey{g.UseInOperator, size, arity, padding, allowComposition, allowInOperator}
	if cached, ok := g.cache[key]; ok {
		return cached
	}
	var result []*term.Node
	t := max(1, arity-3)
	if size >= t {
		switch {
		case size == 1:
			switch arity {
			case 0:
				result = append(result, term.EmptySet())
			case 1:
				result = append(result, term.Identity())
			case 2:
				result = append(result, term.UnionPlus())
			}
			if arity == 4 && !g.UseInOperator {
				result = append(result, term.IfThenElse())
			}
		case size > 1:
			if g.UseInOperator && allowInOperator && arity > 1 && size > 3 {
				result = append(result, g.generateInOperator(arity, size)...)
			}
			switch padding {
			case LeftAndRight:
				result = append(result, g.generateLeftRight(arity, size)...)
			case RightOnly:
				result = append(result, g.generateRight(arity, size)...)
			}
			if arity > 0 {
				result = append(result, g.generateRecursion(arity, size)...)
			}
			if allowComposition {
				result = append(result, g.generateComposition(arity, size)...)
			}
		}
	}
	g.cache[key] = result
	return result
}

// generateInOperator builds In(f, g) for every pair of smaller terms that
// together fill size and that the blacklist and the simplification
// predicate don't already rule out.
func (g *Generator) generateInOperator(arity, size int) []*term.Node {
	var out []*term.Node
	for fSize := 1; fSize < size-1; fSize++ {
		fs := g.generate(fSize, arity, LeftAndRight, true, false)
		gs := g.generate(size-fSize-1, arity, LeftAndRight, true, false)
		for _, f := range fs {
			for _, gg := range gs {
				if !inConstructorCanBeSimplified(f, gg) {
					out = append(out, term.In(f, gg))
				}
			}
		}
	}
	return out
}

// generateLeftRight builds every Projection that pads a smaller term with
// both leading and trailing ignored arguments.
func (g *Generator) generateLeftRight(arity, size int) []*term.Node {
	var out []*term.Node
	upper := min(arity+1, size)
	for n := 1; n < upper; n++ {
		for _, f := range g.generate(size-n, arity-n, NoPadding, true, true) {
			if n == arity {
				out = append(out, term.Projection(f, n, 0))
				continue
			}
			for r := 0; r <= n; r++ {
				out = append(out, term.Projection(f, n-r, r))
			}
		}
	}
	return out
}

// generateRight builds every Projection that pads a smaller term with
// trailing ignored arguments only.
func (g *Generator) generateRight(arity, size int) []*term.Node {
	var out []*term.Node
	upper := min(arity, size)
	for r := 1; r < upper; r++ {
		for _, f := range g.generate(size-r, arity-r, NoPadding, true, true) {
			out = append(out, term.Projection(f, 0, r))
		}
	}
	return out
}

// generateRecursion builds R(g) for every g of one smaller size and one
// greater arity, dropping the blacklisted shapes.
func (g *Generator) generateRecursion(arity, size int) []*term.Node {
	padding := NoPadding
	if arity <= 1 {
		padding = RightOnly
	}
	var out []*term.Node
	for _, gg := range g.generate(size-1, arity+1, padding, true, true) {
		p := term.Recursion(gg)
		if !isBlacklisted(p) {
			out = append(out, p)
		}
	}
	return out
}

// generateComposition builds Composition(f, compounds...) for every split
// of size into an f of some smaller size and arity and a set of compounds
// filling the remainder, pruning with both simplification predicates and
// folding arity-0 results through the constant cache.
func (g *Generator) generateComposition(arity, size int) []*term.Node {
	var out []*term.Node
	t := max(1, arity-3)
	for fSize := 1; fSize < size-t; fSize++ {
		gSize := size - fSize - 1
		maxArity := min(fSize+3, gSize/t+1)
		startArity := 1
		if fSize == 1 {
			startArity = 2
		}
		for fArity := startArity; fArity <= maxArity; fArity++ {
			fPrograms := g.generate(fSize, fArity, NoPadding, true, true)
			if len(fPrograms) == 0 {
				continue
			}
			for _, r := range starsAndBars(gSize-fArity*t, fArity, t) {
				lists := make([][]*term.Node, len(r))
				for i, l := range r {
					lists[i] = g.generate(l, arity, LeftAndRight, true, true)
				}
				for _, compounds := range cartesianProduct(lists) {
					if compoundsCanBeSimplified(compounds) {
						continue
					}
					for _, f := range fPrograms {
						p := term.Composition(f, compounds...)
						if compositionCanBeSimplified(p) {
							continue
						}
						if p.Arity > 0 {
							out = append(out, p)
						} else {
							out = append(out, cacheConstant(p)...)
						}
					}
				}
			}
		}
	}
	return out
}
