package enum

import (
	"github.com/emirpasic/gods/maps/treemap"

	"github.com/zerkel-lang/zerkel/eval"
	"github.com/zerkel-lang/zerkel/hfset"
	"github.com/zerkel-lang/zerkel/term"
)

// constantCache keeps, for every distinct set a constant (arity-0) term can
// evaluate to, the smallest term seen so far that evaluates to it. It is
// process-wide for the same reason term.internTable and hfset.internTable
// are: constant terms compare equal by the set they denote regardless of
// which Generator produced them. Keyed on hfset.Compare (the same
// comparator hfset.canonicalElements orders set elements with) via a gods
// red-black tree map, so lookups follow the canonical order rather than
// pointer hash bucketing.
var constantCache = newConstantCache()

func newConstantCache() *treemap.Map {
	m := treemap.NewWith(hfset.Compare)
	m.Put(hfset.Empty(), term.EmptySet())
	return m
}

// cacheConstant evaluates the arity-0 term p and decides whether it belongs
// in the enumeration: the first term to reach a given value is kept, a
// strictly smaller term later replaces it, and the incumbent itself is kept
// when it is seen again. A different term of equal or larger size is
// dropped, so ties go to the term seen first.
func cacheConstant(p *term.Node) []*term.Node {
	interp, err := eval.NewInterpreter(p)
	if err != nil {
		tracer().Errorf("building interpreter for constant candidate %s: %v", p, err)
		return nil
	}
	value, err := interp.Interpret()
	if err != nil {
		tracer().Errorf("evaluating constant candidate %s: %v", p, err)
		return nil
	}
	existingVal, ok := constantCache.Get(value)
	if !ok {
		constantCache.Put(value, p)
		return []*term.Node{p}
	}
	existing := existingVal.(*term.Node)
	if p.Size < existing.Size {
		constantCache.Put(value, p)
		return []*term.Node{p}
	}
	if p == existing {
		return []*term.Node{p}
	}
	return nil
}
