package enum

import (
	"testing"

	"github.com/zerkel-lang/zerkel/term"
)

func TestInConstructorCanBeSimplifiedWhenBranchesCoincide(t *testing.T) {
	f := term.UnionPlus()
	if !inConstructorCanBeSimplified(f, f) {
		t.Errorf("expected In(f, f) to be simplifiable")
	}
}

func TestInConstructorCanBeSimplifiedWhenLeftPaddedBothSides(t *testing.T) {
	p := term.Projection(term.UnionPlus(), 1, 0) // arity 3, left > 0
	q := term.Projection(term.UnionPlus(), 2, 0) // arity 4, left > 0
	if !inConstructorCanBeSimplified(p, q) {
		t.Errorf("expected two left-padded projections above arity 2 to be simplifiable")
	}
}

func TestInConstructorNotSimplifiedForDistinctUnpaddedBranches(t *testing.T) {
	p := term.UnionPlus()
	q := term.Projection(term.UnionPlus(), 0, 1)
	if inConstructorCanBeSimplified(p, q) {
		t.Errorf("did not expect In(p, q) to be simplifiable")
	}
}

func TestCompoundsCanBeSimplifiedForLoneIdentity(t *testing.T) {
	if !compoundsCanBeSimplified([]*term.Node{term.Identity()}) {
		t.Errorf("expected a lone Identity compound to be simplifiable")
	}
}

func TestCompoundsCanBeSimplifiedForLoneComposition(t *testing.T) {
	c := term.Composition(term.Identity(), term.EmptySet())
	if !compoundsCanBeSimplified([]*term.Node{c}) {
		t.Errorf("expected a lone Composition compound to be simplifiable")
	}
}

func TestCompoundsCanBeSimplifiedWhenAllLeftPadded(t *testing.T) {
	compounds := []*term.Node{
		term.Projection(term.UnionPlus(), 1, 0),
		term.Projection(term.Identity(), 1, 0),
	}
	if !compoundsCanBeSimplified(compounds) {
		t.Errorf("expected uniformly left-padded projections to be simplifiable")
	}
}

func TestCompoundsNotSimplifiedForMixedPadding(t *testing.T) {
	compounds := []*term.Node{
		term.Projection(term.UnionPlus(), 1, 0),
		term.Projection(term.Identity(), 0, 1),
	}
	if compoundsCanBeSimplified(compounds) {
		t.Errorf("did not expect mixed left/right padding to be simplifiable")
	}
}

func TestCompositionCanBeSimplifiedForIfThenElseWithEqualBranches(t *testing.T) {
	x := term.Identity()
	p := term.Composition(term.IfThenElse(), x, x, term.EmptySet(), term.UnionPlus())
	if !compositionCanBeSimplified(p) {
		t.Errorf("expected IfThenElse composition with x==y to be simplifiable")
	}
}

func TestCompositionNotSimplifiedForGenericIfThenElse(t *testing.T) {
	p := term.Composition(term.IfThenElse(), term.Identity(), term.UnionPlus(), term.EmptySet(), term.Recursion(term.UnionPlus()))
	if compositionCanBeSimplified(p) {
		t.Errorf("did not expect a generic IfThenElse composition to be simplifiable")
	}
}

func TestCompositionCanBeSimplifiedForInWithConstantTail(t *testing.T) {
	f := term.In(term.UnionPlus(), term.UnionPlus())
	p := term.Composition(f, term.EmptySet(), term.EmptySet())
	if !compositionCanBeSimplified(p) {
		t.Errorf("expected In-headed composition with constant tail to be simplifiable")
	}
}
