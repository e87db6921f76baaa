package term_test

import (
	"errors"
	"testing"

	"github.com/zerkel-lang/zerkel/term"
)

func TestAnalyzeAcceptsWellFormedTerm(t *testing.T) {
	rPlus := term.Recursion(term.Composition(term.UnionPlus(),
		term.Projection(term.Identity(), 0, 1), term.Projection(term.Identity(), 1, 0)))
	if err := term.Analyze(rPlus); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAnalyzeMismatchedArity(t *testing.T) {
	f := term.Identity()
	g := term.Composition(term.UnionPlus(), term.Projection(term.Identity(), 0, 1), term.Projection(term.Identity(), 1, 0))
	in := term.In(f, g)
	err := term.Analyze(in)
	var mismatched *term.MismatchedArity
	if !errors.As(err, &mismatched) {
		t.Fatalf("expected *term.MismatchedArity, got %v (%T)", err, err)
	}
}

func TestAnalyzeInvalidInOperatorArity(t *testing.T) {
	in := term.In(term.Identity(), term.Identity())
	err := term.Analyze(in)
	var invalid *term.InvalidInOperatorArity
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *term.InvalidInOperatorArity, got %v (%T)", err, err)
	}
}

func TestAnalyzeCompositionArityErrors(t *testing.T) {
	t.Run("not enough", func(t *testing.T) {
		in := term.In(term.UnionPlus(), term.UnionPlus())
		comp := term.Composition(in)
		err := term.Analyze(comp)
		var notEnough *term.NotEnoughCompounds
		if !errors.As(err, &notEnough) {
			t.Fatalf("expected *term.NotEnoughCompounds, got %v (%T)", err, err)
		}
	})
	t.Run("too many", func(t *testing.T) {
		comp := term.Composition(term.Identity(), term.EmptySet(), term.EmptySet())
		err := term.Analyze(comp)
		var tooMany *term.TooManyCompounds
		if !errors.As(err, &tooMany) {
			t.Fatalf("expected *term.TooManyCompounds, got %v (%T)", err, err)
		}
	})
	t.Run("mismatched compound arity", func(t *testing.T) {
		in := term.In(term.UnionPlus(), term.UnionPlus())
		comp := term.Composition(in, term.Identity(), term.Projection(term.Identity(), 1, 0))
		err := term.Analyze(comp)
		var mismatched *term.OneCompoundMismatchedArity
		if !errors.As(err, &mismatched) {
			t.Fatalf("expected *term.OneCompoundMismatchedArity, got %v (%T)", err, err)
		}
	})
}

func TestAnalyzeInvalidRecursionArity(t *testing.T) {
	rec := term.Recursion(term.Identity())
	err := term.Analyze(rec)
	var invalid *term.InvalidRecursionArity
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *term.InvalidRecursionArity, got %v (%T)", err, err)
	}
}
