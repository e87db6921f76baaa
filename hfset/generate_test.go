package hfset_test

import (
	"testing"

	"github.com/zerkel-lang/zerkel/hfset"
)

func TestGenerateMatchesOrdinalForOrdinalValues(t *testing.T) {
	// Generate inverts Value: decoding the encoding of each ordinal (0, 1,
	// 3, 11 for ordinals 0..3) yields the same interned set.
	for n := 0; n < 4; n++ {
		g := hfset.GenerateOrdinal(n)
		v := g.Value()
		got := hfset.Generate(v)
		if got != g {
			t.Fatalf("Generate(Value(ordinal %d)) did not round-trip to the same interned set", n)
		}
	}
}

func TestGenerateSingleton(t *testing.T) {
	s0 := hfset.GenerateSingleton(0)
	if s0.Cardinal() != 0 {
		t.Fatalf("GenerateSingleton(0) should be the empty set")
	}
	s1 := hfset.GenerateSingleton(1)
	if !s1.IsSingleton() || s1.Elements()[0].Cardinal() != 0 {
		t.Fatalf("GenerateSingleton(1) should be {∅}")
	}
	s3 := hfset.GenerateSingleton(3)
	depth := 0
	cur := s3
	for cur.Cardinal() == 1 {
		cur = cur.Elements()[0]
		depth++
	}
	if depth != 3 || cur.Cardinal() != 0 {
		t.Fatalf("GenerateSingleton(3) should nest three singletons around ∅, got depth %d", depth)
	}
}

func TestGenerateTuplePair(t *testing.T) {
	zero := hfset.GenerateOrdinal(0)
	one := hfset.GenerateOrdinal(1)
	pair := hfset.GenerateTuple(zero, one)
	if !pair.IsTuple() {
		t.Fatalf("GenerateTuple(0, 1) should be recognised as a tuple")
	}
}

func TestGenerateTupleDegenerateSingleElement(t *testing.T) {
	zero := hfset.GenerateOrdinal(0)
	pair := hfset.GenerateTuple(zero, zero)
	if !pair.IsSingleton() {
		t.Fatalf("GenerateTuple(x, x) should degenerate to a nested singleton")
	}
}

func TestGenerateRankCountsMatchA038081(t *testing.T) {
	// rank 0 has exactly one set (∅); rank 1 has exactly one set ({∅}).
	if got := len(hfset.GenerateRank(0)); got != 1 {
		t.Errorf("GenerateRank(0): got %d sets, want 1", got)
	}
	if got := len(hfset.GenerateRank(1)); got != 1 {
		t.Errorf("GenerateRank(1): got %d sets, want 1", got)
	}
	for _, s := range hfset.GenerateRank(1) {
		if s.Rank() != 1 {
			t.Errorf("GenerateRank(1) produced a set of rank %d", s.Rank())
		}
	}
}

func TestGenerateCompleteIncludesAllLowerRanks(t *testing.T) {
	complete := hfset.GenerateComplete(1)
	for _, e := range complete.Elements() {
		if e.Rank() > 1 {
			t.Errorf("GenerateComplete(1) contains a set of rank %d", e.Rank())
		}
	}
}

func TestGenerateRandomRespectsRank(t *testing.T) {
	for i := 0; i < 10; i++ {
		s := hfset.GenerateRandom(2)
		if s.Rank() != 2 {
			t.Fatalf("GenerateRandom(2) produced rank %d", s.Rank())
		}
	}
}

func TestGenerateTransitiveAllTransitive(t *testing.T) {
	for _, s := range hfset.GenerateTransitive(8) {
		if !s.IsTransitive() {
			t.Errorf("GenerateTransitive produced a non-transitive set: %s", s)
		}
	}
}
