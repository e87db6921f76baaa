package hfset_test

import (
	"testing"

	"github.com/zerkel-lang/zerkel/hfset"
)

func TestParseOrdinalLiteral(t *testing.T) {
	s, err := hfset.Parse("3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n, ok := s.Ordinal(); !ok || n != 3 {
		t.Fatalf("Parse(\"3\") = %v, want ordinal 3", s)
	}
}

func TestParseGenerateLiteral(t *testing.T) {
	s, err := hfset.Parse("<5>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != hfset.GenerateN(5) {
		t.Fatalf("Parse(\"<5>\") did not match GenerateN(5)")
	}
}

func TestParseGroupLiteral(t *testing.T) {
	s, err := hfset.Parse("{0, 2}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Cardinal() != 2 {
		t.Fatalf("Parse(\"{0, 2}\") should have cardinal 2, got %d", s.Cardinal())
	}
}

func TestParseEmptyGroup(t *testing.T) {
	s, err := hfset.Parse("{}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != hfset.Empty() {
		t.Fatalf("Parse(\"{}\") should be the empty set")
	}
}

func TestParseTupleLiteral(t *testing.T) {
	s, err := hfset.Parse("(0, 1, 2)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.IsTuple() {
		t.Fatalf("Parse(\"(0, 1, 2)\") should be recognised as a tuple")
	}
}

func TestParseNestedLiteral(t *testing.T) {
	s, err := hfset.Parse("{0, {1, 2}}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Cardinal() != 2 {
		t.Fatalf("Parse(\"{0, {1, 2}}\") should have cardinal 2, got %d", s.Cardinal())
	}
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		"{0, 1",
		"<5",
		"(0)",
		"",
		"x",
	}
	for _, text := range cases {
		if _, err := hfset.Parse(text); err == nil {
			t.Errorf("Parse(%q) should have failed", text)
		}
	}
}

func TestParseErrorReportsColumn(t *testing.T) {
	_, err := hfset.Parse("{0, x}")
	if err == nil {
		t.Fatalf("expected an error")
	}
	var pe *hfset.ParseError
	if !asParseError(err, &pe) {
		t.Fatalf("expected a *hfset.ParseError, got %T", err)
	}
	if pe.Column != 4 {
		t.Errorf("expected column 4, got %d", pe.Column)
	}
}

func asParseError(err error, target **hfset.ParseError) bool {
	if pe, ok := err.(*hfset.ParseError); ok {
		*target = pe
		return true
	}
	return false
}
