package eval_test

import (
	"errors"
	"testing"

	"github.com/zerkel-lang/zerkel/eval"
	"github.com/zerkel-lang/zerkel/hfset"
	"github.com/zerkel-lang/zerkel/lang"
	"github.com/zerkel-lang/zerkel/term"
)

func mustInterpreter(t *testing.T, root *term.Node) *eval.Interpreter {
	t.Helper()
	interp, err := eval.NewInterpreter(root)
	if err != nil {
		t.Fatalf("NewInterpreter: unexpected error: %v", err)
	}
	return interp
}

func TestInterpretIdentity(t *testing.T) {
	interp := mustInterpreter(t, term.Identity())
	got, err := interp.Interpret(hfset.Empty())
	if err != nil {
		t.Fatalf("Interpret: unexpected error: %v", err)
	}
	if got != hfset.Empty() {
		t.Errorf("Interpret(Identity, {}) = %s, want {}", got)
	}
}

func TestInterpretUnionPlus(t *testing.T) {
	interp := mustInterpreter(t, term.UnionPlus())
	got, err := interp.Interpret(hfset.Empty(), hfset.Empty())
	if err != nil {
		t.Fatalf("Interpret: unexpected error: %v", err)
	}
	n, ok := got.Ordinal()
	if !ok || n != 1 {
		t.Errorf("Interpret(UnionPlus, {}, {}) = %s, want ordinal 1", got)
	}
}

func TestInterpretSuccessor(t *testing.T) {
	node, err := lang.Parse("successor")
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}
	interp := mustInterpreter(t, node)
	got, err := interp.Interpret(0)
	if err != nil {
		t.Fatalf("Interpret: unexpected error: %v", err)
	}
	n, ok := got.Ordinal()
	if !ok || n != 1 {
		t.Errorf("Interpret(successor, 0) = %s, want ordinal 1", got)
	}
}

func TestInterpretSuccessorOfOne(t *testing.T) {
	node, err := lang.Parse("successor")
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}
	interp := mustInterpreter(t, node)
	got, err := interp.Interpret(1)
	if err != nil {
		t.Fatalf("Interpret: unexpected error: %v", err)
	}
	n, ok := got.Ordinal()
	if !ok || n != 2 {
		t.Errorf("Interpret(successor, 1) = %s, want ordinal 2", got)
	}
}

func TestInterpretMismatchedNumberOfArguments(t *testing.T) {
	interp := mustInterpreter(t, term.Identity())
	_, err := interp.Interpret()
	var mismatched *eval.MismatchedNumberOfArguments
	if !errors.As(err, &mismatched) {
		t.Fatalf("expected *eval.MismatchedNumberOfArguments, got %v (%T)", err, err)
	}
}

func TestNewInterpreterRejectsIllFormedTerm(t *testing.T) {
	illFormed := term.In(term.Identity(), term.UnionPlus())
	if _, err := eval.NewInterpreter(illFormed); err == nil {
		t.Fatalf("expected NewInterpreter to reject an ill-formed term")
	}
}

func TestInterpretAcceptsSetLiteralArgument(t *testing.T) {
	interp := mustInterpreter(t, term.Identity())
	got, err := interp.Interpret("{}")
	if err != nil {
		t.Fatalf("Interpret: unexpected error: %v", err)
	}
	if got != hfset.Empty() {
		t.Errorf("Interpret(Identity, \"{}\") = %s, want {}", got)
	}
}

func TestFunctionRegistryInterceptsRIfThenElse(t *testing.T) {
	root := term.Recursion(term.IfThenElse())
	interp := mustInterpreter(t, root)
	got, err := interp.Interpret(hfset.Empty(), hfset.Empty(), hfset.Empty())
	if err != nil {
		t.Fatalf("Interpret: unexpected error: %v", err)
	}
	if got != hfset.Empty() {
		t.Errorf("Interpret(R?, {}, {}, {}) = %s, want {} (u==v short-circuit)", got)
	}
}

// mustInterpretOrdinal parses macro, interprets it against args, and
// returns the resulting set's ordinal, failing the test if the macro
// doesn't parse, doesn't evaluate, or the result isn't a von Neumann
// natural.
func mustInterpretOrdinal(t *testing.T, macro string, args ...eval.Argument) int {
	t.Helper()
	node, err := lang.Parse(macro)
	if err != nil {
		t.Fatalf("Parse(%q): unexpected error: %v", macro, err)
	}
	interp := mustInterpreter(t, node)
	got, err := interp.Interpret(args...)
	if err != nil {
		t.Fatalf("Interpret(%q, %v): unexpected error: %v", macro, args, err)
	}
	n, ok := got.Ordinal()
	if !ok {
		t.Fatalf("Interpret(%q, %v) = %s, want a von Neumann natural", macro, args, got)
	}
	return n
}

// TestInterpretAddAndSub checks §8 property 9: add is a sound (not
// necessarily tight) upper bound on ordinary addition, and sub saturates at
// zero rather than going negative.
func TestInterpretAddAndSub(t *testing.T) {
	for _, tt := range []struct{ i, j int }{{0, 0}, {2, 3}, {5, 0}, {0, 4}} {
		if got := mustInterpretOrdinal(t, "add", tt.i, tt.j); got < tt.i+tt.j {
			t.Errorf("Interpret(add, %d, %d).ordinal = %d, want >= %d", tt.i, tt.j, got, tt.i+tt.j)
		}
	}
	for _, tt := range []struct{ i, j, want int }{{5, 2, 3}, {2, 5, 0}, {3, 3, 0}} {
		if got := mustInterpretOrdinal(t, "sub", tt.i, tt.j); got != tt.want {
			t.Errorf("Interpret(sub, %d, %d).ordinal = %d, want %d", tt.i, tt.j, got, tt.want)
		}
	}
}

// TestInterpretArithmeticConcreteScenarios checks the §8 concrete scenarios
// for mult, power, div and log.
func TestInterpretArithmeticConcreteScenarios(t *testing.T) {
	if got := mustInterpretOrdinal(t, "mult", 3, 4); got != 12 {
		t.Errorf("Interpret(mult, 3, 4).ordinal = %d, want 12", got)
	}
	if got := mustInterpretOrdinal(t, "power", 2, 4); got != 16 {
		t.Errorf("Interpret(power, 2, 4).ordinal = %d, want 16", got)
	}
	if got := mustInterpretOrdinal(t, "div", 6, 2); got != 3 {
		t.Errorf("Interpret(div, 6, 2).ordinal = %d, want 3", got)
	}
	if got := mustInterpretOrdinal(t, "log", 4, 2); got != 2 {
		t.Errorf("Interpret(log, 4, 2).ordinal = %d, want 2", got)
	}
}

// TestInterpretRPlusIsTransitiveClosure checks §8 property 7: evaluating R+
// on a set s produces the transitive closure of s union itself.
func TestInterpretRPlusIsTransitiveClosure(t *testing.T) {
	node, err := lang.Parse("R+")
	if err != nil {
		t.Fatalf("Parse(\"R+\"): unexpected error: %v", err)
	}
	interp := mustInterpreter(t, node)
	s, err := hfset.Parse("{{{{}}}}")
	if err != nil {
		t.Fatalf("hfset.Parse: unexpected error: %v", err)
	}
	got, err := interp.Interpret(s)
	if err != nil {
		t.Fatalf("Interpret: unexpected error: %v", err)
	}
	want, err := hfset.Parse("{{}, {{}}, {{{}}}, {{{{}}}}}")
	if err != nil {
		t.Fatalf("hfset.Parse: unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("Interpret(R+, {{{{}}}}) = %s, want %s", got, want)
	}
}

func TestStepCounterCountsSteps(t *testing.T) {
	node, err := lang.Parse("successor")
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}
	interp := mustInterpreter(t, node)
	counter := &eval.StepCounter{}
	interp.AddObserver(counter)
	if _, err := interp.Interpret(0); err != nil {
		t.Fatalf("Interpret: unexpected error: %v", err)
	}
	if counter.Steps == 0 {
		t.Errorf("expected StepCounter to count at least one step")
	}
}
