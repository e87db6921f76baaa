package eval

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/pterm/pterm"
)

// stack holds the Expressions currently under evaluation. The bottom entry
// is always the interpretation's root Expression (tracked separately by
// Interpreter.rootExpr, not by indexing into the stack), so every
// operation the evaluator needs — push, pop, peek — maps directly onto
// gods' generic array-backed stack.
type stack struct {
	s *arraystack.Stack
}

func newStack() *stack {
	return &stack{s: arraystack.New()}
}

func (s *stack) push(e *Expression) { s.s.Push(e) }

func (s *stack) pop() { s.s.Pop() }

func (s *stack) peek() *Expression {
	v, ok := s.s.Peek()
	if !ok {
		return nil
	}
	return v.(*Expression)
}

// String renders the stack as a table, top entry first, for Debugger and
// StepByStep to display between evaluation steps.
func (s *stack) String() string {
	values := s.s.Values()
	rows := [][]string{{"#", "expression"}}
	for i, v := range values {
		rows = append(rows, []string{fmt.Sprintf("%d", len(values)-1-i), fmt.Sprint(v)})
	}
	out, err := pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
	if err != nil {
		return fmt.Sprintf("%v", values)
	}
	return out
}
