package eval

import (
	"bufio"
	"fmt"
	"os"

	"github.com/zerkel-lang/zerkel/term"
)

// Observer is notified once per evaluation step, before the stack's top
// Expression is popped or evaluated. Interpreter.Interpret calls Init once
// per call and Notify once per step.
type Observer interface {
	setup(interp *Interpreter)
	Init()
	Notify()
}

type baseObserver struct {
	interpreter *Interpreter
}

func (o *baseObserver) setup(interp *Interpreter) { o.interpreter = interp }

// StepCounter counts every evaluation step, including steps that merely pop
// an already-closed Expression off the stack.
type StepCounter struct {
	baseObserver
	Steps int
}

func (c *StepCounter) Init()   { c.Steps = 0 }
func (c *StepCounter) Notify() { c.Steps++ }

// AtomicStepCounter counts only steps that perform real work: the top of
// stack is open and its node is one of the three primitives the evaluator
// resolves directly (EmptySet, UnionPlus, IfThenElse) rather than rewriting
// into further sub-Expressions. This tracks the number of genuine
// set-builder operations a program performs, independent of how many
// rewrite steps the term happened to take to get there.
type AtomicStepCounter struct {
	baseObserver
	Steps int
}

func (c *AtomicStepCounter) Init() { c.Steps = 0 }

func (c *AtomicStepCounter) Notify() {
	peek := c.interpreter.stack.peek()
	if peek == nil || peek.closed {
		return
	}
	switch peek.node.Kind {
	case term.EmptySetKind, term.UnionPlusKind, term.IfThenElseKind:
		c.Steps++
	}
}

// Debugger prints the stack before every step, on top of counting them.
type Debugger struct {
	StepCounter
}

func (d *Debugger) Notify() {
	d.StepCounter.Notify()
	fmt.Printf("step %d\n%s\n", d.Steps, d.interpreter.stack)
}

// StepByStep behaves like Debugger but blocks for a keypress after every
// step, turning evaluation into a manual walkthrough.
type StepByStep struct {
	Debugger
	reader *bufio.Reader
}

func (s *StepByStep) Notify() {
	s.Debugger.Notify()
	if s.reader == nil {
		s.reader = bufio.NewReader(os.Stdin)
	}
	fmt.Print("press enter to continue")
	_, _ = s.reader.ReadString('\n')
}
