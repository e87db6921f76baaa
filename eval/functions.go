package eval

import (
	"github.com/zerkel-lang/zerkel/hfset"
	"github.com/zerkel-lang/zerkel/lang"
	"github.com/zerkel-lang/zerkel/term"
)

// FunctionCallback is a hand-written reduction step that replaces the
// general term.Visitor dispatch for one specific, frequently re-entered
// term shape.
type FunctionCallback func(s *stack, expr *Expression, parameters []*Expression)

// Function binds a term.Node pattern to a native FunctionCallback. Because
// term.Node values are hash-consed, every occurrence of that exact shape —
// anywhere it appears, at any depth, in any program — is the same pointer,
// so a single registry entry intercepts all of them.
type Function struct {
	Node     *term.Node
	Callback FunctionCallback
}

var functionRegistry = map[*term.Node]*Function{}

// RegisterFunction installs callback as the native implementation of node.
func RegisterFunction(node *term.Node, callback FunctionCallback) *Function {
	f := &Function{Node: node, Callback: callback}
	functionRegistry[node] = f
	return f
}

func lookupFunction(node *term.Node) (*Function, bool) {
	f, ok := functionRegistry[node]
	return f, ok
}

func mustParseNode(text string) *term.Node {
	n, err := lang.Parse(text)
	if err != nil {
		panic(err)
	}
	return n
}

func constantCallback(value *hfset.Set) FunctionCallback {
	return func(_ *stack, expr *Expression, _ []*Expression) {
		expr.assignValue(value)
	}
}

// rIfThenElse is the native fast path for R?: the recursion-wrapped
// if-then-else that implements ∈-induction with an equality-guarded base
// case. It is the rewrite that term-level recursion arrives at after
// unfolding Recursion(IfThenElse()) once and is by far the hottest shape
// in any nontrivial program, so it bypasses the general rewrite entirely.
func rIfThenElse(s *stack, expr *Expression, parameters []*Expression) {
	x, u, v := parameters[0], parameters[1], parameters[2]
	if u == v {
		if !x.closed {
			s.push(x)
		} else {
			expr.assignValue(x.value)
		}
		return
	}
	if !u.closed {
		s.push(u)
		return
	}
	if !v.closed {
		s.push(v)
		return
	}
	if v.value.Contains(u.value) {
		expr.assignValue(hfset.Empty())
		return
	}
	if !x.closed {
		s.push(x)
		return
	}
	expr.assignValue(x.value)
}

func init() {
	RegisterFunction(mustParseNode("R?"), rIfThenElse)
	RegisterFunction(mustParseNode("R>I"), constantCallback(hfset.Empty()))
	RegisterFunction(mustParseNode("RR?"), constantCallback(hfset.Empty()))
}
