package eval

import (
	"github.com/zerkel-lang/zerkel/hfset"
	"github.com/zerkel-lang/zerkel/term"
)

// Argument is one of the concrete forms Interpret accepts for a root term's
// free variables: an already-built *hfset.Set, set-literal text parsed via
// hfset.Parse, or a natural number taken as a von Neumann ordinal.
type Argument interface{}

// Interpreter evaluates a single fixed root term.Node against successive
// argument vectors, caching every Expression it builds across calls until
// ClearCache is invoked. A term is validated once, at construction, via
// term.Analyze, so Interpret itself never has to re-check well-formedness.
type Interpreter struct {
	root        *term.Node
	stack       *stack
	rootExpr    *Expression
	observers   []Observer
	closedCache map[*hfset.Set]*Expression
	lazyCache   map[lazyKey]*Expression
}

// NewInterpreter builds an Interpreter for root, rejecting ill-formed terms
// up front via term.Analyze.
func NewInterpreter(root *term.Node) (*Interpreter, error) {
	if err := term.Analyze(root); err != nil {
		return nil, err
	}
	return &Interpreter{
		root:        root,
		closedCache: map[*hfset.Set]*Expression{},
		lazyCache:   map[lazyKey]*Expression{},
	}, nil
}

// AddObserver registers an Observer to be notified on every evaluation step
// of every subsequent Interpret call.
func (i *Interpreter) AddObserver(o Observer) {
	o.setup(i)
	i.observers = append(i.observers, o)
}

// ClearCache discards every Expression built so far. Subsequent Interpret
// calls rebuild the evaluation graph from scratch.
func (i *Interpreter) ClearCache() {
	i.closedCache = map[*hfset.Set]*Expression{}
	i.lazyCache = map[lazyKey]*Expression{}
}

// Interpret evaluates the interpreter's root term against args, returning
// the resulting set.
func (i *Interpreter) Interpret(args ...Argument) (*hfset.Set, error) {
	if len(args) != i.root.Arity {
		return nil, &MismatchedNumberOfArguments{Expected: i.root.Arity, Actual: len(args)}
	}
	parameters, err := i.parseArguments(args)
	if err != nil {
		return nil, err
	}
	i.stack = newStack()
	i.rootExpr = newLazyExpression(i, i.root, parameters)
	i.stack.push(i.rootExpr)
	return i.run()
}

func (i *Interpreter) parseArguments(args []Argument) ([]*Expression, error) {
	parameters := make([]*Expression, len(args))
	for idx, arg := range args {
		switch v := arg.(type) {
		case *hfset.Set:
			parameters[idx] = newClosedExpression(i, v)
		case string:
			set, err := hfset.Parse(v)
			if err != nil {
				return nil, err
			}
			parameters[idx] = newClosedExpression(i, set)
		case int:
			parameters[idx] = newClosedExpression(i, hfset.GenerateOrdinal(v))
		default:
			return nil, &UnsupportedArgument{Value: arg}
		}
	}
	return parameters, nil
}

func (i *Interpreter) run() (*hfset.Set, error) {
	for _, o := range i.observers {
		o.Init()
	}
	for !i.rootExpr.closed {
		for _, o := range i.observers {
			o.Notify()
		}
		top := i.stack.peek()
		if top.closed {
			i.stack.pop()
			continue
		}
		i.evaluateStep(top)
	}
	return i.rootExpr.value, nil
}

func (i *Interpreter) evaluateStep(expr *Expression) {
	if fn, ok := lookupFunction(expr.node); ok {
		fn.Callback(i.stack, expr, expr.parameters)
		return
	}
	ev := &evaluator{interp: i, expr: expr, stack: i.stack}
	expr.node.Accept(ev)
}

func (i *Interpreter) String() string {
	return "Interpreter(" + i.root.String() + ")"
}

// evaluator implements term.Visitor, dispatching the reduction rule for
// expr's node and rewriting expr in place (changeNode) or, when it can
// finish the step, assigning its value (assignValue).
type evaluator struct {
	interp *Interpreter
	expr   *Expression
	stack  *stack
}

func (e *evaluator) params() []*Expression { return e.expr.parameters }

func (e *evaluator) VisitEmptySet(*term.Node) {
	e.expr.assignValue(hfset.Empty())
}

func (e *evaluator) VisitIdentity(*term.Node) {
	x := e.params()[0]
	if !x.closed {
		e.stack.push(x)
		return
	}
	e.expr.assignValue(x.value)
}

func (e *evaluator) VisitUnionPlus(*term.Node) {
	x, y := e.params()[0], e.params()[1]
	if !x.closed {
		e.stack.push(x)
		return
	}
	if !y.closed {
		e.stack.push(y)
		return
	}
	elements := append(append([]*hfset.Set{}, x.value.Elements()...), y.value)
	e.expr.assignValue(hfset.New(elements...))
}

func (e *evaluator) VisitIfThenElse(*term.Node) {
	p := e.params()
	x, y, u, v := p[0], p[1], p[2], p[3]
	if x == y {
		if !x.closed {
			e.stack.push(x)
		} else {
			e.expr.assignValue(x.value)
		}
		return
	}
	if u == v {
		if !y.closed {
			e.stack.push(y)
		} else {
			e.expr.assignValue(y.value)
		}
		return
	}
	if !u.closed {
		e.stack.push(u)
		return
	}
	if !v.closed {
		e.stack.push(v)
		return
	}
	if v.value.Contains(u.value) {
		if !x.closed {
			e.stack.push(x)
		} else {
			e.expr.assignValue(x.value)
		}
		return
	}
	if !y.closed {
		e.stack.push(y)
		return
	}
	e.expr.assignValue(y.value)
}

func (e *evaluator) VisitIn(n *term.Node) {
	f, g := n.Children[0], n.Children[1]
	params := e.params()
	u, v := params[len(params)-2], params[len(params)-1]
	if f == g {
		e.expr.changeNode(f, params)
	} else if u == v {
		e.expr.changeNode(g, params)
	}
	if !u.closed {
		e.stack.push(u)
		return
	}
	if !v.closed {
		e.stack.push(v)
		return
	}
	if v.value.Contains(u.value) {
		e.expr.changeNode(f, params)
		return
	}
	e.expr.changeNode(g, params)
}

func (e *evaluator) VisitProjection(n *term.Node) {
	params := e.params()
	var newParams []*Expression
	if n.Right > 0 {
		newParams = params[n.Left : len(params)-n.Right]
	} else {
		newParams = params[n.Left:]
	}
	e.expr.changeNode(n.Children[0], newParams)
}

func (e *evaluator) VisitComposition(n *term.Node) {
	f := n.Children[0]
	gs := n.Children[1:]
	params := e.params()
	newParams := make([]*Expression, len(gs))
	for i, g := range gs {
		newParams[i] = newLazyExpression(e.interp, g, params)
	}
	e.expr.changeNode(f, newParams)
}

func (e *evaluator) VisitRecursion(n *term.Node) {
	g := n.Children[0]
	params := e.params()
	z := params[0]
	x := params[1:]
	union := newLazyExpression(e.interp, term.Union(n), params)
	newParams := append([]*Expression{union, z}, x...)
	e.expr.changeNode(g, newParams)
}

func (e *evaluator) VisitUnion(n *term.Node) {
	h := n.Children[0]
	params := e.params()
	z := params[0]
	x := params[1:]
	if !z.closed {
		e.stack.push(z)
		return
	}
	newParams := make([]*Expression, len(z.value.Elements()))
	for i, u := range z.value.Elements() {
		ce := newClosedExpression(e.interp, u)
		args := append([]*Expression{ce}, x...)
		newParams[i] = newLazyExpression(e.interp, h, args)
	}
	e.expr.changeNode(term.Merge(), newParams)
}

func (e *evaluator) VisitMerge(*term.Node) {
	var result []*hfset.Set
	for _, p := range e.params() {
		if !p.closed {
			e.stack.push(p)
			return
		}
		result = append(result, p.value.Elements()...)
	}
	e.stack.peek().assignValue(hfset.New(result...))
}
