package lang

import (
	"strconv"

	"github.com/zerkel-lang/zerkel/term"
)

// Parse reads program text and returns the term.Node it denotes. Macro
// keywords are expanded (recursively, via re-entrant calls to Parse on the
// macro's template) before construction; the returned Node is built purely
// from the primitive constructors in package term. Parse does not run the
// semantic analyser — callers that need a well-formed guarantee call
// term.Analyze on the result (eval.NewInterpreter does this).
func Parse(text string) (*term.Node, error) {
	toks, err := tokenize(text)
	if err != nil {
		tracer().Errorf("lexing %q: %v", text, err)
		return nil, newParseError(text, 0, err.Error())
	}
	p := &parser{text: text, toks: toks}
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur().Kind != TokEOF {
		return nil, newParseError(text, p.cur().Offset, "unexpected trailing input")
	}
	tracer().Debugf("parsed %q -> %s", text, node)
	return node, nil
}

type parser struct {
	text string
	toks []Token
	pos  int
}

func (p *parser) cur() Token {
	return p.toks[p.pos]
}

func (p *parser) advance() Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) fail(reason string) error {
	return newParseError(p.text, p.cur().Offset, reason)
}

func (p *parser) expectKeyword(name string) error {
	t := p.cur()
	if t.Kind != TokKeyword || t.Text != name {
		return p.fail("expected keyword " + name)
	}
	p.advance()
	return nil
}

// reparse expands a macro template through the full grammar, exactly as
// the original interpreter's self.parse(template) calls do.
func (p *parser) reparse(template string) (*term.Node, error) {
	return Parse(template)
}

func (p *parser) parseExpr() (*term.Node, error) {
	t := p.cur()
	switch t.Kind {
	case TokEOF:
		return nil, p.fail("unexpected end of input")
	case TokInt:
		p.advance()
		n, err := strconv.Atoi(t.Text)
		if err != nil || n < 0 {
			return nil, newParseError(p.text, t.Offset, "invalid integer constant")
		}
		return p.reparse(templateConstant(n))
	case TokPrimitive:
		return p.parsePrimitive()
	case TokKeyword:
		return p.parseKeyword()
	}
	return nil, p.fail("unexpected token")
}

func (p *parser) parsePrimitive() (*term.Node, error) {
	t := p.advance()
	switch t.Text {
	case "E":
		return term.EmptySet(), nil
	case "I":
		return term.Identity(), nil
	case "+":
		return term.UnionPlus(), nil
	case "?":
		return term.IfThenElse(), nil
	case "!":
		f, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		g, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return term.In(f, g), nil
	case "<", ">":
		left, right := 0, 0
		if t.Text == "<" {
			left++
		} else {
			right++
		}
		for p.cur().Kind == TokPrimitive && (p.cur().Text == "<" || p.cur().Text == ">") {
			next := p.advance()
			if next.Text == "<" {
				left++
			} else {
				right++
			}
		}
		f, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return term.Projection(f, left, right), nil
	case "o":
		f, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if f.Arity <= 0 {
			return nil, newParseError(p.text, t.Offset,
				"composition requires a function of arity at least 1")
		}
		compounds := make([]*term.Node, f.Arity)
		for i := 0; i < f.Arity; i++ {
			g, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			compounds[i] = g
		}
		return term.Composition(f, compounds...), nil
	case "R":
		g, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return term.Recursion(g), nil
	}
	return nil, p.fail("unrecognised primitive token")
}

func (p *parser) parseKeyword() (*term.Node, error) {
	t := p.cur()
	switch t.Text {
	case "all":
		p.advance()
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return p.reparse(templateAll(arg.String()))
	case "any":
		p.advance()
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return p.reparse(templateAny(arg.String()))
	case "map":
		p.advance()
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return p.reparse(templateMap(arg.String(), arg.Arity))
	case "filter":
		p.advance()
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return p.reparse(templateFilter(arg.String(), arg.Arity))
	case "op":
		p.advance()
		recFn, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		initFn, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return p.reparse(templateOp(recFn.String(), initFn.String()))
	case "iop":
		p.advance()
		op, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return p.reparse(templateIop(op.String()))
	case "select":
		return p.parseSelect()
	}
	if template, ok := zeroArgMacros[t.Text]; ok {
		p.advance()
		return p.reparse(template)
	}
	return nil, p.fail("unrecognised keyword " + t.Text)
}

// selection is a single "select" index specifier: either a bare position
// or a "start ... [end]" slice.
type selection struct {
	isSlice bool
	pos     int
	start   int
	end     int
	hasEnd  bool
}

func (p *parser) parseSelect() (*term.Node, error) {
	if err := p.expectKeyword("select"); err != nil {
		return nil, err
	}
	if p.cur().Kind == TokKeyword && p.cur().Text == "none" {
		p.advance()
		if err := p.expectKeyword("among"); err != nil {
			return nil, err
		}
		n, err := p.parseInt()
		if err != nil {
			return nil, err
		}
		target, err := term.EmptySet(), error(nil)
		if p.cur().Kind == TokKeyword && p.cur().Text == "for" {
			p.advance()
			target, err = p.parseExpr()
			if err != nil {
				return nil, err
			}
		}
		return term.Projection(target, n, 0), nil
	}
	var selections []selection
	for !(p.cur().Kind == TokKeyword && p.cur().Text == "among") {
		sel, err := p.parseSelection()
		if err != nil {
			return nil, err
		}
		selections = append(selections, sel)
	}
	if err := p.expectKeyword("among"); err != nil {
		return nil, err
	}
	n, err := p.parseInt()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("for"); err != nil {
		return nil, err
	}
	target, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return buildSelect(selections, n, target), nil
}

func (p *parser) parseSelection() (selection, error) {
	if p.cur().Kind == TokEllipsis {
		p.advance()
		return p.parseSliceTail(0)
	}
	if p.cur().Kind != TokInt {
		return selection{}, p.fail("expected a position or '...'")
	}
	start, err := p.parseInt()
	if err != nil {
		return selection{}, err
	}
	if p.cur().Kind == TokEllipsis {
		p.advance()
		return p.parseSliceTail(start)
	}
	return selection{isSlice: false, pos: start}, nil
}

func (p *parser) parseSliceTail(start int) (selection, error) {
	sel := selection{isSlice: true, start: start}
	if p.cur().Kind == TokInt {
		end, err := p.parseInt()
		if err != nil {
			return selection{}, err
		}
		sel.end, sel.hasEnd = end, true
	}
	return sel, nil
}

func (p *parser) parseInt() (int, error) {
	if p.cur().Kind != TokInt {
		return 0, p.fail("expected an integer")
	}
	t := p.advance()
	n, err := strconv.Atoi(t.Text)
	if err != nil {
		return 0, newParseError(p.text, t.Offset, "invalid integer")
	}
	return n, nil
}

// buildSelect ports _build_select: a single position over an arity-1
// target returns that target projected to the position (selectPosition),
// with no enclosing composition; otherwise every selection expands to the
// selectPosition of term.Identity, and the whole result composes target
// over those.
func buildSelect(selections []selection, n int, target *term.Node) *term.Node {
	if len(selections) == 1 && !selections[0].isSlice && target.Arity == 1 {
		return selectPosition(selections[0].pos, n, target)
	}
	var compounds []*term.Node
	for _, sel := range selections {
		if !sel.isSlice {
			if sel.pos < n {
				compounds = append(compounds, selectPosition(sel.pos, n, nil))
			}
			continue
		}
		for _, i := range expandSlice(sel, n) {
			compounds = append(compounds, selectPosition(i, n, nil))
		}
	}
	return term.Composition(target, compounds...)
}

// selectPosition ports _select_position: the projection that extracts
// argument `position` (possibly negative, counted from the end) out of an
// arity-arity argument vector, applying p (default term.Identity) to it.
func selectPosition(position, arity int, p *term.Node) *term.Node {
	if p == nil {
		p = term.Identity()
	}
	if arity == 1 {
		return p
	}
	var left, right int
	if position >= 0 {
		left = position
		right = arity - position - 1
	} else {
		left = arity + position
		right = -position - 1
	}
	return term.Projection(p, left, right)
}

// expandSlice ports the original's use of Python's slice.indices(n):
// forward from start to either n or end (exclusive), or, when an explicit
// end is given that is less than start, backward from start to end
// (exclusive).
func expandSlice(sel selection, n int) []int {
	start := sel.start
	if start < 0 {
		start += n
	}
	if !sel.hasEnd {
		out := make([]int, 0, n-start)
		for i := start; i < n; i++ {
			out = append(out, i)
		}
		return out
	}
	end := sel.end
	if end < 0 {
		end += n
	}
	if end < start {
		out := make([]int, 0, start-end)
		for i := start; i > end; i-- {
			out = append(out, i)
		}
		return out
	}
	out := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, i)
	}
	return out
}
