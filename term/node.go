package term

import (
	"github.com/cnf/structhash"
)

// Kind discriminates the primitive combinators and the two internal node
// kinds (Union, Merge) the evaluator introduces while reducing a Recursion
// node.
type Kind int

const (
	EmptySetKind Kind = iota
	IdentityKind
	UnionPlusKind
	IfThenElseKind
	InKind
	ProjectionKind
	CompositionKind
	RecursionKind
	UnionKind
	MergeKind
)

func (k Kind) String() string {
	switch k {
	case EmptySetKind:
		return "EmptySet"
	case IdentityKind:
		return "Identity"
	case UnionPlusKind:
		return "UnionPlus"
	case IfThenElseKind:
		return "IfThenElse"
	case InKind:
		return "In"
	case ProjectionKind:
		return "Projection"
	case CompositionKind:
		return "Composition"
	case RecursionKind:
		return "Recursion"
	case UnionKind:
		return "Union"
	case MergeKind:
		return "Merge"
	default:
		return "?"
	}
}

// Node is a term of the combinator language. Nodes are interned: two nodes
// built from the same Kind, Children and (for Projection) Left/Right are
// the same pointer, so structural equality is pointer identity.
type Node struct {
	Kind     Kind
	Children []*Node
	Left     int // Projection only: number of left-padding arguments
	Right    int // Projection only: number of right-padding arguments

	Arity int
	Size  int
}

var internTable = map[string]*Node{}

type nodeKey struct {
	Kind     Kind
	Children []*Node
	Left     int
	Right    int
}

func intern(n *Node) *Node {
	key := nodeKey{Kind: n.Kind, Children: n.Children, Left: n.Left, Right: n.Right}
	hash, err := structhash.Hash(key, 1)
	if err != nil {
		tracer().Errorf("hashing term node: %v", err)
		panic(err)
	}
	if existing, ok := internTable[hash]; ok {
		return existing
	}
	internTable[hash] = n
	return n
}

func childSize(children ...*Node) int {
	size := 1
	for _, c := range children {
		size += c.Size
	}
	return size
}

// EmptySet is the nullary term denoting the empty set.
func EmptySet() *Node {
	return intern(&Node{Kind: EmptySetKind, Arity: 0, Size: 1})
}

// Identity is the unary term returning its single argument unchanged.
func Identity() *Node {
	return intern(&Node{Kind: IdentityKind, Arity: 1, Size: 1})
}

// UnionPlus is the binary term denoting x ∪ {y}.
func UnionPlus() *Node {
	return intern(&Node{Kind: UnionPlusKind, Arity: 2, Size: 1})
}

// IfThenElse is the 4-ary term λx y u v: yields x if u is an element of v,
// else y.
func IfThenElse() *Node {
	return intern(&Node{Kind: IfThenElseKind, Arity: 4, Size: 1})
}

// In builds the membership-dispatch term: applied to (…, u, v) it evaluates
// f on all of its arguments when u is an element of v, else g on all of
// them. Arity equals f's arity; the semantic analyser enforces
// that f and g share an arity of at least 2.
func In(f, g *Node) *Node {
	return intern(&Node{
		Kind:     InKind,
		Children: []*Node{f, g},
		Arity:    f.Arity,
		Size:     childSize(f, g),
	})
}

// Projection pads f's argument list with left leading and right trailing
// ignored arguments.
func Projection(f *Node, left, right int) *Node {
	return intern(&Node{
		Kind:     ProjectionKind,
		Children: []*Node{f},
		Left:     left,
		Right:    right,
		Arity:    f.Arity + left + right,
		Size:     left + right + childSize(f) - 1,
	})
}

// Composition builds f(g1(x̄), …, gn(x̄)). Arity equals the shared arity of
// g1..gn; the semantic analyser enforces that count and equality.
func Composition(f *Node, g ...*Node) *Node {
	children := append([]*Node{f}, g...)
	arity := 0
	if len(g) > 0 {
		arity = g[0].Arity
	}
	return intern(&Node{
		Kind:     CompositionKind,
		Children: children,
		Arity:    arity,
		Size:     childSize(children...),
	})
}

// Recursion builds primitive recursion on ∈ over g: R(g)(z, x̄) = g(⋃_{u∈z}
// R(g)(u, x̄), z, x̄). Arity is g's arity minus 1.
func Recursion(g *Node) *Node {
	return intern(&Node{
		Kind:     RecursionKind,
		Children: []*Node{g},
		Arity:    g.Arity - 1,
		Size:     childSize(g),
	})
}

// Union is an internal node introduced by the evaluator while reducing a
// Recursion node: it folds h over the elements of its evaluated argument.
func Union(h *Node) *Node {
	return intern(&Node{
		Kind:     UnionKind,
		Children: []*Node{h},
		Arity:    h.Arity,
		Size:     childSize(h),
	})
}

// Merge is an internal nullary accumulator node introduced by the evaluator
// while reducing a Union node.
func Merge() *Node {
	return intern(&Node{Kind: MergeKind, Arity: 0, Size: 1})
}

// String renders n using the primitive single-character syntax
// (E I + ? ! < > o R U M), matching the parser's surface grammar.
func (n *Node) String() string {
	p := &printer{}
	n.Accept(p)
	return p.result
}
