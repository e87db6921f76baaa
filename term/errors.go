package term

import "fmt"

// MismatchedArity reports an In node whose two compounds have different
// arities.
type MismatchedArity struct {
	Node *Node
}

func (e *MismatchedArity) Error() string {
	f, g := e.Node.Children[0], e.Node.Children[1]
	return fmt.Sprintf("mismatched arity: In operator first compound has an arity of "+
		"%d and the second compound has an arity of %d", f.Arity, g.Arity)
}

// InvalidInOperatorArity reports an In node whose shared arity is below 2:
// the membership test reads the last two arguments, so at least two are
// required.
type InvalidInOperatorArity struct {
	Node *Node
}

func (e *InvalidInOperatorArity) Error() string {
	return fmt.Sprintf("the In operator %q requires a program of at least arity 2 "+
		"but a program of arity %d was given", e.Node, e.Node.Children[0].Arity)
}

// RequireAtLeastOneCompound reports a Composition with no g compounds.
type RequireAtLeastOneCompound struct {
	Node *Node
}

func (e *RequireAtLeastOneCompound) Error() string {
	return fmt.Sprintf("the composition %q requires at least one compound", e.Node)
}

// NotEnoughCompounds reports a Composition with fewer g compounds than f's
// arity requires.
type NotEnoughCompounds struct {
	Node *Node
}

func (e *NotEnoughCompounds) Error() string {
	f := e.Node.Children[0]
	g := e.Node.Children[1:]
	return fmt.Sprintf("the composition %q has not enough compounds for %q. "+
		"%d were given but %d required", e.Node, f, len(g), f.Arity)
}

// TooManyCompounds reports a Composition with more g compounds than f's
// arity requires.
type TooManyCompounds struct {
	Node *Node
}

func (e *TooManyCompounds) Error() string {
	f := e.Node.Children[0]
	g := e.Node.Children[1:]
	return fmt.Sprintf("the composition %q has too many compounds for %q, "+
		"%d were given but %d required", e.Node, f, len(g), f.Arity)
}

// OneCompoundMismatchedArity reports a Composition whose g compounds do not
// all share the same arity.
type OneCompoundMismatchedArity struct {
	Node *Node
}

func (e *OneCompoundMismatchedArity) Error() string {
	g := e.Node.Children[1:]
	arities := make([]int, len(g))
	for i, c := range g {
		arities[i] = c.Arity
	}
	return fmt.Sprintf("the compounds of %q have arities %v, but it is required "+
		"that they all be equal", e.Node, arities)
}

// InvalidRecursionArity reports a Recursion whose compound has an arity
// below 2.
type InvalidRecursionArity struct {
	Node *Node
}

func (e *InvalidRecursionArity) Error() string {
	g := e.Node.Children[0]
	return fmt.Sprintf("the recursion %q has a compound of arity %d but it requires "+
		"a program of at least arity 2", e.Node, g.Arity)
}
