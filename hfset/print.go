package hfset

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

// String renders a set in ordinal notation when it denotes a von Neumann
// natural, and as a brace-delimited element list otherwise.
func (s *Set) String() string {
	return s.ToString(true, false)
}

// ToString renders s, preferring ordinal notation when formatOrdinal is set
// and s.Ordinal() is defined, then tuple notation when formatTuple is set
// and s.IsTuple(), falling back to a brace-delimited element list.
func (s *Set) ToString(formatOrdinal, formatTuple bool) string {
	if formatOrdinal {
		if n, ok := s.Ordinal(); ok {
			return strconv.Itoa(n)
		}
	}
	if formatTuple && s.IsTuple() {
		return s.tupleString()
	}
	if len(s.elements) == 0 {
		return "{}"
	}
	parts := make([]string, len(s.elements))
	for i, e := range s.elements {
		parts[i] = e.ToString(formatOrdinal, formatTuple)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// tupleString renders the Kuratowski-decoded element sequence of a tuple
// set, e.g. (0, 1, 2).
func (s *Set) tupleString() string {
	elements := s.decodeTuple()
	parts := make([]string, len(elements))
	for i, e := range elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// decodeTuple inverts GenerateTuple, unwrapping nested Kuratowski pairs
// back into the ordered element sequence.
func (s *Set) decodeTuple() []*Set {
	if s.IsSingleton() {
		inner := s.elements[0]
		x := inner.elements[0]
		if x.IsTuple() {
			return append([]*Set{x}, x.decodeTuple()...)
		}
		return []*Set{x, x}
	}
	a, b := s.elements[0], s.elements[1]
	if a.cardinal > b.cardinal {
		a, b = b, a
	}
	x, y, z := a.elements[0], b.elements[0], b.elements[1]
	if x == y {
		y = z
	}
	if y.IsTuple() && !y.IsSingleton() {
		return append([]*Set{x}, y.decodeTuple()...)
	}
	return []*Set{x, y}
}

// AsTree renders s as a box-drawn hierarchical diagram via pterm's tree
// component, one node per set, labelled with its ordinal when defined and
// "." otherwise.
func (s *Set) AsTree() string {
	root := s.treeNode()
	out, err := pterm.DefaultTree.WithRoot(root).Srender()
	if err != nil {
		tracer().Errorf("rendering tree: %v", err)
		return s.String()
	}
	return out
}

func (s *Set) treeNode() pterm.TreeNode {
	label := "."
	if n, ok := s.Ordinal(); ok {
		label = strconv.Itoa(n)
	}
	sorted := append([]*Set{}, s.elements...)
	sort.Slice(sorted, func(i, j int) bool { return canonicalLess(sorted[i], sorted[j]) })
	children := make([]pterm.TreeNode, len(sorted))
	for i, e := range sorted {
		children[i] = e.treeNode()
	}
	return pterm.TreeNode{Text: label, Children: children}
}

// GoString supports %#v-style debugging output.
func (s *Set) GoString() string {
	return fmt.Sprintf("hfset.Set(value=%s, rank=%d, cardinal=%d)", s.value.String(), s.rank, s.cardinal)
}
