package hfset

import (
	"math/big"

	"github.com/emirpasic/gods/sets/treeset"
)

// Set is a hereditarily finite pure set: a finite, unordered, deduplicated
// collection of Sets. Sets are interned — New returns the unique
// representative for a given element collection — so structural equality
// reduces to pointer identity (see Equal).
type Set struct {
	elements []*Set // canonical ascending order, deduplicated

	rank     int
	cardinal int
	size     int
	value    *big.Int // eager: doubles as the interning key

	ordinalComputed bool
	ordinal         int
	hasOrdinal      bool

	singletonComputed bool
	isSingletonVal    bool

	transitiveComputed bool
	isTransitiveVal    bool

	tupleComputed bool
	isTupleVal    bool
}

// internTable is the process-wide table mapping a set's Value encoding to
// its unique representative. Value is a bijection with the naturals (see
// generate.go), so it is a sound interning key on its own — no separate
// content hash is needed for this table (contrast term.Node, whose interning
// key is a structhash of heterogeneous fields).
var internTable = map[string]*Set{}

// New returns the unique interned Set whose elements are the distinct
// values among args. New() is the empty set.
func New(args ...*Set) *Set {
	elements := canonicalElements(args)
	value := valueOf(elements)
	key := value.String()
	if s, ok := internTable[key]; ok {
		tracer().Debugf("New(%d elements) -> interned %s", len(elements), key)
		return s
	}
	s := &Set{
		elements: elements,
		value:    value,
		cardinal: len(elements),
	}
	if len(elements) == 0 {
		s.rank = 0
	} else {
		max := 0
		for _, e := range elements {
			if e.rank > max {
				max = e.rank
			}
		}
		s.rank = max + 1
	}
	sz := 1
	for _, e := range elements {
		sz += e.size
	}
	s.size = sz
	internTable[key] = s
	tracer().Debugf("New(%d elements) -> fresh %s", len(elements), key)
	return s
}

// Empty is the unique empty set.
func Empty() *Set {
	return New()
}

// Clear empties the intern table. Not safe to call while Sets created
// before the call are still in use elsewhere in the program, since it
// discards the guarantee that equal values share a pointer going forward.
func Clear() {
	internTable = map[string]*Set{}
}

// canonicalElements dedupes and orders args per the canonical order of §3,
// via a gods red-black tree set keyed on Compare: treeset.Values() already
// walks the tree in sorted order, so insertion order does the work
// sort.Slice used to, and equal-under-Compare duplicates collapse for free.
func canonicalElements(args []*Set) []*Set {
	ts := treeset.NewWith(Compare)
	for _, a := range args {
		ts.Add(a)
	}
	values := ts.Values()
	elements := make([]*Set, len(values))
	for i, v := range values {
		elements[i] = v.(*Set)
	}
	return elements
}

func valueOf(elements []*Set) *big.Int {
	v := new(big.Int)
	for _, e := range elements {
		term := new(big.Int).Lsh(big.NewInt(1), uint(e.Value().Uint64()))
		v.Add(v, term)
	}
	return v
}

// Elements returns a set's elements in canonical ascending order. The
// returned slice must not be mutated.
func (s *Set) Elements() []*Set {
	return s.elements
}

// Cardinal is the number of distinct elements.
func (s *Set) Cardinal() int {
	return s.cardinal
}

// Rank is 0 for the empty set, else 1 + the max rank of its elements.
func (s *Set) Rank() int {
	return s.rank
}

// Size is 1 + the sum of the sizes of its elements.
func (s *Set) Size() int {
	return s.size
}

// Value is the natural-number encoding v(S) = Σ 2^v(e) for e ∈ S. It is
// unique per set and forms a bijection with the non-negative integers.
func (s *Set) Value() *big.Int {
	return s.value
}

// Ordinal returns (n, true) if the elements are exactly the von Neumann
// naturals {0, …, n-1}; otherwise (0, false).
func (s *Set) Ordinal() (int, bool) {
	if !s.ordinalComputed {
		s.ordinalComputed = true
		n := len(s.elements)
		missing := make(map[int]bool, n)
		for i := 0; i < n; i++ {
			missing[i] = true
		}
		ok := true
		for _, e := range s.elements {
			o, has := e.Ordinal()
			if !has || o < 0 || o >= n || !missing[o] {
				ok = false
				break
			}
			delete(missing, o)
		}
		if ok && len(missing) == 0 {
			s.ordinal, s.hasOrdinal = n, true
		}
	}
	return s.ordinal, s.hasOrdinal
}

// IsSingleton reports whether the set has exactly one element.
func (s *Set) IsSingleton() bool {
	if !s.singletonComputed {
		s.singletonComputed = true
		s.isSingletonVal = s.cardinal == 1
	}
	return s.isSingletonVal
}

// IsTransitive reports whether every element is a subset of s.
func (s *Set) IsTransitive() bool {
	if !s.transitiveComputed {
		s.transitiveComputed = true
		result := true
		for _, e := range s.elements {
			if !s.isUpsetOf(e) {
				result = false
				break
			}
		}
		s.isTransitiveVal = result
	}
	return s.isTransitiveVal
}

// isUpsetOf reports whether every element of other is also an element of s.
func (s *Set) isUpsetOf(other *Set) bool {
	for _, e := range other.elements {
		if !s.Contains(e) {
			return false
		}
	}
	return true
}

// IsTuple recognises the Kuratowski encoding of ordered tuples (see
// GenerateTuple). A pair whose two components are equal degenerates to the
// nested singleton {{x}}.
func (s *Set) IsTuple() bool {
	if !s.tupleComputed {
		s.tupleComputed = true
		s.isTupleVal = s.computeIsTuple()
	}
	return s.isTupleVal
}

func (s *Set) computeIsTuple() bool {
	if s.IsSingleton() {
		return s.elements[0].IsSingleton()
	}
	if s.cardinal != 2 {
		return false
	}
	a, b := s.elements[0], s.elements[1]
	if a.cardinal > b.cardinal {
		a, b = b, a
	}
	if a.cardinal == 0 || b.cardinal == 0 || a.cardinal+b.cardinal != 3 {
		return false
	}
	x := a.elements[0]
	y, z := b.elements[0], b.elements[1]
	return x == y || x == z
}

// Contains reports whether other is a (direct) element of s.
func (s *Set) Contains(other *Set) bool {
	for _, e := range s.elements {
		if e == other {
			return true
		}
	}
	return false
}

// IsSubsetOf reports whether every element of s is also an element of other.
func (s *Set) IsSubsetOf(other *Set) bool {
	for _, e := range s.elements {
		if !other.Contains(e) {
			return false
		}
	}
	return true
}

// Equal reports structural equality: since Sets are interned, this is
// pointer identity, with a fast path through the ordinal-equality shortcut
// (two sets with the same defined ordinal are the same von Neumann natural).
func (s *Set) Equal(other *Set) bool {
	if s == other {
		return true
	}
	if so, ok := s.Ordinal(); ok {
		if oo, ok2 := other.Ordinal(); ok2 && so == oo {
			return true
		}
	}
	return false
}

// Less implements the canonical order of §3: compare by rank ascending,
// then by descending-sorted element lists lexicographically, then by
// cardinal.
func (s *Set) Less(other *Set) bool {
	return canonicalLess(s, other)
}

func canonicalLess(a, b *Set) bool {
	if a.rank != b.rank {
		return a.rank < b.rank
	}
	na, nb := len(a.elements), len(b.elements)
	for i := 0; i < na && i < nb; i++ {
		ea := a.elements[na-1-i]
		eb := b.elements[nb-1-i]
		if ea == eb {
			continue
		}
		if canonicalLess(ea, eb) {
			return true
		}
		if canonicalLess(eb, ea) {
			return false
		}
	}
	if na != nb {
		return na < nb
	}
	return false
}

// Compare returns -1, 0 or 1 per the canonical order; adapts Set to gods'
// utils.Comparator, the comparator canonicalElements and enum's constant
// cache both key their gods trees on.
func Compare(a, b interface{}) int {
	sa, sb := a.(*Set), b.(*Set)
	if sa == sb {
		return 0
	}
	if canonicalLess(sa, sb) {
		return -1
	}
	return 1
}
