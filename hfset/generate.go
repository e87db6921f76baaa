package hfset

import (
	"crypto/rand"
	"math/big"
)

// Generate returns the set whose Value encoding is n: the set containing
// Generate(i) for every bit i set in n. Generate(0) is the empty set.
func Generate(n *big.Int) *Set {
	var elements []*Set
	for i := 0; i < n.BitLen(); i++ {
		if n.Bit(i) == 1 {
			elements = append(elements, Generate(big.NewInt(int64(i))))
		}
	}
	return New(elements...)
}

// GenerateN is the int convenience form of Generate, for the common case of
// small values.
func GenerateN(n int) *Set {
	return Generate(big.NewInt(int64(n)))
}

// GenerateAll returns Generate(0), …, Generate(n-1).
func GenerateAll(n int) []*Set {
	out := make([]*Set, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, GenerateN(i))
	}
	return out
}

// GenerateRange returns Generate(start), Generate(start+step), … while the
// index is below end.
func GenerateRange(start, end, step int) []*Set {
	if step <= 0 {
		step = 1
	}
	var out []*Set
	for i := start; i < end; i += step {
		out = append(out, GenerateN(i))
	}
	return out
}

// GenerateOrdinal returns the von Neumann ordinal n: ∅, {∅}, {∅,{∅}}, ….
func GenerateOrdinal(ordinal int) *Set {
	result := Empty()
	for i := 0; i < ordinal; i++ {
		elements := append(append([]*Set{}, result.Elements()...), result)
		result = New(elements...)
	}
	return result
}

// GenerateFromBase nests base inside itself depth times: depth 0 yields
// base, depth 1 yields {base}, depth 2 yields {base, {base}}, and so on.
func GenerateFromBase(depth int, base *Set) *Set {
	if depth <= 0 {
		return base
	}
	return New(base, GenerateFromBase(depth-1, base))
}

// GenerateSingleton returns the depth-fold nested singleton: depth 0 is the
// empty set, depth 1 is {∅}, depth 2 is {{∅}}, and so on.
func GenerateSingleton(depth int) *Set {
	if depth <= 0 {
		return Empty()
	}
	return New(GenerateSingleton(depth - 1))
}

// GenerateTuple builds the Kuratowski encoding of an ordered tuple: a pair
// of two elements x, y is {{x}, {x,y}}; a longer tuple right-folds pairs;
// a "tuple" of one repeated element degenerates to a nested singleton.
func GenerateTuple(x, y *Set, rest ...*Set) *Set {
	if len(rest) > 0 {
		return New(New(x), New(x, GenerateTuple(y, rest[0], rest[1:]...)))
	}
	if x == y {
		return New(New(x))
	}
	return New(New(x), New(x, y))
}

// GenerateRank returns every set of rank exactly rank, via GenerateN over
// the Value range that exact rank occupies (§ valuesOfTreesOfHeightN).
func GenerateRank(rank int) []*Set {
	lo, hi := valuesOfTreesOfHeightN(rank)
	out := make([]*Set, 0)
	for v := new(big.Int).Set(lo); v.Cmp(hi) < 0; v.Add(v, big.NewInt(1)) {
		out = append(out, Generate(new(big.Int).Set(v)))
	}
	return out
}

// GenerateComplete returns every set of rank ≤ rank: the first
// numberOfTreesOfHeightLessThan(rank) values under Generate.
func GenerateComplete(rank int) *Set {
	count := numberOfTreesOfHeightLessThan(rank)
	n := int(count.Int64())
	return New(GenerateAll(n)...)
}

// GenerateRandom draws a uniformly random set of rank exactly rank.
func GenerateRandom(rank int) *Set {
	counts := rootedIdentityTreeCounts(rank)
	lo := new(big.Int)
	for _, c := range counts[:len(counts)-1] {
		lo.Add(lo, c)
	}
	hi := new(big.Int).Add(lo, counts[len(counts)-1])
	span := new(big.Int).Sub(hi, lo)
	offset, err := rand.Int(rand.Reader, span)
	if err != nil {
		offset = new(big.Int)
	}
	value := new(big.Int).Add(lo, offset)
	return Generate(value)
}

// GenerateTransitive returns n transitive sets in increasing Value order.
// After each one the index i is incremented and then, from the highest bit
// down, every set bit j ORs j itself into i (adding the elements of
// Generate(j)), which makes Generate(i) transitive.
func GenerateTransitive(n int) []*Set {
	out := make([]*Set, 0, n)
	i := 0
	for k := 0; k < n; k++ {
		out = append(out, GenerateN(i))
		i++
		for j := bitLength(i) - 1; j > 0; j-- {
			if i&(1<<uint(j)) != 0 {
				i |= j
			}
		}
	}
	return out
}

func bitLength(i int) int {
	n := 0
	for i > 0 {
		n++
		i >>= 1
	}
	return n
}

// rootedIdentityTreeCounts computes OEIS A038081: result[0] = 1 (the empty
// set), result[i+1] = 2^total(i) - total(i) where total(i) = Σ result[0..i].
// result[k] is the number of sets of rank exactly k.
func rootedIdentityTreeCounts(n int) []*big.Int {
	result := []*big.Int{big.NewInt(1)}
	total := big.NewInt(1)
	for i := 0; i < n; i++ {
		pow := new(big.Int).Exp(big.NewInt(2), total, nil)
		count := new(big.Int).Sub(pow, total)
		result = append(result, count)
		total = new(big.Int).Add(total, count)
	}
	return result
}

func numberOfTreesOfHeightN(n int) *big.Int {
	counts := rootedIdentityTreeCounts(n)
	return counts[len(counts)-1]
}

func numberOfTreesOfHeightLessThan(n int) *big.Int {
	counts := rootedIdentityTreeCounts(n)
	total := new(big.Int)
	for _, c := range counts {
		total.Add(total, c)
	}
	return total
}

func valuesOfTreesOfHeightN(n int) (lo, hi *big.Int) {
	counts := rootedIdentityTreeCounts(n)
	lo = new(big.Int)
	for _, c := range counts[:len(counts)-1] {
		lo.Add(lo, c)
	}
	hi = new(big.Int).Add(lo, counts[len(counts)-1])
	return lo, hi
}
