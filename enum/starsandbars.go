package enum

import "github.com/zerkel-lang/zerkel/term"

// starsAndBars distributes v bonus points over n parts that each start at a
// baseline of t, returning every way to do so as a slice of n-element point
// distributions. With a single part there is only one way: give it
// everything, baseline included, however the sign of v falls out. With
// n>1 a negative v yields no distribution at all.
//
//	starsAndBars(4, 2, 9) -> [9 13] [10 12] [11 11] [12 10] [13 9]
func starsAndBars(v, n, t int) [][]int {
	if n == 1 {
		return [][]int{{v + t}}
	}
	var out [][]int
	for u := 0; u <= v; u++ {
		for _, rest := range starsAndBars(v-u, n-1, t) {
			row := make([]int, 0, n)
			row = append(row, t+u)
			row = append(row, rest...)
			out = append(out, row)
		}
	}
	return out
}

// cartesianProduct returns every combination obtained by picking one entry
// from each of lists, in order, matching Python's itertools.product(*lists).
func cartesianProduct(lists [][]*term.Node) [][]*term.Node {
	if len(lists) == 0 {
		return [][]*term.Node{{}}
	}
	rest := cartesianProduct(lists[1:])
	var out [][]*term.Node
	for _, item := range lists[0] {
		for _, tail := range rest {
			combo := make([]*term.Node, 0, len(tail)+1)
			combo = append(combo, item)
			combo = append(combo, tail...)
			out = append(out, combo)
		}
	}
	return out
}
