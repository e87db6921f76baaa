package enum

// Key identifies a (size, arity) enumeration bucket.
type Key struct {
	Size  int
	Arity int
}

// Catalog enumerates, for every size s in 0..size-1, the terms of size s
// and arity 0..s+3, rendering each to its surface syntax. It mirrors the ad hoc inspection
// tool used while cataloguing the blacklist: a quick map from bucket to
// the surface forms living in it, not something the enumerator itself
// needs for correctness.
func Catalog(size int, useInOperator bool) map[Key][]string {
	out := make(map[Key][]string)
	for s := 0; s < size; s++ {
		for a := 0; a < s+4; a++ {
			g := NewGenerator(s, a, useInOperator)
			programs := g.Generate()
			rendered := make([]string, len(programs))
			for i, p := range programs {
				rendered[i] = p.String()
			}
			out[Key{Size: s, Arity: a}] = rendered
		}
	}
	return out
}
