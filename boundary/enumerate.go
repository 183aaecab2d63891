package boundary

// Enumerate lists the halo regions of an n-dimensional tile using the
// reduced, WILDCARD-coalescing enumeration: for each axis k, two regions
// are produced — LEFT at axis k and RIGHT at axis k — with every axis
// before k pinned to CENTER and every axis after k left as WILDCARD. This
// yields exactly 2n entries for n ≥ 1 and is the enumeration
// tile.Tile.SwapHalo walks; both peers of an exchange must walk it in this
// same order so message tags line up.
//
// Example (n=2): L*, R*, CL, CR.
func Enumerate(n int) []Spec {
	out := make([]Spec, 0, 2*n)
	for k := 0; k < n; k++ {
		for _, edge := range [2]Tag{LEFT, RIGHT} {
			tags := make([]Tag, n)
			for d := 0; d < n; d++ {
				switch {
				case d < k:
					tags[d] = CENTER
				case d == k:
					tags[d] = edge
				default:
					tags[d] = WILDCARD
				}
			}
			// New never fails here: axis k is always non-wildcard.
			spec, _ := New(tags...)
			out = append(out, spec)
		}
	}
	return out
}

// EnumerateFull lists every one of the 3^n - 1 non-center regions of an
// n-dimensional tile individually: every combination of {LEFT, CENTER,
// RIGHT} per axis except all-CENTER. It never uses WILDCARD. This is the
// enumeration the quantified neighbour-rank invariants range over (e.g. a
// 3x3x3 grid's 26-region rank table), and is provided for tests and for
// exhaustive neighbour-rank introspection; tile.Tile.SwapHalo itself uses
// the reduced Enumerate.
func EnumerateFull(n int) []Spec {
	total := pow3(n)
	out := make([]Spec, 0, total-1)
	tags := make([]Tag, n)
	basic := [3]Tag{LEFT, CENTER, RIGHT}
	for idx := 0; idx < total; idx++ {
		rem := idx
		allCenter := true
		for d := 0; d < n; d++ {
			digit := rem % 3
			rem /= 3
			tags[d] = basic[digit]
			if tags[d] != CENTER {
				allCenter = false
			}
		}
		if allCenter {
			continue
		}
		spec, _ := New(tags...)
		out = append(out, spec)
	}
	return out
}

func pow3(n int) int {
	r := 1
	for i := 0; i < n; i++ {
		r *= 3
	}
	return r
}
