package tile

import "golang.org/x/exp/constraints"

// Numeric is the element-type constraint for the arithmetic helpers below
// (Sum, AddInto) — any type x/exp/constraints recognises as ordered and
// arithmetic. Fill and FillInterior accept any element type.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Fill overwrites every raw element (interior and halo alike) with v. It is
// the cheapest way to give a freshly constructed Tile a deterministic
// starting state, including its halo, before the first SwapHalo.
func Fill[T any](t *Tile[T], v T) {
	for i := range t.data {
		t.data[i] = v
	}
}

// FillInterior overwrites only the interior (LocalSize) elements with v,
// leaving the halo untouched.
func FillInterior[T any](t *Tile[T], v T) {
	for idx := range t.Indices() {
		t.SetRawAt(interiorToRaw(t, idx), v)
	}
}

func interiorToRaw[T any](t *Tile[T], idx []int) []int {
	raw := make([]int, t.n)
	for d := 0; d < t.n; d++ {
		raw[d] = idx[d] + t.haloLeft[d]
	}
	return raw
}

// Sum adds every interior element of a numeric Tile, in Indices order. It
// never touches halo padding, so it is stable across a SwapHalo call that
// only refreshes halos.
func Sum[T Numeric](t *Tile[T]) T {
	var total T
	for idx := range t.Indices() {
		total += t.RawAt(interiorToRaw(t, idx))
	}
	return total
}

// AddInto adds src's interior, element by element, into dst's interior.
// Both tiles must share the same LocalSize; AddInto does not check this.
// On a mismatch it may panic or read the wrong elements of src, leaving
// shape validation to callers that already know their tiles' provenance.
func AddInto[T Numeric](dst, src *Tile[T]) {
	for idx := range dst.Indices() {
		d := interiorToRaw(dst, idx)
		s := interiorToRaw(src, idx)
		dst.SetRawAt(d, dst.RawAt(d)+src.RawAt(s))
	}
}
