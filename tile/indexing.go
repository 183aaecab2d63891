package tile

import "iter"

// At returns the element at logical indices idx (one per axis, possibly
// negative down to -HaloLeft[d]). Under CheckBounds it fails with
// *OutOfRangeError when any idx[d] is outside [-HaloLeft[d],
// LocalSize[d]+HaloRight[d]); without it, an out-of-range index is
// undefined behaviour — a Go slice-index panic, or for N ≥ 2 possibly
// another element of the buffer.
func (t *Tile[T]) At(idx ...int) (T, error) {
	if t.checkBounds {
		if err := t.checkRange(idx); err != nil {
			var zero T
			return zero, err
		}
	}
	return t.data[t.logicalOffset(idx)], nil
}

// AtUnchecked returns the element at logical indices idx without ever
// consulting CheckBounds — the always-unchecked half of element access,
// for hot loops that have already established idx is in range (e.g. via
// Indices()) and don't want the branch or the error return on every call.
// An out-of-range idx is undefined behaviour, same as At with CheckBounds
// off.
func (t *Tile[T]) AtUnchecked(idx ...int) T {
	return t.data[t.logicalOffset(idx)]
}

// Set assigns the element at logical indices idx. Same bounds-check
// contract as At.
func (t *Tile[T]) Set(v T, idx ...int) error {
	if t.checkBounds {
		if err := t.checkRange(idx); err != nil {
			return err
		}
	}
	t.data[t.logicalOffset(idx)] = v
	return nil
}

func (t *Tile[T]) checkRange(idx []int) error {
	if len(idx) != t.n {
		return &OutOfRangeError{Axis: -1, Value: len(idx), Lo: t.n, Hi: t.n}
	}
	for d := 0; d < t.n; d++ {
		lo, hi := -t.haloLeft[d], t.localSize[d]+t.haloRight[d]
		if idx[d] < lo || idx[d] >= hi {
			return &OutOfRangeError{Axis: d, Value: idx[d], Lo: lo, Hi: hi}
		}
	}
	return nil
}

// logicalOffset maps logical indices (shifted by HaloLeft to land in raw
// space) to a linear offset via the column-major strides over RawSize.
func (t *Tile[T]) logicalOffset(idx []int) int {
	off := 0
	for d := 0; d < t.n; d++ {
		off += (idx[d] + t.haloLeft[d]) * t.strides[d]
	}
	return off
}

// Indices yields every interior index tuple (0 ≤ i_d < LocalSize[d]), in
// first-axis-fastest order. It is a generator (Go 1.23 range-over-func),
// so it is inherently restartable: ranging over it twice, or from two call
// sites, replays the same finite sequence each time without shared cursor
// state.
func (t *Tile[T]) Indices() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		total := 1
		for _, s := range t.localSize {
			total *= s
		}
		idx := make([]int, t.n)
		for c := 0; c < total; c++ {
			rem := c
			for d := 0; d < t.n; d++ {
				idx[d] = rem % t.localSize[d]
				rem /= t.localSize[d]
			}
			if !yield(append([]int(nil), idx...)) {
				return
			}
		}
	}
}
