package tile

import (
	"github.com/gasagna/haloarrays/boundary"
	"github.com/gasagna/haloarrays/layout"
	"github.com/gasagna/haloarrays/subarray"
)

// Tile owns a process's padded local buffer: interior data of extent
// LocalSize plus halo padding of HaloLeft/HaloRight on each axis, stored
// column-major (first axis fastest-varying) in a single flat slice. Its
// Layout is shared, not owned — several Tiles may sit over the same
// Layout.
type Tile[T any] struct {
	lay *layout.Layout
	n   int

	globalSize []int
	localSize  []int
	haloLeft   []int
	haloRight  []int
	rawSize    []int
	strides    []int

	data []T

	checkBounds bool
	cache       map[int64]*subarray.Subarray[T]
}

// New constructs a Tile over lay with global extent globalSize, the
// user-facing boundary-condition halo width haloOut, and the
// communication-required halo width haloIn. Per the halo-width rule: at
// each axis end, the halo is haloIn when a neighbour exists there
// (including through periodicity) and haloOut otherwise, since
// boundary-condition cells need no wire-filled width beyond what the user
// asked for.
//
// New fails with ErrDimensionMismatch when globalSize/haloOut/haloIn
// disagree in length, with a *DivisibilityError when some axis's global
// size does not divide evenly by the grid size, and with a
// *HaloTooLargeError when a halo width is not strictly less than the
// resulting local size.
func New[T any](lay *layout.Layout, globalSize, haloOut, haloIn []int, opts ...Option) (*Tile[T], error) {
	n := lay.Dim()
	if len(globalSize) != n || len(haloOut) != n || len(haloIn) != n {
		return nil, ErrDimensionMismatch
	}

	cfg := resolveConfig(opts...)

	t := &Tile[T]{
		lay:         lay,
		n:           n,
		globalSize:  append([]int(nil), globalSize...),
		localSize:   make([]int, n),
		haloLeft:    make([]int, n),
		haloRight:   make([]int, n),
		rawSize:     make([]int, n),
		strides:     make([]int, n),
		checkBounds: cfg.CheckBounds,
		cache:       make(map[int64]*subarray.Subarray[T]),
	}

	for d := 0; d < n; d++ {
		// d is always within [0, lay.Dim()) here, so Size never errors.
		gridSize, _ := lay.Size(d)
		if globalSize[d]%gridSize != 0 {
			return nil, &DivisibilityError{Axis: d, GlobalSize: globalSize[d], Procs: gridSize}
		}
		t.localSize[d] = globalSize[d] / gridSize

		if lay.HasNeighbourAtAxis(boundary.LEFT, d) {
			t.haloLeft[d] = haloIn[d]
		} else {
			t.haloLeft[d] = haloOut[d]
		}
		if lay.HasNeighbourAtAxis(boundary.RIGHT, d) {
			t.haloRight[d] = haloIn[d]
		} else {
			t.haloRight[d] = haloOut[d]
		}

		if maxInt(t.haloLeft[d], t.haloRight[d]) >= t.localSize[d] {
			return nil, &HaloTooLargeError{Axis: d, HaloLeft: t.haloLeft[d], HaloRight: t.haloRight[d], LocalSize: t.localSize[d]}
		}

		t.rawSize[d] = t.localSize[d] + t.haloLeft[d] + t.haloRight[d]
	}

	stride := 1
	for d := 0; d < n; d++ {
		t.strides[d] = stride
		stride *= t.rawSize[d]
	}
	t.data = make([]T, stride)

	if err := t.buildSubarrayCache(); err != nil {
		return nil, err
	}

	return t, nil
}

// New1D is a convenience constructor for 1-D tiles.
func New1D[T any](lay *layout.Layout, size, haloOut, haloIn int, opts ...Option) (*Tile[T], error) {
	return New[T](lay, []int{size}, []int{haloOut}, []int{haloIn}, opts...)
}

// New2D is a convenience constructor for 2-D tiles.
func New2D[T any](lay *layout.Layout, sizeX, sizeY, haloOutX, haloOutY, haloInX, haloInY int, opts ...Option) (*Tile[T], error) {
	return New[T](lay, []int{sizeX, sizeY}, []int{haloOutX, haloOutY}, []int{haloInX, haloInY}, opts...)
}

// New3D is a convenience constructor for 3-D tiles.
func New3D[T any](lay *layout.Layout, sizeX, sizeY, sizeZ, haloOutX, haloOutY, haloOutZ, haloInX, haloInY, haloInZ int, opts ...Option) (*Tile[T], error) {
	return New[T](lay,
		[]int{sizeX, sizeY, sizeZ},
		[]int{haloOutX, haloOutY, haloOutZ},
		[]int{haloInX, haloInY, haloInZ},
		opts...)
}

func (t *Tile[T]) buildSubarrayCache() error {
	comm := t.lay.Comm()
	for _, spec := range boundary.Enumerate(t.n) {
		for _, intent := range [2]boundary.Intent{boundary.SEND, boundary.RECV} {
			key := boundary.Hash(spec, intent)
			if _, ok := t.cache[key]; ok {
				continue
			}
			sub, err := subarray.New[T](t, comm, spec, intent)
			if err != nil {
				return err
			}
			t.cache[key] = sub
		}
	}
	return nil
}

// Close tears down every cached Subarray (deregistering their transport
// descriptors). A Tile must not be used after Close.
func (t *Tile[T]) Close() error {
	for _, sub := range t.cache {
		if err := sub.Close(); err != nil {
			return err
		}
	}
	return nil
}

// Dim returns the number of axes.
func (t *Tile[T]) Dim() int { return t.n }

// LocalSize returns a defensive copy of the interior extent per axis.
func (t *Tile[T]) LocalSize() []int { return append([]int(nil), t.localSize...) }

// HaloLeft returns a defensive copy of the low-end halo width per axis.
func (t *Tile[T]) HaloLeft() []int { return append([]int(nil), t.haloLeft...) }

// HaloRight returns a defensive copy of the high-end halo width per axis.
func (t *Tile[T]) HaloRight() []int { return append([]int(nil), t.haloRight...) }

// RawSize returns a defensive copy of LocalSize + HaloLeft + HaloRight per
// axis.
func (t *Tile[T]) RawSize() []int { return append([]int(nil), t.rawSize...) }

// Layout returns the Tile's Layout.
func (t *Tile[T]) Layout() *layout.Layout { return t.lay }

// RawAt returns the element at a raw (halo-inclusive, zero-based) index.
// It satisfies subarray.RawBuffer and is not bounds-checked; callers pass
// coordinates already known to be in range.
func (t *Tile[T]) RawAt(rawCoord []int) T {
	return t.data[t.rawOffset(rawCoord)]
}

// SetRawAt assigns the element at a raw index. See RawAt.
func (t *Tile[T]) SetRawAt(rawCoord []int, v T) {
	t.data[t.rawOffset(rawCoord)] = v
}

func (t *Tile[T]) rawOffset(rawCoord []int) int {
	off := 0
	for d := 0; d < t.n; d++ {
		off += rawCoord[d] * t.strides[d]
	}
	return off
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
