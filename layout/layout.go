package layout

import (
	"fmt"

	"github.com/gasagna/haloarrays/boundary"
	"github.com/gasagna/haloarrays/transport"
)

// Layout wraps the Cartesian process grid a Tile is partitioned across:
// per-axis process count and periodicity, this process's rank and
// coordinates, and the Cartesian communicator used to resolve neighbour
// ranks. Rank is the single source of truth for process identity; Coords
// is derived from it via the transport's Cartesian mapping at construction
// and never recomputed.
type Layout struct {
	comm      transport.Comm
	n         int
	gridSize  []int
	periodic  []bool
	coords    []int
	checkDims bool
}

// New constructs a Layout over comm's process grid. It fails with
// ErrDimensionMismatch when gridSize and periodic have different lengths,
// and with ErrInvalidGrid when the product of gridSize does not equal
// comm.NProcs().
func New(comm transport.Comm, gridSize []int, periodic []bool, opts ...Option) (*Layout, error) {
	if len(gridSize) != len(periodic) {
		return nil, ErrDimensionMismatch
	}
	n := len(gridSize)

	total := 1
	for _, s := range gridSize {
		total *= s
	}
	if total != comm.NProcs() {
		return nil, ErrInvalidGrid
	}

	cart, err := comm.CartCreate(gridSize, periodic)
	if err != nil {
		return nil, fmt.Errorf("layout.New: %w", err)
	}
	coords, err := cart.CartCoords(cart.Rank())
	if err != nil {
		return nil, fmt.Errorf("layout.New: %w", err)
	}

	l := &Layout{
		comm:     cart,
		n:        n,
		gridSize: append([]int(nil), gridSize...),
		periodic: append([]bool(nil), periodic...),
		coords:   coords,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// New1D is a convenience constructor for 1-D grids, since Go has no
// variadic generics to build an N-axis constructor from a single call.
func New1D(comm transport.Comm, size int, periodic bool, opts ...Option) (*Layout, error) {
	return New(comm, []int{size}, []bool{periodic}, opts...)
}

// New2D is a convenience constructor for 2-D grids.
func New2D(comm transport.Comm, sizeX, sizeY int, periodicX, periodicY bool, opts ...Option) (*Layout, error) {
	return New(comm, []int{sizeX, sizeY}, []bool{periodicX, periodicY}, opts...)
}

// New3D is a convenience constructor for 3-D grids.
func New3D(comm transport.Comm, sizeX, sizeY, sizeZ int, periodicX, periodicY, periodicZ bool, opts ...Option) (*Layout, error) {
	return New(comm, []int{sizeX, sizeY, sizeZ}, []bool{periodicX, periodicY, periodicZ}, opts...)
}

// Dim returns the number of axes in the grid.
func (l *Layout) Dim() int { return l.n }

// Rank returns this process's rank in the communicator.
func (l *Layout) Rank() int { return l.comm.Rank() }

// NProcs returns the communicator's process count.
func (l *Layout) NProcs() int { return l.comm.NProcs() }

// Coords returns a defensive copy of this process's position in the grid.
func (l *Layout) Coords() []int {
	cp := make([]int, l.n)
	copy(cp, l.coords)
	return cp
}

// Comm returns the underlying Cartesian communicator, for use by the
// subarray and tile packages.
func (l *Layout) Comm() transport.Comm { return l.comm }

func (l *Layout) checkAxis(d int) error {
	if l.checkDims && (d < 0 || d >= l.n) {
		return &OutOfRangeError{Axis: d, Dim: l.n}
	}
	return nil
}

// Size returns the process count along axis d. It fails with
// OutOfRangeError when d is out of range and CheckDims was enabled at
// construction; otherwise an out-of-range d is undefined behaviour (the
// library may panic or return an arbitrary value).
func (l *Layout) Size(d int) (int, error) {
	if err := l.checkAxis(d); err != nil {
		return 0, err
	}
	return l.gridSize[d], nil
}

// IsPeriodic reports whether axis d wraps. Same bounds-check contract as
// Size.
func (l *Layout) IsPeriodic(d int) (bool, error) {
	if err := l.checkAxis(d); err != nil {
		return false, err
	}
	return l.periodic[d], nil
}

// shift returns axis d's coordinate delta for tag: -1 for LEFT, +1 for
// RIGHT, 0 for CENTER and WILDCARD (a wildcard axis behaves like CENTER —
// no shift).
func shift(tag boundary.Tag) int {
	switch tag {
	case boundary.LEFT:
		return -1
	case boundary.RIGHT:
		return 1
	default:
		return 0
	}
}

// pointsOffGrid reports whether tag, applied at axis d, walks past the
// grid edge from this process's own coordinate (ignoring periodicity).
func (l *Layout) pointsOffGrid(tag boundary.Tag, d int) bool {
	switch tag {
	case boundary.LEFT:
		return l.coords[d] == 0
	case boundary.RIGHT:
		return l.coords[d] == l.gridSize[d]-1
	default:
		return false
	}
}

// HasNeighbourAtAxis reports whether a neighbour exists along axis d for
// tag alone. CENTER and WILDCARD always report true along that axis;
// LEFT/RIGHT report true when the axis is periodic or the shift stays on
// the grid.
func (l *Layout) HasNeighbourAtAxis(tag boundary.Tag, d int) bool {
	return l.periodic[d] || !l.pointsOffGrid(tag, d)
}

// HasNeighbourAt reports whether spec addresses a region with a live
// neighbour on every axis: periodic[d] or not pointing off-grid, for every
// d. Periodic axes always report true, since rank-wrap is handled by the
// transport's Cartesian map, not checked here.
func (l *Layout) HasNeighbourAt(spec boundary.Spec) bool {
	for d := 0; d < l.n; d++ {
		if !l.HasNeighbourAtAxis(spec.Tag(d), d) {
			return false
		}
	}
	return true
}

// RankOfNeighbourAt returns the rank found by shifting this process's
// coordinates by -1 on LEFT axes and +1 on RIGHT axes (CENTER/WILDCARD
// contribute no shift), resolved through the transport's periodic
// Cartesian map. It returns transport.NullRank when no such neighbour
// exists, whether because an axis is non-periodic and the shift walks off
// the grid, or (defensively) because HasNeighbourAt already says so.
func (l *Layout) RankOfNeighbourAt(spec boundary.Spec) int {
	if !l.HasNeighbourAt(spec) {
		return transport.NullRank
	}
	shifted := make([]int, l.n)
	for d := 0; d < l.n; d++ {
		shifted[d] = l.coords[d] + shift(spec.Tag(d))
	}
	return l.comm.CartRank(shifted)
}
