package subarray

import (
	"github.com/gasagna/haloarrays/boundary"
	"github.com/gasagna/haloarrays/transport"
)

// Subarray is a non-owning rectangular-view descriptor over a RawBuffer: a
// per-axis size and raw-space origin, plus the transport-level strided
// descriptor registered for it. Subarray must not outlive its parent.
type Subarray[T any] struct {
	parent RawBuffer[T]
	comm   transport.Comm
	spec   boundary.Spec
	intent boundary.Intent

	size      []int
	rawOrigin []int
	handle    transport.Handle
	closed    bool
}

// New derives the send/recv window for spec+intent over parent per the
// window-derivation table below, and registers it with comm as a
// strided-subarray descriptor (parent RawSize as the enclosing extent, the
// derived size and rawOrigin as the window, column-major order).
//
//	tag      | size[d]        | rawOrigin[d] (SEND)      | rawOrigin[d] (RECV)
//	LEFT     | haloLeft[d]    | haloLeft[d]              | 0
//	RIGHT    | haloRight[d]   | haloLeft[d]+local[d]-hR  | haloLeft[d]+local[d]
//	CENTER   | local[d]       | haloLeft[d]              | haloLeft[d]
//	WILDCARD | rawSize[d]     | 0                        | 0
//
// A SEND window on LEFT is the first haloLeft interior layers (data handed
// to the left neighbour, who places it in its RIGHT halo); a RECV window
// on LEFT is the left halo itself, waiting to be filled. RIGHT is
// symmetric; CENTER and WILDCARD carry interior data unshifted.
func New[T any](parent RawBuffer[T], comm transport.Comm, spec boundary.Spec, intent boundary.Intent) (*Subarray[T], error) {
	n := parent.Dim()
	local := parent.LocalSize()
	hL := parent.HaloLeft()
	hR := parent.HaloRight()
	raw := parent.RawSize()

	size := make([]int, n)
	origin := make([]int, n)
	for d := 0; d < n; d++ {
		switch spec.Tag(d) {
		case boundary.LEFT:
			size[d] = hL[d]
			if intent == boundary.SEND {
				origin[d] = hL[d]
			} else {
				origin[d] = 0
			}
		case boundary.RIGHT:
			size[d] = hR[d]
			if intent == boundary.SEND {
				origin[d] = hL[d] + local[d] - hR[d]
			} else {
				origin[d] = hL[d] + local[d]
			}
		case boundary.CENTER:
			size[d] = local[d]
			origin[d] = hL[d]
		case boundary.WILDCARD:
			size[d] = raw[d]
			origin[d] = 0
		}
		if origin[d] < 0 || origin[d]+size[d] > raw[d] {
			return nil, &WindowOutOfRangeError{Axis: d, Origin: origin[d], Size: size[d], ParentRawSize: raw[d]}
		}
	}

	handle, err := comm.RegisterSubarray(raw, size, origin)
	if err != nil {
		return nil, err
	}

	return &Subarray[T]{
		parent:    parent,
		comm:      comm,
		spec:      spec,
		intent:    intent,
		size:      size,
		rawOrigin: origin,
		handle:    handle,
	}, nil
}

// Size returns a defensive copy of the window's per-axis extent.
func (s *Subarray[T]) Size() []int { return append([]int(nil), s.size...) }

// RawOrigin returns a defensive copy of the window's raw-space origin.
func (s *Subarray[T]) RawOrigin() []int { return append([]int(nil), s.rawOrigin...) }

// Spec returns the boundary.Spec this Subarray was built from.
func (s *Subarray[T]) Spec() boundary.Spec { return s.spec }

// Intent returns SEND or RECV.
func (s *Subarray[T]) Intent() boundary.Intent { return s.intent }

// Close deregisters the transport-level descriptor. It is safe to call at
// most once; a second call returns ErrClosed.
func (s *Subarray[T]) Close() error {
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	return s.comm.FreeSubarray(s.handle)
}

// Len reports the number of elements the window covers, satisfying
// transport.Buffer.
func (s *Subarray[T]) Len() int {
	n := 1
	for _, sz := range s.size {
		n *= sz
	}
	return n
}

// At returns the i-th element of the window in column-major (first-axis
// fastest) order, satisfying transport.Buffer.
func (s *Subarray[T]) At(i int) any {
	return s.parent.RawAt(s.rawCoord(i))
}

// SetAt assigns the i-th element of the window, satisfying
// transport.Buffer.
func (s *Subarray[T]) SetAt(i int, v any) {
	s.parent.SetRawAt(s.rawCoord(i), v.(T))
}

// rawCoord unravels i into a per-axis offset within the window
// (column-major, first axis fastest) and adds rawOrigin.
func (s *Subarray[T]) rawCoord(i int) []int {
	coord := make([]int, len(s.size))
	for d := 0; d < len(s.size); d++ {
		coord[d] = s.rawOrigin[d] + i%s.size[d]
		i /= s.size[d]
	}
	return coord
}
