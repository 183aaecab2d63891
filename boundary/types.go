package boundary

import "fmt"

// Tag names a per-axis region: the low end (LEFT), the high end (RIGHT),
// the interior along that axis (CENTER), or a wildcard standing in for
// "either LEFT, CENTER, or RIGHT" (WILDCARD), used to collapse several
// regions that share a destination neighbour into one transfer.
type Tag int

const (
	// LEFT addresses the low-index halo at one end of an axis.
	LEFT Tag = iota
	// CENTER addresses the interior along an axis.
	CENTER
	// RIGHT addresses the high-index halo at one end of an axis.
	RIGHT
	// WILDCARD stands in for LEFT, CENTER, or RIGHT along an axis.
	WILDCARD
)

// code returns the bit value used by Hash. Codes are powers of two so that
// a base-9 positional sum keeps every axis's contribution distinguishable.
func (t Tag) code() int64 {
	switch t {
	case LEFT:
		return 1
	case CENTER:
		return 2
	case RIGHT:
		return 4
	case WILDCARD:
		return 8
	default:
		panic(fmt.Sprintf("boundary: invalid tag %d", int(t)))
	}
}

// String renders a Tag as a single character, matching the L/C/R/* notation
// used throughout the package documentation and tests.
func (t Tag) String() string {
	switch t {
	case LEFT:
		return "L"
	case CENTER:
		return "C"
	case RIGHT:
		return "R"
	case WILDCARD:
		return "*"
	default:
		return "?"
	}
}

// Intent distinguishes a Subarray built to SEND data to a neighbour from
// one built to RECV data from it.
type Intent int

const (
	// SEND marks a Subarray as a send window.
	SEND Intent = iota
	// RECV marks a Subarray as a receive window.
	RECV
)

func (i Intent) sign() int64 {
	if i == RECV {
		return -1
	}
	return 1
}

// String renders an Intent for diagnostics.
func (i Intent) String() string {
	if i == RECV {
		return "RECV"
	}
	return "SEND"
}
