package subarray

import (
	"errors"
	"fmt"
)

// ErrClosed indicates an operation on a Subarray whose Close was already
// called.
var ErrClosed = errors.New("subarray: use of a closed Subarray")

// WindowOutOfRangeError reports a derived window that does not fit inside
// its parent's raw extent along some axis — a defect in the parent's own
// construction invariants, since Subarray derives windows only from
// halo widths the parent already validated.
type WindowOutOfRangeError struct {
	Axis          int
	Origin, Size  int
	ParentRawSize int
}

func (e *WindowOutOfRangeError) Error() string {
	return fmt.Sprintf("subarray: axis %d window [%d, %d) exceeds parent raw size %d",
		e.Axis, e.Origin, e.Origin+e.Size, e.ParentRawSize)
}
