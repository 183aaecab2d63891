package tile

import (
	"errors"
	"fmt"
)

// Sentinel errors for the tile package.
var (
	// ErrDimensionMismatch indicates globalSize, haloOut, or haloIn have
	// inconsistent lengths.
	ErrDimensionMismatch = errors.New("tile: globalSize, haloOut, and haloIn must have the same length")
)

// DivisibilityError indicates a global array size was not evenly divisible
// by the process grid's size along some axis.
type DivisibilityError struct {
	Axis              int
	GlobalSize, Procs int
}

func (e *DivisibilityError) Error() string {
	return fmt.Sprintf("tile: axis %d global size %d is not divisible by grid size %d",
		e.Axis, e.GlobalSize, e.Procs)
}

// HaloTooLargeError indicates a halo width at or beyond the interior
// extent it pads, along some axis.
type HaloTooLargeError struct {
	Axis            int
	HaloLeft, HaloRight int
	LocalSize       int
}

func (e *HaloTooLargeError) Error() string {
	return fmt.Sprintf("tile: axis %d halo (left=%d, right=%d) must be < local size %d",
		e.Axis, e.HaloLeft, e.HaloRight, e.LocalSize)
}

// OutOfRangeError reports an index outside the halo-inclusive legal range
// on some axis, when CheckBounds is enabled. It carries the axis and the
// offending value so callers can report precisely what went wrong.
type OutOfRangeError struct {
	Axis, Value  int
	Lo, Hi       int // legal range is [Lo, Hi)
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("tile: axis %d index %d out of range [%d, %d)", e.Axis, e.Value, e.Lo, e.Hi)
}
