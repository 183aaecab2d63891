package subarray

// RawBuffer is the shape a Subarray's parent must expose: a padded
// rectangular buffer addressed in raw (halo-inclusive) coordinates, split
// into local size and per-axis halo widths. tile.Tile[T] implements this
// interface structurally; subarray never imports the tile package.
type RawBuffer[T any] interface {
	// Dim returns the number of axes.
	Dim() int
	// LocalSize returns the interior extent per axis.
	LocalSize() []int
	// HaloLeft returns the low-end halo width per axis.
	HaloLeft() []int
	// HaloRight returns the high-end halo width per axis.
	HaloRight() []int
	// RawSize returns LocalSize + HaloLeft + HaloRight per axis.
	RawSize() []int

	// RawAt returns the element at a raw (halo-inclusive) coordinate.
	RawAt(rawCoord []int) T
	// SetRawAt assigns the element at a raw coordinate.
	SetRawAt(rawCoord []int, v T)
}
