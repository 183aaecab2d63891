package transport

import "errors"

// Sentinel errors for the transport package.
var (
	// ErrInvalidGrid indicates a CartCreate grid-size product that does
	// not equal the communicator's process count.
	ErrInvalidGrid = errors.New("transport: grid size product does not match process count")

	// ErrNotCartesian indicates CartCoords was called on a Comm that was
	// never given a Cartesian topology via CartCreate (CartRank reports the
	// same case by returning NullRank).
	ErrNotCartesian = errors.New("transport: communicator has no Cartesian topology")

	// ErrDoubleFree indicates FreeSubarray was called with a handle that
	// was already freed, or was never registered.
	ErrDoubleFree = errors.New("transport: subarray handle already freed")

	// ErrBufferLengthMismatch indicates a SendRecv's send/recv buffer
	// length did not match its peer's, or a RegisterSubarray window that
	// does not fit inside its parent extent.
	ErrBufferLengthMismatch = errors.New("transport: send/recv buffer length mismatch")
)
