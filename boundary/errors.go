package boundary

import "errors"

// Sentinel errors for the boundary package.
var (
	// ErrInvalidSpec indicates a Spec whose every tag is WILDCARD — such a
	// spec addresses no region.
	ErrInvalidSpec = errors.New("boundary: spec with every tag WILDCARD addresses no region")
)
