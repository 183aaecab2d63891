package tile

import "github.com/gasagna/haloarrays/boundary"

// NHaloPoints returns the extent along axis d that tag addresses: HaloLeft
// for LEFT, HaloRight for RIGHT, the interior LocalSize for CENTER, and the
// full RawSize for WILDCARD, since a wildcard axis spans its whole extent
// including both halos.
func (t *Tile[T]) NHaloPoints(tag boundary.Tag, d int) int {
	switch tag {
	case boundary.LEFT:
		return t.haloLeft[d]
	case boundary.RIGHT:
		return t.haloRight[d]
	case boundary.CENTER:
		return t.localSize[d]
	default: // WILDCARD
		return t.rawSize[d]
	}
}
