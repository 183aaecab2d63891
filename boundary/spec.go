package boundary

import "strings"

// hashBase is the positional base used by Hash. It must exceed the largest
// Tag code (8, for WILDCARD) so that each axis's contribution occupies its
// own digit and the resulting sum is injective over (Spec, Intent).
const hashBase = 9

// Spec is an N-tuple of Tag values, one per axis, naming a halo region of
// an N-dimensional tile. A Spec is immutable once constructed.
type Spec struct {
	tags []Tag
}

// New builds a Spec from per-axis tags. It fails with ErrInvalidSpec when
// every tag is WILDCARD — such a spec names no region, since a tile has at
// least one non-wildcard region to exchange.
func New(tags ...Tag) (Spec, error) {
	allWild := true
	for _, t := range tags {
		if t != WILDCARD {
			allWild = false
			break
		}
	}
	if allWild {
		return Spec{}, ErrInvalidSpec
	}

	cp := make([]Tag, len(tags))
	copy(cp, tags)
	return Spec{tags: cp}, nil
}

// Dim returns the number of axes this Spec addresses.
func (s Spec) Dim() int {
	return len(s.tags)
}

// Tag returns the tag for axis d. It panics if d is out of range; callers
// within this module always iterate 0..Dim()-1.
func (s Spec) Tag(d int) Tag {
	return s.tags[d]
}

// Tags returns a defensive copy of the per-axis tags.
func (s Spec) Tags() []Tag {
	cp := make([]Tag, len(s.tags))
	copy(cp, s.tags)
	return cp
}

// IsCenter reports whether every axis is CENTER — the spec addressing the
// tile's own interior, never exchanged.
func (s Spec) IsCenter() bool {
	for _, t := range s.tags {
		if t != CENTER {
			return false
		}
	}
	return true
}

// String renders a Spec using the L/C/R/* per-axis notation (e.g. "CL",
// "L*") used throughout the package documentation and tests.
func (s Spec) String() string {
	var b strings.Builder
	for _, t := range s.tags {
		b.WriteString(t.String())
	}
	return b.String()
}

// Opposite swaps LEFT<->RIGHT on every axis and leaves CENTER/WILDCARD
// unchanged. Opposite(Opposite(s)) == s for every Spec s.
func Opposite(s Spec) Spec {
	out := make([]Tag, len(s.tags))
	for d, t := range s.tags {
		switch t {
		case LEFT:
			out[d] = RIGHT
		case RIGHT:
			out[d] = LEFT
		default:
			out[d] = t
		}
	}
	return Spec{tags: out}
}

// Hash computes a deterministic, injective integer over (spec, intent),
// used as a local dictionary key for cached Subarrays and as the building
// block for the on-wire message tag (tile.wireTag takes the smaller of a
// region's and its Opposite's SEND Hash). Two callers
// computing Hash from the same Spec and Intent always agree on the result.
func Hash(s Spec, intent Intent) int64 {
	var h int64
	pow := int64(1)
	for _, t := range s.tags {
		h += t.code() * pow
		pow *= hashBase
	}
	return h * intent.sign()
}
