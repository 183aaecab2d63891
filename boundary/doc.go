// Package boundary names the halo regions of an N-dimensional tile.
//
// A Spec is an N-tuple of Tag values, one per axis. LEFT/RIGHT address the
// low/high halo at one end of an axis; CENTER addresses that axis's
// interior; WILDCARD collapses LEFT, CENTER, and RIGHT into a single region
// so that neighbours sharing a destination along orthogonal axes can be
// reached with one transfer instead of several. Enumerate lists every
// legal region for a tile of a given dimension, in the fixed order the
// exchange loop and its peers must agree on.
package boundary
