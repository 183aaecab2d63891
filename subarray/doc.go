// Package subarray implements Subarray, a strided rectangular-view
// descriptor over a tile's raw buffer, produced from a boundary.Spec and an
// intent (SEND/RECV). It registers a transport-level strided descriptor on
// construction and deregisters it on Close, and implements transport.Buffer
// so SendRecv can copy through it without knowing the tile's element type.
//
// Subarray depends only on the RawBuffer interface declared here, not on
// the tile package's concrete type, so tile can depend on subarray (to
// build and cache Subarrays over itself) without an import cycle.
package subarray
