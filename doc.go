// Package haloarrays is a distributed N-dimensional array library: a dense
// tile of data partitioned across a Cartesian grid of processes, each with
// a halo (ghost-layer) border kept in sync with its neighbours' interior by
// a single collective operation, SwapHalo.
//
// What is haloarrays?
//
//	A small, dependency-light stack of four packages:
//
//	  - Region naming: addressing a tile's border regions (LEFT/CENTER/
//	    RIGHT/WILDCARD per axis) and hashing them to message tags.
//	  - Cartesian topology: per-process rank, coordinates, and neighbour
//	    lookup over a periodic-or-not process grid.
//	  - Strided views: deriving the send/receive window for a region from
//	    a tile's halo widths.
//	  - The tile itself: halo-aware element access, interior iteration,
//	    and the exchange that refreshes every halo in one call.
//
// Organized under four subpackages:
//
//	boundary/  — region naming and message-tag hashing
//	layout/    — the Cartesian process grid
//	subarray/  — strided send/receive window derivation
//	tile/      — the distributed array and its halo exchange
//
// The message-passing runtime itself is abstracted behind transport.Comm;
// this module ships transport.Local, an in-process goroutine simulation
// for tests and single-binary demos, alongside the real contract a cluster
// deployment implements over its own runtime.
package haloarrays
