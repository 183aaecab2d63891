// Package tile implements Tile, a distributed N-dimensional array: a
// padded local buffer (column-major, first axis fastest-varying),
// halo-aware element access, interior iteration, and the halo-exchange
// orchestration (SwapHalo) that keeps each process's halo consistent with
// its neighbours' interior.
//
// A Tile is constructed once over a *layout.Layout, lives for its user's
// scope, and is released with Close, which also tears down its cached
// Subarrays. Concurrent calls on the same Tile are undefined — the library
// is single-threaded from its own perspective, like the message-passing
// runtime it sits on top of.
package tile
