// Package transport defines the thin contract a message-passing runtime
// must satisfy to back a Layout/Tile exchange, and ships one
// reference implementation, Local, that simulates a Cartesian communicator
// of in-process goroutines for tests and single-process demos.
//
// Process startup/teardown of a real message-passing runtime (MPI or
// otherwise) is an external collaborator, not part of this package's
// contract: callers construct whatever Comm they need (Local for a single
// process, a cgo MPI binding for a cluster) and hand it to layout.New.
package transport
