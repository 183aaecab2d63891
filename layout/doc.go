// Package layout wraps a Cartesian process grid: per-axis process counts
// and periodicity, this process's rank and coordinates within the grid,
// and neighbour-rank lookup by boundary.Spec. A Layout is immutable after
// construction; neighbour ranks are always computed on demand through the
// transport's Cartesian mapping, never cached.
package layout
