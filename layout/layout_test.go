// Package layout_test verifies Layout construction and neighbour lookup
// contracts, including a 3x3x3 grid's centre rank's 26 neighbours under
// full periodicity.
package layout_test

import (
	"testing"

	"github.com/gasagna/haloarrays/boundary"
	"github.com/gasagna/haloarrays/layout"
	"github.com/gasagna/haloarrays/transport"
	"github.com/stretchr/testify/require"
)

func newCartLayout(t *testing.T, rank int, gridSize []int, periodic []bool) *layout.Layout {
	t.Helper()
	total := 1
	for _, s := range gridSize {
		total *= s
	}
	world := transport.NewLocal(total)
	lay, err := layout.New(world.Comm(rank), gridSize, periodic)
	require.NoError(t, err)
	return lay
}

func TestNew_RejectsMismatchedGridProduct(t *testing.T) {
	t.Parallel()

	world := transport.NewLocal(6)
	_, err := layout.New(world.Comm(0), []int{2, 2}, []bool{false, false})
	require.ErrorIs(t, err, layout.ErrInvalidGrid)
}

func TestNew_RejectsDimensionMismatch(t *testing.T) {
	t.Parallel()

	world := transport.NewLocal(4)
	_, err := layout.New(world.Comm(0), []int{2, 2}, []bool{false})
	require.ErrorIs(t, err, layout.ErrDimensionMismatch)
}

func TestSize_OutOfRange_OnlyWhenChecked(t *testing.T) {
	t.Parallel()

	world := transport.NewLocal(4)
	lay, err := layout.New(world.Comm(0), []int{2, 2}, []bool{false, false}, layout.WithCheckDims())
	require.NoError(t, err)

	_, err = lay.Size(2)
	var oor *layout.OutOfRangeError
	require.ErrorAs(t, err, &oor)
	require.Equal(t, 2, oor.Axis)
	require.Equal(t, 2, oor.Dim)
}

func TestHasNeighbourAt_NonPeriodicEdges(t *testing.T) {
	t.Parallel()

	// 1-D, 3 ranks, non-periodic: rank 0 has no LEFT neighbour.
	lay := newCartLayout(t, 0, []int{3}, []bool{false})
	left, err := boundary.New(boundary.LEFT)
	require.NoError(t, err)
	require.False(t, lay.HasNeighbourAt(left))
	require.Equal(t, transport.NullRank, lay.RankOfNeighbourAt(left))

	right, err := boundary.New(boundary.RIGHT)
	require.NoError(t, err)
	require.True(t, lay.HasNeighbourAt(right))
	require.Equal(t, 1, lay.RankOfNeighbourAt(right))
}

func TestHasNeighbourAt_PeriodicWraps(t *testing.T) {
	t.Parallel()

	lay := newCartLayout(t, 0, []int{3}, []bool{true})
	left, err := boundary.New(boundary.LEFT)
	require.NoError(t, err)
	require.True(t, lay.HasNeighbourAt(left))
	require.Equal(t, 2, lay.RankOfNeighbourAt(left))
}

func TestRankOfNeighbourAt_InRangeWheneverPresent(t *testing.T) {
	t.Parallel()

	lay := newCartLayout(t, 13, []int{3, 3, 3}, []bool{true, true, true})
	for _, s := range boundary.EnumerateFull(3) {
		r := lay.RankOfNeighbourAt(s)
		if lay.HasNeighbourAt(s) {
			require.GreaterOrEqual(t, r, 0)
			require.Less(t, r, lay.NProcs())
		} else {
			require.Equal(t, transport.NullRank, r)
		}
	}
}

// TestS5_CentreRankNeighbourSet checks a 3x3x3 fully periodic grid's
// centre rank (13, coords (1,1,1)): its 26 full-enumeration neighbour
// ranks are exactly the full process set minus itself.
func TestS5_CentreRankNeighbourSet(t *testing.T) {
	t.Parallel()

	lay := newCartLayout(t, 13, []int{3, 3, 3}, []bool{true, true, true})

	expected := map[int]bool{
		0: true, 9: true, 18: true, 3: true, 12: true, 21: true, 6: true, 15: true, 24: true,
		1: true, 10: true, 19: true, 4: true, 22: true, 7: true, 16: true, 25: true,
		2: true, 11: true, 20: true, 5: true, 14: true, 23: true, 8: true, 17: true, 26: true,
	}
	require.Len(t, expected, 26)

	got := make(map[int]bool)
	for _, s := range boundary.EnumerateFull(3) {
		got[lay.RankOfNeighbourAt(s)] = true
	}
	require.Equal(t, expected, got)
}
