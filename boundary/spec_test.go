// Package boundary_test verifies boundary.Spec construction, Opposite, and
// Hash contracts.
package boundary_test

import (
	"testing"

	"github.com/gasagna/haloarrays/boundary"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsAllWildcard(t *testing.T) {
	t.Parallel()

	_, err := boundary.New(boundary.WILDCARD, boundary.WILDCARD, boundary.WILDCARD)
	require.ErrorIs(t, err, boundary.ErrInvalidSpec)
}

func TestNew_AcceptsNonCenterSpecs(t *testing.T) {
	t.Parallel()

	for _, tags := range [][]boundary.Tag{
		{boundary.LEFT},
		{boundary.RIGHT, boundary.CENTER},
		{boundary.WILDCARD, boundary.LEFT},
		{boundary.CENTER, boundary.CENTER, boundary.RIGHT},
	} {
		_, err := boundary.New(tags...)
		require.NoError(t, err)
	}
}

func TestOpposite_IsInvolution(t *testing.T) {
	t.Parallel()

	for _, s := range boundary.EnumerateFull(3) {
		require.Equal(t, s.String(), boundary.Opposite(boundary.Opposite(s)).String())
	}
}

func TestOpposite_SwapsLeftRightOnly(t *testing.T) {
	t.Parallel()

	s, err := boundary.New(boundary.LEFT, boundary.CENTER, boundary.WILDCARD)
	require.NoError(t, err)

	opp := boundary.Opposite(s)
	require.Equal(t, boundary.RIGHT, opp.Tag(0))
	require.Equal(t, boundary.CENTER, opp.Tag(1))
	require.Equal(t, boundary.WILDCARD, opp.Tag(2))
}

func TestHash_DiffersByIntent(t *testing.T) {
	t.Parallel()

	for _, s := range boundary.EnumerateFull(3) {
		if s.IsCenter() {
			continue
		}
		require.NotEqual(t, boundary.Hash(s, boundary.SEND), boundary.Hash(s, boundary.RECV))
	}
}

func TestHash_InjectiveAcrossSpecs(t *testing.T) {
	t.Parallel()

	seen := make(map[int64]string)
	for _, s := range boundary.EnumerateFull(3) {
		for _, intent := range []boundary.Intent{boundary.SEND, boundary.RECV} {
			h := boundary.Hash(s, intent)
			if prev, ok := seen[h]; ok {
				t.Fatalf("hash collision: %s and %s both hash to %d", prev, s.String(), h)
			}
			seen[h] = s.String()
		}
	}
}

func TestEnumerate_ReducedSizeIsTwoN(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 4; n++ {
		require.Len(t, boundary.Enumerate(n), 2*n)
	}
}

func TestEnumerate_2DMatchesSpecScenarioNaming(t *testing.T) {
	t.Parallel()

	specs := boundary.Enumerate(2)
	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.String()
	}
	require.Equal(t, []string{"L*", "R*", "CL", "CR"}, names)
}

func TestEnumerateFull_SizeIsThreePowNMinusOne(t *testing.T) {
	t.Parallel()

	require.Len(t, boundary.EnumerateFull(3), 26)
}
