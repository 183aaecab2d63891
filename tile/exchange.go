package tile

import (
	"fmt"

	"github.com/gasagna/haloarrays/boundary"
	"github.com/gasagna/haloarrays/transport"
)

// SwapHalo exchanges halo data with every live neighbour. For each region
// of the reduced enumeration it sends this process's cached SEND window for
// that region to the neighbour there, and receives into its cached RECV
// window for the Opposite region from the neighbour on the opposite side,
// as one atomic paired transfer. Every rank handles the same region at the
// same step, so each step is a shift along one axis. A side with no
// neighbour (off a non-periodic grid edge) is transport.NullRank and its
// half of the transfer is skipped; a region with neither is skipped.
//
// The regions are walked from the last to the first (for n=2: CR, CL, R*,
// L*), so a WILDCARD window already carries the halo cells the later axes
// have filled, and corner halos come out right after a single call.
//
// SwapHalo must be called by every rank that shares a Layout, in lockstep;
// it performs no internal synchronisation beyond the paired transfers
// themselves.
func (t *Tile[T]) SwapHalo() error {
	comm := t.lay.Comm()
	specs := boundary.Enumerate(t.n)
	for i := len(specs) - 1; i >= 0; i-- {
		spec := specs[i]
		opp := boundary.Opposite(spec)
		dst := t.lay.RankOfNeighbourAt(spec)
		src := t.lay.RankOfNeighbourAt(opp)
		if dst == transport.NullRank && src == transport.NullRank {
			continue
		}

		req := transport.SendRecvRequest{
			SendBuf: t.cache[boundary.Hash(spec, boundary.SEND)],
			Dst:     dst,
			RecvBuf: t.cache[boundary.Hash(opp, boundary.RECV)],
			Src:     src,
			Tag:     wireTag(spec),
		}
		if err := comm.SendRecv(req); err != nil {
			return fmt.Errorf("tile: swap halo region %s: %w", spec, err)
		}
	}
	return nil
}

// wireTag derives the on-wire message tag for one region of an exchange:
// the smaller of boundary.Hash(spec, SEND) and the same hash of its
// Opposite, so a region and its opposite share one tag. The sender and the
// receiver of a transfer handle the same region at the same step of
// SwapHalo, so both compute the same tag.
func wireTag(spec boundary.Spec) int64 {
	h := boundary.Hash(spec, boundary.SEND)
	if ho := boundary.Hash(boundary.Opposite(spec), boundary.SEND); ho < h {
		return ho
	}
	return h
}
