package tile_test

import (
	"context"
	"testing"

	"github.com/gasagna/haloarrays/layout"
	"github.com/gasagna/haloarrays/tile"
	"github.com/gasagna/haloarrays/transport"
	"golang.org/x/sync/errgroup"
)

// BenchmarkSwapHalo_1D measures one SwapHalo round-trip across a 16-rank
// periodic ring, timing a single hot operation in isolation rather than a
// full program run.
func BenchmarkSwapHalo_1D(b *testing.B) {
	const nprocs = 16
	const localSize = 64

	world := transport.NewLocal(nprocs)
	lays := make([]*layout.Layout, nprocs)
	tiles := make([]*tile.Tile[float64], nprocs)
	for rank := 0; rank < nprocs; rank++ {
		lay, err := layout.New1D(world.Comm(rank), nprocs, true)
		if err != nil {
			b.Fatal(err)
		}
		tl, err := tile.New1D[float64](lay, localSize*nprocs, 2, 3)
		if err != nil {
			b.Fatal(err)
		}
		lays[rank] = lay
		tiles[rank] = tl
	}
	defer func() {
		for _, tl := range tiles {
			_ = tl.Close()
		}
	}()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, _ := errgroup.WithContext(context.Background())
		for rank := 0; rank < nprocs; rank++ {
			tl := tiles[rank]
			g.Go(tl.SwapHalo)
		}
		if err := g.Wait(); err != nil {
			b.Fatal(err)
		}
	}
}
