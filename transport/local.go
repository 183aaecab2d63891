package transport

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Local simulates an nprocs-rank Cartesian communicator entirely within one
// process using goroutines and channels, in the spirit of driving a single
// shared object from many goroutines under explicit synchronization. It is
// the reference Comm this module's test suite and single-process demos run
// against; a cluster deployment supplies its own Comm (e.g. a cgo MPI
// binding) wrapping real processes instead.
type Local struct {
	nprocs int

	mu       sync.Mutex
	channels map[chanKey]chan []any
	handles  map[int64]struct{}
	nextID   int64
}

type chanKey struct {
	from, to int
	tag      int64
}

// NewLocal creates the shared world for an nprocs-rank simulation. Call
// Comm(rank) once per simulated rank to obtain that rank's view.
func NewLocal(nprocs int) *Local {
	return &Local{
		nprocs:   nprocs,
		channels: make(map[chanKey]chan []any),
		handles:  make(map[int64]struct{}),
	}
}

// Comm returns the Comm view for one simulated rank. The returned value has
// no Cartesian topology until CartCreate is called on it.
func (w *Local) Comm(rank int) Comm {
	return &localComm{world: w, rank: rank}
}

func (w *Local) channel(key chanKey) chan []any {
	w.mu.Lock()
	defer w.mu.Unlock()
	ch, ok := w.channels[key]
	if !ok {
		ch = make(chan []any, 1)
		w.channels[key] = ch
	}
	return ch
}

type localComm struct {
	world    *Local
	rank     int
	gridSize []int
	periodic []bool
}

func (c *localComm) Rank() int   { return c.rank }
func (c *localComm) NProcs() int { return c.world.nprocs }

func (c *localComm) CartCreate(gridSize []int, periodic []bool) (Comm, error) {
	if product(gridSize) != c.world.nprocs {
		return nil, ErrInvalidGrid
	}
	return &localComm{
		world:    c.world,
		rank:     c.rank,
		gridSize: append([]int(nil), gridSize...),
		periodic: append([]bool(nil), periodic...),
	}, nil
}

func (c *localComm) CartCoords(rank int) ([]int, error) {
	if c.gridSize == nil {
		return nil, ErrNotCartesian
	}
	return unravel(rank, c.gridSize), nil
}

func (c *localComm) CartRank(coords []int) int {
	if c.gridSize == nil {
		return NullRank
	}
	n := len(c.gridSize)
	cc := make([]int, n)
	for d := 0; d < n; d++ {
		v := coords[d]
		if v < 0 || v >= c.gridSize[d] {
			if !c.periodic[d] {
				return NullRank
			}
			v = ((v % c.gridSize[d]) + c.gridSize[d]) % c.gridSize[d]
		}
		cc[d] = v
	}
	return ravel(cc, c.gridSize)
}

func (c *localComm) RegisterSubarray(parentSize, viewSize, origin []int) (Handle, error) {
	for d := range viewSize {
		if origin[d] < 0 || origin[d]+viewSize[d] > parentSize[d] {
			return Handle{}, ErrBufferLengthMismatch
		}
	}
	id := atomic.AddInt64(&c.world.nextID, 1)
	c.world.mu.Lock()
	c.world.handles[id] = struct{}{}
	c.world.mu.Unlock()
	return Handle{id: id}, nil
}

func (c *localComm) FreeSubarray(h Handle) error {
	c.world.mu.Lock()
	defer c.world.mu.Unlock()
	if _, ok := c.world.handles[h.id]; !ok {
		return ErrDoubleFree
	}
	delete(c.world.handles, h.id)
	return nil
}

// SendRecv runs the send and recv halves concurrently via errgroup.Group —
// exactly the shape an atomic paired send+recv needs, since a
// deadlock-free rendezvous requires both halves in flight at once (a
// self-exchange and a mutual exchange between two ranks both post their
// sends before either blocks on its recv).
func (c *localComm) SendRecv(req SendRecvRequest) error {
	g, _ := errgroup.WithContext(context.Background())

	if req.Dst != NullRank {
		g.Go(func() error {
			payload := make([]any, req.SendBuf.Len())
			for i := range payload {
				payload[i] = req.SendBuf.At(i)
			}
			ch := c.world.channel(chanKey{from: c.rank, to: req.Dst, tag: req.Tag})
			ch <- payload
			return nil
		})
	}
	if req.Src != NullRank {
		g.Go(func() error {
			ch := c.world.channel(chanKey{from: req.Src, to: c.rank, tag: req.Tag})
			payload := <-ch
			if len(payload) != req.RecvBuf.Len() {
				return ErrBufferLengthMismatch
			}
			for i, v := range payload {
				req.RecvBuf.SetAt(i, v)
			}
			return nil
		})
	}

	return g.Wait()
}

// ravel maps a Cartesian coordinate to a rank in row-major order (the last
// axis varies fastest), matching the conventional MPI_Cart_create mapping.
func ravel(coords, gridSize []int) int {
	rank := 0
	for d := 0; d < len(coords); d++ {
		rank = rank*gridSize[d] + coords[d]
	}
	return rank
}

// unravel is ravel's inverse.
func unravel(rank int, gridSize []int) []int {
	n := len(gridSize)
	coords := make([]int, n)
	for d := n - 1; d >= 0; d-- {
		coords[d] = rank % gridSize[d]
		rank /= gridSize[d]
	}
	return coords
}

func product(sizes []int) int {
	p := 1
	for _, s := range sizes {
		p *= s
	}
	return p
}
