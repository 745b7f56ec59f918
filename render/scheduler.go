package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	mandel "github.com/marben/mandelbench"
)

// DefaultTileSize is the edge length of the square tiles handed to workers.
const DefaultTileSize = 64

var ErrInvalidTileSize = errors.New("tile size must be positive")

// Scheduler splits a grid into tiles and hands them out to any number of
// Renderers. Tiles are independent, so the finished frame does not depend on
// how many workers took part or in which order tiles were computed.
type Scheduler struct {
	workers int
	maxIter int
	frame   *Frame

	ctx       context.Context
	ctxCancel context.CancelFunc

	totalTiles     int
	totalPixels    int
	finishedPixels int

	unstarted map[image.Rectangle]struct{}
	inProcess map[image.Rectangle]struct{}
	finished  map[image.Rectangle]struct{}
	m         sync.Mutex
}

// NewScheduler prepares g for rendering in tiles of tileSize × tileSize
// pixels. Edge tiles are smaller when the grid is not divisible.
func NewScheduler(g mandel.Grid, maxIter, tileSize int) (*Scheduler, error) {
	if err := validate(g, maxIter); err != nil {
		return nil, err
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("tile size %d: %w", tileSize, ErrInvalidTileSize)
	}

	allTilesSlice := splitRectNoClip(g.Bounds(), tileSize, tileSize)
	allTiles := make(map[image.Rectangle]struct{}, len(allTilesSlice))
	for _, t := range allTilesSlice {
		allTiles[t] = struct{}{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		maxIter:     maxIter,
		frame:       newFrame(g, maxIter),
		unstarted:   allTiles,
		inProcess:   make(map[image.Rectangle]struct{}),
		finished:    make(map[image.Rectangle]struct{}, len(allTiles)),
		totalTiles:  len(allTiles),
		totalPixels: g.Pixels(),
		ctx:         ctx,
		ctxCancel:   cancel,
	}, nil
}

func (s *Scheduler) popTile() (tile image.Rectangle, found bool) {
	s.m.Lock()
	defer s.m.Unlock()

	// Get unstarted tile
	if len(s.unstarted) > 0 {
		for tile = range s.unstarted {
			break
		}
		delete(s.unstarted, tile)

		// Move popped tile to currently processed tiles
		s.inProcess[tile] = struct{}{}
		return tile, true
	}

	// If there is no unstarted tile, we work again on a started one
	if len(s.inProcess) > 0 {
		for tile = range s.inProcess {
			break
		}

		return tile, true
	}

	return image.Rectangle{}, false
}

// Wait blocks until every tile has been rendered and returns the frame.
// A finished frame is returned even if ctx is already done.
func (s *Scheduler) Wait(ctx context.Context) (*Frame, error) {
	select {
	case <-s.ctx.Done():
		return s.frame, nil
	default:
	}

	select {
	case <-s.ctx.Done():
		return s.frame, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Finished is the rendered share of the frame in [0, 1].
func (s *Scheduler) Finished() float32 {
	s.m.Lock()
	defer s.m.Unlock()
	return float32(s.finishedPixels) / float32(s.totalPixels)
}

// FinishedTiles returns the tiles rendered so far.
func (s *Scheduler) FinishedTiles() []image.Rectangle {
	s.m.Lock()
	defer s.m.Unlock()

	tiles := make([]image.Rectangle, 0, len(s.finished))
	for t := range s.finished {
		tiles = append(tiles, t)
	}
	return tiles
}

func (s *Scheduler) TotalTiles() int {
	return s.totalTiles
}

// Workers is the number of renderers currently pulling tiles.
func (s *Scheduler) Workers() int {
	s.m.Lock()
	defer s.m.Unlock()
	return s.workers
}

func (s *Scheduler) tileFinished(tile image.Rectangle, counts []int) {
	s.m.Lock()
	defer s.m.Unlock()

	// A tile handed out twice is only counted once.
	if _, found := s.inProcess[tile]; !found {
		return
	}
	delete(s.inProcess, tile)

	s.frame.setTile(tile, counts)
	s.finished[tile] = struct{}{}
	s.finishedPixels += tile.Dx() * tile.Dy()

	if len(s.unstarted) == 0 && len(s.inProcess) == 0 {
		s.ctxCancel()
	}
}

func (s *Scheduler) incActiveWorkers() {
	s.m.Lock()
	s.workers++
	s.m.Unlock()
}

func (s *Scheduler) decActiveWorkers() {
	s.m.Lock()
	s.workers--
	s.m.Unlock()
}

// Render renders unfinished tiles on the provided Renderer until none are
// left or ctx is done. It can be called from multiple goroutines in parallel.
func (s *Scheduler) Render(ctx context.Context, renderer mandel.Renderer) error {
	s.incActiveWorkers()
	defer s.decActiveWorkers()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		tile, found := s.popTile()
		if !found {
			return nil
		}
		counts, err := renderer.RenderTile(s.frame.Grid, tile, s.maxIter)
		if err != nil {
			return fmt.Errorf("render of tile %s: %w", tile, err)
		}
		if len(counts) != tile.Dx()*tile.Dy() {
			return fmt.Errorf("render of tile %s: got %d counts, want %d", tile, len(counts), tile.Dx()*tile.Dy())
		}
		s.tileFinished(tile, counts)
	}
}

// RenderLocal runs workers goroutines calling Render on renderer and returns
// the frame once every tile is done. A non-positive workers uses one per CPU.
// The first renderer error cancels the others.
func (s *Scheduler) RenderLocal(ctx context.Context, workers int, renderer mandel.Renderer) (*Frame, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	eg, egCtx := errgroup.WithContext(ctx)
	for range workers {
		eg.Go(func() error {
			return s.Render(egCtx, renderer)
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	// Render only returns nil once no tile is left.
	return s.frame, nil
}

// RenderParallel renders g with workers local TileRenderers. A non-positive
// workers uses one per CPU. The result is identical to Render.
func RenderParallel(ctx context.Context, g mandel.Grid, maxIter, workers int) (*Frame, error) {
	s, err := NewScheduler(g, maxIter, DefaultTileSize)
	if err != nil {
		return nil, err
	}
	return s.RenderLocal(ctx, workers, TileRenderer{})
}

// splitRectNoClip splits r into tiles of size tileW × tileH.
// Tiles at the right and bottom edges are smaller if r is not divisible.
func splitRectNoClip(r image.Rectangle, tileW, tileH int) []image.Rectangle {
	if tileW <= 0 || tileH <= 0 {
		panic("tile dimensions must be positive")
	}

	w := r.Dx()
	h := r.Dy()

	var tiles []image.Rectangle

	for oy := 0; oy < h; oy += tileH {
		th := min(tileH, h-oy)

		for ox := 0; ox < w; ox += tileW {
			tw := min(tileW, w-ox)

			tile := image.Rect(
				r.Min.X+ox,
				r.Min.Y+oy,
				r.Min.X+ox+tw,
				r.Min.Y+oy+th,
			)
			tiles = append(tiles, tile)
		}
	}

	return tiles
}
