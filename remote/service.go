package remote

import (
	"context"
	"encoding/json"
	"image"
	"log"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	mandel "github.com/marben/mandelbench"
	"github.com/marben/mandelbench/bench"
	"github.com/marben/mandelbench/render"
)

// Frame size served for every region.
const (
	FrameWidth   = 80
	FrameHeight  = 40
	FrameMaxIter = 100
)

// Service renders frames with a pool of local workers and runs benchmark
// suites on request.
type Service struct {
	workers int
}

// NewService returns a Service rendering with workers goroutines per frame.
// A non-positive workers uses one per CPU.
func NewService(workers int) *Service {
	return &Service{workers: workers}
}

// Handler routes
//
//	GET /regions               JSON list of region names
//	GET /ws/render             websocket frame stream of the preview
//	GET /ws/render/{region}    websocket frame stream of a landmark
//	GET /ws/bench/{suite}      websocket stream of bench.Result messages
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /regions", s.handleRegions)
	mux.HandleFunc("GET /ws/render", s.handleRender)
	mux.HandleFunc("GET /ws/render/{region}", s.handleRender)
	mux.HandleFunc("GET /ws/bench/{suite}", s.handleBench)
	return mux
}

func (s *Service) handleRegions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(Slugs()); err != nil {
		log.Printf("regions: %v", err)
	}
}

func (s *Service) handleRender(w http.ResponseWriter, r *http.Request) {
	landmark := mandel.Landmarks[0]
	if slug := r.PathValue("region"); slug != "" {
		var found bool
		landmark, found = LookupLandmark(slug)
		if !found {
			http.NotFound(w, r)
			return
		}
	}

	c, err := accept(w, r)
	if err != nil {
		return
	}
	defer c.CloseNow()

	if err := s.streamFrame(r.Context(), c, landmark); err != nil {
		log.Printf("render %q for %s: %v", landmark.Name, r.RemoteAddr, err)
		c.Close(websocket.StatusInternalError, "render failed")
		return
	}
	c.Close(websocket.StatusNormalClosure, "")
}

func (s *Service) streamFrame(ctx context.Context, c *websocket.Conn, landmark mandel.Landmark) error {
	g := mandel.Grid{Region: landmark.Region, W: FrameWidth, H: FrameHeight}
	sched, err := render.NewScheduler(g, FrameMaxIter, render.DefaultTileSize)
	if err != nil {
		return err
	}
	progress := render.TileRenderer{OnTileRender: func(tile image.Rectangle) {
		log.Printf("%s: tile %v, %d/%d tiles done (%.0f%%), %d workers",
			Slug(landmark), tile, len(sched.FinishedTiles()), sched.TotalTiles(), 100*sched.Finished(), sched.Workers())
	}}
	frame, err := sched.RenderLocal(ctx, s.workers, progress)
	if err != nil {
		return err
	}

	info := FrameInfo{
		Region:  Slug(landmark),
		Width:   g.W,
		Height:  g.H,
		MaxIter: FrameMaxIter,
		Stats:   frame.Stats(),
	}
	if err := wsjson.Write(ctx, c, info); err != nil {
		return err
	}
	for row := 0; row < frame.H; row++ {
		if err := c.Write(ctx, websocket.MessageText, []byte(frame.Row(row))); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) handleBench(w http.ResponseWriter, r *http.Request) {
	suite, found := bench.Lookup(r.PathValue("suite"))
	if !found {
		http.NotFound(w, r)
		return
	}

	c, err := accept(w, r)
	if err != nil {
		return
	}
	defer c.CloseNow()

	ctx := r.Context()
	err = bench.RunSuite(ctx, suite, func(res bench.Result) error {
		log.Printf("%s/%s: %d iterations in %s", suite.Name, res.Name, res.Iterations, res.Elapsed)
		return wsjson.Write(ctx, c, res)
	})
	if err != nil {
		log.Printf("bench %q for %s: %v", suite.Name, r.RemoteAddr, err)
		c.Close(websocket.StatusInternalError, "benchmark failed")
		return
	}
	c.Close(websocket.StatusNormalClosure, "")
}

func accept(w http.ResponseWriter, r *http.Request) (*websocket.Conn, error) {
	log.Printf("got connection from: %s", r.RemoteAddr)
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"}, // TODO: tighten in prod
	})
	if err != nil {
		log.Println(err)
		return nil, err
	}
	return c, nil
}
