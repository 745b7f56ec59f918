package bench

import (
	"context"
	"fmt"
	"time"

	mandel "github.com/marben/mandelbench"
	"github.com/marben/mandelbench/render"
)

// Result is the outcome of one scenario.
type Result struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Kind  Kind   `json:"kind"`

	render.Stats
	Frames         int `json:"frames,omitempty"`
	PixelsPerFrame int `json:"pixelsPerFrame,omitempty"`

	PointRe   float64 `json:"pointRe,omitempty"`
	PointIm   float64 `json:"pointIm,omitempty"`
	EscapedAt int     `json:"escapedAt,omitempty"`

	Elapsed time.Duration `json:"elapsed"`
}

// Run executes s serially and times it.
func Run(s Scenario) (Result, error) {
	res := Result{Name: s.Name, Title: s.Title, Kind: s.Kind}

	start := time.Now()
	switch s.Kind {
	case KindGrid:
		stats, err := render.Sum(s.Grid, s.MaxIter)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", s.Name, err)
		}
		res.Stats = stats

	case KindFrames:
		for f := 0; f < s.Frames; f++ {
			stats, err := render.Sum(s.FrameGrid(f), s.MaxIter)
			if err != nil {
				return Result{}, fmt.Errorf("%s: frame %d: %w", s.Name, f, err)
			}
			res.Stats.Add(stats)
		}
		res.Frames = s.Frames
		res.PixelsPerFrame = s.Grid.Pixels()

	case KindPoint:
		if s.MaxIter < 0 {
			return Result{}, fmt.Errorf("%s: %d: %w", s.Name, s.MaxIter, mandel.ErrInvalidIterations)
		}
		res.PointRe, res.PointIm = real(s.Point), imag(s.Point)
		res.EscapedAt = mandel.Escape(s.Point, s.MaxIter)
		res.Pixels = 1
		res.Iterations = int64(res.EscapedAt)
		if res.EscapedAt == s.MaxIter {
			res.Bounded = 1
		}

	default:
		return Result{}, fmt.Errorf("%s: unknown scenario kind %v", s.Name, s.Kind)
	}
	res.Elapsed = time.Since(start)

	return res, nil
}

// RunSuite runs every scenario of suite in order and passes each result to
// fn. It stops at the first error, including cancellation of ctx between
// scenarios.
func RunSuite(ctx context.Context, suite Suite, fn func(Result) error) error {
	for _, s := range suite.Scenarios {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := Run(s)
		if err != nil {
			return fmt.Errorf("suite %s: %w", suite.Name, err)
		}
		if err := fn(res); err != nil {
			return err
		}
	}
	return nil
}
