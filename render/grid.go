// Package render drives the escape-time evaluator over grids, serially or in tiles.
package render

import (
	"fmt"

	mandel "github.com/marben/mandelbench"
)

// Stats are the aggregate totals of a scan.
type Stats struct {
	Pixels     int   `json:"pixels"`
	Iterations int64 `json:"iterations"`
	Bounded    int   `json:"bounded"` // pixels that reached the cap
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Pixels += o.Pixels
	s.Iterations += o.Iterations
	s.Bounded += o.Bounded
}

// AveragePerPixel is the integer mean of iterations per pixel.
func (s Stats) AveragePerPixel() int64 {
	if s.Pixels == 0 {
		return 0
	}
	return s.Iterations / int64(s.Pixels)
}

func validate(g mandel.Grid, maxIter int) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if maxIter < 0 {
		return fmt.Errorf("%d: %w", maxIter, mandel.ErrInvalidIterations)
	}
	return nil
}

// Scan evaluates every pixel of g in row-major order and calls fn with the
// escape count of each.
func Scan(g mandel.Grid, maxIter int, fn func(col, row, iter int)) error {
	if err := validate(g, maxIter); err != nil {
		return err
	}

	for row := 0; row < g.H; row++ {
		for col := 0; col < g.W; col++ {
			cx, cy := g.Point(col, row)
			fn(col, row, mandel.EscapeIterations(cx, cy, maxIter))
		}
	}
	return nil
}

// Sum scans g and returns its totals.
func Sum(g mandel.Grid, maxIter int) (Stats, error) {
	var s Stats
	err := Scan(g, maxIter, func(_, _, iter int) {
		s.Pixels++
		s.Iterations += int64(iter)
		if iter == maxIter {
			s.Bounded++
		}
	})
	if err != nil {
		return Stats{}, err
	}
	return s, nil
}
