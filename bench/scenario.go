// Package bench runs the fixed benchmark scenarios and formats their reports.
package bench

import (
	"fmt"

	mandel "github.com/marben/mandelbench"
)

// Kind selects how a scenario drives the evaluator.
type Kind int

const (
	// KindGrid scans one grid.
	KindGrid Kind = iota
	// KindFrames scans a zoom animation: frame f samples FrameRegion(1 - f*ZoomStep).
	KindFrames
	// KindPoint evaluates a single point.
	KindPoint
)

func (k Kind) String() string {
	switch k {
	case KindGrid:
		return "grid"
	case KindFrames:
		return "frames"
	case KindPoint:
		return "point"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Scenario is one named benchmark test. All parameters are fixed.
type Scenario struct {
	Name    string
	Title   string
	Kind    Kind
	MaxIter int

	// Grid is the sampled grid for KindGrid. For KindFrames only W and H are
	// used; the region changes every frame.
	Grid mandel.Grid

	Frames   int
	ZoomStep float64

	// Point is the sample point for KindPoint.
	Point complex128
}

// FrameGrid returns the grid of animation frame f.
func (s Scenario) FrameGrid(f int) mandel.Grid {
	// rounded product: no FMA
	zoom := 1.0 - float64(float64(f)*s.ZoomStep)
	return mandel.Grid{Region: mandel.FrameRegion(zoom), W: s.Grid.W, H: s.Grid.H}
}

// Suite is an ordered list of scenarios reported together.
type Suite struct {
	Name      string
	Title     string
	Note      string // optional line printed under the title
	Scenarios []Scenario
}

var deepZoom = mandel.Zoom(-0.5, 0.0, 0.5)

// Standard is the multi-scenario benchmark.
var Standard = Suite{
	Name:  "standard",
	Title: "Mandelbrot Performance Benchmark",
	Scenarios: []Scenario{
		{
			Name:    "resolution",
			Title:   "Test 1: 100x50 @ 500 iterations",
			Kind:    KindGrid,
			Grid:    mandel.Grid{Region: mandel.BenchmarkView, W: 100, H: 50},
			MaxIter: 500,
		},
		{
			Name:    "deep-zoom",
			Title:   "Test 2: Deep zoom @ 1000 iterations",
			Kind:    KindGrid,
			Grid:    mandel.Grid{Region: deepZoom, W: 60, H: 30},
			MaxIter: 1000,
		},
		{
			Name:     "frames",
			Title:    "Test 3: Multi-frame calculation (10 frames)",
			Kind:     KindFrames,
			Grid:     mandel.Grid{W: 40, H: 20},
			MaxIter:  100,
			Frames:   10,
			ZoomStep: 0.05,
		},
		{
			Name:    "stress",
			Title:   "Test 4: Stress test (single point @ 10000 iterations)",
			Kind:    KindPoint,
			Point:   complex(-0.7, 0.0),
			MaxIter: 10000,
		},
	},
}

// Heavy uses larger grids and caps so that process startup is negligible.
var Heavy = Suite{
	Name:  "heavy",
	Title: "Heavy Mandelbrot Benchmark",
	Note:  "This benchmark is designed to minimize startup time effects",
	Scenarios: []Scenario{
		{
			Name:    "resolution",
			Title:   "Test 1: 200x200 @ 1000 iterations",
			Kind:    KindGrid,
			Grid:    mandel.Grid{Region: mandel.BenchmarkView, W: 200, H: 200},
			MaxIter: 1000,
		},
		{
			Name:    "deep-zoom",
			Title:   "Test 2: 150x150 @ 2000 iterations (deep zoom)",
			Kind:    KindGrid,
			Grid:    mandel.Grid{Region: deepZoom, W: 150, H: 150},
			MaxIter: 2000,
		},
		{
			Name:     "frames",
			Title:    "Test 3: 30 frames of 100x100 @ 500 iterations",
			Kind:     KindFrames,
			Grid:     mandel.Grid{W: 100, H: 100},
			MaxIter:  500,
			Frames:   30,
			ZoomStep: 0.02,
		},
	},
}

// Suites lists every suite by name.
var Suites = []Suite{Standard, Heavy}

// Lookup returns the suite called name.
func Lookup(name string) (Suite, bool) {
	for _, s := range Suites {
		if s.Name == name {
			return s, true
		}
	}
	return Suite{}, false
}
