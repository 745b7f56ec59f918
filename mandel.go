package mandel

import (
	"errors"
	"fmt"
	"image"
)

var (
	// ErrInvalidDimensions is returned for grids with a zero or negative width or height.
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")

	// ErrInvalidIterations is returned for a negative iteration cap.
	ErrInvalidIterations = errors.New("iteration cap must not be negative")
)

// Region within the Mandelbrot set
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// Windows used by the programs. They are independent scenarios: the preview
// and the benchmarks frame the same view with different vertical bounds.
var (
	// PreviewView is the whole set as drawn by the ASCII visualization.
	PreviewView = Region{
		Xmin: -2.5,
		Xmax: 1.0,
		Ymin: -1.0,
		Ymax: 1.0,
	}

	// BenchmarkView is the whole set as sampled by the benchmarks.
	BenchmarkView = Region{
		Xmin: -2.5,
		Xmax: 1.0,
		Ymin: -1.25,
		Ymax: 1.25,
	}
)

// Zoom returns the square region of half-size half centred on (cx, cy).
func Zoom(cx, cy, half float64) Region {
	return Region{
		Xmin: cx - half,
		Xmax: cx + half,
		Ymin: cy - half,
		Ymax: cy + half,
	}
}

// FrameRegion returns the animation window [-2z, z] × [-z, z].
func FrameRegion(zoom float64) Region {
	return Region{
		Xmin: -2.0 * zoom,
		Xmax: zoom,
		Ymin: -zoom,
		Ymax: zoom,
	}
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Region{
		Xmin: -0.8,
		Xmax: -0.7,
		Ymin: 0.05,
		Ymax: 0.15,
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Region{
		Xmin: -1.85,
		Xmax: -1.75,
		Ymin: -0.10,
		Ymax: -0.02,
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{
		Xmin: -0.7435,
		Xmax: -0.7420,
		Ymin: 0.1310,
		Ymax: 0.1325,
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Region{
		Xmin: -0.7480,
		Xmax: -0.7450,
		Ymin: 0.0950,
		Ymax: 0.0980,
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Region{
		Xmin: -0.7400,
		Xmax: -0.7350,
		Ymin: 0.1800,
		Ymax: 0.1850,
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Region{
		Xmin: -1.7390,
		Xmax: -1.7375,
		Ymin: -0.0235,
		Ymax: -0.0220,
	}
)

// Landmark is a named region.
type Landmark struct {
	Name   string
	Region Region
}

// Landmarks lists the named regions in viewing order, starting with the full preview.
var Landmarks = []Landmark{
	{Name: "Preview", Region: PreviewView},
	{Name: "Seahorse Valley", Region: SeahorseValley},
	{Name: "Elephant Valley", Region: ElephantValley},
	{Name: "Spiral Minibrot", Region: SpiralMinibrot},
	{Name: "Triple Spiral", Region: TripleSpiral},
	{Name: "Valley of the Dragon", Region: ValleyOfTheDragon},
	{Name: "Minibrot in a Mini-Spiral", Region: MinibrotInMiniSpiral},
}

// Grid samples a Region at W × H pixels. Points are generated on demand.
type Grid struct {
	Region
	W, H int
}

// Validate rejects grids that would divide by zero when mapping pixels to points.
func (g Grid) Validate() error {
	if g.W <= 0 || g.H <= 0 {
		return fmt.Errorf("%dx%d: %w", g.W, g.H, ErrInvalidDimensions)
	}
	return nil
}

// Point maps the pixel (col, row) to its complex sample point.
func (g Grid) Point(col, row int) (cx, cy float64) {
	cx = g.Xmin + (g.Xmax-g.Xmin)*float64(col)/float64(g.W)
	cy = g.Ymin + (g.Ymax-g.Ymin)*float64(row)/float64(g.H)
	return cx, cy
}

func (g Grid) Pixels() int {
	return g.W * g.H
}

// Bounds is the pixel rectangle of the grid with its origin at (0, 0).
func (g Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.W, g.H)
}
