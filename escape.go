// Package mandel computes Mandelbrot escape times over grids of complex points.
package mandel

import (
	"math"
	"math/cmplx"
)

// Bailout is the squared escape radius. An orbit that leaves the disk of
// radius 2 never returns.
const Bailout = 4.0

// EscapeIterations returns the number of steps the orbit of z = z² + c,
// started at z0 = 0, takes to leave the disk of radius 2. If the orbit stays
// inside for maxIter steps, maxIter is returned and the point is treated as
// bounded. A non-positive maxIter takes no steps and returns 0.
//
// Products are wrapped in float64 conversions so the compiler cannot fuse
// them into FMA instructions; iteration totals are bit-identical on every
// architecture.
func EscapeIterations(cx, cy float64, maxIter int) int {
	if maxIter <= 0 {
		return 0
	}

	x, y := 0.0, 0.0
	for iter := 0; iter < maxIter; iter++ {
		x2 := float64(x * x)
		y2 := float64(y * y)
		if x2+y2 > Bailout {
			return iter
		}

		xy := float64(2 * x * y)
		x = x2 - y2 + cx
		y = xy + cy
	}

	return maxIter
}

// Escape is EscapeIterations for a complex128 sample point.
func Escape(c complex128, maxIter int) int {
	return EscapeIterations(real(c), imag(c), maxIter)
}

// SmoothIterations returns the normalized escape count used for colouring:
// i + 1 - log2(log|z|) for escaping orbits, float64(maxIter) for bounded ones.
func SmoothIterations(cx, cy float64, maxIter int) float64 {
	if maxIter <= 0 {
		return 0
	}

	c := complex(cx, cy)
	z := complex(0, 0)
	for i := range maxIter {
		z = z*z + c
		if real(z)*real(z)+imag(z)*imag(z) > Bailout {
			return float64(i) + 1 - math.Log(math.Log(cmplx.Abs(z)))/math.Ln2
		}
	}

	// Inside the set
	return float64(maxIter)
}
