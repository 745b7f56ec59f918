package main

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// hueCycle is how many smooth iterations one trip around the colour wheel takes.
const hueCycle = 50

// smoothStyle colours a cell by its fractional escape count. Bounded points are black.
func smoothStyle(mu float64, maxIter int) tcell.Style {
	if mu >= float64(maxIter) {
		return tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlack)
	}
	return tcell.StyleDefault.Foreground(spectrum(mu / hueCycle))
}

// spectrum maps hue to a fully saturated colour: 0 is red, 1/3 green, 2/3
// blue. Hue wraps at 1.
func spectrum(hue float64) tcell.Color {
	h := 6 * (hue - math.Floor(hue))
	return tcell.NewRGBColor(
		channel(math.Abs(h-3)-1),
		channel(2-math.Abs(h-2)),
		channel(2-math.Abs(h-4)),
	)
}

func channel(x float64) int32 {
	return int32(math.Round(255 * min(max(x, 0), 1)))
}
