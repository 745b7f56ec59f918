package bench

import (
	"bufio"
	"fmt"
	"io"
)

// WriteHeader writes the banner printed before a suite.
func WriteHeader(w io.Writer, suite Suite) error {
	if suite.Note == "" {
		_, err := fmt.Fprintf(w, "=== %s ===\n\n", suite.Title)
		return err
	}
	_, err := fmt.Fprintf(w, "=== %s ===\n%s\n\n", suite.Title, suite.Note)
	return err
}

// WriteFooter writes the banner printed after a suite.
func WriteFooter(w io.Writer) error {
	_, err := fmt.Fprintln(w, "=== Benchmark Complete ===")
	return err
}

// WriteResult writes the report block of one scenario, followed by a blank line.
func WriteResult(w io.Writer, r Result) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, r.Title)
	switch r.Kind {
	case KindGrid:
		fmt.Fprintf(bw, "Pixels calculated: %d\n", r.Pixels)
		fmt.Fprintf(bw, "Total iterations: %d\n", r.Iterations)
		fmt.Fprintf(bw, "Average iterations per pixel: %d\n", r.AveragePerPixel())
	case KindFrames:
		fmt.Fprintf(bw, "Frames calculated: %d\n", r.Frames)
		fmt.Fprintf(bw, "Total pixels: %d\n", r.Pixels)
		fmt.Fprintf(bw, "Pixels per frame: %d\n", r.PixelsPerFrame)
		fmt.Fprintf(bw, "Total iterations: %d\n", r.Iterations)
		fmt.Fprintf(bw, "Average iterations per pixel: %d\n", r.AveragePerPixel())
	case KindPoint:
		fmt.Fprintf(bw, "Point: %.1f + %.1fi\n", r.PointRe, r.PointIm)
		fmt.Fprintf(bw, "Escaped at iteration: %d\n", r.EscapedAt)
	}
	fmt.Fprintf(bw, "Elapsed: %s\n\n", r.Elapsed)

	return bw.Flush()
}

// WriteReport writes a complete suite report.
func WriteReport(w io.Writer, suite Suite, results []Result) error {
	if err := WriteHeader(w, suite); err != nil {
		return err
	}
	for _, r := range results {
		if err := WriteResult(w, r); err != nil {
			return err
		}
	}
	return WriteFooter(w)
}
