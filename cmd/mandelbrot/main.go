// mandelbrot prints an 80x40 ASCII picture of the Mandelbrot set.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	mandel "github.com/marben/mandelbench"
	"github.com/marben/mandelbench/render"
)

const (
	width   = 80
	height  = 40
	maxIter = 100
)

func main() {
	if err := run(os.Stdout); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run(out io.Writer) error {
	w := bufio.NewWriter(out)

	fmt.Fprintln(w, "Rendering Mandelbrot Set...")
	fmt.Fprintf(w, "Size: %d x %d\n", width, height)
	fmt.Fprintf(w, "Max iterations: %d\n", maxIter)
	fmt.Fprintln(w)

	frame, err := render.Render(mandel.Grid{Region: mandel.PreviewView, W: width, H: height}, maxIter)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if _, err := frame.WriteTo(w); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering complete!")
	return w.Flush()
}
