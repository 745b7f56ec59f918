// viewer is an interactive terminal viewer of the Mandelbrot landmarks.
// When stdout is not a terminal it prints the preview frame instead.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	mandel "github.com/marben/mandelbench"
	"github.com/marben/mandelbench/render"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run(ctx context.Context) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return printPreview(os.Stdout)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell.NewScreen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen.Init: %w", err)
	}
	defer screen.Fini()

	return newViewer(screen).run(ctx)
}

// printPreview writes the 80x40 preview frame as plain text.
func printPreview(w io.Writer) error {
	frame, err := render.Render(mandel.Grid{Region: mandel.PreviewView, W: 80, H: 40}, viewerMaxIter)
	if err != nil {
		return err
	}
	_, err = frame.WriteTo(w)
	return err
}
