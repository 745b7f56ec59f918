// client.go is a CLI client for the Mandelbrot server.
// It fetches the rendered preview frame, then runs the standard benchmark suite on the server and prints its report.

package main

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/marben/mandelbench/bench"
	"github.com/marben/mandelbench/remote"
)

// run prints the preview frame and the standard suite report received from the server at url.
func run(ctx context.Context, url string, w io.Writer) error {
	client := remote.NewClient(url)

	// Step 1: Fetch the preview frame
	log.Printf("Requesting preview frame from %s...", url)
	frame, err := client.Frame(ctx, "")
	if err != nil {
		return fmt.Errorf("client.Frame: %w", err)
	}
	log.Printf("Received %dx%d frame, %d total iterations", frame.Width, frame.Height, frame.Stats.Iterations)

	for _, row := range frame.Rows {
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	fmt.Fprintln(w)

	// Step 2: Run the standard suite remotely and print results as they arrive
	log.Printf("Running %q suite on server...", bench.Standard.Name)
	if err := bench.WriteHeader(w, bench.Standard); err != nil {
		return err
	}
	err = client.Bench(ctx, bench.Standard.Name, func(r bench.Result) error {
		return bench.WriteResult(w, r)
	})
	if err != nil {
		return fmt.Errorf("client.Bench: %w", err)
	}
	return bench.WriteFooter(w)
}
