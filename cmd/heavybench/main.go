// heavybench runs the heavy Mandelbrot benchmark suite, sized so that
// process startup does not dominate the timings.
package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/marben/mandelbench/bench"
)

func main() {
	if err := run(context.Background(), os.Stdout); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run(ctx context.Context, w io.Writer) error {
	var results []bench.Result
	err := bench.RunSuite(ctx, bench.Heavy, func(r bench.Result) error {
		log.Printf("%s done in %s", r.Name, r.Elapsed)
		results = append(results, r)
		return nil
	})
	if err != nil {
		return err
	}
	return bench.WriteReport(w, bench.Heavy, results)
}
