// benchmark runs the standard Mandelbrot benchmark suite and prints its report.
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
	if err := bench.WriteHeader(w, bench.Standard); err != nil {
		return err
	}
	err := bench.RunSuite(ctx, bench.Standard, func(r bench.Result) error {
		return bench.WriteResult(w, r)
	})
	if err != nil {
		return err
	}
	return bench.WriteFooter(w)
}
