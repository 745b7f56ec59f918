package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	if err := run(context.Background(), &buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "=== Mandelbrot Performance Benchmark ===\n\nTest 1: 100x50 @ 500 iterations\n") {
		t.Errorf("unexpected start of report:\n%s", out)
	}
	for _, want := range []string{
		"Total iterations: 461020\n",
		"Total iterations: 1419533\n",
		"Frames calculated: 10\n",
		"Escaped at iteration: 10000\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report is missing %q", want)
		}
	}
	if !strings.HasSuffix(out, "=== Benchmark Complete ===\n") {
		t.Errorf("report does not end with the footer")
	}
}
