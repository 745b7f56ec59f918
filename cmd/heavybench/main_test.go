package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	if testing.Short() {
		t.Skip("heavy suite skipped in short mode")
	}

	var buf bytes.Buffer
	if err := run(context.Background(), &buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "=== Heavy Mandelbrot Benchmark ===\nThis benchmark is designed to minimize startup time effects\n\n") {
		t.Errorf("unexpected start of report:\n%s", out)
	}
	for _, want := range []string{
		"Total iterations: 7109552\n",
		"Total iterations: 35555964\n",
		"Frames calculated: 30\nTotal pixels: 300000\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report is missing %q", want)
		}
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	if err := run(ctx, &buf); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if buf.Len() != 0 {
		t.Errorf("canceled run wrote %d bytes", buf.Len())
	}
}
