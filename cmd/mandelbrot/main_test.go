package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&buf); err != nil {
		t.Fatalf("run: %v", err)
	}

	lines := strings.Split(buf.String(), "\n")
	// 4 header lines, 40 rows, blank line, footer, trailing empty element.
	if len(lines) != 4+40+2+1 {
		t.Fatalf("got %d lines", len(lines))
	}
	if lines[0] != "Rendering Mandelbrot Set..." || lines[1] != "Size: 80 x 40" || lines[2] != "Max iterations: 100" {
		t.Errorf("unexpected header: %q", lines[:4])
	}
	if got, want := lines[4+20], "############                                                   =+***############"; got != want {
		t.Errorf("row 20\n got %q\nwant %q", got, want)
	}
	if lines[len(lines)-2] != "Rendering complete!" {
		t.Errorf("unexpected footer %q", lines[len(lines)-2])
	}
}
