// mandelhex writes the 80x40 preview frame as an Intel HEX image on stdout,
// ready to be flashed as the display buffer of a character-LCD firmware.
// The buffer holds one glyph byte per cell, row-major, without line breaks.
package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/marcinbor85/gohex"

	mandel "github.com/marben/mandelbench"
	"github.com/marben/mandelbench/render"
)

const (
	width   = 80
	height  = 40
	maxIter = 100

	bufferAddress = 0x0000
	hexLineLength = 16
)

func main() {
	if err := run(os.Stdout); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run(w io.Writer) error {
	frame, err := render.Render(mandel.Grid{Region: mandel.PreviewView, W: width, H: height}, maxIter)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return writeHex(w, displayBuffer(frame))
}

// displayBuffer lays the frame glyphs out row after row.
func displayBuffer(frame *render.Frame) []byte {
	var buf bytes.Buffer
	buf.Grow(frame.Pixels())
	for row := 0; row < frame.H; row++ {
		buf.WriteString(frame.Row(row))
	}
	return buf.Bytes()
}

func writeHex(w io.Writer, data []byte) error {
	mem := gohex.NewMemory()
	if err := mem.AddBinary(bufferAddress, data); err != nil {
		return fmt.Errorf("AddBinary: %w", err)
	}
	if err := mem.DumpIntelHex(w, hexLineLength); err != nil {
		return fmt.Errorf("DumpIntelHex: %w", err)
	}
	return nil
}
