package render

import (
	"bufio"
	"bytes"
	"image"
	"io"

	mandel "github.com/marben/mandelbench"
)

// Frame holds the escape count of every pixel of a grid.
type Frame struct {
	mandel.Grid
	MaxIter int
	Iter    []int // row-major, W*H entries
}

func newFrame(g mandel.Grid, maxIter int) *Frame {
	return &Frame{
		Grid:    g,
		MaxIter: maxIter,
		Iter:    make([]int, g.Pixels()),
	}
}

// Render computes the full frame serially.
func Render(g mandel.Grid, maxIter int) (*Frame, error) {
	if err := validate(g, maxIter); err != nil {
		return nil, err
	}

	f := newFrame(g, maxIter)
	err := Scan(g, maxIter, func(col, row, iter int) {
		f.Iter[row*g.W+col] = iter
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (f *Frame) At(col, row int) int {
	return f.Iter[row*f.W+col]
}

// setTile copies row-major tile counts into the frame.
func (f *Frame) setTile(tile image.Rectangle, counts []int) {
	w := tile.Dx()
	for y := tile.Min.Y; y < tile.Max.Y; y++ {
		src := counts[(y-tile.Min.Y)*w : (y-tile.Min.Y+1)*w]
		copy(f.Iter[y*f.W+tile.Min.X:], src)
	}
}

func (f *Frame) Stats() Stats {
	s := Stats{Pixels: len(f.Iter)}
	for _, iter := range f.Iter {
		s.Iterations += int64(iter)
		if iter == f.MaxIter {
			s.Bounded++
		}
	}
	return s
}

// Row returns the glyph line for one row of the frame.
func (f *Frame) Row(row int) string {
	line := make([]byte, f.W)
	for col := range line {
		line[col] = mandel.Glyph(f.At(col, row), f.MaxIter)
	}
	return string(line)
}

// WriteTo writes the frame as ASCII art, one newline-terminated line per row.
func (f *Frame) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for row := 0; row < f.H; row++ {
		k, err := bw.WriteString(f.Row(row))
		n += int64(k)
		if err != nil {
			return n, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}
	return n, bw.Flush()
}

// Text is the ASCII art of the frame.
func (f *Frame) Text() []byte {
	var buf bytes.Buffer
	f.WriteTo(&buf)
	return buf.Bytes()
}
