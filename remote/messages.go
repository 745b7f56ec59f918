// Package remote serves rendered frames and benchmark results over websockets
// and provides the matching client.
package remote

import (
	"github.com/marben/mandelbench/render"
)

// FrameInfo is the first message of a frame stream. It is followed by
// Height text messages, one glyph row each, and a normal closure.
type FrameInfo struct {
	Region  string       `json:"region"`
	Width   int          `json:"width"`
	Height  int          `json:"height"`
	MaxIter int          `json:"maxIter"`
	Stats   render.Stats `json:"stats"`
}

// Frame is a frame as received by a Client.
type Frame struct {
	FrameInfo
	Rows []string
}
