package mandel

import (
	"image"
)

// Renderer computes escape counts for one tile of a grid. The result holds
// tile.Dx()*tile.Dy() counts in row-major order.
type Renderer interface {
	RenderTile(g Grid, tile image.Rectangle, maxIter int) ([]int, error)
}
