package render

import (
	"image"

	mandel "github.com/marben/mandelbench"
)

// TileRenderer renders tiles on the local CPU.
type TileRenderer struct {
	// OnTileRender, if set, is called before each tile is computed.
	OnTileRender func(tile image.Rectangle)
}

var _ mandel.Renderer = TileRenderer{}

func (tr TileRenderer) RenderTile(g mandel.Grid, tile image.Rectangle, maxIter int) ([]int, error) {
	if err := validate(g, maxIter); err != nil {
		return nil, err
	}
	if tr.OnTileRender != nil {
		tr.OnTileRender(tile)
	}

	tile = tile.Intersect(g.Bounds())
	counts := make([]int, 0, tile.Dx()*tile.Dy())
	for py := tile.Min.Y; py < tile.Max.Y; py++ {
		for px := tile.Min.X; px < tile.Max.X; px++ {
			cx, cy := g.Point(px, py)
			counts = append(counts, mandel.EscapeIterations(cx, cy, maxIter))
		}
	}
	return counts, nil
}
