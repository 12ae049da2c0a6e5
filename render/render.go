package render

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/katalvlaran/gridpath/astar"
)

// layer is a set of cells filled with one colour.
type layer struct {
	col   gg.RGBA
	cells []astar.Point
}

// Draw renders m with one filled square per cell and overlays path: its
// intermediate cells in Palette.Path, its first cell in Palette.Start and
// its last in Palette.Goal. The caller owns the returned context and should
// Close it.
func Draw(m astar.Map, path []astar.Point, opts ...Option) (*gg.Context, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	w, h := m.Width(), m.Height()
	var floor []astar.Point
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if m.IsWalkable(x, y) {
				floor = append(floor, astar.Point{X: x, Y: y})
			}
		}
	}

	// later layers paint over earlier ones
	layers := []layer{{cfg.Palette.Walkable, floor}}
	if n := len(path); n > 0 {
		if n > 2 {
			layers = append(layers, layer{cfg.Palette.Path, path[1 : n-1]})
		}
		layers = append(layers, layer{cfg.Palette.Start, path[:1]})
		if n > 1 {
			layers = append(layers, layer{cfg.Palette.Goal, path[n-1:]})
		}
	}

	dc := gg.NewContext(w*cfg.CellSize, h*cfg.CellSize)
	dc.ClearWithColor(cfg.Palette.Blocked)
	for _, l := range layers {
		if err := fillCells(dc, cfg.CellSize, l); err != nil {
			_ = dc.Close()
			return nil, err
		}
	}

	return dc, nil
}

// SavePNG draws m and path and writes the image to file.
func SavePNG(file string, m astar.Map, path []astar.Point, opts ...Option) error {
	dc, err := Draw(m, path, opts...)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := dc.SavePNG(file); err != nil {
		return fmt.Errorf("render: saving %s: %w", file, err)
	}
	return nil
}

// fillCells fills one square per cell of l in a single path.
func fillCells(dc *gg.Context, cs int, l layer) error {
	if len(l.cells) == 0 {
		return nil
	}
	size := float64(cs)
	dc.SetRGBA(l.col.R, l.col.G, l.col.B, l.col.A)
	for _, p := range l.cells {
		dc.DrawRectangle(float64(p.X)*size, float64(p.Y)*size, size, size)
	}
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("render: fill: %w", err)
	}
	return nil
}
