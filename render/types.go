// Package render draws a walkability map and a route onto a gogpu/gg
// context so search results can be inspected as images.
package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
)

// Sentinel errors for rendering.
var (
	// ErrNilMap indicates that a nil map was passed to Draw.
	ErrNilMap = errors.New("render: map is nil")
	// ErrBadCellSize indicates a non-positive cell size.
	ErrBadCellSize = errors.New("render: cell size must be positive")
)

// DefaultCellSize is the edge length of one cell in pixels.
const DefaultCellSize = 16

// Palette holds the fill colours for each kind of cell.
type Palette struct {
	Walkable gg.RGBA
	Blocked  gg.RGBA
	Path     gg.RGBA
	Start    gg.RGBA
	Goal     gg.RGBA
}

// Options configures Draw.
type Options struct {
	// CellSize is the edge length of one cell in pixels.
	CellSize int
	// Palette selects the colours.
	Palette Palette

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Draw.
type Option func(*Options)

// DefaultPalette returns white floors, black walls, a blue route, a green
// start and a red goal.
func DefaultPalette() Palette {
	return Palette{
		Walkable: gg.White,
		Blocked:  gg.Black,
		Path:     gg.Blue,
		Start:    gg.Green,
		Goal:     gg.Red,
	}
}

// DefaultOptions returns Options with DefaultCellSize and DefaultPalette.
func DefaultOptions() Options {
	return Options{
		CellSize: DefaultCellSize,
		Palette:  DefaultPalette(),
	}
}

// WithCellSize sets the cell edge length; n ≤ 0 is recorded as ErrBadCellSize.
func WithCellSize(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadCellSize, n)
			return
		}
		o.CellSize = n
	}
}

// WithPalette replaces the colours.
func WithPalette(p Palette) Option {
	return func(o *Options) {
		o.Palette = p
	}
}
