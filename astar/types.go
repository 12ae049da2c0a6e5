// Package astar defines the map contract, options, cost model and sentinel
// errors for grid A* search.
package astar

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the astar package.
var (
	// ErrNilMap indicates that a nil Map was passed to New.
	ErrNilMap = errors.New("astar: map is nil")

	// ErrEmptyMap indicates that the map reports a non-positive width or height.
	ErrEmptyMap = errors.New("astar: map must have positive width and height")

	// ErrOutOfBounds indicates an origin or destination outside the map.
	ErrOutOfBounds = errors.New("astar: coordinate out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrNotSearched is returned by Path before FindPath has run.
	ErrNotSearched = errors.New("astar: FindPath has not been called")

	// ErrNoPath indicates the open set was exhausted before reaching the destination.
	ErrNoPath = errors.New("astar: no path between origin and destination")
)

// Map is the walkability grid consumed by the search. IsWalkable is only
// queried for in-bounds coordinates.
type Map interface {
	Width() int
	Height() int
	IsWalkable(x, y int) bool
}

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Default step costs.
const (
	DefaultHorizontalCost = 10
	DefaultVerticalCost   = 10
)

// Costs holds the per-step movement costs.
type Costs struct {
	Horizontal int
	Vertical   int
	Diagonal   int
}

// NewCosts returns Costs with the diagonal derived as round(sqrt(h² + v²)).
func NewCosts(horizontal, vertical int) Costs {
	d := math.RoundToEven(math.Sqrt(float64(horizontal*horizontal + vertical*vertical)))
	return Costs{
		Horizontal: horizontal,
		Vertical:   vertical,
		Diagonal:   int(d),
	}
}

// Step returns the cost of moving from `from` to the adjacent cell `to`.
// A move is diagonal when neither coordinate matches. A move along a column
// (same x) is charged Horizontal and a move along a row (same y) Vertical.
func (c Costs) Step(from, to Point) int {
	switch {
	case from.X == to.X:
		return c.Horizontal
	case from.Y == to.Y:
		return c.Vertical
	default:
		return c.Diagonal
	}
}

// Heuristic estimates the remaining cost from `from` to `to`.
type Heuristic func(from, to Point, c Costs) int

// ManhattanScaled is the Manhattan distance scaled by the mean of the
// vertical and horizontal costs. It overestimates when diagonal moves are
// available, so the search is not guaranteed to find the cheapest path.
func ManhattanScaled(from, to Point, c Costs) int {
	return (abs(from.X-to.X) + abs(from.Y-to.Y)) * (c.Vertical + c.Horizontal) / 2
}

// Octile is the exact cost of an unobstructed 8-connected move and never
// overestimates.
func Octile(from, to Point, c Costs) int {
	dx, dy := abs(from.X-to.X), abs(from.Y-to.Y)
	diag := min(dx, dy)
	// remaining straight run along the longer axis
	if dx > dy {
		return diag*c.Diagonal + (dx-dy)*c.Vertical
	}
	return diag*c.Diagonal + (dy-dx)*c.Horizontal
}

// Zero turns the search into Dijkstra's algorithm.
func Zero(Point, Point, Costs) int { return 0 }

// Options configures a PathFinder.
type Options struct {
	// Costs are the per-step movement costs.
	Costs Costs
	// Heuristic estimates remaining cost; defaults to ManhattanScaled.
	Heuristic Heuristic

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring a PathFinder.
type Option func(*Options)

// DefaultOptions returns Options with costs 10/10/14 and the ManhattanScaled
// heuristic.
func DefaultOptions() Options {
	return Options{
		Costs:     NewCosts(DefaultHorizontalCost, DefaultVerticalCost),
		Heuristic: ManhattanScaled,
	}
}

// WithCosts overrides the axis-aligned step costs; the diagonal cost is
// derived from them. Non-positive values are recorded as ErrOptionViolation.
func WithCosts(horizontal, vertical int) Option {
	return func(o *Options) {
		if horizontal <= 0 || vertical <= 0 {
			o.err = fmt.Errorf("%w: costs must be positive (horizontal=%d, vertical=%d)",
				ErrOptionViolation, horizontal, vertical)
			return
		}
		o.Costs = NewCosts(horizontal, vertical)
	}
}

// WithHeuristic replaces the default heuristic. Passing nil is recorded as
// ErrOptionViolation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic is nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// Result holds the outcome of Find.
type Result struct {
	Path     []Point
	Cost     int
	Expanded int
	Found    bool
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
