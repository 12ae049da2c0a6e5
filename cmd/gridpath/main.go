// Command gridpath reads an ASCII map, finds a route between two cells with
// A* and prints it, optionally rendering the result as a PNG.
//
// Exit status is 0 when a route was found, 2 when the destination is
// unreachable and 1 on any other error.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/gg"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/render"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitNoPath  = 2
)

var (
	errBadPoint     = errors.New("gridpath: point must be x,y")
	errBadHeuristic = errors.New("gridpath: unknown heuristic")
	errNoEndpoint   = errors.New("gridpath: endpoint not given and no marker in map")
)

// config carries the parsed flags into run.
type config struct {
	mapFile   string
	from, to  string
	heuristic string
	png       string
	cell      int
}

func main() {
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevelFlag)); err != nil {
		fmt.Fprintf(os.Stderr, "gridpath: bad -log-level %q: %v\n", *logLevelFlag, err)
		os.Exit(exitFailure)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	gg.SetLogger(logger)

	cfg := config{
		mapFile:   *mapFlag,
		from:      *fromFlag,
		to:        *toFlag,
		heuristic: *heuristicFlag,
		png:       *pngFlag,
		cell:      *cellFlag,
	}
	os.Exit(run(cfg, os.Stdin, os.Stdout, logger))
}

// run executes one search and returns the process exit status.
func run(cfg config, stdin io.Reader, stdout io.Writer, logger *slog.Logger) int {
	grid, from, to, err := loadMap(cfg, stdin)
	if err != nil {
		logger.Error("loading map", "file", cfg.mapFile, "err", err)
		return exitFailure
	}
	h, err := parseHeuristic(cfg.heuristic)
	if err != nil {
		logger.Error("parsing flags", "err", err)
		return exitFailure
	}
	logger.Debug("searching", "width", grid.Width(), "height", grid.Height(),
		"from", from, "to", to, "heuristic", cfg.heuristic)

	res, err := astar.Find(grid, from, to, astar.WithHeuristic(h))
	switch {
	case errors.Is(err, astar.ErrNoPath):
		logger.Warn("destination unreachable", "from", from, "to", to, "expanded", res.Expanded)
		if _, walls, berr := grid.MinBreach(from.X, from.Y, to.X, to.Y); berr == nil {
			fmt.Fprintf(stdout, "no path: %d wall(s) separate %s and %s\n", walls, from, to)
		}
		return exitNoPath
	case err != nil:
		logger.Error("search failed", "err", err)
		return exitFailure
	}
	logger.Info("route found", "length", len(res.Path), "cost", res.Cost, "expanded", res.Expanded)

	cells := make([][2]int, len(res.Path))
	parts := make([]string, len(res.Path))
	for i, p := range res.Path {
		cells[i] = [2]int{p.X, p.Y}
		parts[i] = p.String()
	}
	fmt.Fprintf(stdout, "path: %s\n", strings.Join(parts, " "))
	fmt.Fprintf(stdout, "cost: %d\n", res.Cost)
	fmt.Fprintf(stdout, "expanded: %d\n", res.Expanded)
	fmt.Fprint(stdout, grid.Overlay(cells))

	if cfg.png != "" {
		if err := render.SavePNG(cfg.png, grid, res.Path, render.WithCellSize(cfg.cell)); err != nil {
			logger.Error("rendering", "file", cfg.png, "err", err)
			return exitFailure
		}
		logger.Info("wrote image", "file", cfg.png)
	}
	return exitOK
}

// loadMap reads the grid and resolves both endpoints from flags or markers.
func loadMap(cfg config, stdin io.Reader) (*gridgraph.GridGraph, astar.Point, astar.Point, error) {
	r := stdin
	if cfg.mapFile != "" && cfg.mapFile != "-" {
		f, err := os.Open(cfg.mapFile)
		if err != nil {
			return nil, astar.Point{}, astar.Point{}, err
		}
		defer f.Close()
		r = f
	}
	grid, mk, err := gridgraph.ParseASCII(r, gridgraph.Conn8)
	if err != nil {
		return nil, astar.Point{}, astar.Point{}, err
	}

	from, err := endpoint(cfg.from, mk.Start, mk.HasStart, "start")
	if err != nil {
		return nil, astar.Point{}, astar.Point{}, err
	}
	to, err := endpoint(cfg.to, mk.Goal, mk.HasGoal, "goal")
	if err != nil {
		return nil, astar.Point{}, astar.Point{}, err
	}
	return grid, from, to, nil
}

// endpoint prefers an explicit flag value over the map marker.
func endpoint(flagValue string, marker [2]int, hasMarker bool, name string) (astar.Point, error) {
	if flagValue != "" {
		return parsePoint(flagValue)
	}
	if !hasMarker {
		return astar.Point{}, fmt.Errorf("%w: %s", errNoEndpoint, name)
	}
	return astar.Point{X: marker[0], Y: marker[1]}, nil
}

// parsePoint parses "x,y".
func parsePoint(s string) (astar.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return astar.Point{}, fmt.Errorf("%w: %q", errBadPoint, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return astar.Point{}, fmt.Errorf("%w: %q: %v", errBadPoint, s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return astar.Point{}, fmt.Errorf("%w: %q: %v", errBadPoint, s, err)
	}
	return astar.Point{X: x, Y: y}, nil
}

// parseHeuristic maps a flag value to a heuristic function.
func parseHeuristic(name string) (astar.Heuristic, error) {
	switch strings.ToLower(name) {
	case "", "manhattan":
		return astar.ManhattanScaled, nil
	case "octile":
		return astar.Octile, nil
	case "zero", "dijkstra":
		return astar.Zero, nil
	default:
		return nil, fmt.Errorf("%w: %q", errBadHeuristic, name)
	}
}
