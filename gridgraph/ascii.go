package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseASCII reads a map where GlyphWalkable marks a walkable cell and
// GlyphBlocked a wall. GlyphStart and GlyphGoal mark walkable cells and are
// reported in Markers; each may appear at most once. Blank lines and
// trailing whitespace are ignored.
//
// Errors:
//   - ErrEmptyGrid if no row was read.
//   - ErrNonRectangular if rows have differing lengths.
//   - ErrBadGlyph for any other character.
//   - ErrDuplicateMarker for a second S or G.
func ParseASCII(r io.Reader, conn Connectivity) (*GridGraph, Markers, error) {
	var (
		values [][]int
		mk     Markers
		lineNo int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" {
			continue
		}
		if len(values) > 0 && len(line) != len(values[0]) {
			return nil, Markers{}, fmt.Errorf("%w: line %d has %d columns, want %d",
				ErrNonRectangular, lineNo, len(line), len(values[0]))
		}
		y := len(values)
		row := make([]int, len(line))
		for x := 0; x < len(line); x++ {
			switch line[x] {
			case GlyphWalkable:
				row[x] = Walkable
			case GlyphBlocked:
				row[x] = Blocked
			case GlyphStart:
				if mk.HasStart {
					return nil, Markers{}, fmt.Errorf("%w: second %q at line %d, column %d",
						ErrDuplicateMarker, GlyphStart, lineNo, x+1)
				}
				mk.Start, mk.HasStart = [2]int{x, y}, true
				row[x] = Walkable
			case GlyphGoal:
				if mk.HasGoal {
					return nil, Markers{}, fmt.Errorf("%w: second %q at line %d, column %d",
						ErrDuplicateMarker, GlyphGoal, lineNo, x+1)
				}
				mk.Goal, mk.HasGoal = [2]int{x, y}, true
				row[x] = Walkable
			default:
				return nil, Markers{}, fmt.Errorf("%w: %q at line %d, column %d",
					ErrBadGlyph, line[x], lineNo, x+1)
			}
		}
		values = append(values, row)
	}
	if err := sc.Err(); err != nil {
		return nil, Markers{}, fmt.Errorf("gridgraph: reading map: %w", err)
	}

	gg, err := From2D(values, conn)
	if err != nil {
		return nil, Markers{}, err
	}
	return gg, mk, nil
}
