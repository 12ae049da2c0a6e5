package main

import "flag"

// Command-line flags. Endpoints given with -from/-to override the S and G
// markers of the map.
var (
	// mapFlag names the ASCII map file; "-" or empty reads stdin.
	mapFlag = flag.String("map", "-", "ASCII map file ('.' floor, '#' wall, 'S' start, 'G' goal); - for stdin")

	// fromFlag and toFlag set the endpoints as "x,y".
	fromFlag = flag.String("from", "", "origin cell as x,y (defaults to the S marker)")
	toFlag   = flag.String("to", "", "destination cell as x,y (defaults to the G marker)")

	// heuristicFlag selects the search heuristic.
	heuristicFlag = flag.String("heuristic", "manhattan", "heuristic: manhattan, octile or zero")

	// pngFlag writes a rendering of the map and route when set.
	pngFlag = flag.String("png", "", "write a PNG rendering of the map and route to this file")

	cellFlag = flag.Int("cell", 16, "PNG cell size in pixels")

	// logLevelFlag controls the stderr log verbosity.
	logLevelFlag = flag.String("log-level", "info", "log level: debug, info, warn or error")
)
