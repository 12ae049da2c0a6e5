// Package gridpath is a small toolkit for finding routes on 2D tile maps.
//
// What is in the box:
//
//	• astar/     — single-shot A* search on a walkability grid (8-connected,
//	               10/14 step costs, pluggable heuristic)
//	• gridgraph/ — immutable integer grids as walkability maps, ASCII map
//	               reading/writing, connected components, minimum wall breach
//	• render/    — draw a map and its route to an image with gogpu/gg
//	• cmd/gridpath — command-line front end tying the three together
//
// Quick ASCII example:
//
//	S . #        S . #
//	. . #   →    . * #
//	. . G        . . G
//
// The search steps diagonally through the gap and stops at G with cost 28.
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
//	gridpath -map level.txt -png level.png
package gridpath
