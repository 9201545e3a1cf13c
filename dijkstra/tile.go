package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/puzzlekit/gridgraph"
)

// Tile returns a grid factor times wider and taller than gg. The tile at
// column tx, row ty holds every base value raised by tx+ty, wrapping from 9
// back to 1 (never 0):
//
//	tiled = ((base - 1 + tx + ty) mod 9) + 1
//
// Every base value must lie in 1..9, so the base tile is reproduced as is.
// gg is not modified.
// Returns ErrNilGrid, ErrBadTiles or ErrTileValue for invalid input.
// Complexity: O(factor²×W×H).
func Tile(gg *gridgraph.GridGraph, factor int) (*gridgraph.GridGraph, error) {
	if gg == nil {
		return nil, ErrNilGrid
	}
	if factor < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadTiles, factor)
	}

	for y, row := range gg.CellValues {
		for x, v := range row {
			if v < 1 || v > 9 {
				return nil, fmt.Errorf("%w: cell (%d,%d)=%d", ErrTileValue, x, y, v)
			}
		}
	}

	w, h := gg.Width, gg.Height
	cells := make([][]int, h*factor)
	for y := range cells {
		cells[y] = make([]int, w*factor)
		ty, by := y/h, y%h
		for x := range cells[y] {
			tx, bx := x/w, x%w
			cells[y][x] = wrap(gg.CellValues[by][bx] + tx + ty)
		}
	}

	return gridgraph.NewGridGraph(cells, gridgraph.GridOptions{Conn: gg.Conn})
}

// wrap folds v into 1..9.
func wrap(v int) int {
	return ((v-1)%9+9)%9 + 1
}
