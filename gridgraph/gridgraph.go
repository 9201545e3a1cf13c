// Package gridgraph provides utilities to treat a 2D grid of integer cell values
// as a graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Bounds-checked neighbor enumeration
//   - Identification of connected regions of cells accepted by a predicate
//   - Height-map analysis (low points and basins)
package gridgraph

import (
	"fmt"
	"strings"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input so later changes to values do not leak in.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		neighborOffsets: Offsets(opts.Conn),
	}

	return gg, nil
}

// ParseDigits builds a GridGraph from text with one row per line, where every
// byte '0'..'9' becomes its numeric value. Blank lines and surrounding
// whitespace (including '\r') are ignored.
// Returns ErrBadDigit (wrapped with the offending position) for any other byte,
// plus the errors of NewGridGraph.
func ParseDigits(text string, opts GridOptions) (*GridGraph, error) {
	var rows [][]int
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]int, len(line))
		for x := 0; x < len(line); x++ {
			c := line[x]
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("%w: %q at row %d, column %d", ErrBadDigit, c, len(rows), x)
			}
			row[x] = int(c - '0')
		}
		rows = append(rows, row)
	}

	return NewGridGraph(rows, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// At returns the value at (x,y). The coordinate must be in bounds.
func (gg *GridGraph) At(x, y int) int {
	return gg.CellValues[y][x]
}

// Set stores v at (x,y). The coordinate must be in bounds.
func (gg *GridGraph) Set(x, y, v int) {
	gg.CellValues[y][x] = v
}

// Len returns the number of cells, Width×Height.
func (gg *GridGraph) Len() int {
	return gg.Width * gg.Height
}

// Clone returns a deep copy sharing no cell storage with gg.
// Complexity: O(W×H).
func (gg *GridGraph) Clone() *GridGraph {
	cells := make([][]int, gg.Height)
	for y := range cells {
		cells[y] = make([]int, gg.Width)
		copy(cells[y], gg.CellValues[y])
	}

	return &GridGraph{
		Width:           gg.Width,
		Height:          gg.Height,
		CellValues:      cells,
		Conn:            gg.Conn,
		neighborOffsets: gg.neighborOffsets,
	}
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// The slice is shared; callers must not modify it.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	if gg.neighborOffsets == nil {
		// zero-value GridGraph built without NewGridGraph
		return Offsets(gg.Conn)
	}
	return gg.neighborOffsets
}

// Neighbors returns the in-bounds neighbors of (x,y) under gg.Conn.
// Candidates outside the grid are silently omitted, and a coordinate that is
// itself out of range yields only those of its neighbors that fall inside.
// Order is fixed: N, E, S, W, then NE, SE, SW, NW for Conn8.
// Complexity: O(d).
func (gg *GridGraph) Neighbors(x, y int) []Point {
	return gg.neighbors(x, y, gg.NeighborOffsets())
}

// NeighborsConn is Neighbors with an explicit connectivity, independent of gg.Conn.
func (gg *GridGraph) NeighborsConn(x, y int, conn Connectivity) []Point {
	return gg.neighbors(x, y, Offsets(conn))
}

func (gg *GridGraph) neighbors(x, y int, offsets [][2]int) []Point {
	out := make([]Point, 0, len(offsets))
	for _, d := range offsets {
		nx, ny := x+d[0], y+d[1]
		if !gg.InBounds(nx, ny) {
			continue
		}
		out = append(out, Point{X: nx, Y: ny})
	}

	return out
}

// Index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// String renders the grid one row per line, values separated by nothing when
// every value is a single digit and by a space otherwise.
func (gg *GridGraph) String() string {
	sep := ""
	for _, row := range gg.CellValues {
		for _, v := range row {
			if v < 0 || v > 9 {
				sep = " "
			}
		}
	}
	var b strings.Builder
	for y, row := range gg.CellValues {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x, v := range row {
			if x > 0 {
				b.WriteString(sep)
			}
			fmt.Fprintf(&b, "%d", v)
		}
	}

	return b.String()
}
