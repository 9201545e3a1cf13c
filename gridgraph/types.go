// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/puzzlekit.
package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, E, S, W, NE, SE, SW, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// Point is a cell coordinate. X is the column, Y is the row.
type Point struct {
	X, Y int
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings: Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn: Conn4,
	}
}

// GridGraph treats a 2D integer grid as a graph.
// Width and Height define dimensions and never change after construction;
// CellValues[y][x] holds the cell value. Cells are only mutated through Set,
// and callers that simulate on a grid work on a Clone.
// neighborOffsets is precomputed for efficient adjacency lookups.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	neighborOffsets [][2]int
}

var (
	// orthogonal offsets in N, E, S, W order.
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	// orthogonal offsets followed by diagonals NE, SE, SW, NW.
	offsets8 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}, {1, -1}, {1, 1}, {-1, 1}, {-1, -1}}
)

// Offsets returns the neighbor offsets for c in enumeration order.
// The slice is shared; callers must not modify it.
func Offsets(c Connectivity) [][2]int {
	if c == Conn8 {
		return offsets8
	}
	return offsets4
}
