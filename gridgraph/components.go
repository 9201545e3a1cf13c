package gridgraph

import (
	"fmt"
	"sort"
)

// ConnectedComponents finds all contiguous regions of cells whose value is
// accepted by pass, according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in BFS visit order. Components are ordered by their first
// cell in row-major order, so the result is deterministic.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents(pass func(v int) bool) [][]int {
	seen := make([]bool, gg.Len())
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !pass(gg.CellValues[y][x]) || seen[gg.Index(x, y)] {
				continue
			}
			comps = append(comps, gg.flood(x, y, pass, seen))
		}
	}

	return comps
}

// flood collects the region containing (x,y) by BFS, marking cells in seen.
func (gg *GridGraph) flood(x, y int, pass func(v int) bool, seen []bool) []int {
	offsets := gg.NeighborOffsets()
	i0 := gg.Index(x, y)
	queue := []int{i0}
	seen[i0] = true

	for qi := 0; qi < len(queue); qi++ {
		ux, uy := gg.Coordinate(queue[qi])
		for _, d := range offsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) || !pass(gg.CellValues[vy][vx]) {
				continue
			}
			vi := gg.Index(vx, vy)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return queue
}

// LowPoints returns every cell strictly lower than all of its neighbors,
// in row-major order.
// Complexity: O(W·H·d).
func (gg *GridGraph) LowPoints() []Point {
	var low []Point
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.isLow(x, y) {
				low = append(low, Point{X: x, Y: y})
			}
		}
	}

	return low
}

func (gg *GridGraph) isLow(x, y int) bool {
	v := gg.CellValues[y][x]
	for _, d := range gg.NeighborOffsets() {
		nx, ny := x+d[0], y+d[1]
		if gg.InBounds(nx, ny) && gg.CellValues[ny][nx] <= v {
			return false
		}
	}

	return true
}

// RiskLevel sums value+1 over all low points.
func (gg *GridGraph) RiskLevel() int {
	total := 0
	for _, p := range gg.LowPoints() {
		total += gg.CellValues[p.Y][p.X] + 1
	}

	return total
}

// Basins returns the size of the basin around each low point, largest first.
// A basin is the BFS region reachable from its low point through cells whose
// value differs from wall. A low point sitting on a wall value has size 0.
// Complexity: O(W·H·d) per low point in the worst case.
func (gg *GridGraph) Basins(wall int) []int {
	pass := func(v int) bool { return v != wall }
	low := gg.LowPoints()
	sizes := make([]int, 0, len(low))
	for _, p := range low {
		if !pass(gg.CellValues[p.Y][p.X]) {
			sizes = append(sizes, 0)
			continue
		}
		// fresh visited set per basin: two low points may share a region
		seen := make([]bool, gg.Len())
		sizes = append(sizes, len(gg.flood(p.X, p.Y, pass, seen)))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	return sizes
}

// LargestBasinsProduct multiplies the sizes of the k largest basins.
// Returns ErrTooFewBasins if fewer than k basins exist.
func (gg *GridGraph) LargestBasinsProduct(wall, k int) (int, error) {
	sizes := gg.Basins(wall)
	if k < 0 || len(sizes) < k {
		return 0, fmt.Errorf("%w: have %d, want %d", ErrTooFewBasins, len(sizes), k)
	}
	product := 1
	for _, s := range sizes[:k] {
		product *= s
	}

	return product, nil
}
