// Package gridgraph treats a bounded 2D grid of small integers as a graph,
// providing bounds-checked neighbor enumeration and BFS flood fills.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid (values are usually digits 0..9).
//   - Neighbors enumerates in-bounds neighbors under Conn4 or Conn8 connectivity.
//   - ConnectedComponents groups cells accepted by a predicate into BFS regions.
//   - LowPoints, RiskLevel and Basins analyse a height map: local minima and the
//     regions that drain into them.
//
// Why:
//
//   - Energy-spread simulations (see package flood) need 8-neighbor adjacency.
//   - Weighted path search (see package dijkstra) needs 4-neighbor adjacency.
//   - Height-map analysis needs flood fill bounded by "wall" cells.
//
// Complexity:
//
//   - Neighbors:           O(d), Memory: O(d)        (d = 4 or 8).
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H).
//   - Basins:              O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadDigit: ParseDigits met a byte outside '0'..'9'.
//   - ErrTooFewBasins: fewer basins exist than were requested.
package gridgraph
