// Package dijkstra provides Dijkstra's shortest-path algorithm over a weighted
// grid, where the cost of a move is the value of the cell being entered.
//
// Overview:
//
//   - ShortestPath computes the minimum total cost from a source cell to a
//     target cell (top-left to bottom-right by default), moving between
//     4-connected neighbors.
//   - It relies on a min-heap (priority queue) to always expand the next-cheapest cell.
//   - The source cell's own value is never paid: only entered cells cost.
//   - Tile expands a grid factor×factor times with wrapping increments before search.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - WithReturnPath: reconstructs the cell sequence of one cheapest path.
//   - WithTiles: runs the search on the tiled expansion instead of the grid itself.
//
// Performance and complexity:
//
//   - Time:  O(V log V) with V = W×H; each cell has at most 4 edges.
//   - Space: O(V) for the cost table, finalized flags, predecessors and heap.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:      a nil grid was passed.
//   - ErrOutOfBounds:  Source or Target lies outside the grid.
//   - ErrNegativeCost: a cell has a negative value (detected by an O(V) pre-scan).
//   - ErrUnreachable:  Target was never finalized.
//   - ErrBadTiles:     a tiling factor < 1 was supplied.
//
// Thread safety:
//
//   - ShortestPath only reads the grid. Concurrent searches on one grid are safe
//     as long as nobody mutates it.
package dijkstra
