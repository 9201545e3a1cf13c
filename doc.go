// Package puzzlekit is a set of small algorithmic kernels for grid, graph and
// bit-stream puzzles, each a pure function over in-memory input.
//
// What is inside?
//
//	gridgraph/   bounded 2D grid, 4/8-connectivity, flood-fill regions, basins
//	flood/       cellular energy propagation with once-per-step firing
//	dijkstra/    min-heap shortest path over cell costs, with board tiling
//	packet/      recursive bit-stream packet parser and expression evaluator
//	polymer/     memoized pairwise-insertion symbol counter
//	origami/     point sheet folding and rendering
//	caves/       named cave graph and breadth-first route counting
//	suite/       concurrent runner that solves every kernel's sample
//
// Kernels never log and never share state, except polymer's mutex-guarded
// memo table and the lock inside caves.Graph. Errors are package-level sentinels wrapped with context, so
// callers match them with errors.Is.
//
// Quick start:
//
//	gg, _ := gridgraph.ParseDigits("116\n138\n213", gridgraph.DefaultGridOptions())
//	res, _ := dijkstra.ShortestPath(gg, dijkstra.WithReturnPath())
//	fmt.Println(res.Cost, res.Path)
package puzzlekit
