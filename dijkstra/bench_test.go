package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/puzzlekit/dijkstra"
	"github.com/katalvlaran/puzzlekit/gridgraph"
)

// BenchmarkShortestPath measures a 100×100 random grid tiled 5×5 (250k cells).
func BenchmarkShortestPath(b *testing.B) {
	const n = 100
	rng := rand.New(rand.NewSource(7))
	grid := make([][]int, n)
	for y := range grid {
		grid[y] = make([]int, n)
		for x := range grid[y] {
			grid[y][x] = 1 + rng.Intn(9)
		}
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.ShortestPath(gg, dijkstra.WithTiles(5)); err != nil {
			b.Fatal(err)
		}
	}
}
