package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/puzzlekit/gridgraph"
)

// BenchmarkBasins measures Basins on a deterministic random 500×500 height map.
// Complexity: O(W×H×d) per basin.
func BenchmarkBasins(b *testing.B) {
	const n = 500
	rng := rand.New(rand.NewSource(42))
	grid := make([][]int, n)
	for y := 0; y < n; y++ {
		row := make([]int, n)
		for x := 0; x < n; x++ {
			row[x] = rng.Intn(10)
		}
		grid[y] = row
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.Basins(9)
	}
}
