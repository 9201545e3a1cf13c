// Package dijkstra_test contains unit tests for the grid Dijkstra implementation.
// These tests validate option handling, the canonical risk-map sample with and
// without tiling, path reconstruction, and degenerate 1×N / N×1 grids.
package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlekit/dijkstra"
	"github.com/katalvlaran/puzzlekit/gridgraph"
)

// riskSample is the canonical 10×10 risk map.
const riskSample = `1163751742
1381373672
2136511328
3694931569
7463417111
1319128137
1359912421
3125421639
1293138521
2311944581`

func mustGrid(t testing.TB, text string) *gridgraph.GridGraph {
	t.Helper()
	gg, err := gridgraph.ParseDigits(text, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	return gg
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestShortestPath_NilGrid(t *testing.T) {
	_, err := dijkstra.ShortestPath(nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilGrid)
}

func TestShortestPath_BadTiles(t *testing.T) {
	_, err := dijkstra.ShortestPath(mustGrid(t, "12"), dijkstra.WithTiles(0))
	assert.ErrorIs(t, err, dijkstra.ErrBadTiles)

	_, err = dijkstra.Tile(mustGrid(t, "12"), -1)
	assert.ErrorIs(t, err, dijkstra.ErrBadTiles)
}

func TestShortestPath_OutOfBounds(t *testing.T) {
	gg := mustGrid(t, "12\n34")
	_, err := dijkstra.ShortestPath(gg, dijkstra.Source(gridgraph.Point{X: -1, Y: 0}))
	assert.ErrorIs(t, err, dijkstra.ErrOutOfBounds)

	_, err = dijkstra.ShortestPath(gg, dijkstra.Target(gridgraph.Point{X: 2, Y: 0}))
	assert.ErrorIs(t, err, dijkstra.ErrOutOfBounds)

	// Target coordinates refer to the tiled board.
	_, err = dijkstra.ShortestPath(gg, dijkstra.WithTiles(2), dijkstra.Target(gridgraph.Point{X: 3, Y: 3}))
	assert.NoError(t, err)
}

func TestShortestPath_NegativeCost(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{1, -2}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	_, err = dijkstra.ShortestPath(gg)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeCost)
}

// ------------------------------------------------------------------------
// 2. Canonical sample and tiling expansion.
// ------------------------------------------------------------------------

func TestShortestPath_Sample(t *testing.T) {
	res, err := dijkstra.ShortestPath(mustGrid(t, riskSample))
	require.NoError(t, err)
	assert.Equal(t, int64(40), res.Cost)
	assert.Nil(t, res.Path, "path is only built on request")
}

func TestShortestPath_SampleTiled(t *testing.T) {
	res, err := dijkstra.ShortestPath(mustGrid(t, riskSample), dijkstra.WithTiles(5))
	require.NoError(t, err)
	assert.Equal(t, int64(315), res.Cost)
}

func TestShortestPath_ReturnPath(t *testing.T) {
	gg := mustGrid(t, riskSample)
	res, err := dijkstra.ShortestPath(gg, dijkstra.WithReturnPath())
	require.NoError(t, err)
	require.NotEmpty(t, res.Path)

	assert.Equal(t, gridgraph.Point{X: 0, Y: 0}, res.Path[0])
	assert.Equal(t, gridgraph.Point{X: 9, Y: 9}, res.Path[len(res.Path)-1])

	// Consecutive cells are orthogonal neighbors and entered values sum to the cost.
	var sum int64
	for i := 1; i < len(res.Path); i++ {
		a, b := res.Path[i-1], res.Path[i]
		dx, dy := b.X-a.X, b.Y-a.Y
		assert.Equal(t, 1, dx*dx+dy*dy, "step %d is not a unit move", i)
		sum += int64(gg.At(b.X, b.Y))
	}
	assert.Equal(t, res.Cost, sum)
}

func TestTile_Values(t *testing.T) {
	base := mustGrid(t, riskSample)
	tiled, err := dijkstra.Tile(base, 5)
	require.NoError(t, err)
	require.Equal(t, 50, tiled.Width)
	require.Equal(t, 50, tiled.Height)

	for y := 0; y < tiled.Height; y++ {
		for x := 0; x < tiled.Width; x++ {
			v := tiled.At(x, y)
			require.True(t, v >= 1 && v <= 9, "cell (%d,%d)=%d out of range", x, y, v)
			tx, ty := x/10, y/10
			want := (base.At(x%10, y%10)-1+tx+ty)%9 + 1
			require.Equal(t, want, v, "cell (%d,%d)", x, y)
		}
	}
	assert.Equal(t, "1163751742", base.String()[:10], "base grid is untouched")
}

func TestTile_RejectsValuesOutsideDigitRange(t *testing.T) {
	for _, text := range []string{"0", "12\n30"} {
		_, err := dijkstra.Tile(mustGrid(t, text), 2)
		assert.ErrorIs(t, err, dijkstra.ErrTileValue, "grid %q", text)

		_, err = dijkstra.ShortestPath(mustGrid(t, text), dijkstra.WithTiles(2))
		assert.ErrorIs(t, err, dijkstra.ErrTileValue, "grid %q", text)
	}

	// factor 1 still validates, and an untiled search accepts zero costs
	_, err := dijkstra.Tile(mustGrid(t, "0"), 1)
	assert.ErrorIs(t, err, dijkstra.ErrTileValue)
	res, err := dijkstra.ShortestPath(mustGrid(t, "00"))
	require.NoError(t, err)
	assert.Zero(t, res.Cost)
}

func TestTile_Wraparound(t *testing.T) {
	tiled, err := dijkstra.Tile(mustGrid(t, "8"), 5)
	require.NoError(t, err)
	assert.Equal(t, "89123\n91234\n12345\n23456\n34567", tiled.String())

	// Every monotone path crosses index sums 1..8 once: 9+1+2+3+4+5+6+7.
	res, err := dijkstra.ShortestPath(mustGrid(t, "8"), dijkstra.WithTiles(5))
	require.NoError(t, err)
	assert.Equal(t, int64(37), res.Cost)
}

// ------------------------------------------------------------------------
// 3. Degenerate grids and custom endpoints.
// ------------------------------------------------------------------------

func TestShortestPath_Degenerate(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int64
	}{
		{"SingleCell", "7", 0},
		{"Row", "1234", 9},
		{"Column", "1\n5\n1", 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := dijkstra.ShortestPath(mustGrid(t, tc.text))
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Cost)
		})
	}
}

func TestShortestPath_CustomEndpoints(t *testing.T) {
	res, err := dijkstra.ShortestPath(mustGrid(t, "1234"),
		dijkstra.Source(gridgraph.Point{X: 2, Y: 0}),
		dijkstra.Target(gridgraph.Point{X: 0, Y: 0}),
		dijkstra.WithReturnPath(),
	)
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Cost)
	assert.Equal(t, []gridgraph.Point{{X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}, res.Path)
}

// TestShortestPath_Detour checks that the search walks around an expensive wall.
func TestShortestPath_Detour(t *testing.T) {
	res, err := dijkstra.ShortestPath(mustGrid(t, `19111
19191
11191`), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(10), res.Cost)
	assert.Len(t, res.Path, 11)
}

// TestShortestPath_Deterministic runs the same search twice.
func TestShortestPath_Deterministic(t *testing.T) {
	gg := mustGrid(t, riskSample)
	a, err := dijkstra.ShortestPath(gg, dijkstra.WithReturnPath())
	require.NoError(t, err)
	b, err := dijkstra.ShortestPath(gg, dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
