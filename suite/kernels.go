package suite

import (
	"context"
	"strconv"

	"github.com/katalvlaran/puzzlekit/caves"
	"github.com/katalvlaran/puzzlekit/dijkstra"
	"github.com/katalvlaran/puzzlekit/flood"
	"github.com/katalvlaran/puzzlekit/gridgraph"
	"github.com/katalvlaran/puzzlekit/origami"
	"github.com/katalvlaran/puzzlekit/packet"
	"github.com/katalvlaran/puzzlekit/polymer"
)

// Kernels returns one job per kernel package, in a fixed order, each solving
// the kernel's canonical sample.
func Kernels() []Job {
	return []Job{
		{Name: "basins", Solve: solveBasins},
		{Name: "origami", Solve: solveOrigami},
		{Name: "flood", Solve: solveFlood},
		{Name: "polymer", Solve: solvePolymer},
		{Name: "dijkstra", Solve: solveDijkstra},
		{Name: "packet", Solve: solvePacket},
		{Name: "caves", Solve: solveCaves},
	}
}

func itoa[T int | int64 | uint64](v T) string {
	return strconv.FormatInt(int64(v), 10)
}

func solveBasins(ctx context.Context) (Answer, error) {
	if err := ctx.Err(); err != nil {
		return Answer{}, err
	}
	gg, err := gridgraph.ParseDigits(heightMapSample, gridgraph.DefaultGridOptions())
	if err != nil {
		return Answer{}, err
	}
	product, err := gg.LargestBasinsProduct(9, 3)
	if err != nil {
		return Answer{}, err
	}

	return Answer{Part1: itoa(gg.RiskLevel()), Part2: itoa(product)}, nil
}

func solveOrigami(ctx context.Context) (Answer, error) {
	if err := ctx.Err(); err != nil {
		return Answer{}, err
	}
	actions, err := origami.ParseActions(foldSample)
	if err != nil {
		return Answer{}, err
	}
	first, sheet, err := origami.Apply(actions)
	if err != nil {
		return Answer{}, err
	}

	return Answer{Part1: itoa(first), Part2: sheet.Render('#', '.')}, nil
}

func solveFlood(ctx context.Context) (Answer, error) {
	if err := ctx.Err(); err != nil {
		return Answer{}, err
	}
	gg, err := gridgraph.ParseDigits(energySample, gridgraph.DefaultGridOptions())
	if err != nil {
		return Answer{}, err
	}
	e, err := flood.New(gg)
	if err != nil {
		return Answer{}, err
	}
	fired := e.Run(100)

	// a fresh engine counts synchronization from step 1
	if e, err = flood.New(gg); err != nil {
		return Answer{}, err
	}
	synced, err := e.FirstSynchronized(1000)
	if err != nil {
		return Answer{}, err
	}

	return Answer{Part1: itoa(fired), Part2: itoa(synced)}, nil
}

func solvePolymer(ctx context.Context) (Answer, error) {
	if err := ctx.Err(); err != nil {
		return Answer{}, err
	}
	template, rules, err := polymer.Parse(polymerSample)
	if err != nil {
		return Answer{}, err
	}
	short, err := polymer.Spread(template, rules, 10)
	if err != nil {
		return Answer{}, err
	}
	long, err := polymer.Spread(template, rules, 40)
	if err != nil {
		return Answer{}, err
	}

	return Answer{Part1: itoa(short), Part2: itoa(long)}, nil
}

func solveDijkstra(ctx context.Context) (Answer, error) {
	if err := ctx.Err(); err != nil {
		return Answer{}, err
	}
	gg, err := gridgraph.ParseDigits(riskSample, gridgraph.DefaultGridOptions())
	if err != nil {
		return Answer{}, err
	}
	small, err := dijkstra.ShortestPath(gg)
	if err != nil {
		return Answer{}, err
	}
	big, err := dijkstra.ShortestPath(gg, dijkstra.WithTiles(5))
	if err != nil {
		return Answer{}, err
	}

	return Answer{Part1: itoa(small.Cost), Part2: itoa(big.Cost)}, nil
}

func solvePacket(ctx context.Context) (Answer, error) {
	if err := ctx.Err(); err != nil {
		return Answer{}, err
	}
	versions, _, err := packet.Decode(versionSample)
	if err != nil {
		return Answer{}, err
	}
	_, value, err := packet.Decode(valueSample)
	if err != nil {
		return Answer{}, err
	}

	return Answer{Part1: itoa(versions), Part2: itoa(value)}, nil
}

func solveCaves(ctx context.Context) (Answer, error) {
	g, err := caves.ParseEdges(caveSample)
	if err != nil {
		return Answer{}, err
	}
	once, err := caves.CountPaths(g, caves.WithContext(ctx))
	if err != nil {
		return Answer{}, err
	}
	twice, err := caves.CountPaths(g, caves.WithContext(ctx), caves.WithPolicy(caves.OneSmallTwice))
	if err != nil {
		return Answer{}, err
	}

	return Answer{Part1: itoa(once), Part2: itoa(twice)}, nil
}
