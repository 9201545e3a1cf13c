package caves_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlekit/caves"
)

const sampleSmall = `start-A
start-b
A-c
A-b
b-d
A-end
b-end`

const sampleMedium = `dc-end
HN-start
start-kj
dc-start
dc-HN
LN-dc
HN-end
kj-sj
kj-HN
kj-dc`

const sampleLarge = `fs-end
he-DX
fs-he
start-DX
pj-DX
end-zg
zg-sl
zg-pj
pj-he
RW-he
fs-DX
pj-RW
zg-RW
start-pj
he-WI
zg-he
pj-fs
start-RW`

func mustGraph(t testing.TB, text string) *caves.Graph {
	t.Helper()
	g, err := caves.ParseEdges(text)
	require.NoError(t, err)
	return g
}

func TestCountPaths_Samples(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		once  int
		twice int
	}{
		{"Small", sampleSmall, 10, 36},
		{"Medium", sampleMedium, 19, 103},
		{"Large", sampleLarge, 226, 3509},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGraph(t, tc.text)

			n, err := caves.CountPaths(g)
			require.NoError(t, err)
			assert.Equal(t, tc.once, n, "small caves at most once")

			n, err = caves.CountPaths(g, caves.WithPolicy(caves.OneSmallTwice))
			require.NoError(t, err)
			assert.Equal(t, tc.twice, n, "one small cave twice")
		})
	}
}

func TestCountPaths_OnPath(t *testing.T) {
	var got []string
	n, err := caves.CountPaths(mustGraph(t, sampleSmall), caves.WithOnPath(func(p []string) {
		got = append(got, strings.Join(p, ","))
	}))
	require.NoError(t, err)
	require.Equal(t, 10, n)

	// breadth-first: shorter routes first, neighbors in name order
	assert.Equal(t, []string{
		"start,A,end",
		"start,b,end",
		"start,A,b,end",
		"start,b,A,end",
		"start,A,b,A,end",
		"start,A,c,A,end",
		"start,A,c,A,b,end",
		"start,b,A,c,A,end",
		"start,A,b,A,c,A,end",
		"start,A,c,A,b,A,end",
	}, got)
}

func TestCountPaths_OneSmallTwiceRoutes(t *testing.T) {
	g := mustGraph(t, "start-A\nA-b\nA-end")

	n, err := caves.CountPaths(g)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var got []string
	n, err = caves.CountPaths(g, caves.WithPolicy(caves.OneSmallTwice), caves.WithOnPath(func(p []string) {
		got = append(got, strings.Join(p, ","))
	}))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"start,A,end", "start,A,b,A,end", "start,A,b,A,b,A,end"}, got)
}

func TestCountPaths_StartNeverReentered(t *testing.T) {
	// with start revisits allowed this graph would yield start,a,start,a,end
	g := mustGraph(t, "start-a\na-end")
	n, err := caves.CountPaths(g, caves.WithPolicy(caves.OneSmallTwice))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCountPaths_CustomEndpoints(t *testing.T) {
	g := mustGraph(t, sampleSmall)

	n, err := caves.CountPaths(g, caves.WithStart("d"))
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	n, err = caves.CountPaths(g, caves.WithStart("d"), caves.WithPolicy(caves.OneSmallTwice))
	require.NoError(t, err)
	assert.Equal(t, 52, n)

	var got []string
	n, err = caves.CountPaths(g, caves.WithStart("c"), caves.WithEnd("d"), caves.WithOnPath(func(p []string) {
		got = append(got, strings.Join(p, ","))
	}))
	require.NoError(t, err)
	assert.Equal(t, 9, n)
	assert.Contains(t, got, "c,A,end,b,d", "the default end is an ordinary small cave here")
}

func TestCountPaths_Disconnected(t *testing.T) {
	n, err := caves.CountPaths(mustGraph(t, "start-a\nb-end"))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCountPaths_Errors(t *testing.T) {
	_, err := caves.CountPaths(nil)
	assert.ErrorIs(t, err, caves.ErrGraphNil)

	g := mustGraph(t, sampleSmall)
	cases := []struct {
		name string
		opts []caves.Option
		want error
	}{
		{"EmptyStart", []caves.Option{caves.WithStart("")}, caves.ErrOptionViolation},
		{"EmptyEnd", []caves.Option{caves.WithEnd("")}, caves.ErrOptionViolation},
		{"BadPolicy", []caves.Option{caves.WithPolicy(caves.Policy(7))}, caves.ErrOptionViolation},
		{"SameEndpoints", []caves.Option{caves.WithEnd("start")}, caves.ErrOptionViolation},
		{"MissingStart", []caves.Option{caves.WithStart("zz")}, caves.ErrCaveNotFound},
		{"MissingEnd", []caves.Option{caves.WithEnd("zz")}, caves.ErrCaveNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := caves.CountPaths(g, tc.opts...)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err = caves.CountPaths(caves.NewGraph())
	assert.ErrorIs(t, err, caves.ErrCaveNotFound, "empty graph has no start")
}

func TestCountPaths_Unbounded(t *testing.T) {
	_, err := caves.CountPaths(mustGraph(t, "start-A\nA-B\nB-end"))
	assert.ErrorIs(t, err, caves.ErrUnbounded)

	// a big endpoint next to a big cave cannot loop
	n, err := caves.CountPaths(mustGraph(t, "START-A\nA-end"), caves.WithStart("START"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCountPaths_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := caves.CountPaths(mustGraph(t, sampleLarge), caves.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPolicy_String(t *testing.T) {
	assert.Equal(t, "small-once", caves.SmallOnce.String())
	assert.Equal(t, "one-small-twice", caves.OneSmallTwice.String())
	assert.Equal(t, "Policy(9)", caves.Policy(9).String())
}
