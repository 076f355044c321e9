package centrality

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchnet/matchnet/pkg/errors"
	"github.com/matchnet/matchnet/pkg/graph"
)

func buildGraph(t *testing.T, ids []string, edges []graph.Edge) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, id := range ids {
		require.NoError(t, g.AddNode(graph.Node{ID: id}))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e))
	}
	return g
}

// pathGraph is the three-player scenario: A beat B, B beat C.
func pathGraph(t *testing.T) *graph.Graph {
	t.Helper()
	return buildGraph(t, []string{"A", "B", "C"}, []graph.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 1},
	})
}

func score(t *testing.T, tab *Table, node string, m Metric) float64 {
	t.Helper()
	row, ok := tab.Row(node)
	require.True(t, ok, "missing row for %s", node)
	return row.Score(m)
}

func TestComputeNilGraph(t *testing.T) {
	_, err := Compute(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidArgument))
}

func TestComputePath(t *testing.T) {
	tab, err := Compute(pathGraph(t))
	require.NoError(t, err)
	require.Equal(t, 3, tab.Len())
	assert.False(t, tab.Degraded())

	assert.InDelta(t, 0.5, score(t, tab, "A", Degree), 1e-9)
	assert.InDelta(t, 1.0, score(t, tab, "B", Degree), 1e-9)
	assert.InDelta(t, 0.5, score(t, tab, "C", Degree), 1e-9)

	assert.InDelta(t, 2.0/3.0, score(t, tab, "A", Closeness), 1e-9)
	assert.InDelta(t, 1.0, score(t, tab, "B", Closeness), 1e-9)

	assert.InDelta(t, 0.0, score(t, tab, "A", Betweenness), 1e-9)
	assert.InDelta(t, 1.0, score(t, tab, "B", Betweenness), 1e-9)

	// Dominant eigenvector of the path is (1, sqrt2, 1); max-scaled.
	assert.InDelta(t, 1.0, score(t, tab, "B", Eigenvector), 1e-6)
	assert.InDelta(t, 1.0/math.Sqrt2, score(t, tab, "A", Eigenvector), 1e-6)
	assert.InDelta(t, 1.0/math.Sqrt2, score(t, tab, "C", Eigenvector), 1e-6)
}

func TestComputeRowInvariants(t *testing.T) {
	g := buildGraph(t, []string{"d", "b", "a", "c"}, []graph.Edge{
		{From: "a", To: "b", Weight: 2},
		{From: "b", To: "c", Weight: 1},
		{From: "a", To: "b", Weight: 1}, // parallel
	})
	tab, err := Compute(g)
	require.NoError(t, err)

	// One row per node, sorted order, no drops even for isolated players.
	require.Equal(t, g.NodeCount(), tab.Len())
	rows := tab.Rows()
	assert.Equal(t, "a", rows[0].Node)
	assert.Equal(t, "d", rows[3].Node)

	// Degree scores stay in [0, 1].
	for _, r := range rows {
		assert.GreaterOrEqual(t, r.Degree, 0.0)
		assert.LessOrEqual(t, r.Degree, 1.0)
	}
}

func TestComputeDeterminism(t *testing.T) {
	g := buildGraph(t, []string{"a", "b", "c", "d", "e"}, []graph.Edge{
		{From: "a", To: "b", Weight: 3},
		{From: "b", To: "c", Weight: 1},
		{From: "c", To: "d", Weight: 2},
		{From: "d", To: "a", Weight: 1},
		{From: "e", To: "a", Weight: 5},
	})

	first, err := Compute(g)
	require.NoError(t, err)
	second, err := Compute(g)
	require.NoError(t, err)

	// Bit-identical across runs, including goroutine scheduling variation.
	assert.Equal(t, first.Rows(), second.Rows())
}

func TestComputeNoEdges(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C"}, nil)
	tab, err := Compute(g)
	require.NoError(t, err)

	for _, r := range tab.Rows() {
		assert.Zero(t, r.Degree)
		assert.Zero(t, r.Closeness)
		assert.Zero(t, r.Betweenness)
		assert.Zero(t, r.Eigenvector)
	}
	assert.False(t, tab.Degraded(), "edgeless components are zero-scored, not degraded")
}

func TestBetweennessUsesWeightAsDistance(t *testing.T) {
	// Direct edge A-C exists but costs 3; routing through B costs 2,
	// so B lies on the only shortest A-C path.
	g := buildGraph(t, []string{"A", "B", "C"}, []graph.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 1},
		{From: "A", To: "C", Weight: 3},
	})
	tab, err := Compute(g)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, score(t, tab, "B", Betweenness), 1e-9)
}

func TestClosenessDisconnected(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C"}, []graph.Edge{
		{From: "A", To: "B", Weight: 1},
	})
	tab, err := Compute(g)
	require.NoError(t, err)

	// Wasserman-Faust: (r-1)/sum * (r-1)/(n-1) with r=2, sum=1, n=3.
	assert.InDelta(t, 0.5, score(t, tab, "A", Closeness), 1e-9)
	assert.Zero(t, score(t, tab, "C", Closeness))
}

func TestEigenvectorWeighted(t *testing.T) {
	// Path with weights 4 and 1: dominant eigenvector is (4, sqrt17, 1).
	g := buildGraph(t, []string{"A", "B", "C"}, []graph.Edge{
		{From: "A", To: "B", Weight: 4},
		{From: "B", To: "C", Weight: 1},
	})
	tab, err := Compute(g)
	require.NoError(t, err)

	root := math.Sqrt(17)
	assert.InDelta(t, 1.0, score(t, tab, "B", Eigenvector), 1e-6)
	assert.InDelta(t, 4/root, score(t, tab, "A", Eigenvector), 1e-6)
	assert.InDelta(t, 1/root, score(t, tab, "C", Eigenvector), 1e-6)
}

func TestEigenvectorPerComponent(t *testing.T) {
	// Two components: a pair and a triangle. Each gets its own dominant
	// eigenvector; the merged vector is scaled to a global maximum of 1.
	g := buildGraph(t, []string{"A", "B", "C", "D", "E"}, []graph.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "C", To: "D", Weight: 1},
		{From: "D", To: "E", Weight: 1},
		{From: "E", To: "C", Weight: 1},
	})
	tab, err := Compute(g)
	require.NoError(t, err)
	assert.False(t, tab.Degraded())

	// Pair component: (1,1)/sqrt2 = 0.7071 per node. Triangle component:
	// (1,1,1)/sqrt3 = 0.5774 per node. Global max is the pair.
	assert.InDelta(t, 1.0, score(t, tab, "A", Eigenvector), 1e-6)
	assert.InDelta(t, 1.0, score(t, tab, "B", Eigenvector), 1e-6)
	want := (1 / math.Sqrt(3)) / (1 / math.Sqrt2)
	assert.InDelta(t, want, score(t, tab, "C", Eigenvector), 1e-6)
}

func TestParseMetric(t *testing.T) {
	for _, m := range Metrics() {
		got, err := ParseMetric(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	_, err := ParseMetric("pagerank")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidMetric))
}

func TestTableSerializationRoundTrip(t *testing.T) {
	tab, err := Compute(pathGraph(t))
	require.NoError(t, err)

	data, err := MarshalTable(tab)
	require.NoError(t, err)

	got, err := UnmarshalTable(data)
	require.NoError(t, err)
	assert.Equal(t, tab.Rows(), got.Rows())
	assert.Equal(t, tab.MaxEigenvector(), got.MaxEigenvector())
}

func TestMaxEigenvector(t *testing.T) {
	tab, err := Compute(pathGraph(t))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, tab.MaxEigenvector(), 1e-9)

	empty, err := Compute(graph.New())
	require.NoError(t, err)
	assert.Zero(t, empty.MaxEigenvector())
}
