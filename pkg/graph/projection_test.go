package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildGraph constructs a graph from node IDs and directed weighted edges.
func buildGraph(t *testing.T, ids []string, edges []Edge) *Graph {
	t.Helper()
	g := New()
	for _, id := range ids {
		require.NoError(t, g.AddNode(Node{ID: id}))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e))
	}
	return g
}

func TestProjectCollapsesParallelAndAntiparallelEdges(t *testing.T) {
	g := buildGraph(t, []string{"a", "b"}, []Edge{
		{From: "a", To: "b", Weight: 2},
		{From: "a", To: "b", Weight: 3},
		{From: "b", To: "a", Weight: 5},
	})
	p := Project(g)

	assert.Equal(t, 2, p.Order())
	assert.Equal(t, 1, p.Size(), "all three edges collapse into one undirected edge")

	i, ok := p.IndexOf("a")
	require.True(t, ok)
	nbrs := p.Neighbors(i)
	require.Len(t, nbrs, 1)
	assert.Equal(t, 10.0, nbrs[0].Weight, "collapsed edge sums all weights")
}

func TestProjectSortedOrder(t *testing.T) {
	g := buildGraph(t, []string{"zoe", "alice", "bob"}, nil)
	p := Project(g)
	assert.Equal(t, []string{"alice", "bob", "zoe"}, p.IDs())

	i, ok := p.IndexOf("bob")
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, "bob", p.ID(1))

	_, ok = p.IndexOf("stranger")
	assert.False(t, ok)
}

func TestProjectDropsSelfLoops(t *testing.T) {
	g := buildGraph(t, []string{"a", "b"}, []Edge{
		{From: "a", To: "a", Weight: 1},
		{From: "a", To: "b", Weight: 1},
	})
	p := Project(g)
	assert.Equal(t, 1, p.Size())
	i, _ := p.IndexOf("a")
	assert.Equal(t, 1, p.Degree(i))
}

func TestProjectionDegreeSum(t *testing.T) {
	// Sum of degrees in the simple projection equals twice its edge count.
	g := buildGraph(t, []string{"a", "b", "c", "d"}, []Edge{
		{From: "a", To: "b", Weight: 1},
		{From: "b", To: "c", Weight: 1},
		{From: "c", To: "a", Weight: 1},
		{From: "a", To: "b", Weight: 2}, // parallel, collapses
		{From: "d", To: "a", Weight: 1},
	})
	p := Project(g)

	degSum := 0
	for i := 0; i < p.Order(); i++ {
		degSum += p.Degree(i)
	}
	assert.Equal(t, 2*p.Size(), degSum)
}

func TestComponents(t *testing.T) {
	g := buildGraph(t, []string{"a", "b", "c", "d", "e"}, []Edge{
		{From: "a", To: "b", Weight: 1},
		{From: "c", To: "d", Weight: 1},
	})
	p := Project(g)

	comps := p.Components()
	require.Len(t, comps, 3)
	assert.Equal(t, [][]int{{0, 1}, {2, 3}, {4}}, comps)
}

func TestHasEdge(t *testing.T) {
	g := buildGraph(t, []string{"a", "b", "c"}, []Edge{
		{From: "a", To: "b", Weight: 1},
	})
	p := Project(g)
	a, _ := p.IndexOf("a")
	b, _ := p.IndexOf("b")
	c, _ := p.IndexOf("c")

	assert.True(t, p.HasEdge(a, b))
	assert.True(t, p.HasEdge(b, a))
	assert.False(t, p.HasEdge(a, c))
}
