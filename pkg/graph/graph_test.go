package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNode(t *testing.T) {
	g := New()

	require.NoError(t, g.AddNode(Node{ID: "alice", Community: 3}))
	require.NoError(t, g.AddNode(Node{ID: "bob"}))

	assert.Equal(t, 2, g.NodeCount())
	assert.True(t, g.HasNode("alice"))
	assert.Equal(t, 3, g.Community("alice"))
	assert.Equal(t, 0, g.Community("bob"))
	assert.Equal(t, 0, g.Community("nobody"))

	assert.ErrorIs(t, g.AddNode(Node{ID: ""}), ErrInvalidNodeID)
	assert.ErrorIs(t, g.AddNode(Node{ID: "alice"}), ErrDuplicateNodeID)
}

func TestAddEdge(t *testing.T) {
	g := New()
	require.NoError(t, g.AddNode(Node{ID: "alice"}))
	require.NoError(t, g.AddNode(Node{ID: "bob"}))

	assert.ErrorIs(t, g.AddEdge(Edge{From: "ghost", To: "bob"}), ErrUnknownSourceNode)
	assert.ErrorIs(t, g.AddEdge(Edge{From: "alice", To: "ghost"}), ErrUnknownTargetNode)
	assert.ErrorIs(t, g.AddEdge(Edge{From: "alice", To: "bob", Weight: -2}), ErrNegativeWeight)

	require.NoError(t, g.AddEdge(Edge{From: "alice", To: "bob"}))
	require.NoError(t, g.AddEdge(Edge{From: "alice", To: "bob", Weight: 4}))

	// Parallel edges are kept individually.
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 2, g.OutDegree("alice"))
	assert.Equal(t, 2, g.InDegree("bob"))
	assert.Equal(t, 0, g.InDegree("alice"))

	out := g.OutEdges("alice")
	require.Len(t, out, 2)
	assert.Equal(t, 1.0, out[0].Weight, "zero weight should normalize to 1")
	assert.Equal(t, 4.0, out[1].Weight)
}

func TestNodesInsertionOrder(t *testing.T) {
	g := New()
	for _, id := range []string{"zoe", "alice", "mallory"} {
		require.NoError(t, g.AddNode(Node{ID: id}))
	}
	assert.Equal(t, []string{"zoe", "alice", "mallory"}, g.NodeIDs())
}

func TestContainsAllNodesOf(t *testing.T) {
	full := New()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, full.AddNode(Node{ID: id}))
	}

	view := New()
	require.NoError(t, view.AddNode(Node{ID: "b"}))
	assert.True(t, full.ContainsAllNodesOf(view))

	require.NoError(t, view.AddNode(Node{ID: "stranger"}))
	assert.False(t, full.ContainsAllNodesOf(view))
}
