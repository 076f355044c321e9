package vis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHTML(t *testing.T) {
	set := RenderSet{
		Nodes: []Node{{ID: "alice", Label: "alice", Title: "<b>alice</b>", Color: "#e6194b", Size: 50}},
		Edges: []Edge{{From: "alice", To: "bob"}},
	}

	out, err := RenderHTML(set, HTMLOptions{Physics: true})
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "<title>Tournament Network</title>")
	assert.Contains(t, html, "vis-network.min.js")
	assert.Contains(t, html, `"id":"alice"`)
	assert.Contains(t, html, `"from":"alice"`)
	assert.Contains(t, html, "background: #222222")
	assert.Contains(t, html, "physics: { enabled: true }")
}

func TestRenderHTMLPhysicsOff(t *testing.T) {
	out, err := RenderHTML(RenderSet{}, HTMLOptions{})
	require.NoError(t, err)
	assert.Contains(t, string(out), "physics: { enabled: false }")
}

func TestRenderHTMLEmptySetMarshalsEmptyArrays(t *testing.T) {
	out, err := RenderHTML(RenderSet{}, HTMLOptions{})
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "new vis.DataSet([])")
	assert.NotContains(t, html, "null")
}

func TestRenderHTMLCustomOptions(t *testing.T) {
	out, err := RenderHTML(RenderSet{}, HTMLOptions{
		Title:      "Finals Bracket",
		Height:     "500px",
		Background: "#000000",
	})
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "<title>Finals Bracket</title>")
	assert.Contains(t, html, "height: 500px")
	assert.Contains(t, html, "background: #000000")
}
