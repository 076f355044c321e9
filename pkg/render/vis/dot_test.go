package vis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToDOT(t *testing.T) {
	set := RenderSet{
		Nodes: []Node{
			{ID: "alice", Label: "alice", Color: "#e6194b", Size: 36},
			{ID: "bob", Label: "bob", Color: "#3cb44b", Size: 10},
		},
		Edges: []Edge{{From: "alice", To: "bob"}},
	}

	dot := ToDOT(set)
	assert.True(t, strings.HasPrefix(dot, "digraph G {"))
	assert.Contains(t, dot, `"alice" [label="alice", fillcolor="#e6194b", color="#e6194b", width=1.000];`)
	assert.Contains(t, dot, `"alice" -> "bob";`)
}

func TestToDOTEdges(t *testing.T) {
	set := RenderSet{
		Nodes: []Node{{ID: "a", Label: "a", Color: "#000000", Size: 10}},
		Edges: []Edge{{From: "a", To: "a"}},
	}
	dot := ToDOT(set)
	assert.Contains(t, dot, `"a" -> "a";`)
	assert.True(t, strings.HasSuffix(dot, "}\n"))
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="8pt" height="8pt" viewBox="0.00 0.00 100.00 50.00"><g/></svg>`)
	out := normalizeViewBox(in)
	assert.Contains(t, string(out), `viewBox="0 0 100.00 50.00"`)
	assert.Contains(t, string(out), `width="100" height="50"`)
	assert.Contains(t, string(out), "<g/></svg>")
}

func TestNormalizeViewBoxPassthrough(t *testing.T) {
	in := []byte(`<svg><g/></svg>`)
	assert.Equal(t, in, normalizeViewBox(in))
}
