package vis

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
)

// HTMLOptions configures the interactive HTML artifact.
type HTMLOptions struct {
	Title      string // page title (default "Tournament Network")
	Height     string // canvas CSS height (default "750px")
	Background string // canvas background color (default "#222222")
	FontColor  string // label font color (default "white")
	Physics    bool   // enable the force simulation on load
}

func (o HTMLOptions) withDefaults() HTMLOptions {
	if o.Title == "" {
		o.Title = "Tournament Network"
	}
	if o.Height == "" {
		o.Height = "750px"
	}
	if o.Background == "" {
		o.Background = "#222222"
	}
	if o.FontColor == "" {
		o.FontColor = "white"
	}
	return o
}

// RenderHTML produces a self-contained interactive HTML page for the render
// set, backed by the vis-network library loaded from its public CDN. Layout
// physics runs entirely in the browser; the page embeds only the styled
// node/edge data.
func RenderHTML(set RenderSet, opts HTMLOptions) ([]byte, error) {
	opts = opts.withDefaults()

	// Marshal empty slices as [] rather than null so the embedded
	// DataSet payloads stay well-formed.
	if set.Nodes == nil {
		set.Nodes = []Node{}
	}
	if set.Edges == nil {
		set.Edges = []Edge{}
	}

	nodes, err := json.Marshal(set.Nodes)
	if err != nil {
		return nil, fmt.Errorf("encode nodes: %w", err)
	}
	edges, err := json.Marshal(set.Edges)
	if err != nil {
		return nil, fmt.Errorf("encode edges: %w", err)
	}

	// Physics is pre-rendered as a JS literal: contextual escaping of a
	// bool inside a script block pads it with extra whitespace.
	physics := template.JS("false")
	if opts.Physics {
		physics = template.JS("true")
	}

	var buf bytes.Buffer
	err = htmlTemplate.Execute(&buf, htmlData{
		Title:      opts.Title,
		Height:     opts.Height,
		Background: opts.Background,
		FontColor:  opts.FontColor,
		Physics:    physics,
		Nodes:      template.JS(nodes),
		Edges:      template.JS(edges),
	})
	if err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	return buf.Bytes(), nil
}

type htmlData struct {
	Title      string
	Height     string
	Background string
	FontColor  string
	Physics    template.JS
	Nodes      template.JS
	Edges      template.JS
}

var htmlTemplate = template.Must(template.New("network").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="https://unpkg.com/vis-network/standalone/umd/vis-network.min.js"></script>
<style>
  body { margin: 0; background: {{.Background}}; }
  #network { width: 100%; height: {{.Height}}; }
</style>
</head>
<body>
<div id="network"></div>
<script>
  const nodes = new vis.DataSet({{.Nodes}});
  const edges = new vis.DataSet({{.Edges}});
  const container = document.getElementById("network");
  const options = {
    physics: { enabled: {{.Physics}} },
    edges: { arrows: { to: { enabled: true, scaleFactor: 0.5 } }, color: { opacity: 0.6 } },
    nodes: { shape: "dot", font: { color: "{{.FontColor}}" } },
    interaction: { hover: true }
  };
  new vis.Network(container, { nodes: nodes, edges: edges }, options);
</script>
</body>
</html>
`))
