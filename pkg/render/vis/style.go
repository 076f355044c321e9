package vis

import (
	"fmt"
	"slices"

	"github.com/matchnet/matchnet/pkg/centrality"
	"github.com/matchnet/matchnet/pkg/errors"
	"github.com/matchnet/matchnet/pkg/graph"
)

// DefaultPalette is the fixed, ordered categorical palette for community
// colors. Order and size are configuration constants: changing either
// reshuffles every community color, so visual stability across runs depends
// on keeping this list stable.
var DefaultPalette = []string{
	"#e6194b", "#3cb44b", "#ffe119", "#4363d8",
	"#f58231", "#911eb4", "#46f0f0", "#f032e6",
}

// Default node sizing: size = base + influence * range, in pixels.
const (
	DefaultBaseSize  = 10.0
	DefaultSizeRange = 40.0
)

// Style holds the visual encoding configuration.
// The zero value selects the defaults.
type Style struct {
	Palette   []string // ordered categorical palette (DefaultPalette if empty)
	BaseSize  float64  // minimum node size in pixels
	SizeRange float64  // additional size span for the most influential node
}

func (s Style) withDefaults() Style {
	if len(s.Palette) == 0 {
		s.Palette = DefaultPalette
	}
	if s.BaseSize == 0 {
		s.BaseSize = DefaultBaseSize
	}
	if s.SizeRange == 0 {
		s.SizeRange = DefaultSizeRange
	}
	return s
}

// Node is a styled render node, shaped for vis-network consumption.
type Node struct {
	ID    string  `json:"id" bson:"id"`
	Label string  `json:"label" bson:"label"`
	Title string  `json:"title" bson:"title"` // hover text, HTML
	Color string  `json:"color" bson:"color"`
	Size  float64 `json:"size" bson:"size"`
}

// Edge is a directed, unstyled render edge copied from the view graph.
type Edge struct {
	From string `json:"from" bson:"from"`
	To   string `json:"to" bson:"to"`
}

// RenderSet is the external-facing styled node/edge list.
type RenderSet struct {
	Nodes []Node `json:"nodes" bson:"nodes"`
	Edges []Edge `json:"edges" bson:"edges"`
}

// Build produces the styled render set for the view graph.
//
// For every view node the community label is looked up in the full graph
// (default 0 when absent - a deliberate fallback, not an error) and the
// eigenvector score in the centrality table (default 0 when absent). The
// size scale uses the maximum eigenvector over the whole table, not just
// the view, so view nodes keep their proportions relative to the full
// population; a zero maximum is treated as 1 to avoid dividing by zero.
//
// Nodes are emitted in sorted ID order and edges in the view's insertion
// order, so identical inputs always produce an identical render set.
//
// Returns an EMPTY_VIEW error when the view has no nodes; callers decide
// whether that is fatal or renders an empty canvas.
func Build(view, full *graph.Graph, table *centrality.Table, style Style) (RenderSet, error) {
	if view.NodeCount() == 0 {
		return RenderSet{}, errors.New(errors.ErrCodeEmptyView, "view graph has no nodes")
	}
	style = style.withDefaults()

	maxEig := table.MaxEigenvector()
	if maxEig <= 0 {
		maxEig = 1
	}

	ids := view.NodeIDs()
	slices.Sort(ids)

	set := RenderSet{
		Nodes: make([]Node, 0, len(ids)),
		Edges: make([]Edge, 0, view.EdgeCount()),
	}
	for _, id := range ids {
		community := full.Community(id)
		influence := 0.0
		if row, ok := table.Row(id); ok {
			influence = row.Eigenvector
		}
		set.Nodes = append(set.Nodes, Node{
			ID:    id,
			Label: id,
			Title: hoverTitle(id, community, influence),
			Color: style.Palette[paletteIndex(community, len(style.Palette))],
			Size:  style.BaseSize + influence/maxEig*style.SizeRange,
		})
	}
	for _, e := range view.Edges() {
		set.Edges = append(set.Edges, Edge{From: e.From, To: e.To})
	}
	return set, nil
}

// paletteIndex maps a community label onto the palette. Go's remainder
// keeps the sign of the dividend, so negative labels need a second wrap.
func paletteIndex(community, size int) int {
	idx := community % size
	if idx < 0 {
		idx += size
	}
	return idx
}

// hoverTitle formats the HTML hover text shown for a node.
func hoverTitle(id string, community int, influence float64) string {
	return fmt.Sprintf("<b>%s</b><br>Community: %d<br>Influence (Eigenvector): %.4f",
		id, community, influence)
}
