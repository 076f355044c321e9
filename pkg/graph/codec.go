package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
)

// =============================================================================
// Graph Serialization API
// =============================================================================

// Document is the canonical serialization format for match graphs.
// Used for loading external graph documents, caching, and API responses.
//
// The format is human-readable and designed for round-trip fidelity:
// read -> write -> re-read produces an identical graph.
type Document struct {
	Nodes []NodeDoc `json:"nodes" bson:"nodes"`
	Edges []EdgeDoc `json:"edges" bson:"edges"`
}

// NodeDoc is the serialized form of a player node.
type NodeDoc struct {
	ID        string `json:"id" bson:"id"`
	Community int    `json:"community,omitempty" bson:"community,omitempty"`
}

// EdgeDoc is the serialized form of a directed match edge.
// Weight defaults to 1 when omitted.
type EdgeDoc struct {
	From   string  `json:"from" bson:"from"`
	To     string  `json:"to" bson:"to"`
	Weight float64 `json:"weight,omitempty" bson:"weight,omitempty"`
}

// MarshalGraph converts a graph to JSON bytes.
// Nodes are sorted by ID for deterministic output; edges keep insertion
// order so parallel edges round-trip unchanged.
func MarshalGraph(g *Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeGraphTo(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteGraphFile writes a graph to a JSON file.
// The file is created with 0644 permissions.
func WriteGraphFile(g *Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeGraphTo(g, f)
}

// WriteGraph writes a graph as JSON to an io.Writer.
// Use MarshalGraph for in-memory serialization or WriteGraphFile for files.
func WriteGraph(g *Graph, w io.Writer) error {
	return writeGraphTo(g, w)
}

// ReadGraphFile reads a JSON file and returns the decoded graph.
// Returns validation errors for malformed documents (missing endpoints,
// negative weights, duplicate node IDs).
func ReadGraphFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readGraphFrom(f)
}

// ReadGraph decodes a JSON graph document from an io.Reader.
// Use ReadGraphFile for files or pass bytes.NewReader for in-memory data.
func ReadGraph(r io.Reader) (*Graph, error) {
	return readGraphFrom(r)
}

// =============================================================================
// Document <-> Graph Conversion
// =============================================================================

// FromGraph converts a graph to its serialization format.
// Nodes are sorted by ID; edges keep insertion order.
func FromGraph(g *Graph) Document {
	nodes := g.Nodes()
	slices.SortFunc(nodes, func(a, b Node) int {
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})

	doc := Document{
		Nodes: make([]NodeDoc, len(nodes)),
		Edges: make([]EdgeDoc, 0, g.EdgeCount()),
	}
	for i, n := range nodes {
		doc.Nodes[i] = NodeDoc{ID: n.ID, Community: n.Community}
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, EdgeDoc{From: e.From, To: e.To, Weight: e.Weight})
	}
	return doc
}

// ToGraph builds a graph from its serialization format.
// Node and edge validation errors from [Graph.AddNode] and [Graph.AddEdge]
// are returned with positional context.
func ToGraph(doc Document) (*Graph, error) {
	g := New()
	for i, n := range doc.Nodes {
		if err := g.AddNode(Node{ID: n.ID, Community: n.Community}); err != nil {
			return nil, fmt.Errorf("node %d (%q): %w", i, n.ID, err)
		}
	}
	for i, e := range doc.Edges {
		if err := g.AddEdge(Edge{From: e.From, To: e.To, Weight: e.Weight}); err != nil {
			return nil, fmt.Errorf("edge %d (%s->%s): %w", i, e.From, e.To, err)
		}
	}
	return g, nil
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeGraphTo(g *Graph, w io.Writer) error {
	out := FromGraph(g)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readGraphFrom(r io.Reader) (*Graph, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ToGraph(doc)
}
