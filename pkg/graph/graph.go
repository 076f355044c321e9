package graph

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is
	// empty. All players must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID already exists in the graph. Node IDs must be unique.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the From node
	// does not exist in the graph.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the To node
	// does not exist in the graph.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrNegativeWeight is returned by [Graph.AddEdge] for edges with a
	// negative weight. Match counts and scores are non-negative.
	ErrNegativeWeight = errors.New("edge weight must not be negative")
)

// Node represents a player in the tournament graph.
//
// Community is an externally precomputed partition label attached to the
// node as an immutable input attribute; it is never recomputed here. Nodes
// absent from the external community assignment carry the default 0.
type Node struct {
	ID        string // Unique player identifier (also used as display label)
	Community int    // Community partition label (0 if unassigned)
}

// Edge represents a directed match result: From beat To.
// The data source asserts the direction; it is never derived here.
// Weight carries the match count or score and defaults to 1.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Graph is a directed weighted multigraph of match results.
//
// Node iteration follows insertion order and edge iteration follows
// insertion order, so a graph built from the same document always walks its
// elements identically. The zero value is not usable - use New.
//
// Graph is not safe for concurrent mutation. The analysis pipeline builds a
// graph once at load time and treats it as read-only afterwards, which makes
// concurrent reads safe without locking.
type Graph struct {
	nodes    map[string]*Node
	order    []string         // node IDs in insertion order
	edges    []Edge           // parallel edges allowed, insertion order
	outgoing map[string][]int // node ID -> indices into edges
	incoming map[string][]int // node ID -> indices into edges
}

// New creates an empty match graph.
func New() *Graph {
	return &Graph{
		nodes:    make(map[string]*Node),
		outgoing: make(map[string][]int),
		incoming: make(map[string][]int),
	}
}

// AddNode adds a player to the graph.
// Returns ErrInvalidNodeID if the ID is empty, or ErrDuplicateNodeID if a
// node with the same ID already exists.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	node := n
	g.nodes[node.ID] = &node
	g.order = append(g.order, node.ID)
	return nil
}

// AddEdge adds a directed match edge between two existing players.
// A zero weight is normalized to 1 (a single match). Parallel edges between
// the same pair are allowed; each call appends a new edge.
//
// Returns ErrUnknownSourceNode or ErrUnknownTargetNode when an endpoint is
// missing, or ErrNegativeWeight for negative weights.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := g.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	if e.Weight < 0 {
		return ErrNegativeWeight
	}
	if e.Weight == 0 {
		e.Weight = 1
	}
	idx := len(g.edges)
	g.edges = append(g.edges, e)
	g.outgoing[e.From] = append(g.outgoing[e.From], idx)
	g.incoming[e.To] = append(g.incoming[e.To], idx)
	return nil
}

// Node returns the node with the given ID and true, or a zero node and
// false if not found.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// HasNode reports whether a player with the given ID exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Community returns the community label of the given player.
// Unknown players report the default community 0.
func (g *Graph) Community(id string) int {
	if n, ok := g.nodes[id]; ok {
		return n.Community
	}
	return 0
}

// NodeIDs returns all player IDs in insertion order.
// The returned slice is a copy.
func (g *Graph) NodeIDs() []string {
	return slices.Clone(g.order)
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []Node {
	nodes := make([]Node, 0, len(g.order))
	for _, id := range g.order {
		nodes = append(nodes, *g.nodes[id])
	}
	return nodes
}

// Edges returns a copy of all edges in insertion order, parallel edges
// included.
func (g *Graph) Edges() []Edge {
	return slices.Clone(g.edges)
}

// NodeCount returns the number of players in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of match edges, counting parallel edges
// individually.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// OutDegree returns the number of outgoing edges (wins), counting parallel
// edges individually. Returns 0 if the player doesn't exist.
func (g *Graph) OutDegree(id string) int { return len(g.outgoing[id]) }

// InDegree returns the number of incoming edges (losses), counting parallel
// edges individually. Returns 0 if the player doesn't exist.
func (g *Graph) InDegree(id string) int { return len(g.incoming[id]) }

// OutEdges returns the outgoing edges of the given player in insertion
// order. Returns nil if the player has none or doesn't exist.
func (g *Graph) OutEdges(id string) []Edge {
	return g.edgesAt(g.outgoing[id])
}

// InEdges returns the incoming edges of the given player in insertion
// order. Returns nil if the player has none or doesn't exist.
func (g *Graph) InEdges(id string) []Edge {
	return g.edgesAt(g.incoming[id])
}

func (g *Graph) edgesAt(indices []int) []Edge {
	if len(indices) == 0 {
		return nil
	}
	out := make([]Edge, len(indices))
	for i, idx := range indices {
		out[i] = g.edges[idx]
	}
	return out
}

// ContainsAllNodesOf reports whether every node of sub also exists in g.
// The view graph must be a node subset of the full graph; the loader uses
// this to reject mismatched graph pairs.
func (g *Graph) ContainsAllNodesOf(sub *Graph) bool {
	for _, id := range sub.order {
		if _, ok := g.nodes[id]; !ok {
			return false
		}
	}
	return true
}
