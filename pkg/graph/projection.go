package graph

import (
	"slices"
)

// Neighbor is an adjacent node in a [Projection], addressed by its compact
// index, with the summed weight of all parallel and antiparallel edges that
// were collapsed into the single undirected edge.
type Neighbor struct {
	Index  int
	Weight float64
}

// Projection is the simple undirected projection of a match graph:
// direction is dropped and all parallel edges between a pair are collapsed
// into one undirected edge whose weight is the sum of the collapsed weights.
//
// Nodes are addressed by compact indices in sorted-ID order. The fixed order
// makes every traversal deterministic, which in turn makes repeated metric
// computations over the same graph bit-identical.
//
// A Projection is immutable after construction and safe for concurrent
// reads.
type Projection struct {
	ids       []string
	index     map[string]int
	adj       [][]Neighbor
	edgeCount int
}

// Project builds the simple undirected projection of g.
// Self-loops are dropped: a player cannot meaningfully play themselves, and
// a self-match carries no structural information.
func Project(g *Graph) *Projection {
	ids := g.NodeIDs()
	slices.Sort(ids)

	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	// Collapse parallel and antiparallel edges, summing weights.
	weights := make([]map[int]float64, len(ids))
	for _, e := range g.Edges() {
		u, v := index[e.From], index[e.To]
		if u == v {
			continue
		}
		if u > v {
			u, v = v, u
		}
		if weights[u] == nil {
			weights[u] = make(map[int]float64)
		}
		weights[u][v] += e.Weight
	}

	p := &Projection{
		ids:   ids,
		index: index,
		adj:   make([][]Neighbor, len(ids)),
	}
	for u, row := range weights {
		for v, w := range row {
			p.adj[u] = append(p.adj[u], Neighbor{Index: v, Weight: w})
			p.adj[v] = append(p.adj[v], Neighbor{Index: u, Weight: w})
			p.edgeCount++
		}
	}
	// Map iteration above is unordered; sort each adjacency list so BFS and
	// Dijkstra visit neighbors in a fixed order.
	for u := range p.adj {
		slices.SortFunc(p.adj[u], func(a, b Neighbor) int { return a.Index - b.Index })
	}
	return p
}

// Order returns the number of nodes.
func (p *Projection) Order() int { return len(p.ids) }

// Size returns the number of undirected simple edges.
func (p *Projection) Size() int { return p.edgeCount }

// IDs returns the node IDs in projection (sorted) order.
// The returned slice is a copy.
func (p *Projection) IDs() []string { return slices.Clone(p.ids) }

// ID returns the node ID at the given compact index.
func (p *Projection) ID(i int) string { return p.ids[i] }

// IndexOf returns the compact index of the given node ID and true, or 0 and
// false if the node is not part of the projection.
func (p *Projection) IndexOf(id string) (int, bool) {
	i, ok := p.index[id]
	return i, ok
}

// Neighbors returns the adjacency list of node i, sorted by neighbor index.
// The returned slice must be treated as read-only.
func (p *Projection) Neighbors(i int) []Neighbor { return p.adj[i] }

// Degree returns the number of distinct neighbors of node i.
func (p *Projection) Degree(i int) int { return len(p.adj[i]) }

// HasEdge reports whether an undirected edge exists between nodes i and j.
func (p *Projection) HasEdge(i, j int) bool {
	for _, n := range p.adj[i] {
		if n.Index == j {
			return true
		}
	}
	return false
}

// Components returns the connected components of the projection as slices
// of compact node indices. Components and their members are emitted in
// ascending index order.
func (p *Projection) Components() [][]int {
	seen := make([]bool, len(p.ids))
	var comps [][]int
	for start := range p.ids {
		if seen[start] {
			continue
		}
		var comp []int
		queue := []int{start}
		seen[start] = true
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			comp = append(comp, u)
			for _, n := range p.adj[u] {
				if !seen[n.Index] {
					seen[n.Index] = true
					queue = append(queue, n.Index)
				}
			}
		}
		slices.Sort(comp)
		comps = append(comps, comp)
	}
	return comps
}
