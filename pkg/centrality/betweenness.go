package centrality

import (
	"container/heap"

	"github.com/matchnet/matchnet/pkg/graph"
)

// betweennessScores computes normalized betweenness centrality with
// Brandes' algorithm, using edge weight as distance cost (shortest by
// minimum total weight, not hop count).
//
// Accumulating pair dependencies from every source counts each unordered
// pair twice on an undirected graph, and the standard normalization factor
// 2/((n-1)(n-2)) halves that again, so the two cancel into a single
// division by (n-1)(n-2). Graphs with fewer than three nodes have no
// intermediate pairs and score 0 everywhere.
func betweennessScores(p *graph.Projection) []float64 {
	n := p.Order()
	scores := make([]float64, n)
	if n < 3 {
		return scores
	}

	dist := make([]float64, n)
	sigma := make([]float64, n)
	delta := make([]float64, n)
	visited := make([]bool, n)
	preds := make([][]int, n)

	for s := 0; s < n; s++ {
		order := brandesDijkstra(p, s, dist, sigma, visited, preds)

		for i := range delta {
			delta[i] = 0
		}
		// Back-propagate pair dependencies in order of non-increasing
		// distance from s.
		for i := len(order) - 1; i >= 0; i-- {
			w := order[i]
			for _, v := range preds[w] {
				delta[v] += (sigma[v] / sigma[w]) * (1 + delta[w])
			}
			if w != s {
				scores[w] += delta[w]
			}
		}
	}

	norm := float64(n-1) * float64(n-2)
	for i := range scores {
		scores[i] /= norm
	}
	return scores
}

// brandesDijkstra runs the shortest-path counting phase from source s,
// filling dist, sigma and preds, and returns the settled nodes in
// non-decreasing distance order. The scratch slices are reused across
// sources to avoid per-source allocation.
func brandesDijkstra(p *graph.Projection, s int, dist, sigma []float64, visited []bool, preds [][]int) []int {
	const unreached = -1
	for i := range dist {
		dist[i] = unreached
		sigma[i] = 0
		visited[i] = false
		preds[i] = preds[i][:0]
	}
	dist[s] = 0
	sigma[s] = 1

	pq := &distHeap{{node: s, dist: 0}}
	order := make([]int, 0, len(dist))

	for pq.Len() > 0 {
		item := heap.Pop(pq).(distItem)
		u := item.node
		if visited[u] {
			continue // stale heap entry from lazy decrease-key
		}
		visited[u] = true
		order = append(order, u)

		for _, nb := range p.Neighbors(u) {
			v := nb.Index
			if visited[v] {
				continue
			}
			nd := dist[u] + nb.Weight
			switch {
			case dist[v] == unreached || nd < dist[v]:
				dist[v] = nd
				sigma[v] = sigma[u]
				preds[v] = append(preds[v][:0], u)
				heap.Push(pq, distItem{node: v, dist: nd})
			case nd == dist[v]:
				sigma[v] += sigma[u]
				preds[v] = append(preds[v], u)
			}
		}
	}
	return order
}

// distItem is a pending node in the Dijkstra frontier.
type distItem struct {
	node int
	dist float64
}

// distHeap is a min-heap over tentative distances with node index as a
// deterministic tie-breaker.
type distHeap []distItem

func (h distHeap) Len() int { return len(h) }
func (h distHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}
	return h[i].node < h[j].node
}
func (h distHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *distHeap) Push(x any) { *h = append(*h, x.(distItem)) }

func (h *distHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
