package centrality

import (
	"github.com/matchnet/matchnet/pkg/graph"
)

// closenessScores returns Wasserman-Faust corrected closeness centrality
// over unweighted (hop count) shortest paths:
//
//	c(u) = (r-1)/sum(d) * (r-1)/(n-1)
//
// where r is the number of nodes reachable from u (including u) and sum(d)
// the total distance to them. Unreachable nodes do not contribute, and the
// (r-1)/(n-1) factor scales the score by the reachable fraction so that
// nodes in small components cannot dominate the ranking.
func closenessScores(p *graph.Projection) []float64 {
	n := p.Order()
	scores := make([]float64, n)
	if n < 2 {
		return scores
	}

	dist := make([]int, n)
	for s := 0; s < n; s++ {
		for i := range dist {
			dist[i] = -1
		}
		dist[s] = 0
		sum, reached := 0, 1
		queue := []int{s}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, nb := range p.Neighbors(u) {
				if dist[nb.Index] < 0 {
					dist[nb.Index] = dist[u] + 1
					sum += dist[nb.Index]
					reached++
					queue = append(queue, nb.Index)
				}
			}
		}
		if reached < 2 || sum == 0 {
			continue
		}
		r := float64(reached - 1)
		scores[s] = (r / float64(sum)) * (r / float64(n-1))
	}
	return scores
}
