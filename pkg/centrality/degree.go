package centrality

import (
	"github.com/matchnet/matchnet/pkg/graph"
)

// degreeScores returns degree/(N-1) for every node of the projection.
// With fewer than two nodes the fraction is undefined and every score is 0.
func degreeScores(p *graph.Projection) []float64 {
	n := p.Order()
	scores := make([]float64, n)
	if n < 2 {
		return scores
	}
	for i := 0; i < n; i++ {
		scores[i] = float64(p.Degree(i)) / float64(n-1)
	}
	return scores
}
