package centrality

import (
	"sync"

	"github.com/matchnet/matchnet/pkg/errors"
	"github.com/matchnet/matchnet/pkg/graph"
)

// Compute derives the centrality table for the full match graph.
//
// The four metrics are independent and each reads only the immutable
// projection, so they run concurrently and write to disjoint score slices.
// The merged table is deterministic regardless of scheduling: rows follow
// the projection's sorted node order and every per-metric computation is
// itself deterministic.
//
// Eigenvector convergence failures do not fail the call; they degrade the
// affected component to its degree vector and are reported through
// [Table.Warnings].
func Compute(g *graph.Graph) (*Table, error) {
	if g == nil {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "graph must not be nil")
	}
	p := graph.Project(g)
	n := p.Order()

	var (
		deg, clo, bet, eig []float64
		warnings           []error
		wg                 sync.WaitGroup
	)
	wg.Add(4)
	go func() { defer wg.Done(); deg = degreeScores(p) }()
	go func() { defer wg.Done(); clo = closenessScores(p) }()
	go func() { defer wg.Done(); bet = betweennessScores(p) }()
	go func() { defer wg.Done(); eig, warnings = eigenvectorScores(p) }()
	wg.Wait()

	rows := make([]Row, n)
	for i := 0; i < n; i++ {
		rows[i] = Row{
			Node:        p.ID(i),
			Degree:      deg[i],
			Closeness:   clo[i],
			Betweenness: bet[i],
			Eigenvector: eig[i],
		}
	}
	return newTable(rows, warnings), nil
}
