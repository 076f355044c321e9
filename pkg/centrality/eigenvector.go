package centrality

import (
	"math"

	"github.com/matchnet/matchnet/pkg/errors"
	"github.com/matchnet/matchnet/pkg/graph"
)

const (
	// maxPowerIterations bounds the eigenvector solver; pathological inputs
	// fail explicitly instead of looping forever.
	maxPowerIterations = 100

	// powerTolerance is the per-node mean absolute change below which the
	// iteration is considered converged.
	powerTolerance = 1e-10
)

// eigenvectorScores computes the dominant eigenvector of the weighted
// adjacency matrix by power iteration.
//
// A disconnected graph has no unique dominant eigenvector, so the solver
// runs per connected component with a fixed uniform start vector and merges
// the component vectors, rescaling the result so the global maximum entry
// is 1. Components without internal edges (isolated players) score 0. This
// per-component policy is deterministic: component membership, iteration
// order and the start vector are all derived from the projection's sorted
// node order.
//
// A component that fails to converge within the iteration bound falls back
// to its normalized degree vector and contributes a NO_CONVERGENCE warning;
// the caller decides how loudly to surface the degradation.
func eigenvectorScores(p *graph.Projection) ([]float64, []error) {
	n := p.Order()
	scores := make([]float64, n)
	var warnings []error

	for _, comp := range p.Components() {
		if !hasInternalEdges(p, comp) {
			continue
		}
		vec, ok := powerIterate(p, comp)
		if !ok {
			warnings = append(warnings, errors.New(errors.ErrCodeNoConvergence,
				"eigenvector power iteration did not converge for the component containing %q; using degree fallback", p.ID(comp[0])))
			vec = degreeFallback(p, comp)
		}
		for i, u := range comp {
			scores[u] = vec[i]
		}
	}

	// Rescale so the global maximum entry is 1, making scores comparable
	// across components. An all-zero vector (no edges at all) stays zero.
	max := 0.0
	for _, v := range scores {
		if v > max {
			max = v
		}
	}
	if max > 0 {
		for i := range scores {
			scores[i] /= max
		}
	}
	return scores, warnings
}

// powerIterate approximates the dominant eigenvector of the weighted
// adjacency restricted to comp. Returns the component vector (indexed like
// comp) and whether the iteration converged.
func powerIterate(p *graph.Projection, comp []int) ([]float64, bool) {
	m := len(comp)
	pos := make(map[int]int, m)
	for i, u := range comp {
		pos[u] = i
	}

	x := make([]float64, m)
	next := make([]float64, m)
	start := 1 / math.Sqrt(float64(m))
	for i := range x {
		x[i] = start
	}

	for iter := 0; iter < maxPowerIterations; iter++ {
		// Iterate with A+I rather than A: the shift keeps the eigenvectors
		// but makes the dominant eigenvalue strictly largest in magnitude,
		// so bipartite components (where +λ and -λ tie) cannot oscillate.
		copy(next, x)
		for i, u := range comp {
			for _, nb := range p.Neighbors(u) {
				next[pos[nb.Index]] += nb.Weight * x[i]
			}
		}

		var norm float64
		for _, v := range next {
			norm += v * v
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			return nil, false
		}

		var change float64
		for i := range next {
			next[i] /= norm
			change += math.Abs(next[i] - x[i])
		}
		x, next = next, x

		if change < float64(m)*powerTolerance {
			return x, true
		}
	}
	return nil, false
}

// hasInternalEdges reports whether the component has at least one edge.
// Single nodes and edgeless components have no influence structure.
func hasInternalEdges(p *graph.Projection, comp []int) bool {
	for _, u := range comp {
		if p.Degree(u) > 0 {
			return true
		}
	}
	return false
}

// degreeFallback returns the component's weighted degree vector, L2
// normalized, as a deterministic stand-in for a non-converging eigenvector.
func degreeFallback(p *graph.Projection, comp []int) []float64 {
	vec := make([]float64, len(comp))
	var norm float64
	for i, u := range comp {
		for _, nb := range p.Neighbors(u) {
			vec[i] += nb.Weight
		}
		norm += vec[i] * vec[i]
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}
