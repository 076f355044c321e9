// Package metrics computes graph-level structural statistics.
//
// [Compute] derives a [Summary] from the full match graph: node and edge
// counts on the directed multigraph, density and clustering on the simple
// undirected projection, degree assortativity, diameter, and weak/strong
// connectivity component counts.
//
// Fields that can individually be undefined (diameter on a disconnected
// graph, assortativity with zero degree variance) are carried as [Stat]
// values with their own error, so one undefined field never suppresses the
// rest of the summary.
package metrics

import (
	"errors"
	"fmt"
	"math"

	"github.com/matchnet/matchnet/pkg/graph"
)

var (
	// ErrDisconnected is reported for the diameter of a projection that is
	// not fully connected: the longest shortest path is infinite.
	ErrDisconnected = errors.New("graph is not connected")

	// ErrUniformDegrees is reported for assortativity when every edge
	// endpoint has the same degree, making the Pearson correlation
	// undefined (zero variance).
	ErrUniformDegrees = errors.New("degree variance is zero")

	// ErrTooSmall is reported for statistics that need at least two nodes.
	ErrTooSmall = errors.New("graph has fewer than two nodes")
)

// Stat holds a structural statistic that can individually fail.
// A failed Stat keeps Value as NaN and carries the reason in Err.
type Stat struct {
	Value float64
	Err   error
}

// Defined reports whether the statistic was successfully computed.
func (s Stat) Defined() bool { return s.Err == nil }

// String formats the statistic for display, using "undefined" for failed
// fields rather than a misleading zero.
func (s Stat) String() string {
	if !s.Defined() {
		return "undefined"
	}
	return fmt.Sprintf("%.4f", s.Value)
}

// Summary is the structural description of the full match graph.
type Summary struct {
	NodeCount int // players, on the directed multigraph
	EdgeCount int // matches, parallel edges counted individually

	Density    float64 // of the simple undirected projection
	Clustering float64 // mean local clustering coefficient

	Assortativity Stat // Pearson degree correlation across edges
	Diameter      Stat // longest shortest path, undefined when disconnected

	WeakComponents   int // ignoring edge direction
	StrongComponents int // mutual reachability
}

// Compute derives the structural summary of g.
// Pure function of the input graph; g is only read.
func Compute(g *graph.Graph) Summary {
	p := graph.Project(g)
	s := Summary{
		NodeCount:        g.NodeCount(),
		EdgeCount:        g.EdgeCount(),
		Density:          density(p),
		Clustering:       clustering(p),
		Assortativity:    assortativity(p),
		Diameter:         diameter(p),
		WeakComponents:   len(p.Components()),
		StrongComponents: strongComponents(g),
	}
	return s
}

// density returns 2E/(N(N-1)) on the simple undirected projection.
func density(p *graph.Projection) float64 {
	n := p.Order()
	if n < 2 {
		return 0
	}
	return 2 * float64(p.Size()) / (float64(n) * float64(n-1))
}

// clustering returns the mean of local clustering coefficients.
// A node with fewer than two neighbors contributes 0.
func clustering(p *graph.Projection) float64 {
	n := p.Order()
	if n == 0 {
		return 0
	}
	var total float64
	for u := 0; u < n; u++ {
		nbrs := p.Neighbors(u)
		k := len(nbrs)
		if k < 2 {
			continue
		}
		links := 0
		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				if p.HasEdge(nbrs[i].Index, nbrs[j].Index) {
					links++
				}
			}
		}
		total += 2 * float64(links) / (float64(k) * float64(k-1))
	}
	return total / float64(n)
}

// assortativity returns the Pearson correlation of degrees across edge
// endpoints. Each undirected edge contributes both of its orderings, so the
// correlation is symmetric.
func assortativity(p *graph.Projection) Stat {
	if p.Size() == 0 {
		return Stat{Value: math.NaN(), Err: ErrTooSmall}
	}

	var sx, sy, sxx, syy, sxy, m float64
	for u := 0; u < p.Order(); u++ {
		du := float64(p.Degree(u))
		for _, nb := range p.Neighbors(u) {
			dv := float64(p.Degree(nb.Index))
			sx += du
			sy += dv
			sxx += du * du
			syy += dv * dv
			sxy += du * dv
			m++
		}
	}

	varX := sxx/m - (sx/m)*(sx/m)
	varY := syy/m - (sy/m)*(sy/m)
	if varX <= 0 || varY <= 0 {
		return Stat{Value: math.NaN(), Err: ErrUniformDegrees}
	}
	cov := sxy/m - (sx/m)*(sy/m)
	return Stat{Value: cov / math.Sqrt(varX*varY)}
}

// diameter returns the maximum eccentricity over the projection, computed
// with one BFS per node. Disconnected projections have no finite diameter.
func diameter(p *graph.Projection) Stat {
	n := p.Order()
	if n < 2 {
		return Stat{Value: math.NaN(), Err: ErrTooSmall}
	}

	maxDist := 0
	dist := make([]int, n)
	for s := 0; s < n; s++ {
		for i := range dist {
			dist[i] = -1
		}
		dist[s] = 0
		reached := 1
		queue := []int{s}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, nb := range p.Neighbors(u) {
				if dist[nb.Index] < 0 {
					dist[nb.Index] = dist[u] + 1
					reached++
					if dist[nb.Index] > maxDist {
						maxDist = dist[nb.Index]
					}
					queue = append(queue, nb.Index)
				}
			}
		}
		if reached != n {
			return Stat{Value: math.NaN(), Err: ErrDisconnected}
		}
	}
	return Stat{Value: float64(maxDist)}
}
