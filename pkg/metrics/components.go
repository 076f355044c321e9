package metrics

import (
	"github.com/matchnet/matchnet/pkg/graph"
)

// strongComponents counts the strongly connected components of the directed
// multigraph using Tarjan's algorithm. Parallel edges do not affect the
// count, but direction does: two players belong to the same strong
// component only when each has a win path over the other.
//
// The traversal is iterative; tournament graphs can be deep enough to
// overflow the goroutine stack with a recursive formulation.
func strongComponents(g *graph.Graph) int {
	ids := g.NodeIDs()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	// Deduplicated successor lists over compact indices.
	succ := make([][]int, len(ids))
	for i, id := range ids {
		seen := make(map[int]bool)
		for _, e := range g.OutEdges(id) {
			j := index[e.To]
			if j != i && !seen[j] {
				seen[j] = true
				succ[i] = append(succ[i], j)
			}
		}
	}

	const unvisited = -1
	n := len(ids)
	num := make([]int, n)     // discovery index
	lowlink := make([]int, n) // smallest index reachable
	onStack := make([]bool, n)
	for i := range num {
		num[i] = unvisited
	}

	var (
		counter int
		count   int
		stack   []int
	)

	type frame struct {
		v    int
		next int // next successor position to explore
	}

	for root := 0; root < n; root++ {
		if num[root] != unvisited {
			continue
		}
		work := []frame{{v: root}}
		for len(work) > 0 {
			f := &work[len(work)-1]
			v := f.v
			if f.next == 0 {
				num[v] = counter
				lowlink[v] = counter
				counter++
				stack = append(stack, v)
				onStack[v] = true
			}
			advanced := false
			for f.next < len(succ[v]) {
				w := succ[v][f.next]
				f.next++
				if num[w] == unvisited {
					work = append(work, frame{v: w})
					advanced = true
					break
				}
				if onStack[w] && num[w] < lowlink[v] {
					lowlink[v] = num[w]
				}
			}
			if advanced {
				continue
			}
			// All successors explored: close the frame.
			work = work[:len(work)-1]
			if len(work) > 0 {
				parent := work[len(work)-1].v
				if lowlink[v] < lowlink[parent] {
					lowlink[parent] = lowlink[v]
				}
			}
			if lowlink[v] == num[v] {
				count++
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					if w == v {
						break
					}
				}
			}
		}
	}
	return count
}
