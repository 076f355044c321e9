// Package centrality ranks players by structural importance.
//
// [Compute] produces a [Table] with one row per player in the full match
// graph and four independently normalized scores:
//
//   - Degree: share of other players faced, degree/(N-1).
//   - Closeness: Wasserman-Faust corrected closeness over unweighted
//     shortest paths, so disconnected graphs stay comparable.
//   - Betweenness: Brandes' algorithm with edge weight as distance cost,
//     normalized by 1/((N-1)(N-2)) pair counts.
//   - Eigenvector: dominant eigenvector of the weighted adjacency matrix
//     via bounded power iteration, computed per connected component and
//     rescaled so the global maximum entry is 1.
//
// All metrics operate on the simple undirected projection of the graph
// (see [github.com/matchnet/matchnet/pkg/graph.Project]); the projection's
// sorted node order makes repeated runs bit-identical.
//
// A component whose power iteration fails to converge falls back to its
// degree vector and records a NO_CONVERGENCE warning on the table; the
// degradation is signaled, never silent.
package centrality
