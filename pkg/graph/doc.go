// Package graph provides the in-memory match graph and its projections.
//
// The central type is [Graph]: a directed, weighted multigraph where nodes
// are players and each edge records a match result pointing from winner to
// loser. Parallel edges between the same pair of players are allowed (one
// per match, or one carrying an aggregated weight - the data source decides).
//
// Two graph values participate in an analysis run: the full graph, which all
// numeric computation reads, and a smaller pre-selected view graph used only
// for rendering. They are joined by shared node identifiers, never by shared
// mutable state. Both are immutable after loading.
//
// [Projection] collapses direction and parallel edges into a simple
// undirected weighted graph with a deterministic (sorted) node order. All
// structural metrics and centrality computations operate on it, so two runs
// over the same input traverse nodes in the same order and produce
// bit-identical results.
//
// Serialization is a JSON node/edge document handled by [ReadGraphFile] and
// [WriteGraphFile]; the wire format itself is an external contract.
package graph
