// Package vis maps computed graph attributes onto visual encodings.
//
// [Build] combines the reduced view graph, the full graph's community
// labels, and the centrality table into a [RenderSet]: a styled node/edge
// list where node color encodes community (fixed ordered palette, modulo
// indexing) and node size encodes eigenvector influence (linear scale into
// a bounded pixel range).
//
// The RenderSet is the boundary artifact: external sinks consume it without
// knowing anything about graphs or centrality. Two sinks ship with the
// package - a self-contained interactive HTML page ([RenderHTML]) and
// Graphviz DOT/SVG/PNG output ([ToDOT], [RenderSVG], [RenderPNG]). Layout
// itself (physics simulation, coordinate assignment) is fully delegated to
// those sinks.
package vis
