// Package pkg provides the core libraries for Matchnet tournament analytics.
//
// # Overview
//
// Matchnet computes influence rankings over tournament match networks:
// players are nodes, head-to-head results are weighted directed edges.
// The pkg directory is organized into four main areas:
//
//  1. [graph] - The network model and its JSON serialization
//  2. [metrics], [centrality], [rank] - Structural analysis and rankings
//  3. [render/vis] - Visual encoding and artifact rendering
//  4. [pipeline], [cache], [server] - Orchestration and infrastructure
//
// # Architecture
//
// The typical data flow through Matchnet:
//
//	Tournament documents (full + optional view)
//	         ↓
//	    [graph] package (load, validate, project)
//	         ↓
//	    [metrics] + [centrality] packages (summary stats, four centralities)
//	         ↓
//	    [rank] / [render/vis] packages (top-K tables, styled network)
//	         ↓
//	    HTML/SVG/PNG/JSON output
//
// # Quick Start
//
// Run the complete pipeline from a dataset on disk:
//
//	import (
//	    "context"
//	    "github.com/matchnet/matchnet/pkg/cache"
//	    "github.com/matchnet/matchnet/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), cache.NewDefaultKeyer(), nil)
//	defer runner.Close()
//
//	result, err := runner.Execute(context.Background(), pipeline.Options{
//	    FullPath: "tournament.json",
//	    Formats:  []string{pipeline.FormatHTML},
//	})
//
// Or compute rankings directly:
//
//	g, _ := graph.ReadGraphFile("tournament.json")
//	table, _ := centrality.Compute(g)
//	top, _ := rank.TopK(table, centrality.Eigenvector, 10)
//
// # Main Packages
//
// ## Domain Logic
//
// [graph] - Directed weighted multigraph of players and match results, with
// deterministic JSON serialization and view projection (a view must be a
// node subset of the full network).
//
// [metrics] - Structural summary: density, reciprocity, assortativity,
// clustering, diameter. Metrics that are undefined on a given network carry
// their own error instead of failing the whole summary.
//
// [centrality] - Degree, betweenness (Brandes), closeness, and eigenvector
// centrality. Eigenvector falls back to degree when power iteration fails to
// converge, marking the table as degraded.
//
// [rank] - Top-K selection over a centrality table with stable tie ordering.
//
// ## Visualization
//
// [render/vis] - Maps centrality and community data to visual attributes
// (size, color, hover text) and renders interactive HTML, Graphviz SVG/PNG,
// and JSON artifacts.
//
// ## Infrastructure
//
// [pipeline] - Complete analysis pipeline (load → metrics → centrality →
// render) used by the CLI, the TUI, and the HTTP server. Ensures consistent
// behavior across all entry points.
//
// [cache] - Content-addressed caching of centrality tables and rendered
// artifacts. FileCache for the CLI, RedisCache for the server, NullCache for
// tests and --no-cache runs.
//
// [server] - Read-only HTTP API (chi) exposing summaries, rankings, and
// rendered artifacts.
//
// [config], [errors], [observability], [buildinfo] - TOML configuration,
// coded errors with user-facing messages, lifecycle hooks, and build-time
// version stamping.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/centrality/...   # Specific package
//
// [graph]: https://pkg.go.dev/github.com/matchnet/matchnet/pkg/graph
// [metrics]: https://pkg.go.dev/github.com/matchnet/matchnet/pkg/metrics
// [centrality]: https://pkg.go.dev/github.com/matchnet/matchnet/pkg/centrality
// [rank]: https://pkg.go.dev/github.com/matchnet/matchnet/pkg/rank
// [render/vis]: https://pkg.go.dev/github.com/matchnet/matchnet/pkg/render/vis
// [pipeline]: https://pkg.go.dev/github.com/matchnet/matchnet/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matchnet/matchnet/pkg/cache
// [server]: https://pkg.go.dev/github.com/matchnet/matchnet/pkg/server
// [config]: https://pkg.go.dev/github.com/matchnet/matchnet/pkg/config
// [errors]: https://pkg.go.dev/github.com/matchnet/matchnet/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matchnet/matchnet/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matchnet/matchnet/pkg/buildinfo
package pkg
