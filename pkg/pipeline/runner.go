package pipeline

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matchnet/matchnet/pkg/cache"
	"github.com/matchnet/matchnet/pkg/centrality"
	"github.com/matchnet/matchnet/pkg/errors"
	"github.com/matchnet/matchnet/pkg/graph"
	"github.com/matchnet/matchnet/pkg/metrics"
	"github.com/matchnet/matchnet/pkg/observability"
	"github.com/matchnet/matchnet/pkg/render/vis"
)

// Runner encapsulates pipeline execution with caching and load memoization.
// Both CLI and API use this to avoid duplicating caching logic.
//
// Loaded dataset pairs are memoized per Runner, so repeated operations on
// the same files within one process never re-read or re-validate them.
// Multiple goroutines can safely share one Runner.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	mu    sync.Mutex
	loads map[string]*loadEntry
}

// loadEntry memoizes one dataset pair. The sync.Once guarantees the files
// are read and validated exactly once even under concurrent access.
type loadEntry struct {
	once sync.Once
	full *graph.Graph
	view *graph.Graph
	hash string
	err  error
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		loads:  make(map[string]*loadEntry),
	}
}

// Execute runs the complete load → metrics → centrality → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	full, view, hash, memoized, err := r.Load(ctx, opts.FullPath, opts.ViewPath)
	if err != nil {
		return nil, err
	}
	result.Full = full
	result.View = view
	result.GraphHash = hash
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.NodeCount = full.NodeCount()
	result.Stats.EdgeCount = full.EdgeCount()
	result.CacheInfo.LoadMemoized = memoized

	opts.Logger.Info("loaded graphs",
		"nodes", full.NodeCount(),
		"edges", full.EdgeCount(),
		"view_nodes", view.NodeCount(),
		"duration", result.Stats.LoadTime)

	// Stage 2: Structural metrics
	metricsStart := time.Now()
	result.Summary = r.Metrics(ctx, full)
	result.Stats.MetricsTime = time.Since(metricsStart)

	opts.Logger.Info("computed structural metrics",
		"density", result.Summary.Density,
		"components", result.Summary.WeakComponents,
		"duration", result.Stats.MetricsTime)

	// Stage 3: Centrality
	centralityStart := time.Now()
	table, tableHit, err := r.CentralityWithCacheInfo(ctx, full, hash, opts)
	if err != nil {
		return nil, err
	}
	result.Table = table
	result.Stats.CentralityTime = time.Since(centralityStart)
	result.CacheInfo.TableHit = tableHit

	opts.Logger.Info("computed centrality",
		"rows", table.Len(),
		"degraded", table.Degraded(),
		"duration", result.Stats.CentralityTime)

	// Stage 4: Render
	renderStart := time.Now()
	set, artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, view, full, table, hash, opts)
	if err != nil {
		return nil, err
	}
	result.RenderSet = set
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads and validates a dataset pair, memoizing the result per Runner.
// An empty viewPath uses the full graph as its own view. The returned bool
// reports whether the pair came from the memo.
func (r *Runner) Load(ctx context.Context, fullPath, viewPath string) (*graph.Graph, *graph.Graph, string, bool, error) {
	key := fullPath + "\x00" + viewPath

	r.mu.Lock()
	entry, memoized := r.loads[key]
	if !memoized {
		entry = &loadEntry{}
		r.loads[key] = entry
	}
	r.mu.Unlock()

	entry.once.Do(func() {
		entry.full, entry.view, entry.hash, entry.err = r.load(ctx, fullPath, viewPath)
	})

	// Failed loads are not memoized: the file may exist on the next call.
	if entry.err != nil {
		r.mu.Lock()
		delete(r.loads, key)
		r.mu.Unlock()
		return nil, nil, "", false, entry.err
	}

	return entry.full, entry.view, entry.hash, memoized, nil
}

func (r *Runner) load(ctx context.Context, fullPath, viewPath string) (*graph.Graph, *graph.Graph, string, error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, fullPath, viewPath)
	start := time.Now()

	full, err := graph.ReadGraphFile(fullPath)
	if err != nil {
		err = errors.Wrap(errors.ErrCodeLoadFailed, err, "load full graph %s", fullPath)
		hooks.OnLoadComplete(ctx, 0, 0, time.Since(start), err)
		return nil, nil, "", err
	}

	view := full
	if viewPath != "" {
		view, err = graph.ReadGraphFile(viewPath)
		if err != nil {
			err = errors.Wrap(errors.ErrCodeLoadFailed, err, "load view graph %s", viewPath)
			hooks.OnLoadComplete(ctx, 0, 0, time.Since(start), err)
			return nil, nil, "", err
		}
		if missing := missingNodes(full, view); len(missing) > 0 {
			err = errors.New(errors.ErrCodeMalformedGraph,
				"view graph is not a subset of the full graph: unknown nodes %s",
				strings.Join(missing, ", "))
			hooks.OnLoadComplete(ctx, 0, 0, time.Since(start), err)
			return nil, nil, "", err
		}
	}

	hash, err := datasetHash(full, view)
	if err != nil {
		hooks.OnLoadComplete(ctx, 0, 0, time.Since(start), err)
		return nil, nil, "", err
	}

	hooks.OnLoadComplete(ctx, full.NodeCount(), full.EdgeCount(), time.Since(start), nil)
	return full, view, hash, nil
}

// missingNodes returns the sorted view node IDs absent from the full graph.
func missingNodes(full, view *graph.Graph) []string {
	var missing []string
	for _, id := range view.NodeIDs() {
		if !full.HasNode(id) {
			missing = append(missing, id)
		}
	}
	return missing
}

// datasetHash derives the content hash identifying a dataset pair.
func datasetHash(full, view *graph.Graph) (string, error) {
	fullData, err := graph.MarshalGraph(full)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "hash full graph")
	}
	viewData, err := graph.MarshalGraph(view)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "hash view graph")
	}
	return cache.Hash(append(append(fullData, 0), viewData...)), nil
}

// Metrics computes the structural summary for a graph. The computation is
// cheap relative to loading, so it is never cached.
func (r *Runner) Metrics(ctx context.Context, g *graph.Graph) metrics.Summary {
	hooks := observability.Pipeline()
	hooks.OnMetricsStart(ctx, g.NodeCount())
	start := time.Now()

	summary := metrics.Compute(g)
	hooks.OnMetricsComplete(ctx, time.Since(start), nil)
	return summary
}

// CentralityWithCacheInfo computes the centrality table with caching and
// returns cache hit info. Degraded tables (eigenvector fallback) are never
// written to the cache, so a later run gets another chance to converge.
func (r *Runner) CentralityWithCacheInfo(ctx context.Context, g *graph.Graph, graphHash string, opts Options) (*centrality.Table, bool, error) {
	r.applyLogger(&opts)
	cacheHooks := observability.Cache()
	cacheKey := r.Keyer.TableKey(graphHash)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if table, err := centrality.UnmarshalTable(data); err == nil {
				cacheHooks.OnCacheHit(ctx, "table")
				return table, true, nil
			}
		}
		cacheHooks.OnCacheMiss(ctx, "table")
	}

	hooks := observability.Pipeline()
	hooks.OnCentralityStart(ctx, g.NodeCount())
	start := time.Now()

	table, err := centrality.Compute(g)
	hooks.OnCentralityComplete(ctx, table != nil && table.Degraded(), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for _, warn := range table.Warnings() {
		opts.Logger.Warn("centrality degraded", "reason", warn)
	}

	if !table.Degraded() {
		if data, err := centrality.MarshalTable(table); err == nil {
			if err := r.Cache.Set(ctx, cacheKey, data, cache.DefaultTableTTL); err == nil {
				cacheHooks.OnCacheSet(ctx, "table", len(data))
			}
		}
	}

	return table, false, nil
}

// Centrality is a convenience wrapper that discards the cache hit info.
func (r *Runner) Centrality(ctx context.Context, g *graph.Graph, graphHash string, opts Options) (*centrality.Table, error) {
	table, _, err := r.CentralityWithCacheInfo(ctx, g, graphHash, opts)
	return table, err
}

// RenderWithCacheInfo builds the render set and generates artifacts with
// caching, returning cache hit info. The render set itself is always built
// (it is cheap and the caller usually wants it); only the format artifacts
// are cached.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, view, full *graph.Graph, table *centrality.Table, graphHash string, opts Options) (vis.RenderSet, map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	opts.SetRenderDefaults()
	if err := ValidateFormats(opts.Formats); err != nil {
		return vis.RenderSet{}, nil, false, err
	}

	set, err := vis.Build(view, full, table, opts.Style())
	if err != nil {
		return vis.RenderSet{}, nil, false, err
	}

	cacheHooks := observability.Cache()

	// Try to get all formats from cache
	allCached := !opts.Refresh
	artifacts := make(map[string][]byte)
	if allCached {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(graphHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		cacheHooks.OnCacheHit(ctx, "artifact")
		return set, artifacts, true, nil
	}
	cacheHooks.OnCacheMiss(ctx, "artifact")

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	rendered, err := renderArtifacts(set, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return vis.RenderSet{}, nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(graphHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, cacheKey, data, cache.DefaultArtifactTTL); err == nil {
			cacheHooks.OnCacheSet(ctx, format, len(data))
		}
	}

	return set, rendered, false, nil
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, view, full *graph.Graph, table *centrality.Table, graphHash string, opts Options) (vis.RenderSet, map[string][]byte, error) {
	set, artifacts, _, err := r.RenderWithCacheInfo(ctx, view, full, table, graphHash, opts)
	return set, artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
