// Package pipeline provides the core analysis pipeline for matchnet.
//
// This package implements the complete load → metrics → centrality → render
// pipeline shared by the CLI, the HTTP API, and the TUI. Centralizing this
// logic keeps behavior consistent across entry points and avoids code
// duplication.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Load: Read and validate the full and view graph documents
//  2. Metrics: Compute structural summary statistics
//  3. Centrality: Compute the four-metric centrality table
//  4. Render: Generate output artifacts (HTML, SVG, PNG, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    FullPath: "full.json",
//	    ViewPath: "finals.json",
//	    Formats:  []string{"html"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	html := result.Artifacts["html"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matchnet/matchnet/pkg/cache"
	"github.com/matchnet/matchnet/pkg/centrality"
	"github.com/matchnet/matchnet/pkg/errors"
	"github.com/matchnet/matchnet/pkg/graph"
	"github.com/matchnet/matchnet/pkg/metrics"
	"github.com/matchnet/matchnet/pkg/render/vis"
)

// Format constants for output formats.
const (
	FormatHTML = "html"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatHTML: true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the analysis pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options
	FullPath string `json:"full_path"`
	ViewPath string `json:"view_path,omitempty"` // empty renders the full graph
	Refresh  bool   `json:"refresh,omitempty"`   // bypass and overwrite cached results

	// Render options
	Formats   []string `json:"formats,omitempty"`
	Physics   bool     `json:"physics,omitempty"`
	Palette   []string `json:"palette,omitempty"`
	BaseSize  float64  `json:"base_size,omitempty"`
	SizeRange float64  `json:"size_range,omitempty"`
	Title     string   `json:"title,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Full is the complete tournament graph.
	Full *graph.Graph

	// View is the subgraph selected for rendering (Full when no view was given).
	View *graph.Graph

	// GraphHash is the content hash of the loaded dataset pair.
	GraphHash string

	// Summary holds the structural metrics of the full graph.
	Summary metrics.Summary

	// Table holds the centrality scores of the full graph.
	Table *centrality.Table

	// RenderSet is the styled node/edge list for the view.
	RenderSet vis.RenderSet

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount      int
	EdgeCount      int
	LoadTime       time.Duration
	MetricsTime    time.Duration
	CentralityTime time.Duration
	RenderTime     time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LoadMemoized bool // Whether the dataset pair came from the in-process memo
	TableHit     bool // Whether the centrality table came from cache
	RenderHit    bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: html, svg, png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.FullPath == "" {
		return errors.New(errors.ErrCodeInvalidArgument, "full graph path is required")
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatHTML}
	}
	if len(o.Palette) == 0 {
		o.Palette = vis.DefaultPalette
	}
	if o.BaseSize == 0 {
		o.BaseSize = vis.DefaultBaseSize
	}
	if o.SizeRange == 0 {
		o.SizeRange = vis.DefaultSizeRange
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Style returns the visual encoding configured by the options.
func (o *Options) Style() vis.Style {
	return vis.Style{
		Palette:   o.Palette,
		BaseSize:  o.BaseSize,
		SizeRange: o.SizeRange,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:    format,
		Physics:   o.Physics,
		Palette:   o.Palette,
		BaseSize:  o.BaseSize,
		SizeRange: o.SizeRange,
	}
}
