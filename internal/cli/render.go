package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matchnet/matchnet/pkg/pipeline"
)

// renderCommand creates the render command for generating visualizations.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		viewPath   string
		formatsStr string
		output     string
		title      string
		noCache    bool
		refresh    bool
		physics    bool
		noPhysics  bool
	)

	cmd := &cobra.Command{
		Use:   "render [full.json]",
		Short: "Render a tournament network to HTML, SVG, PNG, or JSON",
		Long: `Render a tournament network visualization.

Nodes are colored by community and sized by eigenvector influence; the
size scale always uses the full tournament, so a rendered subgraph keeps
its proportions relative to the whole field.

The html format produces a self-contained interactive page. svg and png
are static exports, json is the raw styled node/edge list.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.renderOptions(args[0], viewPath, formatsStr, title, refresh)
			if err != nil {
				return err
			}
			if physics {
				opts.Physics = true
			}
			if noPhysics {
				opts.Physics = false
			}
			return c.runRender(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVar(&viewPath, "view", "", "view subgraph file (defaults to the full graph)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): html (default), svg, png, json (comma-separated)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVar(&title, "title", "", "page title for html output")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "re-render even when a cached artifact exists")
	cmd.Flags().BoolVar(&physics, "physics", false, "force the browser physics simulation on")
	cmd.Flags().BoolVar(&noPhysics, "no-physics", false, "force the browser physics simulation off")

	return cmd
}

func (c *CLI) renderOptions(fullPath, viewPath, formatsStr, title string, refresh bool) (pipeline.Options, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return pipeline.Options{}, err
	}
	opts := pipelineOptions(cfg, fullPath, viewPath)
	opts.Formats = parseFormats(formatsStr)
	opts.Title = title
	opts.Refresh = refresh
	if err := pipeline.ValidateFormats(opts.Formats); err != nil {
		return pipeline.Options{}, err
	}
	return opts, nil
}

func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	runner, err := c.newRunner(cfg, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Rendering network...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	for _, warn := range result.Table.Warnings() {
		printWarning("%v", warn)
	}

	paths, err := writeArtifacts(result.Artifacts, opts.Formats, opts.FullPath, output)
	if err != nil {
		return err
	}

	printSuccess("Rendered %d format(s)", len(paths))
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheInfo.RenderHit)
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// writeArtifacts writes rendered outputs to disk.
//
// With a single format, output names the file directly (default: input base
// name with the format extension). With multiple formats, output is a base
// path and each artifact gets its extension appended.
func writeArtifacts(artifacts map[string][]byte, formats []string, input, output string) ([]string, error) {
	base := output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	}

	var paths []string
	for _, format := range formats {
		path := base + "." + format
		if output != "" && len(formats) == 1 {
			path = output
		}
		if err := os.WriteFile(path, artifacts[format], 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
