package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// analyzeCommand creates the analyze command for computing network metrics.
func (c *CLI) analyzeCommand() *cobra.Command {
	var (
		viewPath string
		noCache  bool
		refresh  bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [full.json]",
		Short: "Compute structural metrics and centrality for a tournament",
		Long: `Compute structural metrics and centrality for a tournament network.

The analyze command loads the full tournament graph, computes structural
statistics (density, clustering, assortativity, diameter, components) and
the four centrality metrics (degree, closeness, betweenness, eigenvector)
for every player.

Centrality tables are cached locally, so re-analyzing an unchanged
tournament is instant.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAnalyze(cmd.Context(), args[0], viewPath, noCache, refresh)
		},
	}

	cmd.Flags().StringVar(&viewPath, "view", "", "view subgraph file (defaults to the full graph)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even when a cached result exists")

	return cmd
}

func (c *CLI) runAnalyze(ctx context.Context, fullPath, viewPath string, noCache, refresh bool) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	runner, err := c.newRunner(cfg, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	spinner := newSpinnerWithContext(ctx, "Loading tournament...")
	spinner.Start()

	full, _, hash, _, err := runner.Load(ctx, fullPath, viewPath)
	if err != nil {
		spinner.StopWithError("Analysis failed")
		return err
	}

	spinner.SetMessage("Computing metrics and centralities...")
	summary := runner.Metrics(ctx, full)

	opts := pipelineOptions(cfg, fullPath, viewPath)
	opts.Refresh = refresh
	table, cached, err := runner.CentralityWithCacheInfo(ctx, full, hash, opts)
	if err != nil {
		spinner.StopWithError("Analysis failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Analyzed %d players", full.NodeCount()))

	printSummary(summary)
	printStats(full.NodeCount(), full.EdgeCount(), cached)
	for _, warn := range table.Warnings() {
		printWarning("%v", warn)
	}

	printNewline()
	printNextStep("Rank players", fmt.Sprintf("%s rank %s --metric eigenvector", appName, fullPath))
	printNextStep("Render the network", fmt.Sprintf("%s render %s", appName, fullPath))
	return nil
}
