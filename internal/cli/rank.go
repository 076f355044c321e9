package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matchnet/matchnet/pkg/centrality"
	"github.com/matchnet/matchnet/pkg/config"
	"github.com/matchnet/matchnet/pkg/errors"
	"github.com/matchnet/matchnet/pkg/rank"
)

// rankCommand creates the rank command for printing leaderboards.
func (c *CLI) rankCommand() *cobra.Command {
	var (
		metricName string
		topK       int
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "rank [full.json]",
		Short: "Print the top players for a centrality metric",
		Long: `Print the top players for a centrality metric.

Supported metrics: degree, closeness, betweenness, eigenvector.
The leaderboard length is bounded between 5 and 20 entries; ties keep
table order, so equal scores rank deterministically.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRank(cmd.Context(), args[0], metricName, topK, noCache)
		},
	}

	cmd.Flags().StringVarP(&metricName, "metric", "m", string(centrality.Eigenvector), "centrality metric: degree, closeness, betweenness, eigenvector")
	cmd.Flags().IntVarP(&topK, "top", "k", 0, "number of players to show (5-20, default from config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runRank(ctx context.Context, fullPath, metricName string, topK int, noCache bool) error {
	metric, err := centrality.ParseMetric(metricName)
	if err != nil {
		return err
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if topK == 0 {
		topK = cfg.Rank.TopK
	}
	if topK < config.MinTopK || topK > config.MaxTopK {
		return errors.New(errors.ErrCodeInvalidArgument,
			"top-k must be between %d and %d, got %d", config.MinTopK, config.MaxTopK, topK)
	}

	runner, err := c.newRunner(cfg, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Computing centrality...")
	spinner.Start()

	full, _, hash, _, err := runner.Load(ctx, fullPath, "")
	if err != nil {
		spinner.StopWithError("Ranking failed")
		return err
	}
	table, err := runner.Centrality(ctx, full, hash, pipelineOptions(cfg, fullPath, ""))
	if err != nil {
		spinner.StopWithError("Ranking failed")
		return err
	}
	spinner.Stop()

	entries, err := rank.TopK(table, metric, topK)
	if err != nil {
		return err
	}

	for _, warn := range table.Warnings() {
		printWarning("%v", warn)
	}
	printRankings(metric, entries)
	return nil
}
