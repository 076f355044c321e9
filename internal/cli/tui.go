package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matchnet/matchnet/pkg/centrality"
	"github.com/matchnet/matchnet/pkg/config"
	"github.com/matchnet/matchnet/pkg/metrics"
	"github.com/matchnet/matchnet/pkg/rank"
)

// Tab styles
var (
	tabActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Underline(true)
	tabInactiveStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// tuiCommand creates the tui command for interactive ranking browsing.
func (c *CLI) tuiCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "tui [full.json]",
		Short: "Browse centrality rankings interactively",
		Long: `Browse centrality rankings in an interactive terminal UI.

Keys:
  left/right, tab   switch metric
  up/down           grow or shrink the leaderboard
  q, esc            quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTUI(cmd.Context(), args[0], noCache)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runTUI(ctx context.Context, fullPath string, noCache bool) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	runner, err := c.newRunner(cfg, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Analyzing tournament...")
	spinner.Start()

	full, _, hash, _, err := runner.Load(ctx, fullPath, "")
	if err != nil {
		spinner.StopWithError("Analysis failed")
		return err
	}
	summary := runner.Metrics(ctx, full)
	table, err := runner.Centrality(ctx, full, hash, pipelineOptions(cfg, fullPath, ""))
	if err != nil {
		spinner.StopWithError("Analysis failed")
		return err
	}
	spinner.Stop()

	model := newRankingModel(fullPath, summary, table, cfg.Rank.TopK)
	program := tea.NewProgram(model, tea.WithContext(ctx))
	_, err = program.Run()
	return err
}

// =============================================================================
// RankingModel - Interactive leaderboard browser
// =============================================================================

// RankingModel is the bubbletea model for browsing metric leaderboards.
type RankingModel struct {
	Dataset string
	Summary metrics.Summary
	Table   *centrality.Table
	Metrics []centrality.Metric
	Active  int
	TopK    int
}

// newRankingModel creates a ranking browser over the computed table.
func newRankingModel(dataset string, summary metrics.Summary, table *centrality.Table, topK int) RankingModel {
	return RankingModel{
		Dataset: dataset,
		Summary: summary,
		Table:   table,
		Metrics: centrality.Metrics(),
		TopK:    topK,
	}
}

func (m RankingModel) Init() tea.Cmd {
	return nil
}

func (m RankingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h", "shift+tab":
			m.Active = (m.Active + len(m.Metrics) - 1) % len(m.Metrics)
		case "right", "l", "tab":
			m.Active = (m.Active + 1) % len(m.Metrics)
		case "up", "k":
			if m.TopK < config.MaxTopK {
				m.TopK++
			}
		case "down", "j":
			if m.TopK > config.MinTopK {
				m.TopK--
			}
		}
	}
	return m, nil
}

func (m RankingModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Dataset))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %d players · %d matches · density %.3f",
		m.Summary.NodeCount, m.Summary.EdgeCount, m.Summary.Density)))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.Metrics))
	for i, metric := range m.Metrics {
		if i == m.Active {
			tabs[i] = tabActiveStyle.Render(metric.Title())
		} else {
			tabs[i] = tabInactiveStyle.Render(metric.Title())
		}
	}
	b.WriteString(strings.Join(tabs, StyleDim.Render("  │  ")))
	b.WriteString("\n\n")

	metric := m.Metrics[m.Active]
	entries, err := rank.TopK(m.Table, metric, m.TopK)
	if err != nil {
		b.WriteString(StyleWarning.Render(err.Error()))
	} else {
		b.WriteString(renderRankingTable(metric, entries))
	}
	b.WriteString("\n")

	if m.Table.Degraded() {
		b.WriteString(StyleWarning.Render("! eigenvector scores are approximate (no convergence)"))
		b.WriteString("\n")
	}
	b.WriteString(StyleDim.Render("←/→ metric · ↑/↓ size · q quit"))
	b.WriteString("\n")

	return b.String()
}
