package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matchnet/matchnet/pkg/cache"
	"github.com/matchnet/matchnet/pkg/config"
	"github.com/matchnet/matchnet/pkg/pipeline"
	"github.com/matchnet/matchnet/pkg/server"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		viewPath string
		addr     string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "serve [full.json]",
		Short: "Serve the tournament analysis over HTTP",
		Long: `Serve the tournament analysis over an HTTP API.

Endpoints:
  GET /                        interactive network viewer
  GET /health                  liveness probe
  GET /api/summary             structural metrics
  GET /api/rankings/{metric}   top-K leaderboard (?k= overrides the default)
  GET /api/render              artifact in ?format= html, svg, png, or json

With redis_addr configured, results are cached in Redis so multiple
server processes share one store; otherwise the local file cache is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), args[0], viewPath, addr, noCache)
		},
	}

	cmd.Flags().StringVar(&viewPath, "view", "", "view subgraph file (defaults to the full graph)")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, fullPath, viewPath, addr string, noCache bool) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if addr == "" {
		addr = cfg.Server.Addr
	}

	store, keyer, err := c.serveCache(ctx, cfg, noCache)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(store, keyer, c.Logger)
	defer runner.Close()

	// Fail fast on a broken dataset instead of serving errors.
	full, _, _, _, err := runner.Load(ctx, fullPath, viewPath)
	if err != nil {
		return err
	}
	c.Logger.Info("dataset loaded", "players", full.NodeCount(), "matches", full.EdgeCount())

	srv := &http.Server{
		Addr:              addr,
		Handler:           server.New(runner, pipelineOptions(cfg, fullPath, viewPath), cfg, c.Logger).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

// serveCache picks the server cache backend: Redis when configured, the
// local file cache otherwise. Redis keys are namespaced so matchnet can
// share an instance with other applications.
func (c *CLI) serveCache(ctx context.Context, cfg config.Config, noCache bool) (cache.Cache, cache.Keyer, error) {
	if noCache || cfg.Cache.Disabled {
		return cache.NewNullCache(), nil, nil
	}
	if cfg.Cache.RedisAddr != "" {
		store, err := cache.NewRedisCache(ctx, cfg.Cache.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		c.Logger.Info("using redis cache", "addr", cfg.Cache.RedisAddr)
		return store, cache.NewScopedKeyer(nil, appName+":"), nil
	}
	store, err := newCache(cfg, false)
	return store, nil, err
}
