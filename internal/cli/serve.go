package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/corkboard/corkboard/internal/server"
	"github.com/corkboard/corkboard/pkg/canvas"
	"github.com/corkboard/corkboard/pkg/settings"
)

// shutdownTimeout bounds graceful shutdown of in-flight requests.
const shutdownTimeout = 5 * time.Second

// serveCommand creates the serve command running the HTTP control surface.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		addr       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON control surface for a headless board",
		Long: `Run the JSON control surface for a headless board.

The server exposes node registration, the drag life-cycle, zoom, and
visibility culling over HTTP, serialized onto a single canvas owner. The
grid-snap policy comes from the configured settings backend and is read
fresh on every drag update, so file edits or Redis writes apply without a
restart.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), configPath, addr)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", DefaultConfigPath(), "config file path")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}

// runServe builds the canvas stack from the config and serves until ctx is
// canceled.
func (c *CLI) runServe(ctx context.Context, configPath, addr string) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	if addr == "" {
		addr = cfg.Serve.Addr
	}

	policy := c.newPolicyProvider(cfg, configPath)
	coord := canvas.NewCoordinator(cfg.NewViewport(), policy, &canvas.CoordinatorOptions{
		Footprint: cfg.Footprint(),
	})

	srv := &http.Server{
		Addr:    addr,
		Handler: server.New(coord, c.Logger).Router(),
	}

	prog := newProgress(c.Logger)
	c.Logger.Info("serving board", "addr", addr, "settings", cfg.Settings.Backend)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		prog.done("Server stopped")
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// newPolicyProvider builds the grid-policy provider selected by the config.
// The file backend re-reads the config file itself, so the [grid] table is
// live; the static backend freezes the policy loaded at startup.
func (c *CLI) newPolicyProvider(cfg Config, configPath string) canvas.PolicyProvider {
	switch cfg.Settings.Backend {
	case settings.BackendFile:
		return settings.NewFile(configPath, cfg.GridPolicy())
	case settings.BackendRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.Settings.RedisAddr})
		return settings.NewRedis(client, cfg.Settings.RedisPrefix, cfg.GridPolicy())
	default:
		return settings.NewStatic(cfg.GridPolicy())
	}
}
