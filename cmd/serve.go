package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/twmj/internal/adapters/httpapi"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newServeCmd(env *cliEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and websocket API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, env)
		},
	}

	cmd.Flags().String("listen", "", "Listen address (default from config: :8000)")
	cmd.Flags().Int("slots", 0, "Concurrent inference calls (default from config: 2)")
	cmd.Flags().String("inference", "", "Inference sidecar base URL")
	cmd.Flags().String("dir", "", "Template exchange directory")
	cmd.Flags().String("profile", "", "Scoring profile file")

	return cmd
}

// runServe blocks until ctx is cancelled or the listener fails. The reaper is
// stopped only after the server has drained, so its final wipe cannot race a
// late export.
func runServe(ctx context.Context, env *cliEnv) error {
	app, err := wireServer(env)
	if err != nil {
		return err
	}
	defer app.pool.Close()

	server, err := httpapi.NewServer(httpapi.ServerConfig{
		Address:         env.config.Server.Listen,
		Handler:         app.handler,
		Logger:          env.logger.Named("server"),
		ShutdownTimeout: env.config.Server.ShutdownTimeout,
		Drain:           app.handler.Wait,
	})
	if err != nil {
		return fmt.Errorf("wire http server: %w", err)
	}

	if err := app.reaper.Start(ctx); err != nil {
		return err
	}

	env.logger.Info("twmj starting",
		zap.String("listen", env.config.Server.Listen),
		zap.Int("slots", env.config.Inference.Slots),
		zap.String("templates_dir", env.config.Templates.Dir),
		zap.Duration("templates_ttl", env.config.Templates.TTL),
	)

	g, gctx := errgroup.WithContext(ctx)
	served := make(chan struct{})

	g.Go(func() error {
		defer close(served)
		return server.Serve(gctx)
	})
	g.Go(func() error {
		<-served
		stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), env.config.Server.ShutdownTimeout)
		defer cancel()
		if err := app.reaper.Stop(stopCtx); err != nil {
			return fmt.Errorf("stop reaper: %w", err)
		}
		env.logger.Info("template exchange wiped")
		return nil
	})

	return g.Wait()
}
