package cli

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/repstack/repcore/internal/app"
	"github.com/repstack/repcore/internal/config"
	"github.com/repstack/repcore/internal/httpapi"
	"github.com/repstack/repcore/internal/runtime"
	"github.com/repstack/repcore/internal/stash"
	"github.com/repstack/repcore/internal/store"
)

// NewServeCommand runs the core with its HTTP API until interrupted.
func NewServeCommand(opts *RootOptions) *cobra.Command {
	var listenAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the workout core and HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "load config", err)
			}
			if listenAddr != "" {
				cfg.ListenAddr = listenAddr
			}

			level := cfg.SlogLevel()
			if opts.Verbose {
				level = slog.LevelDebug
			}
			log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			st, err := store.Open(cfg.DatabasePath, log)
			if err != nil {
				return WrapExitError(ExitCommandError, "open database", err)
			}
			defer st.Close()

			sh, err := stash.New(cfg.StashDir, log)
			if err != nil {
				return WrapExitError(ExitCommandError, "open stash", err)
			}

			rt := runtime.New(app.New(log), st, sh, runtime.Options{Logger: log})
			api := httpapi.New(rt, st, log, nil)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				err := rt.Run(ctx)
				if ctx.Err() != nil {
					return nil
				}
				return err
			})
			g.Go(func() error {
				return api.ListenAndServe(ctx, cfg.ListenAddr)
			})

			log.Info("serving", "addr", cfg.ListenAddr, "db", cfg.DatabasePath)
			if err := g.Wait(); err != nil {
				return WrapExitError(ExitCommandError, "serve", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&listenAddr, "listen", "", "override the configured listen address")
	return cmd
}
