package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/inamate/sceneedit/internal/api"
	"github.com/inamate/sceneedit/internal/auth"
	"github.com/inamate/sceneedit/internal/config"
	"github.com/inamate/sceneedit/internal/document"
	"github.com/inamate/sceneedit/internal/editor"
	"github.com/inamate/sceneedit/internal/live"
)

// NewServeCommand creates the command that runs the editor server
func NewServeCommand(cfg *config.Config) *cobra.Command {
	var empty bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the editor over HTTP and websockets",
		RunE: func(cmd *cobra.Command, args []string) error {
			initial := document.NewSampleDocument()
			if empty {
				initial = document.NewModel()
			}
			return serve(cmd.Context(), cfg, initial)
		},
	}

	cmd.Flags().BoolVar(&empty, "empty", false, "Start with an empty document instead of the sample")

	return cmd
}

func serve(ctx context.Context, cfg *config.Config, initial document.Model) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	session := editor.NewSession(initial, editor.OptionsFromConfig(cfg))
	workspace := live.NewWorkspace(session)
	go workspace.Hub().Run(ctx)

	tokens := auth.NewService(cfg.JWTSecret, cfg.TokenTTL)
	if !tokens.Enabled() {
		slog.Warn("token auth disabled, set SCENEEDIT_JWT_SECRET to require bearer tokens")
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      api.NewRouter(workspace, cfg.Origins(), tokens),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-sigCh:
		case <-ctx.Done():
		}

		slog.Info("shutting down server")

		// Stop the hub first so websocket clients are released
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("server starting", "addr", addr, "session", session.ID)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
