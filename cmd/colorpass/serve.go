package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/colorpass/colorpass-go/internal/clipboard"
	"github.com/colorpass/colorpass-go/internal/crypto"
	"github.com/colorpass/colorpass-go/internal/handler"
	"github.com/colorpass/colorpass-go/internal/model"
	"github.com/colorpass/colorpass-go/internal/service"
)

func newServeCmd(a *app) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve both apps as local web pages plus a JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != "" {
				a.cfg.Port = port
			}
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
	return cmd
}

func (a *app) serve(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	genService, err := service.NewGeneratorService(crypto.NewGenerator(nil), a.cfg.Generator.Options(), clipboard.System{})
	if err != nil {
		return err
	}
	bgService := service.NewBackgroundService(a.cfg.InitialColor())

	genService.OnChange(func(st model.PasswordState) {
		slog.Debug("password regenerated", "length", st.Length, "digits", st.Digits, "symbols", st.Symbols)
	})

	srv := &http.Server{
		Addr:              ":" + a.cfg.Port,
		Handler:           handler.NewRouter(ctx, a.cfg, genService, bgService),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", a.cfg.Port, "env", a.cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("server error", "error", err)
			return err
		}
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		return err
	}

	slog.Info("server stopped")
	return nil
}
