package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/DrCognito/StaticAnalysisSite/internal/logging"
	"github.com/DrCognito/StaticAnalysisSite/internal/version"
)

func (a *app) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}

	cmd.Flags().String("host", "", "HTTP server host")
	cmd.Flags().Int("port", 0, "HTTP server port")
	_ = a.v.BindPFlag("server.host", cmd.Flags().Lookup("host"))
	_ = a.v.BindPFlag("server.port", cmd.Flags().Lookup("port"))

	return cmd
}

func (a *app) serve(ctx context.Context) error {
	site, err := a.openServer(false)
	if err != nil {
		return err
	}

	addr := a.cfg.Server.Address()
	server := &http.Server{
		Addr:              addr,
		Handler:           site.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	fmt.Println("Dota 2 Team Analysis")
	fmt.Println("====================")
	fmt.Printf("Plots:  %s (%d teams)\n", a.cfg.PlotDirectory, len(site.Teams()))
	fmt.Printf("Server: http://%s%s\n", addr, a.cfg.Site.BaseURL)
	fmt.Println()

	logging.Info("Server starting",
		slog.String("version", version.GetFullVersionInfo()),
		slog.String("addr", addr))

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-quit:
	case <-ctx.Done():
	}

	logging.Info("Shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	logging.Info("Server stopped")
	return nil
}
