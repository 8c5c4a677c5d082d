package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/itsmostafa/foldertree/internal/api"
	"github.com/itsmostafa/foldertree/internal/ctxlog"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tree renderer and script generator over HTTP",
	Long: `Start an HTTP server with two endpoints:

  POST /api/render  {"outline": "..."}  -> tree, script and parsed nodes as JSON
  POST /api/script  {"outline": "..."}  -> GENERATE-FOLDERS.bat as a download`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := ctxlog.FromContext(cmd.Context())

		addr := serveAddr
		if addr == "" {
			addr = appConfig.Serve.Addr
		}

		httpServer := &http.Server{
			Addr:         addr,
			Handler:      api.NewServer(appConfig, log),
			ReadTimeout:  appConfig.Serve.ReadTimeout.Duration,
			WriteTimeout: appConfig.Serve.WriteTimeout.Duration,
			IdleTimeout:  60 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			log.Info("starting foldertree server", "addr", addr)
			newPrinter(cmd).Notice(fmt.Sprintf("Listening on %s", addr))
			errCh <- httpServer.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		log.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, :8080)")
	rootCmd.AddCommand(serveCmd)
}
