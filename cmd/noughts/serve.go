package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/jaminalder/noughts/internal/web"
	"github.com/spf13/cobra"
)

var addr string

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the position-analysis HTTP API",
		Long: `Serve a stateless analysis API. No games are stored.

Routes:
  GET /healthz
  GET /analysis?moves=A1,B2
  GET /board?moves=A1,B2`,
		RunE: runServe,
	}
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           web.NewServer(logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
