package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"brushplot/config"
	"brushplot/events"
	"brushplot/store"
	"brushplot/web"
	"brushplot/web/handlers"
)

const SHUTDOWN_TIMEOUT = 5 * time.Second

func buildServeCmd(flags *config.Flags) *cobra.Command {
	var serveFlags *config.ServeFlags

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the linked charts over http",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), flags, serveFlags)
		},
	}
	serveFlags = config.BindServeFlags(serveCmd.Flags())

	return serveCmd
}

func runServe(ctx context.Context, flags *config.Flags, serveFlags *config.ServeFlags) error {
	log, err := newLogger(flags)
	if err != nil {
		return err
	}

	script, err := web.ClientScript(serveFlags.Debug)
	if err != nil {
		return err
	}

	data, err := store.LoadRecords(flags.Data, log)
	if err != nil {
		return err
	}

	hub := events.NewHub()

	// Initialise UI
	dashboard, err := handlers.NewDashboard(hub, data, log)
	if err != nil {
		return err
	}

	// Initialise Server
	server := handlers.NewServer(dashboard, hub, script, log)

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), SHUTDOWN_TIMEOUT)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("couldn't shut down server")
		}
	}()

	return server.Start(serveFlags.Addr)
}
