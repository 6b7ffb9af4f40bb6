package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/asvnatz/strafenkasse/internal/config"
	"github.com/asvnatz/strafenkasse/internal/factory"
	"github.com/asvnatz/strafenkasse/internal/web"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strafenkasse",
		Short: "Web server for the club penalty ledger",
		Long: `strafenkasse serves the club's penalty ledger: recording penalties
against players, dashboards and statistics, and CSV export for the treasurer.

Configuration is read from the environment (optionally a .env file),
see the STRAFEN_* variables.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
}

func run(ctx context.Context) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		return err
	}

	app, err := factory.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		return err
	}
	defer func() { _ = app.Close() }()

	router := web.NewRouter(web.RouterConfig{
		Logger:        logger,
		Clock:         app.Clock,
		AuthService:   app.AuthService,
		LedgerService: app.LedgerService,
		ReportService: app.ReportService,
		ExportService: app.ExportService,
	})

	serverConfig := web.DefaultServerConfig()
	serverConfig.Addr = cfg.Addr()
	server := web.NewServer(router, serverConfig, logger)

	shutdownCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-sigCh:
			logger.Info("shutdown signal received")
		case <-shutdownCtx.Done():
		}
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown failed", slog.String("error", err.Error()))
		}
	}()

	return server.Start()
}
