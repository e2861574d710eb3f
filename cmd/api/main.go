package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mishasvintus/pr_range_explorer/internal/config"
	"github.com/mishasvintus/pr_range_explorer/internal/github"
	"github.com/mishasvintus/pr_range_explorer/internal/handler"
	"github.com/mishasvintus/pr_range_explorer/internal/logger"
	"github.com/mishasvintus/pr_range_explorer/internal/metrics"
	"github.com/mishasvintus/pr_range_explorer/internal/router"
	"github.com/mishasvintus/pr_range_explorer/internal/service"
)

const readHeaderTimeout = 10 * time.Second

var (
	envFile  string
	port     string
	logLevel string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pr-range-api",
		Short: "HTTP proxy listing GitHub pull requests active in a date range",
		Long: `Serves GET /pulls?owner=&repo=&startDate=&endDate= and answers with the pull
requests of the repository that were created, updated, closed or merged in the range.`,
		SilenceUsage: true,
		RunE:         runServer,
	}

	rootCmd.Flags().StringVar(&envFile, "env-file", "", "Path to a .env file (default: .env if present)")
	rootCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides SERVER_PORT)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (overrides LOG_LEVEL)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = port
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	if log.GetLevel() < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	m := metrics.NewMetrics()

	sourceFactory := github.NewSourceFactory(cfg.GitHub.APIURL,
		github.WithTimeout(cfg.GitHub.Timeout),
		github.WithMaxPages(cfg.GitHub.MaxPages),
		github.WithMetrics(m),
		github.WithLogger(log),
	)
	prService := service.NewPRService(sourceFactory, m, log)

	prHandler := handler.NewPRHandler(prService, cfg.CredentialPolicy(), log)
	healthHandler := handler.NewHealthHandler()

	r := router.SetupRoutes(prHandler, healthHandler, router.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Metrics:        m,
		Log:            log,
	})

	addr := cfg.Server.Address()
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{
			"addr":            addr,
			"github_api":      cfg.GitHub.APIURL,
			"credential_mode": cfg.Credential.Mode,
			"authenticated":   cfg.GitHub.Token != "",
		}).Info("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-quit:
	}

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server exited")
	return nil
}
