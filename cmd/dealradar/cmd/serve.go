package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/dealradar/dealradar/api/openapi"
	"github.com/dealradar/dealradar/internal/api/handlers"
	"github.com/dealradar/dealradar/internal/api/middleware"
	"github.com/dealradar/dealradar/internal/config"
	"github.com/dealradar/dealradar/internal/dedupe"
	"github.com/dealradar/dealradar/internal/engine"
	"github.com/dealradar/dealradar/internal/fetch"
	"github.com/dealradar/dealradar/internal/history"
	"github.com/dealradar/dealradar/internal/llm"
	"github.com/dealradar/dealradar/internal/notify"
	"github.com/dealradar/dealradar/internal/source"
	"github.com/dealradar/dealradar/internal/store"
	"github.com/dealradar/dealradar/internal/telemetry"
	"github.com/dealradar/dealradar/internal/verify"
	"github.com/dealradar/dealradar/pkg/extract"
	pkglog "github.com/dealradar/dealradar/pkg/logger"
	domain "github.com/dealradar/dealradar/pkg/types"
)

// ingestQueueSize bounds how many inbound messages may wait for a
// pipeline worker before the ingest endpoint starts rejecting.
const ingestQueueSize = 256

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level: parseLogLevel(cfg.Logging.Level),
	})

	// Internal components log through slog.
	appLog := pkglog.New(cfg.Logging.Level, cfg.Logging.Format)

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelConnect()

	stopTraces, err := telemetry.Setup(connectCtx, cfg.Telemetry, Version)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	if cfg.Telemetry.Enabled {
		logger.Info("trace export enabled", "endpoint", cfg.Telemetry.Endpoint)
	}

	st, err := store.NewPostgresStore(connectCtx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	if err := st.Ping(connectCtx); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	// Page-fetch stack: rate limiter, scraper, short-link resolver.
	limiter := fetch.NewRateLimiter(
		cfg.Fetch.RateLimit.PerSecond,
		cfg.Fetch.RateLimit.Burst,
		cfg.Fetch.RateLimit.DailyLimit,
	)
	scraper := fetch.NewScraper(
		fetch.WithScraperLogger(appLog),
		fetch.WithRateLimiter(limiter),
		fetch.WithTimeout(cfg.Fetch.Timeout),
	)
	resolver := fetch.NewResolver(fetch.WithResolverLogger(appLog))

	verifier := verify.New(resolver, scraper,
		verify.WithLogger(appLog),
		verify.WithMinConfidence(cfg.Verification.MinConfidence),
	)

	tracker := history.New(st, history.WithLogger(appLog))

	detector := dedupe.New(
		dedupe.WithThreshold(cfg.Dedupe.Threshold),
		dedupe.WithLogger(appLog),
	)

	backend := llm.Select(cfg.LLM.Provider, cfg.LLM.Endpoint, cfg.LLM.Model, cfg.LLM.APIKey)
	classifier := llm.NewClassifier(backend, llm.WithClassifierLogger(appLog))

	var notifier notify.Notifier = notify.NewNoOpNotifier(appLog)
	if cfg.Notifications.Discord.Enabled {
		notifier = notify.NewDiscordNotifier(cfg.Notifications.Discord.WebhookURL)
		logger.Info("discord notifications enabled")
	}

	sources := make([]engine.Source, 0, len(cfg.Sources))
	for _, sc := range cfg.Sources {
		opts := []source.FeedOption{source.WithLogger(appLog)}
		if sc.APIKey != "" {
			opts = append(opts, source.WithAPIKey(sc.APIKey))
		}
		sources = append(sources, source.NewFeed(sc.Name, sc.URL, opts...))
	}
	if len(sources) > 0 {
		logger.Info("feed sources configured", "count", len(sources))
	}

	eng := engine.NewEngine(st, verifier, tracker, notifier,
		engine.WithLogger(appLog),
		engine.WithDetector(detector),
		engine.WithClassifier(classifier),
		engine.WithNotifyThreshold(cfg.Pipeline.NotifyThreshold),
		engine.WithOfferTTL(cfg.Pipeline.OfferTTL),
		engine.WithCatalogScanLimit(cfg.Pipeline.CatalogScanLimit),
		engine.WithSources(sources...),
	)

	// Inbound message queue drained by the pipeline worker pool, fed by
	// the ingest endpoint.
	queue := make(chan domain.Message, ingestQueueSize)
	consumeDone := make(chan struct{})
	go func() {
		defer close(consumeDone)
		eng.Consume(context.Background(), queue, cfg.Pipeline.Workers)
	}()

	sched, err := engine.NewScheduler(
		eng, st,
		cfg.Schedule.SweepInterval,
		cfg.Schedule.CleanupInterval,
		appLog,
	)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	sched.Start()
	logger.Info("scheduler started",
		"sweep_interval", cfg.Schedule.SweepInterval,
		"cleanup_interval", cfg.Schedule.CleanupInterval,
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(appLog))
	e.Use(middleware.RequestLog(appLog))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(st)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	openapi.RegisterRoutes(e)

	api := humaecho.New(e, huma.DefaultConfig("dealradar API", Version))
	handlers.RegisterDealRoutes(api, handlers.NewDealsHandler(st))
	handlers.RegisterParseRoutes(api, handlers.NewParseHandler(extract.New()))
	handlers.RegisterIngestRoutes(api, handlers.NewIngestHandler(queue))
	handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(st))
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(limiter))
	handlers.RegisterTriggerRoutes(api,
		handlers.NewSweepHandler(eng),
		handlers.NewCleanupHandler(eng),
	)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Stop the HTTP server first: no new ingests may arrive once the
	// queue is closed.
	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	select {
	case <-sched.Stop().Done():
	case <-ctx.Done():
		logger.Warn("scheduler jobs still running at shutdown deadline")
	}

	close(queue)
	select {
	case <-consumeDone:
	case <-ctx.Done():
		logger.Warn("pipeline workers still running at shutdown deadline")
	}

	if err := stopTraces(ctx); err != nil {
		logger.Warn("trace provider shutdown", "err", err)
	}

	logger.Info("server stopped")
	return nil
}

func parseLogLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
