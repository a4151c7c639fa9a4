package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"listing_sync/internal/config"
	"listing_sync/internal/httpapi"
	"listing_sync/internal/publisher"
	"listing_sync/internal/scheduler"
	"listing_sync/internal/service"
	"listing_sync/internal/source/airtable"
	"listing_sync/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	once := flag.Bool("once", false, "run one full sync and exit")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	client, err := airtable.NewClient(airtable.Config{
		BaseURL:        cfg.Airtable.BaseURL,
		APIKey:         cfg.Airtable.APIKey,
		BaseID:         cfg.Airtable.BaseID,
		PageSize:       cfg.Airtable.PageSize,
		Timeout:        cfg.Airtable.Timeout,
		MaxAttempts:    cfg.Airtable.Retry.MaxAttempts,
		InitialBackoff: cfg.Airtable.Retry.InitialBackoff,
		MaxBackoff:     cfg.Airtable.Retry.MaxBackoff,
	}, logger)
	if err != nil {
		logger.Error("invalid airtable configuration", "error", err)
		os.Exit(1)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database")

	var events service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:           cfg.RabbitMQ.URL,
			Exchange:      cfg.RabbitMQ.Exchange,
			RoutingPrefix: cfg.RabbitMQ.RoutingPrefix,
			QueueName:     cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		events = rabbitMQ
	}

	agentStore := postgres.NewAgentStore(db)
	propertyStore := postgres.NewPropertyStore(db)
	txManager := postgres.NewTransactionManager(db)

	source := airtable.NewSource(client,
		tableConfig(cfg.Airtable.Agents),
		tableConfig(cfg.Airtable.Properties),
		logger,
	)

	agentSync := service.NewAgentSync(source, agentStore, txManager, events, logger)
	propertySync := service.NewPropertySync(source, propertyStore, txManager, events, logger)
	migrator := service.NewMigrator(postgres.NewSchemaInspector(db), logger)

	fullSync := service.NewFullSync(service.LocalStages{
		Agents:     agentSync,
		Properties: propertySync,
	}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *once {
		runCtx, cancel := context.WithTimeout(ctx, cfg.Sync.RunTimeout)
		defer cancel()

		if _, err := fullSync.Run(runCtx); err != nil {
			logger.Error("full sync failed", "error", err)
			os.Exit(1)
		}
		return
	}

	gin.SetMode(gin.ReleaseMode)
	handler := httpapi.NewHandler(agentSync, propertySync, migrator, httpapi.Config{
		BaseURL:      cfg.Server.BaseURL,
		SyncSecret:   cfg.Server.SyncSecret,
		StageTimeout: cfg.Server.StageTimeout,
	}, logger)

	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("http server listening", "addr", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	sched := scheduler.NewScheduler(fullSync, scheduler.Config{
		Interval:   cfg.Sync.Interval,
		Cron:       cfg.Sync.Cron,
		RunTimeout: cfg.Sync.RunTimeout,
	}, logger)

	logger.Info("starting listing syncer",
		"agents_table", cfg.Airtable.Agents.Name,
		"properties_table", cfg.Airtable.Properties.Name,
		"interval", cfg.Sync.Interval,
		"cron", cfg.Sync.Cron,
		"events", cfg.RabbitMQ.Enabled,
	)

	exitCode := 0
	if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("scheduler error", "error", err)
		exitCode = 1
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown", "error", err)
	}

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

func tableConfig(t config.TableConfig) airtable.TableConfig {
	return airtable.TableConfig{
		Name:          t.Name,
		View:          t.View,
		FilterFormula: t.FilterFormula,
		MaxRecords:    t.MaxRecords,
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
