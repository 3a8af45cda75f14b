package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"region-analytics/internal/aggregators"
	internalhttp "region-analytics/internal/http"
	"region-analytics/internal/ingestors"
	"region-analytics/internal/providers"
	"region-analytics/internal/scheduler"
	"region-analytics/internal/shared/configs"
	"region-analytics/internal/shared/filestorages"
	"region-analytics/internal/shared/loggers"
	"region-analytics/internal/stores"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server
	db        *sql.DB

	scheduler        scheduler.Scheduler
	backgroundCtx    context.Context
	backgroundCancel context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "region-analytics").
		Logger()

	// Initialize persistence
	db, err := stores.OpenDB(config.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	statisticStore := stores.NewRegionStatisticStore(db)

	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	rawArchive := stores.NewRawResponseArchive(fileStorage)

	// Initialize the statistics provider behind a circuit breaker
	providerLogger := appLogger.With().Str(loggers.FieldComponent, "provider").Logger()
	statisticsClient := providers.NewStatisticsClient(
		config.Provider,
		config.Scheduler.MaxCloudCoveragePct,
		config.Scheduler.AggregationPeriodISO,
	)
	statisticsProvider := providers.NewCircuitBreakerProvider(statisticsClient, providerLogger)

	// Initialize the ingestion pipeline and its scheduler
	canonicalizer := aggregators.NewDailyCanonicalizer(providers.ProviderLabel)
	ingestionService := ingestors.NewIngestionService(
		statisticsProvider,
		canonicalizer,
		statisticStore,
		rawArchive,
		config.Scheduler,
		config.FileStorage,
	)
	schedulerLogger := appLogger.With().Str(loggers.FieldComponent, "scheduler").Logger()
	sched := scheduler.New(ingestionService, config.Scheduler, schedulerLogger)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(sched, statisticStore, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:    config,
		appLogger: appLogger,
		server:    server,
		db:        db,
		scheduler: sched,
	}, nil
}

// Start starts the scheduler and then the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting region-analytics service on port %d (log_level=%s, database=%s, region=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Database.Path,
			app.config.Scheduler.RegionName)

	// start the background scheduler
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.scheduler.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Stop the scheduler, waiting for any in-flight run to drain
	app.scheduler.Stop()
	if app.backgroundCancel != nil {
		app.backgroundCancel()
	}
	app.appLogger.Info().Msg("Scheduler stopped")

	// 3) Close the database
	if err := app.db.Close(); err != nil {
		return fmt.Errorf("database close failed: %w", err)
	}
	app.appLogger.Info().Msg("Database closed")

	return nil
}
