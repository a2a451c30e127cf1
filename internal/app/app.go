package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"log-analyzer/internal/aggregators"
	"log-analyzer/internal/analyzers"
	internalhttp "log-analyzer/internal/http"
	"log-analyzer/internal/parsers"
	"log-analyzer/internal/reports"
	"log-analyzer/internal/shared/configs"
	"log-analyzer/internal/shared/filestorages"
	"log-analyzer/internal/shared/loggers"
	"log-analyzer/internal/shared/metrics"
	"log-analyzer/internal/sources"
)

const appName = "log-analyzer"

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	logCloser io.Closer
	now       func() time.Time

	analysisService analyzers.AnalysisService
	server          *http.Server
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	return newWithClock(config, time.Now)
}

func newWithClock(config *configs.Config, now func() time.Time) (*App, error) {
	logStorage, err := filestorages.NewFileStorage(config.LogDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize log storage: %w", err)
	}
	reportStorage, err := filestorages.NewFileStorage(config.ReportDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize report storage: %w", err)
	}

	template, err := reports.LoadTemplate(config.TemplatePath)
	if err != nil {
		return nil, err
	}

	appLogger, logCloser, err := newAppLogger(config, now())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger = appLogger.With().
		Str(loggers.FieldApp, appName).
		Logger()

	// Initialize pipeline
	convention := sources.NamingConvention{
		ProductMarker: config.Source.ProductMarker,
		PlainMarker:   config.Source.PlainMarker,
		CompressedExt: config.Source.CompressedExt,
		DateLayout:    config.Source.DateLayout,
	}
	reportStore := reports.NewReportStore(reportStorage)
	analysisService := analyzers.NewAnalysisService(
		sources.NewLogSourceSelector(logStorage, convention),
		sources.NewLogSourceReader(logStorage),
		aggregators.NewStreamAggregator(parsers.NewLogLineMatcher()),
		aggregators.NewStatisticsFinalizer(),
		reports.NewReportRenderer(template),
		reportStore,
		config.ReportSize,
	)

	// Initialize http router
	router := internalhttp.NewRouter(analysisService, reportStore, now, appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:          config,
		appLogger:       appLogger,
		logCloser:       logCloser,
		now:             now,
		analysisService: analysisService,
		server:          server,
	}, nil
}

func newAppLogger(config *configs.Config, now time.Time) (loggers.Logger, io.Closer, error) {
	if config.OutputLog == "" {
		logger, err := loggers.New(config.Log.Level)
		return logger, nil, err
	}
	return loggers.NewFile(config.Log.Level, config.OutputLog, now)
}

// Logger returns the application logger.
func (app *App) Logger() *loggers.Logger {
	return &app.appLogger
}

// Analyze runs the pipeline once for today's date.
func (app *App) Analyze(ctx context.Context) (*analyzers.AnalysisResult, error) {
	ctx = app.appLogger.WithContext(ctx)
	app.appLogger.Info().
		Msgf("Starting analysis (log_dir=%s, report_dir=%s, report_size=%d)",
			app.config.LogDir,
			app.config.ReportDir,
			app.config.ReportSize)

	return app.analysisService.Analyze(ctx, app.now())
}

// ExportMetrics writes the metrics textfile when one is configured.
func (app *App) ExportMetrics() error {
	if app.config.Metrics.TextfilePath == "" {
		return nil
	}
	if err := metrics.WriteToTextfile(app.config.Metrics.TextfilePath); err != nil {
		return fmt.Errorf("failed to write metrics textfile %q: %w", app.config.Metrics.TextfilePath, err)
	}
	return nil
}

// Start starts the report server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting report server on port %d (log_level=%s, log_dir=%s, report_dir=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.LogDir,
			app.config.ReportDir)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the report server.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")
	return nil
}

// Close releases the log file, if any.
func (app *App) Close() error {
	if app.logCloser == nil {
		return nil
	}
	return app.logCloser.Close()
}
