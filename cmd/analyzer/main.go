package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"log-analyzer/internal/analyzers"
	"log-analyzer/internal/app"
	"log-analyzer/internal/shared/configs"
	"log-analyzer/internal/shared/loggers"
	"log-analyzer/internal/shared/svcerrors"

	"github.com/spf13/pflag"
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitNoCandidate = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := pflag.StringP("config", "c", "./config/config.json", "path to a JSON or YAML config file; defaults apply when it does not exist")
	pflag.Parse()

	cfg, err := configs.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return exitFailure
	}

	application, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		return exitFailure
	}
	defer application.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := application.Analyze(ctx)
	code := logResult(application.Logger(), result, err)

	if err := application.ExportMetrics(); err != nil {
		application.Logger().Warn().Err(err).Msg("metrics not exported")
	}
	return code
}

// logResult reports the outcome of the run once and maps it to the process exit code.
func logResult(logger *loggers.Logger, result *analyzers.AnalysisResult, err error) int {
	if err != nil {
		event := logger.Error().Err(err)
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			event = event.Str(loggers.FieldErrorCode, svcErr.Code)
			if svcErr.IsNotFound() {
				event.Msg("no log file to analyze")
				return exitNoCandidate
			}
		}
		if errors.Is(err, context.Canceled) {
			event.Msg("analysis interrupted")
			return exitFailure
		}
		event.Msg("analysis failed")
		return exitFailure
	}

	event := logger.Info().
		Str(loggers.FieldRunID, result.RunID).
		Str(loggers.FieldOutcome, string(result.Outcome)).
		Str(loggers.FieldReportKey, result.ReportKey).
		Uint64(loggers.FieldLinesRead, result.LinesRead).
		Uint64(loggers.FieldLinesMatched, result.LinesMatched)
	if result.Source != nil {
		event = event.Str(loggers.FieldLogSource, result.Source.Key)
	}

	switch result.Outcome {
	case analyzers.OutcomeAlreadyProcessed:
		event.Msg("report already exists for today, nothing to do")
	case analyzers.OutcomeNoData:
		event.Msg("log file has no request time, no report written")
	default:
		event.Msgf("report written with %d endpoints", result.Endpoints)
	}
	return exitOK
}
