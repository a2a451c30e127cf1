package analyzers

import (
	"context"
	"errors"
	"time"

	"log-analyzer/internal/aggregators"
	"log-analyzer/internal/models"
	"log-analyzer/internal/reports"
	"log-analyzer/internal/shared/loggers"
	"log-analyzer/internal/shared/metrics"
	"log-analyzer/internal/shared/svcerrors"
	"log-analyzer/internal/shared/ulid"
	"log-analyzer/internal/sources"
)

type Outcome string

const (
	OutcomeReportWritten    Outcome = "report_written"
	OutcomeAlreadyProcessed Outcome = "already_processed"
	OutcomeNoData           Outcome = "no_data"

	outcomeFailed = "failed"
)

const (
	sourceKindPlain = "plain"
	sourceKindGzip  = "gzip"
)

// AnalysisResult describes one completed run. Source is nil when the run stopped at the
// idempotence check.
type AnalysisResult struct {
	RunID        string            `json:"runId"`
	Date         time.Time         `json:"date"`
	Outcome      Outcome           `json:"outcome"`
	Source       *models.LogSource `json:"source,omitempty"`
	LinesRead    uint64            `json:"linesRead"`
	LinesMatched uint64            `json:"linesMatched"`
	Endpoints    int               `json:"endpoints"`
	ReportKey    string            `json:"reportKey"`
}

//go:generate mockgen -source=analysis_service.go -destination=./mocks/analysis_service_mock.go -package=mocks
type AnalysisService interface {
	// Analyze builds the report of runDate from the latest log file. A date that already
	// has a report is a successful no-op.
	Analyze(ctx context.Context, runDate time.Time) (*AnalysisResult, error)
}

type analysisService struct {
	selector   sources.LogSourceSelector
	reader     sources.LogSourceReader
	aggregator aggregators.StreamAggregator
	finalizer  aggregators.StatisticsFinalizer
	renderer   reports.ReportRenderer
	store      reports.ReportStore
	reportSize int
}

func NewAnalysisService(
	selector sources.LogSourceSelector,
	reader sources.LogSourceReader,
	aggregator aggregators.StreamAggregator,
	finalizer aggregators.StatisticsFinalizer,
	renderer reports.ReportRenderer,
	store reports.ReportStore,
	reportSize int,
) AnalysisService {
	return &analysisService{
		selector:   selector,
		reader:     reader,
		aggregator: aggregator,
		finalizer:  finalizer,
		renderer:   renderer,
		store:      store,
		reportSize: reportSize,
	}
}

func (s *analysisService) Analyze(ctx context.Context, runDate time.Time) (*AnalysisResult, error) {
	startedAt := time.Now()
	result := &AnalysisResult{
		RunID:     ulid.New(startedAt),
		Date:      runDate,
		ReportKey: reports.ReportKey(runDate),
	}

	logger := loggers.Ctx(ctx).With().
		Str(loggers.FieldComponent, "analyzer").
		Str(loggers.FieldRunID, result.RunID).
		Str(loggers.FieldRunDate, runDate.Format(time.DateOnly)).
		Str(loggers.FieldReportKey, result.ReportKey).
		Logger()
	ctx = logger.WithContext(ctx)

	err := s.analyze(ctx, runDate, result)

	outcome, errorCode := string(result.Outcome), metrics.ValueNoError
	if err != nil {
		outcome = outcomeFailed
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			errorCode = svcErr.Code
		}
	}
	metricRunsTotal.WithLabelValues(outcome, errorCode).Inc()
	metricRunDuration.WithLabelValues(outcome).Observe(time.Since(startedAt).Seconds())

	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *analysisService) analyze(ctx context.Context, runDate time.Time, result *AnalysisResult) error {
	logger := loggers.Ctx(ctx)

	exists, err := s.store.Exists(ctx, runDate)
	if err != nil {
		return errInternalReportStoreFailed(err)
	}
	if exists {
		logger.Debug().Msg("report already exists, nothing to do")
		result.Outcome = OutcomeAlreadyProcessed
		return nil
	}

	source, err := s.selector.SelectLatest(ctx)
	if err != nil {
		if errors.Is(err, sources.ErrNoCandidateFile) {
			return errNoCandidateFile(err)
		}
		return errInternalLogSourceFailed(err)
	}
	result.Source = source
	logger.Debug().Str(loggers.FieldLogSource, source.Key).Msg("analyzing log file")

	corpus, err := s.aggregate(ctx, source)
	if err != nil {
		return err
	}
	result.LinesRead = corpus.TotalLines
	result.LinesMatched = corpus.TotalMatchedLines

	kind := sourceKind(source)
	metricLinesReadTotal.WithLabelValues(kind).Add(float64(corpus.TotalLines))
	metricLinesMatchedTotal.WithLabelValues(kind).Add(float64(corpus.TotalMatchedLines))

	report, err := s.finalizer.Finalize(corpus)
	if err != nil {
		return errInternalReportFailed(err)
	}
	report.Date = runDate
	result.Endpoints = len(report.Endpoints)

	if report.IsEmpty() {
		logger.Warn().
			Str(loggers.FieldLogSource, source.Key).
			Uint64(loggers.FieldLinesRead, corpus.TotalLines).
			Msg("no request time in log file, report not written")
		result.Outcome = OutcomeNoData
		return nil
	}

	content, err := s.renderer.Render(report, s.reportSize)
	if err != nil {
		return errInternalReportFailed(err)
	}

	key, err := s.store.Create(ctx, runDate, content)
	if err != nil {
		if errors.Is(err, reports.ErrReportAlreadyExists) {
			return errReportAlreadyExists(err)
		}
		return errInternalReportStoreFailed(err)
	}
	result.ReportKey = key
	result.Outcome = OutcomeReportWritten
	metricReportEndpoints.WithLabelValues().Set(float64(len(report.Endpoints)))
	return nil
}

// aggregate reads source once. The file is closed before returning on every path.
func (s *analysisService) aggregate(ctx context.Context, source *models.LogSource) (*models.Corpus, error) {
	lines, err := s.reader.Open(ctx, source)
	if err != nil {
		return nil, errInternalLogSourceFailed(err)
	}
	defer func() {
		if err := lines.Close(); err != nil {
			loggers.Ctx(ctx).Warn().Err(err).Str(loggers.FieldLogSource, source.Key).Msg("failed to close log file")
		}
	}()

	corpus, err := s.aggregator.Aggregate(ctx, lines)
	if err != nil {
		return nil, errInternalAggregationFailed(err)
	}
	return corpus, nil
}

func sourceKind(source *models.LogSource) string {
	if source.Compressed {
		return sourceKindGzip
	}
	return sourceKindPlain
}
