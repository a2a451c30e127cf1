package analyzers_test

import (
	"context"
	"errors"
	"testing"
	"time"

	aggregatormocks "log-analyzer/internal/aggregators/mocks"
	"log-analyzer/internal/analyzers"
	"log-analyzer/internal/models"
	"log-analyzer/internal/reports"
	reportmocks "log-analyzer/internal/reports/mocks"
	"log-analyzer/internal/shared/svcerrors"
	"log-analyzer/internal/sources"
	sourcemocks "log-analyzer/internal/sources/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var runDate = time.Date(2017, 7, 1, 9, 0, 0, 0, time.UTC)

type serviceMocks struct {
	selector   *sourcemocks.MockLogSourceSelector
	reader     *sourcemocks.MockLogSourceReader
	lines      *sourcemocks.MockLineReader
	aggregator *aggregatormocks.MockStreamAggregator
	finalizer  *aggregatormocks.MockStatisticsFinalizer
	renderer   *reportmocks.MockReportRenderer
	store      *reportmocks.MockReportStore
}

func newServiceWithMocks(t *testing.T) (analyzers.AnalysisService, *serviceMocks) {
	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		selector:   sourcemocks.NewMockLogSourceSelector(ctrl),
		reader:     sourcemocks.NewMockLogSourceReader(ctrl),
		lines:      sourcemocks.NewMockLineReader(ctrl),
		aggregator: aggregatormocks.NewMockStreamAggregator(ctrl),
		finalizer:  aggregatormocks.NewMockStatisticsFinalizer(ctrl),
		renderer:   reportmocks.NewMockReportRenderer(ctrl),
		store:      reportmocks.NewMockReportStore(ctrl),
	}
	service := analyzers.NewAnalysisService(m.selector, m.reader, m.aggregator, m.finalizer, m.renderer, m.store, 10)
	return service, m
}

var latestSource = &models.LogSource{
	Key:        "nginx-access-ui.log-20170630.gz",
	Date:       time.Date(2017, 6, 30, 0, 0, 0, 0, time.UTC),
	Compressed: true,
}

func TestAnalyze_ReportWritten(t *testing.T) {
	t.Parallel()

	service, m := newServiceWithMocks(t)
	corpus := &models.Corpus{TotalLines: 4, TotalMatchedLines: 3, TotalTime: 0.6}
	report := &models.Report{Endpoints: []*models.EndpointSummary{{URL: "/api/a"}, {URL: "/api/b"}}}

	gomock.InOrder(
		m.store.EXPECT().Exists(gomock.Any(), runDate).Return(false, nil),
		m.selector.EXPECT().SelectLatest(gomock.Any()).Return(latestSource, nil),
		m.reader.EXPECT().Open(gomock.Any(), latestSource).Return(m.lines, nil),
		m.aggregator.EXPECT().Aggregate(gomock.Any(), m.lines).Return(corpus, nil),
		m.lines.EXPECT().Close().Return(nil),
		m.finalizer.EXPECT().Finalize(corpus).Return(report, nil),
		m.renderer.EXPECT().Render(report, 10).Return([]byte("<html/>"), nil),
		m.store.EXPECT().Create(gomock.Any(), runDate, []byte("<html/>")).Return("report-2017-07-01.html", nil),
	)

	result, err := service.Analyze(context.Background(), runDate)
	require.NoError(t, err)

	assert.Equal(t, analyzers.OutcomeReportWritten, result.Outcome)
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, latestSource, result.Source)
	assert.Equal(t, uint64(4), result.LinesRead)
	assert.Equal(t, uint64(3), result.LinesMatched)
	assert.Equal(t, 2, result.Endpoints)
	assert.Equal(t, "report-2017-07-01.html", result.ReportKey)
	assert.Equal(t, runDate, report.Date, "report is dated with the run date")
}

func TestAnalyze_AlreadyProcessed(t *testing.T) {
	t.Parallel()

	service, m := newServiceWithMocks(t)
	m.store.EXPECT().Exists(gomock.Any(), runDate).Return(true, nil)

	result, err := service.Analyze(context.Background(), runDate)
	require.NoError(t, err)
	assert.Equal(t, analyzers.OutcomeAlreadyProcessed, result.Outcome)
	assert.Nil(t, result.Source)
	assert.Equal(t, "report-2017-07-01.html", result.ReportKey)
}

func TestAnalyze_NoData(t *testing.T) {
	t.Parallel()

	service, m := newServiceWithMocks(t)
	corpus := &models.Corpus{TotalLines: 2}

	m.store.EXPECT().Exists(gomock.Any(), runDate).Return(false, nil)
	m.selector.EXPECT().SelectLatest(gomock.Any()).Return(latestSource, nil)
	m.reader.EXPECT().Open(gomock.Any(), latestSource).Return(m.lines, nil)
	m.aggregator.EXPECT().Aggregate(gomock.Any(), m.lines).Return(corpus, nil)
	m.lines.EXPECT().Close().Return(nil)
	m.finalizer.EXPECT().Finalize(corpus).Return(&models.Report{}, nil)

	result, err := service.Analyze(context.Background(), runDate)
	require.NoError(t, err)
	assert.Equal(t, analyzers.OutcomeNoData, result.Outcome)
	assert.Equal(t, uint64(2), result.LinesRead)
	assert.Zero(t, result.Endpoints)
}

func TestAnalyze_NoCandidateFile(t *testing.T) {
	t.Parallel()

	service, m := newServiceWithMocks(t)
	m.store.EXPECT().Exists(gomock.Any(), runDate).Return(false, nil)
	m.selector.EXPECT().SelectLatest(gomock.Any()).Return(nil, sources.ErrNoCandidateFile)

	result, err := service.Analyze(context.Background(), runDate)
	assert.Nil(t, result)
	assertServiceError(t, err, "ANL_1000", "not_found")
	assert.ErrorIs(t, err, sources.ErrNoCandidateFile)
}

func TestAnalyze_ReportCreatedConcurrently(t *testing.T) {
	t.Parallel()

	service, m := newServiceWithMocks(t)
	corpus := &models.Corpus{TotalMatchedLines: 1, TotalTime: 0.1}
	report := &models.Report{Endpoints: []*models.EndpointSummary{{URL: "/api/a"}}}

	m.store.EXPECT().Exists(gomock.Any(), runDate).Return(false, nil)
	m.selector.EXPECT().SelectLatest(gomock.Any()).Return(latestSource, nil)
	m.reader.EXPECT().Open(gomock.Any(), latestSource).Return(m.lines, nil)
	m.aggregator.EXPECT().Aggregate(gomock.Any(), m.lines).Return(corpus, nil)
	m.lines.EXPECT().Close().Return(nil)
	m.finalizer.EXPECT().Finalize(corpus).Return(report, nil)
	m.renderer.EXPECT().Render(report, 10).Return([]byte("x"), nil)
	m.store.EXPECT().Create(gomock.Any(), runDate, []byte("x")).Return("", reports.ErrReportAlreadyExists)

	result, err := service.Analyze(context.Background(), runDate)
	assert.Nil(t, result)
	assertServiceError(t, err, "ANL_1001", "resource_conflict")
}

func TestAnalyze_InternalFailures(t *testing.T) {
	t.Parallel()

	ioErr := errors.New("input/output error")
	corpus := &models.Corpus{TotalMatchedLines: 1, TotalTime: 0.1}
	report := &models.Report{Endpoints: []*models.EndpointSummary{{URL: "/api/a"}}}

	tests := []struct {
		name         string
		setup        func(m *serviceMocks)
		expectedCode string
	}{
		{
			name: "idempotence check fails",
			setup: func(m *serviceMocks) {
				m.store.EXPECT().Exists(gomock.Any(), runDate).Return(false, ioErr)
			},
			expectedCode: "ANL_9003",
		},
		{
			name: "listing the log directory fails",
			setup: func(m *serviceMocks) {
				m.store.EXPECT().Exists(gomock.Any(), runDate).Return(false, nil)
				m.selector.EXPECT().SelectLatest(gomock.Any()).Return(nil, ioErr)
			},
			expectedCode: "ANL_9000",
		},
		{
			name: "opening the log file fails",
			setup: func(m *serviceMocks) {
				m.store.EXPECT().Exists(gomock.Any(), runDate).Return(false, nil)
				m.selector.EXPECT().SelectLatest(gomock.Any()).Return(latestSource, nil)
				m.reader.EXPECT().Open(gomock.Any(), latestSource).Return(nil, ioErr)
			},
			expectedCode: "ANL_9000",
		},
		{
			name: "reading the log file fails and the file is still closed",
			setup: func(m *serviceMocks) {
				m.store.EXPECT().Exists(gomock.Any(), runDate).Return(false, nil)
				m.selector.EXPECT().SelectLatest(gomock.Any()).Return(latestSource, nil)
				m.reader.EXPECT().Open(gomock.Any(), latestSource).Return(m.lines, nil)
				m.aggregator.EXPECT().Aggregate(gomock.Any(), m.lines).Return(nil, ioErr)
				m.lines.EXPECT().Close().Return(nil)
			},
			expectedCode: "ANL_9001",
		},
		{
			name: "rendering fails",
			setup: func(m *serviceMocks) {
				m.store.EXPECT().Exists(gomock.Any(), runDate).Return(false, nil)
				m.selector.EXPECT().SelectLatest(gomock.Any()).Return(latestSource, nil)
				m.reader.EXPECT().Open(gomock.Any(), latestSource).Return(m.lines, nil)
				m.aggregator.EXPECT().Aggregate(gomock.Any(), m.lines).Return(corpus, nil)
				m.lines.EXPECT().Close().Return(nil)
				m.finalizer.EXPECT().Finalize(corpus).Return(report, nil)
				m.renderer.EXPECT().Render(report, 10).Return(nil, ioErr)
			},
			expectedCode: "ANL_9002",
		},
		{
			name: "writing the report fails",
			setup: func(m *serviceMocks) {
				m.store.EXPECT().Exists(gomock.Any(), runDate).Return(false, nil)
				m.selector.EXPECT().SelectLatest(gomock.Any()).Return(latestSource, nil)
				m.reader.EXPECT().Open(gomock.Any(), latestSource).Return(m.lines, nil)
				m.aggregator.EXPECT().Aggregate(gomock.Any(), m.lines).Return(corpus, nil)
				m.lines.EXPECT().Close().Return(errors.New("close failed"))
				m.finalizer.EXPECT().Finalize(corpus).Return(report, nil)
				m.renderer.EXPECT().Render(report, 10).Return([]byte("x"), nil)
				m.store.EXPECT().Create(gomock.Any(), runDate, []byte("x")).Return("", ioErr)
			},
			expectedCode: "ANL_9003",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			service, m := newServiceWithMocks(t)
			tt.setup(m)

			result, err := service.Analyze(context.Background(), runDate)
			assert.Nil(t, result)
			assertServiceError(t, err, tt.expectedCode, "internal")
			assert.ErrorIs(t, err, ioErr)
		})
	}
}

func assertServiceError(t *testing.T, err error, code, category string) {
	t.Helper()

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError, got %v", err)
	assert.Equal(t, code, svcErr.Code)
	assert.Equal(t, category, svcErr.Category)
}
