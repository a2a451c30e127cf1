package analyzers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"log-analyzer/internal/aggregators"
	"log-analyzer/internal/analyzers"
	"log-analyzer/internal/models"
	"log-analyzer/internal/parsers"
	"log-analyzer/internal/reports"
	"log-analyzer/internal/shared/filestorages"
	"log-analyzer/internal/shared/svcerrors"
	"log-analyzer/internal/sources"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var endpointTableRegexp = regexp.MustCompile(`render\("endpoints", (\[.*?\]), \[`)

type pipeline struct {
	service   analyzers.AnalysisService
	logDir    string
	reportDir string
}

func newPipeline(t *testing.T, reportSize int) *pipeline {
	t.Helper()

	logDir := t.TempDir()
	reportDir := filepath.Join(t.TempDir(), "reports")

	logStorage, err := filestorages.NewFileStorage(logDir)
	require.NoError(t, err)
	reportStorage, err := filestorages.NewFileStorage(reportDir)
	require.NoError(t, err)

	service := analyzers.NewAnalysisService(
		sources.NewLogSourceSelector(logStorage, sources.DefaultNamingConvention()),
		sources.NewLogSourceReader(logStorage),
		aggregators.NewStreamAggregator(parsers.NewLogLineMatcher()),
		aggregators.NewStatisticsFinalizer(),
		reports.NewReportRenderer(reports.DefaultTemplate()),
		reports.NewReportStore(reportStorage),
		reportSize,
	)
	return &pipeline{service: service, logDir: logDir, reportDir: reportDir}
}

func (p *pipeline) writeLog(t *testing.T, name string, lines ...string) {
	t.Helper()

	content := strings.Join(lines, "\n") + "\n"
	path := filepath.Join(p.logDir, name)
	if !strings.HasSuffix(name, ".gz") {
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return
	}

	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	gz := gzip.NewWriter(file)
	_, err = gz.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
}

func (p *pipeline) readTable(t *testing.T, key string) []*models.EndpointSummary {
	t.Helper()

	content, err := os.ReadFile(filepath.Join(p.reportDir, key))
	require.NoError(t, err)

	groups := endpointTableRegexp.FindSubmatch(content)
	require.Len(t, groups, 2, "endpoint table not found in report")

	var table []*models.EndpointSummary
	require.NoError(t, json.Unmarshal(groups[1], &table))
	return table
}

func accessLine(endpoint, latency string) string {
	return fmt.Sprintf(`1.169.137.128 -  - [29/Jun/2017:03:50:23 +0300] "GET %s HTTP/1.1" 200 1002 "-" "Configovod" "-" "1498697423-2118016444-4708-9752771" "712e90144abee9" %s`,
		endpoint, latency)
}

func TestAnalysisPipeline_WorkedExample(t *testing.T) {
	t.Parallel()

	p := newPipeline(t, 1000)
	p.writeLog(t, "nginx-access-ui.log-20170630.gz",
		accessLine("/api/a", "0.1"),
		accessLine("/api/b", "0.2"),
		"this line does not match",
		accessLine("/api/a", "0.3"),
	)
	p.writeLog(t, "nginx-access-ui.log-20170629", accessLine("/api/old", "9.0"))

	result, err := p.service.Analyze(context.Background(), runDate)
	require.NoError(t, err)
	assert.Equal(t, analyzers.OutcomeReportWritten, result.Outcome)
	assert.Equal(t, "nginx-access-ui.log-20170630.gz", result.Source.Key)
	assert.Equal(t, uint64(4), result.LinesRead)
	assert.Equal(t, uint64(3), result.LinesMatched)

	table := p.readTable(t, result.ReportKey)
	assert.Equal(t, []*models.EndpointSummary{
		{URL: "/api/a", Count: 2, CountPerc: 66.667, TimeSum: 0.4, TimePerc: 66.667, TimeAvg: 0.2, TimeMax: 0.3, TimeMed: 0.2},
		{URL: "/api/b", Count: 1, CountPerc: 33.333, TimeSum: 0.2, TimePerc: 33.333, TimeAvg: 0.2, TimeMax: 0.2, TimeMed: 0.2},
	}, table)
}

func TestAnalysisPipeline_SecondRunIsNoOp(t *testing.T) {
	t.Parallel()

	p := newPipeline(t, 1000)
	p.writeLog(t, "nginx-access-ui.log-20170630", accessLine("/api/a", "0.1"))

	first, err := p.service.Analyze(context.Background(), runDate)
	require.NoError(t, err)
	require.Equal(t, analyzers.OutcomeReportWritten, first.Outcome)

	reportPath := filepath.Join(p.reportDir, first.ReportKey)
	before, err := os.ReadFile(reportPath)
	require.NoError(t, err)

	// a newer log must not change an existing report
	p.writeLog(t, "nginx-access-ui.log-20170701", accessLine("/api/new", "5.0"))

	second, err := p.service.Analyze(context.Background(), runDate)
	require.NoError(t, err)
	assert.Equal(t, analyzers.OutcomeAlreadyProcessed, second.Outcome)
	assert.Equal(t, first.ReportKey, second.ReportKey)

	after, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	entries, err := os.ReadDir(p.reportDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestAnalysisPipeline_TopNCutoff(t *testing.T) {
	t.Parallel()

	p := newPipeline(t, 2)
	p.writeLog(t, "nginx-access-ui.log-20170630",
		accessLine("/api/slow", "3.0"),
		accessLine("/api/fast", "0.1"),
		accessLine("/api/medium", "1.0"),
		accessLine("/api/medium", "1.0"),
	)

	result, err := p.service.Analyze(context.Background(), runDate)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Endpoints)

	table := p.readTable(t, result.ReportKey)
	require.Len(t, table, 2)
	assert.Equal(t, "/api/slow", table[0].URL)
	assert.Equal(t, "/api/medium", table[1].URL)
}

func TestAnalysisPipeline_NoMatchingLines(t *testing.T) {
	t.Parallel()

	p := newPipeline(t, 1000)
	p.writeLog(t, "nginx-access-ui.log-20170630", "garbage", "more garbage")

	result, err := p.service.Analyze(context.Background(), runDate)
	require.NoError(t, err)
	assert.Equal(t, analyzers.OutcomeNoData, result.Outcome)
	assert.Equal(t, uint64(2), result.LinesRead)

	_, err = os.Stat(p.reportDir)
	assert.True(t, os.IsNotExist(err), "no report is written without data")
}

func TestAnalysisPipeline_NoCandidateFile(t *testing.T) {
	t.Parallel()

	p := newPipeline(t, 1000)
	p.writeLog(t, "apache-access.log-20170630", accessLine("/api/a", "0.1"))

	result, err := p.service.Analyze(context.Background(), runDate)
	assert.Nil(t, result)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.True(t, svcErr.IsNotFound())
}
