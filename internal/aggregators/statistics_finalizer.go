package aggregators

import (
	"errors"
	"fmt"
	"sort"

	"log-analyzer/internal/models"

	"github.com/montanaflynn/stats"
)

// Precision is the number of decimal places of every derived float in a report.
const Precision = 3

var (
	ErrDivisionUndefined = errors.New("division undefined")
)

//go:generate mockgen -source=statistics_finalizer.go -destination=./mocks/statistics_finalizer_mock.go -package=mocks
type StatisticsFinalizer interface {
	// Finalize derives the report rows of a fully aggregated corpus. A corpus without
	// matched lines or without any request time yields a report with no endpoints.
	Finalize(corpus *models.Corpus) (*models.Report, error)
}

type statisticsFinalizer struct{}

func NewStatisticsFinalizer() StatisticsFinalizer {
	return &statisticsFinalizer{}
}

func (f *statisticsFinalizer) Finalize(corpus *models.Corpus) (*models.Report, error) {
	report := &models.Report{
		TotalRequests: corpus.TotalMatchedLines,
		TotalTime:     round(corpus.TotalTime),
	}
	if corpus.TotalMatchedLines == 0 || corpus.TotalTime <= 0 {
		return report, nil
	}

	endpoints := make([]string, 0, len(corpus.Endpoints))
	for endpoint := range corpus.Endpoints {
		endpoints = append(endpoints, endpoint)
	}
	sort.Strings(endpoints)

	report.Endpoints = make([]*models.EndpointSummary, 0, len(endpoints))
	for _, endpoint := range endpoints {
		summary, err := summarizeEndpoint(corpus.Endpoints[endpoint], corpus)
		if err != nil {
			return nil, err
		}
		report.Endpoints = append(report.Endpoints, summary)
	}

	report.Clients = summarizeClients(corpus)
	return report, nil
}

func summarizeEndpoint(endpointStats *models.EndpointStats, corpus *models.Corpus) (*models.EndpointSummary, error) {
	if endpointStats.Count == 0 {
		return nil, fmt.Errorf("%w: endpoint %q has no samples", ErrDivisionUndefined, endpointStats.Endpoint)
	}

	samples := stats.Float64Data(endpointStats.Samples)
	median, err := samples.Median()
	if err != nil {
		return nil, fmt.Errorf("failed to compute median of %q: %w", endpointStats.Endpoint, err)
	}
	maxTime, err := samples.Max()
	if err != nil {
		return nil, fmt.Errorf("failed to compute max of %q: %w", endpointStats.Endpoint, err)
	}

	return &models.EndpointSummary{
		URL:       endpointStats.Endpoint,
		Count:     endpointStats.Count,
		CountPerc: round(float64(endpointStats.Count) / float64(corpus.TotalMatchedLines) * 100),
		TimeSum:   round(endpointStats.TotalTime),
		TimePerc:  round(endpointStats.TotalTime / corpus.TotalTime * 100),
		TimeAvg:   round(endpointStats.TotalTime / float64(endpointStats.Count)),
		TimeMax:   round(maxTime),
		TimeMed:   round(median),

		RawTimeSum: endpointStats.TotalTime,
	}, nil
}

// summarizeClients returns the client breakdown ordered by count desc, then name.
func summarizeClients(corpus *models.Corpus) []*models.ClientSummary {
	clients := make([]*models.ClientSummary, 0, len(corpus.RequestsByClient))
	for client, count := range corpus.RequestsByClient {
		clients = append(clients, &models.ClientSummary{
			Client:    client,
			Count:     count,
			CountPerc: round(float64(count) / float64(corpus.TotalMatchedLines) * 100),
		})
	}

	sort.Slice(clients, func(i, j int) bool {
		if clients[i].Count != clients[j].Count {
			return clients[i].Count > clients[j].Count
		}
		return clients[i].Client < clients[j].Client
	})
	return clients
}

func round(value float64) float64 {
	rounded, err := stats.Round(value, Precision)
	if err != nil {
		return value
	}
	return rounded
}
