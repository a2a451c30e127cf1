package aggregators

import (
	"context"
	"errors"
	"fmt"
	"io"

	"log-analyzer/internal/models"
	"log-analyzer/internal/parsers"
	"log-analyzer/internal/shared/loggers"
	"log-analyzer/internal/sources"

	"github.com/mileusna/useragent"
)

const (
	unknownClient = "unknown"
	// lines read between two cancellation checks
	ctxCheckInterval = 1024
)

//go:generate mockgen -source=stream_aggregator.go -destination=./mocks/stream_aggregator_mock.go -package=mocks
type StreamAggregator interface {
	// Aggregate folds every matched line of lines into a new Corpus. Lines that do not
	// match are counted in Corpus.TotalLines only. It stops with ctx.Err() once ctx is done.
	Aggregate(ctx context.Context, lines sources.LineReader) (*models.Corpus, error)
}

type streamAggregator struct {
	matcher parsers.LogLineMatcher
}

func NewStreamAggregator(matcher parsers.LogLineMatcher) StreamAggregator {
	return &streamAggregator{matcher: matcher}
}

func (a *streamAggregator) Aggregate(ctx context.Context, lines sources.LineReader) (*models.Corpus, error) {
	corpus := models.NewEmptyCorpus()

	for {
		if corpus.TotalLines%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("aggregation stopped after %d lines: %w", corpus.TotalLines, err)
			}
		}

		raw, err := lines.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read line %d: %w", corpus.TotalLines+1, err)
		}

		corpus.TotalLines++
		line, ok := a.matcher.Match(raw)
		if !ok {
			continue
		}
		Accumulate(corpus, line)
	}

	loggers.Ctx(ctx).Debug().
		Uint64(loggers.FieldLinesRead, corpus.TotalLines).
		Uint64(loggers.FieldLinesMatched, corpus.TotalMatchedLines).
		Msgf("aggregated %d endpoints", len(corpus.Endpoints))

	return corpus, nil
}

// Accumulate adds one matched line to corpus. It is the only way a Corpus is mutated.
func Accumulate(corpus *models.Corpus, line *models.LogLine) {
	endpointStats, exists := corpus.Endpoints[line.Endpoint]
	if !exists {
		endpointStats = models.NewEndpointStats(line.Endpoint)
		corpus.Endpoints[line.Endpoint] = endpointStats
	}
	endpointStats.Add(line.Latency)

	corpus.TotalMatchedLines++
	corpus.TotalTime += line.Latency
	corpus.RequestsByClient[normalizeUserAgent(line.UserAgent)]++
}

// normalizeUserAgent parses user agent to extract family, or returns the raw value if parsing fails.
func normalizeUserAgent(ua string) string {
	if ua == "" {
		return unknownClient
	}

	parsed := useragent.Parse(ua)
	if parsed.Name != "" {
		return parsed.Name
	}
	return ua
}
