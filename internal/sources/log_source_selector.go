package sources

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"log-analyzer/internal/models"
	"log-analyzer/internal/shared/filestorages"
	"log-analyzer/internal/shared/loggers"
)

var (
	ErrNoCandidateFile = errors.New("no candidate log file")
)

//go:generate mockgen -source=log_source_selector.go -destination=./mocks/log_source_selector_mock.go -package=mocks
type LogSourceSelector interface {
	// SelectLatest returns the eligible log file with the most recent date token.
	// It returns ErrNoCandidateFile when the log directory holds none.
	SelectLatest(ctx context.Context) (*models.LogSource, error)
}

type logSourceSelector struct {
	logStorage filestorages.FileStorage
	convention NamingConvention
}

func NewLogSourceSelector(logStorage filestorages.FileStorage, convention NamingConvention) LogSourceSelector {
	return &logSourceSelector{logStorage: logStorage, convention: convention}
}

func (s *logSourceSelector) SelectLatest(ctx context.Context) (*models.LogSource, error) {
	logger := loggers.Ctx(ctx)

	keys, err := s.logStorage.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list log directory %q: %w", s.logStorage.Path("."), err)
	}

	candidates := make([]*models.LogSource, 0, len(keys))
	for _, key := range keys {
		source, ok := s.convention.Parse(key)
		if !ok {
			logger.Debug().Str(loggers.FieldLogSource, key).Msg("skipping non-eligible file")
			continue
		}
		candidates = append(candidates, source)
	}
	if len(candidates) == 0 {
		return nil, ErrNoCandidateFile
	}

	// keys arrive sorted by name, so equal dates keep name order
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Date.Before(candidates[j].Date)
	})

	latest := candidates[len(candidates)-1]
	logger.Debug().Msgf("selected %s out of %d candidates", latest.Key, len(candidates))
	return latest, nil
}
