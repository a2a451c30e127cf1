package reports

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"log-analyzer/internal/shared/filestorages"
)

var (
	ErrReportAlreadyExists = errors.New("report already exists")
	ErrReportNotFound      = errors.New("report not found")
)

// ReportStore keeps one report per calendar date. Create never replaces an existing
// report, which makes a second run on the same date detectable.
//
//go:generate mockgen -source=report_store.go -destination=./mocks/report_store_mock.go -package=mocks
type ReportStore interface {
	Exists(ctx context.Context, date time.Time) (bool, error)
	// Create stores content as the report of date and returns its key.
	Create(ctx context.Context, date time.Time, content []byte) (string, error)
	Get(ctx context.Context, date time.Time) ([]byte, error)
	// List returns the dates that have a report, most recent first.
	List(ctx context.Context) ([]time.Time, error)
}

type reportStore struct {
	fileStorage filestorages.FileStorage
}

func NewReportStore(fileStorage filestorages.FileStorage) ReportStore {
	return &reportStore{fileStorage: fileStorage}
}

func (s *reportStore) Exists(ctx context.Context, date time.Time) (bool, error) {
	key := ReportKey(date)
	exists, err := s.fileStorage.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to check report %q: %w", s.fileStorage.Path(key), err)
	}
	return exists, nil
}

func (s *reportStore) Create(ctx context.Context, date time.Time, content []byte) (string, error) {
	key := ReportKey(date)
	err := s.fileStorage.Create(ctx, key, bytes.NewReader(content))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return "", ErrReportAlreadyExists
		}
		return "", fmt.Errorf("failed to write report %q: %w", s.fileStorage.Path(key), err)
	}
	return key, nil
}

func (s *reportStore) Get(ctx context.Context, date time.Time) ([]byte, error) {
	key := ReportKey(date)
	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to open report %q: %w", s.fileStorage.Path(key), err)
	}
	defer readCloser.Close()

	content, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read report %q: %w", s.fileStorage.Path(key), err)
	}
	return content, nil
}

func (s *reportStore) List(ctx context.Context) ([]time.Time, error) {
	keys, err := s.fileStorage.List(ctx)
	if err != nil {
		if errors.Is(err, filestorages.ErrRootDirNotFound) {
			return []time.Time{}, nil
		}
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	dates := make([]time.Time, 0, len(keys))
	for _, key := range keys {
		if date, ok := reportDateFromKey(key); ok {
			dates = append(dates, date)
		}
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].After(dates[j])
	})
	return dates, nil
}
