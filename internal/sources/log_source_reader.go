package sources

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"log-analyzer/internal/models"
	"log-analyzer/internal/shared/filestorages"

	"github.com/klauspost/compress/gzip"
)

// LineReader yields the text lines of one log source, without line terminators.
type LineReader interface {
	// ReadLine returns io.EOF once every line has been returned.
	ReadLine() (string, error)
	Close() error
}

//go:generate mockgen -source=log_source_reader.go -destination=./mocks/log_source_reader_mock.go -package=mocks
type LogSourceReader interface {
	Open(ctx context.Context, source *models.LogSource) (LineReader, error)
}

type logSourceReader struct {
	logStorage filestorages.FileStorage
}

func NewLogSourceReader(logStorage filestorages.FileStorage) LogSourceReader {
	return &logSourceReader{logStorage: logStorage}
}

func (r *logSourceReader) Open(ctx context.Context, source *models.LogSource) (LineReader, error) {
	file, err := r.logStorage.Get(ctx, source.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %q: %w", r.logStorage.Path(source.Key), err)
	}
	if !source.Compressed {
		return NewLineReader(file, file), nil
	}

	gz, err := gzip.NewReader(file)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open gzip stream %q: %w", r.logStorage.Path(source.Key), err)
	}
	return NewLineReader(gz, gz, file), nil
}

type lineReader struct {
	reader  *bufio.Reader
	closers []io.Closer
}

// NewLineReader reads lines of any length from r. Closing it closes closers in order.
func NewLineReader(r io.Reader, closers ...io.Closer) LineReader {
	return &lineReader{reader: bufio.NewReader(r), closers: closers}
}

func (r *lineReader) ReadLine() (string, error) {
	line, err := r.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (r *lineReader) Close() error {
	var errs []error
	for _, closer := range r.closers {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
