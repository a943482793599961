package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Loader reads a sample catalogue dataset from some backing store.
type Loader interface {
	// Load reads and decodes a sample catalogue file.
	Load(ctx context.Context, path string) (*SampleData, error)
}

// fileLoader implements Loader for local JSON files.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based sample catalogue loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "sample-loader").Logger(),
	}
}

// Load reads a JSON sample catalogue file.
func (l *fileLoader) Load(ctx context.Context, path string) (*SampleData, error) {
	l.logger.Info().Str("file", path).Msg("loading sample catalogue")

	file, err := os.Open(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open sample catalogue")
		return nil, fmt.Errorf("failed to open sample catalogue %s: %w", path, err)
	}
	defer file.Close()

	var data SampleData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to decode sample catalogue")
		return nil, fmt.Errorf("failed to decode sample catalogue %s: %w", path, err)
	}

	if len(data.Products) == 0 {
		return nil, fmt.Errorf("sample catalogue %s contains no products", path)
	}

	l.logger.Info().
		Str("file", path).
		Int("products", len(data.Products)).
		Int("categories", len(data.Categories)).
		Msg("sample catalogue loaded")

	return &data, nil
}

// fallbackLoader tries S3 first, then falls back to the local file system.
type fallbackLoader struct {
	s3Loader   Loader
	fileLoader Loader
	s3Key      string
	s3Enabled  bool
	logger     zerolog.Logger
}

// NewFallbackLoader creates a loader that tries S3 first, then falls back to
// the local file system. If s3Loader is nil, only the file loader is used.
func NewFallbackLoader(s3Loader, fileLoader Loader, s3Key string, s3Enabled bool, logger zerolog.Logger) Loader {
	return &fallbackLoader{
		s3Loader:   s3Loader,
		fileLoader: fileLoader,
		s3Key:      s3Key,
		s3Enabled:  s3Enabled,
		logger:     logger.With().Str("component", "fallback-loader").Logger(),
	}
}

// Load attempts S3 with the configured object key, then the local path.
func (l *fallbackLoader) Load(ctx context.Context, path string) (*SampleData, error) {
	if l.s3Enabled && l.s3Loader != nil {
		data, err := l.s3Loader.Load(ctx, l.s3Key)
		if err == nil {
			return data, nil
		}
		l.logger.Warn().
			Err(err).
			Str("s3_key", l.s3Key).
			Str("local_fallback", path).
			Msg("S3 load failed, falling back to local file")
	}

	return l.fileLoader.Load(ctx, path)
}
