package extractor

import (
	"fmt"

	"github.com/erraggy/oasts/internal/options"
	"github.com/erraggy/oasts/parser"
)

// Option is a function that configures an extraction
type Option func(*extractConfig) error

type extractConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	parsed   *parser.ParseResult
	bytes    []byte

	logger         parser.Logger
	skipOperations bool
}

// ExtractWithOptions parses (when needed) and extracts a document using
// functional options.
//
// Example:
//
//	result, err := extractor.ExtractWithOptions(
//	    extractor.WithFilePath("openapi.yaml"),
//	)
func ExtractWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("extractor: invalid options: %w", err)
	}

	parsed := cfg.parsed
	if parsed == nil {
		popts := []parser.Option{parser.WithLogger(cfg.logger)}
		if cfg.filePath != nil {
			popts = append(popts, parser.WithFilePath(*cfg.filePath))
		} else {
			popts = append(popts, parser.WithBytes(cfg.bytes))
		}
		parsed, err = parser.ParseWithOptions(popts...)
		if err != nil {
			return nil, err
		}
	}

	e := &Extractor{Logger: cfg.logger, SkipOperations: cfg.skipOperations}
	return e.Extract(parsed)
}

func applyOptions(opts ...Option) (*extractConfig, error) {
	cfg := &extractConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"extractor: must specify an input source (use WithFilePath, WithParsed, or WithBytes)",
		"extractor: must specify exactly one input source",
		cfg.filePath != nil, cfg.parsed != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithFilePath specifies a file to parse and extract
func WithFilePath(path string) Option {
	return func(cfg *extractConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithParsed specifies an already parsed document
func WithParsed(result *parser.ParseResult) Option {
	return func(cfg *extractConfig) error {
		if result == nil {
			return fmt.Errorf("extractor: parse result cannot be nil")
		}
		cfg.parsed = result
		return nil
	}
}

// WithBytes specifies raw document bytes to parse and extract
func WithBytes(data []byte) Option {
	return func(cfg *extractConfig) error {
		if data == nil {
			return fmt.Errorf("extractor: bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithLogger sets a structured logger for the parse and extract steps
func WithLogger(l parser.Logger) Option {
	return func(cfg *extractConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithSkipOperations extracts schemas only
func WithSkipOperations(skip bool) Option {
	return func(cfg *extractConfig) error {
		cfg.skipOperations = skip
		return nil
	}
}
