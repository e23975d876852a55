package generator

import (
	"fmt"

	"github.com/erraggy/oasts/internal/options"
	"github.com/erraggy/oasts/oaserrors"
	"github.com/erraggy/oasts/parser"
)

// Option is a function that configures a generate operation
type Option func(*generateConfig) error

// generateConfig holds configuration for a generate operation
type generateConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	parsed   *parser.ParseResult
	bytes    []byte

	// Configuration options
	singleFile       bool
	modelsAlias      string
	header           string
	readOnlyModifier bool
	strictMode       bool
	includeInfo      bool
	logger           parser.Logger
}

// GenerateWithOptions renders declarations using functional options.
// This provides a flexible, extensible API that combines input source selection
// and configuration in a single function call.
//
// Example:
//
//	result, err := generator.GenerateWithOptions(
//	    generator.WithFilePath("openapi.yaml"),
//	    generator.WithSingleFile(true),
//	)
func GenerateWithOptions(opts ...Option) (*GenerateResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("generator: invalid options: %w", err)
	}

	g := &Generator{
		SingleFile:       cfg.singleFile,
		ModelsAlias:      cfg.modelsAlias,
		Header:           cfg.header,
		ReadOnlyModifier: cfg.readOnlyModifier,
		StrictMode:       cfg.strictMode,
		IncludeInfo:      cfg.includeInfo,
		Logger:           cfg.logger,
	}

	// Route to appropriate generation method based on input source
	switch {
	case cfg.filePath != nil:
		return g.Generate(*cfg.filePath)
	case cfg.parsed != nil:
		return g.GenerateParsed(cfg.parsed)
	default:
		parsed, err := parser.ParseWithOptions(parser.WithBytes(cfg.bytes), parser.WithLogger(cfg.logger))
		if err != nil {
			return nil, fmt.Errorf("generator: failed to parse specification: %w", err)
		}
		return g.GenerateParsed(parsed)
	}
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*generateConfig, error) {
	cfg := &generateConfig{
		modelsAlias: DefaultModelsAlias,
		includeInfo: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"generator: must specify an input source (use WithFilePath, WithParsed, or WithBytes)",
		"generator: must specify exactly one input source",
		cfg.filePath != nil, cfg.parsed != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *generateConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithParsed specifies a parsed ParseResult as the input source
func WithParsed(result *parser.ParseResult) Option {
	return func(cfg *generateConfig) error {
		if result == nil {
			return &oaserrors.ConfigError{Option: "WithParsed", Message: "parse result cannot be nil"}
		}
		cfg.parsed = result
		return nil
	}
}

// WithBytes specifies raw document bytes as the input source
func WithBytes(data []byte) Option {
	return func(cfg *generateConfig) error {
		if data == nil {
			return &oaserrors.ConfigError{Option: "WithBytes", Message: "bytes cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// WithSingleFile emits one types.ts instead of three files
// Default: false
func WithSingleFile(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.singleFile = enabled
		return nil
	}
}

// WithModelsAlias sets the namespace operations.ts imports models.ts under
// Default: "models"
func WithModelsAlias(alias string) Option {
	return func(cfg *generateConfig) error {
		if err := ValidateModelsAlias(alias); err != nil {
			return err
		}
		cfg.modelsAlias = alias
		return nil
	}
}

// WithHeader sets the banner written at the top of every file
// Default: "" (no banner)
func WithHeader(header string) Option {
	return func(cfg *generateConfig) error {
		cfg.header = header
		return nil
	}
}

// WithReadOnlyModifier marks read-only properties with "readonly"
// Default: false
func WithReadOnlyModifier(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.readOnlyModifier = enabled
		return nil
	}
}

// WithStrictMode enables or disables strict mode (fail on warnings)
// Default: false
func WithStrictMode(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithIncludeInfo enables or disables informational messages
// Default: true
func WithIncludeInfo(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.includeInfo = enabled
		return nil
	}
}

// WithLogger sets a structured logger for the whole pipeline
func WithLogger(l parser.Logger) Option {
	return func(cfg *generateConfig) error {
		cfg.logger = l
		return nil
	}
}

// ValidateModelsAlias checks that alias can name the models.ts namespace import.
func ValidateModelsAlias(alias string) error {
	if alias == "" {
		return &oaserrors.ConfigError{Option: "WithModelsAlias", Message: "models alias cannot be empty"}
	}
	if id := tsIdentifier(alias); id != alias {
		return &oaserrors.ConfigError{Option: "WithModelsAlias", Value: alias, Message: "models alias must be a TypeScript identifier"}
	}
	return nil
}
