package parser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/erraggy/oasts/oaserrors"
	"go.yaml.in/yaml/v4"
)

// Parser loads OpenAPI 3.1 documents.
type Parser struct {
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	return LoggerOrNop(p.Logger)
}

// SourceFormat represents the format of the source document
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// ParseResult contains a decoded document and metadata about its source.
//
// Callers should treat ParseResult as read-only after parsing; the extractor
// and generator never modify it.
type ParseResult struct {
	// SourcePath is the document's input source path that it was read from.
	// Note: if the source was not a file path, this will be set to the name of the method
	// and end in '.yaml' or '.json' based on the detected format
	SourcePath string
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat SourceFormat
	// Version is the declared openapi version string (e.g., "3.1.0")
	Version string
	// OASVersion is the enumerated version of the OpenAPI specification
	OASVersion OASVersion
	// Document is the decoded document
	Document *Document
	// LoadTime is the time taken to load the source data
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// Stats contains statistical information about the document
	Stats DocumentStats
}

// Resolver returns a reference resolver over the decoded document.
func (pr *ParseResult) Resolver() *Resolver {
	if pr == nil {
		return NewResolver(nil)
	}
	return pr.Document.Resolver()
}

// Parse parses an OpenAPI document from a local file
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := os.ReadFile(specPath)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read file: %w", err)
	}

	res, err := p.parse(data, specPath)
	if err != nil {
		return nil, err
	}
	res.SourcePath = specPath
	res.LoadTime = loadTime
	if format := detectFormatFromPath(specPath); format != SourceFormatUnknown {
		res.SourceFormat = format
	}
	return res, nil
}

// ParseReader parses an OpenAPI document from an io.Reader
// Note: since there is no actual ParseResult.SourcePath, it will be set to: ParseReader.yaml or ParseReader.json
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read data: %w", err)
	}
	res, err := p.parseNamed(data, "ParseReader")
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	return res, nil
}

// ParseBytes parses an OpenAPI document from a byte slice
// Note: since there is no actual ParseResult.SourcePath, it will be set to: ParseBytes.yaml or ParseBytes.json
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	return p.parseNamed(data, "ParseBytes")
}

// parseNamed parses in-memory data and names the source after the method and detected format.
func (p *Parser) parseNamed(data []byte, method string) (*ParseResult, error) {
	format := detectFormatFromContent(data)
	name := method + ".yaml"
	if format == SourceFormatJSON {
		name = method + ".json"
	}
	res, err := p.parse(data, name)
	if err != nil {
		return nil, err
	}
	res.SourcePath = name
	return res, nil
}

// parse decodes data, checks the declared version, and builds the result.
// sourceName only labels errors and log lines.
func (p *Parser) parse(data []byte, sourceName string) (*ParseResult, error) {
	log := p.log().With("source", sourceName)
	log.Debug("decoding document", "size", FormatBytes(int64(len(data))))

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parser: %w", newParseError(sourceName, "failed to decode document", err))
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("parser: %w", &oaserrors.ParseError{Path: sourceName, Message: "document is empty"})
	}
	body := resolveAlias(root.Content[0])
	if body.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parser: %w", &oaserrors.ParseError{
			Path:    sourceName,
			Line:    body.Line,
			Column:  body.Column,
			Message: fmt.Sprintf("document root must be a mapping, got %s", kindName(body.Kind)),
		})
	}

	// The version check runs before structural decoding so an unsupported
	// document fails with a VersionError rather than a shape mismatch.
	declared := ""
	if v := mappingValue(body, "openapi"); v != nil {
		declared = v.Value
	}
	oasVersion, err := checkVersion(declared)
	if err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}

	doc := &Document{}
	if err := body.Decode(doc); err != nil {
		return nil, fmt.Errorf("parser: %w", newParseError(sourceName, "invalid document structure", err))
	}
	doc.root = body

	res := &ParseResult{
		SourceFormat: detectFormatFromContent(data),
		Version:      declared,
		OASVersion:   oasVersion,
		Document:     doc,
		SourceSize:   int64(len(data)),
		Stats:        GetDocumentStats(doc),
	}
	log.Debug("decoded document",
		"version", declared,
		"paths", res.Stats.PathCount,
		"operations", res.Stats.OperationCount,
		"schemas", res.Stats.SchemaCount,
	)
	return res, nil
}

// newParseError wraps a yaml error, lifting the first line/column it reports.
func newParseError(path, message string, err error) *oaserrors.ParseError {
	pe := &oaserrors.ParseError{Path: path, Message: message, Cause: err}
	var loadErr *yaml.LoadError
	if errors.As(err, &loadErr) {
		pe.Line = loadErr.Line
		pe.Column = loadErr.Column
	}
	return pe
}
