package generator

import (
	"fmt"
	"time"

	"github.com/erraggy/oasts/extractor"
	"github.com/erraggy/oasts/internal/issues"
	"github.com/erraggy/oasts/internal/severity"
	"github.com/erraggy/oasts/parser"
)

// Severity indicates the severity level of a generation issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about generation choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates declarations that may not type-check as intended
	SeverityWarning = severity.SeverityWarning
	// SeverityError indicates errors
	SeverityError = severity.SeverityError
)

// GenerateIssue represents a single extraction or generation issue
type GenerateIssue = issues.Issue

// OperationContext identifies the operation an issue belongs to
type OperationContext = issues.OperationContext

// DefaultModelsAlias is the namespace import operations.ts uses for models.ts.
const DefaultModelsAlias = "models"

// GeneratedFile represents a single generated file
type GeneratedFile struct {
	// Name is the file name (e.g., "models.ts", "operations.ts")
	Name string
	// Content is the generated TypeScript source
	Content []byte
}

// GenerateResult contains the results of generating declarations from an OpenAPI document
type GenerateResult struct {
	// Files contains all generated files
	Files []GeneratedFile
	// SourcePath is the path of the source document
	SourcePath string
	// SourceVersion is the declared source OAS version string
	SourceVersion string
	// SourceOASVersion is the enumerated source OAS version
	SourceOASVersion parser.OASVersion
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat parser.SourceFormat
	// Issues contains extraction and generation issues
	Issues []GenerateIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// LoadTime is the time taken to load the source data
	LoadTime time.Duration
	// GenerateTime is the time taken to extract and render declarations
	GenerateTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// Stats contains statistical information about the source document
	Stats parser.DocumentStats
	// GeneratedTypes is the count of schema declarations generated
	GeneratedTypes int
	// GeneratedOperations is the count of operation namespaces generated
	GeneratedOperations int
}

// HasWarnings returns true if there are any warnings
func (r *GenerateResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// GetFile returns the generated file with the given name, or nil if not found
func (r *GenerateResult) GetFile(name string) *GeneratedFile {
	for i := range r.Files {
		if r.Files[i].Name == name {
			return &r.Files[i]
		}
	}
	return nil
}

// Generator renders TypeScript declarations from OpenAPI 3.1 documents
type Generator struct {
	// SingleFile emits one types.ts instead of responses.ts, models.ts and
	// operations.ts.
	SingleFile bool

	// ModelsAlias is the namespace operations.ts imports models.ts under.
	// If empty, defaults to "models". Ignored when SingleFile is set.
	ModelsAlias string

	// Header is a banner written as line comments at the top of every file.
	// Empty means no banner.
	Header string

	// ReadOnlyModifier marks read-only properties with "readonly".
	ReadOnlyModifier bool

	// StrictMode causes generation to fail when any warning is reported
	StrictMode bool

	// IncludeInfo determines whether to include informational messages
	IncludeInfo bool

	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger parser.Logger
}

// New creates a new Generator instance with default settings
func New() *Generator {
	return &Generator{
		ModelsAlias: DefaultModelsAlias,
		IncludeInfo: true,
	}
}

// Generate parses the document at specPath and renders its declarations
func (g *Generator) Generate(specPath string) (*GenerateResult, error) {
	p := parser.New()
	p.Logger = g.Logger

	parseResult, err := p.Parse(specPath)
	if err != nil {
		return nil, fmt.Errorf("generator: failed to parse specification: %w", err)
	}
	return g.GenerateParsed(parseResult)
}

// GenerateParsed renders declarations from an already-parsed document
func (g *Generator) GenerateParsed(parseResult *parser.ParseResult) (*GenerateResult, error) {
	if parseResult == nil {
		return nil, fmt.Errorf("generator: parse result cannot be nil")
	}
	startTime := time.Now()

	extracted, err := (&extractor.Extractor{Logger: g.Logger}).Extract(parseResult)
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}

	result := &GenerateResult{
		SourcePath:       parseResult.SourcePath,
		SourceVersion:    parseResult.Version,
		SourceOASVersion: parseResult.OASVersion,
		SourceFormat:     parseResult.SourceFormat,
		LoadTime:         parseResult.LoadTime,
		SourceSize:       parseResult.SourceSize,
		Stats:            parseResult.Stats,
	}
	files, genIssues, err := g.render(extracted)
	if err != nil {
		return nil, err
	}
	result.Files = files
	result.Issues = append(append(result.Issues, extracted.Issues...), genIssues...)
	result.GeneratedTypes = extracted.SchemaCount
	result.GeneratedOperations = extracted.OperationCount

	result.GenerateTime = time.Since(startTime)
	updateCounts(result)

	parser.LoggerOrNop(g.Logger).Debug("generated declarations",
		"source", result.SourcePath,
		"files", len(result.Files),
		"types", result.GeneratedTypes,
		"operations", result.GeneratedOperations,
	)

	// In strict mode, fail on any warnings
	if g.StrictMode && result.WarningCount > 0 {
		return result, fmt.Errorf("generator: generation failed in strict mode: %d warning(s)", result.WarningCount)
	}

	// Filter info messages if not included
	if !g.IncludeInfo {
		filtered := make([]GenerateIssue, 0, len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Severity != SeverityInfo {
				filtered = append(filtered, issue)
			}
		}
		result.Issues = filtered
		result.InfoCount = 0
	}

	return result, nil
}

// render executes the file templates for an extraction result.
func (g *Generator) render(extracted *extractor.Result) ([]GeneratedFile, []GenerateIssue, error) {
	b := newDeclarationBuilder(g, extracted)
	data := &FileData{
		Header: headerLines(g.Header),
		Models: b.buildModels(),
	}

	var names []string
	if g.SingleFile {
		data.Operations = b.buildOperations("")
		names = []string{TypesFile}
	} else {
		alias := g.ModelsAlias
		if alias == "" {
			alias = DefaultModelsAlias
		}
		data.Operations = b.buildOperations(alias + ".")
		data.Imports = b.operationImports(alias)
		names = []string{ResponsesFile, ModelsFile, OperationsFile}
	}

	files := make([]GeneratedFile, 0, len(names))
	for _, name := range names {
		content, err := executeTemplate(name+".tmpl", data)
		if err != nil {
			return nil, nil, fmt.Errorf("generator: failed to render %s: %w", name, err)
		}
		files = append(files, GeneratedFile{Name: name, Content: content})
	}
	return files, b.issues, nil
}

// updateCounts updates the issue counts in the result
func updateCounts(result *GenerateResult) {
	result.InfoCount = 0
	result.WarningCount = 0

	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityInfo:
			result.InfoCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}
}
