package extractor

import (
	"fmt"
	"time"

	"github.com/erraggy/oasts/ast"
	"github.com/erraggy/oasts/internal/issues"
	"github.com/erraggy/oasts/parser"
)

// NamedSchema is one entry of components.schemas lowered to an AST.
type NamedSchema struct {
	Name        string
	AST         ast.Node
	Description string
	Deprecated  bool
}

// Result is the output of an extraction.
type Result struct {
	// SourcePath is copied from the parse result
	SourcePath string
	// Version is the declared openapi version
	Version string
	// Schemas holds every components.schemas entry in document order
	Schemas []NamedSchema
	// Operations holds every path/method pair in document order
	Operations []Operation
	// Issues lists degradations found while extracting
	Issues []Issue
	// SchemaCount is len(Schemas)
	SchemaCount int
	// OperationCount is len(Operations)
	OperationCount int
	// WarningCount is the number of warning issues
	WarningCount int
	// InfoCount is the number of informational issues
	InfoCount int
	// ExtractTime is the time spent extracting
	ExtractTime time.Duration
}

// Schema returns the named schema, if present.
func (r *Result) Schema(name string) (NamedSchema, bool) {
	for _, s := range r.Schemas {
		if s.Name == name {
			return s, true
		}
	}
	return NamedSchema{}, false
}

// Extractor runs the schema and operation parsers over a parsed document.
type Extractor struct {
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger parser.Logger
	// SkipOperations extracts schemas only.
	SkipOperations bool
}

// New creates a new Extractor instance with default settings
func New() *Extractor {
	return &Extractor{}
}

// Extract lowers every component schema and every operation of pr.
//
// Reference errors in operations (dangling, non-local or circular $ref
// pointers to parameters, request bodies or responses) are returned as
// errors; the result is then nil.
func (e *Extractor) Extract(pr *parser.ParseResult) (*Result, error) {
	if pr == nil || pr.Document == nil {
		return nil, fmt.Errorf("extractor: parse result has no document")
	}
	log := parser.LoggerOrNop(e.Logger).With("source", pr.SourcePath)
	start := time.Now()

	result := &Result{SourcePath: pr.SourcePath, Version: pr.Version}

	var sp SchemaParser
	for name, schema := range pr.Document.Schemas().All() {
		ns := NamedSchema{
			Name: name,
			AST:  sp.ParseAt(schema, issues.FormatPath("components", "schemas", name)),
		}
		if schema != nil {
			ns.Description = schema.Description
			ns.Deprecated = schema.Deprecated
		}
		result.Schemas = append(result.Schemas, ns)
	}
	result.Issues = append(result.Issues, sp.Issues...)

	if !e.SkipOperations {
		op := NewOperationParser(pr.Resolver())
		ops, err := op.Parse(pr.Document.Paths)
		if err != nil {
			return nil, fmt.Errorf("extractor: %w", err)
		}
		result.Operations = ops
		result.Issues = append(result.Issues, op.Issues...)
		result.Issues = append(result.Issues, duplicateOperationIDs(ops)...)
	}

	for _, issue := range result.Issues {
		log.Debug("extraction issue", "path", issue.Path, "severity", issue.Severity.String(), "message", issue.Message)
	}

	result.SchemaCount = len(result.Schemas)
	result.OperationCount = len(result.Operations)
	result.WarningCount = countBySeverity(result.Issues, SeverityWarning)
	result.InfoCount = countBySeverity(result.Issues, SeverityInfo)
	result.ExtractTime = time.Since(start)

	log.Info("extracted declarations",
		"schemas", result.SchemaCount,
		"operations", result.OperationCount,
		"warnings", result.WarningCount,
	)
	return result, nil
}

// duplicateOperationIDs warns about operations sharing an identifier, which
// would produce clashing declarations.
func duplicateOperationIDs(ops []Operation) []Issue {
	first := make(map[string]Operation, len(ops))
	var out []Issue
	for _, op := range ops {
		prev, dup := first[op.OperationID]
		if !dup {
			first[op.OperationID] = op
			continue
		}
		out = append(out, Issue{
			Path:             issues.FormatPath("paths", op.Path, op.Method, "operationId"),
			Message:          fmt.Sprintf("operationId %q is also used by %s %s", op.OperationID, prev.Method, prev.Path),
			Severity:         SeverityWarning,
			OperationContext: &OperationContext{Method: op.Method, Path: op.Path, OperationID: op.OperationID},
		})
	}
	return out
}
