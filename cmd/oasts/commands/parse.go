package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/erraggy/oasts/ast"
	"github.com/erraggy/oasts/extractor"
	"github.com/erraggy/oasts/internal/cliutil"
	"github.com/erraggy/oasts/parser"
)

// ParseFlags contains flags for the parse command
type ParseFlags struct {
	Format  string
	Quiet   bool
	Verbose bool
}

// ParseSummary is the structured output of the parse command.
type ParseSummary struct {
	Version    string             `json:"version"               yaml:"version"`
	Title      string             `json:"title,omitempty"       yaml:"title,omitempty"`
	APIVersion string             `json:"apiVersion,omitempty"  yaml:"apiVersion,omitempty"`
	Format     string             `json:"format"                yaml:"format"`
	Schemas    []SchemaEntry      `json:"schemas,omitempty"     yaml:"schemas,omitempty"`
	Operations []OperationEntry   `json:"operations,omitempty"  yaml:"operations,omitempty"`
	Issues     []string           `json:"issues,omitempty"      yaml:"issues,omitempty"`
	Stats      parseSummaryCounts `json:"stats"                 yaml:"stats"`
}

// SchemaEntry names one component schema and its AST kind.
type SchemaEntry struct {
	Name       string `json:"name"                 yaml:"name"`
	Kind       string `json:"kind"                 yaml:"kind"`
	Deprecated bool   `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
}

// OperationEntry identifies one operation.
type OperationEntry struct {
	OperationID string `json:"operationId"          yaml:"operationId"`
	Method      string `json:"method"               yaml:"method"`
	Path        string `json:"path"                 yaml:"path"`
	Deprecated  bool   `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
}

type parseSummaryCounts struct {
	Paths      int `json:"paths"      yaml:"paths"`
	Operations int `json:"operations" yaml:"operations"`
	Schemas    int `json:"schemas"    yaml:"schemas"`
}

// SetupParseFlags creates and configures a FlagSet for the parse command.
// Returns the FlagSet and a ParseFlags struct with bound flag variables.
func SetupParseFlags() (*flag.FlagSet, *ParseFlags) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	flags := &ParseFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the summary, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the summary, no diagnostic messages")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log parsing and extraction steps to stderr")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: oasts parse [flags] <file|->\n\n")
		cliutil.Writef(output, "Parse an OpenAPI 3.1 document and list its schemas and operations.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  oasts parse openapi.yaml\n")
		cliutil.Writef(output, "  oasts parse --format json openapi.json\n")
		cliutil.Writef(output, "  cat openapi.yaml | oasts parse -q --format yaml -\n")
		cliutil.Writef(output, "\nExit Codes:\n")
		cliutil.Writef(output, "  0    Parsing successful\n")
		cliutil.Writef(output, "  1    Parsing failed\n")
	}

	return fs, flags
}

// HandleParse executes the parse command
func HandleParse(args []string) error {
	fs, flags := SetupParseFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("parse command requires exactly one file path or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	specPath := fs.Arg(0)
	logger := newLogger(flags.Verbose)

	result, err := parseSpec(specPath, logger)
	if err != nil {
		return err
	}
	extracted, err := extractor.ExtractWithOptions(
		extractor.WithParsed(result),
		extractor.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("extracting declarations: %w", err)
	}

	if !flags.Quiet {
		cliutil.Writef(os.Stderr, "OpenAPI Document Parser\n")
		cliutil.Writef(os.Stderr, "=======================\n\n")
		OutputSpecHeader(os.Stderr, specPath, result.Version)
		OutputSpecStats(os.Stderr, result.SourceSize, result.Stats, result.LoadTime)
		cliutil.Writef(os.Stderr, "\n")
	}

	summary := summarize(result, extracted)
	if flags.Format != FormatText {
		return OutputStructured(os.Stdout, summary, flags.Format)
	}
	writeSummaryText(os.Stdout, summary)
	return nil
}

// summarize flattens a parse and extraction result into a ParseSummary.
func summarize(result *parser.ParseResult, extracted *extractor.Result) ParseSummary {
	summary := ParseSummary{
		Version: result.Version,
		Format:  string(result.SourceFormat),
		Stats: parseSummaryCounts{
			Paths:      result.Stats.PathCount,
			Operations: result.Stats.OperationCount,
			Schemas:    result.Stats.SchemaCount,
		},
	}
	if info := result.Document.Info; info != nil {
		summary.Title = info.Title
		summary.APIVersion = info.Version
	}
	for _, s := range extracted.Schemas {
		summary.Schemas = append(summary.Schemas, SchemaEntry{
			Name:       s.Name,
			Kind:       string(ast.KindOf(s.AST)),
			Deprecated: s.Deprecated,
		})
	}
	for _, op := range extracted.Operations {
		summary.Operations = append(summary.Operations, OperationEntry{
			OperationID: op.OperationID,
			Method:      op.Method,
			Path:        op.Path,
			Deprecated:  op.Deprecated,
		})
	}
	for _, issue := range extracted.Issues {
		summary.Issues = append(summary.Issues, issue.String())
	}
	return summary
}

func writeSummaryText(w io.Writer, s ParseSummary) {
	if s.Title != "" {
		cliutil.Writef(w, "Title: %s\n", s.Title)
	}
	if s.APIVersion != "" {
		cliutil.Writef(w, "Version: %s\n", s.APIVersion)
	}

	cliutil.Writef(w, "\nSchemas (%d):\n", len(s.Schemas))
	for _, schema := range s.Schemas {
		cliutil.Writef(w, "  %-24s %s%s\n", schema.Name, schema.Kind, deprecatedSuffix(schema.Deprecated))
	}

	cliutil.Writef(w, "\nOperations (%d):\n", len(s.Operations))
	for _, op := range s.Operations {
		cliutil.Writef(w, "  %-7s %-32s %s%s\n", strings.ToUpper(op.Method), op.Path, op.OperationID, deprecatedSuffix(op.Deprecated))
	}

	if len(s.Issues) > 0 {
		cliutil.Writef(w, "\nIssues (%d):\n", len(s.Issues))
		for _, issue := range s.Issues {
			cliutil.Writef(w, "  %s\n", issue)
		}
	}
}

func deprecatedSuffix(deprecated bool) string {
	if deprecated {
		return " (deprecated)"
	}
	return ""
}
