// Package commands provides CLI command handlers for oasts.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/erraggy/oasts"
	"github.com/erraggy/oasts/internal/cliutil"
	"github.com/erraggy/oasts/parser"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured writes data to w in the specified format (json or yaml).
func OutputStructured(w io.Writer, data any, format string) error {
	var out []byte
	var err error

	switch format {
	case FormatJSON:
		out, err = json.MarshalIndent(data, "", "  ")
		out = append(out, '\n')
	case FormatYAML:
		out, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	cliutil.Writef(w, "%s", out)
	return nil
}

// FormatSpecPath returns a display-friendly path for the document.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSpecPath(specPath string) string {
	if specPath == StdinFilePath {
		return "<stdin>"
	}
	return specPath
}

// OutputSpecHeader writes the common document header.
func OutputSpecHeader(w io.Writer, specPath, version string) {
	cliutil.Writef(w, "oasts version: %s\n", oasts.Version())
	cliutil.Writef(w, "Specification: %s\n", FormatSpecPath(specPath))
	cliutil.Writef(w, "OAS Version: %s\n", version)
}

// OutputSpecStats writes the common document statistics.
func OutputSpecStats(w io.Writer, sourceSize int64, stats parser.DocumentStats, loadTime time.Duration) {
	cliutil.Writef(w, "Source Size: %s\n", parser.FormatBytes(sourceSize))
	cliutil.Writef(w, "Paths: %d\n", stats.PathCount)
	cliutil.Writef(w, "Operations: %d\n", stats.OperationCount)
	cliutil.Writef(w, "Schemas: %d\n", stats.SchemaCount)
	cliutil.Writef(w, "Load Time: %v\n", loadTime)
}

// RejectSymlinkOutput checks if the output path is a symlink and returns an error if so.
func RejectSymlinkOutput(cleanedPath string) error {
	info, err := os.Lstat(cleanedPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("commands: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("commands: refusing to write to symlink: %s", cleanedPath)
	}
	return nil
}

// newLogger returns a debug-level text logger on stderr when verbose is set.
func newLogger(verbose bool) parser.Logger {
	if !verbose {
		return parser.NopLogger{}
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return parser.NewSlogAdapter(slog.New(handler))
}

// parseSpec loads specPath, reading stdin when it is StdinFilePath.
func parseSpec(specPath string, logger parser.Logger) (*parser.ParseResult, error) {
	if specPath == StdinFilePath {
		result, err := parser.ParseWithOptions(
			parser.WithReader(os.Stdin),
			parser.WithSourceName("stdin"),
			parser.WithLogger(logger),
		)
		if err != nil {
			return nil, fmt.Errorf("parsing stdin: %w", err)
		}
		return result, nil
	}
	result, err := parser.ParseWithOptions(
		parser.WithFilePath(specPath),
		parser.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("parsing file: %w", err)
	}
	return result, nil
}
