package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/erraggy/oasts"
	"github.com/erraggy/oasts/generator"
	"github.com/erraggy/oasts/internal/cliutil"
	"github.com/erraggy/oasts/parser"
	"golang.org/x/tools/txtar"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	Output      string
	SingleFile  bool
	ModelsAlias string
	Header      string
	ReadOnly    bool
	Strict      bool
	NoWarnings  bool
	Quiet       bool
	Verbose     bool
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
// Returns the FlagSet and a GenerateFlags struct with bound flag variables.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &GenerateFlags{}

	fs.StringVar(&flags.Output, "o", "", "output directory for generated files (default: print to stdout)")
	fs.StringVar(&flags.Output, "output", "", "output directory for generated files (default: print to stdout)")
	fs.BoolVar(&flags.SingleFile, "single-file", false, "emit a single types.ts instead of responses.ts, models.ts and operations.ts")
	fs.StringVar(&flags.ModelsAlias, "models-alias", generator.DefaultModelsAlias, "namespace operations.ts imports models.ts under")
	fs.StringVar(&flags.Header, "header", "", "banner comment written at the top of every file")
	fs.BoolVar(&flags.ReadOnly, "readonly", false, "mark readOnly properties with the readonly modifier")
	fs.BoolVar(&flags.Strict, "strict", false, "fail on any generation warnings")
	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress info messages")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: no summary, only issues and errors")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: no summary, only issues and errors")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log parsing, extraction and rendering steps to stderr")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: oasts generate [flags] <file|->\n\n")
		cliutil.Writef(output, "Generate TypeScript declarations from an OpenAPI 3.1 document.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  oasts generate -o ./src/api openapi.yaml\n")
		cliutil.Writef(output, "  oasts generate --single-file openapi.yaml > types.ts\n")
		cliutil.Writef(output, "  oasts generate --models-alias schema --readonly -o ./api openapi.json\n")
		cliutil.Writef(output, "  cat openapi.yaml | oasts generate -o ./api -\n")
		cliutil.Writef(output, "\nOutput:\n")
		cliutil.Writef(output, "  Without -o, files are printed to stdout. Several files are framed as a\n")
		cliutil.Writef(output, "  txtar archive (\"-- models.ts --\" markers); --single-file prints types.ts as-is.\n")
	}

	return fs, flags
}

// HandleGenerate executes the generate command
func HandleGenerate(args []string) error {
	fs, flags := SetupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("generate command requires exactly one file path or '-' for stdin")
	}
	if err := generator.ValidateModelsAlias(flags.ModelsAlias); err != nil {
		return err
	}

	var outputDir string
	if flags.Output != "" {
		outputDir = filepath.Clean(flags.Output)
		if err := RejectSymlinkOutput(outputDir); err != nil {
			return err
		}
	}

	specPath := fs.Arg(0)
	logger := newLogger(flags.Verbose)

	startTime := time.Now()
	parseResult, err := parseSpec(specPath, logger)
	if err != nil {
		return err
	}
	result, err := generator.GenerateWithOptions(
		generator.WithParsed(parseResult),
		generator.WithSingleFile(flags.SingleFile),
		generator.WithModelsAlias(flags.ModelsAlias),
		generator.WithHeader(flags.Header),
		generator.WithReadOnlyModifier(flags.ReadOnly),
		generator.WithStrictMode(flags.Strict),
		generator.WithIncludeInfo(!flags.NoWarnings),
		generator.WithLogger(logger),
	)
	totalTime := time.Since(startTime)
	if result != nil {
		writeIssues(os.Stderr, result.Issues)
	}
	if err != nil {
		return fmt.Errorf("generating declarations: %w", err)
	}

	// With stdout carrying the declarations, the banner only goes to an interactive stderr.
	showSummary := !flags.Quiet && (outputDir != "" || cliutil.IsTerminal(os.Stderr))
	if showSummary {
		writeGenerateSummary(os.Stderr, specPath, result, totalTime)
	}

	if outputDir == "" {
		return writeFilesTo(os.Stdout, result.Files)
	}

	if err := result.WriteFiles(outputDir); err != nil {
		return fmt.Errorf("writing files: %w", err)
	}
	if showSummary {
		sym := cliutil.SymbolsFor(os.Stderr)
		cliutil.Writef(os.Stderr, "Generated Files (%d):\n", len(result.Files))
		for _, file := range result.Files {
			cliutil.Writef(os.Stderr, "  - %s (%d bytes)\n", filepath.Join(outputDir, file.Name), len(file.Content))
		}
		cliutil.Writef(os.Stderr, "\n%s Generation successful", sym.OK)
		if result.InfoCount > 0 || result.WarningCount > 0 {
			cliutil.Writef(os.Stderr, " (%d info, %d warnings)", result.InfoCount, result.WarningCount)
		}
		cliutil.Writef(os.Stderr, "\n")
	}
	return nil
}

func writeGenerateSummary(w io.Writer, specPath string, result *generator.GenerateResult, totalTime time.Duration) {
	cliutil.Writef(w, "TypeScript Declaration Generator\n")
	cliutil.Writef(w, "================================\n\n")
	cliutil.Writef(w, "oasts version: %s\n", oasts.Version())
	cliutil.Writef(w, "Specification: %s\n", FormatSpecPath(specPath))
	cliutil.Writef(w, "OAS Version: %s\n", result.SourceVersion)
	cliutil.Writef(w, "Source Size: %s\n", parser.FormatBytes(result.SourceSize))
	cliutil.Writef(w, "Types: %d\n", result.GeneratedTypes)
	cliutil.Writef(w, "Operations: %d\n", result.GeneratedOperations)
	cliutil.Writef(w, "Total Time: %v\n\n", totalTime)
}

func writeIssues(w io.Writer, issues []generator.GenerateIssue) {
	if len(issues) == 0 {
		return
	}
	cliutil.Writef(w, "Generation Issues (%d):\n", len(issues))
	for _, issue := range issues {
		cliutil.Writef(w, "  %s\n", issue.String())
	}
	cliutil.Writef(w, "\n")
}

// writeFilesTo prints a lone file verbatim and frames several as a txtar archive.
func writeFilesTo(w io.Writer, files []generator.GeneratedFile) error {
	if len(files) == 1 {
		_, err := w.Write(files[0].Content)
		return err
	}
	archive := &txtar.Archive{}
	for _, f := range files {
		archive.Files = append(archive.Files, txtar.File{Name: f.Name, Data: f.Content})
	}
	_, err := w.Write(txtar.Format(archive))
	return err
}
