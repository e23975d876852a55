package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/oasts/generator"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type generateInput struct {
	Spec             specInput `json:"spec"                         jsonschema:"The OpenAPI 3.1 document to generate declarations from"`
	SingleFile       bool      `json:"single_file,omitempty"        jsonschema:"Emit a single types.ts instead of responses.ts\\, models.ts and operations.ts"`
	ModelsAlias      string    `json:"models_alias,omitempty"       jsonschema:"Namespace operations.ts imports models.ts under (default: models)"`
	Header           string    `json:"header,omitempty"             jsonschema:"Banner comment written at the top of every file"`
	ReadOnlyModifier bool      `json:"readonly_modifier,omitempty"  jsonschema:"Mark readOnly properties with the readonly modifier"`
	Strict           *bool     `json:"strict,omitempty"             jsonschema:"Fail when any warning is reported"`
	OutputDir        string    `json:"output_dir,omitempty"         jsonschema:"Directory to write generated files to. Omit to return contents inline"`
}

type generatedFileInfo struct {
	Name    string `json:"name"`
	Size    int    `json:"size"`
	Content string `json:"content,omitempty"`
}

type generateOutput struct {
	OutputDir           string              `json:"output_dir,omitempty"`
	FileCount           int                 `json:"file_count"`
	Files               []generatedFileInfo `json:"files"`
	GeneratedTypes      int                 `json:"generated_types"`
	GeneratedOperations int                 `json:"generated_operations"`
	InfoCount           int                 `json:"info_count"`
	WarningCount        int                 `json:"warning_count"`
	Issues              []string            `json:"issues,omitempty"`
}

func handleGenerate(ctx context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	parseResult, err := input.Spec.resolve(ctx)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	alias := input.ModelsAlias
	if alias == "" {
		alias = cfg.GenerateModelsAlias
	}
	header := input.Header
	if header == "" {
		header = cfg.GenerateHeader
	}
	strict := cfg.GenerateStrict
	if input.Strict != nil {
		strict = *input.Strict
	}

	result, err := generator.GenerateWithOptions(
		generator.WithParsed(parseResult),
		generator.WithSingleFile(input.SingleFile),
		generator.WithModelsAlias(alias),
		generator.WithHeader(header),
		generator.WithReadOnlyModifier(input.ReadOnlyModifier),
		generator.WithStrictMode(strict),
	)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	if input.OutputDir != "" {
		if err := result.WriteFiles(input.OutputDir); err != nil {
			return errResult(fmt.Errorf("failed to write generated files: %w", err)), generateOutput{}, nil
		}
	}

	output := generateOutput{
		OutputDir:           input.OutputDir,
		FileCount:           len(result.Files),
		GeneratedTypes:      result.GeneratedTypes,
		GeneratedOperations: result.GeneratedOperations,
		InfoCount:           result.InfoCount,
		WarningCount:        result.WarningCount,
		Issues:              issueMessages(result.Issues),
	}
	output.Files = makeSlice[generatedFileInfo](len(result.Files))
	for _, f := range result.Files {
		info := generatedFileInfo{Name: f.Name, Size: len(f.Content)}
		if input.OutputDir == "" {
			info.Content = string(f.Content)
		}
		output.Files = append(output.Files, info)
	}

	return nil, output, nil
}
