package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type parseInput struct {
	Spec specInput `json:"spec" jsonschema:"The OpenAPI 3.1 document to parse"`
}

type parseOutput struct {
	Version        string   `json:"version"`
	Title          string   `json:"title"`
	APIVersion     string   `json:"api_version,omitempty"`
	Description    string   `json:"description,omitempty"`
	Format         string   `json:"format"`
	PathCount      int      `json:"path_count"`
	OperationCount int      `json:"operation_count"`
	SchemaCount    int      `json:"schema_count"`
	Schemas        []string `json:"schemas,omitempty"`
}

func handleParse(ctx context.Context, _ *mcp.CallToolRequest, input parseInput) (*mcp.CallToolResult, parseOutput, error) {
	result, err := input.Spec.resolve(ctx)
	if err != nil {
		return errResult(err), parseOutput{}, nil
	}

	output := parseOutput{
		Version:        result.Version,
		Format:         string(result.SourceFormat),
		PathCount:      result.Stats.PathCount,
		OperationCount: result.Stats.OperationCount,
		SchemaCount:    result.Stats.SchemaCount,
	}
	if info := result.Document.Info; info != nil {
		output.Title = info.Title
		output.APIVersion = info.Version
		output.Description = info.Description
	}
	output.Schemas = result.Document.Schemas().Keys()

	return nil, output, nil
}
