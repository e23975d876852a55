package mcpserver

import (
	"context"
	"slices"
	"strings"

	"github.com/erraggy/oasts/ast"
	"github.com/erraggy/oasts/extractor"
	"github.com/erraggy/oasts/generator"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type listOperationsInput struct {
	Spec    specInput `json:"spec"               jsonschema:"The OpenAPI 3.1 document to inspect"`
	Method  string    `json:"method,omitempty"   jsonschema:"Filter by HTTP method (get\\, post\\, put\\, delete\\, patch\\, etc.)"`
	Path    string    `json:"path,omitempty"     jsonschema:"Filter by path pattern (supports * glob)"`
	Tag     string    `json:"tag,omitempty"      jsonschema:"Filter by tag name"`
	GroupBy string    `json:"group_by,omitempty" jsonschema:"Group results and return counts. Values: method\\, tag"`
	Limit   int       `json:"limit,omitempty"    jsonschema:"Maximum number of results to return (default 100)"`
	Offset  int       `json:"offset,omitempty"   jsonschema:"Skip the first N results (for pagination)"`
}

type mediaTypeSummary struct {
	Status    string `json:"status,omitempty"`
	MediaType string `json:"media_type"`
	Type      string `json:"type"`
}

type operationSummary struct {
	OperationID string             `json:"operation_id"`
	Method      string             `json:"method"`
	Path        string             `json:"path"`
	Summary     string             `json:"summary,omitempty"`
	Tags        []string           `json:"tags,omitempty"`
	Deprecated  bool               `json:"deprecated,omitempty"`
	Params      string             `json:"params"`
	Query       string             `json:"query"`
	Body        []mediaTypeSummary `json:"body,omitempty"`
	Responses   []mediaTypeSummary `json:"responses,omitempty"`
}

type listOperationsOutput struct {
	Total      int                `json:"total"`
	Matched    int                `json:"matched"`
	Returned   int                `json:"returned"`
	Operations []operationSummary `json:"operations,omitempty"`
	Groups     []groupCount       `json:"groups,omitempty"`
	Issues     []string           `json:"issues,omitempty"`
}

func handleListOperations(ctx context.Context, _ *mcp.CallToolRequest, input listOperationsInput) (*mcp.CallToolResult, listOperationsOutput, error) {
	if err := validateGroupBy(input.GroupBy, []string{"method", "tag"}); err != nil {
		return errResult(err), listOperationsOutput{}, nil
	}
	if err := validateGlobPattern(input.Path); err != nil {
		return errResult(err), listOperationsOutput{}, nil
	}

	parsed, err := input.Spec.resolve(ctx)
	if err != nil {
		return errResult(err), listOperationsOutput{}, nil
	}
	result, err := extractor.New().Extract(parsed)
	if err != nil {
		return errResult(err), listOperationsOutput{}, nil
	}

	var matched []extractor.Operation
	for _, op := range result.Operations {
		if input.Method != "" && !strings.EqualFold(op.Method, input.Method) {
			continue
		}
		if input.Path != "" && !matchGlob(op.Path, input.Path) {
			continue
		}
		if input.Tag != "" && !slices.ContainsFunc(op.Tags, func(t string) bool { return strings.EqualFold(t, input.Tag) }) {
			continue
		}
		matched = append(matched, op)
	}

	output := listOperationsOutput{
		Total:   len(result.Operations),
		Matched: len(matched),
		Issues:  issueMessages(result.Issues),
	}
	switch strings.ToLower(input.GroupBy) {
	case "method":
		output.Groups = groupAndSort(matched, func(op extractor.Operation) []string { return []string{op.Method} })
		return nil, output, nil
	case "tag":
		output.Groups = groupAndSort(matched, func(op extractor.Operation) []string { return op.Tags })
		return nil, output, nil
	}

	gen := &generator.TypeStringGenerator{}
	page := paginate(matched, input.Offset, input.Limit)
	output.Operations = makeSlice[operationSummary](len(page))
	for _, op := range page {
		output.Operations = append(output.Operations, summarizeOperation(gen, op))
	}
	output.Returned = len(output.Operations)
	return nil, output, nil
}

func summarizeOperation(gen *generator.TypeStringGenerator, op extractor.Operation) operationSummary {
	s := operationSummary{
		OperationID: op.OperationID,
		Method:      op.Method,
		Path:        op.Path,
		Summary:     op.Summary,
		Tags:        op.Tags,
		Deprecated:  op.Deprecated,
		Params:      objectType(gen, op.PathParameters),
		Query:       objectType(gen, op.QueryParameters),
		Body:        makeSlice[mediaTypeSummary](len(op.RequestBody)),
		Responses:   makeSlice[mediaTypeSummary](len(op.Responses)),
	}
	for _, m := range op.RequestBody {
		s.Body = append(s.Body, mediaTypeSummary{MediaType: m.MediaType, Type: gen.Generate(m.Schema)})
	}
	for _, r := range op.Responses {
		s.Responses = append(s.Responses, mediaTypeSummary{Status: r.Status, MediaType: r.MediaType, Type: gen.Generate(r.Schema)})
	}
	return s
}

func objectType(gen *generator.TypeStringGenerator, obj *ast.Object) string {
	if obj == nil {
		return string(ast.AtomVoid)
	}
	return gen.Generate(obj)
}
