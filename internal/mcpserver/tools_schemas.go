package mcpserver

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/erraggy/oasts/ast"
	"github.com/erraggy/oasts/extractor"
	"github.com/erraggy/oasts/generator"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type listSchemasInput struct {
	Spec    specInput `json:"spec"               jsonschema:"The OpenAPI 3.1 document to inspect"`
	Name    string    `json:"name,omitempty"     jsonschema:"Filter by schema name (supports * glob)"`
	Kind    string    `json:"kind,omitempty"     jsonschema:"Filter by AST kind (ref\\, atom\\, intersection\\, union\\, enum\\, array\\, object)"`
	GroupBy string    `json:"group_by,omitempty" jsonschema:"Group results and return counts. Values: kind"`
	Limit   int       `json:"limit,omitempty"    jsonschema:"Maximum number of results to return (default 100)"`
	Offset  int       `json:"offset,omitempty"   jsonschema:"Skip the first N results (for pagination)"`
}

type schemaSummary struct {
	Name       string   `json:"name"`
	Kind       string   `json:"kind"`
	Type       string   `json:"type"`
	Refs       []string `json:"refs,omitempty"`
	Deprecated bool     `json:"deprecated,omitempty"`
}

type listSchemasOutput struct {
	Total    int             `json:"total"`
	Matched  int             `json:"matched"`
	Returned int             `json:"returned"`
	Schemas  []schemaSummary `json:"schemas,omitempty"`
	Groups   []groupCount    `json:"groups,omitempty"`
	Issues   []string        `json:"issues,omitempty"`
}

func handleListSchemas(ctx context.Context, _ *mcp.CallToolRequest, input listSchemasInput) (*mcp.CallToolResult, listSchemasOutput, error) {
	if err := validateGroupBy(input.GroupBy, []string{"kind"}); err != nil {
		return errResult(err), listSchemasOutput{}, nil
	}
	if err := validateGlobPattern(input.Name); err != nil {
		return errResult(err), listSchemasOutput{}, nil
	}
	if input.Kind != "" && !slices.Contains(ast.Kinds, ast.Kind(strings.ToLower(input.Kind))) {
		return errResult(fmt.Errorf("invalid kind %q", input.Kind)), listSchemasOutput{}, nil
	}

	parsed, err := input.Spec.resolve(ctx)
	if err != nil {
		return errResult(err), listSchemasOutput{}, nil
	}
	result, err := (&extractor.Extractor{SkipOperations: true}).Extract(parsed)
	if err != nil {
		return errResult(err), listSchemasOutput{}, nil
	}

	var matched []extractor.NamedSchema
	for _, s := range result.Schemas {
		if input.Name != "" && !matchGlob(s.Name, input.Name) {
			continue
		}
		if input.Kind != "" && !strings.EqualFold(string(ast.KindOf(s.AST)), input.Kind) {
			continue
		}
		matched = append(matched, s)
	}

	output := listSchemasOutput{
		Total:   len(result.Schemas),
		Matched: len(matched),
		Issues:  issueMessages(result.Issues),
	}
	if input.GroupBy != "" {
		output.Groups = groupAndSort(matched, func(s extractor.NamedSchema) []string {
			return []string{string(ast.KindOf(s.AST))}
		})
		return nil, output, nil
	}

	gen := &generator.TypeStringGenerator{}
	page := paginate(matched, input.Offset, input.Limit)
	output.Schemas = makeSlice[schemaSummary](len(page))
	for _, s := range page {
		output.Schemas = append(output.Schemas, schemaSummary{
			Name:       s.Name,
			Kind:       string(ast.KindOf(s.AST)),
			Type:       gen.Generate(s.AST),
			Refs:       ast.Refs(s.AST),
			Deprecated: s.Deprecated,
		})
	}
	output.Returned = len(output.Schemas)
	return nil, output, nil
}

// issueMessages renders each issue on one line.
func issueMessages(issues []extractor.Issue) []string {
	out := makeSlice[string](len(issues))
	for _, issue := range issues {
		out = append(out, issue.String())
	}
	return out
}
