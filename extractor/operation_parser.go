package extractor

import (
	"fmt"
	"regexp"

	"github.com/erraggy/oasts/ast"
	"github.com/erraggy/oasts/internal/issues"
	"github.com/erraggy/oasts/internal/naming"
	"github.com/erraggy/oasts/internal/pathutil"
	"github.com/erraggy/oasts/parser"
)

// MediaSchema pairs a media type with the AST of its payload.
type MediaSchema struct {
	MediaType string
	Schema    ast.Node
}

// ResponseSchema is one (status, media type) entry of an operation's responses.
type ResponseSchema struct {
	// Status is the response key as written: "200", "4XX" or "default".
	Status    string
	MediaType string
	Schema    ast.Node
}

// Operation is the extracted signature of one path/method pair.
type Operation struct {
	OperationID string
	Path        string
	Method      string

	Summary     string
	Description string
	Deprecated  bool
	Tags        []string

	// PathParameters is nil when the operation has no path parameters.
	PathParameters *ast.Object
	// QueryParameters is nil when the operation has no query parameters.
	QueryParameters *ast.Object
	// RequestBody is nil when the operation has no request body.
	RequestBody []MediaSchema
	Responses   []ResponseSchema
}

// OperationParser extracts an Operation for every path/method pair.
//
// References to parameters, request bodies and responses are followed
// through Resolver. Schemas are never dereferenced; they stay ast.Ref nodes.
//
// An OperationParser is not safe for concurrent use.
type OperationParser struct {
	// Resolver dereferences $ref parameters, request bodies and responses.
	Resolver Resolver
	// Issues accumulates degradations found while parsing.
	Issues []Issue

	schemas SchemaParser
}

// NewOperationParser creates an OperationParser that resolves references with r.
func NewOperationParser(r Resolver) *OperationParser {
	return &OperationParser{Resolver: r}
}

// Parse walks paths in document order and, within each path, the HTTP
// methods in the order get, put, post, delete, options, head, patch, trace.
// A path item written as a $ref contributes the operations of its target.
func (p *OperationParser) Parse(paths *parser.OrderedMap[*parser.PathItem]) ([]Operation, error) {
	var ops []Operation
	for path, item := range paths.All() {
		item, err := deref(p.Resolver, item)
		if err != nil {
			return nil, fmt.Errorf("%s: path item: %w", path, err)
		}
		if item == nil {
			continue
		}
		for _, method := range parser.Methods {
			op := item.Operation(method)
			if op == nil {
				continue
			}
			parsed, err := p.parseOperation(path, method, item, op)
			if err != nil {
				return nil, fmt.Errorf("%s %s: %w", method, path, err)
			}
			ops = append(ops, parsed)
		}
	}
	return ops, nil
}

func (p *OperationParser) parseOperation(path, method string, item *parser.PathItem, op *parser.Operation) (Operation, error) {
	opID := op.OperationID
	if opID == "" {
		opID = FallbackOperationID(method, path)
	}
	base := issues.FormatPath("paths", path, method)
	opCtx := &OperationContext{Method: method, Path: path, OperationID: opID}

	out := Operation{
		OperationID: opID,
		Path:        path,
		Method:      method,
		Summary:     op.Summary,
		Description: op.Description,
		Deprecated:  op.Deprecated,
		Tags:        op.Tags,
	}

	pathParams, queryParams, err := p.parseParameters(item, op, base, opCtx)
	if err != nil {
		return Operation{}, err
	}
	out.PathParameters = pathParams
	out.QueryParameters = queryParams
	p.checkTemplateParams(path, base, pathParams, opCtx)

	body, err := deref(p.Resolver, op.RequestBody)
	if err != nil {
		return Operation{}, fmt.Errorf("requestBody: %w", err)
	}
	if body != nil {
		out.RequestBody = make([]MediaSchema, 0, body.Content.Len())
		for mediaType, media := range body.Content.All() {
			out.RequestBody = append(out.RequestBody, MediaSchema{
				MediaType: mediaType,
				Schema:    p.parseMediaSchema(media, issues.FormatPath(base, "requestBody", "content", mediaType), opCtx),
			})
		}
	}

	for status, raw := range op.Responses.All() {
		resp, err := deref(p.Resolver, raw)
		if err != nil {
			return Operation{}, fmt.Errorf("response %s: %w", status, err)
		}
		if resp == nil {
			continue
		}
		for mediaType, media := range resp.Content.All() {
			out.Responses = append(out.Responses, ResponseSchema{
				Status:    status,
				MediaType: mediaType,
				Schema:    p.parseMediaSchema(media, issues.FormatPath(base, "responses", status, "content", mediaType), opCtx),
			})
		}
	}

	return out, nil
}

// parseParameters dereferences path-item then operation parameters and
// partitions them by location. Empty partitions are nil.
func (p *OperationParser) parseParameters(item *parser.PathItem, op *parser.Operation, base string, opCtx *OperationContext) (pathParams, queryParams *ast.Object, err error) {
	type located struct {
		param *parser.Parameter
		path  string
	}
	var all []located
	for i, raw := range item.Parameters {
		all = append(all, located{raw, issues.FormatPath("paths", opCtx.Path, issues.FormatIndex("parameters", i))})
	}
	for i, raw := range op.Parameters {
		all = append(all, located{raw, issues.FormatPath(base, issues.FormatIndex("parameters", i))})
	}

	var pathProps, queryProps []ast.Property
	for _, entry := range all {
		param, err := deref(p.Resolver, entry.param)
		if err != nil {
			return nil, nil, fmt.Errorf("parameter: %w", err)
		}
		if param == nil {
			continue
		}
		switch param.In {
		case parser.ParamInPath:
			pathProps = append(pathProps, p.parameterProperty(param, entry.path, opCtx))
		case parser.ParamInQuery:
			queryProps = append(queryProps, p.parameterProperty(param, entry.path, opCtx))
		default:
			p.Issues = append(p.Issues, Issue{
				Path:             entry.path,
				Message:          fmt.Sprintf("%s parameter %q is not part of the generated signature", param.In, param.Name),
				Severity:         SeverityInfo,
				OperationContext: opCtx,
			})
		}
	}

	if len(pathProps) > 0 {
		pathParams = &ast.Object{Properties: pathProps}
	}
	if len(queryProps) > 0 {
		queryParams = &ast.Object{Properties: queryProps}
	}
	return pathParams, queryParams, nil
}

// checkTemplateParams warns when the {name} segments of path and the
// declared path parameters disagree.
func (p *OperationParser) checkTemplateParams(path, base string, params *ast.Object, opCtx *OperationContext) {
	declared := make(map[string]bool)
	if params != nil {
		for _, prop := range params.Properties {
			declared[prop.Name] = true
		}
	}
	inTemplate := make(map[string]bool)
	for _, name := range pathutil.TemplateParams(path) {
		inTemplate[name] = true
		if !declared[name] {
			p.Issues = append(p.Issues, Issue{
				Path:             issues.FormatPath(base, "parameters"),
				Message:          fmt.Sprintf("path template parameter %q is not declared", name),
				Severity:         SeverityWarning,
				OperationContext: opCtx,
			})
		}
	}
	if params == nil {
		return
	}
	for _, prop := range params.Properties {
		if !inTemplate[prop.Name] {
			p.Issues = append(p.Issues, Issue{
				Path:             issues.FormatPath(base, "parameters"),
				Message:          fmt.Sprintf("path parameter %q does not appear in the path template", prop.Name),
				Severity:         SeverityWarning,
				OperationContext: opCtx,
			})
		}
	}
}

func (p *OperationParser) parameterProperty(param *parser.Parameter, path string, opCtx *OperationContext) ast.Property {
	return ast.Property{
		Name:     param.Name,
		Required: param.Required,
		Schema:   p.parseSchema(param.Schema, issues.FormatPath(path, "schema"), opCtx),
	}
}

func (p *OperationParser) parseMediaSchema(media *parser.MediaType, path string, opCtx *OperationContext) ast.Node {
	if media == nil {
		return p.parseSchema(nil, path, opCtx)
	}
	return p.parseSchema(media.Schema, issues.FormatPath(path, "schema"), opCtx)
}

// parseSchema parses s and moves any issues it raised into p.Issues,
// tagged with the operation.
func (p *OperationParser) parseSchema(s *parser.Schema, path string, opCtx *OperationContext) ast.Node {
	node := p.schemas.ParseAt(s, path)
	for _, issue := range p.schemas.Issues {
		issue.OperationContext = opCtx
		p.Issues = append(p.Issues, issue)
	}
	p.schemas.Issues = p.schemas.Issues[:0]
	return node
}

var nonWordChars = regexp.MustCompile(`[^A-Za-z0-9_]`)

// FallbackOperationID derives an operation identifier from method and path
// for operations that do not declare one: every character outside
// [A-Za-z0-9_] becomes "_", then the result is camelCased.
//
//	FallbackOperationID("get", "/items/{id}") == "getItemsId"
func FallbackOperationID(method, path string) string {
	return naming.ToCamelCase(method + "_" + nonWordChars.ReplaceAllString(path, "_"))
}
