package generator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/erraggy/oasts/ast"
	"github.com/erraggy/oasts/extractor"
	"github.com/erraggy/oasts/internal/issues"
	"github.com/erraggy/oasts/internal/pathutil"
)

// Generated file names.
const (
	ResponsesFile  = "responses.ts"
	ModelsFile     = "models.ts"
	OperationsFile = "operations.ts"
	TypesFile      = "types.ts"
)

// declarationBuilder turns an extraction result into template data.
type declarationBuilder struct {
	g      *Generator
	result *extractor.Result

	// identifiers maps schema names to their declared identifiers.
	identifiers map[string]string
	issues      []GenerateIssue
}

func newDeclarationBuilder(g *Generator, result *extractor.Result) *declarationBuilder {
	return &declarationBuilder{
		g:           g,
		result:      result,
		identifiers: make(map[string]string, len(result.Schemas)),
	}
}

// refName maps a referenced schema name to its declared identifier.
func (b *declarationBuilder) refName(name string) string {
	if id, ok := b.identifiers[name]; ok {
		return id
	}
	return tsIdentifier(name)
}

func (b *declarationBuilder) typeGenerator(prefix string) *TypeStringGenerator {
	return &TypeStringGenerator{
		RefNamePrefix:    prefix,
		RefName:          b.refName,
		ReadOnlyModifier: b.g.ReadOnlyModifier,
	}
}

// buildModels declares every component schema.
func (b *declarationBuilder) buildModels() []ModelData {
	declared := make(map[string]string, len(b.result.Schemas))
	for _, s := range b.result.Schemas {
		id := tsIdentifier(s.Name)
		path := issues.FormatPath("components", "schemas", s.Name)
		if id != s.Name {
			b.record(path, SeverityInfo, fmt.Sprintf("schema %q is declared as %s", s.Name, id), nil)
		}
		if prev, dup := declared[id]; dup {
			b.record(path, SeverityWarning, fmt.Sprintf("schema %q is declared as %s, which is also used by schema %q", s.Name, id, prev), nil)
		} else {
			declared[id] = s.Name
		}
		b.identifiers[s.Name] = id
	}

	gen := b.typeGenerator("")
	models := make([]ModelData, 0, len(b.result.Schemas))
	for _, s := range b.result.Schemas {
		b.checkRefs(s.AST, issues.FormatPath("components", "schemas", s.Name), nil)
		models = append(models, ModelData{
			Doc:  jsDoc(s.Description, s.Deprecated),
			Name: b.identifiers[s.Name],
			Type: gen.Generate(s.AST),
		})
	}
	return models
}

// buildOperations declares one namespace per operation. prefix qualifies
// schema references, e.g. "models.".
func (b *declarationBuilder) buildOperations(prefix string) []OperationData {
	gen := b.typeGenerator(prefix)
	declared := make(map[string]string, len(b.result.Operations))
	ops := make([]OperationData, 0, len(b.result.Operations))
	for _, op := range b.result.Operations {
		path := issues.FormatPath("paths", op.Path, op.Method)
		opCtx := &OperationContext{Method: op.Method, Path: op.Path, OperationID: op.OperationID}

		ns := tsIdentifier(op.OperationID)
		if ns != op.OperationID {
			b.record(issues.FormatPath(path, "operationId"), SeverityInfo,
				fmt.Sprintf("operationId %q is declared as namespace %s", op.OperationID, ns), opCtx)
		}
		if prev, dup := declared[ns]; dup {
			b.record(issues.FormatPath(path, "operationId"), SeverityWarning,
				fmt.Sprintf("namespace %s is declared twice (also by %s)", ns, prev), opCtx)
		} else {
			declared[ns] = op.Method + " " + op.Path
		}

		for _, n := range operationNodes(op) {
			b.checkRefs(n, path, opCtx)
		}

		ops = append(ops, OperationData{
			Doc:       jsDoc(operationDescription(op), op.Deprecated),
			Namespace: ns,
			Method:    op.Method,
			Path:      op.Path,
			Params:    objectOrVoid(gen, op.PathParameters),
			Query:     objectOrVoid(gen, op.QueryParameters),
			Body:      bodyType(gen, op.RequestBody),
			Response:  responseType(gen, op.Responses),
		})
	}
	return ops
}

// operationImports returns the import statements operations.ts needs.
func (b *declarationBuilder) operationImports(alias string) []string {
	var usesModels bool
	helpers := make(map[string]bool)
	for _, op := range b.result.Operations {
		for _, n := range operationNodes(op) {
			if len(ast.Refs(n)) > 0 {
				usesModels = true
			}
		}
		for _, r := range op.Responses {
			helpers[responseHelper(r.MediaType)] = true
		}
	}

	var imports []string
	if usesModels {
		imports = append(imports, fmt.Sprintf("import type * as %s from %s;", alias, tsString("./models")))
	}
	if len(helpers) > 0 {
		names := make([]string, 0, len(helpers))
		for name := range helpers {
			names = append(names, name)
		}
		sort.Strings(names)
		imports = append(imports, fmt.Sprintf("import type { %s } from %s;", strings.Join(names, ", "), tsString("./responses")))
	}
	return imports
}

// checkRefs warns about references that do not name a component schema;
// their rendered name has no declaration to point at.
func (b *declarationBuilder) checkRefs(n ast.Node, path string, opCtx *OperationContext) {
	seen := make(map[string]bool)
	ast.Walk(n, func(n ast.Node) bool {
		ref, ok := n.(*ast.Ref)
		if !ok || seen[ref.RefPath] {
			return true
		}
		seen[ref.RefPath] = true
		name, ok := pathutil.ComponentName(ref.RefPath, pathutil.RefPrefixSchemas)
		if !ok {
			b.record(path, SeverityWarning, fmt.Sprintf("reference %q does not name a component schema", ref.RefPath), opCtx)
			return true
		}
		if _, exists := b.identifiers[name]; !exists {
			b.record(path, SeverityWarning, fmt.Sprintf("reference %q names an undeclared schema", ref.RefPath), opCtx)
		}
		return true
	})
}

func (b *declarationBuilder) record(path string, sev Severity, msg string, opCtx *OperationContext) {
	b.issues = append(b.issues, GenerateIssue{Path: path, Message: msg, Severity: sev, OperationContext: opCtx})
}

// operationNodes lists every AST of an operation signature.
func operationNodes(op extractor.Operation) []ast.Node {
	var nodes []ast.Node
	if op.PathParameters != nil {
		nodes = append(nodes, op.PathParameters)
	}
	if op.QueryParameters != nil {
		nodes = append(nodes, op.QueryParameters)
	}
	for _, m := range op.RequestBody {
		nodes = append(nodes, m.Schema)
	}
	for _, r := range op.Responses {
		nodes = append(nodes, r.Schema)
	}
	return nodes
}

func operationDescription(op extractor.Operation) string {
	summary := strings.TrimSpace(op.Summary)
	desc := strings.TrimSpace(op.Description)
	switch {
	case summary == "":
		return desc
	case desc == "" || desc == summary:
		return summary
	default:
		return summary + "\n\n" + desc
	}
}

func objectOrVoid(gen *TypeStringGenerator, obj *ast.Object) string {
	if obj == nil {
		return string(ast.AtomVoid)
	}
	return gen.Generate(obj)
}

// bodyType renders the request body as the union of its media type payloads.
// Unions and enums are flattened so a member shared by two payloads is
// written once.
func bodyType(gen *TypeStringGenerator, body []extractor.MediaSchema) string {
	if len(body) == 0 {
		return string(ast.AtomVoid)
	}
	parts := make([]string, 0, len(body))
	for _, m := range body {
		parts = unionMembers(gen, m.Schema, parts)
	}
	return joinDistinct(parts, " | ")
}

// unionMembers appends the rendered alternatives of n to parts.
func unionMembers(gen *TypeStringGenerator, n ast.Node, parts []string) []string {
	switch n := n.(type) {
	case *ast.Union:
		for _, child := range n.Children {
			parts = unionMembers(gen, child, parts)
		}
		return parts
	case *ast.Enum:
		return append(parts, n.Cases...)
	}
	return append(parts, gen.Generate(n))
}

func responseHelper(mediaType string) string {
	if isJSONMediaType(mediaType) {
		return "JsonResponse"
	}
	return "StatusResponse"
}

// responseType renders the union of every (status, media type) response.
func responseType(gen *TypeStringGenerator, responses []extractor.ResponseSchema) string {
	if len(responses) == 0 {
		return string(ast.AtomVoid)
	}
	parts := make([]string, 0, len(responses))
	for _, r := range responses {
		parts = append(parts, fmt.Sprintf("%s<%s, %s>", responseHelper(r.MediaType), statusType(r.Status), gen.Generate(r.Schema)))
	}
	return joinDistinct(parts, " | ")
}
