package extractor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/erraggy/oasts/ast"
	"github.com/erraggy/oasts/internal/issues"
	"github.com/erraggy/oasts/parser"
	"go.yaml.in/yaml/v4"
)

// SchemaParser lowers schema objects into AST trees.
//
// Parsing is total: a schema shape that has no TypeScript counterpart becomes
// ast.AtomUnknown rather than an error. Degradations worth knowing about are
// appended to Issues.
//
// A SchemaParser is not safe for concurrent use.
type SchemaParser struct {
	// Issues accumulates degradations found while parsing.
	Issues []Issue
}

// Parse converts s and its children into an AST tree.
func (p *SchemaParser) Parse(s *parser.Schema) ast.Node {
	return p.ParseAt(s, "")
}

// ParseAt is Parse with path as the JSON path of s, used to locate issues.
func (p *SchemaParser) ParseAt(s *parser.Schema, path string) ast.Node {
	if s == nil {
		return ast.NewAtom(ast.AtomVoid)
	}
	if s.Ref != "" {
		return ast.NewRef(s.Ref)
	}

	p.checkComposition(s, path)
	switch {
	case s.AllOf != nil:
		return &ast.Intersection{Children: p.parseList(s.AllOf, path, "allOf")}
	case s.OneOf != nil:
		return &ast.Union{Children: p.parseList(s.OneOf, path, "oneOf")}
	case s.AnyOf != nil:
		return &ast.Union{Children: p.parseList(s.AnyOf, path, "anyOf")}
	}

	if s.Type.IsList() {
		names := s.Type.Names()
		children := make([]ast.Node, 0, len(names))
		for _, name := range names {
			children = append(children, p.ParseAt(s.WithType(name), path))
		}
		return &ast.Union{Children: children}
	}

	name, _ := s.Type.Single()
	switch name {
	case parser.TypeNull:
		return ast.NewAtom(ast.AtomNull)
	case parser.TypeBoolean:
		return ast.NewAtom(ast.AtomBoolean)
	case parser.TypeInteger, parser.TypeNumber:
		if s.Enum != nil {
			return p.enumNode(s.Enum, path)
		}
		return ast.NewAtom(ast.AtomNumber)
	case parser.TypeString:
		if s.Enum != nil {
			return p.enumNode(s.Enum, path)
		}
		return ast.NewAtom(ast.AtomString)
	case parser.TypeArray:
		if s.Items != nil {
			return &ast.Array{Child: p.ParseAt(s.Items, issues.FormatPath(path, "items"))}
		}
		return &ast.Array{Child: ast.NewAtom(ast.AtomUnknown)}
	case parser.TypeObject:
		if s.Properties != nil {
			return p.parseObject(s, path)
		}
		return ast.NewAtom(ast.AtomObject)
	case "":
		return ast.NewAtom(ast.AtomUnknown)
	default:
		p.record(path, "type", SeverityWarning, fmt.Sprintf("unrecognized type %q treated as unknown", name))
		return ast.NewAtom(ast.AtomUnknown)
	}
}

func (p *SchemaParser) parseList(list []*parser.Schema, path, keyword string) []ast.Node {
	children := make([]ast.Node, 0, len(list))
	for i, child := range list {
		children = append(children, p.ParseAt(child, issues.FormatPath(path, issues.FormatIndex(keyword, i))))
	}
	return children
}

func (p *SchemaParser) parseObject(s *parser.Schema, path string) *ast.Object {
	obj := &ast.Object{Properties: make([]ast.Property, 0, s.Properties.Len())}
	for name, child := range s.Properties.All() {
		obj.Properties = append(obj.Properties, ast.Property{
			Name:      name,
			Schema:    p.ParseAt(child, issues.FormatPath(path, "properties", name)),
			Required:  s.IsRequired(name),
			ReadOnly:  isReadOnly(child),
			WriteOnly: isWriteOnly(child),
		})
	}
	return obj
}

// checkComposition warns when more than one composition keyword is present,
// since only the first of allOf, oneOf, anyOf is honored.
func (p *SchemaParser) checkComposition(s *parser.Schema, path string) {
	var present []string
	if s.AllOf != nil {
		present = append(present, "allOf")
	}
	if s.OneOf != nil {
		present = append(present, "oneOf")
	}
	if s.AnyOf != nil {
		present = append(present, "anyOf")
	}
	if len(present) > 1 {
		p.record(path, "", SeverityWarning, fmt.Sprintf("schema combines %s; only %s is used", strings.Join(present, ", "), present[0]))
	}
}

func (p *SchemaParser) record(path, field string, sev Severity, msg string) {
	p.Issues = append(p.Issues, Issue{
		Path:     issues.FormatPath(path, field),
		Message:  msg,
		Severity: sev,
	})
}

// enumNode builds an Enum from the values that have a literal form. An
// empty enum stays an empty Enum; one whose every value was skipped is unknown.
func (p *SchemaParser) enumNode(values []yaml.Node, path string) ast.Node {
	cases := p.enumCases(values, path)
	if len(cases) == 0 && len(values) > 0 {
		return ast.NewAtom(ast.AtomUnknown)
	}
	return &ast.Enum{Cases: cases}
}

// enumCases renders each enum value as a literal token.
func (p *SchemaParser) enumCases(values []yaml.Node, path string) []string {
	cases := make([]string, 0, len(values))
	for i := range values {
		lit, err := enumLiteral(&values[i])
		if err != nil {
			p.record(path, issues.FormatIndex("enum", i), SeverityWarning, fmt.Sprintf("enum value skipped: %v", err))
			continue
		}
		cases = append(cases, lit)
	}
	return cases
}

// enumLiteral renders an enum value the way it would appear in JSON.
// Strings are quoted, numerals keep their source text.
func enumLiteral(node *yaml.Node) (string, error) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind == yaml.ScalarNode {
		switch node.ShortTag() {
		case "!!str":
			return marshalJSON(node.Value)
		case "!!null":
			return "null", nil
		case "!!bool":
			b, err := strconv.ParseBool(node.Value)
			if err != nil {
				return "", err
			}
			return strconv.FormatBool(b), nil
		case "!!int":
			return node.Value, nil
		case "!!float":
			switch strings.ToLower(strings.TrimPrefix(node.Value, "+")) {
			case ".inf", "-.inf", ".nan":
				return "", fmt.Errorf("%s has no JSON representation", node.Value)
			}
			return node.Value, nil
		}
	}
	var v any
	if err := node.Decode(&v); err != nil {
		return "", err
	}
	return marshalJSON(v)
}

// marshalJSON encodes v without HTML escaping, so "<" stays "<".
func marshalJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// isReadOnly reports whether a property is read-only. An explicit readOnly
// on the property wins; otherwise any allOf member marked readOnly counts.
func isReadOnly(s *parser.Schema) bool {
	if s == nil {
		return false
	}
	if s.ReadOnly != nil {
		return *s.ReadOnly
	}
	for _, c := range s.AllOf {
		if c != nil && c.ReadOnly != nil && *c.ReadOnly {
			return true
		}
	}
	return false
}

// isWriteOnly is isReadOnly for writeOnly.
func isWriteOnly(s *parser.Schema) bool {
	if s == nil {
		return false
	}
	if s.WriteOnly != nil {
		return *s.WriteOnly
	}
	for _, c := range s.AllOf {
		if c != nil && c.WriteOnly != nil && *c.WriteOnly {
			return true
		}
	}
	return false
}
