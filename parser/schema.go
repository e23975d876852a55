package parser

import (
	"fmt"
	"slices"

	"go.yaml.in/yaml/v4"
)

// Schema is the subset of a JSON Schema 2020-12 object that describes a
// data shape: its type, composition keywords, enum values and properties.
//
// Enum values are kept as yaml.Node so numerals retain their source text
// and the scalar tag says whether a value was written as a string.
type Schema struct {
	Ref         string               `yaml:"$ref,omitempty"`
	Title       string               `yaml:"title,omitempty"`
	Description string               `yaml:"description,omitempty"`
	Type        SchemaType           `yaml:"type,omitempty"`
	Format      string               `yaml:"format,omitempty"`
	Enum        []yaml.Node          `yaml:"enum,omitempty"`
	Items       *Schema              `yaml:"items,omitempty"`
	Properties  *OrderedMap[*Schema] `yaml:"properties,omitempty"`
	Required    []string             `yaml:"required,omitempty"`
	AllOf       []*Schema            `yaml:"allOf,omitempty"`
	OneOf       []*Schema            `yaml:"oneOf,omitempty"`
	AnyOf       []*Schema            `yaml:"anyOf,omitempty"`
	ReadOnly    *bool                `yaml:"readOnly,omitempty"`
	WriteOnly   *bool                `yaml:"writeOnly,omitempty"`
	Deprecated  bool                 `yaml:"deprecated,omitempty"`

	// Boolean is set when the schema was written as a bare true or false.
	Boolean *bool `yaml:"-"`
}

// schemaFields has the same fields as Schema without its UnmarshalYAML method.
type schemaFields Schema

// UnmarshalYAML decodes a schema object or a boolean schema.
func (s *Schema) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!bool" {
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}
		*s = Schema{Boolean: &b}
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: schema must be a mapping or a boolean, got %s", node.Line, kindName(node.Kind))
	}
	if err := node.Decode((*schemaFields)(s)); err != nil {
		return err
	}
	// An unquoted "type: null" is a YAML null and never reaches SchemaType.
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == "type" && node.Content[i+1].ShortTag() == "!!null" {
			s.Type = NewSchemaType(TypeNull)
		}
	}
	return nil
}

// IsRequired reports whether name is listed in the schema's required set.
func (s *Schema) IsRequired(name string) bool {
	if s == nil {
		return false
	}
	return slices.Contains(s.Required, name)
}

// WithType returns a shallow copy of s whose type keyword is the single name.
func (s *Schema) WithType(name string) *Schema {
	narrowed := *s
	narrowed.Type = NewSchemaType(name)
	return &narrowed
}

// JSON Schema primitive type names.
const (
	TypeNull    = "null"
	TypeBoolean = "boolean"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeString  = "string"
	TypeArray   = "array"
	TypeObject  = "object"
)

// SchemaType is the value of the type keyword: absent, a single name, or a
// list of names.
type SchemaType struct {
	names []string
	list  bool
}

// NewSchemaType returns a single-name type.
func NewSchemaType(name string) SchemaType {
	return SchemaType{names: []string{name}}
}

// NewSchemaTypeList returns a list-form type such as ["string", "null"].
func NewSchemaTypeList(names ...string) SchemaType {
	return SchemaType{names: slices.Clone(names), list: true}
}

// IsZero reports whether the type keyword was absent.
func (t SchemaType) IsZero() bool {
	return len(t.names) == 0 && !t.list
}

// IsList reports whether the type keyword was written as a sequence.
func (t SchemaType) IsList() bool {
	return t.list
}

// Names returns the listed type names in document order.
func (t SchemaType) Names() []string {
	return slices.Clone(t.names)
}

// Single returns the type name when the keyword was a single name.
func (t SchemaType) Single() (string, bool) {
	if t.list || len(t.names) != 1 {
		return "", false
	}
	return t.names[0], true
}

// Is reports whether the keyword is the single name.
func (t SchemaType) Is(name string) bool {
	single, ok := t.Single()
	return ok && single == name
}

// UnmarshalYAML accepts a scalar or a sequence of scalars.
func (t *SchemaType) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	switch node.Kind {
	case yaml.ScalarNode:
		*t = NewSchemaType(scalarTypeName(node))
		return nil
	case yaml.SequenceNode:
		names := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			item = resolveAlias(item)
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: type list entries must be strings, got %s", item.Line, kindName(item.Kind))
			}
			names = append(names, scalarTypeName(item))
		}
		*t = SchemaType{names: names, list: true}
		return nil
	default:
		return fmt.Errorf("line %d: type must be a string or a list of strings, got %s", node.Line, kindName(node.Kind))
	}
}

// scalarTypeName maps a YAML null spelled any way to the "null" type name.
func scalarTypeName(node *yaml.Node) string {
	if node.ShortTag() == "!!null" {
		return TypeNull
	}
	return node.Value
}
