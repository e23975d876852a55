package parser

import (
	"go.yaml.in/yaml/v4"
)

// Document is an OpenAPI 3.1 document reduced to the parts that describe
// data types and operations. Maps whose order carries meaning are decoded
// into OrderedMap so iteration follows the source document.
type Document struct {
	OpenAPI    string                 `yaml:"openapi"`
	Info       *Info                  `yaml:"info,omitempty"`
	Paths      *OrderedMap[*PathItem] `yaml:"paths,omitempty"`
	Components *Components            `yaml:"components,omitempty"`

	// root is the decoded node tree the Document was built from.
	root *yaml.Node
}

// Root returns the mapping node of the decoded document.
// Reference resolution walks this tree.
func (d *Document) Root() *yaml.Node {
	if d == nil {
		return nil
	}
	return d.root
}

// Resolver returns a Resolver bound to this document.
func (d *Document) Resolver() *Resolver {
	return NewResolver(d.Root())
}

// Schemas returns components.schemas, or nil when the document has none.
func (d *Document) Schemas() *OrderedMap[*Schema] {
	if d == nil || d.Components == nil {
		return nil
	}
	return d.Components.Schemas
}

// Info provides metadata about the API.
type Info struct {
	Title       string `yaml:"title"`
	Version     string `yaml:"version"`
	Summary     string `yaml:"summary,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// Components holds the reusable objects that references may point at.
type Components struct {
	Schemas       *OrderedMap[*Schema]      `yaml:"schemas,omitempty"`
	Parameters    *OrderedMap[*Parameter]   `yaml:"parameters,omitempty"`
	RequestBodies *OrderedMap[*RequestBody] `yaml:"requestBodies,omitempty"`
	Responses     *OrderedMap[*Response]    `yaml:"responses,omitempty"`
	PathItems     *OrderedMap[*PathItem]    `yaml:"pathItems,omitempty"`
}
