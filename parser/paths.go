package parser

// HTTP methods in the order operations are visited within a path item.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace"
)

// Methods lists the HTTP methods a path item may carry, in visiting order.
var Methods = []string{
	MethodGet,
	MethodPut,
	MethodPost,
	MethodDelete,
	MethodOptions,
	MethodHead,
	MethodPatch,
	MethodTrace,
}

// Parameter locations.
const (
	ParamInPath   = "path"
	ParamInQuery  = "query"
	ParamInHeader = "header"
	ParamInCookie = "cookie"
)

// PathItem describes the operations available on a single path.
type PathItem struct {
	Ref         string       `yaml:"$ref,omitempty"`
	Summary     string       `yaml:"summary,omitempty"`
	Description string       `yaml:"description,omitempty"`
	Get         *Operation   `yaml:"get,omitempty"`
	Put         *Operation   `yaml:"put,omitempty"`
	Post        *Operation   `yaml:"post,omitempty"`
	Delete      *Operation   `yaml:"delete,omitempty"`
	Options     *Operation   `yaml:"options,omitempty"`
	Head        *Operation   `yaml:"head,omitempty"`
	Patch       *Operation   `yaml:"patch,omitempty"`
	Trace       *Operation   `yaml:"trace,omitempty"`
	Parameters  []*Parameter `yaml:"parameters,omitempty"`
}

// Operation returns the operation for method, or nil when the path item has none.
func (p *PathItem) Operation(method string) *Operation {
	if p == nil {
		return nil
	}
	switch method {
	case MethodGet:
		return p.Get
	case MethodPut:
		return p.Put
	case MethodPost:
		return p.Post
	case MethodDelete:
		return p.Delete
	case MethodOptions:
		return p.Options
	case MethodHead:
		return p.Head
	case MethodPatch:
		return p.Patch
	case MethodTrace:
		return p.Trace
	default:
		return nil
	}
}

// Operation describes a single API operation on a path.
type Operation struct {
	OperationID string                 `yaml:"operationId,omitempty"`
	Summary     string                 `yaml:"summary,omitempty"`
	Description string                 `yaml:"description,omitempty"`
	Tags        []string               `yaml:"tags,omitempty"`
	Deprecated  bool                   `yaml:"deprecated,omitempty"`
	Parameters  []*Parameter           `yaml:"parameters,omitempty"`
	RequestBody *RequestBody           `yaml:"requestBody,omitempty"`
	Responses   *OrderedMap[*Response] `yaml:"responses,omitempty"`
}

// Parameter describes a single operation parameter, or a reference to one.
type Parameter struct {
	Ref         string  `yaml:"$ref,omitempty"`
	Name        string  `yaml:"name,omitempty"`
	In          string  `yaml:"in,omitempty"`
	Description string  `yaml:"description,omitempty"`
	Required    bool    `yaml:"required,omitempty"`
	Deprecated  bool    `yaml:"deprecated,omitempty"`
	Schema      *Schema `yaml:"schema,omitempty"`
}

// RequestBody describes a request body, or a reference to one.
type RequestBody struct {
	Ref         string                  `yaml:"$ref,omitempty"`
	Description string                  `yaml:"description,omitempty"`
	Required    bool                    `yaml:"required,omitempty"`
	Content     *OrderedMap[*MediaType] `yaml:"content,omitempty"`
}

// Response describes a single response, or a reference to one.
type Response struct {
	Ref         string                  `yaml:"$ref,omitempty"`
	Description string                  `yaml:"description,omitempty"`
	Content     *OrderedMap[*MediaType] `yaml:"content,omitempty"`
}

// MediaType pairs a media type with the schema of its payload.
type MediaType struct {
	Schema *Schema `yaml:"schema,omitempty"`
}
