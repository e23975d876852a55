package generator

// FileData is the data passed to every file template.
type FileData struct {
	// Header holds the banner as rendered line comments
	Header []string
	// Imports holds rendered import statements
	Imports []string
	// Models holds one entry per component schema
	Models []ModelData
	// Operations holds one entry per operation
	Operations []OperationData
}

// ModelData contains data for one schema declaration.
type ModelData struct {
	// Doc holds the JSDoc block lines, if any
	Doc []string
	// Name is the declared identifier
	Name string
	// Type is the rendered type expression
	Type string
}

// OperationData contains data for one operation namespace.
type OperationData struct {
	Doc       []string
	Namespace string
	Method    string
	Path      string
	Params    string
	Query     string
	Body      string
	Response  string
}
