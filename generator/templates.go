package generator

import (
	"embed"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("").
	Funcs(templateFuncs).
	ParseFS(templateFS, "templates/*.tmpl"))

// templateFuncs provides custom functions for templates
var templateFuncs = template.FuncMap{
	"quote": tsString,
}

// executeTemplate executes a template by name into a pooled buffer sized
// for declarations and returns a copy of the output.
func executeTemplate(name string, data *FileData) ([]byte, error) {
	size := len(data.Models) + len(data.Operations)
	buf := getTemplateBuffer(size)
	defer putTemplateBuffer(buf, size)

	if err := templates.ExecuteTemplate(buf, name, data); err != nil {
		return nil, err
	}
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}
