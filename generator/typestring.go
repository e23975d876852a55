package generator

import (
	"strings"

	"github.com/erraggy/oasts/ast"
)

// TypeStringGenerator renders an AST as a TypeScript type expression.
type TypeStringGenerator struct {
	// RefNamePrefix is prepended to every referenced schema name,
	// e.g. "models." when the declarations live in another module.
	RefNamePrefix string

	// RefName maps a referenced schema name to the identifier it is
	// declared under. Nil leaves names as they are.
	RefName func(name string) string

	// ReadOnlyModifier emits "readonly " before read-only properties.
	ReadOnlyModifier bool
}

// Generate returns the TypeScript rendering of n.
func (g *TypeStringGenerator) Generate(n ast.Node) string {
	var b strings.Builder
	g.write(&b, n)
	return b.String()
}

func (g *TypeStringGenerator) write(b *strings.Builder, n ast.Node) {
	switch n := n.(type) {
	case *ast.Ref:
		b.WriteString(g.RefNamePrefix)
		if g.RefName != nil {
			b.WriteString(g.RefName(n.Name))
		} else {
			b.WriteString(n.Name)
		}
	case *ast.Atom:
		b.WriteString(string(n.Name))
	case *ast.Intersection:
		g.writeList(b, n.Children, " & ")
	case *ast.Union:
		g.writeList(b, n.Children, " | ")
	case *ast.Enum:
		b.WriteString(strings.Join(n.Cases, " | "))
	case *ast.Array:
		b.WriteString("Array<")
		g.write(b, n.Child)
		b.WriteByte('>')
	case *ast.Object:
		b.WriteString("{ ")
		for i, prop := range n.Properties {
			if i > 0 {
				b.WriteByte(' ')
			}
			if g.ReadOnlyModifier && prop.ReadOnly {
				b.WriteString("readonly ")
			}
			b.WriteString(tsString(prop.Name))
			if !prop.Required {
				b.WriteByte('?')
			}
			b.WriteString(": ")
			g.write(b, prop.Schema)
			b.WriteByte(';')
		}
		b.WriteString(" }")
	default:
		b.WriteString(string(ast.AtomUnknown))
	}
}

func (g *TypeStringGenerator) writeList(b *strings.Builder, nodes []ast.Node, sep string) {
	for i, child := range nodes {
		if i > 0 {
			b.WriteString(sep)
		}
		g.write(b, child)
	}
}
