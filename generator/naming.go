// This file maps schema names and operation identifiers to valid TypeScript
// identifiers.

package generator

import (
	"strings"
	"unicode"
)

// tsReservedWords contains the words that cannot name a type alias or a
// namespace in a TypeScript module.
var tsReservedWords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true, "do": true,
	"else": true, "enum": true, "export": true, "extends": true, "false": true,
	"finally": true, "for": true, "function": true, "if": true, "import": true,
	"in": true, "instanceof": true, "new": true, "null": true, "return": true,
	"super": true, "switch": true, "this": true, "throw": true, "true": true,
	"try": true, "typeof": true, "var": true, "void": true, "while": true,
	"with": true, "implements": true, "interface": true, "let": true,
	"package": true, "private": true, "protected": true, "public": true,
	"static": true, "yield": true, "await": true,
	// Predefined type names cannot be reused for type aliases.
	"any": true, "boolean": true, "never": true, "number": true, "object": true,
	"string": true, "symbol": true, "undefined": true, "unknown": true, "bigint": true,
}

// tsIdentifier returns name as a valid TypeScript identifier. Characters
// that may not appear in an identifier become "_", a leading digit gets a
// "_" prefix and reserved words get a "_" suffix. Valid names are returned
// unchanged.
func tsIdentifier(name string) string {
	if name == "" {
		return "_"
	}
	var b strings.Builder
	for i, r := range name {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
			b.WriteRune(r)
		case unicode.IsDigit(r):
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	id := b.String()
	if tsReservedWords[id] {
		id += "_"
	}
	return id
}
