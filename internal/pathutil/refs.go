package pathutil

import "strings"

// RefPrefixSchemas is the local reference prefix of component schemas.
const RefPrefixSchemas = "#/components/schemas/"

// RefPrefixPathItems is the local reference prefix of component path items.
const RefPrefixPathItems = "#/components/pathItems/"

// ComponentName returns the component name a reference points at when ref
// is prefix followed by a single path segment. Pointers that descend into a
// component ("#/components/schemas/Pet/properties/id") do not name one.
func ComponentName(ref, prefix string) (string, bool) {
	name, ok := strings.CutPrefix(ref, prefix)
	if !ok || name == "" || strings.Contains(name, "/") {
		return "", false
	}
	return name, true
}
