package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateParams(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "single parameter", input: "/pets/{petId}", want: []string{"petId"}},
		{name: "multiple parameters", input: "/pets/{petId}/owners/{ownerId}", want: []string{"petId", "ownerId"}},
		{name: "no parameters", input: "/pets/all"},
		{name: "parameter at start", input: "{version}/pets", want: []string{"version"}},
		{name: "parameter inside a segment", input: "/files/{name}.{ext}", want: []string{"name", "ext"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TemplateParams(tt.input))
		})
	}
}

func TestComponentName(t *testing.T) {
	tests := []struct {
		ref    string
		prefix string
		want   string
		wantOK bool
	}{
		{ref: "#/components/schemas/Pet", prefix: RefPrefixSchemas, want: "Pet", wantOK: true},
		{ref: "#/components/schemas/Pet.Status", prefix: RefPrefixSchemas, want: "Pet.Status", wantOK: true},
		{ref: "#/components/schemas/Pet/properties/id", prefix: RefPrefixSchemas},
		{ref: "#/components/schemas/", prefix: RefPrefixSchemas},
		{ref: "#/components/parameters/Limit", prefix: RefPrefixSchemas},
		{ref: "#/components/parameters/Limit", prefix: "#/components/parameters/", want: "Limit", wantOK: true},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, ok := ComponentName(tt.ref, tt.prefix)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
