package parser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/erraggy/oasts/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalYAML = `openapi: 3.1.0
info:
  title: Test API
  version: 1.0.0
paths:
  /b:
    get:
      responses: {}
  /a:
    post:
      responses: {}
    get:
      responses: {}
components:
  schemas:
    Zebra:
      type: string
    Apple:
      type: number
`

const minimalJSON = `{
  "openapi": "3.1.1",
  "info": {"title": "Test API", "version": "1.0.0"},
  "paths": {
    "/users": {"get": {"operationId": "listUsers", "responses": {}}}
  },
  "components": {"schemas": {"User": {"type": "object"}}}
}`

func TestParseBytes(t *testing.T) {
	p := New()

	t.Run("yaml", func(t *testing.T) {
		result, err := p.ParseBytes([]byte(minimalYAML))
		require.NoError(t, err)

		assert.Equal(t, "3.1.0", result.Version)
		assert.Equal(t, OASVersion310, result.OASVersion)
		assert.Equal(t, SourceFormatYAML, result.SourceFormat)
		assert.Equal(t, "ParseBytes.yaml", result.SourcePath)
		assert.Equal(t, int64(len(minimalYAML)), result.SourceSize)
		assert.Equal(t, DocumentStats{PathCount: 2, OperationCount: 3, SchemaCount: 2}, result.Stats)

		require.NotNil(t, result.Document.Info)
		assert.Equal(t, "Test API", result.Document.Info.Title)
	})

	t.Run("json", func(t *testing.T) {
		result, err := p.ParseBytes([]byte(minimalJSON))
		require.NoError(t, err)

		assert.Equal(t, OASVersion311, result.OASVersion)
		assert.Equal(t, SourceFormatJSON, result.SourceFormat)
		assert.Equal(t, "ParseBytes.json", result.SourcePath)

		item, ok := result.Document.Paths.Get("/users")
		require.True(t, ok)
		require.NotNil(t, item.Get)
		assert.Equal(t, "listUsers", item.Get.OperationID)
	})
}

func TestParsePreservesDocumentOrder(t *testing.T) {
	result, err := New().ParseBytes([]byte(minimalYAML))
	require.NoError(t, err)

	assert.Equal(t, []string{"/b", "/a"}, result.Document.Paths.Keys())
	assert.Equal(t, []string{"Zebra", "Apple"}, result.Document.Schemas().Keys())
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("format from extension", func(t *testing.T) {
		path := filepath.Join(dir, "api.json")
		require.NoError(t, os.WriteFile(path, []byte(minimalJSON), 0600))

		result, err := New().Parse(path)
		require.NoError(t, err)
		assert.Equal(t, path, result.SourcePath)
		assert.Equal(t, SourceFormatJSON, result.SourceFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := New().Parse(filepath.Join(dir, "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parser: failed to read file")
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestParseReader(t *testing.T) {
	result, err := New().ParseReader(strings.NewReader(minimalYAML))
	require.NoError(t, err)
	assert.Equal(t, "ParseReader.yaml", result.SourcePath)
	assert.Equal(t, 2, result.Stats.SchemaCount)
}

func TestParseVersionErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		version string
	}{
		{"swagger 2", "swagger: '2.0'\ninfo: {title: t, version: v}\n", ""},
		{"openapi 3.0", "openapi: 3.0.3\ninfo: {title: t, version: v}\n", "3.0.3"},
		{"openapi 3.2", "openapi: 3.2.0\n", "3.2.0"},
		{"no patch", "openapi: '3.1'\n", "3.1"},
		{"prerelease", "openapi: 3.1.0-rc1\n", "3.1.0-rc1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().ParseBytes([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, oaserrors.ErrUnsupportedVersion)

			var verr *oaserrors.VersionError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.version, verr.Version)
			assert.Equal(t, SupportedVersions, verr.Supported)
			if tt.version != "" {
				assert.Contains(t, err.Error(), tt.version)
			}
		})
	}
}

func TestParseDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"empty", "", "document is empty"},
		{"not a mapping", "- a\n- b\n", "document root must be a mapping"},
		{"syntax", "openapi: 3.1.0\ninfo: [unclosed\n", "failed to decode document"},
		{"paths not a mapping", "openapi: 3.1.0\npaths: [1, 2]\n", "invalid document structure"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().ParseBytes([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, oaserrors.ErrParse)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestParseAnchorsAndAliases(t *testing.T) {
	input := `openapi: 3.1.0
info: {title: t, version: v}
components:
  schemas:
    Base: &base
      type: object
      properties:
        id: {type: string}
    Copy: *base
`
	result, err := New().ParseBytes([]byte(input))
	require.NoError(t, err)

	copied, ok := result.Document.Schemas().Get("Copy")
	require.True(t, ok)
	assert.True(t, copied.Type.Is(TypeObject))
	assert.Equal(t, []string{"id"}, copied.Properties.Keys())
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{-1, "-1 B"},
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{1024 * 1024, "1.0 MiB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBytes(tt.size))
	}
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, SourceFormatJSON, detectFormatFromPath("a/b.JSON"))
	assert.Equal(t, SourceFormatYAML, detectFormatFromPath("a.yml"))
	assert.Equal(t, SourceFormatUnknown, detectFormatFromPath("a.txt"))

	assert.Equal(t, SourceFormatJSON, detectFormatFromContent([]byte("  \n{}")))
	assert.Equal(t, SourceFormatYAML, detectFormatFromContent([]byte("openapi: 3.1.0")))
	assert.Equal(t, SourceFormatUnknown, detectFormatFromContent([]byte(" \t")))
}
