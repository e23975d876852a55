package generator

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/erraggy/oasts/internal/testutil"
	"github.com/erraggy/oasts/oaserrors"
	"github.com/erraggy/oasts/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	g := New()

	require.NotNil(t, g, "New() should not return nil")
	assert.Equal(t, DefaultModelsAlias, g.ModelsAlias)
	assert.False(t, g.SingleFile, "SingleFile should be false by default")
	assert.False(t, g.ReadOnlyModifier, "ReadOnlyModifier should be false by default")
	assert.True(t, g.IncludeInfo, "IncludeInfo should be true by default")
	assert.Empty(t, g.Header)
}

func TestGenerateWithOptions_RequiresInputSource(t *testing.T) {
	_, err := GenerateWithOptions(WithSingleFile(true))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must specify an input source")
	assert.True(t, errors.Is(err, oaserrors.ErrConfig))
}

func TestGenerateWithOptions_OnlyOneInputSource(t *testing.T) {
	_, err := GenerateWithOptions(
		WithFilePath("test.yaml"),
		WithBytes([]byte(testutil.UserSpec)),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must specify exactly one input source")
}

func TestWithModelsAlias_Invalid(t *testing.T) {
	for _, alias := range []string{"", "my-models", "default"} {
		t.Run(alias, func(t *testing.T) {
			_, err := GenerateWithOptions(
				WithBytes([]byte(testutil.UserSpec)),
				WithModelsAlias(alias),
			)
			require.Error(t, err)
			var cfgErr *oaserrors.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, "WithModelsAlias", cfgErr.Option)
		})
	}
}

func TestWithOptions(t *testing.T) {
	t.Run("WithFilePath", func(t *testing.T) {
		cfg := &generateConfig{}
		require.NoError(t, WithFilePath("test.yaml")(cfg))
		require.NotNil(t, cfg.filePath)
		assert.Equal(t, "test.yaml", *cfg.filePath)
	})

	t.Run("WithParsed nil", func(t *testing.T) {
		assert.Error(t, WithParsed(nil)(&generateConfig{}))
	})

	t.Run("WithBytes nil", func(t *testing.T) {
		assert.Error(t, WithBytes(nil)(&generateConfig{}))
	})

	t.Run("WithSingleFile", func(t *testing.T) {
		cfg := &generateConfig{}
		require.NoError(t, WithSingleFile(true)(cfg))
		assert.True(t, cfg.singleFile)
	})

	t.Run("WithHeader", func(t *testing.T) {
		cfg := &generateConfig{}
		require.NoError(t, WithHeader("banner")(cfg))
		assert.Equal(t, "banner", cfg.header)
	})

	t.Run("WithReadOnlyModifier", func(t *testing.T) {
		cfg := &generateConfig{}
		require.NoError(t, WithReadOnlyModifier(true)(cfg))
		assert.True(t, cfg.readOnlyModifier)
	})

	t.Run("WithStrictMode", func(t *testing.T) {
		cfg := &generateConfig{}
		require.NoError(t, WithStrictMode(true)(cfg))
		assert.True(t, cfg.strictMode)
	})

	t.Run("WithIncludeInfo", func(t *testing.T) {
		cfg := &generateConfig{includeInfo: true}
		require.NoError(t, WithIncludeInfo(false)(cfg))
		assert.False(t, cfg.includeInfo)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := applyOptions(WithFilePath("a.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultModelsAlias, cfg.modelsAlias)
		assert.True(t, cfg.includeInfo)
	})
}

func TestGenerate_FromFile(t *testing.T) {
	path := testutil.WriteTempSpec(t, "petstore.yaml", testutil.PetStoreSpec)

	result, err := New().Generate(path)
	require.NoError(t, err)

	assert.Equal(t, path, result.SourcePath)
	assert.Equal(t, "3.1.0", result.SourceVersion)
	assert.Equal(t, parser.OASVersion310, result.SourceOASVersion)
	assert.Equal(t, parser.SourceFormatYAML, result.SourceFormat)
	assert.Equal(t, 4, result.GeneratedTypes)
	assert.Equal(t, 3, result.GeneratedOperations)
	assert.Equal(t, 3, result.Stats.OperationCount)

	require.Len(t, result.Files, 3)
	assert.Equal(t, ResponsesFile, result.Files[0].Name)
	assert.Equal(t, ModelsFile, result.Files[1].Name)
	assert.Equal(t, OperationsFile, result.Files[2].Name)
	assert.Nil(t, result.GetFile(TypesFile))

	// The X-Request-ID header parameter is reported, not rendered.
	assert.Equal(t, 1, result.InfoCount)
	assert.False(t, result.HasWarnings())
	assert.NotContains(t, string(result.GetFile(OperationsFile).Content), "X-Request-ID")
}

func TestGenerate_MissingFile(t *testing.T) {
	_, err := New().Generate(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generator: failed to parse specification")
}

func TestGenerate_Errors(t *testing.T) {
	t.Run("unsupported version", func(t *testing.T) {
		_, err := GenerateWithOptions(WithBytes([]byte("openapi: 3.0.3\ninfo: {title: t, version: '1'}\npaths: {}\n")))
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrUnsupportedVersion))
		assert.Contains(t, err.Error(), "3.0.3")
	})

	t.Run("unresolved reference", func(t *testing.T) {
		_, err := GenerateWithOptions(WithBytes([]byte(`openapi: 3.1.0
info: {title: t, version: "1"}
paths:
  /a:
    get:
      requestBody:
        $ref: '#/components/requestBodies/Gone'
      responses: {}
`)))
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrUnresolvedReference))
		assert.Contains(t, err.Error(), "#/components/requestBodies/Gone")
	})

	t.Run("nil parse result", func(t *testing.T) {
		_, err := New().GenerateParsed(nil)
		assert.Error(t, err)
	})
}

const danglingRefSpec = `openapi: 3.1.0
info: {title: t, version: "1"}
paths:
  /a:
    get:
      operationId: getA
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/Missing'
components:
  schemas:
    Wrapper:
      type: object
      properties:
        inner:
          $ref: '#/components/schemas/Other/properties/id'
`

func TestGenerate_ReferenceWarnings(t *testing.T) {
	result, err := GenerateWithOptions(WithBytes([]byte(danglingRefSpec)))
	require.NoError(t, err)
	require.Equal(t, 2, result.WarningCount)

	var messages []string
	for _, issue := range result.Issues {
		messages = append(messages, issue.Message)
	}
	assert.Contains(t, messages, `reference "#/components/schemas/Other/properties/id" does not name a component schema`)
	assert.Contains(t, messages, `reference "#/components/schemas/Missing" names an undeclared schema`)

	// Output is unchanged by the warnings.
	assert.Contains(t, string(result.GetFile(OperationsFile).Content), "JsonResponse<200, models.Missing>")
	assert.Contains(t, string(result.GetFile(ModelsFile).Content), `export type Wrapper = { "inner"?: id; };`)
}

func TestGenerate_StrictMode(t *testing.T) {
	result, err := GenerateWithOptions(WithBytes([]byte(danglingRefSpec)), WithStrictMode(true))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strict mode")
	require.NotNil(t, result)
	assert.Equal(t, 2, result.WarningCount)

	_, err = GenerateWithOptions(WithBytes([]byte(testutil.UserSpec)), WithStrictMode(true))
	assert.NoError(t, err)
}

func TestGenerate_IncludeInfo(t *testing.T) {
	result, err := GenerateWithOptions(WithBytes([]byte(testutil.PetStoreSpec)), WithIncludeInfo(false))
	require.NoError(t, err)
	assert.Zero(t, result.InfoCount)
	for _, issue := range result.Issues {
		assert.NotEqual(t, SeverityInfo, issue.Severity)
	}
}

func TestGenerate_IdentifierCollisions(t *testing.T) {
	result, err := GenerateWithOptions(WithBytes([]byte(`openapi: 3.1.0
info: {title: t, version: "1"}
paths: {}
components:
  schemas:
    a-b: {type: string}
    a_b: {type: number}
`)))
	require.NoError(t, err)
	assert.Equal(t, 1, result.InfoCount)
	assert.Equal(t, 1, result.WarningCount)
	assert.Equal(t, "export type a_b = string;\n\nexport type a_b = number;\n", string(result.GetFile(ModelsFile).Content))
}

func TestGenerate_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := parser.NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	_, err := GenerateWithOptions(WithBytes([]byte(testutil.ItemsSpec)), WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "decoding document")
	assert.Contains(t, buf.String(), "generated declarations")
}

func TestWriteFiles(t *testing.T) {
	result, err := GenerateWithOptions(WithParsed(testutil.ParseSpec(t, testutil.ItemsSpec)))
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "src", "api")
	require.NoError(t, result.WriteFiles(dir))

	for _, f := range result.Files {
		data, err := os.ReadFile(filepath.Join(dir, f.Name))
		require.NoError(t, err)
		assert.Equal(t, f.Content, data)

		info, err := os.Stat(filepath.Join(dir, f.Name))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
	}
}

func TestWriteFiles_Rejects(t *testing.T) {
	t.Run("path separators in file names", func(t *testing.T) {
		result := &GenerateResult{Files: []GeneratedFile{{Name: "../escape.ts"}}}
		err := result.WriteFiles(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must not contain path separators")
	})

	t.Run("output path is a file", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "types.ts")
		require.NoError(t, os.WriteFile(target, nil, 0o600))

		result := &GenerateResult{Files: []GeneratedFile{{Name: "models.ts"}}}
		assert.Error(t, result.WriteFiles(target))
	})
}
