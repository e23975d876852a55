package parser

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWithOptions_InputSources(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalYAML), 0600))

	tests := []struct {
		name       string
		opts       []Option
		sourcePath string
	}{
		{"file path", []Option{WithFilePath(path)}, path},
		{"reader", []Option{WithReader(strings.NewReader(minimalYAML))}, "ParseReader.yaml"},
		{"bytes", []Option{WithBytes([]byte(minimalYAML))}, "ParseBytes.yaml"},
		{"source name", []Option{WithBytes([]byte(minimalYAML)), WithSourceName("users-api")}, "users-api"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseWithOptions(tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.sourcePath, result.SourcePath)
			assert.Equal(t, "3.1.0", result.Version)
		})
	}
}

func TestParseWithOptions_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr string
	}{
		{"no source", nil, "must specify an input source"},
		{"two sources", []Option{WithFilePath("a.yaml"), WithBytes([]byte("x"))}, "exactly one input source"},
		{"nil reader", []Option{WithReader(nil)}, "reader cannot be nil"},
		{"nil bytes", []Option{WithBytes(nil)}, "bytes cannot be nil"},
		{"empty source name", []Option{WithBytes([]byte("x")), WithSourceName("")}, "source name cannot be empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWithOptions(tt.opts...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "parser: invalid options")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseWithOptions_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	_, err := ParseWithOptions(WithBytes([]byte(minimalYAML)), WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "decoded document")
	assert.Contains(t, out, "schemas=2")
	assert.Contains(t, out, "source=ParseBytes.yaml")
}
