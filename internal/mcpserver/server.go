// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oasts capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/erraggy/oasts"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `oasts MCP server: inspects OpenAPI 3.1 documents and renders their schemas and operations as TypeScript declarations.

Configuration: defaults are set through OASTS_* environment variables in your MCP client config.

Key settings:
- OASTS_CACHE_FILE_TTL (default: 15m): cache TTL for local file documents
- OASTS_CACHE_URL_TTL (default: 5m): cache TTL for URL-fetched documents
- OASTS_CACHE_ENABLED (default: true): disable document caching entirely
- OASTS_LIST_LIMIT (default: 100): default result limit for list tools
- OASTS_GENERATE_STRICT (default: false): fail generation on warnings
- OASTS_MODELS_ALIAS (default: models): namespace operations.ts imports models.ts under
- OASTS_HEADER: banner comment written at the top of generated files
- OASTS_MAX_INPUT_SIZE (default: 10MiB): size limit for inline and fetched documents

Caching: parsed documents are cached per session. File entries use path+mtime as key. URL entries are cached with a shorter TTL. A background sweeper removes expired entries.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		specCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasts", Version: oasts.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse",
		Description: "Parse an OpenAPI 3.1 document. Returns a summary: title, version, format, and path/operation/schema counts. Documents declaring any other openapi version are rejected.",
	}, handleParse)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_schemas",
		Description: "List the component schemas of an OpenAPI 3.1 document with the TypeScript type each one renders to. Filter by name (supports * glob) or by AST kind (ref, atom, intersection, union, enum, array, object). Use group_by=kind to get distribution counts instead of individual items.",
	}, handleListSchemas)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_operations",
		Description: "List the operations of an OpenAPI 3.1 document with their TypeScript signatures: path parameters, query parameters, request body and responses. Filter by method, path (supports * glob) or tag. Use group_by (method or tag) to get distribution counts instead of individual items.",
	}, handleListOperations)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate TypeScript declarations from an OpenAPI 3.1 document. Produces responses.ts, models.ts and operations.ts, or a single types.ts with single_file=true. With output_dir the files are written to disk and a manifest is returned; without it the file contents are returned inline.",
	}, handleGenerate)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ListLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ListLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// pathPattern matches absolute filesystem paths so error messages do not
// leak the server's directory layout to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// groupCount represents a single group in group_by results.
type groupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// groupAndSort groups items by key, sorts by count descending (ties
// broken alphabetically by key), and returns the sorted groups.
func groupAndSort[T any](items []T, keyFn func(T) []string) []groupCount {
	counts := make(map[string]int)
	for _, item := range items {
		for _, key := range keyFn(item) {
			counts[key]++
		}
	}
	groups := make([]groupCount, 0, len(counts))
	for key, count := range counts {
		groups = append(groups, groupCount{Key: key, Count: count})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Key < groups[j].Key
	})
	return groups
}

// validateGroupBy checks that group_by is one of allowed.
func validateGroupBy(groupBy string, allowed []string) error {
	if groupBy == "" {
		return nil
	}
	for _, a := range allowed {
		if strings.EqualFold(groupBy, a) {
			return nil
		}
	}
	return fmt.Errorf("invalid group_by value %q; valid values: %s", groupBy, strings.Join(allowed, ", "))
}

// validateGlobPattern checks whether a glob pattern is syntactically valid.
// Call this once before a filter loop so matchGlob never encounters an
// invalid pattern at match time.
func validateGlobPattern(pattern string) error {
	if pattern == "" || !strings.ContainsAny(pattern, "*?[") {
		return nil
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	return nil
}

// matchGlob matches name against a case-insensitive glob. A pattern
// without wildcards must match exactly, ignoring case.
func matchGlob(name, pattern string) bool {
	if strings.ContainsAny(pattern, "*?[") {
		matched, err := filepath.Match(strings.ToLower(pattern), strings.ToLower(name))
		return err == nil && matched
	}
	return strings.EqualFold(name, pattern)
}
