package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/erraggy/oasts/internal/testutil"
	"github.com/erraggy/oasts/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecInput_ResolveFile(t *testing.T) {
	specCache.reset()
	input := specInput{File: testutil.WriteTempSpec(t, "petstore.yaml", testutil.PetStoreSpec)}
	result, err := input.resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "3.1.0", result.Version)
	assert.Equal(t, 4, result.Stats.SchemaCount)
}

func TestSpecInput_ResolveContent(t *testing.T) {
	specCache.reset()
	input := specInput{Content: testutil.UserSpec}
	result, err := input.resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "3.1.0", result.Version)
}

func TestSpecInput_ResolveInputCount(t *testing.T) {
	tests := []struct {
		name  string
		input specInput
	}{
		{"none", specInput{}},
		{"file and content", specInput{File: "foo.yaml", Content: "bar"}},
		{"all three", specInput{File: "foo.yaml", URL: "https://example.com/a.yaml", Content: "bar"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.input.resolve(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "exactly one of file, url, or content must be provided")
		})
	}
}

func TestSpecInput_ResolveErrors(t *testing.T) {
	specCache.reset()

	t.Run("missing file", func(t *testing.T) {
		_, err := specInput{File: "/nonexistent/path.yaml"}.resolve(context.Background())
		assert.Error(t, err)
	})

	t.Run("unsupported version", func(t *testing.T) {
		_, err := specInput{Content: "openapi: 3.0.3\ninfo: {title: t, version: '1'}\npaths: {}\n"}.resolve(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrUnsupportedVersion))
	})

	t.Run("content too large", func(t *testing.T) {
		old := cfg.MaxInputSize
		cfg.MaxInputSize = 16
		t.Cleanup(func() { cfg.MaxInputSize = old })

		_, err := specInput{Content: testutil.UserSpec}.resolve(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds maximum 16 bytes")
	})
}

func TestSpecInput_ResolveURL(t *testing.T) {
	specCache.reset()
	old := cfg.AllowPrivateIPs
	cfg.AllowPrivateIPs = true
	t.Cleanup(func() { cfg.AllowPrivateIPs = old })

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path != "/openapi.yaml" {
			http.NotFound(w, r)
			return
		}
		assert.Contains(t, r.Header.Get("User-Agent"), "oasts/")
		_, _ = fmt.Fprint(w, testutil.ItemsSpec)
	}))
	t.Cleanup(srv.Close)

	input := specInput{URL: srv.URL + "/openapi.yaml"}
	result, err := input.resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats.OperationCount)

	_, err = input.resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load(), "second resolve should be served from the cache")

	_, err = specInput{URL: srv.URL + "/missing.yaml"}.resolve(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestSpecInput_ResolveURL_BlocksLoopback(t *testing.T) {
	specCache.reset()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, testutil.UserSpec)
	}))
	t.Cleanup(srv.Close)

	old := cfg.AllowPrivateIPs
	cfg.AllowPrivateIPs = false
	t.Cleanup(func() { cfg.AllowPrivateIPs = old })

	_, err := specInput{URL: srv.URL + "/openapi.yaml"}.resolve(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blocked request to private/loopback IP")
}

func TestSpecCache_HitOnSameFile(t *testing.T) {
	specCache.reset()
	input := specInput{File: testutil.WriteTempSpec(t, "user.yaml", testutil.UserSpec)}

	result1, err := input.resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, specCache.size())

	result2, err := input.resolve(context.Background())
	require.NoError(t, err)
	assert.Same(t, result1, result2, "expected same pointer from cache hit")
}

func TestSpecCache_MissOnModifiedFile(t *testing.T) {
	specCache.reset()

	path := filepath.Join(t.TempDir(), "spec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testutil.UserSpec), 0o644))

	input := specInput{File: path}
	result1, err := input.resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Users", result1.Document.Info.Title)

	require.NoError(t, os.WriteFile(path, []byte(testutil.ItemsSpec), 0o644))
	// Ensure mtime differs from the first write on coarse-grained filesystems.
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	result2, err := input.resolve(context.Background())
	require.NoError(t, err)
	assert.NotSame(t, result1, result2)
	assert.Equal(t, "Items", result2.Document.Info.Title)
}

func TestSpecCache_ContentHash(t *testing.T) {
	specCache.reset()
	input := specInput{Content: testutil.UserSpec}

	result1, err := input.resolve(context.Background())
	require.NoError(t, err)
	result2, err := input.resolve(context.Background())
	require.NoError(t, err)
	assert.Same(t, result1, result2)
}

func TestSpecCache_Disabled(t *testing.T) {
	specCache.reset()
	old := cfg.CacheEnabled
	cfg.CacheEnabled = false
	t.Cleanup(func() { cfg.CacheEnabled = old })

	input := specInput{Content: testutil.UserSpec}
	result1, err := input.resolve(context.Background())
	require.NoError(t, err)
	result2, err := input.resolve(context.Background())
	require.NoError(t, err)
	assert.NotSame(t, result1, result2)
	assert.Zero(t, specCache.size())
}

func TestSpecCache_LRUEviction(t *testing.T) {
	specCache.reset()

	var firstKey string
	for i := range specCache.maxSize + 1 {
		input := specInput{Content: fmt.Sprintf("openapi: 3.1.0\ninfo: {title: \"Spec %d\", version: \"1\"}\npaths: {}\n", i)}
		if i == 0 {
			firstKey, _ = input.cacheKey()
		}
		_, err := input.resolve(context.Background())
		require.NoError(t, err)
	}

	assert.Equal(t, specCache.maxSize, specCache.size())
	assert.Nil(t, specCache.get(firstKey), "oldest entry should have been evicted")
}

func TestSpecCache_Expiry(t *testing.T) {
	specCache.reset()
	specCache.put("content:expired", nil, -time.Second)
	specCache.put("content:fresh", nil, time.Hour)

	specCache.sweep()
	assert.Equal(t, 1, specCache.size())

	specCache.put("content:stale", nil, -time.Second)
	assert.Nil(t, specCache.get("content:stale"))
	assert.Equal(t, 1, specCache.size(), "get should drop the expired entry")
}

func TestSpecCache_Sweeper(t *testing.T) {
	store := &specCacheStore{entries: make(map[string]*cacheEntry), maxSize: 4}
	store.put("content:a", nil, -time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	store.startSweeper(ctx, 10*time.Millisecond)
	store.startSweeper(ctx, 10*time.Millisecond)

	assert.Eventually(t, func() bool { return store.size() == 0 }, time.Second, 5*time.Millisecond)
}
