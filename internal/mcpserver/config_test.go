package mcpserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// clearOASTSEnv clears all OASTS_* env vars to isolate tests from the ambient environment.
func clearOASTSEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OASTS_CACHE_ENABLED", "OASTS_CACHE_MAX_SIZE",
		"OASTS_CACHE_FILE_TTL", "OASTS_CACHE_URL_TTL",
		"OASTS_CACHE_CONTENT_TTL", "OASTS_CACHE_SWEEP_INTERVAL",
		"OASTS_LIST_LIMIT", "OASTS_MAX_LIMIT",
		"OASTS_GENERATE_STRICT", "OASTS_MODELS_ALIAS", "OASTS_HEADER",
		"OASTS_MAX_INPUT_SIZE", "OASTS_ALLOW_PRIVATE_IPS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearOASTSEnv(t)

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 5*time.Minute, c.CacheURLTTL)
	assert.Equal(t, 15*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 60*time.Second, c.CacheSweepInterval)
	assert.Equal(t, 100, c.ListLimit)
	assert.Equal(t, 1000, c.MaxLimit)
	assert.False(t, c.GenerateStrict)
	assert.Equal(t, "models", c.GenerateModelsAlias)
	assert.Empty(t, c.GenerateHeader)
	assert.Equal(t, int64(10*1024*1024), c.MaxInputSize)
	assert.False(t, c.AllowPrivateIPs)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearOASTSEnv(t)
	t.Setenv("OASTS_CACHE_ENABLED", "false")
	t.Setenv("OASTS_CACHE_MAX_SIZE", "50")
	t.Setenv("OASTS_CACHE_FILE_TTL", "30m")
	t.Setenv("OASTS_CACHE_URL_TTL", "2m")
	t.Setenv("OASTS_CACHE_CONTENT_TTL", "10m")
	t.Setenv("OASTS_CACHE_SWEEP_INTERVAL", "30s")
	t.Setenv("OASTS_LIST_LIMIT", "200")
	t.Setenv("OASTS_MAX_LIMIT", "500")
	t.Setenv("OASTS_GENERATE_STRICT", "true")
	t.Setenv("OASTS_MODELS_ALIAS", "api")
	t.Setenv("OASTS_HEADER", "Code generated by oasts. DO NOT EDIT.")
	t.Setenv("OASTS_MAX_INPUT_SIZE", "5242880")
	t.Setenv("OASTS_ALLOW_PRIVATE_IPS", "true")

	c := loadConfig()

	assert.False(t, c.CacheEnabled)
	assert.Equal(t, 50, c.CacheMaxSize)
	assert.Equal(t, 30*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 2*time.Minute, c.CacheURLTTL)
	assert.Equal(t, 10*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 30*time.Second, c.CacheSweepInterval)
	assert.Equal(t, 200, c.ListLimit)
	assert.Equal(t, 500, c.MaxLimit)
	assert.True(t, c.GenerateStrict)
	assert.Equal(t, "api", c.GenerateModelsAlias)
	assert.Equal(t, "Code generated by oasts. DO NOT EDIT.", c.GenerateHeader)
	assert.Equal(t, int64(5242880), c.MaxInputSize)
	assert.True(t, c.AllowPrivateIPs)
}

func TestLoadConfig_InvalidValues_UseDefaults(t *testing.T) {
	clearOASTSEnv(t)
	t.Setenv("OASTS_CACHE_MAX_SIZE", "banana")
	t.Setenv("OASTS_CACHE_FILE_TTL", "not-a-duration")
	t.Setenv("OASTS_CACHE_ENABLED", "maybe")
	t.Setenv("OASTS_LIST_LIMIT", "-5")
	t.Setenv("OASTS_MODELS_ALIAS", "my-models")
	t.Setenv("OASTS_MAX_INPUT_SIZE", "abc")
	t.Setenv("OASTS_MAX_LIMIT", "0")

	c := loadConfig()

	// Invalid values should fall back to defaults.
	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 100, c.ListLimit)
	assert.Equal(t, "models", c.GenerateModelsAlias, "an alias that is not an identifier falls back")
	assert.Equal(t, int64(10*1024*1024), c.MaxInputSize)
	assert.Equal(t, 1000, c.MaxLimit)
}

func TestLoadConfig_PartialOverrides(t *testing.T) {
	clearOASTSEnv(t)
	t.Setenv("OASTS_LIST_LIMIT", "42")
	t.Setenv("OASTS_CACHE_URL_TTL", "10m")

	c := loadConfig()

	assert.Equal(t, 42, c.ListLimit)
	assert.Equal(t, 10*time.Minute, c.CacheURLTTL)
	// Unchanged defaults:
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.True(t, c.CacheEnabled)
}
