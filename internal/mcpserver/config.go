package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/erraggy/oasts/generator"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheURLTTL        time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// Listing defaults.
	ListLimit int
	MaxLimit  int

	// Generate tool defaults.
	GenerateStrict      bool
	GenerateModelsAlias string
	GenerateHeader      string

	// Input limits.
	MaxInputSize    int64
	AllowPrivateIPs bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OASTS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:        envBool("OASTS_CACHE_ENABLED", true),
		CacheMaxSize:        envInt("OASTS_CACHE_MAX_SIZE", 10),
		CacheFileTTL:        envDuration("OASTS_CACHE_FILE_TTL", 15*time.Minute),
		CacheURLTTL:         envDuration("OASTS_CACHE_URL_TTL", 5*time.Minute),
		CacheContentTTL:     envDuration("OASTS_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval:  envDuration("OASTS_CACHE_SWEEP_INTERVAL", 60*time.Second),
		ListLimit:           envInt("OASTS_LIST_LIMIT", 100),
		MaxLimit:            envInt("OASTS_MAX_LIMIT", 1000),
		GenerateStrict:      envBool("OASTS_GENERATE_STRICT", false),
		GenerateModelsAlias: envIdentifier("OASTS_MODELS_ALIAS", generator.DefaultModelsAlias),
		GenerateHeader:      os.Getenv("OASTS_HEADER"),
		MaxInputSize:        int64(envInt("OASTS_MAX_INPUT_SIZE", 10*1024*1024)),
		AllowPrivateIPs:     envBool("OASTS_ALLOW_PRIVATE_IPS", false),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

// envIdentifier reads a models alias, rejecting values the generator would
// refuse.
func envIdentifier(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if err := generator.ValidateModelsAlias(v); err != nil {
		slog.Warn("invalid models alias env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}
