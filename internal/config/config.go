package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration, materialized once from the
// environment and injected into the components that need it.
type Config struct {
	Stage       string
	Port        string
	DatabaseURL string

	CORSAllowedOrigins []string

	// RPCEndpoints maps a chain id to its JSON-RPC URL.
	RPCEndpoints map[int64]string

	CoinMarketCapAPIKey string
	CoinGeckoBaseURL    string

	WorkerCount  int
	PollInterval time.Duration
	JobTimeout   time.Duration
	MaxAttempts  int32
}

// Load reads configuration from the environment. DATABASE_URL is the only
// strictly required variable; everything else has a sensible default.
func Load() (*Config, error) {
	cfg := &Config{
		Stage:               getEnvWithDefault("STAGE", "local"),
		Port:                getEnvWithDefault("API_PORT", "8000"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		CoinMarketCapAPIKey: os.Getenv("CMC_API_KEY"),
		CoinGeckoBaseURL:    getEnvWithDefault("COINGECKO_BASE_URL", "https://api.coingecko.com"),
		WorkerCount:         getEnvIntWithDefault("WORKER_COUNT", 4),
		PollInterval:        getEnvDurationWithDefault("JOB_POLL_INTERVAL", time.Second),
		JobTimeout:          getEnvDurationWithDefault("JOB_TIMEOUT", 2*time.Minute),
		MaxAttempts:         int32(getEnvIntWithDefault("JOB_MAX_ATTEMPTS", 3)),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, strings.TrimSpace(origin))
		}
	} else {
		cfg.CORSAllowedOrigins = []string{"http://localhost:3000"}
	}

	endpoints, err := parseRPCEndpoints(os.Getenv("RPC_ENDPOINTS"))
	if err != nil {
		return nil, err
	}
	cfg.RPCEndpoints = endpoints

	return cfg, nil
}

// parseRPCEndpoints parses a comma-separated "chainId=url" list, e.g.
// "1=https://mainnet.example/v3/key,10=https://optimism.example/v3/key".
func parseRPCEndpoints(raw string) (map[int64]string, error) {
	endpoints := make(map[int64]string)
	if raw == "" {
		return endpoints, nil
	}

	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid RPC_ENDPOINTS entry %q, expected chainId=url", pair)
		}
		chainID, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid chain id in RPC_ENDPOINTS entry %q: %w", pair, err)
		}
		endpoints[chainID] = strings.TrimSpace(parts[1])
	}
	return endpoints, nil
}

func getEnvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvIntWithDefault(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDurationWithDefault(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}
