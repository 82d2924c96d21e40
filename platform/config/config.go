// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
}

// NomisConfig provides settings for the NOMIS statistics client.
type NomisConfig interface {
	GetNomisBaseURL() string
	GetNomisTimeout() time.Duration
	GetNomisMaxRetries() int
	GetNomisRequestsPerSecond() float64
}

// RedisConfig provides settings for the Redis fetch cache and task queue.
type RedisConfig interface {
	GetRedisURL() string
	GetFetchCacheTTL() time.Duration
	IsRedisEnabled() bool
}

// DataConfig provides locations of the local reference data files.
type DataConfig interface {
	GetDataDir() string
	GetStationsFile() string
}

// SchedulerConfig provides settings for the background cache-warm worker.
type SchedulerConfig interface {
	RedisConfig
	GetAsynqQueueName() string
	GetAsynqConcurrency() int
	GetCacheWarmInterval() time.Duration
}

// Config holds all application configuration loaded from the environment.
type Config struct {
	Env                string
	HTTPAddr           string
	CORSAllowAll       bool
	CORSOrigins        []string
	NomisBaseURL       string
	NomisTimeout       time.Duration
	NomisMaxRetries    int
	NomisRatePerSecond float64
	RedisURL           string
	FetchCacheTTL      time.Duration
	DataDir            string
	StationsFile       string
	AsynqQueueName     string
	AsynqConcurrency   int
	CacheWarmInterval  time.Duration
}

// Load reads configuration from the environment (and .env when present).
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                getEnv("APP_ENV", "development"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:       corsAllowAll,
		CORSOrigins:        corsOrigins,
		NomisBaseURL:       getEnv("NOMIS_BASE_URL", "https://www.nomisweb.co.uk/api/v01"),
		NomisTimeout:       mustDuration(getEnv("NOMIS_TIMEOUT", "30s")),
		NomisMaxRetries:    mustInt(getEnv("NOMIS_MAX_RETRIES", "2")),
		NomisRatePerSecond: mustFloat(getEnv("NOMIS_RATE_PER_SECOND", "5")),
		RedisURL:           getEnv("REDIS_URL", ""),
		FetchCacheTTL:      mustDuration(getEnv("FETCH_CACHE_TTL", "24h")),
		DataDir:            getEnv("DATA_DIR", "data"),
		StationsFile:       getEnv("STATIONS_FILE", ""),
		AsynqQueueName:     getEnv("ASYNQ_QUEUE", "default"),
		AsynqConcurrency:   mustInt(getEnv("ASYNQ_CONCURRENCY", "5")),
		CacheWarmInterval:  mustDuration(getEnv("CACHE_WARM_INTERVAL", "6h")),
	}

	if cfg.NomisBaseURL == "" {
		return nil, fmt.Errorf("NOMIS_BASE_URL is required")
	}
	if cfg.NomisTimeout <= 0 {
		return nil, fmt.Errorf("NOMIS_TIMEOUT must be a positive duration")
	}
	if cfg.NomisMaxRetries < 0 {
		return nil, fmt.Errorf("NOMIS_MAX_RETRIES must not be negative")
	}
	if cfg.FetchCacheTTL <= 0 {
		return nil, fmt.Errorf("FETCH_CACHE_TTL must be a positive duration")
	}

	return cfg, nil
}

// =============================================================================
// Interface implementations
// =============================================================================

func (c *Config) GetHTTPAddr() string         { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool       { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string    { return c.CORSOrigins }
func (c *Config) GetNomisBaseURL() string     { return c.NomisBaseURL }
func (c *Config) GetNomisTimeout() time.Duration { return c.NomisTimeout }
func (c *Config) GetNomisMaxRetries() int     { return c.NomisMaxRetries }
func (c *Config) GetNomisRequestsPerSecond() float64 { return c.NomisRatePerSecond }
func (c *Config) GetRedisURL() string         { return c.RedisURL }
func (c *Config) GetFetchCacheTTL() time.Duration { return c.FetchCacheTTL }
func (c *Config) IsRedisEnabled() bool        { return c.RedisURL != "" }
func (c *Config) GetDataDir() string          { return c.DataDir }
func (c *Config) GetStationsFile() string     { return c.StationsFile }
func (c *Config) GetAsynqQueueName() string   { return c.AsynqQueueName }
func (c *Config) GetAsynqConcurrency() int    { return c.AsynqConcurrency }
func (c *Config) GetCacheWarmInterval() time.Duration { return c.CacheWarmInterval }

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}

func mustFloat(value string) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}
