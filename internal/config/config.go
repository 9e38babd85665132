package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	ImportFile     string        // path to a reading-list YAML export (optional, empty = import disabled)
	ImportInterval time.Duration // interval to re-read the import file (default: 24h)

	// Redis
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDialTimeout    time.Duration // ex: 5s
	RedisReadTimeout    time.Duration // ex: 3s
	RedisWriteTimeout   time.Duration // ex: 3s
	RedisPoolSize       int           // connection pool size
	RedisConnectTimeout time.Duration // total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // initial wait between retries, grows exponentially
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout per ping attempt (ex: 5s)
	RedisWarnThreshold  int           // warn after this many attempts

	// HTTP surface
	CORSOrigins    []string // origins allowed to call the API (extension pages); empty = allow any
	TrustProxy     bool     // true => resolve client IPs from proxy headers
	WriteBurst     int      // rate-limit burst for mutating endpoints
	WritePerMinute int      // rate-limit refill per client per minute
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("READSTER_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("READSTER_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("READSTER_LOG_LEVEL", "info"),
		PrettyLog: mustBool("READSTER_PRETTY_LOG", true),

		// Import file
		ImportFile:     getenv("READSTER_IMPORT_FILE", ""), // optional, empty = import disabled
		ImportInterval: mustDuration("READSTER_IMPORT_INTERVAL", 24*time.Hour),

		// Redis settings
		RedisAddr:           getenv("READSTER_REDIS_ADDR", "localhost:6379"),
		RedisUser:           getenv("READSTER_REDIS_USERNAME", ""),
		RedisPassword:       getenv("READSTER_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("READSTER_REDIS_DB", 0),
		RedisDialTimeout:    mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisReadTimeout:    mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWriteTimeout:   mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisWarnThreshold:  getenvInt("REDIS_WARN_THRESHOLD", 3),

		// HTTP surface
		CORSOrigins:    splitAndTrim(getenv("READSTER_CORS_ORIGINS", "")),
		TrustProxy:     mustBool("READSTER_TRUST_PROXY", false),
		WriteBurst:     getenvInt("READSTER_WRITE_BURST", 20),
		WritePerMinute: getenvInt("READSTER_WRITE_PER_MINUTE", 60),
	}

	if cfg.ImportInterval <= 0 {
		panic(fmt.Sprintf("❌ FATAL: READSTER_IMPORT_INTERVAL must be positive, got %v", cfg.ImportInterval))
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
