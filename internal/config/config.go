package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

type Config struct {
	ListenPort      string        // ex: ":8001"
	ShutdownTimeout time.Duration // ex: 5s
	RequestTimeout  time.Duration // per-request deadline, ex: 10s
	MaxBodyBytes    int64         // upper bound on JSON request bodies

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	ConfigFile string // optional YAML file of KEY: value defaults
	Store      string // "redis" | "memory"
	APIMessage string // body of GET /api/

	// Redis
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	KeyPrefix           string        // namespace for every key, ex: "portfolio"
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold  int           // warn after this many attempts

	CORSOrigins  []string // allowed browser origins, "*" for any
	CORSHeaders  []string // request headers allowed on top of the defaults
	AllowedCIDRS []string // optional, restrict /readyz and /metrics to these IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For headers
}

// Load reads the configuration from the environment. When PORTFOLIO_CONFIG_FILE
// is set, its entries fill in variables the environment does not define.
// Invalid or missing required settings panic.
func Load() *Config {
	configFile := getenv("PORTFOLIO_CONFIG_FILE", "")
	if configFile != "" {
		if err := applyFile(configFile); err != nil {
			panic(fmt.Sprintf("❌ FATAL: %v", err))
		}
	}

	cfg := &Config{
		// Server settings
		ListenPort:      getenv("PORTFOLIO_LISTEN_PORT", ":8001"),
		ShutdownTimeout: mustDuration("PORTFOLIO_SHUTDOWN_TIMEOUT", 5*time.Second),
		RequestTimeout:  mustDuration("PORTFOLIO_REQUEST_TIMEOUT", 10*time.Second),
		MaxBodyBytes:    int64(getenvInt("PORTFOLIO_MAX_BODY_BYTES", 1<<20)),

		// Logging
		LogLevel:  getenv("PORTFOLIO_LOG_LEVEL", "info"),
		PrettyLog: mustBool("PORTFOLIO_PRETTY_LOG", false),

		ConfigFile: configFile,
		Store:      strings.ToLower(getenv("PORTFOLIO_STORE", StoreRedis)),
		APIMessage: getenv("PORTFOLIO_API_MESSAGE", "Portfolio API"),

		// Redis settings
		RedisUser:           getenv("PORTFOLIO_REDIS_USERNAME", ""),
		RedisPassword:       getenv("PORTFOLIO_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("PORTFOLIO_REDIS_DB", 0),
		KeyPrefix:           getenv("PORTFOLIO_KEY_PREFIX", getenv("DB_NAME", "portfolio")),
		RedisDT:             mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:  getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Access
		CORSOrigins:  splitAndTrim(getenv("CORS_ORIGINS", "*")),
		CORSHeaders:  splitAndTrim(getenv("CORS_ALLOWED_HEADERS", "")),
		AllowedCIDRS: parseAllowedIPs(getenv("PORTFOLIO_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("PORTFOLIO_TRUST_PROXY", false),
	}

	switch cfg.Store {
	case StoreRedis:
		cfg.RedisAddr = requireEnv("PORTFOLIO_REDIS_ADDR")
	case StoreMemory:
	default:
		panic(fmt.Sprintf("❌ FATAL: PORTFOLIO_STORE must be %q or %q, got %q", StoreRedis, StoreMemory, cfg.Store))
	}

	if cfg.RequestTimeout <= 0 {
		panic(fmt.Sprintf("❌ FATAL: PORTFOLIO_REQUEST_TIMEOUT must be > 0, got %v", cfg.RequestTimeout))
	}

	if cfg.MaxBodyBytes <= 0 {
		panic(fmt.Sprintf("❌ FATAL: PORTFOLIO_MAX_BODY_BYTES must be > 0, got %d", cfg.MaxBodyBytes))
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		if cfgCopy.RedisPassword != "" {
			cfgCopy.RedisPassword = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
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

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
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

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
