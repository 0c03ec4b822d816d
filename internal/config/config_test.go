package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireEnv(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		shouldSet bool
		wantPanic bool
	}{
		{
			name:      "variable set",
			key:       "TEST_VAR",
			value:     "test_value",
			shouldSet: true,
			wantPanic: false,
		},
		{
			name:      "variable not set",
			key:       "TEST_VAR_MISSING",
			shouldSet: false,
			wantPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.shouldSet {
				if err := os.Setenv(tt.key, tt.value); err != nil {
					t.Fatalf("failed to set env var: %v", err)
				}
				defer func() {
					if err := os.Unsetenv(tt.key); err != nil {
						t.Errorf("failed to unset env var: %v", err)
					}
				}()
			}

			if tt.wantPanic {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("requireEnv() should have panicked")
					}
				}()
			}

			result := requireEnv(tt.key)
			if !tt.wantPanic && result != tt.value {
				t.Errorf("requireEnv() = %v, want %v", result, tt.value)
			}
		})
	}
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      time.Duration
		expected time.Duration
	}{
		{
			name:     "valid duration",
			key:      "TEST_DURATION",
			value:    "5s",
			def:      1 * time.Second,
			expected: 5 * time.Second,
		},
		{
			name:     "invalid duration uses default",
			key:      "TEST_DURATION_INVALID",
			value:    "invalid",
			def:      10 * time.Second,
			expected: 10 * time.Second,
		},
		{
			name:     "missing variable uses default",
			key:      "TEST_DURATION_MISSING",
			value:    "",
			def:      15 * time.Second,
			expected: 15 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				if err := os.Setenv(tt.key, tt.value); err != nil {
					t.Fatalf("failed to set env var: %v", err)
				}
				defer func() {
					if err := os.Unsetenv(tt.key); err != nil {
						t.Errorf("failed to unset env var: %v", err)
					}
				}()
			}

			result := mustDuration(tt.key, tt.def)
			if result != tt.expected {
				t.Errorf("mustDuration() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestMustBool(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      bool
		expected bool
	}{
		{
			name:     "true value",
			key:      "TEST_BOOL",
			value:    "true",
			def:      false,
			expected: true,
		},
		{
			name:     "false value",
			key:      "TEST_BOOL_FALSE",
			value:    "false",
			def:      true,
			expected: false,
		},
		{
			name:     "invalid value uses default",
			key:      "TEST_BOOL_INVALID",
			value:    "invalid",
			def:      true,
			expected: true,
		},
		{
			name:     "missing variable uses default",
			key:      "TEST_BOOL_MISSING",
			value:    "",
			def:      false,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				if err := os.Setenv(tt.key, tt.value); err != nil {
					t.Fatalf("failed to set env var: %v", err)
				}
				defer func() {
					if err := os.Unsetenv(tt.key); err != nil {
						t.Errorf("failed to unset env var: %v", err)
					}
				}()
			}

			result := mustBool(tt.key, tt.def)
			if result != tt.expected {
				t.Errorf("mustBool() = %v, want %v", result, tt.expected)
			}
		})
	}
}

// unsetForTest clears keys for the duration of the test and restores them afterwards.
func unsetForTest(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadMemoryDefaults(t *testing.T) {
	unsetForTest(t, "PORTFOLIO_CONFIG_FILE", "PORTFOLIO_REDIS_ADDR", "PORTFOLIO_KEY_PREFIX", "DB_NAME",
		"CORS_ORIGINS", "CORS_ALLOWED_HEADERS", "PORTFOLIO_LISTEN_PORT", "PORTFOLIO_MAX_BODY_BYTES", "PORTFOLIO_LOG_LEVEL")
	t.Setenv("PORTFOLIO_STORE", "memory")

	cfg := Load()
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, ":8001", cfg.ListenPort)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Empty(t, cfg.CORSHeaders)
	assert.Equal(t, "portfolio", cfg.KeyPrefix)
	assert.EqualValues(t, 1<<20, cfg.MaxBodyBytes)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoadRedis(t *testing.T) {
	unsetForTest(t, "PORTFOLIO_CONFIG_FILE", "PORTFOLIO_KEY_PREFIX")
	t.Setenv("PORTFOLIO_STORE", "Redis")
	t.Setenv("PORTFOLIO_REDIS_ADDR", "localhost:6379")
	t.Setenv("DB_NAME", "portfolio_db")
	t.Setenv("CORS_ORIGINS", "https://me.dev, 'https://www.me.dev'")
	t.Setenv("CORS_ALLOWED_HEADERS", "X-Custom-Header")

	cfg := Load()
	assert.Equal(t, StoreRedis, cfg.Store)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "portfolio_db", cfg.KeyPrefix)
	assert.Equal(t, []string{"https://me.dev", "https://www.me.dev"}, cfg.CORSOrigins)
	assert.Equal(t, []string{"X-Custom-Header"}, cfg.CORSHeaders)
}

func TestLoadPanics(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "redis without address",
			env:  map[string]string{"PORTFOLIO_STORE": "redis"},
		},
		{
			name: "unknown store",
			env:  map[string]string{"PORTFOLIO_STORE": "mongo"},
		},
		{
			name: "non positive body limit",
			env:  map[string]string{"PORTFOLIO_STORE": "memory", "PORTFOLIO_MAX_BODY_BYTES": "-1"},
		},
		{
			name: "zero request timeout",
			env:  map[string]string{"PORTFOLIO_STORE": "memory", "PORTFOLIO_REQUEST_TIMEOUT": "0s"},
		},
		{
			name: "missing config file",
			env:  map[string]string{"PORTFOLIO_STORE": "memory", "PORTFOLIO_CONFIG_FILE": "/does/not/exist.yaml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetForTest(t, "PORTFOLIO_CONFIG_FILE", "PORTFOLIO_REDIS_ADDR", "PORTFOLIO_MAX_BODY_BYTES",
				"PORTFOLIO_REQUEST_TIMEOUT")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			assert.Panics(t, func() { Load() })
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	content := `PORTFOLIO_STORE: memory
PORTFOLIO_REQUEST_TIMEOUT: 7s
PORTFOLIO_TRUST_PROXY: true
PORTFOLIO_REDIS_DB: 4
PORTFOLIO_API_MESSAGE: from file
CORS_ORIGINS:
  - https://a.dev
  - https://b.dev
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	unsetForTest(t, "PORTFOLIO_STORE", "PORTFOLIO_REQUEST_TIMEOUT", "PORTFOLIO_TRUST_PROXY",
		"PORTFOLIO_REDIS_DB", "CORS_ORIGINS", "PORTFOLIO_REDIS_ADDR")
	t.Setenv("PORTFOLIO_CONFIG_FILE", path)
	// The real environment wins over the file.
	t.Setenv("PORTFOLIO_API_MESSAGE", "from env")

	cfg := Load()
	assert.Equal(t, path, cfg.ConfigFile)
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.TrustProxy)
	assert.Equal(t, 4, cfg.RedisDB)
	assert.Equal(t, []string{"https://a.dev", "https://b.dev"}, cfg.CORSOrigins)
	assert.Equal(t, "from env", cfg.APIMessage)
}

func TestApplyFileRejectsNestedMaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("NESTED_TEST_KEY:\n  a: b\n"), 0o600))
	unsetForTest(t, "NESTED_TEST_KEY")

	err := applyFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NESTED_TEST_KEY")
}

func TestSplitAndTrim(t *testing.T) {
	assert.Nil(t, splitAndTrim(""))
	assert.Equal(t, []string{"a", "b"}, splitAndTrim(` a , "b",, `))
	assert.Equal(t, []string{"10.0.0.0/8", "127.0.0.1"}, parseAllowedIPs("10.0.0.0/8, 127.0.0.1"))
}
