package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// applyFile reads a flat YAML mapping of environment keys and exports every
// key that the process environment does not already define.
//
//	PORTFOLIO_STORE: memory
//	PORTFOLIO_REQUEST_TIMEOUT: 5s
//	CORS_ORIGINS: https://me.dev,https://www.me.dev
func applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var values map[string]any
	if err := yaml.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	for key, raw := range values {
		if _, set := os.LookupEnv(key); set {
			continue
		}
		val, err := scalar(raw)
		if err != nil {
			return fmt.Errorf("config file %s: key %s: %w", path, key, err)
		}
		if err := os.Setenv(key, val); err != nil {
			return fmt.Errorf("failed to export %s: %w", key, err)
		}
	}
	return nil
}

func scalar(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(t), nil
	case []any:
		// Lists become the comma separated form the env parsers expect.
		out := ""
		for i, item := range t {
			s, err := scalar(item)
			if err != nil {
				return "", err
			}
			if i > 0 {
				out += ","
			}
			out += s
		}
		return out, nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}
