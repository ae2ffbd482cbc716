package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// envPrefix namespaces every environment override
const envPrefix = "SPEECHBENCH_"

// LoadEnv loads environment variables from the first .env file found.
// A missing file is not an error; variables may be set system-wide.
// It returns the path that was loaded, or "" when none was found.
func LoadEnv() (string, error) {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return "", fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			return envPath, nil
		}
	}

	return "", nil
}

// DefaultConfigFile is looked up under the project root when no config path is given
const DefaultConfigFile = "configs/speechbench.yaml"

// ResolvePath picks the config file to load: the explicit path, then
// SPEECHBENCH_CONFIG, then DefaultConfigFile under the project root if present.
// An empty result means defaults and environment only.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if v, ok := lookupEnv("CONFIG"); ok {
		return v
	}

	root, err := GetProjectRoot()
	if err != nil {
		return ""
	}
	candidate := filepath.Join(root, DefaultConfigFile)
	if _, err := os.Stat(candidate); err != nil {
		return ""
	}
	return candidate
}

// GetProjectRoot finds the project root directory by looking for go.mod
func GetProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("could not find project root (go.mod not found)")
}

func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(envPrefix + key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func envString(key string, target *string) {
	if v, ok := lookupEnv(key); ok {
		*target = v
	}
}

func envList(key string, target *[]string) {
	if v, ok := lookupEnv(key); ok {
		var items []string
		for _, item := range strings.Split(v, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		*target = items
	}
}

func envInt(key string, target *int) error {
	if v, ok := lookupEnv(key); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, key, err)
		}
		*target = n
	}
	return nil
}

func envFloat(key string, target *float64) error {
	if v, ok := lookupEnv(key); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, key, err)
		}
		*target = f
	}
	return nil
}

func envBool(key string, target *bool) error {
	if v, ok := lookupEnv(key); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, key, err)
		}
		*target = b
	}
	return nil
}

func envDuration(key string, target *time.Duration) error {
	if v, ok := lookupEnv(key); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, key, err)
		}
		*target = d
	}
	return nil
}
