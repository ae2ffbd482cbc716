package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ValidateTimeout validates timeout duration
func ValidateTimeout(timeout time.Duration, name string) error {
	if timeout <= 0 {
		return fmt.Errorf("%s timeout must be positive", name)
	}
	if timeout > 30*time.Minute {
		return fmt.Errorf("%s timeout too large (max 30 minutes)", name)
	}
	return nil
}

// ValidatePort validates a TCP port given as a string
func ValidatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("port %q is not a number", port)
	}
	if n <= 0 || n > 65535 {
		return fmt.Errorf("port %d out of range", n)
	}
	return nil
}

// ValidateEnvironment validates the server environment name
func ValidateEnvironment(env string) error {
	switch env {
	case "development", "production", "test":
		return nil
	default:
		return fmt.Errorf("unknown environment %q (use development, production or test)", env)
	}
}

// ValidateCORSOrigins accepts "*" or absolute http(s) origins without a path
func ValidateCORSOrigins(origins []string) error {
	if len(origins) == 0 {
		return fmt.Errorf("cors_origins must list at least one origin (use \"*\" for any)")
	}
	for _, o := range origins {
		if o == "*" {
			continue
		}
		u, err := url.Parse(o)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" || strings.Trim(u.Path, "/") != "" {
			return fmt.Errorf("cors origin %q must look like https://host[:port]", o)
		}
	}
	return nil
}

// Validate checks the whole configuration
func (c *AppConfig) Validate() error {
	if err := ValidatePort(c.Server.Port); err != nil {
		return err
	}
	if err := ValidateEnvironment(c.Server.Environment); err != nil {
		return err
	}
	for name, d := range map[string]time.Duration{
		"read":  c.Server.ReadTimeout,
		"write": c.Server.WriteTimeout,
		"idle":  c.Server.IdleTimeout,
	} {
		if err := ValidateTimeout(d, name); err != nil {
			return err
		}
	}
	if err := ValidateCORSOrigins(c.Server.CORSOrigins); err != nil {
		return err
	}
	if c.Estimator.OutlierThreshold <= 0 {
		return fmt.Errorf("outlier threshold must be positive")
	}
	if c.Recommend.TopN <= 0 || c.Recommend.TopN > 3 {
		return fmt.Errorf("recommend top_n must be between 1 and 3")
	}
	if c.Leaderboard.Limit <= 0 || c.Leaderboard.Limit > 10 {
		return fmt.Errorf("leaderboard limit must be between 1 and 10")
	}
	return nil
}
