package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	EnvProduction = "production"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config is the process-wide configuration. It is loaded once at startup
// and passed explicitly to whatever needs it, never read back from the
// environment afterwards.
type Config struct {
	Env       string
	HTTPAddr  string
	BodyLimit string

	DBDriver string
	DBDSN    string

	// Exactly one of JWKSURL or JWTSecret is expected to be set.
	JWKSURL   string
	JWTSecret string

	// AccessPolicyFile optionally points to a YAML role table.
	AccessPolicyFile string

	MetricsEnabled bool
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// Load reads the configuration from the environment. Loading .env files or
// remote parameters is the caller's job and must happen before.
func Load() (*Config, error) {
	cfg := &Config{
		Env:              getEnv("GO_ENV", "development"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":7070"),
		BodyLimit:        getEnv("HTTP_BODY_LIMIT", "2M"),
		DBDriver:         strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		DBDSN:            getEnv("DB_DSN", "database.db"),
		JWKSURL:          os.Getenv("AUTH_JWKS_URL"),
		JWTSecret:        os.Getenv("AUTH_JWT_SECRET"),
		AccessPolicyFile: os.Getenv("ACCESS_POLICY_FILE"),
	}

	metrics, err := strconv.ParseBool(getEnv("METRICS_ENABLED", "true"))
	if err != nil {
		return nil, fmt.Errorf("METRICS_ENABLED: %w", err)
	}
	cfg.MetricsEnabled = metrics

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}

	if c.DBDSN == "" {
		return fmt.Errorf("DB_DSN must not be empty")
	}

	if c.JWKSURL == "" && c.JWTSecret == "" {
		return fmt.Errorf("one of AUTH_JWKS_URL or AUTH_JWT_SECRET is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && strings.TrimSpace(val) != "" {
		return strings.TrimSpace(val)
	}
	return fallback
}
