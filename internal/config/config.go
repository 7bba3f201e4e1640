// Package config reads the backend configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// API_URL, the externally reachable base URL. Used to build links.
	APIURL string

	GinMode   string
	LogFormat string

	// SQLite, used when DBHost is empty
	DataDir string

	// PostgreSQL
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	CORSAllowOrigins []string
	EnablePprof      bool

	// Header carrying the user ID verified by the upstream auth provider
	UserIDHeader string
}

// Load reads the configuration. Variables from a .env file in the working
// directory are loaded first, already set variables take precedence.
func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not load .env file: %w", err)
	}

	return &Config{
		APIURL:           os.Getenv("API_URL"),
		GinMode:          getEnv("GIN_MODE", "release"),
		LogFormat:        os.Getenv("LOG_FORMAT"),
		DataDir:          getEnv("DATA_DIR", "data"),
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           getEnv("DB_NAME", "cofrinho"),
		DBSSLMode:        getEnv("DB_SSLMODE", "disable"),
		CORSAllowOrigins: strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
		EnablePprof:      os.Getenv("ENABLE_PPROF") == "true",
		UserIDHeader:     getEnv("USER_ID_HEADER", "X-User-ID"),
	}, nil
}

// Validate reports all configuration problems at once.
func (c *Config) Validate() error {
	var problems []string

	if c.APIURL == "" {
		problems = append(problems, "environment variable API_URL must be set")
	} else if _, err := c.BaseURL(); err != nil {
		problems = append(problems, fmt.Sprintf("environment variable API_URL must be a valid URL: %v", err))
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		problems = append(problems, fmt.Sprintf("invalid GIN_MODE '%s': must be one of debug, release, test", c.GinMode))
	}

	switch c.LogFormat {
	case "", "human", "json":
	default:
		problems = append(problems, fmt.Sprintf("invalid LOG_FORMAT '%s': must be 'human' or 'json'", c.LogFormat))
	}

	if c.DBHost != "" && c.DBUser == "" {
		problems = append(problems, "DB_USER must be set when DB_HOST is set")
	}

	if c.DBHost == "" && c.DataDir == "" {
		problems = append(problems, "DATA_DIR must not be empty when using sqlite")
	}

	if strings.TrimSpace(c.UserIDHeader) == "" {
		problems = append(problems, "USER_ID_HEADER must not be empty")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}

// BaseURL parses the API URL.
func (c *Config) BaseURL() (*url.URL, error) {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return nil, err
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("'%s' has no scheme or host", c.APIURL)
	}

	return u, nil
}

// UsePostgres reports if PostgreSQL is configured.
func (c *Config) UsePostgres() bool {
	return c.DBHost != ""
}

// PostgresDSN returns the connection string for PostgreSQL.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s", c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// SQLitePath returns the path of the SQLite database file.
func (c *Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "cofrinho.db")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
