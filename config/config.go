// Package config provides configuration management for the pension backend.
// It handles loading and validation of configuration values from environment
// variables, with support for required variables, default values, and
// collective error reporting: every problem found during loading is gathered
// and returned as a single error so operators see the whole picture at once.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DatabaseConfig holds settings for the PostgreSQL connection pool.
// The DSN comes in as a single URL because deployments hand the service one
// connection URI, not individual host/user parts.
type DatabaseConfig struct {
	URL      string // postgres:// connection URI
	PoolSize int    // max connections in the pgx pool
}

// AuthConfig holds authentication-related configuration.
type AuthConfig struct {
	TokenSecret string // process-wide secret the login-token codec encrypts under
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port string // Port for the HTTP server
}

// StoreConfig holds settings for the file-backed user collection.
type StoreConfig struct {
	UserFilePath string // path of the JSON file holding the user collection
}

// AIConfig holds the Vertex AI project credentials.
type AIConfig struct {
	Project  string // Google Cloud project id
	Location string // Vertex AI region
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	Database *DatabaseConfig
	Auth     *AuthConfig
	Server   *ServerConfig
	Store    *StoreConfig
	AI       *AIConfig
}

// getRequiredEnv fetches a required environment variable, appending to the
// errors slice when it is not set.
func getRequiredEnv(key string, errors *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		*errors = append(*errors, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return value
}

// getOptionalEnv fetches an optional environment variable with a default.
func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getOptionalEnvInt fetches an optional environment variable parsed as an int.
// Uses defaultValue if not set; appends an error if parsing fails.
func getOptionalEnvInt(key string, defaultValue int, errors *[]string) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected integer, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueInt
}

// clampPoolSize keeps the pool size within reasonable bounds.
func clampPoolSize(size int, errors *[]string) int {
	if size < 1 {
		*errors = append(*errors, fmt.Sprintf("pool size %d is less than minimum 1, clamping to 1", size))
		size = 1
	}
	if size > 100 {
		*errors = append(*errors, fmt.Sprintf("pool size %d is greater than maximum 100, clamping to 100", size))
		size = 100
	}
	return size
}

// LoadConfig creates and returns an AppConfig by reading and validating
// environment variables. It collects all errors encountered during loading
// and returns a single aggregated error if any exist.
func LoadConfig() (*AppConfig, error) {
	var errors []string

	// Database configuration
	dbURL := getRequiredEnv("DATABASE_URL", &errors)
	if dbURL != "" && !strings.HasPrefix(dbURL, "postgres://") && !strings.HasPrefix(dbURL, "postgresql://") {
		errors = append(errors, fmt.Sprintf("invalid DATABASE_URL: must start with postgres:// or postgresql://, got '%s'", dbURL))
	}
	poolSize := clampPoolSize(getOptionalEnvInt("DB_POOL_SIZE", 10, &errors), &errors)

	database := &DatabaseConfig{
		URL:      dbURL,
		PoolSize: poolSize,
	}

	// Auth configuration. The token codec refuses to start without a secret,
	// so fail here rather than at the first login.
	tokenSecret := getRequiredEnv("TOKEN_SECRET", &errors)
	authConfig := &AuthConfig{
		TokenSecret: tokenSecret,
	}

	// Server configuration
	serverConfig := &ServerConfig{
		Port: getOptionalEnv("PORT", "3030"),
	}

	// File-backed user collection
	storeConfig := &StoreConfig{
		UserFilePath: getOptionalEnv("USER_STORE_PATH", "./data/user.json"),
	}

	// Vertex AI credentials. Project is required only when the AI routes are
	// expected to work; the rest of the API runs without it, so it stays
	// optional here and the AI service reports a config error on use.
	aiConfig := &AIConfig{
		Project:  getOptionalEnv("GOOGLE_CLOUD_PROJECT", ""),
		Location: getOptionalEnv("GOOGLE_CLOUD_LOCATION", "us-central1"),
	}

	if len(errors) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errors, "\n- "))
	}

	return &AppConfig{
		Database: database,
		Auth:     authConfig,
		Server:   serverConfig,
		Store:    storeConfig,
		AI:       aiConfig,
	}, nil
}
