package config

import (
	"log/slog"
	"os"
)

// ServerConfig holds all configuration values loaded from environment variables.
type ServerConfig struct {
	ServerHost        string
	ServerPort        string
	RedisURL          string
	PostgresURL       string
	BasicAuthUsername string
	BasicAuthPassword string
	Token             string
	Prefork           bool
}

// LoadServerConfig loads configuration from environment variables.
func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		ServerHost:        getEnvMust("EDAVERSI_SERVER_HOST"),
		ServerPort:        getEnvMust("EDAVERSI_SERVER_PORT"),
		RedisURL:          getEnvMust("EDAVERSI_REDIS_URL"),
		PostgresURL:       getEnvMust("EDAVERSI_POSTGRES_URL"),
		BasicAuthUsername: getEnvMust("EDAVERSI_BASIC_AUTH_USER"),
		BasicAuthPassword: getEnvMust("EDAVERSI_BASIC_AUTH_PASS"),
		Token:             getEnvMust("EDAVERSI_TOKEN"),
		Prefork:           getEnvMustBool("EDAVERSI_PREFORK"),
	}
}

// getEnvMust either returns the environment variable or logs a fatal error if it is not set.
func getEnvMust(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}

func getEnvMustBool(key string) bool {
	value := getEnvMust(key)

	if value != "true" && value != "false" {
		slog.Error("Cannot load environment variable, it must be \"true\" or \"false\"", "key", key, "value", value)
		os.Exit(1)
	}

	return value == "true"
}
