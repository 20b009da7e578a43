// Package config reads process configuration from the environment.
package config

import "os"

// Environment variables recognized by the application.
const (
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"
	EnvLocale    = "TIPTALLY_LOCALE"
	EnvCurrency  = "TIPTALLY_CURRENCY"
)

// Config carries the process-level settings. Every field has a working
// default, so an empty environment launches the app unchanged.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// LogFormat selects the log backend: console, json, or text.
	LogFormat string

	// Locale overrides host locale detection with a BCP 47 tag.
	// Empty means detect from the host environment.
	Locale string

	// Currency overrides the locale-derived currency with an ISO 4217 code.
	Currency string
}

// FromEnv builds the configuration from environment variables.
func FromEnv() Config {
	return Config{
		LogLevel:  getEnv(EnvLogLevel, "info"),
		LogFormat: getEnv(EnvLogFormat, "console"),
		Locale:    os.Getenv(EnvLocale),
		Currency:  os.Getenv(EnvCurrency),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
