package config

import "testing"

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogFormat, "")
	t.Setenv(EnvLocale, "")
	t.Setenv(EnvCurrency, "")

	cfg := FromEnv()

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogFormat != "console" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "console")
	}
	if cfg.Locale != "" {
		t.Errorf("Locale = %q, want empty for host detection", cfg.Locale)
	}
	if cfg.Currency != "" {
		t.Errorf("Currency = %q, want empty for locale-derived currency", cfg.Currency)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvLocale, "es-MX")
	t.Setenv(EnvCurrency, "MXN")

	cfg := FromEnv()

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "json")
	}
	if cfg.Locale != "es-MX" {
		t.Errorf("Locale = %q, want %q", cfg.Locale, "es-MX")
	}
	if cfg.Currency != "MXN" {
		t.Errorf("Currency = %q, want %q", cfg.Currency, "MXN")
	}
}
