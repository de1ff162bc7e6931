// Package config wraps the viper configuration singleton. Every setting
// has a compiled-in default so the tool runs with no flags at all;
// environment variables (PROBSYNC_*) and an optional config.yaml override
// the defaults, and explicit flags override everything.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

var v *viper.Viper

// Defaults for the legacy migration. The cutoff date is a display constant:
// problems before it came from the sheets, after it from the tracker.
const (
	DefaultDatabaseURL = "postgres://localhost:5432/status_tracker?sslmode=disable"
	DefaultPEFile      = "PE Env - Problem Catalog.xlsx"
	DefaultIBFile      = "IB Env - Problem Catalog.xlsx"
	DefaultCutoffDate  = "2024-12-20"
)

// Initialize sets up the viper configuration singleton.
// Should be called once at application startup.
func Initialize() error {
	v = viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if cwd, err := os.Getwd(); err == nil {
		v.AddConfigPath(cwd)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(configDir, "probsync"))
	}

	// PROBSYNC_DATABASE_URL maps to "database-url", etc.
	v.SetEnvPrefix("PROBSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("database-url", DefaultDatabaseURL)
	v.SetDefault("pe-file", DefaultPEFile)
	v.SetDefault("ib-file", DefaultIBFile)
	v.SetDefault("cutoff-date", DefaultCutoffDate)

	// Config file is optional; only a malformed file is an error.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	return nil
}

// GetString returns a string config value
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// Set overrides a config value. Used by tests and flag binding.
func Set(key string, value interface{}) {
	if v == nil {
		return
	}
	v.Set(key, value)
}
