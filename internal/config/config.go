// Package config provides configuration management for the Trello CLI.
//
// Purpose:
//
//	Resolve CLI settings (API base URL, request timeout, log level) and the
//	Trello credentials. Settings use Viper with precedence flags > environment
//	variables > defaults. Credentials come from TRELLO_API_KEY / TRELLO_TOKEN
//	first and fall back, field by field, to ~/.trello-cli/config.json.
//
// Dependencies:
//   - github.com/spf13/viper: settings and config-file reading
//   - github.com/kelseyhightower/envconfig: credential environment variables
//
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all CLI settings.
type Config struct {
	APIURL   string
	Timeout  time.Duration
	LogLevel string
}

// Load loads settings from defaults and TRELLO_* environment variables.
func Load() *Config {
	v := viper.New()

	ApplyDefaults(v)

	v.SetEnvPrefix("TRELLO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	timeout := v.GetInt("timeout")
	if timeout <= 0 {
		timeout = 30
	}

	return &Config{
		APIURL:   strings.TrimRight(v.GetString("api-url"), "/"),
		Timeout:  time.Duration(timeout) * time.Second,
		LogLevel: v.GetString("log-level"),
	}
}

// LoadWithFlags loads settings and applies flag overrides.
func LoadWithFlags(flagOverrides map[string]interface{}) *Config {
	cfg := Load()

	for key, value := range flagOverrides {
		switch key {
		case "api-url":
			if v, ok := value.(string); ok && v != "" {
				cfg.APIURL = strings.TrimRight(v, "/")
			}
		case "timeout":
			if v, ok := value.(int); ok && v > 0 {
				cfg.Timeout = time.Duration(v) * time.Second
			}
		case "log-level":
			if v, ok := value.(string); ok && v != "" {
				cfg.LogLevel = v
			}
		}
	}

	// --verbose wins over --log-level
	if v, ok := flagOverrides["verbose"].(bool); ok && v {
		cfg.LogLevel = "debug"
	}

	return cfg
}
