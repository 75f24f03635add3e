package config

import (
	"github.com/spf13/viper"
)

// DefaultAPIURL is the Trello REST API base URL.
const DefaultAPIURL = "https://api.trello.com/1"

// ApplyDefaults sets default configuration values in the provided Viper instance.
func ApplyDefaults(v *viper.Viper) {
	v.SetDefault("api-url", DefaultAPIURL)

	// Single outbound call per invocation, wrapped in this deadline
	v.SetDefault("timeout", 30) // seconds

	// Logs go to stderr; stdout carries only the result envelope
	v.SetDefault("log-level", "warn")
}
