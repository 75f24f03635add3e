package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configDirName  = ".trello-cli"
	configFileName = "config.json"
)

// Validation errors returned by SaveAuth before anything is written.
var (
	ErrEmptyAPIKey = errors.New("API Key cannot be empty")
	ErrEmptyToken  = errors.New("Token cannot be empty")
)

// Store owns the persisted credentials file.
type Store struct {
	dir   string
	reads int
}

// fileCredentials is the on-disk shape. Field names match files written by
// earlier releases of the CLI.
type fileCredentials struct {
	APIKey string `json:"ApiKey"`
	Token  string `json:"Token"`
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultStore returns the store under the user's home directory.
func DefaultStore() *Store {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return NewStore(filepath.Join(home, configDirName))
}

// Path returns the config file path.
func (s *Store) Path() string {
	return filepath.Join(s.dir, configFileName)
}

// load reads the credentials file. Missing, unreadable or corrupt files yield
// empty values.
func (s *Store) load() (apiKey, token string) {
	s.reads++

	v := viper.New()
	v.SetConfigFile(s.Path())
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return "", ""
	}

	// Viper lower-cases keys, so "ApiKey" and "apiKey" both land here.
	return v.GetString("apikey"), v.GetString("token")
}

// SaveAuth validates and persists the credentials as compact JSON.
func (s *Store) SaveAuth(apiKey, token string) error {
	if strings.TrimSpace(apiKey) == "" {
		return ErrEmptyAPIKey
	}
	if strings.TrimSpace(token) == "" {
		return ErrEmptyToken
	}

	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := json.Marshal(fileCredentials{APIKey: apiKey, Token: token})
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}

	if err := os.WriteFile(s.Path(), data, 0600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// ClearAuth removes the credentials file. Removing an absent file succeeds.
func (s *Store) ClearAuth() error {
	if err := os.Remove(s.Path()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove config file: %w", err)
	}
	return nil
}

// Exists reports whether the credentials file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.Path())
	return err == nil
}
