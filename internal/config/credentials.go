package config

import (
	"errors"
	"net/url"

	"github.com/kelseyhightower/envconfig"
)

const setAuthHint = "Use: trello-cli --set-auth <api-key> <token>"

// Credentials is the API key / token pair sent with every Trello request.
// It is resolved once at startup and never mutated afterwards.
type Credentials struct {
	APIKey string
	Token  string
}

type envCredentials struct {
	APIKey string `envconfig:"TRELLO_API_KEY"`
	Token  string `envconfig:"TRELLO_TOKEN"`
}

// LoadCredentials resolves credentials from the environment and, for any field
// still empty, from the store's config file. File problems are ignored.
func LoadCredentials(store *Store) *Credentials {
	var env envCredentials
	if err := envconfig.Process("", &env); err != nil {
		env = envCredentials{}
	}

	creds := &Credentials{APIKey: env.APIKey, Token: env.Token}
	if creds.IsConfigured() || store == nil {
		return creds
	}

	apiKey, token := store.load()
	if creds.APIKey == "" {
		creds.APIKey = apiKey
	}
	if creds.Token == "" {
		creds.Token = token
	}
	return creds
}

// IsConfigured reports whether both the API key and the token are set.
func (c *Credentials) IsConfigured() bool {
	return c.APIKey != "" && c.Token != ""
}

// Validate returns an instructional error naming the missing field.
func (c *Credentials) Validate() error {
	if c.APIKey == "" {
		return errors.New("API Key not set. " + setAuthHint)
	}
	if c.Token == "" {
		return errors.New("Token not set. " + setAuthHint)
	}
	return nil
}

// AuthQuery returns the "key=<apiKey>&token=<token>" query fragment.
func (c *Credentials) AuthQuery() string {
	return c.Values().Encode()
}

// Values returns the auth query parameters, ready to merge with endpoint parameters.
func (c *Credentials) Values() url.Values {
	return url.Values{
		"key":   []string{c.APIKey},
		"token": []string{c.Token},
	}
}
