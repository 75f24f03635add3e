package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAuthRejectsEmptyValues(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		token   string
		wantErr string
	}{
		{"empty key", "", "tok", "API Key cannot be empty"},
		{"whitespace key", "   ", "tok", "API Key cannot be empty"},
		{"empty token", "key", "", "Token cannot be empty"},
		{"whitespace token", "key", "\t", "Token cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(t.TempDir())

			err := store.SaveAuth(tt.apiKey, tt.token)

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
			assert.False(t, store.Exists(), "config file must not be written")
		})
	}
}

func TestSaveAuthRoundTrip(t *testing.T) {
	t.Setenv("TRELLO_API_KEY", "")
	t.Setenv("TRELLO_TOKEN", "")

	store := NewStore(t.TempDir() + "/nested/.trello-cli")

	require.NoError(t, store.SaveAuth("key", "tok"))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, `{"ApiKey":"key","Token":"tok"}`, string(data))

	creds := LoadCredentials(store)
	assert.Equal(t, &Credentials{APIKey: "key", Token: "tok"}, creds)
}

func TestSaveAuthOverwrites(t *testing.T) {
	store := NewStore(t.TempDir())

	require.NoError(t, store.SaveAuth("old-key", "old-tok"))
	require.NoError(t, store.SaveAuth("new-key", "new-tok"))

	apiKey, token := store.load()
	assert.Equal(t, "new-key", apiKey)
	assert.Equal(t, "new-tok", token)
}

func TestClearAuthIsIdempotent(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, store.SaveAuth("key", "tok"))
	require.True(t, store.Exists())

	assert.NoError(t, store.ClearAuth())
	assert.False(t, store.Exists())
	assert.NoError(t, store.ClearAuth())
}

func TestSaveDoesNotTouchLoadedCredentials(t *testing.T) {
	t.Setenv("TRELLO_API_KEY", "")
	t.Setenv("TRELLO_TOKEN", "")

	store := NewStore(t.TempDir())
	creds := LoadCredentials(store)
	require.False(t, creds.IsConfigured())

	require.NoError(t, store.SaveAuth("key", "tok"))

	assert.False(t, creds.IsConfigured(), "in-memory credentials only change on restart")
}
