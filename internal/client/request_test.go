package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteReadsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"c1"}`))
	}))
	defer server.Close()

	req, err := http.NewRequest(http.MethodPost, server.URL, nil)
	require.NoError(t, err)

	resp, err := Execute(context.Background(), server.Client(), req, DefaultRequestConfig())
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, resp.Success())
	assert.JSONEq(t, `{"id":"c1"}`, string(resp.Body))
}

func TestExecuteDeadline(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	_, err = Execute(context.Background(), server.Client(), req, RequestConfig{Timeout: 20 * time.Millisecond})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "expected deadline error, got %v", err)
}

func TestExecuteLimitsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("0123456789"))
	}))
	defer server.Close()

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := Execute(context.Background(), server.Client(), req, RequestConfig{Timeout: time.Second, MaxBodyBytes: 4})
	require.NoError(t, err)
	assert.Equal(t, "0123", string(resp.Body))
}

func TestIsSuccess(t *testing.T) {
	tests := []struct {
		status int
		want   bool
	}{
		{200, true},
		{204, true},
		{299, true},
		{301, false},
		{401, false},
		{404, false},
		{500, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsSuccess(tt.status), "status %d", tt.status)
	}
}

func TestStatusMessage(t *testing.T) {
	assert.Equal(t, "Response status code does not indicate success: 500 (Internal Server Error).", StatusMessage(500))
}
