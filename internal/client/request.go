// Package client provides request execution shared by the API clients.
//
// Purpose:
//
//	Run a single HTTP request under a deadline and hand back status and body.
//	There is no retry: each invocation issues at most one outbound call, and a
//	deadline expiry surfaces as an ordinary transport error.
//
// Dependencies:
//   - context: Timeout and cancellation
//
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RequestConfig holds per-request execution settings.
type RequestConfig struct {
	Timeout      time.Duration // Deadline for the whole exchange, body included
	MaxBodyBytes int64         // Upper bound on response bytes read
}

// DefaultRequestConfig returns the default request configuration.
func DefaultRequestConfig() RequestConfig {
	return RequestConfig{
		Timeout:      30 * time.Second,
		MaxBodyBytes: 10 << 20,
	}
}

// Response is a fully-read HTTP response.
type Response struct {
	StatusCode int
	Body       []byte
}

// Success reports whether the status code is 2xx.
func (r *Response) Success() bool {
	return IsSuccess(r.StatusCode)
}

// Execute runs req once under config.Timeout and reads the whole body before
// the deadline is released.
func Execute(ctx context.Context, client *http.Client, req *http.Request, config RequestConfig) (*Response, error) {
	if config.Timeout <= 0 {
		config.Timeout = DefaultRequestConfig().Timeout
	}
	if config.MaxBodyBytes <= 0 {
		config.MaxBodyBytes = DefaultRequestConfig().MaxBodyBytes
	}

	ctx, cancel := context.WithTimeout(ctx, config.Timeout)
	defer cancel()

	resp, err := client.Do(req.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, config.MaxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}

// IsSuccess checks if an HTTP status code indicates success.
func IsSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

// StatusMessage describes a non-success status the way transport errors read.
func StatusMessage(statusCode int) string {
	return fmt.Sprintf("Response status code does not indicate success: %d (%s).", statusCode, http.StatusText(statusCode))
}
