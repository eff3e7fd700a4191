// internal/gateway/client.go
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/your-org/restaurant-storefront/internal/config"
)

// APIError carries the backend's HTTP status and its user-displayable message
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// UserMessage returns the server-provided message for an API error, or the
// fallback for anything else (network failures, malformed responses).
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// Client is the typed HTTP client for the remote REST backend. Every endpoint
// gets its own method with explicit request/response structs; callers never
// shape payloads ad hoc. One attempt per call, no retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Entry
}

// NewClient creates a backend gateway client
func NewClient(cfg *config.Config, log *logrus.Entry) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.Backend.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Backend.Timeout,
		},
		log: log,
	}
}

// errorResponse is the backend's error payload shape
type errorResponse struct {
	Error string `json:"error"`
}

// do executes one request against the backend. A non-empty token is forwarded
// as a bearer credential. Responses with status >= 400 become an *APIError
// carrying the backend's message when one is present.
func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp errorResponse
		if data, err := io.ReadAll(resp.Body); err == nil {
			_ = json.Unmarshal(data, &errResp)
		}

		c.log.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
			"status": resp.StatusCode,
		}).Warn("Backend request rejected")

		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errResp.Error,
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
