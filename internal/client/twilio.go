package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"twerr/internal/model"
)

var (
	// ErrNetwork means the GET never produced a usable 2xx response.
	ErrNetwork = errors.New("network error")
	// ErrParse means the response body was not valid JSON.
	ErrParse = errors.New("parse error")
)

// ErrorCodesClient fetches Twilio's published error-code reference
type ErrorCodesClient struct {
	url    string
	client *http.Client
}

// NewErrorCodesClient creates a new client for the error-code reference
func NewErrorCodesClient(url string, timeout time.Duration) *ErrorCodesClient {
	return &ErrorCodesClient{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch downloads the upstream reference and decodes it as an array of
// error records
func (c *ErrorCodesClient) Fetch(ctx context.Context) ([]model.ErrorRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get error codes: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: failed to get error codes: status %d", ErrNetwork, resp.StatusCode)
	}

	var records []model.ErrorRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: failed to decode error codes: %v", ErrParse, err)
	}

	return records, nil
}
