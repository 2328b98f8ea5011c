package memoryapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Config carries the immutable client settings captured at construction.
type Config struct {
	// Token is the bearer credential (JWT or API key). Required.
	Token string
	// BaseURL overrides DefaultBaseURL when non-empty.
	BaseURL string
	// HTTPClient overrides http.DefaultClient when non-nil. Timeouts and
	// cancellation beyond per-call contexts belong to this client.
	HTTPClient *http.Client
}

// Client talks to the Memory API. Safe for concurrent use; all fields are
// fixed at construction.
type Client struct {
	token   string
	baseURL string
	httpc   *http.Client
}

// NewClient validates cfg and returns a configured client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("memoryapi: missing token in config")
	}
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	httpc := cfg.HTTPClient
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{
		token:   cfg.Token,
		baseURL: strings.TrimRight(base, "/"),
		httpc:   httpc,
	}, nil
}

// APIError is a non-2xx response from the Memory API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("memory api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("memory api: status %d: %s", e.StatusCode, e.Message)
}

// IngestMemory upserts items in one batch call.
func (c *Client) IngestMemory(ctx context.Context, req IngestMemoryRequest) (*IngestMemoryResponse, error) {
	var resp IngestMemoryResponse
	if err := c.post(ctx, "/memory/ingest", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ReadMemory returns items matching the request filters; an empty request
// returns all user memory.
func (c *Client) ReadMemory(ctx context.Context, req ReadMemoryRequest) (*ReadMemoryResponse, error) {
	var resp ReadMemoryResponse
	if err := c.post(ctx, "/memory/read", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteMemory deletes items matching the request filters.
func (c *Client) DeleteMemory(ctx context.Context, req DeleteMemoryRequest) (*DeleteMemoryResponse, error) {
	var resp DeleteMemoryResponse
	if err := c.post(ctx, "/memory/delete", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("memoryapi: encode request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.token)
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpc.Do(httpReq)
	if err != nil {
		return err
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return err
	}
	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return &APIError{StatusCode: httpResp.StatusCode, Message: errorMessage(raw)}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("memoryapi: decode response: %w", err)
	}
	return nil
}

// errorMessage extracts the server's error text when the body carries one,
// falling back to the raw body.
func errorMessage(raw []byte) string {
	var e struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &e); err == nil {
		if e.Error != "" {
			return e.Error
		}
		if e.Message != "" {
			return e.Message
		}
	}
	return strings.TrimSpace(string(raw))
}
