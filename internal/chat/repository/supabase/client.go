package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client is the HTTP wrapper for the Supabase PostgREST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new Supabase client. baseURL is the project URL
// without the /rest/v1 suffix.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

// Insert creates one row via POST /rest/v1/{table}.
func (c *Client) Insert(ctx context.Context, table string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal insert payload: %w", err)
	}

	reqURL := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, table)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build insert request: %w", err)
	}
	c.setHeaders(httpReq)
	httpReq.Header.Set("Prefer", "return=minimal")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call supabase insert API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("supabase insert error %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}

// UpdateWhere patches rows matching the eq filters via
// PATCH /rest/v1/{table}?col=eq.value and returns how many rows matched.
func (c *Client) UpdateWhere(ctx context.Context, table string, filters map[string]string, payload interface{}) (int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal update payload: %w", err)
	}

	query := url.Values{}
	for col, value := range filters {
		query.Set(col, "eq."+value)
	}
	reqURL := fmt.Sprintf("%s/rest/v1/%s?%s", c.baseURL, table, query.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPatch, reqURL, bytes.NewBuffer(body))
	if err != nil {
		return 0, fmt.Errorf("failed to build update request: %w", err)
	}
	c.setHeaders(httpReq)
	httpReq.Header.Set("Prefer", "return=representation")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, fmt.Errorf("failed to call supabase update API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("supabase update error %d: %s", resp.StatusCode, string(raw))
	}

	var rows []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return 0, fmt.Errorf("failed to decode supabase update response: %w", err)
	}
	return len(rows), nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
}
