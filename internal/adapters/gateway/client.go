// Package gateway wraps every outbound call to the remote inquiry
// service. It attaches the bearer credential when one is stored and
// surfaces failures directly to the caller: no retry, no caching.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"navkar-inquiry/internal/config"
	"navkar-inquiry/internal/core/domain"
)

// SessionSource exposes the current session to the client.
type SessionSource interface {
	Current() domain.Session
}

// APIError is a non-2xx response from the remote service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// Client is the single outbound-call wrapper for the remote service.
type Client struct {
	baseURL  string
	http     *http.Client
	sessions SessionSource
}

// New creates a gateway client against the configured base address.
func New(cfg *config.Config, sessions SessionSource) *Client {
	return &Client{
		baseURL:  cfg.Client.APIBaseURL,
		http:     &http.Client{Timeout: cfg.Client.RequestTimeout},
		sessions: sessions,
	}
}

// do performs one round-trip. The request body is JSON encoded when
// present; a 2xx response body is decoded into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sess := c.sessions.Current(); sess.Token != "" {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(data),
		}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// errorMessage unwraps the service's {"error": "..."} failure body.
// Anything else falls back to the status-code message.
func errorMessage(data []byte) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	return body.Error
}

// Login authenticates against the remote service.
func (c *Client) Login(ctx context.Context, username, password string) (*domain.AuthResult, error) {
	payload := map[string]string{
		"username": username,
		"password": password,
	}
	var result domain.AuthResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Register creates an account with the chosen role.
func (c *Client) Register(ctx context.Context, username, password string, role domain.Role) error {
	payload := map[string]string{
		"username": username,
		"password": password,
		"role":     string(role),
	}
	return c.do(ctx, http.MethodPost, "/api/auth/register", payload, nil)
}

// ListAll fetches all records across all owners (admin view).
func (c *Client) ListAll(ctx context.Context) ([]domain.InquiryRecord, error) {
	var records []domain.InquiryRecord
	if err := c.do(ctx, http.MethodGet, "/api/inquiries", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ListMine fetches the records owned by the authenticated identity.
func (c *Client) ListMine(ctx context.Context) ([]domain.InquiryRecord, error) {
	var records []domain.InquiryRecord
	if err := c.do(ctx, http.MethodGet, "/api/inquiries/my", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Create submits a new record; the server assigns id and PENDING status.
func (c *Client) Create(ctx context.Context, rec *domain.InquiryRecord) (*domain.InquiryRecord, error) {
	var created domain.InquiryRecord
	if err := c.do(ctx, http.MethodPost, "/api/inquiries/inquiry", rec, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByID fetches one record, used to pre-populate the edit form.
func (c *Client) GetByID(ctx context.Context, id uint) (*domain.InquiryRecord, error) {
	var rec domain.InquiryRecord
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/inquiries/%d", id), nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update replaces a record in full.
func (c *Client) Update(ctx context.Context, id uint, rec *domain.InquiryRecord) (*domain.InquiryRecord, error) {
	var updated domain.InquiryRecord
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/inquiries/%d", id), rec, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a record by id.
func (c *Client) Delete(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/inquiries/%d", id), nil, nil)
}

// SetStatus mutates only the status field of a record (admin operation).
func (c *Client) SetStatus(ctx context.Context, id uint, status domain.InquiryStatus) (*domain.InquiryRecord, error) {
	params := url.Values{}
	params.Set("status", string(status))

	var updated domain.InquiryRecord
	path := fmt.Sprintf("/api/inquiries/%d/status?%s", id, params.Encode())
	if err := c.do(ctx, http.MethodPatch, path, nil, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
