package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// Response is the JSON body the server answers with.
type Response struct {
	Message string `json:"message"`
	UserID  string `json:"userId,omitempty"`
}

type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient returns a client for the server at baseURL whose requests
// time out after timeout.
func NewAPIClient(baseURL string, timeout time.Duration) (*APIClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Jar: jar, Timeout: timeout},
	}, nil
}

func (c *APIClient) Register(ctx context.Context, name, email string, password []byte) (*Response, error) {
	body := map[string]string{"name": name, "email": email, "password": string(password)}
	return c.do(ctx, http.MethodPost, "/api/auth/register", body)
}

// Login stores the session cookie in the client's jar.
func (c *APIClient) Login(ctx context.Context, email string, password []byte) (*Response, error) {
	body := map[string]string{"email": email, "password": string(password)}
	return c.do(ctx, http.MethodPost, "/api/auth/login", body)
}

func (c *APIClient) Logout(ctx context.Context) (*Response, error) {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil)
}

func (c *APIClient) Profile(ctx context.Context) (*Response, error) {
	return c.do(ctx, http.MethodGet, "/api/profile", nil)
}

func (c *APIClient) do(ctx context.Context, method, path string, body any) (*Response, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		out.Message = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: %s", ErrUnauthorized, out.Message)
	case resp.StatusCode >= 300:
		return nil, &APIError{StatusCode: resp.StatusCode, Message: out.Message}
	}
	return &out, nil
}
