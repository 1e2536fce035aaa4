// Package api is the HTTP client for the backend auth and content surface.
// Session handling is cookie-based; the client keeps the session cookie in
// an in-memory jar, the way a browser would.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/litoraledu/gestordoc/internal/common"
)

// Profile is the user identity the server returns after authentication.
type Profile struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	Name            string `json:"name"`
	InstitutionalID string `json:"institutional_id"`
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	InstitutionalID string `json:"institutionalId"`
	Terms           bool   `json:"terms"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{baseURL: baseURL, http: &http.Client{Jar: jar}}, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type sessionStatus struct {
	Authenticated bool     `json:"authenticated"`
	Message       string   `json:"message"`
	User          *Profile `json:"user"`
}

// apiError maps an unsuccessful response to the matching sentinel so
// callers can distinguish user mistakes from real failures.
func apiError(status int, message string) error {
	if message == "" {
		message = fmt.Sprintf("unexpected status %d", status)
	}
	switch status {
	case http.StatusBadRequest:
		return common.Validation(message)
	case http.StatusUnauthorized:
		return common.Unauthorized(message)
	default:
		return fmt.Errorf("%w: %s", common.ErrorInternal, message)
	}
}

func (c *Client) do(ctx context.Context, method, path string, body any, out *envelope) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		return apiError(resp.StatusCode, out.Message)
	}

	return nil
}

// Register creates an account. The server performs all validation; its
// message comes back verbatim on failure.
func (c *Client) Register(ctx context.Context, in RegisterInput) error {
	var out envelope
	return c.do(ctx, http.MethodPost, "/api/register", in, &out)
}

// Login authenticates and stores the session cookie in the jar.
func (c *Client) Login(ctx context.Context, email, password string, remember bool) (*Profile, error) {
	var out envelope
	err := c.do(ctx, http.MethodPost, "/api/login", map[string]any{
		"email":    email,
		"password": password,
		"remember": remember,
	}, &out)
	if err != nil {
		return nil, err
	}

	var p Profile
	if err := json.Unmarshal(out.Data, &p); err != nil {
		return nil, err
	}

	return &p, nil
}

// Logout destroys the server-side session and drops the cookie.
func (c *Client) Logout(ctx context.Context) error {
	var out envelope
	return c.do(ctx, http.MethodPost, "/api/logout", nil, &out)
}

// CheckSession asks the server who the current session belongs to.
// An unauthenticated session returns common.ErrorUnauthorized.
func (c *Client) CheckSession(ctx context.Context) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/check_session", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out sessionStatus
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}

	if !out.Authenticated || out.User == nil {
		return nil, common.Unauthorized(out.Message)
	}

	return out.User, nil
}

// UploadURL requests a presigned PUT URL and the storage key it targets.
func (c *Client) UploadURL(ctx context.Context) (string, string, error) {
	var out envelope
	if err := c.do(ctx, http.MethodPost, "/api/upload_url", nil, &out); err != nil {
		return "", "", err
	}

	var data struct {
		Key string `json:"key"`
		URL string `json:"url"`
	}
	if err := json.Unmarshal(out.Data, &data); err != nil {
		return "", "", err
	}

	return data.Key, data.URL, nil
}

// DownloadURL requests a presigned GET URL for the given storage key.
func (c *Client) DownloadURL(ctx context.Context, key string) (string, error) {
	var out envelope
	path := "/api/download_url?key=" + url.QueryEscape(key)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return "", err
	}

	var data struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(out.Data, &data); err != nil {
		return "", err
	}

	return data.URL, nil
}
