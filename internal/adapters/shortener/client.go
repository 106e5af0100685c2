package shortener

// Package shortener implements the HTTP client for the remote URL-shortening
// API. All durable logic (code generation, click tracking, QR rendering,
// server-side authorization) lives behind this boundary.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/linkly/linkly-ui/internal/domain/model"
	apperrors "github.com/linkly/linkly-ui/internal/errors"
	"github.com/linkly/linkly-ui/internal/ports"
)

const defaultTimeout = 10 * time.Second

// Client talks to the shortener API under its /api base path. Requests carry
// `Authorization: Bearer <token>` via a transport that prefers the explicitly
// armed token and falls back to persisted storage, so a freshly logged-in
// process and a restarted one behave identically.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// Options groups constructor parameters for Client.
type Options struct {
	// BaseURL is the API root including the /api base path,
	// e.g. "http://localhost:8080/api".
	BaseURL string
	// Storage supplies the persisted token for the request interceptor.
	// Optional; when nil only the armed token is used.
	Storage ports.Storage
	// Timeout overrides the default 10s request timeout.
	Timeout time.Duration
	// Transport overrides the base transport (tests).
	Transport http.RoundTripper
}

// New creates a Client.
func New(opts Options) *Client {
	c := &Client{baseURL: strings.TrimRight(opts.BaseURL, "/")}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	base := opts.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	c.http = &http.Client{
		Timeout: timeout,
		Transport: &authTransport{
			base:    base,
			storage: opts.Storage,
			armed:   c.currentToken,
		},
	}
	return c
}

// SetToken arms the bearer token for subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ClearToken removes the armed bearer token.
func (c *Client) ClearToken() {
	c.SetToken("")
}

func (c *Client) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// authTransport attaches the bearer token to outgoing requests. The armed
// token wins; absent that, the persisted storage token is used, mirroring a
// request interceptor that reads durable client storage.
type authTransport struct {
	base    http.RoundTripper
	storage ports.Storage
	armed   func() string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token := t.armed()
	if token == "" && t.storage != nil {
		if stored, err := t.storage.Get(req.Context(), ports.KeyToken); err == nil {
			token = stored
		}
	}
	if token == "" {
		return t.base.RoundTrip(req)
	}

	clone := req.Clone(req.Context())
	tok := &oauth2.Token{AccessToken: token, TokenType: "Bearer"}
	tok.SetAuthHeader(clone)
	return t.base.RoundTrip(clone)
}

// Login authenticates with username/password credentials.
func (c *Client) Login(ctx context.Context, creds model.Credentials) (model.AuthResponse, error) {
	var resp model.AuthResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/login", nil, creds, &resp)
	return resp, err
}

// Signup registers a new account; success auto-authenticates it.
func (c *Client) Signup(ctx context.Context, creds model.Credentials) (model.AuthResponse, error) {
	var resp model.AuthResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/signup", nil, creds, &resp)
	return resp, err
}

// Shorten creates a short code for a URL.
func (c *Client) Shorten(ctx context.Context, req model.ShortenRequest) (model.ShortenResponse, error) {
	var resp model.ShortenResponse
	err := c.doJSON(ctx, http.MethodPost, "/shorten", nil, req, &resp)
	return resp, err
}

// ListURLs fetches the URL listing, optionally filtered server-side by search.
func (c *Client) ListURLs(ctx context.Context, search string) ([]model.ShortenedURL, error) {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	var resp []model.ShortenedURL
	err := c.doJSON(ctx, http.MethodGet, "/urls", q, nil, &resp)
	return resp, err
}

// Analytics fetches the analytics record for a short code.
func (c *Client) Analytics(ctx context.Context, code string) (model.URLAnalytics, error) {
	var resp model.URLAnalytics
	err := c.doJSON(ctx, http.MethodGet, "/analytics/"+url.PathEscape(code), nil, nil, &resp)
	return resp, err
}

// QRInfo fetches the descriptive (non-binary) QR payload for a short code.
func (c *Client) QRInfo(ctx context.Context, code string, urlType model.QRTargetType) (model.QRInfo, error) {
	q := url.Values{}
	q.Set("url_type", string(urlType))
	var resp model.QRInfo
	err := c.doJSON(ctx, http.MethodGet, "/qr/"+url.PathEscape(code)+"/info", q, nil, &resp)
	return resp, err
}

// RegenerateQR fetches a freshly rendered QR image for a short code.
func (c *Client) RegenerateQR(ctx context.Context, code string, urlType model.QRTargetType, force bool) (ports.QRImage, error) {
	q := url.Values{}
	q.Set("url_type", string(urlType))
	q.Set("force", strconv.FormatBool(force))
	return c.doBinary(ctx, http.MethodGet, "/qr/"+url.PathEscape(code)+"/regenerate", q, nil)
}

// CreateQR renders a QR image directly for an arbitrary URL.
func (c *Client) CreateQR(ctx context.Context, req model.QRCodeRequest) (ports.QRImage, error) {
	return c.doBinary(ctx, http.MethodPost, "/qr", nil, req)
}

// ListQRCodes fetches the QR code listing.
func (c *Client) ListQRCodes(ctx context.Context, search string) ([]model.QRCode, error) {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	var resp []model.QRCode
	err := c.doJSON(ctx, http.MethodGet, "/qr", q, nil, &resp)
	return resp, err
}

// ListUsers fetches all managed accounts.
func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	var resp []model.User
	err := c.doJSON(ctx, http.MethodGet, "/users/", nil, nil, &resp)
	return resp, err
}

// CreateUser creates a managed account.
func (c *Client) CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error) {
	var resp model.User
	err := c.doJSON(ctx, http.MethodPost, "/users/", nil, req, &resp)
	return resp, err
}

// UpdateUser updates a managed account.
func (c *Client) UpdateUser(ctx context.Context, id string, req model.CreateUserRequest) (model.User, error) {
	var resp model.User
	err := c.doJSON(ctx, http.MethodPut, "/users/"+url.PathEscape(id), nil, req, &resp)
	return resp, err
}

// DeleteUser removes a managed account.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), nil, nil, nil)
}

// doJSON performs a JSON round trip. A nil out discards the response body.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	resp, err := c.do(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apiError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "decode API response")
	}
	return nil
}

// doBinary performs a round trip expected to return an image payload.
func (c *Client) doBinary(ctx context.Context, method, path string, query url.Values, body any) (ports.QRImage, error) {
	resp, err := c.do(ctx, method, path, query, body)
	if err != nil {
		return ports.QRImage{}, err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ports.QRImage{}, apiError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return ports.QRImage{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "read QR image")
	}
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/png"
	}
	return ports.QRImage{ContentType: contentType, Data: data}, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode API request")
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "build API request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "shortener API unreachable")
	}
	return resp, nil
}

// apiError maps a non-2xx response to an AppError, surfacing the response
// body's `error` field when present.
func apiError(resp *http.Response) error {
	const maxErrBody = 64 << 10
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))

	message := ""
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		message = payload.Error
	}
	if message == "" {
		message = fmt.Sprintf("shortener API returned %s", resp.Status)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return apperrors.Unauthorized(message)
	case resp.StatusCode == http.StatusForbidden:
		return apperrors.Forbidden(message)
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.NotFound(message)
	case resp.StatusCode == http.StatusConflict:
		return apperrors.Conflict(message)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return apperrors.Validation(message)
	default:
		return apperrors.Internal(message)
	}
}
