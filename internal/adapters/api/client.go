// Package api implements the HTTP gateway to the document-management
// backend. Every outbound call flows through Client: it attaches the bearer
// credential, correlates requests, and converts rejections into the
// application error taxonomy. An unauthorized response tears down the
// session unless the target endpoint is exempt.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/dms-platform/dms-cli/internal/errors"
)

// RequestIDHeader is the header used to correlate requests with backend logs.
const RequestIDHeader = "X-Request-ID"

// exemptPaths lists endpoint prefixes whose unauthorized responses must NOT
// force a session teardown. These endpoints are reachable by actors whose
// privilege should not trigger a forced logout on a permission failure.
var exemptPaths = []string{
	"/api/auth/signup",
	"/api/users",
	"/api/users/assign-departments",
}

// TokenFunc returns the current credential token, or "" when no session is
// active. It is consulted immediately before every outbound call, so an
// asynchronous teardown is picked up by the next request.
type TokenFunc func() string

// TeardownFunc is invoked when a non-exempt endpoint rejects the credential.
// It must clear the persisted session and deactivate the in-memory one.
type TeardownFunc func(ctx context.Context)

// ClientOptions groups dependencies for Client.
type ClientOptions struct {
	// BaseURL is the backend entry point, e.g. "http://localhost:8080".
	BaseURL string
	// HTTPClient is optional; a client with a sane timeout is used when nil.
	HTTPClient *http.Client
	// Token supplies the current credential token.
	Token TokenFunc
	// Teardown is called on a non-exempt unauthorized response. Optional.
	Teardown TeardownFunc
	// Logger is optional; slog.Default() is used when nil.
	Logger *slog.Logger
}

// Client is the single gateway through which all backend calls flow.
type Client struct {
	baseURL  string
	http     *http.Client
	token    TokenFunc
	teardown TeardownFunc
	logger   *slog.Logger
}

// NewClient constructs a gateway client.
func NewClient(opts ClientOptions) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	token := opts.Token
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		baseURL:  strings.TrimRight(opts.BaseURL, "/"),
		http:     httpClient,
		token:    token,
		teardown: opts.Teardown,
		logger:   logger,
	}
}

// isExempt reports whether an unauthorized response for the path passes
// through to the caller instead of tearing down the session.
func isExempt(path string) bool {
	for _, prefix := range exemptPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// doJSON issues a request with an optional JSON body and decodes a JSON
// response into out (skipped when out is nil).
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := c.newRequest(ctx, method, path, query, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, path, out)
}

// newRequest builds the outbound request with credential and correlation
// headers attached. The token is read here, immediately before the call.
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "build request")
	}

	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if req.Header.Get(RequestIDHeader) == "" {
		req.Header.Set(RequestIDHeader, uuid.NewString())
	}
	return req, nil
}

// send executes the request and maps the response onto the error taxonomy.
func (c *Client) send(req *http.Request, path string, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeTransport, "%s %s", req.Method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return c.handleUnauthorized(req.Context(), path, resp)
	}
	if resp.StatusCode >= 400 {
		return statusError(resp, path)
	}

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if decodeErr := json.NewDecoder(resp.Body).Decode(out); decodeErr != nil {
		return apperrors.Wrapf(decodeErr, apperrors.ErrCodeTransport, "decode %s response", path)
	}
	return nil
}

// handleUnauthorized applies the exemption list. Exempt endpoints surface a
// plain transport error; everything else tears down the session before the
// call is rejected.
func (c *Client) handleUnauthorized(ctx context.Context, path string, resp *http.Response) error {
	message := backendMessage(resp.Body)
	if isExempt(path) {
		if message == "" {
			message = "request was not authorized"
		}
		return apperrors.Transport(message)
	}

	c.logger.WarnContext(ctx, "unauthorized response, tearing down session", "path", path)
	if c.teardown != nil {
		c.teardown(ctx)
	}
	if message == "" {
		message = "session is no longer valid"
	}
	return apperrors.Unauthorized(message)
}

// statusError converts a non-2xx response into an AppError, preferring the
// most specific message the backend provided.
func statusError(resp *http.Response, path string) error {
	message := backendMessage(resp.Body)
	if resp.StatusCode == http.StatusNotFound {
		if message == "" {
			message = fmt.Sprintf("%s not found", path)
		}
		return apperrors.NotFound(message)
	}
	if message == "" {
		message = fmt.Sprintf("%s returned status %d", path, resp.StatusCode)
	}
	return apperrors.Transport(message)
}

// backendMessage extracts the error message from a backend response body.
// The services answer with either {"message": ...} or {"detail": ...}.
func backendMessage(body io.Reader) string {
	var payload struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Detail
}

// joinIDs renders int64 ids as a comma-separated query value.
func joinIDs(ids []int64) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("%d", id))
	}
	return strings.Join(parts, ",")
}
