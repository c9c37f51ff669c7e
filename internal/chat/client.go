// Package chat provides a client for chat workspace APIs that use
// Google Chat style resource names (spaces, threads, per-user read states).
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/catchup-chat/catchup/internal/metrics"
)

// TokenSource supplies the bearer token for upstream calls. Implementations
// must be safe for concurrent use.
type TokenSource interface {
	Token() (string, error)
}

// APIError is a non-2xx response from the workspace API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("chat API error %d", e.StatusCode)
	}
	return fmt.Sprintf("chat API error %d: %s", e.StatusCode, e.Message)
}

// Client is a chat workspace API client. All calls are issued one at a
// time by callers; the client itself holds no mutable state beyond the
// token source and is safe for concurrent use.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	tokens  TokenSource
	limiter *rate.Limiter
	logger  zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTPClient = hc }
}

// WithRateLimit paces upstream calls to at most rps requests per second,
// protecting the workspace API quota during space scans. A non-positive
// rps disables pacing.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// WithLogger attaches a logger; request traces are emitted at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a workspace API client rooted at baseURL (scheme and
// host, no trailing slash). Credentials come from tokens on every call, so
// externally refreshed tokens are picked up without reconstruction.
func NewClient(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		tokens:     tokens,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// doRequest performs one HTTP request against the API. op names the RPC
// for metrics and logs. The caller's context governs cancellation; there
// are no retries.
func (c *Client) doRequest(ctx context.Context, op, method, path string, query url.Values, body, out interface{}) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	token, err := c.tokens.Token()
	if err != nil {
		return err
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reqBody = bytes.NewReader(data)
	}

	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(op, "error").Inc()
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	duration := time.Since(start)
	metrics.UpstreamRequestsTotal.WithLabelValues(op, strconv.Itoa(resp.StatusCode)).Inc()
	metrics.UpstreamRequestDuration.WithLabelValues(op).Observe(duration.Seconds())

	c.logger.Debug().
		Str("op", op).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", duration).
		Msg("upstream request")

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read response: %w", op, err)
	}

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("%s: decode response: %w", op, err)
		}
	}
	return nil
}

// decodeAPIError extracts the error message from a failure payload. The
// API emits either {"error": {"message": ...}} or {"error": "..."}.
func decodeAPIError(status int, body []byte) *APIError {
	var nested struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &nested); err == nil && nested.Error.Message != "" {
		return &APIError{StatusCode: status, Message: nested.Error.Message}
	}

	var flat struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &flat); err == nil && flat.Error != "" {
		return &APIError{StatusCode: status, Message: flat.Error}
	}

	msg := string(body)
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return &APIError{StatusCode: status, Message: msg}
}

// GetSpaceReadState returns the authenticated user's read state for a
// space. The space may be a bare ID or a full resource name.
func (c *Client) GetSpaceReadState(ctx context.Context, space string) (*ReadState, error) {
	name := SpaceReadStateName(space)

	var state ReadState
	if err := c.doRequest(ctx, "spaces.readState.get", http.MethodGet, "/v1/"+name, nil, nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// UpdateSpaceReadState sets the space's last-read time, marking everything
// at or before it as read. lastReadTime must be in the wire timestamp
// format (see FormatTimestamp).
func (c *Client) UpdateSpaceReadState(ctx context.Context, space, lastReadTime string) (*ReadState, error) {
	name := SpaceReadStateName(space)

	query := url.Values{}
	query.Set("updateMask", "lastReadTime")

	payload := ReadState{LastReadTime: lastReadTime}

	var state ReadState
	if err := c.doRequest(ctx, "spaces.readState.update", http.MethodPatch, "/v1/"+name, query, payload, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// GetThreadReadState returns the authenticated user's read state for a
// thread within a space.
func (c *Client) GetThreadReadState(ctx context.Context, space, thread string) (*ReadState, error) {
	name := ThreadReadStateName(space, thread)

	var state ReadState
	if err := c.doRequest(ctx, "threads.readState.get", http.MethodGet, "/v1/"+name, nil, nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// FindDirectMessage locates the 1:1 DM space with the given user, referenced
// by email or user ID. The API answers 404 when no DM exists yet.
func (c *Client) FindDirectMessage(ctx context.Context, user string) (*Space, error) {
	query := url.Values{}
	query.Set("name", NormalizeUserName(user))

	var space Space
	if err := c.doRequest(ctx, "spaces.findDirectMessage", http.MethodGet, "/v1/spaces:findDirectMessage", query, nil, &space); err != nil {
		return nil, err
	}
	return &space, nil
}

// ListSpaces returns one page of spaces the user is a member of.
func (c *Client) ListSpaces(ctx context.Context, pageSize int, pageToken string) (*ListSpacesResponse, error) {
	query := url.Values{}
	if pageSize > 0 {
		query.Set("pageSize", strconv.Itoa(pageSize))
	}
	if pageToken != "" {
		query.Set("pageToken", pageToken)
	}

	var page ListSpacesResponse
	if err := c.doRequest(ctx, "spaces.list", http.MethodGet, "/v1/spaces", query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ListAllSpaces pages through the space listing until exhausted.
func (c *Client) ListAllSpaces(ctx context.Context) ([]Space, error) {
	var spaces []Space
	pageToken := ""
	for {
		page, err := c.ListSpaces(ctx, 100, pageToken)
		if err != nil {
			return nil, err
		}
		spaces = append(spaces, page.Spaces...)
		if page.NextPageToken == "" {
			return spaces, nil
		}
		pageToken = page.NextPageToken
	}
}

// ListMessagesOptions narrows a message listing. Zero values are omitted
// from the request, leaving the API defaults in effect.
type ListMessagesOptions struct {
	PageSize  int
	PageToken string
	OrderBy   string // e.g. "createTime desc"
	Filter    string
}

// ListMessages returns one page of a space's messages.
func (c *Client) ListMessages(ctx context.Context, space string, opts ListMessagesOptions) (*ListMessagesResponse, error) {
	name := NormalizeSpaceName(space)

	query := url.Values{}
	if opts.PageSize > 0 {
		query.Set("pageSize", strconv.Itoa(opts.PageSize))
	}
	if opts.PageToken != "" {
		query.Set("pageToken", opts.PageToken)
	}
	if opts.OrderBy != "" {
		query.Set("orderBy", opts.OrderBy)
	}
	if opts.Filter != "" {
		query.Set("filter", opts.Filter)
	}

	var page ListMessagesResponse
	if err := c.doRequest(ctx, "spaces.messages.list", http.MethodGet, "/v1/"+name+"/messages", query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetUser returns the workspace profile for a user, referenced by ID or
// email. Used to enrich message sender details.
func (c *Client) GetUser(ctx context.Context, user string) (*User, error) {
	name := NormalizeUserName(user)

	var u User
	if err := c.doRequest(ctx, "users.get", http.MethodGet, "/v1/"+name, nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
