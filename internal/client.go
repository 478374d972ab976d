package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// Client talks to the memo API. One method per endpoint, one request per
// call: no retries, no timeouts, no caching.
type Client struct {
	baseURL string
	session *SessionStore
	http    *http.Client
}

func NewClient(baseURL string, session *SessionStore) *Client {
	return &Client{
		baseURL: baseURL,
		session: session,
		http:    http.DefaultClient,
	}
}

// WithHTTPClient swaps the underlying http.Client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.http = hc
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, authed bool) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed && c.session != nil {
		if header, ok := c.session.AuthHeader(); ok {
			req.Header.Set("Authorization", header)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// newAPIError extracts the server's detail message when the body carries
// one, otherwise keeps the status text.
func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Detail:     http.StatusText(resp.StatusCode),
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apiErr
	}

	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Detail != "" {
		apiErr.Detail = payload.Detail
	}
	return apiErr
}

// ListMemos fetches a page of memos. order is "asc" or "desc".
func (c *Client) ListMemos(ctx context.Context, order string, limit, skip int) ([]Memo, error) {
	query := url.Values{
		"order": {order},
		"limit": {strconv.Itoa(limit)},
		"skip":  {strconv.Itoa(skip)},
	}

	var memos []Memo
	if err := c.do(ctx, http.MethodGet, "/api/memos", query, nil, &memos, false); err != nil {
		return nil, fmt.Errorf("fetch memos: %w", err)
	}
	return memos, nil
}

func (c *Client) GetMemo(ctx context.Context, number int) (*Memo, error) {
	var memo Memo
	if err := c.do(ctx, http.MethodGet, "/api/memos/"+strconv.Itoa(number), nil, nil, &memo, false); err != nil {
		return nil, fmt.Errorf("fetch memo: %w", err)
	}
	return &memo, nil
}

// GetNavigation fetches the previous/next neighbors of a memo.
func (c *Client) GetNavigation(ctx context.Context, number int) (*Navigation, error) {
	var nav Navigation
	if err := c.do(ctx, http.MethodGet, "/api/memos/nav/"+strconv.Itoa(number), nil, nil, &nav, false); err != nil {
		return nil, fmt.Errorf("fetch navigation: %w", err)
	}
	return &nav, nil
}

// CreateMemo submits a new memo. The bearer token is attached when a session
// exists.
func (c *Client) CreateMemo(ctx context.Context, memo Memo) (*Memo, error) {
	var created Memo
	if err := c.do(ctx, http.MethodPost, "/api/memos", nil, memo, &created, true); err != nil {
		return nil, fmt.Errorf("create memo: %w", err)
	}
	return &created, nil
}

// UpdateMemo replaces the provided fields of an existing memo.
func (c *Client) UpdateMemo(ctx context.Context, number int, patch MemoPatch) (*Memo, error) {
	var updated Memo
	if err := c.do(ctx, http.MethodPut, "/api/memos/"+strconv.Itoa(number), nil, patch, &updated, true); err != nil {
		return nil, fmt.Errorf("update memo: %w", err)
	}
	return &updated, nil
}

// DeleteMemo removes a memo. Auth required.
func (c *Client) DeleteMemo(ctx context.Context, number int) error {
	if err := c.do(ctx, http.MethodDelete, "/api/memos/"+strconv.Itoa(number), nil, nil, nil, true); err != nil {
		return fmt.Errorf("delete memo: %w", err)
	}
	return nil
}

func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats
	if err := c.do(ctx, http.MethodGet, "/api/stats", nil, nil, &stats, false); err != nil {
		return nil, fmt.Errorf("fetch stats: %w", err)
	}
	return &stats, nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult is the token grant the backend returns.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Username    string `json:"username"`
}

// Login exchanges credentials for a bearer token. It does not touch the
// session store; that is the Authenticator's job.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var result LoginResult
	body := loginRequest{Username: username, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/login", nil, body, &result, false); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &result, nil
}

// Logout notifies the server to invalidate the token. Best-effort: callers
// clear local state regardless of the outcome.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/logout", nil, nil, nil, true); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Me resolves the current user from the stored bearer token.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/me", nil, nil, &user, true); err != nil {
		return nil, fmt.Errorf("fetch current user: %w", err)
	}
	return &user, nil
}
