package v1

import (
	"context"
	"fmt"

	"github.com/vinayakray19/conquest-of-infinity/internal"
)

// Client provides programmatic access to the diary API with the same
// session persistence the CLI and web front end use.
type Client struct {
	api  *internal.Client
	auth *internal.Authenticator
}

// New creates a new Client with the given options.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.sessionPath == "" {
		path, err := internal.DefaultSessionPath()
		if err != nil {
			return nil, fmt.Errorf("resolve session path: %w", err)
		}
		cfg.sessionPath = path
	}

	session := internal.NewSessionStore(cfg.sessionPath)
	base := internal.ResolveBaseURL(cfg.baseURL, "")

	api := internal.NewClient(base, session)
	if cfg.httpClient != nil {
		api = api.WithHTTPClient(cfg.httpClient)
	}

	return &Client{
		api:  api,
		auth: internal.NewAuthenticator(api, session),
	}, nil
}

// Memos returns one page of memos, newest first when order is "desc".
func (c *Client) Memos(ctx context.Context, order string, limit, skip int) ([]Memo, error) {
	memos, err := c.api.ListMemos(ctx, order, limit, skip)
	if err != nil {
		return nil, err
	}

	out := make([]Memo, 0, len(memos))
	for _, m := range memos {
		out = append(out, fromInternal(&m))
	}
	return out, nil
}

// Memo fetches a single memo by number.
func (c *Client) Memo(ctx context.Context, number int) (*Memo, error) {
	m, err := c.api.GetMemo(ctx, number)
	if err != nil {
		return nil, err
	}
	memo := fromInternal(m)
	return &memo, nil
}

// Navigation fetches a memo's previous/next neighbors.
func (c *Client) Navigation(ctx context.Context, number int) (*Navigation, error) {
	nav, err := c.api.GetNavigation(ctx, number)
	if err != nil {
		return nil, err
	}
	return &Navigation{
		Previous: fromInternalPtr(nav.Previous),
		Next:     fromInternalPtr(nav.Next),
		Current:  fromInternalPtr(nav.Current),
	}, nil
}

// Create submits a new memo; the stored session token is attached.
func (c *Client) Create(ctx context.Context, memo Memo) (*Memo, error) {
	created, err := c.api.CreateMemo(ctx, internal.Memo{
		Number:  memo.Number,
		Title:   memo.Title,
		Content: memo.Content,
		Date:    memo.Date,
	})
	if err != nil {
		return nil, err
	}
	out := fromInternal(created)
	return &out, nil
}

// Update replaces the provided fields of an existing memo.
func (c *Client) Update(ctx context.Context, number int, title, content, date string) (*Memo, error) {
	updated, err := c.api.UpdateMemo(ctx, number, internal.MemoPatch{
		Title:   title,
		Content: content,
		Date:    date,
	})
	if err != nil {
		return nil, err
	}
	out := fromInternal(updated)
	return &out, nil
}

// Delete removes a memo. Requires a logged-in session.
func (c *Client) Delete(ctx context.Context, number int) error {
	return c.api.DeleteMemo(ctx, number)
}

// Stats fetches the diary's aggregate counts.
func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	s, err := c.api.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &Stats{
		TotalMemos:      s.TotalMemos,
		OldestDate:      s.OldestDate,
		NewestDate:      s.NewestDate,
		FirstMemoNumber: s.FirstMemoNumber,
		LastMemoNumber:  s.LastMemoNumber,
	}, nil
}

// Login stores the session token for subsequent calls.
func (c *Client) Login(ctx context.Context, username, password string) error {
	_, err := c.auth.Login(ctx, username, password)
	return err
}

// Logout clears the stored session, best-effort-notifying the server.
func (c *Client) Logout(ctx context.Context) error {
	return c.auth.Logout(ctx)
}

// CurrentUser resolves the logged-in user, or an error when the session is
// absent or expired.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	user, err := c.auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}
	return &User{Username: user.Username}, nil
}

func fromInternal(m *internal.Memo) Memo {
	return Memo{
		Number:  m.Number,
		Title:   m.Title,
		Content: m.Content,
		Date:    m.Date,
	}
}

func fromInternalPtr(m *internal.Memo) *Memo {
	if m == nil {
		return nil
	}
	memo := fromInternal(m)
	return &memo
}
