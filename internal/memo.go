package internal

import (
	"errors"
	"fmt"
)

var (
	ErrUnreachable      = errors.New("cannot reach API")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrInvalidMemo      = errors.New("invalid memo data")
)

// APIError is a non-success HTTP response from the backend. Detail carries
// the server-provided message when the body had one, otherwise the status
// text.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Detail)
}

// Memo is a single diary entry as the backend serializes it. The memo number
// is externally assigned and unique; dates travel as ISO strings and are only
// parsed for display.
type Memo struct {
	ID        int    `json:"id,omitempty"`
	Number    int    `json:"memo_number"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Date      string `json:"date"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// Validate checks the fields a rendered memo must carry.
func (m *Memo) Validate() error {
	if m.Number <= 0 {
		return fmt.Errorf("%w: missing memo number", ErrInvalidMemo)
	}
	if m.Title == "" {
		return fmt.Errorf("%w: missing title", ErrInvalidMemo)
	}
	return nil
}

// ValidateForCreate checks the fields the create form requires.
func (m *Memo) ValidateForCreate() error {
	if m.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidMemo)
	}
	if m.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidMemo)
	}
	if m.Content == "" {
		return fmt.Errorf("%w: content is required", ErrInvalidMemo)
	}
	return nil
}

// MemoPatch is a partial update: absent fields stay untouched server-side.
type MemoPatch struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
	Date    string `json:"date,omitempty"`
}

// Navigation holds the neighbors of a memo. Absent neighbors are nil.
type Navigation struct {
	Previous *Memo `json:"previous"`
	Next     *Memo `json:"next"`
	Current  *Memo `json:"current"`
}

// Stats is the aggregate view the backend exposes.
type Stats struct {
	TotalMemos      int     `json:"total_memos"`
	OldestDate      *string `json:"oldest_date"`
	NewestDate      *string `json:"newest_date"`
	FirstMemoNumber *int    `json:"first_memo_number"`
	LastMemoNumber  *int    `json:"last_memo_number"`
}

// User is the resolved identity behind a bearer token.
type User struct {
	Username      string `json:"username"`
	Authenticated bool   `json:"authenticated"`
}
