package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/memos" && r.Method == http.MethodGet:
			_ = json.NewEncoder(w).Encode([]Memo{
				{Number: 2, Title: "Second", Content: "b", Date: "2025-06-02"},
				{Number: 1, Title: "First", Content: "a", Date: "2025-06-01"},
			})
		case r.URL.Path == "/api/memos" && r.Method == http.MethodPost:
			var memo Memo
			_ = json.NewDecoder(r.Body).Decode(&memo)
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(memo)
		case r.URL.Path == "/api/memos/2":
			_ = json.NewEncoder(w).Encode(Memo{Number: 2, Title: "Second", Content: "b", Date: "2025-06-02"})
		case r.URL.Path == "/api/memos/nav/2":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"previous": Memo{Number: 1, Title: "First"},
				"next":     nil,
				"current":  Memo{Number: 2, Title: "Second"},
			})
		case r.URL.Path == "/api/stats":
			_ = json.NewEncoder(w).Encode(map[string]any{"total_memos": 2})
		case r.URL.Path == "/api/login":
			_ = json.NewEncoder(w).Encode(map[string]string{
				"access_token": "tok-valid", "token_type": "bearer", "username": "alice",
			})
		case r.URL.Path == "/api/me":
			if r.Header.Get("Authorization") != "Bearer tok-valid" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"username": "alice", "authenticated": true})
		default:
			http.NotFound(w, r)
		}
	}))
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := New(
		WithBaseURL(baseURL),
		WithSessionPath(filepath.Join(t.TempDir(), "session.yaml")),
	)
	require.NoError(t, err)
	return client
}

func TestClientMemos(t *testing.T) {
	srv := newFakeBackend(t)
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	memos, err := client.Memos(context.Background(), "desc", 10, 0)
	require.NoError(t, err)
	require.Len(t, memos, 2)
	assert.Equal(t, 2, memos[0].Number)
	assert.Equal(t, "Second", memos[0].Title)
}

func TestClientMemoAndNavigation(t *testing.T) {
	srv := newFakeBackend(t)
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	ctx := context.Background()

	memo, err := client.Memo(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Second", memo.Title)

	nav, err := client.Navigation(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, nav.Previous)
	assert.Equal(t, 1, nav.Previous.Number)
	assert.Nil(t, nav.Next)
}

func TestClientLoginAndCurrentUser(t *testing.T) {
	srv := newFakeBackend(t)
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	ctx := context.Background()

	_, err := client.CurrentUser(ctx)
	require.Error(t, err, "anonymous client has no current user")

	require.NoError(t, client.Login(ctx, "alice", "secret"))

	user, err := client.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestClientCreate(t *testing.T) {
	srv := newFakeBackend(t)
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	created, err := client.Create(context.Background(), Memo{
		Number: 3, Title: "Third", Content: "c", Date: "2025-06-03",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, created.Number)
}

func TestClientStats(t *testing.T) {
	srv := newFakeBackend(t)
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	stats, err := client.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalMemos)
}
