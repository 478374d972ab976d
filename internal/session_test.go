package internal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SessionStore {
	t.Helper()
	return NewSessionStore(filepath.Join(t.TempDir(), "session.yaml"))
}

func TestSessionRoundTrip(t *testing.T) {
	store := newTestStore(t)

	assert.False(t, store.IsAuthenticated())
	_, ok := store.AuthHeader()
	assert.False(t, ok)

	require.NoError(t, store.SetSession("tok-123", "alice"))
	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "tok-123", store.Token())
	assert.Equal(t, "alice", store.Username())

	header, ok := store.AuthHeader()
	require.True(t, ok)
	assert.Equal(t, "Bearer tok-123", header)
}

func TestRemoveTokenClearsAuthentication(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SetSession("tok-123", "alice"))

	require.NoError(t, store.RemoveToken())
	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.Username())
}

func TestProfileInfoSurvivesLogout(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SetSession("tok-123", "alice"))
	require.NoError(t, store.SetProfileInfo("alice@example.com", "I write memos."))

	require.NoError(t, store.RemoveToken())

	email, bio := store.ProfileInfo()
	assert.Equal(t, "alice@example.com", email)
	assert.Equal(t, "I write memos.", bio)
}

func TestSetProfileInfoKeepsExistingOnEmpty(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SetProfileInfo("alice@example.com", "bio"))
	require.NoError(t, store.SetProfileInfo("", "new bio"))

	email, bio := store.ProfileInfo()
	assert.Equal(t, "alice@example.com", email)
	assert.Equal(t, "new bio", bio)
}

func TestTokenExpiry(t *testing.T) {
	store := newTestStore(t)

	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	require.NoError(t, store.SetSession(signed, "alice"))

	got, ok := store.TokenExpiry()
	require.True(t, ok)
	assert.Equal(t, exp.Unix(), got.Unix())
}

func TestTokenExpiryOpaqueToken(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SetSession("not-a-jwt", "alice"))

	_, ok := store.TokenExpiry()
	assert.False(t, ok)
	// opaque tokens are still honored for auth
	assert.True(t, store.IsAuthenticated())
}
