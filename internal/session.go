package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gopkg.in/yaml.v3"
)

// Session is the browser-local-storage analog: a bearer token, the username
// it belongs to, and two placeholder profile fields that never travel to the
// API.
type Session struct {
	AccessToken string `yaml:"access_token,omitempty"`
	Username    string `yaml:"username,omitempty"`
	Email       string `yaml:"email,omitempty"`
	Bio         string `yaml:"bio,omitempty"`
}

// SessionStore persists the session as a YAML file. Every read goes back to
// disk so concurrent processes (CLI and serve) observe each other's logins.
type SessionStore struct {
	path string
}

func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

func (s *SessionStore) load() *Session {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return &Session{}
	}

	var sess Session
	if err := yaml.Unmarshal(data, &sess); err != nil {
		return &Session{}
	}
	return &sess
}

func (s *SessionStore) save(sess *Session) error {
	data, err := yaml.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	// 0600: the token is a credential
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}

	return nil
}

func (s *SessionStore) Token() string {
	return s.load().AccessToken
}

func (s *SessionStore) Username() string {
	return s.load().Username
}

// SetSession replaces any prior token and username.
func (s *SessionStore) SetSession(token, username string) error {
	sess := s.load()
	sess.AccessToken = token
	sess.Username = username
	return s.save(sess)
}

// RemoveToken clears the token and username. The placeholder profile fields
// survive a logout; only the token and username are cleared.
func (s *SessionStore) RemoveToken() error {
	sess := s.load()
	sess.AccessToken = ""
	sess.Username = ""
	return s.save(sess)
}

func (s *SessionStore) IsAuthenticated() bool {
	return s.Token() != ""
}

// AuthHeader returns the Authorization header value, or false when no token
// is stored.
func (s *SessionStore) AuthHeader() (string, bool) {
	token := s.Token()
	if token == "" {
		return "", false
	}
	return "Bearer " + token, true
}

func (s *SessionStore) ProfileInfo() (email, bio string) {
	sess := s.load()
	return sess.Email, sess.Bio
}

// SetProfileInfo stores the placeholder fields locally only.
func (s *SessionStore) SetProfileInfo(email, bio string) error {
	sess := s.load()
	if email != "" {
		sess.Email = email
	}
	if bio != "" {
		sess.Bio = bio
	}
	return s.save(sess)
}

// TokenExpiry peeks at the unverified exp claim of the stored token. The
// token stays opaque to every other code path; an unparseable token just
// reports no expiry.
func (s *SessionStore) TokenExpiry() (time.Time, bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
