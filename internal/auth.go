package internal

import (
	"context"
	"errors"
	"fmt"
)

// AuthState makes the auth gate's implicit states explicit: a visitor is
// anonymous (no token), checking (token being verified), authenticated, or
// expired (token present but rejected).
type AuthState int

const (
	StateAnonymous AuthState = iota
	StateChecking
	StateAuthenticated
	StateExpired
)

func (s AuthState) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateChecking:
		return "checking"
	case StateAuthenticated:
		return "authenticated"
	case StateExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Authenticator couples the API client with the session store. It remembers
// the last observed AuthState so surfaces can report where the gate landed.
type Authenticator struct {
	client  *Client
	session *SessionStore
	state   AuthState
}

func NewAuthenticator(client *Client, session *SessionStore) *Authenticator {
	return &Authenticator{
		client:  client,
		session: session,
		state:   StateAnonymous,
	}
}

// State is the result of the most recent CheckAuth, or StateChecking while
// one is in flight.
func (a *Authenticator) State() AuthState {
	return a.state
}

// Login exchanges credentials for a token and stores it as the new session,
// replacing any prior one. Failures propagate the server's message.
func (a *Authenticator) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	result, err := a.client.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	if err := a.session.SetSession(result.AccessToken, result.Username); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	a.state = StateAuthenticated
	return result, nil
}

// Logout best-effort-notifies the server, then unconditionally clears the
// local session. A network failure never keeps the user logged in.
func (a *Authenticator) Logout(ctx context.Context) error {
	if a.session.IsAuthenticated() {
		_ = a.client.Logout(ctx)
	}
	a.state = StateAnonymous
	return a.session.RemoveToken()
}

// CheckAuth resolves the current user from the stored token. A missing token
// is anonymous; a rejected or unreachable check clears the session and
// reports expired. Callers must tolerate the session disappearing as a side
// effect.
func (a *Authenticator) CheckAuth(ctx context.Context) (AuthState, *User) {
	if !a.session.IsAuthenticated() {
		a.state = StateAnonymous
		return a.state, nil
	}

	a.state = StateChecking
	user, err := a.client.Me(ctx)
	if err != nil {
		_ = a.session.RemoveToken()
		a.state = StateExpired
		return a.state, nil
	}

	a.state = StateAuthenticated
	return a.state, user
}

// RequireAuth gates protected surfaces. A non-authenticated result carries
// ErrNotAuthenticated so callers can redirect to the login surface.
func (a *Authenticator) RequireAuth(ctx context.Context) (*User, error) {
	state, user := a.CheckAuth(ctx)
	if state != StateAuthenticated {
		return nil, fmt.Errorf("%w: %s", ErrNotAuthenticated, state)
	}
	return user, nil
}

// IsAuthErr reports whether err is the auth gate's rejection.
func IsAuthErr(err error) bool {
	return errors.Is(err, ErrNotAuthenticated)
}
