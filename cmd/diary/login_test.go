package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vinayakray19/conquest-of-infinity/internal"
)

func newAuthServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/login":
			var req map[string]string
			_ = json.NewDecoder(r.Body).Decode(&req)
			if req["password"] != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Incorrect username or password"})
				return
			}
			_ = json.NewEncoder(w).Encode(internal.LoginResult{AccessToken: "tok-valid", Username: req["username"]})
		case "/api/me":
			if r.Header.Get("Authorization") != "Bearer tok-valid" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_ = json.NewEncoder(w).Encode(internal.User{Username: "alice", Authenticated: true})
		case "/api/logout":
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestLoginThenWhoami(t *testing.T) {
	srv := newAuthServer(t)
	defer srv.Close()

	a := testApp(t)

	out, err := execute(t, a, "login", "-u", "alice", "-p", "secret", "--api", srv.URL)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !strings.Contains(out, "Logged in as alice") {
		t.Errorf("unexpected login output:\n%s", out)
	}

	out, err = execute(t, a, "whoami", "--api", srv.URL)
	if err != nil {
		t.Fatalf("whoami: %v", err)
	}
	if !strings.Contains(out, "Logged in as alice") {
		t.Errorf("unexpected whoami output:\n%s", out)
	}
}

func TestLoginFailure(t *testing.T) {
	srv := newAuthServer(t)
	defer srv.Close()

	a := testApp(t)
	_, err := execute(t, a, "login", "-u", "alice", "-p", "wrong", "--api", srv.URL)
	if err == nil {
		t.Fatal("expected login failure")
	}
	if !strings.Contains(err.Error(), "Incorrect username or password") {
		t.Errorf("expected server detail, got: %v", err)
	}
	if a.session().IsAuthenticated() {
		t.Error("failed login must not store a token")
	}
}

func TestLogoutClearsSession(t *testing.T) {
	srv := newAuthServer(t)
	defer srv.Close()

	a := testApp(t)
	if _, err := execute(t, a, "login", "-u", "alice", "-p", "secret", "--api", srv.URL); err != nil {
		t.Fatalf("login: %v", err)
	}

	out, err := execute(t, a, "logout", "--api", srv.URL)
	if err != nil {
		t.Fatalf("logout: %v", err)
	}
	if !strings.Contains(out, "Logged out") {
		t.Errorf("unexpected logout output:\n%s", out)
	}
	if a.session().IsAuthenticated() {
		t.Error("logout must clear the session")
	}
}

func TestWhoamiAnonymous(t *testing.T) {
	srv := newAuthServer(t)
	defer srv.Close()

	out, err := execute(t, testApp(t), "whoami", "--api", srv.URL)
	if err != nil {
		t.Fatalf("whoami: %v", err)
	}
	if !strings.Contains(out, "Not logged in") {
		t.Errorf("unexpected output:\n%s", out)
	}
}
