package huckleberry

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestSessionTokenSourceSignIn(t *testing.T) {
	t.Parallel()

	var logins atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/auth/login" {
			t.Errorf("path = %q", r.URL.Path)
		}
		logins.Add(1)
		fmt.Fprint(w, `{"idToken":"tok-1","refreshToken":"refresh-1","expiresIn":3600}`)
	}))
	defer server.Close()

	src := NewSessionTokenSource(
		Credentials{Email: "parent@example.com", Password: "hunter2"},
		WithAuthBaseURL(server.URL),
	)

	token, err := src.Token()
	if err != nil {
		t.Fatalf("Token: %v", err)
	}
	if token.AccessToken != "tok-1" {
		t.Errorf("AccessToken = %q", token.AccessToken)
	}
	if !token.Valid() {
		t.Error("freshly issued token reported invalid")
	}

	// a valid token is served from memory
	if _, err := src.Token(); err != nil {
		t.Fatalf("Token (cached): %v", err)
	}
	if got := logins.Load(); got != 1 {
		t.Errorf("sign-in called %d times, want 1", got)
	}
}

func TestSessionTokenSourceRefresh(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/auth/login":
			// expiresIn of zero forces the next Token call to refresh
			fmt.Fprint(w, `{"idToken":"tok-1","refreshToken":"refresh-1","expiresIn":0}`)
		case "/v1/auth/refresh":
			fmt.Fprint(w, `{"idToken":"tok-2","refreshToken":"refresh-2","expiresIn":3600}`)
		default:
			t.Errorf("path = %q", r.URL.Path)
		}
	}))
	defer server.Close()

	src := NewSessionTokenSource(
		Credentials{Email: "parent@example.com", Password: "hunter2"},
		WithAuthBaseURL(server.URL),
	)

	if _, err := src.Token(); err != nil {
		t.Fatalf("Token: %v", err)
	}

	token, err := src.Token()
	if err != nil {
		t.Fatalf("Token (refresh): %v", err)
	}
	if token.AccessToken != "tok-2" {
		t.Errorf("AccessToken after refresh = %q", token.AccessToken)
	}
}

func TestSessionTokenSourceBadCredentials(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid credentials"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	src := NewSessionTokenSource(
		Credentials{Email: "parent@example.com", Password: "wrong"},
		WithAuthBaseURL(server.URL),
	)

	if _, err := src.Token(); err == nil {
		t.Fatal("Token succeeded with rejected credentials")
	}
}
