package tui

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/oauth2"

	"github.com/mbartlett/thuck/internal/client/huckleberry"
)

func testClient(baseURL string) *huckleberry.Client {
	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token"})
	return huckleberry.New(tokenSource, huckleberry.WithBaseURL(baseURL))
}

func TestConnectCmdNetworkError(t *testing.T) {
	t.Parallel()

	// a closed server makes every request fail at the dial
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	msg := connectCmd(context.Background(), testClient(server.URL))()

	failed, ok := msg.(ConnectFailedMsg)
	if !ok {
		t.Fatalf("connect error produced %T, want ConnectFailedMsg", msg)
	}
	if failed.Err == nil {
		t.Error("ConnectFailedMsg carried no error")
	}
}

func TestConnectCmdNoChildren(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"children":[]}`))
	}))
	defer server.Close()

	msg := connectCmd(context.Background(), testClient(server.URL))()

	failed, ok := msg.(StartupFailedMsg)
	if !ok {
		t.Fatalf("empty child list produced %T, want StartupFailedMsg", msg)
	}
	if !errors.Is(failed.Err, ErrNoChildren) {
		t.Errorf("StartupFailedMsg.Err = %v, want ErrNoChildren", failed.Err)
	}
}

func TestConnectFailedKeepsRunning(t *testing.T) {
	t.Parallel()

	m := New(Deps{})
	_, cmd := m.Update(ConnectFailedMsg{Err: errors.New("dial tcp: network is unreachable")})

	if cmd != nil {
		t.Fatal("ConnectFailedMsg produced a command; the dashboard must keep running")
	}
	if m.Err() != nil {
		t.Errorf("Err() = %v after a connectivity failure, want nil", m.Err())
	}
	if m.status != "connection failed: dial tcp: network is unreachable" {
		t.Errorf("status = %q", m.status)
	}
}

func TestStartupFailedQuits(t *testing.T) {
	t.Parallel()

	m := New(Deps{})
	_, cmd := m.Update(StartupFailedMsg{Err: ErrNoChildren})

	if cmd == nil {
		t.Fatal("StartupFailedMsg produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("StartupFailedMsg did not quit the program")
	}
	if !errors.Is(m.Err(), ErrNoChildren) {
		t.Errorf("Err() = %v, want ErrNoChildren", m.Err())
	}
}
