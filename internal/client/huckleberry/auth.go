package huckleberry

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	go_json "github.com/goccy/go-json"
	"golang.org/x/oauth2"
)

// expiryLeeway refreshes the session slightly before the backend would
// reject it.
const expiryLeeway = 30 * time.Second

var ErrAuthFailed = errors.New("huckleberry: authentication failed")

type Credentials struct {
	Email    string
	Password string
}

var _ oauth2.TokenSource = (*SessionTokenSource)(nil)

// SessionTokenSource exchanges email/password credentials for a session
// token and keeps it fresh via the refresh endpoint. It is safe for use
// from multiple goroutines.
type SessionTokenSource struct {
	baseURL    string
	httpClient *http.Client
	creds      Credentials

	mu    sync.Mutex
	token *oauth2.Token
}

func NewSessionTokenSource(creds Credentials, opts ...SessionOption) *SessionTokenSource {
	s := &SessionTokenSource{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		creds:      creds,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type SessionOption func(*SessionTokenSource)

func WithAuthBaseURL(baseURL string) SessionOption {
	return func(s *SessionTokenSource) { s.baseURL = baseURL }
}

func WithAuthHTTPClient(client *http.Client) SessionOption {
	return func(s *SessionTokenSource) { s.httpClient = client }
}

func (s *SessionTokenSource) Token() (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != nil && s.token.Valid() {
		return s.token, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if s.token != nil && s.token.RefreshToken != "" {
		token, err := s.refresh(ctx, s.token.RefreshToken)
		if err == nil {
			s.token = token
			return token, nil
		}
		// fall through to a full sign-in
	}

	token, err := s.signIn(ctx)
	if err != nil {
		return nil, err
	}

	s.token = token
	return token, nil
}

type tokenResponse struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

func (s *SessionTokenSource) signIn(ctx context.Context) (*oauth2.Token, error) {
	body := map[string]string{
		"email":    s.creds.Email,
		"password": s.creds.Password,
	}

	resp, err := s.post(ctx, "/v1/auth/login", body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}
	return resp, nil
}

func (s *SessionTokenSource) refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	body := map[string]string{
		"refreshToken": refreshToken,
	}
	return s.post(ctx, "/v1/auth/refresh", body)
}

func (s *SessionTokenSource) post(ctx context.Context, path string, body map[string]string) (*oauth2.Token, error) {
	data, err := go_json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, parseAPIError(resp)
	}

	var tr tokenResponse
	if err := go_json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if tr.IDToken == "" {
		return nil, fmt.Errorf("%w: empty token in response", ErrAuthFailed)
	}

	return &oauth2.Token{
		AccessToken:  tr.IDToken,
		TokenType:    "Bearer",
		RefreshToken: tr.RefreshToken,
		Expiry:       time.Now().Add(time.Duration(tr.ExpiresIn)*time.Second - expiryLeeway),
	}, nil
}
