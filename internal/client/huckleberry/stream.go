package huckleberry

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	go_json "github.com/goccy/go-json"
	"golang.org/x/oauth2"

	"github.com/mbartlett/thuck/internal/version"
	"github.com/mbartlett/thuck/internal/xslog"
)

type event struct {
	Type string
	Data []byte
}

// Stream receives push updates for a child's feeding prefs over SSE.
type Stream struct {
	baseURL     string
	httpClient  *http.Client
	tokenSource oauth2.TokenSource
	logger      *slog.Logger
}

func NewStream(baseURL string, tokenSource oauth2.TokenSource, logger *slog.Logger) *Stream {
	return &Stream{
		baseURL:     baseURL,
		httpClient:  &http.Client{Timeout: 0}, // no timeout for SSE
		tokenSource: tokenSource,
		logger:      logger,
	}
}

type UpdateHandler func(prefs Prefs)

// Listen opens a single streaming connection and calls the handler for
// each pushed prefs document. It returns when the context is cancelled
// or the connection drops; a dropped connection is not re-established.
func (s *Stream) Listen(ctx context.Context, childUID string, handler UpdateHandler) error {
	token, err := s.tokenSource.Token()
	if err != nil {
		return fmt.Errorf("getting token: %w", err)
	}

	url := fmt.Sprintf("%s/v1/children/%s/prefs/stream", s.baseURL, childUID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set(version.Header, version.Get())

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("connecting: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return parseAPIError(resp)
	}

	s.logger.InfoContext(ctx, "feed stream connected", xslog.ChildUID(childUID))

	scanner := bufio.NewScanner(resp.Body)
	var current event

	for scanner.Scan() {
		line := scanner.Text()

		if line == "" {
			// empty line signals end of event
			if current.Type != "" && len(current.Data) > 0 {
				s.handleEvent(ctx, current, handler)
			}
			current = event{}
			continue
		}

		if eventType, found := strings.CutPrefix(line, "event:"); found {
			current.Type = strings.TrimSpace(eventType)
		} else if data, found := strings.CutPrefix(line, "data:"); found {
			current.Data = []byte(strings.TrimSpace(data))
		}
	}

	if err := scanner.Err(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("reading stream: %w", err)
	}

	return nil
}

func (s *Stream) handleEvent(ctx context.Context, ev event, handler UpdateHandler) {
	switch ev.Type {
	case "put":
		var update Update
		if err := go_json.Unmarshal(ev.Data, &update); err != nil {
			// malformed payloads are dropped quietly, same as updates
			// with no lastBottle
			s.logger.DebugContext(ctx, "failed to parse update",
				xslog.Error(err),
				xslog.Data(string(ev.Data)),
			)
			return
		}
		handler(update.Prefs)

	case "keep-alive":
		s.logger.DebugContext(ctx, "received keep-alive")

	default:
		s.logger.DebugContext(ctx, "received unknown event type", xslog.Type(ev.Type))
	}
}
