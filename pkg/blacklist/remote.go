package blacklist

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// DefaultFetchTimeout bounds the one-time feed fetch at process start.
const DefaultFetchTimeout = 10 * time.Second

// remoteDocument mirrors the feed payload: a deny-list of substrings.
type remoteDocument struct {
	Denied []string `json:"denied"`
}

// RemoteSource matches URLs against a deny-list of substrings fetched once
// at process start. The snapshot is immutable afterwards and shared
// read-only across concurrent lookups; there is no refresh. If the fetch
// failed, every lookup reports "no match" for the life of the process.
type RemoteSource struct {
	logger   *slog.Logger
	client   *http.Client
	fetchErr error
	feedURL  string
	denied   []string
}

// NewRemote creates a remote source for the given feed URL. Fetch must be
// called before the source is consulted.
func NewRemote(feedURL string, timeout time.Duration, logger *slog.Logger) *RemoteSource {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &RemoteSource{
		feedURL: feedURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Name identifies this source in analysis output.
func (s *RemoteSource) Name() string { return "remote" }

// Fetch retrieves and parses the deny-list feed. Called exactly once at
// startup; a failure is recorded, logged, and never retried.
func (s *RemoteSource) Fetch(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.feedURL, nil)
	if err != nil {
		return s.recordFailure(fmt.Errorf("build feed request: %w", err))
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return s.recordFailure(fmt.Errorf("fetch feed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return s.recordFailure(fmt.Errorf("fetch feed: unexpected status %d", resp.StatusCode))
	}

	var doc remoteDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return s.recordFailure(fmt.Errorf("decode feed: %w", err))
	}

	denied := make([]string, 0, len(doc.Denied))

	for _, sub := range doc.Denied {
		sub = strings.ToLower(strings.TrimSpace(sub))
		if sub != "" {
			denied = append(denied, sub)
		}
	}

	s.denied = denied
	s.logger.Info("remote blacklist loaded", "url", s.feedURL, "entries", len(denied))

	return nil
}

func (s *RemoteSource) recordFailure(err error) error {
	s.fetchErr = err
	s.logger.Warn("remote blacklist unavailable for this process", "url", s.feedURL, "error", err)

	return err
}

// Contains does a case-insensitive substring match against the snapshot,
// deliberately looser than the local source's exact match.
func (s *RemoteSource) Contains(_ context.Context, url string) bool {
	if s.fetchErr != nil || len(s.denied) == 0 {
		return false
	}

	lower := strings.ToLower(url)

	for _, sub := range s.denied {
		if strings.Contains(lower, sub) {
			return true
		}
	}

	return false
}
