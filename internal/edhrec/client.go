package edhrec

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"deckcheck/internal/config"
	"deckcheck/internal/util"
)

// TransportError covers every way retrieval can fail: request construction,
// network errors and non-2xx responses. StatusCode is zero when no response
// was received.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

type Client struct {
	cfg        config.Config
	httpClient *http.Client
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutMs) * time.Millisecond},
	}
}

// AverageDeckURL is the page for a commander slug; the slug is escaped as
// one path segment.
func (c *Client) AverageDeckURL(slug string) string {
	return c.cfg.BaseURL + "/average-decks/" + util.EscapeSlug(slug)
}

// FetchAverageDeck performs a single GET and returns the raw body. There is
// no retry: a failure ends the run for that commander.
func (c *Client) FetchAverageDeck(ctx context.Context, slug string) ([]byte, error) {
	u := c.AverageDeckURL(slug)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &TransportError{URL: u, Err: err}
	}
	req.Header.Set("Accept", "text/html")
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: u, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &TransportError{URL: u, StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: u, Err: err}
	}
	return body, nil
}
