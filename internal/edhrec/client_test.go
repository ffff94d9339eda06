package edhrec

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deckcheck/internal/config"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func testClient(fn roundTripFunc) *Client {
	client := NewClient(config.Config{BaseURL: "https://example.test", HTTPTimeoutMs: 1000, UserAgent: "deckcheck-test"})
	client.httpClient = &http.Client{Transport: fn}
	return client
}

func TestFetchAverageDeck(t *testing.T) {
	client := testClient(func(r *http.Request) (*http.Response, error) {
		assert.Equal(t, "/average-decks/atraxa-praetors-voice", r.URL.EscapedPath())
		assert.Equal(t, "deckcheck-test", r.Header.Get("User-Agent"))
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("<html><code>1 Sol Ring</code></html>")),
			Header:     make(http.Header),
		}, nil
	})

	body, err := client.FetchAverageDeck(context.Background(), "atraxa-praetors-voice")
	require.NoError(t, err)
	assert.Contains(t, string(body), "Sol Ring")
}

func TestAverageDeckURLEscapesSlug(t *testing.T) {
	client := NewClient(config.Config{BaseURL: "https://edhrec.com", HTTPTimeoutMs: 1000})
	assert.Equal(t, "https://edhrec.com/average-decks/j%C3%B6rmungandr", client.AverageDeckURL("jörmungandr"))
}

func TestFetchAverageDeckStatusError(t *testing.T) {
	calls := 0
	client := testClient(func(r *http.Request) (*http.Response, error) {
		calls++
		return &http.Response{
			StatusCode: http.StatusNotFound,
			Status:     "404 Not Found",
			Body:       io.NopCloser(strings.NewReader("missing")),
			Header:     make(http.Header),
		}, nil
	})

	_, err := client.FetchAverageDeck(context.Background(), "nobody")
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.StatusNotFound, transportErr.StatusCode)
	assert.Equal(t, 1, calls)
}

func TestFetchAverageDeckNetworkError(t *testing.T) {
	boom := errors.New("connection refused")
	client := testClient(func(r *http.Request) (*http.Response, error) {
		return nil, boom
	})

	_, err := client.FetchAverageDeck(context.Background(), "nobody")
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Zero(t, transportErr.StatusCode)
	assert.ErrorIs(t, err, boom)
}
