package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deckcheck/internal"
	"deckcheck/internal/catalog"
	"deckcheck/internal/edhrec"
	"deckcheck/internal/pipeline"
)

func TestRenderOutcomeReconciled(t *testing.T) {
	out := pipeline.Outcome{
		Commander:    "Kenrith",
		DeckPath:     "commanders/kenrith/kenrith.csv",
		Records:      []internal.DeckRecord{{Quantity: "1", Name: "Sol Ring"}, {Quantity: "2", Name: "Forest"}},
		Reconciled:   true,
		OwnedPath:    "commanders/kenrith/owned_cards.csv",
		NotOwnedPath: "commanders/kenrith/not_owned_cards.csv",
		Result: internal.ReconciliationResult{
			Owned:    []internal.DeckRecord{{Quantity: "1", Name: "Sol Ring"}},
			NotOwned: []internal.DeckRecord{{Quantity: "2", Name: "Forest"}},
		},
		Trail: []internal.RunState{internal.StateStart, internal.StateDone},
	}

	s := renderOutcome(out, false)
	assert.Contains(t, s, "[OK] Kenrith: deck saved to commanders/kenrith/kenrith.csv")
	assert.Contains(t, s, "Not owned")
	assert.Contains(t, s, "owned_cards.csv")
	assert.NotContains(t, s, "\x1b[")
}

func TestRenderOutcomeWithoutCollection(t *testing.T) {
	out := pipeline.Outcome{
		Commander: "Kenrith",
		DeckPath:  "k.csv",
		Warnings:  []error{&catalog.MalformedCollectionError{Path: "collection.csv", Err: catalog.ErrEmptyCollection}},
		Trail:     []internal.RunState{internal.StateStart, internal.StateDone},
	}

	s := renderOutcome(out, false)
	assert.Contains(t, s, "[WARN] collection collection.csv could not be used")
	assert.NotContains(t, s, "Skipped")
}

func TestRenderOutcomeMissingContent(t *testing.T) {
	out := pipeline.Outcome{
		Commander: "Nobody",
		Err:       pipeline.ErrContentNotFound,
		Trail:     []internal.RunState{internal.StateStart, internal.StateContentAbsent, internal.StateDone},
	}
	assert.Equal(t, "[MISSING] Nobody: content not found on the page\n", renderOutcome(out, false))
}

func TestDescribeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"status", fmt.Errorf("fetch: %w", &edhrec.TransportError{URL: "u", StatusCode: 503}), "error fetching data: HTTP 503 from u"},
		{"network", &edhrec.TransportError{URL: "u", Err: errors.New("dial tcp: refused")}, "error fetching data: dial tcp: refused"},
		{"no lines", pipeline.ErrNoDeckLines, "deck list has no card lines"},
		{"shape", &pipeline.RecordShapeError{Line: 3, Text: "Forest"}, `line 3 "Forest" has no card name`},
		{"other", errors.New("boom"), "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describeError(tt.err))
		})
	}
}

func TestRenderSummary(t *testing.T) {
	s := renderSummary([]summaryRow{
		{"Deck", 100, "d.csv"},
		{"Skipped", 2, ""},
	})
	lines := strings.Split(s, "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[1], "List")
	assert.Contains(t, lines[3], "Deck")
	assert.Contains(t, lines[3], "100")
	assert.Contains(t, lines[4], "Skipped")
}
