package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"deckcheck/internal/catalog"
	"deckcheck/internal/edhrec"
	"deckcheck/internal/pipeline"
)

// renderOutcome formats a run for the terminal: a status line, any
// warnings, then a table of list sizes and files.
func renderOutcome(out pipeline.Outcome, colorize bool) string {
	var b strings.Builder

	paint := func(s string, c text.Color) string {
		if !colorize {
			return s
		}
		return c.Sprint(s)
	}

	name := out.Commander
	if name == "" {
		name = out.Slug
	}

	switch {
	case out.Err != nil && out.Failed():
		fmt.Fprintf(&b, "%s %s: %s\n", paint("[ERROR]", text.FgRed), name, describeError(out.Err))
		return b.String()
	case out.Err != nil:
		fmt.Fprintf(&b, "%s %s: %s\n", paint("[MISSING]", text.FgYellow), name, describeError(out.Err))
		return b.String()
	default:
		fmt.Fprintf(&b, "%s %s: deck saved to %s\n", paint("[OK]", text.FgGreen), name, out.DeckPath)
	}

	for _, w := range out.Warnings {
		fmt.Fprintf(&b, "%s %s\n", paint("[WARN]", text.FgYellow), describeError(w))
	}

	rows := []summaryRow{{"Deck", len(out.Records), out.DeckPath}}
	if out.Reconciled {
		rows = append(rows,
			summaryRow{"Owned", len(out.Result.Owned), out.OwnedPath},
			summaryRow{"Not owned", len(out.Result.NotOwned), out.NotOwnedPath},
			summaryRow{"Skipped", len(out.Result.Skipped), ""},
		)
	}
	b.WriteString(renderSummary(rows))
	b.WriteString("\n")
	return b.String()
}

func describeError(err error) string {
	var transport *edhrec.TransportError
	var malformed *catalog.MalformedCollectionError
	var shape *pipeline.RecordShapeError

	switch {
	case errors.As(err, &transport):
		if transport.StatusCode != 0 {
			return fmt.Sprintf("error fetching data: HTTP %d from %s", transport.StatusCode, transport.URL)
		}
		return fmt.Sprintf("error fetching data: %v", transport.Err)
	case errors.Is(err, pipeline.ErrNoDeckLines):
		return "deck list has no card lines"
	case errors.Is(err, pipeline.ErrContentNotFound):
		return "content not found on the page"
	case errors.Is(err, os.ErrNotExist):
		return fmt.Sprintf("file not found: %v", err)
	case errors.As(err, &malformed):
		return fmt.Sprintf("collection %s could not be used, comparison skipped", malformed.Path)
	case errors.As(err, &shape):
		return fmt.Sprintf("line %d %q has no card name", shape.Line, shape.Text)
	default:
		return err.Error()
	}
}
