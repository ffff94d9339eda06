package pipeline

import (
	"fmt"
	"strings"

	"deckcheck/internal"
	"deckcheck/internal/util"
)

// RecordShapeError marks a deck line that has no whitespace between a
// quantity and a name. The line is kept with an empty name and left out of
// reconciliation.
type RecordShapeError struct {
	Line int
	Text string
}

func (e *RecordShapeError) Error() string {
	return fmt.Sprintf("line %d %q: expected \"<quantity> <name>\"", e.Line, e.Text)
}

// Normalizer turns an extracted text block into deck records.
type Normalizer struct {
	Trim internal.TrimMode
}

// Normalize strips double quotes, applies the edge trim mode to the whole
// block, then splits every non-blank line on its first whitespace run.
func (n Normalizer) Normalize(block string) ([]internal.DeckRecord, []error) {
	text := strings.TrimSpace(block)
	text = strings.ReplaceAll(text, `"`, "")
	switch n.Trim {
	case internal.TrimBoth:
		text = util.StripEdges(text, true)
	case internal.TrimLeading:
		text = util.StripEdges(text, false)
	}
	return parseRecordLines(util.SplitLines(text))
}

func parseRecordLines(lines []string) ([]internal.DeckRecord, []error) {
	records := make([]internal.DeckRecord, 0, len(lines))
	var warnings []error
	for i, line := range lines {
		record, err := recordFromLine(i+1, line)
		if err != nil {
			warnings = append(warnings, err)
		}
		records = append(records, record)
	}
	return records, warnings
}

func recordFromLine(lineNo int, line string) (internal.DeckRecord, error) {
	qty, name, ok := util.SplitQuantity(line)
	record := internal.DeckRecord{Quantity: qty, Name: name}
	if !ok || name == "" {
		return record, &RecordShapeError{Line: lineNo, Text: strings.TrimSpace(line)}
	}
	return record, nil
}
