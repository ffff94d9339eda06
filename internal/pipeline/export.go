package pipeline

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"deckcheck/internal"
)

var recordsHeader = []string{"Quantity", "Name"}

const (
	OwnedFileName    = "owned_cards.csv"
	NotOwnedFileName = "not_owned_cards.csv"
)

// WriteRecordsCSV writes a Quantity,Name file with CRLF row endings. The
// file is fully written and closed before returning.
func WriteRecordsCSV(records []internal.DeckRecord, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	w.UseCRLF = true
	_ = w.Write(recordsHeader)
	for _, r := range records {
		_ = w.Write([]string{r.Quantity, r.Name})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
