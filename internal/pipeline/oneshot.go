package pipeline

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"deckcheck/internal"
	"deckcheck/internal/util"
)

var ErrMissingCommander = errors.New("first line must be \"<label> <commander name>\"")

// DeckFile is a locally supplied deck list.
type DeckFile struct {
	Label     string
	Commander string
	Records   []internal.DeckRecord
	Warnings  []error
}

func ReadDeckFile(path string) (DeckFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return DeckFile{}, err
	}
	defer f.Close()

	deck, err := ParseDeckList(f)
	if err != nil {
		return DeckFile{}, fmt.Errorf("%s: %w", path, err)
	}
	return deck, nil
}

// ParseDeckList reads "<label> <commander name>" from the first line and
// "<quantity> <name>" pairs from the remaining non-blank lines. The content
// is taken as already clean: no quote stripping or edge trimming.
func ParseDeckList(r io.Reader) (DeckFile, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return DeckFile{}, err
		}
		return DeckFile{}, ErrMissingCommander
	}

	header := strings.TrimPrefix(scanner.Text(), "\ufeff")
	label, commander, ok := util.SplitQuantity(header)
	if !ok || strings.TrimSpace(commander) == "" {
		return DeckFile{}, ErrMissingCommander
	}

	deck := DeckFile{Label: label, Commander: commander, Records: []internal.DeckRecord{}}
	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		record, err := recordFromLine(lineNo, line)
		if err != nil {
			deck.Warnings = append(deck.Warnings, err)
		}
		deck.Records = append(deck.Records, record)
	}
	if err := scanner.Err(); err != nil {
		return DeckFile{}, err
	}
	return deck, nil
}
