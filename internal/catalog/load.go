package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// MinCollectionColumns is the fixed row shape of a collection export. Rows
// with fewer fields are not card rows and are skipped.
const MinCollectionColumns = 7

// MalformedCollectionError means the collection could not be used at all:
// missing, unreadable or without even a header row.
type MalformedCollectionError struct {
	Path string
	Err  error
}

func (e *MalformedCollectionError) Error() string {
	return fmt.Sprintf("collection %s: %v", e.Path, e.Err)
}

func (e *MalformedCollectionError) Unwrap() error { return e.Err }

var ErrEmptyCollection = errors.New("no header row")

// LoadCollection builds an Index from a collection file. Files ending in
// .xlsx are read from the first sheet of the workbook; anything else is
// parsed as comma separated text. The file is only ever read.
func LoadCollection(path string) (*Index, error) {
	var (
		rows [][]string
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		rows, err = readXLSXRows(path)
	} else {
		rows, err = readCSVRows(path)
	}
	if err != nil {
		return nil, &MalformedCollectionError{Path: path, Err: err}
	}
	return IndexFromRows(rows, path)
}

// IndexFromRows discards the header row and indexes column 0 of every row
// that has at least MinCollectionColumns fields.
func IndexFromRows(rows [][]string, path string) (*Index, error) {
	if len(rows) == 0 {
		return nil, &MalformedCollectionError{Path: path, Err: ErrEmptyCollection}
	}
	idx := BuildIndex(nil)
	for _, row := range rows[1:] {
		if len(row) < MinCollectionColumns {
			continue
		}
		idx.Add(row[0])
	}
	return idx, nil
}

func readCSVRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseCSV(f)
}

func parseCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, record)
	}
	return rows, nil
}

func readXLSXRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	return padRows(rows), nil
}

// padRows restores the trailing blank cells GetRows leaves out, so a row is
// as wide as the header just like the same sheet saved as CSV.
func padRows(rows [][]string) [][]string {
	if len(rows) == 0 {
		return rows
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) < width {
			padded := make([]string, width)
			copy(padded, row)
			rows[i] = padded
		}
	}
	return rows
}
