// Package tabular converts raw CSV or spreadsheet bytes into ingest rows.
// It owns header detection and empty-line skipping; all field semantics live
// in the ingest package.
package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/quizbank/quizbank-backend/internal/ingest"
)

var ErrEmptySource = errors.New("source contains no data rows")

// Table is a parsed source: the trimmed header list and one Row per
// non-empty data line.
type Table struct {
	Headers []string
	Rows    []ingest.Row
}

var zipMagic = []byte{0x50, 0x4b, 0x03, 0x04}

// Parse sniffs the payload and dispatches to the spreadsheet or delimited
// text reader. Office Open XML workbooks are zip archives, so the zip magic
// decides regardless of the file name.
func Parse(sourceName string, data []byte) (*Table, error) {
	if bytes.HasPrefix(data, zipMagic) {
		return parseWorkbook(data)
	}
	return parseDelimited(data)
}

func parseWorkbook(data []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptySource
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return buildTable(rows)
}

func parseDelimited(data []byte) (*Table, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = sniffDelimiter(data)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	var records [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read delimited source: %w", err)
		}
		records = append(records, rec)
	}
	return buildTable(records)
}

// sniffDelimiter picks tab over comma when the first line is tab-separated,
// which covers text pasted straight out of a spreadsheet.
func sniffDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if bytes.ContainsRune(line, '\t') && !bytes.ContainsRune(line, ',') {
		return '\t'
	}
	return ','
}

func buildTable(records [][]string) (*Table, error) {
	var headers []string
	rows := make([]ingest.Row, 0, len(records))

	for _, rec := range records {
		if recordEmpty(rec) {
			continue
		}
		if headers == nil {
			headers = make([]string, 0, len(rec))
			for _, h := range rec {
				headers = append(headers, strings.TrimSpace(h))
			}
			continue
		}
		rows = append(rows, ingest.NewRow(headers, rec))
	}

	if headers == nil || len(rows) == 0 {
		return nil, ErrEmptySource
	}
	return &Table{Headers: headers, Rows: rows}, nil
}

func recordEmpty(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
