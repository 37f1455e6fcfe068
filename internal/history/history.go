// Package history records generated documents in logs/document-log.csv.
package history

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/thaidoc/internal/docnum"
	"github.com/cleared-dev/thaidoc/internal/model"
)

// Entry is one row in the document log.
type Entry struct {
	Timestamp time.Time
	Type      model.DocumentType
	Number    string
	Customer  string
	Total     decimal.Decimal
	Path      string
}

// Header is the CSV header for document-log.csv.
const Header = "timestamp,type,number,customer,total,path"

const (
	numFields    = 6
	logDir       = "logs"
	logFile      = "logs/document-log.csv"
	colTimestamp = 0
	colType      = 1
	colNumber    = 2
	colCustomer  = 3
	colTotal     = 4
	colPath      = 5
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colType] = string(e.Type)
	row[colNumber] = e.Number
	row[colCustomer] = e.Customer
	row[colTotal] = e.Total.StringFixed(2)
	row[colPath] = e.Path
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	total, err := decimal.NewFromString(record[colTotal])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing total %q: %w", record[colTotal], err)
	}

	return Entry{
		Timestamp: ts,
		Type:      model.DocumentType(record[colType]),
		Number:    record[colNumber],
		Customer:  record[colCustomer],
		Total:     total,
		Path:      record[colPath],
	}, nil
}

// Append adds entries to <root>/logs/document-log.csv. The header is written
// when the file is new or empty.
func Append(root string, entries []Entry) (err error) {
	if err := os.MkdirAll(filepath.Join(root, logDir), 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(root, logFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening document log: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing document log: %w", cerr)
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat document log: %w", err)
	}
	return writeEntries(f, info.Size() == 0, entries)
}

func writeEntries(w io.Writer, header bool, entries []Entry) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing document log: %w", err)
	}
	return nil
}

// Read returns all entries from <root>/logs/document-log.csv.
// Returns an empty slice if the file does not exist.
func Read(root string) ([]Entry, error) {
	path := filepath.Join(root, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening document log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading document log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// NextNumber returns the next document number for docType in the given
// Buddhist-era year. Numbers that do not parse are ignored.
func NextNumber(entries []Entry, docType model.DocumentType, yearBE int) string {
	prefix := docnum.Prefix(docType)

	maxSeq := 0
	for _, e := range entries {
		p, year, seq, err := docnum.Parse(e.Number)
		if err != nil || p != prefix || year != yearBE {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return docnum.Format(prefix, yearBE, maxSeq+1)
}
