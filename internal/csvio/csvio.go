// Package csvio is the persistence boundary: it loads a document from a
// delimited text file at startup and rewrites the file in full on quit.
// There are no partial or incremental writes mid-session.
package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/marcus/csved/internal/document"
)

// File reads and writes one delimited file with a fixed delimiter.
type File struct {
	path  string
	comma rune
}

// NewFile builds a persistence adapter for path. When comma is zero the
// delimiter is inferred from the extension: tab for .tsv, comma otherwise.
func NewFile(path string, comma rune) *File {
	if comma == 0 {
		comma = DetectDelimiter(path)
	}
	return &File{path: path, comma: comma}
}

// Path returns the file path being edited.
func (f *File) Path() string { return f.path }

// DetectDelimiter picks a delimiter from the file extension.
func DetectDelimiter(path string) rune {
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		return '\t'
	}
	return ','
}

// Load reads the file into a document. The first record is the header
// line; every data row is normalized to the header's column count. Any
// read or parse failure is fatal to the caller.
func (f *File) Load() (*document.Document, error) {
	fh, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", f.path, err)
	}
	defer fh.Close()

	r := csv.NewReader(fh)
	r.Comma = f.comma
	r.FieldsPerRecord = -1 // ragged rows are normalized below

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", f.path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parsing %s: no header line", f.path)
	}
	return document.New(records[0], records[1:]), nil
}

// Save rewrites the file in full: header row first, then every data row,
// blank cells serialized as empty fields. The original path is
// overwritten.
func (f *File) Save(doc *document.Document) error {
	fh, err := os.Create(f.path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", f.path, err)
	}

	w := csv.NewWriter(fh)
	w.Comma = f.comma
	if err := w.Write(doc.Headers()); err != nil {
		fh.Close()
		return fmt.Errorf("writing %s: %w", f.path, err)
	}
	for _, row := range doc.Rows() {
		if err := w.Write(row); err != nil {
			fh.Close()
			return fmt.Errorf("writing %s: %w", f.path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		fh.Close()
		return fmt.Errorf("writing %s: %w", f.path, err)
	}
	if err := fh.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", f.path, err)
	}
	return nil
}
