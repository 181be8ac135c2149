package csvio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/marcus/csved/internal/document"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadBasicCSV(t *testing.T) {
	path := writeFile(t, "people.csv", "Name,Age\nAlice,30\nBob,25\n")

	doc, err := NewFile(path, 0).Load()
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.Header(0); got != "Name" {
		t.Errorf("header 0 = %q, want %q", got, "Name")
	}
	if doc.RowCount() != 2 || doc.Cell(1, 1) != "25" {
		t.Errorf("rows = %v", doc.Rows())
	}
}

func TestLoadNormalizesRaggedRows(t *testing.T) {
	path := writeFile(t, "ragged.csv", "a,b,c\n1\n1,2,3,4\n")

	doc, err := NewFile(path, 0).Load()
	if err != nil {
		t.Fatal(err)
	}
	for i, row := range doc.Rows() {
		if len(row) != doc.ColCount() {
			t.Errorf("row %d width = %d, want %d", i, len(row), doc.ColCount())
		}
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := NewFile(filepath.Join(t.TempDir(), "absent.csv"), 0).Load()
	if err == nil {
		t.Fatal("Load on a missing file returned nil error")
	}
}

func TestLoadEmptyFileFails(t *testing.T) {
	path := writeFile(t, "empty.csv", "")
	if _, err := NewFile(path, 0).Load(); err == nil {
		t.Fatal("Load on an empty file returned nil error")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	f := NewFile(path, 0)

	doc := document.New(
		[]string{"Name", "Age", "Note"},
		[][]string{
			{"Alice", "30", ""},
			{"", "", ""},
			{"Bob", "25", "has, comma"},
		},
	)
	if err := f.Save(doc); err != nil {
		t.Fatal(err)
	}

	got, err := f.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(doc) {
		t.Errorf("round trip differs:\ngot  %v %v\nwant %v %v",
			got.Headers(), got.Rows(), doc.Headers(), doc.Rows())
	}
}

func TestSaveOverwritesExisting(t *testing.T) {
	path := writeFile(t, "old.csv", "x,y\n1,2\n3,4\n")
	f := NewFile(path, 0)

	doc := document.New([]string{"x"}, [][]string{{"9"}})
	if err := f.Save(doc); err != nil {
		t.Fatal(err)
	}

	got, err := f.Load()
	if err != nil {
		t.Fatal(err)
	}
	if got.RowCount() != 1 || got.ColCount() != 1 || got.Cell(0, 0) != "9" {
		t.Errorf("file not fully rewritten: %v %v", got.Headers(), got.Rows())
	}
}

func TestSaveFailureSurfaces(t *testing.T) {
	dir := t.TempDir()
	f := NewFile(filepath.Join(dir, "no", "such", "dir", "out.csv"), 0)
	doc := document.New([]string{"a"}, nil)
	if err := f.Save(doc); err == nil {
		t.Fatal("Save into a missing directory returned nil error")
	}
}

func TestDetectDelimiter(t *testing.T) {
	tests := []struct {
		path string
		want rune
	}{
		{"data.csv", ','},
		{"data.tsv", '\t'},
		{"data.TSV", '\t'},
		{"data.txt", ','},
		{"data", ','},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := DetectDelimiter(tt.path); got != tt.want {
				t.Errorf("DetectDelimiter(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestTSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.tsv")
	f := NewFile(path, 0)

	doc := document.New([]string{"a", "b"}, [][]string{{"1", "two words"}})
	if err := f.Save(doc); err != nil {
		t.Fatal(err)
	}
	got, err := f.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(doc) {
		t.Errorf("tsv round trip differs: %v %v", got.Headers(), got.Rows())
	}
}
