package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/genotet/uploadbatch/types"
)

func TestParseLine(t *testing.T) {
	entry, err := ParseLine("/a/b.txt\tfoo\tbed\tdesc", 1)
	if err != nil {
		t.Fatalf("ParseLine failed: %v", err)
	}
	want := types.ManifestEntry{FilePath: "/a/b.txt", DataName: "foo", FileType: "bed", Description: "desc", Line: 1}
	if entry != want {
		t.Errorf("Expected %+v, got %+v", want, entry)
	}
}

func TestParseLineStripsTerminator(t *testing.T) {
	entry, err := ParseLine("x.tsv\tnet\tnetwork\tthe first network\r\n", 3)
	if err != nil {
		t.Fatalf("ParseLine failed: %v", err)
	}
	if entry.Description != "the first network" {
		t.Errorf("Expected description without line terminator, got %q", entry.Description)
	}
	if entry.Line != 3 {
		t.Errorf("Expected line 3, got %d", entry.Line)
	}
}

func TestParseLineKeepsSpaces(t *testing.T) {
	entry, err := ParseLine(" a.txt \t name \tbed\t", 1)
	if err != nil {
		t.Fatalf("ParseLine failed: %v", err)
	}
	if entry.FilePath != " a.txt " || entry.DataName != " name " {
		t.Errorf("Fields must not be trimmed, got %+v", entry)
	}
	if entry.Description != "" {
		t.Errorf("Expected empty description, got %q", entry.Description)
	}
}

func TestParseLineWrongFieldCount(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		fields int
	}{
		{"too few", "a.txt\tname\tbed", 3},
		{"too many", "a.txt\tname\tbed\tdesc\textra", 5},
		{"spaces instead of tabs", "a.txt name bed desc", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLine(tt.line, 7)
			var merr *ManifestError
			if !errors.As(err, &merr) {
				t.Fatalf("Expected ManifestError, got %v", err)
			}
			if merr.Line != 7 || merr.Fields != tt.fields {
				t.Errorf("Expected line 7 with %d fields, got line %d with %d fields", tt.fields, merr.Line, merr.Fields)
			}
		})
	}
}

func TestParseKeepsOrderAndSkipsBlankLines(t *testing.T) {
	input := "one.txt\tone\tbed\tfirst\n\n\r\ntwo.txt\ttwo\tnetwork\tsecond\n"
	entries, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].FilePath != "one.txt" || entries[1].FilePath != "two.txt" {
		t.Errorf("Unexpected order: %+v", entries)
	}
	if entries[1].Line != 4 {
		t.Errorf("Expected second entry on line 4, got %d", entries[1].Line)
	}
}

func TestParseStopsAtFirstMalformedLine(t *testing.T) {
	input := "one.txt\tone\tbed\tfirst\nbroken line\nthree.txt\tthree\tbed\tthird\n"
	entries, err := Parse(strings.NewReader(input))
	if entries != nil {
		t.Errorf("Expected no entries on error, got %+v", entries)
	}
	var merr *ManifestError
	if !errors.As(err, &merr) {
		t.Fatalf("Expected ManifestError, got %v", err)
	}
	if merr.Line != 2 {
		t.Errorf("Expected error on line 2, got %d", merr.Line)
	}
}

func TestParseTabOnlyLines(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		fields int
	}{
		{"one tab", "\t\n", 2},
		{"two tabs", "\t\t\n", 3},
		{"spaces only", "   \n", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader("a.txt\ta\tbed\td\n" + tt.input))
			var merr *ManifestError
			if !errors.As(err, &merr) {
				t.Fatalf("Expected ManifestError, got %v", err)
			}
			if merr.Line != 2 || merr.Fields != tt.fields {
				t.Errorf("Expected line 2 with %d fields, got line %d with %d fields", tt.fields, merr.Line, merr.Fields)
			}
		})
	}
}

func TestParseThreeTabsIsAnEmptyEntry(t *testing.T) {
	entries, err := Parse(strings.NewReader("\t\t\t\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	want := types.ManifestEntry{Line: 1}
	if entries[0] != want {
		t.Errorf("Expected %+v, got %+v", want, entries[0])
	}
}

func TestParseEmpty(t *testing.T) {
	entries, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.tsv")
	if err := os.WriteFile(path, []byte("/data/b.bed\tpeaks\tbed\tchip peaks\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	entries, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if len(entries) != 1 || entries[0].DataName != "peaks" {
		t.Errorf("Unexpected entries: %+v", entries)
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.tsv"))
	if err == nil {
		t.Fatal("Expected error for missing manifest")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected wrapped ErrNotExist, got %v", err)
	}
}
