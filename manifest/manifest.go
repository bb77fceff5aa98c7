// Package manifest parses batch upload manifests.
//
// A manifest is plain text, one entry per line, four tab separated fields in fixed order:
//
//	file_path<TAB>data_name<TAB>file_type<TAB>description
//
// There is no header, quoting or escaping.
package manifest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/genotet/uploadbatch/types"
)

const (
	Delimiter   = "\t"
	FieldCount  = 4
	maxLineSize = 1024 * 1024
)

// ManifestError reports a line that does not split into exactly FieldCount fields.
type ManifestError struct {
	Line   int
	Fields int
	Text   string
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("manifest line %d: expected %d tab separated fields, got %d", e.Line, FieldCount, e.Fields)
}

// ParseLine splits one manifest line. The line terminator is dropped, nothing else is trimmed.
func ParseLine(line string, lineNo int) (types.ManifestEntry, error) {
	line = strings.TrimRight(line, "\r\n")
	parts := strings.Split(line, Delimiter)
	if len(parts) != FieldCount {
		return types.ManifestEntry{}, &ManifestError{Line: lineNo, Fields: len(parts), Text: line}
	}
	return types.ManifestEntry{
		FilePath:    parts[0],
		DataName:    parts[1],
		FileType:    parts[2],
		Description: parts[3],
		Line:        lineNo,
	}, nil
}

// Parse reads every entry from r in order. Empty lines are skipped; any other line must carry
// exactly FieldCount fields, the first malformed line aborts.
func Parse(r io.Reader) ([]types.ManifestEntry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	var entries []types.ManifestEntry
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimRight(line, "\r") == "" {
			continue
		}
		entry, err := ParseLine(line, lineNo)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return entries, nil
}

// ParseFile opens path and parses it.
func ParseFile(path string) ([]types.ManifestEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return nil, err
	}
	return entries, nil
}
