package manifest

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Entry is one catalog line.
type Entry struct {
	ID   string `json:"identifier"`
	Name string `json:"name"`
}

// LineError describes a manifest line that was skipped.
type LineError struct {
	Line   int    `json:"line"`
	Text   string `json:"text"`
	Reason string `json:"reason"`
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// Manifest maps DLC identifiers (file names) to display names.
// It is immutable once parsed.
type Manifest struct {
	version string
	entries map[string]string
	skipped []LineError
}

// maxLineLength bounds one manifest line. Longer lines are skipped.
const maxLineLength = 1 << 20

// Parse reads a manifest: a header line followed by identifier,displayName
// lines. A UTF-8 BOM and CRLF line endings are accepted. Malformed and
// overlong lines are skipped and reported through Skipped; a repeated
// identifier is an error.
func Parse(r io.Reader) (*Manifest, error) {
	br := bufio.NewReader(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))

	m := &Manifest{entries: make(map[string]string)}
	firstSeen := make(map[string]int)

	lineNo := 0
	for {
		raw, tooLong, err := readLine(br)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read manifest: %w", err)
		}
		lineNo++
		line := strings.TrimRight(raw, "\r")

		if tooLong {
			m.skipped = append(m.skipped, LineError{Line: lineNo, Text: excerpt(line), Reason: "line too long"})
			continue
		}
		if lineNo == 1 {
			m.version = strings.TrimSpace(line)
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		id, name, ok := strings.Cut(line, ",")
		if !ok {
			m.skipped = append(m.skipped, LineError{Line: lineNo, Text: line, Reason: "missing comma separator"})
			continue
		}
		id = strings.TrimSpace(id)
		name = strings.TrimSpace(name)
		if id == "" || name == "" {
			m.skipped = append(m.skipped, LineError{Line: lineNo, Text: line, Reason: "empty identifier or display name"})
			continue
		}

		if prev, dup := firstSeen[id]; dup {
			return nil, fmt.Errorf("%w: %q on lines %d and %d", ErrDuplicateIdentifier, id, prev, lineNo)
		}
		firstSeen[id] = lineNo
		m.entries[id] = name
	}

	return m, nil
}

// readLine returns the next line without its terminator. Past maxLineLength
// the rest of the line is consumed and dropped and tooLong is set.
func readLine(br *bufio.Reader) (line string, tooLong bool, err error) {
	var buf []byte
	for {
		chunk, isPrefix, err := br.ReadLine()
		if err != nil {
			if err == io.EOF && (len(buf) > 0 || tooLong) {
				return string(buf), tooLong, nil
			}
			return "", false, err
		}

		if !tooLong {
			if room := maxLineLength - len(buf); len(chunk) > room {
				buf = append(buf, chunk[:room]...)
				tooLong = true
			} else {
				buf = append(buf, chunk...)
			}
		}

		if !isPrefix {
			return string(buf), tooLong, nil
		}
	}
}

func excerpt(s string) string {
	const n = 80
	if len(s) <= n {
		return s
	}
	return strings.ToValidUTF8(s[:n], "") + "..."
}

// ParseBytes parses an in-memory manifest.
func ParseBytes(data []byte) (*Manifest, error) {
	return Parse(bytes.NewReader(data))
}

// Version returns the header line.
func (m *Manifest) Version() string {
	return m.version
}

// Len returns the number of entries.
func (m *Manifest) Len() int {
	return len(m.entries)
}

// Lookup returns the display name for id.
func (m *Manifest) Lookup(id string) (string, bool) {
	name, ok := m.entries[id]
	return name, ok
}

// Catalog returns a copy of the identifier to display name mapping.
func (m *Manifest) Catalog() map[string]string {
	out := make(map[string]string, len(m.entries))
	for k, v := range m.entries {
		out[k] = v
	}
	return out
}

// Entries returns all entries sorted by identifier.
func (m *Manifest) Entries() []Entry {
	out := make([]Entry, 0, len(m.entries))
	for id, name := range m.entries {
		out = append(out, Entry{ID: id, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Skipped returns the malformed lines that were ignored.
func (m *Manifest) Skipped() []LineError {
	return append([]LineError(nil), m.skipped...)
}
