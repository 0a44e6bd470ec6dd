// package reader loads line-oriented input files.
package reader

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/desertthunder/emaildiff/internal/shared"
)

// ReadLines reads the file at path and returns its lines with terminators and surrounding whitespace removed.
//
// Fails with [shared.ErrFile] when the file cannot be opened or read and with [shared.ErrDecode] on invalid UTF-8.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", shared.ErrFile, path, err)
	}
	defer f.Close()

	lines, err := Lines(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}

// Lines splits r into trimmed lines. "\n", "\r\n" and "\r" all end a line; a final terminator does not start a new one.
func Lines(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrFile, err)
	}

	if len(data) == 0 {
		return []string{}, nil
	}

	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: line %d", shared.ErrDecode, invalidLine(data))
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")

	raw := strings.Split(text, "\n")
	lines := make([]string, len(raw))
	for i, line := range raw {
		lines[i] = strings.TrimSpace(line)
	}
	return lines, nil
}

// invalidLine returns the 1-based line number holding the first invalid UTF-8 sequence.
func invalidLine(data []byte) int {
	line := 1
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size <= 1 {
			return line
		}
		if r == '\n' {
			line++
		}
		data = data[size:]
	}
	return line
}
