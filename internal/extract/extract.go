// package extract pulls marker-tagged email addresses out of input lines.
package extract

import (
	"fmt"
	"regexp"

	"github.com/desertthunder/emaildiff/internal/emailaddr"
	"github.com/desertthunder/emaildiff/internal/shared"
)

// DefaultMarker is the token that tags an address in the input files.
const DefaultMarker = "1003EML"

// candidatePattern is the permissive shape an address must have to be considered at all.
const candidatePattern = `([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`

// Options configures an [Extractor].
type Options struct {
	Marker     string // Literal token preceding each address; defaults to [DefaultMarker]
	AllowSpace bool   // Permit spaces or tabs between the marker and the address
	FoldCase   bool   // Lowercase whole addresses after validation
}

// Extractor finds, validates and canonicalizes the first tagged address on each line.
type Extractor struct {
	pattern  *regexp.Regexp
	foldCase bool
}

// New compiles the extraction pattern for opts.
func New(opts Options) (*Extractor, error) {
	if opts.Marker == "" {
		opts.Marker = DefaultMarker
	}

	gap := ""
	if opts.AllowSpace {
		gap = `[ \t]*`
	}

	pattern, err := regexp.Compile(regexp.QuoteMeta(opts.Marker) + gap + candidatePattern)
	if err != nil {
		return nil, fmt.Errorf("%w: marker %q: %v", shared.ErrInvalidArgument, opts.Marker, err)
	}

	return &Extractor{pattern: pattern, foldCase: opts.FoldCase}, nil
}

// Default returns an extractor for [DefaultMarker] with strict adjacency.
func Default() *Extractor {
	e, err := New(Options{})
	if err != nil {
		panic(err)
	}
	return e
}

// Extract returns the validated emails found in lines, in line order with duplicates kept.
//
// Lines without a match, or whose match fails validation, contribute nothing.
func (e *Extractor) Extract(lines []string) []string {
	emails := make([]string, 0, len(lines))
	for _, line := range lines {
		if email, ok := e.Line(line); ok {
			emails = append(emails, email)
		}
	}
	return emails
}

// Line extracts the canonical email from a single line. Only the first match is considered.
func (e *Extractor) Line(line string) (string, bool) {
	m := e.pattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}

	email, err := emailaddr.Validate(m[1])
	if err != nil {
		return "", false
	}

	if e.foldCase {
		email = emailaddr.Fold(email)
	}
	return email, true
}

// Pattern returns the compiled expression's source.
func (e *Extractor) Pattern() string {
	return e.pattern.String()
}
