// Package datefmt provides the date collaborator used for date-aware
// comparisons.
//
// Formats may be written with moment-style tokens (DD/MM/YYYY HH:mm) or as
// Go reference layouts (02/01/2006 15:04). Both are accepted everywhere a
// format is expected.
package datefmt

import (
	"strings"
	"time"
)

// DefaultFormats are the formats tried, in order, when none are configured.
var DefaultFormats = []string{
	"DD/MM/YYYY",
	"DD-MM-YYYY",
	"DD.MM.YYYY",
	"DD/MM/YYYY HH:mm",
	"DD-MM-YYYY HH:mm",
	"DD.MM.YYYY HH:mm",
	"YYYY-MM-DDThh:mm:ss",
	"YYYY/MM/DD",
	"YYYY-MM-DD",
	"YYYY.MM.DD",
	"YYYY/MM/DD HH:mm",
	"YYYY-MM-DD HH:mm",
	"YYYY.MM.DD HH:mm",
}

// Parser parses and formats dates under a single format.
// Implementations must be safe for concurrent use.
type Parser interface {
	Parse(value, format string) (time.Time, bool)
	Format(t time.Time, format string) string
}

// Std is the time-package Parser.
type Std struct{}

// Parse implements Parser.
func (Std) Parse(value, format string) (time.Time, bool) {
	t, err := time.Parse(Layout(format), value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Format implements Parser.
func (Std) Format(t time.Time, format string) string {
	return t.Format(Layout(format))
}

var momentTokens = strings.NewReplacer(
	"YYYY", "2006",
	"MM", "01",
	"DD", "02",
	"HH", "15",
	"hh", "03",
	"mm", "04",
	"ss", "05",
)

// Layout translates moment-style tokens into a Go reference layout. Go
// layouts contain none of the tokens and pass through unchanged.
func Layout(format string) string {
	return momentTokens.Replace(format)
}

// Set binds a Parser to an ordered list of formats.
type Set struct {
	parser  Parser
	formats []string
}

// NewSet creates a Set. A nil parser yields a Set that never recognizes a
// date. A nil formats slice selects DefaultFormats.
func NewSet(p Parser, formats []string) *Set {
	if formats == nil {
		formats = DefaultFormats
	}
	return &Set{
		parser:  p,
		formats: append([]string(nil), formats...),
	}
}

// Formats returns a copy of the configured formats.
func (s *Set) Formats() []string {
	return append([]string(nil), s.formats...)
}

// ParseDate tries each format in order. A candidate is only accepted when
// formatting the parsed time under the same format reproduces the input,
// which rejects partial and lenient matches.
func (s *Set) ParseDate(value string) (time.Time, bool) {
	if s == nil || s.parser == nil || value == "" {
		return time.Time{}, false
	}
	for _, f := range s.formats {
		t, ok := s.parser.Parse(value, f)
		if ok && s.parser.Format(t, f) == value {
			return t, true
		}
	}
	return time.Time{}, false
}
