// Package render serializes step documents to concrete output
// formats. Each renderer is a pure function of the document; the
// walker that produced the document knows nothing about markup.
package render

import (
	"errors"
	"fmt"
)

// Format names a supported output format.
type Format string

const (
	FormatTerminal Format = "terminal"
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// ErrUnknownFormat reports an unrecognized format name.
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat resolves a format name from a flag or config value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTerminal, FormatHTML, FormatMarkdown, FormatJSON:
		return Format(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Formats lists the supported format names for help text.
func Formats() []string {
	return []string{
		string(FormatTerminal),
		string(FormatHTML),
		string(FormatMarkdown),
		string(FormatJSON),
	}
}
