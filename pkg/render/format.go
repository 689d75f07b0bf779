package render

import (
	"os"
	"strings"

	"github.com/arthur-debert/hilfsbuch/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto picks plain or styled based on terminal capabilities
	FormatAuto Format = iota
	// FormatPlain writes the reference text without any styling
	FormatPlain
	// FormatStyled colours the text and highlights code listings
	FormatStyled
	// FormatMarkdown renders the topic as markdown through glamour
	FormatMarkdown
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatPlain:
		return "plain"
	case FormatStyled:
		return "styled"
	case FormatMarkdown:
		return "markdown"
	default:
		return "unknown"
	}
}

// FormatNames lists the accepted format names, for flag help and completion
func FormatNames() []string {
	return []string{"plain", "styled", "markdown", "auto"}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return FormatAuto, nil
	case "plain", "text":
		return FormatPlain, nil
	case "styled", "term", "terminal":
		return FormatStyled, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s).
			WithDetail("format", s)
	}
}

// DetectFormat determines the appropriate output format based on environment and terminal capabilities
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatPlain
	}

	if output == nil || (!isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd())) {
		return FormatPlain
	}

	if termenv.ColorProfile() == termenv.Ascii {
		return FormatPlain
	}

	return FormatStyled
}

// Resolve replaces FormatAuto with the detected format for output
func Resolve(f Format, output *os.File) Format {
	if f == FormatAuto {
		return DetectFormat(output)
	}
	return f
}
