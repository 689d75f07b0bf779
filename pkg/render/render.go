// Package render turns topics into console text.
//
// PlainRenderer reproduces the reference output byte for byte and is what
// golden tests and pipes see. StyledRenderer colours headings and bullets
// with the semantic styles from pkg/styles and syntax highlights embedded
// C++ listings. MarkdownRenderer converts a topic to markdown and renders
// it with glamour.
package render

import (
	"strings"

	"github.com/arthur-debert/hilfsbuch/pkg/topics"
)

// Options configures the non-plain renderers
type Options struct {
	// Theme is "auto", "dark" or "light"
	Theme string
	// Width wraps markdown output; 0 keeps glamour's default
	Width int
}

// New returns the renderer for f. FormatAuto must be resolved by the
// caller (see Resolve); it falls back to plain here.
func New(f Format, opts Options) topics.Renderer {
	switch f {
	case FormatStyled:
		return NewStyledRenderer(opts.Theme)
	case FormatMarkdown:
		return NewMarkdownRenderer(opts.Theme, opts.Width)
	default:
		return &PlainRenderer{}
	}
}

// PlainRenderer returns the reference text unchanged
type PlainRenderer struct{}

// Render returns the topic's reference text
func (r *PlainRenderer) Render(t *topics.Topic) string {
	return t.Text()
}

type lineKind int

const (
	lineBlank lineKind = iota
	lineBullet
	lineHeading
	lineCode
)

// block is a run of consecutive lines of the same kind
type block struct {
	kind  lineKind
	lines []string
}

func classify(line string) lineKind {
	switch {
	case strings.TrimSpace(line) == "":
		return lineBlank
	case strings.HasPrefix(line, "->"):
		return lineBullet
	case strings.HasPrefix(line, "=== ") && strings.HasSuffix(line, " ==="):
		return lineHeading
	default:
		return lineCode
	}
}

// bulletText strips the arrow marker from a bullet line
func bulletText(line string) string {
	return strings.TrimSpace(strings.TrimPrefix(line, "->"))
}

// headingText strips the === markers from an in-body heading
func headingText(line string) string {
	return strings.TrimSuffix(strings.TrimPrefix(line, "=== "), " ===")
}

// blocks groups a topic's body lines. Code lines form multi-line blocks so
// highlighting sees whole listings; every other kind is one line per block.
func blocks(t *topics.Topic) []block {
	var out []block
	for _, line := range t.Lines() {
		kind := classify(line)
		if kind == lineCode && len(out) > 0 && out[len(out)-1].kind == lineCode {
			out[len(out)-1].lines = append(out[len(out)-1].lines, line)
			continue
		}
		out = append(out, block{kind: kind, lines: []string{line}})
	}
	return out
}
