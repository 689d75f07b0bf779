package render

import (
	"strings"

	"github.com/arthur-debert/hilfsbuch/pkg/topics"
	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer uses the glamour library for rich markdown rendering
type MarkdownRenderer struct {
	Style string // "dark", "light", "notty", "auto", or path to custom style
	Width int    // word wrap width (0 = glamour default)
}

// NewMarkdownRenderer creates a markdown renderer for the given theme
func NewMarkdownRenderer(theme string, width int) *MarkdownRenderer {
	style := theme
	if style == "" {
		style = "auto"
	}
	return &MarkdownRenderer{Style: style, Width: width}
}

// Render converts the topic to markdown and renders it for the terminal.
// On glamour errors the raw markdown is returned.
func (r *MarkdownRenderer) Render(t *topics.Topic) string {
	md := Markdown(t)

	var options []glamour.TermRendererOption
	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return rendered
}

// Markdown converts a topic to markdown: the title becomes a level two
// heading, in-body headings level three, bullets list items and runs of
// code lines fenced cpp blocks.
func Markdown(t *topics.Topic) string {
	var sb strings.Builder
	sb.WriteString("## ")
	sb.WriteString(escapeInline(t.Title))
	sb.WriteString("\n\n")

	inList := false
	for _, b := range blocks(t) {
		if b.kind != lineBullet && inList {
			sb.WriteString("\n")
			inList = false
		}
		switch b.kind {
		case lineHeading:
			sb.WriteString("### ")
			sb.WriteString(escapeInline(headingText(b.lines[0])))
			sb.WriteString("\n\n")
		case lineBullet:
			sb.WriteString("- ")
			sb.WriteString(escapeInline(bulletText(b.lines[0])))
			sb.WriteString("\n")
			inList = true
		case lineCode:
			sb.WriteString("```cpp\n")
			for _, line := range dedent(b.lines) {
				sb.WriteString(line)
				sb.WriteString("\n")
			}
			sb.WriteString("```\n\n")
		}
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

var inlineEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"<", `\<`,
	"[", `\[`,
	"]", `\]`,
)

func escapeInline(s string) string {
	return inlineEscaper.Replace(s)
}

// dedent removes the indentation shared by all non-blank lines
func dedent(lines []string) []string {
	common := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " "))
		if common < 0 || indent < common {
			common = indent
		}
	}
	if common <= 0 {
		return lines
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		if len(line) >= common {
			out[i] = line[common:]
		} else {
			out[i] = strings.TrimLeft(line, " ")
		}
	}
	return out
}
