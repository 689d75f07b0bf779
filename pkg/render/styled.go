package render

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/arthur-debert/hilfsbuch/pkg/styles"
	"github.com/arthur-debert/hilfsbuch/pkg/topics"
	"github.com/charmbracelet/lipgloss"
)

const (
	codeLanguage  = "cpp"
	codeFormatter = "terminal256"
)

// StyledRenderer renders topics with lipgloss styles and chroma highlighting
type StyledRenderer struct {
	// CodeStyle is the chroma style name used for listings
	CodeStyle string
}

// NewStyledRenderer creates a styled renderer for the given theme
func NewStyledRenderer(theme string) *StyledRenderer {
	styles.ApplyTheme(theme)
	return &StyledRenderer{CodeStyle: codeStyleFor(theme)}
}

func codeStyleFor(theme string) string {
	switch theme {
	case "light":
		return "github"
	case "dark":
		return "monokai"
	}
	if lipgloss.HasDarkBackground() {
		return "monokai"
	}
	return "github"
}

// Render writes the header and body with semantic styles
func (r *StyledRenderer) Render(t *topics.Topic) string {
	var sb strings.Builder

	sb.WriteString(styles.GetStyle("Header").Render("=== " + t.Title + " ==="))
	sb.WriteString("\n")

	for _, b := range blocks(t) {
		switch b.kind {
		case lineBlank:
			sb.WriteString("\n")
		case lineHeading:
			sb.WriteString(styles.GetStyle("SubHeader").Render(headingText(b.lines[0])))
			sb.WriteString("\n")
		case lineBullet:
			sb.WriteString(styles.GetStyle("Bullet").Render("->"))
			sb.WriteString(" ")
			sb.WriteString(styles.GetStyle("Prose").Render(bulletText(b.lines[0])))
			sb.WriteString("\n")
		case lineCode:
			sb.WriteString(r.highlight(strings.Join(b.lines, "\n") + "\n"))
		}
	}

	return sb.String()
}

// highlight colours a C++ listing, falling back to the Code style when
// chroma cannot handle it
func (r *StyledRenderer) highlight(code string) string {
	var sb strings.Builder
	if err := quick.Highlight(&sb, code, codeLanguage, codeFormatter, r.CodeStyle); err != nil {
		return styles.GetStyle("Code").Render(strings.TrimSuffix(code, "\n")) + "\n"
	}
	out := sb.String()
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out
}
