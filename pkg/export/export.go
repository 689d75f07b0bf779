// Package export writes the topic catalog as structured data: JSON, YAML,
// XML or a single markdown document. The shape follows the catalog:
// categories holding topics holding their body lines.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/arthur-debert/hilfsbuch/pkg/errors"
	"github.com/arthur-debert/hilfsbuch/pkg/render"
	"github.com/arthur-debert/hilfsbuch/pkg/topics"
	"github.com/beevik/etree"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// BookTitle is the title written at the top of every export
const BookTitle = "C++ Hilfsbuch"

// Format is an export format
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatXML      Format = "xml"
	FormatMarkdown Format = "md"
)

// FormatNames lists the accepted format names
func FormatNames() []string {
	return []string{string(FormatJSON), string(FormatYAML), string(FormatXML), string(FormatMarkdown)}
}

// ParseFormat parses a format name; "yml" and "markdown" are aliases
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "xml":
		return FormatXML, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown export format: %s", s).
			WithDetail("format", s)
	}
}

// FormatFromPath guesses the format from a file extension
func FormatFromPath(path string) (Format, bool) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", false
	}
	f, err := ParseFormat(ext)
	return f, err == nil
}

// Book is the exported document
type Book struct {
	Title      string     `json:"title" yaml:"title"`
	Categories []Category `json:"categories" yaml:"categories"`
}

// Category is one category with its selected topics
type Category struct {
	Name   string  `json:"name" yaml:"name"`
	Topics []Topic `json:"topics" yaml:"topics"`
}

// Topic is the exported form of topics.Topic
type Topic struct {
	Name  string   `json:"name" yaml:"name"`
	Title string   `json:"title" yaml:"title"`
	Gated bool     `json:"gated" yaml:"gated"`
	Lines []string `json:"lines" yaml:"lines"`

	source *topics.Topic
}

// Build collects the given topics, or the whole catalog when ids is empty.
// Categories without selected topics are left out.
func Build(ids ...topics.ID) (*Book, error) {
	selected := make(map[topics.ID]bool, len(ids))
	for _, id := range ids {
		if !id.Valid() {
			return nil, errors.Newf(errors.ErrUnknownTopic, "unknown topic %s", id)
		}
		selected[id] = true
	}

	book := &Book{Title: BookTitle}
	for _, cat := range topics.Categories() {
		out := Category{Name: cat.Name}
		for _, t := range cat.Topics {
			if len(ids) > 0 && !selected[t.ID] {
				continue
			}
			lines := t.Lines()
			if lines == nil {
				lines = []string{}
			}
			out.Topics = append(out.Topics, Topic{
				Name:   t.Name,
				Title:  t.Title,
				Gated:  t.Gated,
				Lines:  lines,
				source: t,
			})
		}
		if len(out.Topics) > 0 {
			book.Categories = append(book.Categories, out)
		}
	}
	return book, nil
}

// Write exports the selected topics to w
func Write(w io.Writer, f Format, ids ...topics.ID) error {
	book, err := Build(ids...)
	if err != nil {
		return err
	}

	switch f {
	case FormatJSON:
		err = writeJSON(w, book)
	case FormatYAML:
		err = writeYAML(w, book)
	case FormatXML:
		err = writeXML(w, book)
	case FormatMarkdown:
		err = writeMarkdown(w, book)
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown export format: %s", f)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrOutput, "failed to write %s export", f)
	}
	return nil
}

// WriteFile exports to path on fs, creating parent directories
func WriteFile(fs afero.Fs, path string, f Format, ids ...topics.ID) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to create directory for %s", path)
	}

	file, err := fs.Create(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to create %s", path)
	}

	if err := Write(file, f, ids...); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to close %s", path)
	}
	return nil
}

func writeJSON(w io.Writer, book *Book) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(book)
}

func writeYAML(w io.Writer, book *Book) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(book); err != nil {
		return err
	}
	return enc.Close()
}

func writeXML(w io.Writer, book *Book) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("hilfsbuch")
	root.CreateAttr("title", book.Title)

	for _, cat := range book.Categories {
		catEl := root.CreateElement("category")
		catEl.CreateAttr("name", cat.Name)

		for _, t := range cat.Topics {
			topicEl := catEl.CreateElement("topic")
			topicEl.CreateAttr("name", t.Name)
			topicEl.CreateAttr("gated", strconv.FormatBool(t.Gated))
			topicEl.CreateElement("title").SetText(t.Title)

			body := topicEl.CreateElement("body")
			for _, line := range t.Lines {
				body.CreateElement("line").SetText(line)
			}
		}
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

func writeMarkdown(w io.Writer, book *Book) error {
	var sb strings.Builder
	sb.WriteString("# " + book.Title + "\n")

	for _, cat := range book.Categories {
		sb.WriteString("\n# " + cat.Name + "\n")
		for _, t := range cat.Topics {
			sb.WriteString("\n")
			sb.WriteString(render.Markdown(t.source))
		}
	}

	_, err := io.WriteString(w, sb.String())
	if err != nil {
		return fmt.Errorf("markdown: %w", err)
	}
	return nil
}
