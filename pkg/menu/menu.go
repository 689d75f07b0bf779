// Package menu implements the interactive topic menu. The menu lists the
// catalog by category and shows the chosen topic through a dispenser, so
// gated topics pause exactly as they do from the command line.
package menu

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/hilfsbuch/pkg/errors"
	"github.com/arthur-debert/hilfsbuch/pkg/logging"
	"github.com/arthur-debert/hilfsbuch/pkg/search"
	"github.com/arthur-debert/hilfsbuch/pkg/topics"
	"github.com/rs/zerolog"
)

// Menu entries besides the topics
const (
	EntrySearch = "Suche"
	EntryQuit   = "Beenden"
	EntryBack   = "Zurück"

	TitleMain   = "C++ Hilfsbuch: Thema wählen"
	TitleSearch = "Suchbegriff"
	TitleHits   = "Suchergebnisse"

	MsgNoHits = "Keine Treffer gefunden."
)

// Session holds the topic currently shown. Current is nil before the
// first selection.
type Session struct {
	Current *topics.Topic
}

// Menu drives one interactive session
type Menu struct {
	selector  Selector
	prompter  Prompter
	dispenser *topics.Dispenser
	searcher  *search.Searcher
	out       io.Writer
	logger    zerolog.Logger

	session Session
	labels  []string
	byLabel map[string]*topics.Topic
}

// New creates a menu. When selector also implements Prompter it is used
// for the search query; otherwise the search entry is hidden.
func New(selector Selector, dispenser *topics.Dispenser, searcher *search.Searcher, out io.Writer) *Menu {
	m := &Menu{
		selector:  selector,
		dispenser: dispenser,
		searcher:  searcher,
		out:       out,
		logger:    logging.GetLogger("menu"),
		byLabel:   make(map[string]*topics.Topic),
	}
	if p, ok := selector.(Prompter); ok && searcher != nil {
		m.prompter = p
	}

	for _, cat := range topics.Categories() {
		for _, t := range cat.Topics {
			label := Label(t)
			m.labels = append(m.labels, label)
			m.byLabel[label] = t
		}
	}
	return m
}

// Label is the menu text for a topic
func Label(t *topics.Topic) string {
	return fmt.Sprintf("%s: %s", t.Category, t.Title)
}

// Session returns the current session state
func (m *Menu) Session() Session {
	return m.session
}

// Options returns the entries of the main menu in display order
func (m *Menu) Options() []string {
	opts := make([]string, 0, len(m.labels)+2)
	opts = append(opts, m.labels...)
	if m.prompter != nil {
		opts = append(opts, EntrySearch)
	}
	return append(opts, EntryQuit)
}

// Run loops until the user quits, ctx is cancelled or the selector fails.
// Quitting returns nil.
func (m *Menu) Run(ctx context.Context) error {
	done := logging.LogOperationStart(m.logger, "menu")
	defer done()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		choice, err := m.selector.Select(TitleMain, m.Options())
		if err != nil {
			return errors.Wrap(err, errors.ErrInput, "menu selection failed")
		}
		m.logger.Trace().Str("choice", choice).Msg("Menu selection")

		switch choice {
		case EntryQuit:
			m.logger.Debug().Msg("Menu closed")
			return nil
		case EntrySearch:
			if err := m.runSearch(ctx); err != nil {
				return err
			}
		default:
			t, ok := m.byLabel[choice]
			if !ok {
				return errors.Newf(errors.ErrUnknownTopic, "unknown menu entry %q", choice).
					WithDetail("name", choice)
			}
			if err := m.show(t); err != nil {
				return err
			}
		}
	}
}

func (m *Menu) runSearch(ctx context.Context) error {
	query, err := m.prompter.Prompt(TitleSearch)
	if err != nil {
		return errors.Wrap(err, errors.ErrInput, "search input failed")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	results := m.searcher.Search(query)
	m.logger.Debug().Str("query", query).Int("hits", len(results)).Msg("Menu search")

	if len(results) == 0 {
		if _, err := fmt.Fprintln(m.out, MsgNoHits); err != nil {
			return errors.Wrap(err, errors.ErrOutput, "failed to write search result")
		}
		return nil
	}

	opts := make([]string, 0, len(results)+1)
	for _, r := range results {
		opts = append(opts, Label(r.Topic))
	}
	opts = append(opts, EntryBack)

	choice, err := m.selector.Select(fmt.Sprintf("%s für %q", TitleHits, strings.TrimSpace(query)), opts)
	if err != nil {
		return errors.Wrap(err, errors.ErrInput, "search selection failed")
	}
	if choice == EntryBack {
		return nil
	}

	t, ok := m.byLabel[choice]
	if !ok {
		return errors.Newf(errors.ErrUnknownTopic, "unknown menu entry %q", choice).
			WithDetail("name", choice)
	}
	return m.show(t)
}

func (m *Menu) show(t *topics.Topic) error {
	m.session.Current = t
	return m.dispenser.ShowTopic(t)
}
