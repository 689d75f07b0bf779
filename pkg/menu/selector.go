package menu

import (
	"github.com/pterm/pterm"
)

// Selector asks the user to pick one of options
type Selector interface {
	Select(title string, options []string) (string, error)
}

// Prompter asks the user for a line of text
type Prompter interface {
	Prompt(title string) (string, error)
}

// PtermSelector is the terminal implementation of Selector and Prompter
type PtermSelector struct {
	// MaxHeight is the number of options visible at once, 0 for pterm's default
	MaxHeight int
}

// Select shows an interactive, filterable list
func (p *PtermSelector) Select(title string, options []string) (string, error) {
	sel := pterm.DefaultInteractiveSelect.
		WithDefaultText(title).
		WithOptions(options)
	if p.MaxHeight > 0 {
		sel = sel.WithMaxHeight(p.MaxHeight)
	}
	return sel.Show()
}

// Prompt shows a single-line text input
func (p *PtermSelector) Prompt(title string) (string, error) {
	return pterm.DefaultInteractiveTextInput.
		WithDefaultText(title).
		Show()
}
