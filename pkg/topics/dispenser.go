package topics

import (
	"bufio"
	"io"
	"strings"

	"github.com/arthur-debert/hilfsbuch/pkg/errors"
	"github.com/arthur-debert/hilfsbuch/pkg/logging"
	"github.com/rs/zerolog"
)

// Renderer turns a topic into the text written to the console
type Renderer interface {
	Render(t *Topic) string
}

type plainRenderer struct{}

func (plainRenderer) Render(t *Topic) string { return t.Text() }

// Option configures a Dispenser
type Option func(*Dispenser)

// WithRenderer sets the renderer used for topic text
func WithRenderer(r Renderer) Option {
	return func(d *Dispenser) {
		if r != nil {
			d.renderer = r
		}
	}
}

// WithoutGate disables the acknowledgment read after gated topics
func WithoutGate() Option {
	return func(d *Dispenser) { d.gate = false }
}

// WithLogger replaces the dispenser's logger
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Dispenser) { d.logger = logger }
}

// WithGatePrompt writes prompt before waiting on a gated topic. The
// default is no prompt.
func WithGatePrompt(prompt string) Option {
	return func(d *Dispenser) { d.prompt = prompt }
}

// Dispenser prints topics to an output stream and, for gated topics,
// waits for one input token afterwards. It keeps no state between calls
// other than its buffered input.
type Dispenser struct {
	out      io.Writer
	in       io.RuneScanner
	renderer Renderer
	gate     bool
	prompt   string
	logger   zerolog.Logger
}

// New creates a Dispenser writing to out and reading acknowledgments from
// in. A nil in behaves like an exhausted stream.
func New(out io.Writer, in io.Reader, opts ...Option) *Dispenser {
	d := &Dispenser{
		out:      out,
		in:       runeScanner(in),
		renderer: plainRenderer{},
		gate:     true,
		logger:   logging.GetLogger("topics"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func runeScanner(in io.Reader) io.RuneScanner {
	if in == nil {
		return strings.NewReader("")
	}
	if rs, ok := in.(io.RuneScanner); ok {
		return rs
	}
	return bufio.NewReader(in)
}

// Show prints the topic identified by id
func (d *Dispenser) Show(id ID) error {
	t, ok := Get(id)
	if !ok {
		return errors.Newf(errors.ErrUnknownTopic, "unknown topic %s", id).
			WithDetail("id", int(id))
	}
	return d.ShowTopic(t)
}

// ShowByName resolves name with Lookup and prints the topic. Nothing is
// written when the name is unknown.
func (d *Dispenser) ShowByName(name string) error {
	t, ok := Lookup(name)
	if !ok {
		return errors.Newf(errors.ErrUnknownTopic, "unknown topic %q", name).
			WithDetail("name", name)
	}
	return d.ShowTopic(t)
}

// ShowTopic prints t and, if it is gated, waits for one input token
func (d *Dispenser) ShowTopic(t *Topic) error {
	logger := d.logger.With().Str("topic", t.Name).Logger()

	if _, err := io.WriteString(d.out, d.renderer.Render(t)); err != nil {
		return errors.Wrapf(err, errors.ErrOutput, "failed to write topic %s", t.Name)
	}
	logger.Debug().Bool("gated", t.Gated).Msg("Topic shown")

	if !t.Gated || !d.gate {
		return nil
	}

	if d.prompt != "" {
		if _, err := io.WriteString(d.out, d.prompt); err != nil {
			return errors.Wrapf(err, errors.ErrOutput, "failed to write prompt after %s", t.Name)
		}
	}

	token, err := readToken(d.in)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInput, "failed to read acknowledgment after %s", t.Name)
	}
	logAcknowledgment(logger, token)
	return nil
}

// ShowStlAlgorithms prints the STL algorithms topic
func (d *Dispenser) ShowStlAlgorithms() error { return d.Show(StlAlgorithms) }

// ShowTemplates prints the templates topic
func (d *Dispenser) ShowTemplates() error { return d.Show(Templates) }

// ShowExceptions prints the exceptions topic
func (d *Dispenser) ShowExceptions() error { return d.Show(Exceptions) }

// ShowOperatorOverloading prints the operator overloading topic and waits
// for acknowledgment
func (d *Dispenser) ShowOperatorOverloading() error { return d.Show(OperatorOverloading) }

// ShowFunctionOverloading prints the function overloading topic and waits
// for acknowledgment
func (d *Dispenser) ShowFunctionOverloading() error { return d.Show(FunctionOverloading) }

// ShowFriend prints the friend topic and waits for acknowledgment
func (d *Dispenser) ShowFriend() error { return d.Show(Friend) }

// ShowConstructors prints the constructors topic and waits for acknowledgment
func (d *Dispenser) ShowConstructors() error { return d.Show(Constructors) }

// ShowInheritance prints the inheritance topic and waits for acknowledgment
func (d *Dispenser) ShowInheritance() error { return d.Show(Inheritance) }
