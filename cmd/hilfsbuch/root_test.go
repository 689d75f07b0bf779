package hilfsbuch

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"os"
	"strings"
	"testing"

	"github.com/arthur-debert/hilfsbuch/pkg/errors"
	"github.com/arthur-debert/hilfsbuch/pkg/export"
	"github.com/arthur-debert/hilfsbuch/pkg/menu"
	"github.com/arthur-debert/hilfsbuch/pkg/paths"
	"github.com/arthur-debert/hilfsbuch/pkg/topics"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type scriptedSelector struct {
	choices []string
}

func (s *scriptedSelector) Select(string, []string) (string, error) {
	if len(s.choices) == 0 {
		return "", stderrors.New("script exhausted")
	}
	c := s.choices[0]
	s.choices = s.choices[1:]
	return c, nil
}

type result struct {
	stdout string
	stderr string
	err    error
}

// testApp isolates config and state directories and uses an in-memory fs
func testApp(t *testing.T) *app {
	t.Helper()
	t.Setenv(paths.EnvConfigDir, t.TempDir())
	t.Setenv(paths.EnvStateDir, t.TempDir())
	t.Setenv("NO_COLOR", "1")
	for _, name := range []string{"HILFSBUCH_RENDER_FORMAT", "HILFSBUCH_RENDER_THEME", "HILFSBUCH_GATE_ENABLED", "HILFSBUCH_SEARCH_LIMIT"} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}

	return &app{
		fs:          afero.NewMemMapFs(),
		selector:    &scriptedSelector{},
		interactive: func() bool { return false },
	}
}

func run(t *testing.T, a *app, stdin string, args ...string) result {
	t.Helper()
	cmd := newRootCmd(a)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func topic(id topics.ID) *topics.Topic {
	t, ok := topics.Get(id)
	if !ok {
		panic("missing topic " + id.String())
	}
	return t
}

func TestShow(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"slug", []string{"show", "templates"}, topic(topics.Templates).Text()},
		{"number", []string{"show", "1"}, topic(topics.StlAlgorithms).Text()},
		{"title", []string{"show", "Vererbung in C++"}, topic(topics.Inheritance).Text()},
		{"order kept", []string{"show", "exceptions", "friend"}, topic(topics.Exceptions).Text() + topic(topics.Friend).Text()},
		{"explicit plain", []string{"show", "--format", "plain", "constructors"}, topic(topics.Constructors).Text()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, testApp(t), "1 2 3", tt.args...)
			require.NoError(t, res.err)
			assert.Equal(t, tt.want, res.stdout)
		})
	}
}

func TestShow_GateConsumesInput(t *testing.T) {
	a := testApp(t)
	in := strings.NewReader("1 2")

	cmd := newRootCmd(a)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(in)
	cmd.SetArgs([]string{"show", "friend", "stl-algorithms"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, len(" 2"), in.Len())
}

func TestShow_NoGate(t *testing.T) {
	a := testApp(t)
	in := strings.NewReader("1")

	cmd := newRootCmd(a)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetIn(in)
	cmd.SetArgs([]string{"show", "--no-gate", "friend"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, 1, in.Len())
}

func TestShow_GateDisabledByEnv(t *testing.T) {
	a := testApp(t)
	t.Setenv("HILFSBUCH_GATE_ENABLED", "false")
	in := strings.NewReader("1")

	cmd := newRootCmd(a)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetIn(in)
	cmd.SetArgs([]string{"show", "inheritance"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, 1, in.Len())
}

func TestShow_UnknownTopicPrintsNothing(t *testing.T) {
	res := run(t, testApp(t), "", "show", "templates", "lambdas")
	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrUnknownTopic))
	assert.Empty(t, res.stdout)
}

func TestShow_RequiresTopic(t *testing.T) {
	res := run(t, testApp(t), "", "show")
	assert.Error(t, res.err)
}

func TestShow_InvalidFormat(t *testing.T) {
	res := run(t, testApp(t), "", "show", "--format", "html", "templates")
	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrInvalidInput))
}

func TestShow_Markdown(t *testing.T) {
	res := run(t, testApp(t), "", "show", "--format", "markdown", "templates")
	require.NoError(t, res.err)
	assert.Contains(t, ansi.Strip(res.stdout), topic(topics.Templates).Title)
}

func TestList(t *testing.T) {
	res := run(t, testApp(t), "", "list")
	require.NoError(t, res.err)

	for _, cat := range topics.Categories() {
		assert.Contains(t, res.stdout, cat.Name+"\n")
	}
	for _, tp := range topics.All() {
		assert.Contains(t, res.stdout, tp.Name)
		assert.Contains(t, res.stdout, tp.Title)
	}

	lines := strings.Split(res.stdout, "\n")
	for _, line := range lines {
		if strings.Contains(line, "operator-overloading") {
			assert.True(t, strings.HasSuffix(line, " *"), "gated topic not marked: %q", line)
		}
		if strings.Contains(line, "stl-algorithms") {
			assert.False(t, strings.HasSuffix(line, "*"), "ungated topic marked: %q", line)
		}
	}
	assert.Contains(t, res.stdout, MsgGatedLegend)
}

func TestSearch(t *testing.T) {
	res := run(t, testApp(t), "", "search", "vererbung")
	require.NoError(t, res.err)

	assert.True(t, strings.HasPrefix(res.stdout, `Suchergebnisse für: "vererbung"`+"\n"))
	inh := topic(topics.Inheritance)
	assert.Contains(t, res.stdout, "  "+inh.Name+"  "+inh.Title+" ("+inh.Category+")\n")
}

func TestSearch_NoHits(t *testing.T) {
	res := run(t, testApp(t), "", "search", "zzzzqqqq")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, MsgNoHits)
}

func TestSearch_Limit(t *testing.T) {
	res := run(t, testApp(t), "", "search", "--limit", "1", "c")
	require.NoError(t, res.err)

	hits := strings.Count(res.stdout, "\n") - 1
	assert.Equal(t, 1, hits)
}

func TestExport_Stdout(t *testing.T) {
	res := run(t, testApp(t), "", "export", "templates")
	require.NoError(t, res.err)

	var book export.Book
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &book))
	require.Len(t, book.Categories, 1)
	assert.Equal(t, "templates", book.Categories[0].Topics[0].Name)
}

func TestExport_File(t *testing.T) {
	a := testApp(t)
	res := run(t, a, "", "export", "--output", "/out/book.yaml")
	require.NoError(t, res.err)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "/out/book.yaml")

	data, err := afero.ReadFile(a.fs, "/out/book.yaml")
	require.NoError(t, err)

	var book export.Book
	require.NoError(t, yaml.Unmarshal(data, &book))
	assert.Len(t, book.Categories, len(topics.Categories()))
}

func TestExport_Errors(t *testing.T) {
	res := run(t, testApp(t), "", "export", "--format", "pdf")
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrInvalidInput))

	res = run(t, testApp(t), "", "export", "nothing")
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrUnknownTopic))
}

func TestGenConfig(t *testing.T) {
	res := run(t, testApp(t), "", "genconfig")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "[render]")
	assert.Contains(t, res.stdout, "# format = ")
}

func TestGenConfig_Write(t *testing.T) {
	a := testApp(t)
	res := run(t, a, "", "genconfig", "--write")
	require.NoError(t, res.err)

	exists, err := afero.Exists(a.fs, paths.ConfigFile())
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Contains(t, res.stdout, paths.ConfigFile())

	res = run(t, a, "", "genconfig", "--write")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "already exists")
}

func TestInvalidConfig(t *testing.T) {
	a := testApp(t)
	t.Setenv("HILFSBUCH_RENDER_THEME", "neon")

	res := run(t, a, "", "list")
	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrConfigValid))
}

func TestMissingExplicitConfig(t *testing.T) {
	res := run(t, testApp(t), "", "--config", "/does/not/exist.toml", "list")
	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrConfigLoad))
}

func TestVersion(t *testing.T) {
	res := run(t, testApp(t), "", "version")
	require.NoError(t, res.err)
	assert.True(t, strings.HasPrefix(res.stdout, "hilfsbuch "))
}

func TestCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			res := run(t, testApp(t), "", "completion", shell)
			require.NoError(t, res.err)
			assert.NotEmpty(t, res.stdout)
		})
	}

	res := run(t, testApp(t), "", "completion", "tcsh")
	assert.Error(t, res.err)
}

func TestTopicNamesCompletion(t *testing.T) {
	names, directive := topicNamesCompletion(&cobra.Command{}, []string{"templates", "1"}, "")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	assert.Len(t, names, len(topics.All())-2)

	for _, n := range names {
		assert.False(t, strings.HasPrefix(n, "templates\t"))
		assert.False(t, strings.HasPrefix(n, "stl-algorithms\t"))
	}
}

func TestRoot_NoArgsNotInteractive(t *testing.T) {
	res := run(t, testApp(t), "")
	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrInvalidInput))
	assert.Contains(t, res.stdout, "USAGE:")
}

func TestRoot_NoArgsOpensMenu(t *testing.T) {
	a := testApp(t)
	a.interactive = func() bool { return true }
	a.selector = &scriptedSelector{choices: []string{menu.Label(topic(topics.Exceptions)), menu.EntryQuit}}

	res := run(t, a, "")
	require.NoError(t, res.err)
	assert.Equal(t, topic(topics.Exceptions).Text(), res.stdout)
}

func TestMenu_GatePrompt(t *testing.T) {
	a := testApp(t)
	a.interactive = func() bool { return true }
	a.selector = &scriptedSelector{choices: []string{menu.Label(topic(topics.Friend)), menu.EntryQuit}}

	res := run(t, a, "ok\n", "menu")
	require.NoError(t, res.err)
	assert.Equal(t, topic(topics.Friend).Text()+MsgGatePrompt, res.stdout)
}

func TestMenu_NeedsTerminal(t *testing.T) {
	res := run(t, testApp(t), "", "menu")
	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrInvalidInput))
}

func TestHelp(t *testing.T) {
	t.Run("topics", func(t *testing.T) {
		res := run(t, testApp(t), "", "help", "topics")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, MsgTopicsHeader)
		assert.Contains(t, res.stdout, "function-overloading")
	})

	t.Run("topic without pause", func(t *testing.T) {
		a := testApp(t)
		in := strings.NewReader("1")
		cmd := newRootCmd(a)
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetIn(in)
		cmd.SetArgs([]string{"help", "constructors"})

		require.NoError(t, cmd.Execute())
		assert.Equal(t, topic(topics.Constructors).Text(), out.String())
		assert.Equal(t, 1, in.Len())
	})

	t.Run("command", func(t *testing.T) {
		res := run(t, testApp(t), "", "help", "show")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, MsgShowLong)
	})
}
