package hilfsbuch

import (
	"io"
	"os"

	"github.com/arthur-debert/hilfsbuch/internal/version"
	"github.com/arthur-debert/hilfsbuch/pkg/config"
	"github.com/arthur-debert/hilfsbuch/pkg/errors"
	"github.com/arthur-debert/hilfsbuch/pkg/logging"
	"github.com/arthur-debert/hilfsbuch/pkg/menu"
	"github.com/arthur-debert/hilfsbuch/pkg/render"
	"github.com/arthur-debert/hilfsbuch/pkg/styles"
	"github.com/arthur-debert/hilfsbuch/pkg/topics"
	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// app carries the state shared by all commands of one invocation
type app struct {
	verbosity  int
	configPath string
	cfg        *config.Config

	fs          afero.Fs
	selector    menu.Selector
	interactive func() bool
}

func newApp() *app {
	return &app{
		fs:          afero.NewOsFs(),
		selector:    &menu.PtermSelector{MaxHeight: 12},
		interactive: stdinIsTerminal,
	}
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(newApp())
}

func newRootCmd(a *app) *cobra.Command {
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "hilfsbuch",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(a.verbosity)
			logging.LogCommand(cmd.CommandPath(), args)

			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			styles.ApplyTheme(cfg.Render.Theme)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.interactive() {
				return runMenu(cmd, a)
			}
			// Show help but return an error to indicate incorrect usage
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "topics",
		Title: "TOPICS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newShowCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newSearchCmd(a))
	rootCmd.AddCommand(newMenuCmd(a))
	rootCmd.AddCommand(newExportCmd(a))
	rootCmd.AddCommand(newGenConfigCmd(a))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	installHelp(rootCmd, a)

	return rootCmd
}

// outputFormat resolves the render format for out. A non-empty flag value
// overrides the configuration.
func outputFormat(a *app, flag string, out io.Writer) (render.Format, error) {
	name := a.cfg.Render.Format
	if flag != "" {
		name = flag
	}
	f, err := render.ParseFormat(name)
	if err != nil {
		return f, err
	}

	file, _ := out.(*os.File)
	f = render.Resolve(f, file)
	if f == render.FormatPlain {
		pterm.DisableStyling()
	}
	return f, nil
}

// newDispenser builds a dispenser for cmd's streams honouring the
// configuration and the given flag overrides
func newDispenser(cmd *cobra.Command, a *app, format string, gate bool, extra ...topics.Option) (*topics.Dispenser, error) {
	f, err := outputFormat(a, format, cmd.OutOrStdout())
	if err != nil {
		return nil, err
	}

	opts := []topics.Option{
		topics.WithRenderer(render.New(f, a.cfg.RenderOptions())),
		topics.WithLogger(logging.GetLogger("topics").With().Str("command", cmd.Name()).Logger()),
	}
	if !gate || !a.cfg.Gate.Enabled {
		opts = append(opts, topics.WithoutGate())
	}
	opts = append(opts, extra...)

	return topics.New(cmd.OutOrStdout(), cmd.InOrStdin(), opts...), nil
}

// topicNamesCompletion completes topic slugs not already given
func topicNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	given := make(map[string]bool, len(args))
	for _, arg := range args {
		if t, ok := topics.Lookup(arg); ok {
			given[t.Name] = true
		}
	}

	var names []string
	for _, t := range topics.All() {
		if !given[t.Name] {
			names = append(names, t.Name+"\t"+t.Title)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
