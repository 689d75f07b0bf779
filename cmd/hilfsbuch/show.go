package hilfsbuch

import (
	"github.com/arthur-debert/hilfsbuch/pkg/errors"
	"github.com/arthur-debert/hilfsbuch/pkg/logging"
	"github.com/arthur-debert/hilfsbuch/pkg/topics"
	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	var (
		noGate bool
		format string
	)

	cmd := &cobra.Command{
		Use:               "show <topic>...",
		Short:             MsgShowShort,
		Long:              MsgShowLong,
		Example:           MsgShowExample,
		GroupID:           "topics",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: topicNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.show")

			// Resolve every name first so a typo prints nothing
			selected := make([]*topics.Topic, 0, len(args))
			for _, name := range args {
				t, ok := topics.Lookup(name)
				if !ok {
					return errors.Newf(errors.ErrUnknownTopic, "unknown topic %q", name).
						WithDetail("name", name)
				}
				selected = append(selected, t)
			}

			d, err := newDispenser(cmd, a, format, !noGate)
			if err != nil {
				return err
			}

			for _, t := range selected {
				logger.Info().Str("topic", t.Name).Msg("Showing topic")
				if err := d.ShowTopic(t); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noGate, "no-gate", false, MsgFlagNoGate)
	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)

	return cmd
}
