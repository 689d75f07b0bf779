package hilfsbuch

import (
	"fmt"

	"github.com/arthur-debert/hilfsbuch/pkg/errors"
	"github.com/arthur-debert/hilfsbuch/pkg/export"
	"github.com/arthur-debert/hilfsbuch/pkg/logging"
	"github.com/arthur-debert/hilfsbuch/pkg/topics"
	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:               "export [topic...]",
		Short:             MsgExportShort,
		Long:              MsgExportLong,
		Example:           MsgExportExample,
		GroupID:           "misc",
		ValidArgsFunction: topicNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.export")

			ids := make([]topics.ID, 0, len(args))
			for _, name := range args {
				t, ok := topics.Lookup(name)
				if !ok {
					return errors.Newf(errors.ErrUnknownTopic, "unknown topic %q", name).
						WithDetail("name", name)
				}
				ids = append(ids, t.ID)
			}

			f, err := exportFormat(format, output)
			if err != nil {
				return err
			}
			logger.Info().Str("format", string(f)).Str("output", output).Int("topics", len(ids)).Msg("Exporting")
			done := logging.LogOperationStart(logger, "export")
			defer done()

			if output == "" {
				return export.Write(cmd.OutOrStdout(), f, ids...)
			}
			if err := export.WriteFile(a.fs, output, f, ids...); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), MsgExported, f, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagExport)
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return export.FormatNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// exportFormat picks the flag value, then the output extension, then json
func exportFormat(flag, output string) (export.Format, error) {
	if flag != "" {
		return export.ParseFormat(flag)
	}
	if f, ok := export.FormatFromPath(output); ok {
		return f, nil
	}
	return export.FormatJSON, nil
}
