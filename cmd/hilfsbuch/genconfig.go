package hilfsbuch

import (
	"fmt"

	"github.com/arthur-debert/hilfsbuch/pkg/config"
	"github.com/arthur-debert/hilfsbuch/pkg/logging"
	"github.com/spf13/cobra"
)

func newGenConfigCmd(a *app) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.genconfig")

			if !write {
				content, err := config.GenerateConfigContent()
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			path, written, err := config.WriteDefault(a.fs, a.configPath)
			if err != nil {
				return err
			}
			if !written {
				logger.Warn().Str("path", path).Msg("Config file already exists, skipping")
				fmt.Fprintf(cmd.ErrOrStderr(), MsgConfigExists, path)
				return nil
			}
			logger.Info().Str("path", path).Msg("Written config file")
			fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)

	return cmd
}
