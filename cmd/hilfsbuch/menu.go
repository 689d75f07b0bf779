package hilfsbuch

import (
	"github.com/arthur-debert/hilfsbuch/pkg/errors"
	"github.com/arthur-debert/hilfsbuch/pkg/menu"
	"github.com/arthur-debert/hilfsbuch/pkg/search"
	"github.com/arthur-debert/hilfsbuch/pkg/topics"
	"github.com/spf13/cobra"
)

func newMenuCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "menu",
		Short:   MsgMenuShort,
		Long:    MsgMenuLong,
		GroupID: "topics",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.interactive() {
				return errors.New(errors.ErrInvalidInput, MsgErrNeedsTTY)
			}
			return runMenu(cmd, a)
		},
	}
}

func runMenu(cmd *cobra.Command, a *app) error {
	d, err := newDispenser(cmd, a, "", true, topics.WithGatePrompt(MsgGatePrompt))
	if err != nil {
		return err
	}
	m := menu.New(a.selector, d, search.New(a.cfg.Search.Limit), cmd.OutOrStdout())
	return m.Run(cmd.Context())
}
