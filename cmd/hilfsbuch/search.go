package hilfsbuch

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/hilfsbuch/pkg/errors"
	"github.com/arthur-debert/hilfsbuch/pkg/logging"
	"github.com/arthur-debert/hilfsbuch/pkg/search"
	"github.com/spf13/cobra"
)

func newSearchCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "search <query>",
		Short:   MsgSearchShort,
		Long:    MsgSearchLong,
		Example: MsgSearchExample,
		GroupID: "topics",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.search")

			query := strings.TrimSpace(strings.Join(args, " "))
			if query == "" {
				return errors.New(errors.ErrInvalidInput, MsgErrEmptyQuery)
			}
			if limit <= 0 {
				limit = a.cfg.Search.Limit
			}

			results := search.New(limit).Search(query)
			logger.Info().Str("query", query).Int("hits", len(results)).Msg("Search finished")

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, MsgSearchHeader, query); err != nil {
				return errors.Wrap(err, errors.ErrOutput, "failed to write search results")
			}
			if len(results) == 0 {
				_, err := fmt.Fprintln(out, MsgNoHits)
				return err
			}
			for _, r := range results {
				fmt.Fprintf(out, MsgSearchHit, r.Topic.Name, r.Topic.Title, r.Topic.Category)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, MsgFlagLimit)

	return cmd
}
