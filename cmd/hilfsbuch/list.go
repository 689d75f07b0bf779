package hilfsbuch

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/hilfsbuch/pkg/render"
	"github.com/arthur-debert/hilfsbuch/pkg/styles"
	"github.com/arthur-debert/hilfsbuch/pkg/topics"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: "topics",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := outputFormat(a, format, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), renderList(f == render.FormatStyled))
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)

	return cmd
}

// renderList lays out the catalog by category. Each topic line is its
// number, slug and title, with a trailing * for gated topics.
func renderList(styled bool) string {
	paint := func(style, s string) string {
		if !styled {
			return s
		}
		return styles.GetStyle(style).Render(s)
	}

	width := 0
	for _, t := range topics.All() {
		width = max(width, len(t.Name))
	}

	var sb strings.Builder
	gated := false
	for i, cat := range topics.Categories() {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(paint("Category", cat.Name) + "\n")

		for _, t := range cat.Topics {
			mark := ""
			if t.Gated {
				mark = " " + paint("Gated", "*")
				gated = true
			}
			name := fmt.Sprintf("%-*s", width, t.Name)
			fmt.Fprintf(&sb, "  %d. %s  %s%s\n", int(t.ID)+1, paint("TopicName", name), paint("TopicTitle", t.Title), mark)
		}
	}

	if gated {
		sb.WriteString("\n" + paint("Muted", MsgGatedLegend) + "\n")
	}
	return sb.String()
}
