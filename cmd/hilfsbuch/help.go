package hilfsbuch

import (
	"fmt"

	"github.com/arthur-debert/hilfsbuch/pkg/topics"
	"github.com/spf13/cobra"
)

// installHelp replaces cobra's help command with one that also knows the
// reference topics: "help <topic>" shows the topic without pausing and
// "help topics" lists them. Command names win over topic names.
func installHelp(rootCmd *cobra.Command, a *app) {
	originalHelp := rootCmd.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: MsgHelpShort,
		Long: `Help provides help for any command or reference topic.
Simply type ` + rootCmd.Name() + ` help [path to command or topic] for full details.

To see all available topics:
  ` + rootCmd.Name() + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, topics.Names()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				originalHelp(rootCmd, []string{})
				return nil
			}

			if args[0] == "topics" {
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, MsgTopicsHeader)
				fmt.Fprintln(out)
				fmt.Fprint(out, renderList(false))
				fmt.Fprintln(out, MsgTopicsFooter)
				return nil
			}

			if target, _, err := rootCmd.Find(args); err == nil && target != rootCmd {
				originalHelp(target, args)
				return nil
			}

			if t, ok := topics.Lookup(args[0]); ok {
				d, err := newDispenser(cmd, a, "", false)
				if err != nil {
					return err
				}
				return d.ShowTopic(t)
			}

			// Neither: let cobra report the unknown command
			originalHelp(rootCmd, args)
			return nil
		},
	}

	rootCmd.SetHelpCommand(helpCmd)
}
