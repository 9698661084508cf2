package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/pokedex/pkg/commands/options"
	"tableflip.dev/pokedex/pkg/runner/pick"
)

func addSelect(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "select",
		Short: "remember a selection for the next session",
		Example: `
pokedex select category fuego
pokedex select category 10
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addSelectCategory(cmd)

	topLevel.AddCommand(cmd)
}

func addSelectCategory(parent *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "category <name|id>",
		Short:   "select a type and list its pokémon",
		Long: `Select a type by name or id, remember it, and list its pokémon.

When a pokémon is also remembered, the next session restores that pokémon's
first type instead, and remembers it in place of the type chosen here. Run
"pokedex forget" first to keep only the type.`,
		Aliases: []string{"type", "tipo"},
		Args:    cobra.MinimumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return categoryCompletions(cmd.Context(), toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(false)
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			p := pick.Pick{
				Category: strings.Join(args, " "),
				ShowID:   io.ShowID,
				Out:      cmd.OutOrStdout(),
				Service:  s.Service,
			}
			return output.HandleError(p.Do(cmd.Context()))
		},
	}

	options.AddShowIDArgs(cmd, io)

	parent.AddCommand(cmd)
}
