package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/pokedex/pkg/commands/options"
	"tableflip.dev/pokedex/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	width := 0

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "show one pokémon and remember it as selected",
		Example: `
pokedex show bulbasaur
pokedex show "Mr. Mime" --json
`,
		Args: cobra.MinimumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return entryCompletions(cmd.Context(), toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(false)
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			sh := show.Show{
				Name:    strings.Join(args, " "),
				JSON:    output.JSON,
				Width:   width,
				Out:     cmd.OutOrStdout(),
				Service: s.Service,
			}
			return output.HandleError(sh.Do(cmd.Context()))
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 72, "Wrap the description at this width.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
