package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/pokedex/pkg/commands/options"
	"tableflip.dev/pokedex/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "list [entries|categories]",
		Short: "list pokémon or types",
		Long: `List pokémon or types, narrowed by a search text or a type.

Without --search, --category or --all the selection remembered from the last
session applies. Choosing a type with --category is remembered for next time.`,
		Example: `
pokedex list
pokedex list entries --search char
pokedex list entries --category fuego
pokedex list categories --search a
pokedex list --all --json
`,
		Aliases:   []string{"ls"},
		ValidArgs: []string{"entries", "categories", "pokemon", "types"},
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			kind, err := listKind(args)
			if err != nil {
				return output.HandleError(err)
			}
			s, err := openSession(false)
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			l := list.List{
				Kind:     kind,
				Search:   fo.Search,
				Category: fo.Category,
				All:      fo.All,
				ShowID:   io.ShowID,
				JSON:     output.JSON,
				Out:      cmd.OutOrStdout(),
				Service:  s.Service,
			}
			return output.HandleError(l.Do(cmd.Context()))
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddAllArg(cmd, fo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	_ = cmd.RegisterFlagCompletionFunc("category", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return categoryCompletions(cmd.Context(), toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}

func listKind(args []string) (list.Kind, error) {
	if len(args) == 0 {
		return list.KindEntries, nil
	}
	switch args[0] {
	case "entries", "pokemon":
		return list.KindEntries, nil
	case "categories", "types":
		return list.KindCategories, nil
	default:
		return "", fmt.Errorf("unknown list %q, expected entries or categories", args[0])
	}
}
