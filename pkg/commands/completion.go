package commands

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/pokedex/pkg/catalog"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(pokedex completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(pokedex completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func entryCompletions(ctx context.Context, toComplete string) []string {
	s, err := openSession(true)
	if err != nil {
		return nil
	}
	defer s.Close()
	entries, err := s.Service.Source.LoadEntries(contextOrBackground(ctx))
	if err != nil {
		return nil
	}
	return withPrefix(catalog.Names(entries), toComplete)
}

func categoryCompletions(ctx context.Context, toComplete string) []string {
	s, err := openSession(true)
	if err != nil {
		return nil
	}
	defer s.Close()
	cats, err := s.Service.Source.LoadCategories(contextOrBackground(ctx))
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, c.Name)
	}
	return withPrefix(names, toComplete)
}

func withPrefix(names []string, prefix string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if strings.HasPrefix(strings.ToLower(n), strings.ToLower(prefix)) {
			out = append(out, n)
		}
	}
	return out
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
