package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func addForget(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "forget",
		Short: "forget the remembered pokémon and type",
		Example: `
pokedex forget
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(false)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Service.Forget(); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Selection forgotten.")
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
