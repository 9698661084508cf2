package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/pokedex/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about where data is read from and what selection is remembered.",
		Example: `
pokedex info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(false)
			if err != nil {
				return err
			}
			defer s.Close()

			n := info.Info{
				Settings:    s.Settings,
				Persistence: s.Service.Persistence,
				Out:         cmd.OutOrStdout(),
			}
			return n.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
