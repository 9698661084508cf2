package commands

import (
	"github.com/spf13/cobra"

	teaui "tableflip.dev/pokedex/pkg/runner/tea"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
pokedex ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(true)
			if err != nil {
				return err
			}
			defer s.Close()
			return teaui.Run(s.Service.NewController(), s.Service.Source)
		},
	}

	topLevel.AddCommand(cmd)
}
