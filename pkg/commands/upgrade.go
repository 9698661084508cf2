package commands

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"
)

func addUpgrade(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade pokedex cli.",
		Example: `
pokedex upgrade
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ex := exec.Command("go", "install", "tableflip.dev/pokedex/cmd/pokedex@latest")
			var out bytes.Buffer
			ex.Stdout = &out
			if err := ex.Run(); err != nil {
				return output.HandleError(err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", ex.String())
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
