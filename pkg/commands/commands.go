package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/pokedex/pkg/commands/options"
	"tableflip.dev/pokedex/pkg/store"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "pokedex",
		Short: base.Wrap80("Browse pokémon and their types on the command line."),
		Long: base.Wrap80("Browse pokémon and their types on the command line. " +
			"The last selected pokémon and type are remembered between sessions."),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.String(store.KeySource, "", "Directory or http(s) URL the dataset files are resolved against.")
	flags.String(store.KeyEntries, "", "Location of the pokémon dataset.")
	flags.String(store.KeyCategories, "", "Location of the types dataset.")
	flags.String(store.KeyState, "", "Directory holding the remembered selection.")
	flags.String(store.KeyLogLevel, "", "Log level: debug, info, warn or error.")
	flags.String(store.KeyLogFile, "", "Write logs to this file instead of stderr.")
	for _, key := range []string{store.KeySource, store.KeyEntries, store.KeyCategories, store.KeyState, store.KeyLogLevel, store.KeyLogFile} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addList(topLevel)
	addShow(topLevel)
	addSelect(topLevel)
	addInfo(topLevel)
	addForget(topLevel)
	addMCP(topLevel)
	addCompletions(topLevel)
	addUpgrade(topLevel)
	addVersion(topLevel)
}
