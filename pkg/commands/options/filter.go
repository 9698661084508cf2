// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// FilterOptions captures the search text and type flags used by list.
type FilterOptions struct {
	Search   string
	Category string
	All      bool
}

// AddFilterArgs wires the search and type flags on the provided command.
func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Search, "search", "s", "",
		"Case-insensitive substring to match against names.")
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Type name or id; takes precedence over --search.")
}

// AddAllArg registers the flag that ignores the remembered selection.
func AddAllArg(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Ignore the remembered selection and show everything.")
}
