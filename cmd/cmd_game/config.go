package cmd_game

import (
	"github.com/spf13/cobra"
)

// NewConfigCmd prints the effective settings after file, env and flag overrides.
func NewConfigCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show-config",
		Short: "Print the effective configuration as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Cfg.Dump(a.Out)
		},
	}
}
