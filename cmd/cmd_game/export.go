package cmd_game

import (
	"fmt"

	"github.com/rskv-p/guess/pkg/x_dot"
	"github.com/spf13/cobra"
)

// NewExportCmd writes the tree as a Graphviz graph.
func NewExportCmd(a *App) *cobra.Command {
	var out string

	c := &cobra.Command{
		Use:   "export",
		Short: "Export the tree as a DOT graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = a.Cfg.DotFile
			}
			if out == "" {
				out = x_dot.DefaultFile
			}

			tree, err := a.loadTree()
			if err != nil {
				return err
			}
			if out == "-" {
				return x_dot.Write(a.Out, tree)
			}
			if err := x_dot.WriteFile(out, tree); err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.Out, "Wrote %s\n", out)
			return err
		},
	}

	c.Flags().StringVarP(&out, "out", "o", "", `output file, "-" for stdout (default dot_file or game_result.dot)`)
	return c
}
