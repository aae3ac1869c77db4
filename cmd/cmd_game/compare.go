package cmd_game

import (
	"fmt"
	"io"

	"github.com/rskv-p/guess/pkg/x_guess"
	"github.com/spf13/cobra"
)

// NewCompareCmd shows where two answers agree and the question that splits them.
func NewCompareCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare two answers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := a.loadTree()
			if err != nil {
				return err
			}
			c, err := tree.Compare(args[0], args[1])
			if err != nil {
				return err
			}
			writeComparison(a.Out, c)
			return nil
		},
	}
}

func writeComparison(w io.Writer, c x_guess.Comparison) {
	if c.Split == nil {
		fmt.Fprintf(w, "%s and %s are the same answer\n", c.A.Target, c.B.Target)
		return
	}

	if len(c.Common) > 0 {
		fmt.Fprintf(w, "Both %s and %s:\n", c.A.Target, c.B.Target)
		writeSteps(w, c.Common)
	}

	fmt.Fprintf(w, "%s\n", c.Split.Question)
	fmt.Fprintf(w, "  %s%s\n", c.A.Target, mark(c.Split.Yes))
	fmt.Fprintf(w, "  %s%s\n", c.B.Target, mark(!c.Split.Yes))

	if len(c.RestA) > 0 {
		fmt.Fprintf(w, "Only %s:\n", c.A.Target)
		writeSteps(w, c.RestA)
	}
	if len(c.RestB) > 0 {
		fmt.Fprintf(w, "Only %s:\n", c.B.Target)
		writeSteps(w, c.RestB)
	}
}

func writeSteps(w io.Writer, steps []x_guess.Step) {
	for _, s := range steps {
		fmt.Fprintf(w, "  %s%s\n", s.Question, mark(s.Yes))
	}
}

func mark(yes bool) string {
	if yes {
		return x_guess.YesMark
	}
	return x_guess.NoMark
}
