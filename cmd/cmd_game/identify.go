package cmd_game

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const (
	FoundWords   = "Found %s"
	UnknownWords = "I don't know %s"
)

// NewIdentifyCmd prints what the tree knows about an answer.
func NewIdentifyCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "identify <name>",
		Short: "Show the traits that lead to an answer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")

			tree, err := a.loadTree()
			if err != nil {
				return err
			}

			path, ok := tree.WhoIs(name)
			if !ok {
				_, err := fmt.Fprintf(a.Out, UnknownWords+"\n", name)
				return err
			}
			if err := path.WriteAffirmations(a.Out); err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.Out, FoundWords+"\n", name)
			return err
		},
	}
}
