package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/rskv-p/guess/cmd/cmd_game"
	"github.com/rskv-p/guess/recover"
	"github.com/spf13/cobra"
)

// NewRootCmd assembles the CLI around app.
func NewRootCmd(app *cmd_game.App) *cobra.Command {
	root := &cobra.Command{
		Use:           "guess",
		Short:         "A guessing game that learns from its mistakes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.Setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.Teardown()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&app.ConfigPath, "config", "", "config file (default $GUESS_CONFIG or ./guess.config.json)")
	flags.StringVarP(&app.SaveFile, "file", "f", "", "tree save file (overrides save_file)")
	flags.StringVar(&app.LogLevel, "log-level", "", "trace, debug, info, warn, error or off")

	root.SetIn(app.In)
	root.SetOut(app.Out)
	root.SetErr(app.Err)

	root.AddCommand(
		cmd_game.NewPlayCmd(app),
		cmd_game.NewIdentifyCmd(app),
		cmd_game.NewCompareCmd(app),
		cmd_game.NewExportCmd(app),
		cmd_game.NewStatsCmd(app),
		cmd_game.NewLogsCmd(app),
		cmd_game.NewConfigCmd(app),
	)
	return root
}

// Run executes args and returns the process exit code.
func Run(ctx context.Context, app *cmd_game.App, args []string) int {
	root := NewRootCmd(app)
	root.SetArgs(args)

	exec := recover.WrapRecover("cli", "execute", root.ExecuteContext)
	if err := exec(ctx); err != nil {
		if app.Logged() {
			app.Logger().Error().Err(err).Msg("command failed")
			app.Teardown()
		}
		fmt.Fprintf(app.Err, "error: %v\n", err)
		return 1
	}
	return 0
}

func Execute() int {
	app := cmd_game.NewApp(os.Stdin, os.Stdout, os.Stderr)
	return Run(context.Background(), app, os.Args[1:])
}
