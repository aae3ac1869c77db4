package cmd_game

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rskv-p/guess/pkg/x_db"
	"github.com/rskv-p/guess/pkg/x_dot"
	"github.com/rskv-p/guess/pkg/x_guess"
	"github.com/rskv-p/guess/pkg/x_speech"
	"github.com/rskv-p/guess/pkg/x_term"
	"github.com/spf13/cobra"
)

const (
	NewGameBanner   = "===== New game ====="
	EndGameBanner   = "=====          ====="
	PlayAgainPrompt = "Play again?"
)

// NewPlayCmd plays games against the saved tree and saves what it learned.
func NewPlayCmd(a *App) *cobra.Command {
	var rounds int

	c := &cobra.Command{
		Use:   "play",
		Short: "Play the guessing game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("rounds") {
				rounds = a.Cfg.Rounds
			}
			if rounds < 0 {
				return fmt.Errorf("--rounds must not be negative, got %d", rounds)
			}
			return a.play(cmd.Context(), rounds)
		},
	}

	c.Flags().IntVar(&rounds, "rounds", 0, "number of games; 0 asks after every game")
	return c
}

// play saves the tree after the last game even when a game failed midway;
// an unfinished game never changes the tree.
func (a *App) play(ctx context.Context, rounds int) error {
	tree, err := a.loadTree()
	if err != nil {
		return err
	}

	speaker, err := x_speech.New(a.Cfg.SpeechCmd, a.Cfg.SpeechTimeout())
	if err != nil {
		a.log.Warn().Err(err).Msg("speech disabled")
		speaker = x_speech.Nop{}
	}

	store, err := a.openHistory()
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	console := x_term.New(a.In, a.Out, x_term.WithSpeaker(speaker), x_term.WithContext(ctx))
	played, playErr := a.games(ctx, tree, console, store, rounds)

	if err := tree.Save(a.Cfg.SaveFile); err != nil {
		return errors.Join(playErr, err)
	}
	a.log.Info().Str("file", a.Cfg.SaveFile).Int("games", played).Int("nodes", tree.Len()).Msg("tree saved")

	if a.Cfg.DotFile != "" {
		if err := x_dot.WriteFile(a.Cfg.DotFile, tree); err != nil {
			return errors.Join(playErr, err)
		}
		a.log.Debug().Str("file", a.Cfg.DotFile).Msg("graph exported")
	}
	return playErr
}

func (a *App) games(ctx context.Context, tree *x_guess.Tree, console *x_term.Console, store *x_db.Store, rounds int) (int, error) {
	for game := 1; ; game++ {
		fmt.Fprintln(a.Out, NewGameBanner)

		res, err := x_guess.NewSession(tree, console, x_guess.WithObserver(a.observer(game))).Play()
		if err != nil {
			return game - 1, fmt.Errorf("game %d: %w", game, err)
		}
		fmt.Fprintln(a.Out, EndGameBanner)

		a.log.Info().
			Int("game", game).
			Stringer("outcome", res.Outcome).
			Str("guess", res.Guess).
			Int("asked", res.Asked).
			Msg("game over")
		a.record(ctx, store, res)

		if rounds > 0 {
			if game >= rounds {
				return game, nil
			}
			continue
		}

		again, err := console.AskYesNo(PlayAgainPrompt)
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return game, nil
		}
		if err != nil {
			return game, err
		}
		if !again {
			return game, nil
		}
	}
}

func (a *App) observer(game int) x_guess.Observer {
	return x_guess.ObserverFunc(func(s x_guess.State, at x_guess.Index) {
		a.log.Debug().Int("game", game).Stringer("state", s).Int("node", int(at)).Msg("state")
	})
}
