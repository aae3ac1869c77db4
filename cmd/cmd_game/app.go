package cmd_game

import (
	"context"
	"fmt"
	"io"

	"github.com/rskv-p/guess/config"
	"github.com/rskv-p/guess/pkg/x_db"
	"github.com/rskv-p/guess/pkg/x_guess"
	"github.com/rskv-p/guess/pkg/x_log"
)

// App carries the streams, global flags and loaded settings shared by all
// subcommands of one invocation.
type App struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	ConfigPath string
	SaveFile   string
	LogLevel   string

	Cfg   *config.Config
	RunID string
	log   x_log.Logger
}

func NewApp(in io.Reader, out, errOut io.Writer) *App {
	return &App{In: in, Out: out, Err: errOut}
}

// Setup loads the configuration, applies flag overrides and starts logging.
func (a *App) Setup() error {
	overrides := map[string]any{}
	if a.SaveFile != "" {
		overrides["save_file"] = a.SaveFile
	}
	if a.LogLevel != "" {
		overrides["log.level"] = a.LogLevel
	}

	cfg, err := config.Load(a.ConfigPath, config.WithValues(overrides))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.Cfg = cfg

	x_log.SetConsole(a.Err)
	if err := x_log.InitWithConfig(&cfg.Log, "guess"); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	a.RunID = x_db.NewRunID()
	a.log = x_log.New("cli").With().Str("run", a.RunID).Logger()
	a.log.Debug().Str("file", cfg.SaveFile).Msg("configuration loaded")
	return nil
}

// Teardown flushes the log file.
func (a *App) Teardown() {
	if err := x_log.Close(); err != nil {
		fmt.Fprintf(a.Err, "close log: %v\n", err)
	}
}

// Logged reports whether Setup got far enough to log through x_log.
func (a *App) Logged() bool { return a.Cfg != nil }

// Logger returns the invocation logger.
func (a *App) Logger() *x_log.Logger { return &a.log }

func (a *App) loadTree() (*x_guess.Tree, error) {
	tree, seeded, err := x_guess.LoadOrSeed(a.Cfg.SaveFile, a.Cfg.Placeholder)
	if err != nil {
		return nil, err
	}
	if seeded {
		a.log.Info().
			Str("file", a.Cfg.SaveFile).
			Str("placeholder", a.Cfg.Placeholder).
			Msg("no save file, starting a new tree")
	} else {
		a.log.Debug().Str("file", a.Cfg.SaveFile).Int("nodes", tree.Len()).Msg("tree loaded")
	}
	return tree, nil
}

// openHistory returns nil when history is disabled.
func (a *App) openHistory() (*x_db.Store, error) {
	if !a.Cfg.History.Enabled {
		return nil, nil
	}
	store, err := x_db.Open(a.Cfg.History.Config)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	return store, nil
}

func (a *App) record(ctx context.Context, store *x_db.Store, res x_guess.Result) {
	if store == nil {
		return
	}
	rec := x_db.NewRecord(a.RunID, res)
	if err := store.Record(ctx, &rec); err != nil {
		a.log.Warn().Err(err).Msg("game not recorded")
		return
	}
	a.log.Debug().Str("game", rec.UUID).Msg("game recorded")
}
