package x_db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rskv-p/guess/pkg/x_guess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(Config{
		Driver:   DbSqlite,
		DSN:      filepath.Join(t.TempDir(), "history.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.ErrorIs(t, Config{Driver: "mysql", DSN: "x"}.Validate(), ErrUnknownDriver)
	assert.ErrorIs(t, Config{Driver: DbSqlite, DSN: " "}.Validate(), ErrEmptyDSN)
}

func TestDialector(t *testing.T) {
	d, err := dialector(Config{Driver: DbPostgres, DSN: "host=localhost user=guess dbname=guess"})
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())

	d, err = dialector(Config{Driver: DbSqlite, DSN: "x.db"})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())

	_, err = Open(Config{Driver: "oracle", DSN: "x"})
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestGormLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, gormLevel("off"))
	assert.Equal(t, logger.Error, gormLevel("error"))
	assert.Equal(t, logger.Info, gormLevel("INFO"))
	assert.Equal(t, logger.Warn, gormLevel(""))
}

func TestRecordAndStats(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)
	run := NewRunID()

	won := NewRecord(run, x_guess.Result{Outcome: x_guess.OutcomeWon, Guess: "Cat", Asked: 1})
	learned := NewRecord(run, x_guess.Result{
		Outcome:  x_guess.OutcomeLearned,
		Guess:    "Cat",
		Answer:   "Dog",
		Question: "Does it bark?",
		Asked:    1,
	})
	other := GameRecord{RunID: "other", Outcome: "won", Guess: "Dog"}

	require.NoError(t, s.Record(ctx, &won))
	require.NoError(t, s.Record(ctx, &learned))
	require.NoError(t, s.Record(ctx, &other))
	assert.NotEmpty(t, other.UUID)
	assert.NotZero(t, won.ID)

	st, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Games: 3, Won: 2, Learned: 1}, st)

	recent, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "other", recent[0].RunID)
	assert.Equal(t, "Does it bark?", recent[1].Question)

	all, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byRun, err := s.ByRun(ctx, run)
	require.NoError(t, err)
	require.Len(t, byRun, 2)
	assert.Equal(t, "won", byRun[0].Outcome)
	assert.Equal(t, "learned", byRun[1].Outcome)
	assert.Equal(t, won.UUID, byRun[0].UUID)
}

func TestStats_Empty(t *testing.T) {
	st, err := openTemp(t).Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stats{}, st)
}

func TestDuplicateUUIDRejected(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	a := GameRecord{UUID: "same", Outcome: "won"}
	b := GameRecord{UUID: "same", Outcome: "won"}
	require.NoError(t, s.Record(ctx, &a))
	assert.Error(t, s.Record(ctx, &b))
}

func TestLogAdapterLevels(t *testing.T) {
	zl := zerolog.Nop()
	l := newLogAdapter(&zl, logger.Warn)
	assert.Equal(t, logger.Info, l.LogMode(logger.Info).(*logAdapter).LogLevel)
	assert.Equal(t, logger.Warn, l.(*logAdapter).LogLevel)
}
