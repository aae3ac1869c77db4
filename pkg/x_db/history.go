package x_db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nuid"
	"github.com/rskv-p/guess/pkg/x_guess"
)

// GameRecord is one finished game.
type GameRecord struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UUID      string    `gorm:"uniqueIndex;size:36" json:"uuid"`
	RunID     string    `gorm:"index;size:32" json:"run_id"`
	Outcome   string    `gorm:"size:16" json:"outcome"`
	Guess     string    `json:"guess"`
	Answer    string    `json:"answer,omitempty"`
	Question  string    `json:"question,omitempty"`
	Asked     int       `json:"asked"`
	CreatedAt time.Time `json:"created_at"`
}

// Stats summarizes the stored history.
type Stats struct {
	Games   int64
	Won     int64
	Learned int64
}

// NewRunID identifies the games played by one invocation.
func NewRunID() string { return nuid.Next() }

// NewRecord converts a session result into a record.
func NewRecord(runID string, res x_guess.Result) GameRecord {
	return GameRecord{
		UUID:     uuid.NewString(),
		RunID:    runID,
		Outcome:  res.Outcome.String(),
		Guess:    res.Guess,
		Answer:   res.Answer,
		Question: res.Question,
		Asked:    res.Asked,
	}
}

// Record stores rec. A missing UUID is generated.
func (s *Store) Record(ctx context.Context, rec *GameRecord) error {
	if rec.UUID == "" {
		rec.UUID = uuid.NewString()
	}
	if err := s.with(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("record game: %w", err)
	}
	return nil
}

// Stats counts games by outcome.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var rows []struct {
		Outcome string
		N       int64
	}
	err := s.with(ctx).Model(&GameRecord{}).
		Select("outcome, count(*) as n").
		Group("outcome").
		Scan(&rows).Error
	if err != nil {
		return Stats{}, fmt.Errorf("count games: %w", err)
	}

	var st Stats
	for _, r := range rows {
		st.Games += r.N
		switch r.Outcome {
		case x_guess.OutcomeWon.String():
			st.Won += r.N
		case x_guess.OutcomeLearned.String():
			st.Learned += r.N
		}
	}
	return st, nil
}

// Recent returns up to n records, newest first.
func (s *Store) Recent(ctx context.Context, n int) ([]GameRecord, error) {
	var recs []GameRecord
	q := s.with(ctx).Order("id desc")
	if n > 0 {
		q = q.Limit(n)
	}
	if err := q.Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return recs, nil
}

// ByRun returns the records of one invocation in play order.
func (s *Store) ByRun(ctx context.Context, runID string) ([]GameRecord, error) {
	var recs []GameRecord
	if err := s.with(ctx).Where("run_id = ?", runID).Order("id asc").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list run %s: %w", runID, err)
	}
	return recs, nil
}
