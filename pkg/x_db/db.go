// Package x_db keeps the history of played games in a SQL database.
package x_db

import (
	"context"
	"fmt"

	"github.com/rskv-p/guess/pkg/x_log"
	"gorm.io/gorm"
)

//---------------------
// Store
//---------------------

// Store is a gorm-backed game history.
type Store struct {
	db *gorm.DB
}

// Open connects to the configured database and migrates the schema.
func Open(cfg Config) (*Store, error) {
	dial, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	zlog := x_log.New("xdb")
	db, err := gorm.Open(dial, &gorm.Config{
		Logger: newLogAdapter(&zlog, gormLevel(cfg.LogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Driver, err)
	}
	if err := db.AutoMigrate(&GameRecord{}); err != nil {
		return nil, fmt.Errorf("migrate history: %w", err)
	}

	zlog.Debug().Str("driver", string(cfg.Driver)).Msg("history store ready")
	return &Store{db: db}, nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) with(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}
