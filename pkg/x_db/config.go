package x_db

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

//---------------------
// Database Config
//---------------------

type DbType string

const (
	DbSqlite   DbType = "sqlite"
	DbPostgres DbType = "postgres"
)

var (
	ErrUnknownDriver = errors.New("unknown_db_driver")
	ErrEmptyDSN      = errors.New("empty_dsn")
)

// Config selects the history database. For sqlite DSN is a file path; for
// postgres it is a connection string. LogLevel is one of silent, error, warn
// or info and applies to SQL tracing.
type Config struct {
	Driver   DbType `json:"driver" mapstructure:"driver"`
	DSN      string `json:"dsn" mapstructure:"dsn"`
	LogLevel string `json:"log_level" mapstructure:"log_level"`
}

var defaultCfg = Config{
	Driver:   DbSqlite,
	DSN:      "guess.history.db",
	LogLevel: "warn",
}

func DefaultConfig() Config {
	return defaultCfg
}

// Validate checks the driver name and DSN.
func (c Config) Validate() error {
	switch c.Driver {
	case DbSqlite, DbPostgres:
	default:
		return fmt.Errorf("driver %q: %w", c.Driver, ErrUnknownDriver)
	}
	if strings.TrimSpace(c.DSN) == "" {
		return ErrEmptyDSN
	}
	return nil
}

//---------------------
// Dialect selection
//---------------------

func dialector(c Config) (gorm.Dialector, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.Driver == DbPostgres {
		return postgres.Open(c.DSN), nil
	}
	return sqlite.Open(c.DSN), nil
}

func gormLevel(s string) logger.LogLevel {
	switch strings.ToLower(s) {
	case "silent", "off":
		return logger.Silent
	case "error":
		return logger.Error
	case "info", "debug":
		return logger.Info
	default:
		return logger.Warn
	}
}
