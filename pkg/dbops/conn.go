package dbops

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Conn describes how to reach a database.
type Conn struct {
	Driver   string `yaml:"driver"`   // postgres or sqlite
	DSN      string `yaml:"dsn"`      // URL or key/value string; a jdbc: prefix is accepted
	User     string `yaml:"user"`     // overrides the DSN user (postgres only)
	Password string `yaml:"password"` // overrides the DSN password (postgres only)
}

type dialect int

const (
	postgres dialect = iota + 1
	sqlite
)

func (d dialect) String() string {
	switch d {
	case postgres:
		return "postgres"
	case sqlite:
		return "sqlite"
	}
	return "unknown"
}

func (c Conn) dialect() (dialect, error) {
	switch strings.ToLower(c.Driver) {
	case "postgres", "postgresql", "pgx":
		return postgres, nil
	case "sqlite", "sqlite3":
		return sqlite, nil
	case "":
		if strings.HasPrefix(c.DSN, "jdbc:postgresql:") || strings.HasPrefix(c.DSN, "postgres") {
			return postgres, nil
		}
		return 0, fmt.Errorf("no driver given")
	default:
		return 0, fmt.Errorf("unsupported driver %q", c.Driver)
	}
}

// pgConfig parses the DSN and applies the credential overrides.
func (c Conn) pgConfig() (*pgx.ConnConfig, error) {
	cfg, err := pgx.ParseConfig(strings.TrimPrefix(c.DSN, "jdbc:"))
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	if c.User != "" {
		cfg.User = c.User
	}
	if c.Password != "" {
		cfg.Password = c.Password
	}
	return cfg, nil
}

func (c Conn) sqlitePath() string {
	dsn := strings.TrimPrefix(c.DSN, "jdbc:")
	return strings.TrimPrefix(dsn, "sqlite:")
}

// open connects and pings. The caller must Close the returned handle.
func open(ctx context.Context, c Conn) (*sql.DB, dialect, error) {
	d, err := c.dialect()
	if err != nil {
		return nil, 0, err
	}

	var db *sql.DB
	switch d {
	case postgres:
		cfg, err := c.pgConfig()
		if err != nil {
			return nil, d, err
		}
		db = stdlib.OpenDB(*cfg)
	case sqlite:
		db, err = sql.Open("sqlite3", c.sqlitePath())
		if err != nil {
			return nil, d, fmt.Errorf("open: %w", err)
		}
	}
	// One round trip per helper call; no pooling.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, d, fmt.Errorf("connect: %w", err)
	}
	return db, d, nil
}
