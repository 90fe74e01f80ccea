package launchdb

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"launchdash.dev/internal/appconf"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

//go:embed schema.sql
var ddl string

// Client is the SQLite mirror of the launch records table.
type Client struct {
	config        Config
	DB            *sql.DB
	importRuntime time.Duration
}

// NewClient opens the database described by config and runs the schema migration.
func NewClient(config Config) (*Client, error) {
	db, err := createDB(config)
	if err != nil {
		return nil, err
	}

	if config.verbose {
		config.logger().Debug("launch database ready", "db_path", config.DBPath)
	}

	return &Client{
		config: config,
		DB:     db,
	}, nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}

// ImportRuntime reports how long the last ImportLaunches call took.
func (c *Client) ImportRuntime() time.Duration {
	return c.importRuntime
}

func createDB(config Config) (*sql.DB, error) {
	if config.DBPath == "" {
		return nil, errors.New("database path is required")
	}
	if config.Env == appconf.Test && config.DBPath != ":memory:" {
		return nil, fmt.Errorf("test database must use in-memory storage, got %q", config.DBPath)
	}

	db, err := sql.Open("sqlite", config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// every connection to ":memory:" is a separate database
	if config.DBPath == ":memory:" {
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := performDatabaseMigration(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error performing database migration: %w", err)
	}

	return db, nil
}

func performDatabaseMigration(ctx context.Context, db *sql.DB) error {
	for _, stmt := range strings.Split(ddl, "-- migrate") {
		trimmedStmt := strings.TrimSpace(stmt)
		if trimmedStmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, trimmedStmt); err != nil {
			return fmt.Errorf("error executing DDL statement [%s]: %w", trimmedStmt, err)
		}
	}
	return nil
}
