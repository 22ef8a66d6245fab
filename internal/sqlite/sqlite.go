package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	_ "embed"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // Enable sqlite3 driver
	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/myrjola/detectivequest/internal/random"
)

//go:embed schema.sql
var schemaDefinition string

// Database is a private in-memory SQLite database. Nothing is written to disk and the data is gone once
// the database is closed.
type Database struct {
	DB     *sqlx.DB
	logger *slog.Logger
}

// NewDatabase creates a fresh in-memory database with the schema applied.
//
// Every database gets a random name so that parallel tests never share data.
// See https://www.sqlite.org/inmemorydb.html.
func NewDatabase(ctx context.Context, logger *slog.Logger) (*Database, error) {
	var (
		err          error
		randomID     string
		dbNameLength uint = 20
		db           *sqlx.DB
	)
	if randomID, err = random.Letters(dbNameLength); err != nil {
		return nil, errors.Wrap(err, "generate random ID")
	}

	config := strings.Join([]string{
		"mode=memory",
		"cache=shared",
		// Enables foreign key constraints.
		"_foreign_keys=on",
		"_busy_timeout=5000",
		"_txlock=immediate",
	}, "&")

	// The options prefixed with underscore '_' are SQLite pragmas documented at https://www.sqlite.org/pragma.html.
	// The options without leading underscore are SQLite URI parameters documented at https://www.sqlite.org/uri.html.
	if db, err = sqlx.ConnectContext(ctx, "sqlite3", fmt.Sprintf("file:%s?%s", randomID, config)); err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	// The in-memory database lives as long as one connection is open, so the single connection is never
	// recycled.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if _, err = db.ExecContext(ctx, schemaDefinition); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "initialize schema")
	}

	return &Database{
		DB:     db,
		logger: logger.With("source", "Database"),
	}, nil
}

// Close releases the connection and with it all data.
func (db *Database) Close(ctx context.Context) error {
	if err := db.DB.Close(); err != nil {
		return errors.Wrap(err, "close database")
	}
	db.logger.LogAttrs(ctx, slog.LevelDebug, "closed database")
	return nil
}
