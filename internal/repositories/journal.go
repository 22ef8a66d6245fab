package repositories

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/myrjola/detectivequest/internal/models"
	"github.com/myrjola/detectivequest/internal/sqlite"
)

// JournalRepository records what happened during a session so the final report can retrace it.
type JournalRepository struct {
	dbs    *sqlite.Database
	logger *slog.Logger
}

func NewJournalRepository(dbs *sqlite.Database, logger *slog.Logger) *JournalRepository {
	return &JournalRepository{
		dbs:    dbs,
		logger: logger.With("source", "JournalRepository"),
	}
}

// StartSession registers a session. Entries can only be recorded for registered sessions.
func (r *JournalRepository) StartSession(ctx context.Context, sessionID string, caseTitle string) error {
	stmt := `INSERT INTO sessions (id, case_title) VALUES (?, ?)`
	if _, err := r.dbs.DB.ExecContext(ctx, stmt, sessionID, caseTitle); err != nil {
		return errors.Wrap(err, "insert session", slog.String("sessionID", sessionID))
	}
	return nil
}

// Record appends entry to the end of the session's journal. The order of the entry is one past the last
// recorded entry and the Order field of entry is ignored.
func (r *JournalRepository) Record(ctx context.Context, sessionID string, entry models.JournalEntry) error {
	stmt := `INSERT INTO turns (session_id, "order", kind, room, clue, suspect)
VALUES (@session_id,
        (SELECT COALESCE(MAX("order") + 1, 0) FROM turns WHERE session_id = @session_id),
        @kind, @room, @clue, @suspect)`
	params := []any{
		sql.Named("session_id", sessionID),
		sql.Named("kind", entry.Kind),
		sql.Named("room", entry.Room),
		sql.Named("clue", entry.Clue),
		sql.Named("suspect", entry.Suspect),
	}
	if _, err := r.dbs.DB.ExecContext(ctx, stmt, params...); err != nil {
		return errors.Wrap(err, "insert turn", slog.String("kind", entry.Kind))
	}
	return nil
}

// Entries returns the whole journal of the session in recording order.
func (r *JournalRepository) Entries(ctx context.Context, sessionID string) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	stmt := `SELECT "order", kind, room, clue, suspect FROM turns WHERE session_id = ? ORDER BY "order"`
	if err := r.dbs.DB.SelectContext(ctx, &entries, stmt, sessionID); err != nil {
		return nil, errors.Wrap(err, "select turns")
	}
	return entries, nil
}

// RoomsEntered returns the rooms the detective walked into, in order, counting revisits.
func (r *JournalRepository) RoomsEntered(ctx context.Context, sessionID string, enteredKind string) ([]string, error) {
	var rooms []string
	stmt := `SELECT room FROM turns WHERE session_id = ? AND kind = ? ORDER BY "order"`
	if err := r.dbs.DB.SelectContext(ctx, &rooms, stmt, sessionID, enteredKind); err != nil {
		return nil, errors.Wrap(err, "select rooms entered")
	}
	return rooms, nil
}
