package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// schemaVersion is stored in PRAGMA user_version.
const schemaVersion = 1

// ErrSchemaTooNew is returned when the database was written by a newer release.
var ErrSchemaTooNew = errors.New("database schema is newer than this build")

const schema = `
CREATE TABLE IF NOT EXISTS notes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL DEFAULT '',
    content TEXT NOT NULL DEFAULT '',
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_notes_updated ON notes(updated_at DESC, id DESC);
`

// initSchema creates the notes table if needed and checks the stored version.
func initSchema(ctx context.Context, db *sql.DB) error {
	var version int
	if err := db.QueryRowContext(ctx, `PRAGMA user_version`).Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version > schemaVersion {
		return fmt.Errorf("%w: found %d, supported %d", ErrSchemaTooNew, version, schemaVersion)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, schema); err != nil {
		return err
	}
	if version < schemaVersion {
		// PRAGMA does not take bound parameters.
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// latestStamp returns the highest updated_at in the table, or 0 when empty.
func latestStamp(ctx context.Context, db *sql.DB) (int64, error) {
	var latest sql.NullInt64
	if err := db.QueryRowContext(ctx, `SELECT MAX(updated_at) FROM notes`).Scan(&latest); err != nil {
		return 0, err
	}
	return latest.Int64, nil
}
