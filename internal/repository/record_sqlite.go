package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// RecordSQLite is the durable RecordStore.
type RecordSQLite struct {
	db *sql.DB
}

func NewRecordSQLite(db *sql.DB) *RecordSQLite {
	return &RecordSQLite{db: db}
}

// Ensure implementation of RecordStore interface at compile time.
var _ RecordStore = (*RecordSQLite)(nil)

const (
	selectRecordsSQL = `SELECT body FROM records WHERE collection = ? ORDER BY position ASC`
	deleteRecordsSQL = `DELETE FROM records WHERE collection = ?`
	insertRecordSQL  = `INSERT INTO records (collection, position, body) VALUES (?, ?, ?)`

	selectValueSQL = `SELECT value FROM settings WHERE key = ?`
	upsertValueSQL = `
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value=excluded.value,
			updated_at=excluded.updated_at
	`
)

// ReadAll fetches the collection ordered by position.
func (r *RecordSQLite) ReadAll(ctx context.Context, collection string) ([]json.RawMessage, error) {
	rows, err := r.db.QueryContext(ctx, selectRecordsSQL, collection)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", collection, err)
	}
	defer rows.Close()

	out := make([]json.RawMessage, 0, 64)
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("scan %s: %w", collection, err)
		}
		out = append(out, json.RawMessage(body))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", collection, err)
	}
	return out, nil
}

// WriteAll replaces the collection inside a single transaction.
func (r *RecordSQLite) WriteAll(ctx context.Context, collection string, records []json.RawMessage) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin write %s: %w", collection, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, deleteRecordsSQL, collection); err != nil {
		return fmt.Errorf("clear %s: %w", collection, err)
	}
	for i, rec := range records {
		if _, err := tx.ExecContext(ctx, insertRecordSQL, collection, i, string(rec)); err != nil {
			return fmt.Errorf("insert %s record %d: %w", collection, i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit write %s: %w", collection, err)
	}
	return nil
}

// ReadValue returns ("", false, nil) when the key was never written.
func (r *RecordSQLite) ReadValue(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := r.db.QueryRowContext(ctx, selectValueSQL, key).Scan(&v)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("select setting %q: %w", key, err)
	}
	return v, true, nil
}

func (r *RecordSQLite) WriteValue(ctx context.Context, key, value string) error {
	if _, err := r.db.ExecContext(ctx, upsertValueSQL, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("upsert setting %q: %w", key, err)
	}
	return nil
}
