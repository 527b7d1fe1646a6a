package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/travelscape/internal/db"
	"github.com/alexanderramin/travelscape/internal/domain"
)

// SQLiteUndoRepo implements UndoRepo on SQLite. The slot holds at most one
// removed activity, serialized as JSON alongside its origin day id.
type SQLiteUndoRepo struct {
	conn db.DBTX
}

// NewSQLiteUndoRepo creates a new SQLiteUndoRepo.
func NewSQLiteUndoRepo(conn db.DBTX) *SQLiteUndoRepo {
	return &SQLiteUndoRepo{conn: conn}
}

func (r *SQLiteUndoRepo) Get(ctx context.Context) (string, domain.Activity, bool, error) {
	var dayID, payload string
	err := r.conn.QueryRowContext(ctx,
		`SELECT day_id, activity FROM undo_slot WHERE id = 1`).Scan(&dayID, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.Activity{}, false, nil
	}
	if err != nil {
		return "", domain.Activity{}, false, fmt.Errorf("reading undo slot: %w", err)
	}

	var a domain.Activity
	if err := json.Unmarshal([]byte(payload), &a); err != nil {
		// A corrupt slot is treated as empty, like other malformed rows.
		return "", domain.Activity{}, false, nil
	}
	return dayID, a, true, nil
}

func (r *SQLiteUndoRepo) Put(ctx context.Context, dayID string, activity domain.Activity) error {
	payload, err := json.Marshal(activity)
	if err != nil {
		return fmt.Errorf("encoding undo slot: %w", err)
	}
	_, err = r.conn.ExecContext(ctx,
		`INSERT INTO undo_slot (id, day_id, activity) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			day_id = excluded.day_id,
			activity = excluded.activity`,
		dayID, string(payload))
	if err != nil {
		return fmt.Errorf("writing undo slot: %w", err)
	}
	return nil
}

func (r *SQLiteUndoRepo) Clear(ctx context.Context) error {
	if _, err := r.conn.ExecContext(ctx, `DELETE FROM undo_slot`); err != nil {
		return fmt.Errorf("clearing undo slot: %w", err)
	}
	return nil
}
