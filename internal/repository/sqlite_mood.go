package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/travelscape/internal/db"
	"github.com/alexanderramin/travelscape/internal/domain"
)

// SQLiteMoodRepo implements MoodRepo on SQLite.
type SQLiteMoodRepo struct {
	conn db.DBTX
}

// NewSQLiteMoodRepo creates a new SQLiteMoodRepo.
func NewSQLiteMoodRepo(conn db.DBTX) *SQLiteMoodRepo {
	return &SQLiteMoodRepo{conn: conn}
}

func (r *SQLiteMoodRepo) All(ctx context.Context) (map[string]domain.Mood, error) {
	rows, err := r.conn.QueryContext(ctx,
		`SELECT day_id, emoji, label, gradient FROM day_moods`)
	if err != nil {
		return nil, fmt.Errorf("listing day moods: %w", err)
	}
	defer rows.Close()

	moods := map[string]domain.Mood{}
	for rows.Next() {
		var dayID string
		var m domain.Mood
		if err := rows.Scan(&dayID, &m.Emoji, &m.Label, &m.Gradient); err != nil {
			return nil, fmt.Errorf("scanning day mood: %w", err)
		}
		moods[dayID] = m
	}
	return moods, rows.Err()
}

func (r *SQLiteMoodRepo) Set(ctx context.Context, dayID string, mood *domain.Mood) error {
	if mood == nil {
		if _, err := r.conn.ExecContext(ctx,
			`DELETE FROM day_moods WHERE day_id = ?`, dayID); err != nil {
			return fmt.Errorf("clearing day mood: %w", err)
		}
		return nil
	}
	_, err := r.conn.ExecContext(ctx,
		`INSERT INTO day_moods (day_id, emoji, label, gradient)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (day_id) DO UPDATE SET
			emoji = excluded.emoji,
			label = excluded.label,
			gradient = excluded.gradient`,
		dayID, mood.Emoji, mood.Label, mood.Gradient)
	if err != nil {
		return fmt.Errorf("writing day mood: %w", err)
	}
	return nil
}
