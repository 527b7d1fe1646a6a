package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/travelscape/internal/db"
	"github.com/alexanderramin/travelscape/internal/domain"
)

// SQLiteItineraryRepo implements ItineraryRepo on SQLite. Pass a *sql.DB
// for standalone reads or the DBTX from a UnitOfWork for a transactional
// Replace.
type SQLiteItineraryRepo struct {
	conn db.DBTX
}

// NewSQLiteItineraryRepo creates a new SQLiteItineraryRepo.
func NewSQLiteItineraryRepo(conn db.DBTX) *SQLiteItineraryRepo {
	return &SQLiteItineraryRepo{conn: conn}
}

func (r *SQLiteItineraryRepo) Load(ctx context.Context) ([]domain.Day, error) {
	days, index, err := r.loadDays(ctx)
	if err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return nil, nil
	}

	actIndex, err := r.loadActivities(ctx, days, index)
	if err != nil {
		return nil, err
	}
	if err := r.loadChecklists(ctx, days, index, actIndex); err != nil {
		return nil, err
	}
	return days, nil
}

// loadDays returns the ordered day list and a day id → slice index map.
func (r *SQLiteItineraryRepo) loadDays(ctx context.Context) ([]domain.Day, map[string]int, error) {
	rows, err := r.conn.QueryContext(ctx,
		`SELECT id, title FROM days ORDER BY position`)
	if err != nil {
		return nil, nil, fmt.Errorf("listing days: %w", err)
	}
	defer rows.Close()

	var days []domain.Day
	index := map[string]int{}
	for rows.Next() {
		var d domain.Day
		if err := rows.Scan(&d.ID, &d.Title); err != nil {
			return nil, nil, fmt.Errorf("scanning day: %w", err)
		}
		index[d.ID] = len(days)
		days = append(days, d)
	}
	return days, index, rows.Err()
}

// activityPos locates one loaded activity inside the day list.
type activityPos struct {
	day, idx int
}

func (r *SQLiteItineraryRepo) loadActivities(ctx context.Context, days []domain.Day, index map[string]int) (map[string]activityPos, error) {
	rows, err := r.conn.QueryContext(ctx,
		`SELECT id, day_id, title, time_start, time_end, location, notes, tags, type
		FROM activities ORDER BY day_id, position`)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()

	actIndex := map[string]activityPos{}
	for rows.Next() {
		var a domain.Activity
		var dayID, tagsJSON, typeStr string
		if err := rows.Scan(&a.ID, &dayID, &a.Title, &a.TimeStart, &a.TimeEnd,
			&a.Location, &a.Notes, &tagsJSON, &typeStr); err != nil {
			return nil, fmt.Errorf("scanning activity: %w", err)
		}
		a.Tags = decodeTags(tagsJSON)
		a.Type = domain.ActivityType(typeStr)

		i, ok := index[dayID]
		if !ok {
			continue // orphan row, skip rather than fail the load
		}
		actIndex[a.ID] = activityPos{day: i, idx: len(days[i].Activities)}
		days[i].Activities = append(days[i].Activities, a)
	}
	return actIndex, rows.Err()
}

func (r *SQLiteItineraryRepo) loadChecklists(ctx context.Context, days []domain.Day, index map[string]int, actIndex map[string]activityPos) error {
	rows, err := r.conn.QueryContext(ctx,
		`SELECT id, activity_id, text, completed FROM checklist_items ORDER BY activity_id, position`)
	if err != nil {
		return fmt.Errorf("listing checklist items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.ChecklistItem
		var activityID string
		var completed int
		if err := rows.Scan(&item.ID, &activityID, &item.Text, &completed); err != nil {
			return fmt.Errorf("scanning checklist item: %w", err)
		}
		item.Completed = intToBool(completed)

		pos, ok := actIndex[activityID]
		if !ok {
			continue
		}
		a := &days[pos.day].Activities[pos.idx]
		a.Checklist = append(a.Checklist, item)
	}
	return rows.Err()
}

// Replace swaps the stored snapshot for the given day list. Checklist and
// activity rows go via the day cascade; positions are reassigned from the
// slice order.
func (r *SQLiteItineraryRepo) Replace(ctx context.Context, days []domain.Day) error {
	if _, err := r.conn.ExecContext(ctx, `DELETE FROM days`); err != nil {
		return fmt.Errorf("clearing days: %w", err)
	}

	for pos, d := range days {
		if _, err := r.conn.ExecContext(ctx,
			`INSERT INTO days (id, title, position) VALUES (?, ?, ?)`,
			d.ID, d.Title, pos); err != nil {
			return fmt.Errorf("inserting day %s: %w", d.ID, err)
		}
		for apos, a := range d.Activities {
			if _, err := r.conn.ExecContext(ctx,
				`INSERT INTO activities (id, day_id, position, title, time_start, time_end, location, notes, tags, type)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				a.ID, d.ID, apos, a.Title, a.TimeStart, a.TimeEnd,
				a.Location, a.Notes, encodeTags(a.Tags), string(a.Type)); err != nil {
				return fmt.Errorf("inserting activity %s: %w", a.ID, err)
			}
			for cpos, item := range a.Checklist {
				if _, err := r.conn.ExecContext(ctx,
					`INSERT INTO checklist_items (id, activity_id, position, text, completed)
					VALUES (?, ?, ?, ?, ?)`,
					item.ID, a.ID, cpos, item.Text, boolToInt(item.Completed)); err != nil {
					return fmt.Errorf("inserting checklist item %s: %w", item.ID, err)
				}
			}
		}
	}
	return nil
}
