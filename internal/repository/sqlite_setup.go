package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/travelscape/internal/db"
	"github.com/alexanderramin/travelscape/internal/domain"
)

// SQLiteSetupRepo implements SetupRepo on SQLite. The slot is a single row
// with a fixed primary key, replaced wholesale on every Put.
type SQLiteSetupRepo struct {
	conn db.DBTX
}

// NewSQLiteSetupRepo creates a new SQLiteSetupRepo.
func NewSQLiteSetupRepo(conn db.DBTX) *SQLiteSetupRepo {
	return &SQLiteSetupRepo{conn: conn}
}

func (r *SQLiteSetupRepo) Get(ctx context.Context) (*domain.TripSetup, error) {
	var setup domain.TripSetup
	var tripType, startDate string
	err := r.conn.QueryRowContext(ctx,
		`SELECT destination, trip_type, number_of_days, start_date FROM trip_setup WHERE id = 1`,
	).Scan(&setup.Destination, &tripType, &setup.NumberOfDays, &startDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading trip setup: %w", err)
	}

	setup.TripType = domain.TripType(tripType)
	// A malformed stored date degrades to the zero time; the slot is
	// advisory and must never block startup.
	if t, perr := time.Parse(dateLayout, startDate); perr == nil {
		setup.StartDate = t
	}
	return &setup, nil
}

func (r *SQLiteSetupRepo) Put(ctx context.Context, setup domain.TripSetup) error {
	_, err := r.conn.ExecContext(ctx,
		`INSERT INTO trip_setup (id, destination, trip_type, number_of_days, start_date, updated_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			destination = excluded.destination,
			trip_type = excluded.trip_type,
			number_of_days = excluded.number_of_days,
			start_date = excluded.start_date,
			updated_at = excluded.updated_at`,
		setup.Destination, string(setup.TripType), setup.NumberOfDays,
		setup.StartDate.Format(dateLayout), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("writing trip setup: %w", err)
	}
	return nil
}
