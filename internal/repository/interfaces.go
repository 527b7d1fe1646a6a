package repository

import (
	"context"

	"github.com/alexanderramin/travelscape/internal/domain"
)

// ItineraryRepo persists the full day snapshot. Load returns the days in
// board order with nested activities and checklists; Replace swaps every
// stored row for the given snapshot and is expected to run inside a
// UnitOfWork transaction.
type ItineraryRepo interface {
	Load(ctx context.Context) ([]domain.Day, error)
	Replace(ctx context.Context, days []domain.Day) error
}

// SetupRepo persists the single trip-setup slot. Get returns (nil, nil)
// when no setup has been saved yet.
type SetupRepo interface {
	Get(ctx context.Context) (*domain.TripSetup, error)
	Put(ctx context.Context, setup domain.TripSetup) error
}

// MoodRepo persists the per-day mood map, keyed by day id, parallel to the
// day snapshot. Set with a nil mood clears the entry.
type MoodRepo interface {
	All(ctx context.Context) (map[string]domain.Mood, error)
	Set(ctx context.Context, dayID string, mood *domain.Mood) error
}

// UndoRepo persists the single-slot removal buffer so a delete can be
// undone from a later process. Get returns ("", zero, nil) when the slot
// is empty; Put overwrites whatever is there.
type UndoRepo interface {
	Get(ctx context.Context) (dayID string, activity domain.Activity, ok bool, err error)
	Put(ctx context.Context, dayID string, activity domain.Activity) error
	Clear(ctx context.Context) error
}
