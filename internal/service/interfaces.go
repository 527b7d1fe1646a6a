package service

import (
	"context"

	"github.com/alexanderramin/travelscape/internal/domain"
	"github.com/alexanderramin/travelscape/internal/planner"
)

// ItineraryService loads and saves the board snapshot. The in-memory
// snapshot is the authority for the session; persistence is an explicit,
// best-effort side channel that never blocks or rolls back a board edit.
type ItineraryService interface {
	// Load returns the saved snapshot, with day moods merged in. With no
	// saved days it falls back to days seeded from the setup slot, or to
	// the starter sample trip when no setup exists either. Storage
	// failures are logged and degrade to the same fallbacks.
	Load(ctx context.Context) planner.Snapshot

	// Save replaces the stored snapshot in one transaction.
	Save(ctx context.Context, snap planner.Snapshot) error

	// SetMood writes one entry of the parallel mood slot.
	SetMood(ctx context.Context, dayID string, mood *domain.Mood) error

	// StashRemoved persists a just-deleted activity into the single undo
	// slot, overwriting any earlier stash.
	StashRemoved(ctx context.Context, dayID string, a domain.Activity) error

	// RestoreRemoved re-appends the stashed activity to the end of its
	// origin day as it exists in snap and clears the slot. The bool is
	// false when the slot is empty or the origin day is gone; a vanished
	// day keeps the stash in place.
	RestoreRemoved(ctx context.Context, snap planner.Snapshot) (planner.Snapshot, domain.Activity, bool, error)
}

// SetupService manages the trip-setup slot.
type SetupService interface {
	// Get returns the saved setup, or the default sample trip when the
	// slot is absent or unreadable.
	Get(ctx context.Context) domain.TripSetup

	// Put validates and saves the setup.
	Put(ctx context.Context, setup domain.TripSetup) error
}

// ExportService renders the itinerary as a downloadable text document.
type ExportService interface {
	Render(destination string, days []domain.Day) string
}
