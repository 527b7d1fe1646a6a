package service

import (
	"context"
	"log"

	"github.com/alexanderramin/travelscape/internal/db"
	"github.com/alexanderramin/travelscape/internal/domain"
	"github.com/alexanderramin/travelscape/internal/planner"
	"github.com/alexanderramin/travelscape/internal/repository"
)

type itineraryService struct {
	itineraries repository.ItineraryRepo
	setups      repository.SetupRepo
	moods       repository.MoodRepo
	undos       repository.UndoRepo
	uow         db.UnitOfWork
}

func NewItineraryService(itineraries repository.ItineraryRepo, setups repository.SetupRepo, moods repository.MoodRepo, undos repository.UndoRepo, uow db.UnitOfWork) ItineraryService {
	return &itineraryService{itineraries: itineraries, setups: setups, moods: moods, undos: undos, uow: uow}
}

func (s *itineraryService) Load(ctx context.Context) planner.Snapshot {
	days, err := s.itineraries.Load(ctx)
	if err != nil {
		log.Printf("loading itinerary: %v (starting from defaults)", err)
		days = nil
	}
	if len(days) == 0 {
		days = s.defaultDays(ctx)
	}

	moods, err := s.moods.All(ctx)
	if err != nil {
		log.Printf("loading day moods: %v (continuing without)", err)
	}
	for i := range days {
		if m, ok := moods[days[i].ID]; ok {
			mood := m
			days[i].Mood = &mood
		}
	}
	return planner.NewSnapshot(days)
}

// defaultDays seeds empty days from the setup slot, or falls all the way
// back to the starter sample trip.
func (s *itineraryService) defaultDays(ctx context.Context) []domain.Day {
	setup, err := s.setups.Get(ctx)
	if err != nil {
		log.Printf("loading trip setup: %v (using sample trip)", err)
		return planner.SampleDays()
	}
	if setup == nil {
		return planner.SampleDays()
	}
	return planner.SeedDays(*setup)
}

func (s *itineraryService) Save(ctx context.Context, snap planner.Snapshot) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteItineraryRepo(tx).Replace(ctx, snap.Days)
	})
}

func (s *itineraryService) SetMood(ctx context.Context, dayID string, mood *domain.Mood) error {
	return s.moods.Set(ctx, dayID, mood)
}

func (s *itineraryService) StashRemoved(ctx context.Context, dayID string, a domain.Activity) error {
	return s.undos.Put(ctx, dayID, a)
}

func (s *itineraryService) RestoreRemoved(ctx context.Context, snap planner.Snapshot) (planner.Snapshot, domain.Activity, bool, error) {
	dayID, a, ok, err := s.undos.Get(ctx)
	if err != nil {
		return snap, domain.Activity{}, false, err
	}
	if !ok {
		return snap, domain.Activity{}, false, nil
	}

	var buf planner.UndoBuffer
	buf.Record(dayID, a)
	out, restored := buf.Undo(snap)
	if !restored {
		// Origin day vanished; the stash stays for a later snapshot.
		return snap, domain.Activity{}, false, nil
	}
	if err := s.undos.Clear(ctx); err != nil {
		return out, a, true, err
	}
	return out, a, true, nil
}
