package service

import (
	"context"
	"log"

	"github.com/alexanderramin/travelscape/internal/domain"
	"github.com/alexanderramin/travelscape/internal/repository"
)

type setupService struct {
	setups repository.SetupRepo
}

func NewSetupService(setups repository.SetupRepo) SetupService {
	return &setupService{setups: setups}
}

func (s *setupService) Get(ctx context.Context) domain.TripSetup {
	setup, err := s.setups.Get(ctx)
	if err != nil {
		log.Printf("loading trip setup: %v (using default)", err)
		return domain.DefaultTripSetup()
	}
	if setup == nil {
		return domain.DefaultTripSetup()
	}
	return *setup
}

func (s *setupService) Put(ctx context.Context, setup domain.TripSetup) error {
	if err := setup.Validate(); err != nil {
		return err
	}
	return s.setups.Put(ctx, setup)
}
