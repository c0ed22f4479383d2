package services

import (
	"context"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/logger"
	"tripmate/pkg/utils"
)

type TripService interface {
	List(ctx context.Context, from, to, keyword string) ([]*db_models.Trip, error)
	GetByID(ctx context.Context, id string) (*db_models.Trip, error)
	GetByDate(ctx context.Context, field repositories.TripDateField, lookup string) ([]*db_models.Trip, error)
	Create(ctx context.Context, req request_models.TripCreateRequest) (*db_models.Trip, error)
	Update(ctx context.Context, id string, req request_models.TripUpdateRequest) (*db_models.Trip, error)
	Delete(ctx context.Context, id string) error

	Members(ctx context.Context, tripID string) ([]response_models.UserResponse, error)
	Reviewers(ctx context.Context, tripID string) ([]response_models.UserResponse, error)
	Places(ctx context.Context, tripID string) ([]*db_models.Place, error)
}

type tripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripService {
	return &tripService{tripRepo: tripRepo}
}

// List applies the optional date-range and keyword filters. Dates arrive in
// the DD/MM/YYYY HH:MM:SS wire format; empty strings mean unfiltered.
func (s *tripService) List(ctx context.Context, from, to, keyword string) ([]*db_models.Trip, error) {
	var filter repositories.TripFilter
	if from != "" {
		t, err := utils.ParseDateTime(from)
		if err != nil {
			return nil, err
		}
		filter.From = &t
	}
	if to != "" {
		t, err := utils.ParseDateTime(to)
		if err != nil {
			return nil, err
		}
		filter.To = &t
	}
	filter.Keyword = keyword

	trips, err := s.tripRepo.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("trip listing failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return trips, nil
}

func (s *tripService) GetByID(ctx context.Context, id string) (*db_models.Trip, error) {
	trip, err := s.tripRepo.FindByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("trip lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}

func (s *tripService) GetByDate(ctx context.Context, field repositories.TripDateField, lookup string) ([]*db_models.Trip, error) {
	at, err := utils.ParseDateTime(lookup)
	if err != nil {
		return nil, err
	}
	trips, err := s.tripRepo.FindByDate(ctx, field, at)
	if err != nil {
		logger.Log.Errorw("trip date lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return trips, nil
}

func (s *tripService) Create(ctx context.Context, req request_models.TripCreateRequest) (*db_models.Trip, error) {
	id, err := s.tripRepo.NextID(ctx)
	if err != nil {
		logger.Log.Errorw("trip id generation failed", "err", err)
		return nil, utils.ErrDatabaseError
	}

	trip := &db_models.Trip{
		ID:        id,
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}

	if err := s.tripRepo.Insert(ctx, trip); err != nil {
		logger.Log.Errorw("trip create failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return trip, nil
}

func (s *tripService) Update(ctx context.Context, id string, req request_models.TripUpdateRequest) (*db_models.Trip, error) {
	trip, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		trip.Name = *req.Name
	}
	if req.StartDate != nil {
		trip.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		trip.EndDate = req.EndDate
	}

	if err := s.tripRepo.Update(ctx, trip); err != nil {
		logger.Log.Errorw("trip update failed", "err", err, "trip_id", id)
		return nil, utils.ErrDatabaseError
	}
	return trip, nil
}

func (s *tripService) Delete(ctx context.Context, id string) error {
	trip, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.tripRepo.Delete(ctx, trip); err != nil {
		logger.Log.Errorw("trip delete failed", "err", err, "trip_id", id)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *tripService) Members(ctx context.Context, tripID string) ([]response_models.UserResponse, error) {
	if _, err := s.GetByID(ctx, tripID); err != nil {
		return nil, err
	}
	users, err := s.tripRepo.Members(ctx, tripID)
	if err != nil {
		logger.Log.Errorw("trip members lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return response_models.NewUserResponses(users), nil
}

func (s *tripService) Reviewers(ctx context.Context, tripID string) ([]response_models.UserResponse, error) {
	if _, err := s.GetByID(ctx, tripID); err != nil {
		return nil, err
	}
	users, err := s.tripRepo.Reviewers(ctx, tripID)
	if err != nil {
		logger.Log.Errorw("trip reviewers lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return response_models.NewUserResponses(users), nil
}

func (s *tripService) Places(ctx context.Context, tripID string) ([]*db_models.Place, error) {
	if _, err := s.GetByID(ctx, tripID); err != nil {
		return nil, err
	}
	places, err := s.tripRepo.Places(ctx, tripID)
	if err != nil {
		logger.Log.Errorw("trip places lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return places, nil
}
