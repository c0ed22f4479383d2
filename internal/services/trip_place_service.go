package services

import (
	"context"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/logger"
	"tripmate/pkg/utils"
)

type TripPlaceService interface {
	List(ctx context.Context) ([]*db_models.TripPlace, error)
	GetByID(ctx context.Context, id string) (*db_models.TripPlace, error)
	GetBy(ctx context.Context, field repositories.TripPlaceLookupField, lookup string) ([]*db_models.TripPlace, error)
	Create(ctx context.Context, req request_models.TripPlaceCreateRequest) (*db_models.TripPlace, error)
	Update(ctx context.Context, id string, req request_models.TripPlaceUpdateRequest) (*db_models.TripPlace, error)
	Delete(ctx context.Context, id string) error
}

type tripPlaceService struct {
	tripPlaceRepo repositories.TripPlaceRepository
	placeRepo     repositories.PlaceRepository
	tripRepo      repositories.TripRepository
}

func NewTripPlaceService(
	tripPlaceRepo repositories.TripPlaceRepository,
	placeRepo repositories.PlaceRepository,
	tripRepo repositories.TripRepository,
) TripPlaceService {
	return &tripPlaceService{
		tripPlaceRepo: tripPlaceRepo,
		placeRepo:     placeRepo,
		tripRepo:      tripRepo,
	}
}

func (s *tripPlaceService) List(ctx context.Context) ([]*db_models.TripPlace, error) {
	entries, err := s.tripPlaceRepo.List(ctx)
	if err != nil {
		logger.Log.Errorw("itinerary listing failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return entries, nil
}

func (s *tripPlaceService) GetByID(ctx context.Context, id string) (*db_models.TripPlace, error) {
	entry, err := s.tripPlaceRepo.FindByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("itinerary lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	if entry == nil {
		return nil, utils.ErrTripPlaceNotFound
	}
	return entry, nil
}

func (s *tripPlaceService) GetBy(ctx context.Context, field repositories.TripPlaceLookupField, lookup string) ([]*db_models.TripPlace, error) {
	entries, err := s.tripPlaceRepo.FindBy(ctx, field, lookup)
	if err != nil {
		logger.Log.Errorw("itinerary lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return entries, nil
}

func (s *tripPlaceService) Create(ctx context.Context, req request_models.TripPlaceCreateRequest) (*db_models.TripPlace, error) {
	place, err := s.placeRepo.FindByID(ctx, req.PlaceID)
	if err != nil {
		logger.Log.Errorw("place lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}

	trip, err := s.tripRepo.FindByID(ctx, req.TripID)
	if err != nil {
		logger.Log.Errorw("trip lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	id, err := s.tripPlaceRepo.NextID(ctx)
	if err != nil {
		logger.Log.Errorw("itinerary id generation failed", "err", err)
		return nil, utils.ErrDatabaseError
	}

	entry := &db_models.TripPlace{
		ID:        id,
		PlaceID:   req.PlaceID,
		TripID:    req.TripID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Note:      req.Note,
	}

	if err := s.tripPlaceRepo.Insert(ctx, entry); err != nil {
		logger.Log.Errorw("itinerary create failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return entry, nil
}

func (s *tripPlaceService) Update(ctx context.Context, id string, req request_models.TripPlaceUpdateRequest) (*db_models.TripPlace, error) {
	entry, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.StartTime != nil {
		entry.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		entry.EndTime = *req.EndTime
	}
	if req.Note != nil {
		entry.Note = *req.Note
	}

	if err := s.tripPlaceRepo.Update(ctx, entry); err != nil {
		logger.Log.Errorw("itinerary update failed", "err", err, "entry_id", id)
		return nil, utils.ErrDatabaseError
	}
	return entry, nil
}

func (s *tripPlaceService) Delete(ctx context.Context, id string) error {
	entry, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.tripPlaceRepo.Delete(ctx, entry); err != nil {
		logger.Log.Errorw("itinerary delete failed", "err", err, "entry_id", id)
		return utils.ErrDatabaseError
	}
	return nil
}
