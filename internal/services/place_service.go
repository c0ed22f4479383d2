package services

import (
	"context"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/logger"
	"tripmate/pkg/utils"
)

type PlaceService interface {
	List(ctx context.Context) ([]*db_models.Place, error)
	GetByID(ctx context.Context, id string) (*db_models.Place, error)
	GetBy(ctx context.Context, field repositories.PlaceLookupField, lookup string) ([]*db_models.Place, error)
	Search(ctx context.Context, query string) ([]*db_models.Place, error)
	Create(ctx context.Context, req request_models.PlaceCreateRequest) (*db_models.Place, error)
	Update(ctx context.Context, id string, req request_models.PlaceUpdateRequest) (*db_models.Place, error)
	Delete(ctx context.Context, id string) error

	Bookings(ctx context.Context, placeID string) ([]*db_models.Booking, error)
	Trips(ctx context.Context, placeID string) ([]*db_models.Trip, error)
}

type placeService struct {
	placeRepo repositories.PlaceRepository
}

func NewPlaceService(placeRepo repositories.PlaceRepository) PlaceService {
	return &placeService{placeRepo: placeRepo}
}

func (s *placeService) List(ctx context.Context) ([]*db_models.Place, error) {
	places, err := s.placeRepo.List(ctx)
	if err != nil {
		logger.Log.Errorw("place listing failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return places, nil
}

func (s *placeService) GetByID(ctx context.Context, id string) (*db_models.Place, error) {
	place, err := s.placeRepo.FindByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("place lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}
	return place, nil
}

func (s *placeService) GetBy(ctx context.Context, field repositories.PlaceLookupField, lookup string) ([]*db_models.Place, error) {
	places, err := s.placeRepo.FindBy(ctx, field, lookup)
	if err != nil {
		if err == utils.ErrInvalidInput {
			return nil, err
		}
		logger.Log.Errorw("place lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return places, nil
}

func (s *placeService) Search(ctx context.Context, query string) ([]*db_models.Place, error) {
	if query == "" {
		return nil, utils.ErrInvalidInput
	}
	places, err := s.placeRepo.Search(ctx, query)
	if err != nil {
		logger.Log.Errorw("place search failed", "err", err, "query", query)
		return nil, utils.ErrDatabaseError
	}
	return places, nil
}

func (s *placeService) Create(ctx context.Context, req request_models.PlaceCreateRequest) (*db_models.Place, error) {
	id, err := s.placeRepo.NextID(ctx)
	if err != nil {
		logger.Log.Errorw("place id generation failed", "err", err)
		return nil, utils.ErrDatabaseError
	}

	place := &db_models.Place{
		ID:          id,
		Name:        req.Name,
		Country:     req.Country,
		City:        req.City,
		Province:    req.Province,
		Address:     req.Address,
		Description: req.Description,
		Image:       req.Image,
		Rating:      req.Rating,
		Type:        req.Type,
	}

	if err := s.placeRepo.Insert(ctx, place); err != nil {
		logger.Log.Errorw("place create failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return place, nil
}

func (s *placeService) Update(ctx context.Context, id string, req request_models.PlaceUpdateRequest) (*db_models.Place, error) {
	place, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		place.Name = *req.Name
	}
	if req.Country != nil {
		place.Country = *req.Country
	}
	if req.City != nil {
		place.City = *req.City
	}
	if req.Province != nil {
		place.Province = *req.Province
	}
	if req.Address != nil {
		place.Address = *req.Address
	}
	if req.Description != nil {
		place.Description = *req.Description
	}
	if req.Image != nil {
		place.Image = *req.Image
	}
	if req.Rating != nil {
		place.Rating = *req.Rating
	}
	if req.Type != nil {
		place.Type = *req.Type
	}

	if err := s.placeRepo.Update(ctx, place); err != nil {
		logger.Log.Errorw("place update failed", "err", err, "place_id", id)
		return nil, utils.ErrDatabaseError
	}
	return place, nil
}

func (s *placeService) Delete(ctx context.Context, id string) error {
	place, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.placeRepo.Delete(ctx, place); err != nil {
		logger.Log.Errorw("place delete failed", "err", err, "place_id", id)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *placeService) Bookings(ctx context.Context, placeID string) ([]*db_models.Booking, error) {
	if _, err := s.GetByID(ctx, placeID); err != nil {
		return nil, err
	}
	bookings, err := s.placeRepo.BookingsOfPlace(ctx, placeID)
	if err != nil {
		logger.Log.Errorw("place bookings lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return bookings, nil
}

func (s *placeService) Trips(ctx context.Context, placeID string) ([]*db_models.Trip, error) {
	if _, err := s.GetByID(ctx, placeID); err != nil {
		return nil, err
	}
	trips, err := s.placeRepo.TripsOfPlace(ctx, placeID)
	if err != nil {
		logger.Log.Errorw("place trips lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return trips, nil
}
