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

type BookingService interface {
	ListByUser(ctx context.Context, userID string) ([]*db_models.Booking, error)
	GetByID(ctx context.Context, id string) (*db_models.Booking, error)
	GetBy(ctx context.Context, field repositories.BookingLookupField, lookup string) ([]*db_models.Booking, error)
	Create(ctx context.Context, userID string, req request_models.BookingCreateRequest) (*db_models.Booking, error)
	Update(ctx context.Context, id string, req request_models.BookingUpdateRequest) (*db_models.Booking, error)
	Delete(ctx context.Context, id string) error

	Owners(ctx context.Context, bookingID string) ([]response_models.UserResponse, error)
	Place(ctx context.Context, bookingID string) (*db_models.Place, error)
}

type bookingService struct {
	bookingRepo repositories.BookingRepository
	placeRepo   repositories.PlaceRepository
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	placeRepo repositories.PlaceRepository,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		placeRepo:   placeRepo,
	}
}

func (s *bookingService) ListByUser(ctx context.Context, userID string) ([]*db_models.Booking, error) {
	bookings, err := s.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("booking listing failed", "err", err, "user_id", userID)
		return nil, utils.ErrDatabaseError
	}
	return bookings, nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*db_models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("booking lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	if booking == nil {
		return nil, utils.ErrBookingNotFound
	}
	return booking, nil
}

func (s *bookingService) GetBy(ctx context.Context, field repositories.BookingLookupField, lookup string) ([]*db_models.Booking, error) {
	bookings, err := s.bookingRepo.FindBy(ctx, field, lookup)
	if err != nil {
		if err == utils.ErrInvalidDateFormat {
			return nil, err
		}
		logger.Log.Errorw("booking lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return bookings, nil
}

// Create verifies the place, then writes the booking and the caller's owner
// row in one transaction.
func (s *bookingService) Create(ctx context.Context, userID string, req request_models.BookingCreateRequest) (*db_models.Booking, error) {
	place, err := s.placeRepo.FindByID(ctx, req.PlaceID)
	if err != nil {
		logger.Log.Errorw("place lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}

	id, err := s.bookingRepo.NextID(ctx)
	if err != nil {
		logger.Log.Errorw("booking id generation failed", "err", err)
		return nil, utils.ErrDatabaseError
	}

	booking := &db_models.Booking{
		ID:      id,
		PlaceID: req.PlaceID,
		Date:    req.Date,
		Status:  req.Status,
	}
	owner := &db_models.BookingOwner{UserID: userID, BookingID: id}

	if err := s.bookingRepo.CreateWithOwner(ctx, booking, owner); err != nil {
		logger.Log.Errorw("booking create failed", "err", err, "user_id", userID)
		return nil, utils.ErrDatabaseError
	}
	return booking, nil
}

func (s *bookingService) Update(ctx context.Context, id string, req request_models.BookingUpdateRequest) (*db_models.Booking, error) {
	booking, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PlaceID != booking.PlaceID {
		place, err := s.placeRepo.FindByID(ctx, req.PlaceID)
		if err != nil {
			logger.Log.Errorw("place lookup failed", "err", err)
			return nil, utils.ErrDatabaseError
		}
		if place == nil {
			return nil, utils.ErrPlaceNotFound
		}
		booking.PlaceID = req.PlaceID
	}
	if req.Date != nil {
		booking.Date = *req.Date
	}
	if req.Status != nil {
		booking.Status = *req.Status
	}

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		logger.Log.Errorw("booking update failed", "err", err, "booking_id", id)
		return nil, utils.ErrDatabaseError
	}
	return booking, nil
}

func (s *bookingService) Delete(ctx context.Context, id string) error {
	booking, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.bookingRepo.Delete(ctx, booking); err != nil {
		logger.Log.Errorw("booking delete failed", "err", err, "booking_id", id)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *bookingService) Owners(ctx context.Context, bookingID string) ([]response_models.UserResponse, error) {
	if _, err := s.GetByID(ctx, bookingID); err != nil {
		return nil, err
	}
	users, err := s.bookingRepo.Owners(ctx, bookingID)
	if err != nil {
		logger.Log.Errorw("booking owners lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return response_models.NewUserResponses(users), nil
}

func (s *bookingService) Place(ctx context.Context, bookingID string) (*db_models.Place, error) {
	if _, err := s.GetByID(ctx, bookingID); err != nil {
		return nil, err
	}
	place, err := s.bookingRepo.PlaceOf(ctx, bookingID)
	if err != nil {
		logger.Log.Errorw("booking place lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}
	return place, nil
}
