package services

import (
	"context"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/logger"
	"tripmate/pkg/utils"
)

type BookingOwnerService interface {
	List(ctx context.Context) ([]*db_models.BookingOwner, error)
	Get(ctx context.Context, userID, bookingID string) (*db_models.BookingOwner, error)
	GetBy(ctx context.Context, field repositories.BookingOwnerLookupField, lookup string) ([]*db_models.BookingOwner, error)
	Create(ctx context.Context, req request_models.BookingOwnerRequest) (*db_models.BookingOwner, error)
	Delete(ctx context.Context, userID, bookingID string) error
}

type bookingOwnerService struct {
	ownerRepo   repositories.BookingOwnerRepository
	userRepo    repositories.UserRepository
	bookingRepo repositories.BookingRepository
}

func NewBookingOwnerService(
	ownerRepo repositories.BookingOwnerRepository,
	userRepo repositories.UserRepository,
	bookingRepo repositories.BookingRepository,
) BookingOwnerService {
	return &bookingOwnerService{
		ownerRepo:   ownerRepo,
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
	}
}

func (s *bookingOwnerService) List(ctx context.Context) ([]*db_models.BookingOwner, error) {
	owners, err := s.ownerRepo.List(ctx)
	if err != nil {
		logger.Log.Errorw("booking owner listing failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return owners, nil
}

func (s *bookingOwnerService) Get(ctx context.Context, userID, bookingID string) (*db_models.BookingOwner, error) {
	owner, err := s.ownerRepo.Find(ctx, userID, bookingID)
	if err != nil {
		logger.Log.Errorw("booking owner lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	if owner == nil {
		return nil, utils.ErrBookingOwnerNotFound
	}
	return owner, nil
}

func (s *bookingOwnerService) GetBy(ctx context.Context, field repositories.BookingOwnerLookupField, lookup string) ([]*db_models.BookingOwner, error) {
	owners, err := s.ownerRepo.FindBy(ctx, field, lookup)
	if err != nil {
		logger.Log.Errorw("booking owner lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return owners, nil
}

func (s *bookingOwnerService) Create(ctx context.Context, req request_models.BookingOwnerRequest) (*db_models.BookingOwner, error) {
	user, err := s.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		logger.Log.Errorw("user lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	booking, err := s.bookingRepo.FindByID(ctx, req.BookingID)
	if err != nil {
		logger.Log.Errorw("booking lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	if booking == nil {
		return nil, utils.ErrBookingNotFound
	}

	existing, err := s.ownerRepo.Find(ctx, req.UserID, req.BookingID)
	if err != nil {
		logger.Log.Errorw("booking owner lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrAlreadyExists
	}

	owner := &db_models.BookingOwner{UserID: req.UserID, BookingID: req.BookingID}
	if err := s.ownerRepo.Insert(ctx, owner); err != nil {
		logger.Log.Errorw("booking owner create failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return owner, nil
}

func (s *bookingOwnerService) Delete(ctx context.Context, userID, bookingID string) error {
	if _, err := s.Get(ctx, userID, bookingID); err != nil {
		return err
	}
	if err := s.ownerRepo.Delete(ctx, userID, bookingID); err != nil {
		logger.Log.Errorw("booking owner delete failed", "err", err)
		return utils.ErrDatabaseError
	}
	return nil
}
