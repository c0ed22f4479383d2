package services

import (
	"context"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/logger"
	"tripmate/pkg/utils"
)

type ReviewService interface {
	List(ctx context.Context) ([]*db_models.Review, error)
	GetByID(ctx context.Context, id string) (*db_models.Review, error)
	GetBy(ctx context.Context, field repositories.ReviewLookupField, lookup string) ([]*db_models.Review, error)
	Top(ctx context.Context, limit int) ([]*db_models.Review, error)
	Create(ctx context.Context, userID string, req request_models.ReviewCreateRequest) (*db_models.Review, error)
	Delete(ctx context.Context, id string) error
}

type reviewService struct {
	reviewRepo repositories.ReviewRepository
	tripRepo   repositories.TripRepository
	userRepo   repositories.UserRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	tripRepo repositories.TripRepository,
	userRepo repositories.UserRepository,
) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		tripRepo:   tripRepo,
		userRepo:   userRepo,
	}
}

func (s *reviewService) List(ctx context.Context) ([]*db_models.Review, error) {
	reviews, err := s.reviewRepo.List(ctx)
	if err != nil {
		logger.Log.Errorw("review listing failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return reviews, nil
}

func (s *reviewService) GetByID(ctx context.Context, id string) (*db_models.Review, error) {
	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("review lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	if review == nil {
		return nil, utils.ErrReviewNotFound
	}
	return review, nil
}

func (s *reviewService) GetBy(ctx context.Context, field repositories.ReviewLookupField, lookup string) ([]*db_models.Review, error) {
	reviews, err := s.reviewRepo.FindBy(ctx, field, lookup)
	if err != nil {
		if err == utils.ErrInvalidInput {
			return nil, err
		}
		logger.Log.Errorw("review lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return reviews, nil
}

func (s *reviewService) Top(ctx context.Context, limit int) ([]*db_models.Review, error) {
	if limit <= 0 {
		limit = 10
	}
	reviews, err := s.reviewRepo.Top(ctx, limit)
	if err != nil {
		logger.Log.Errorw("top reviews lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return reviews, nil
}

// Create enforces one review per user per trip.
func (s *reviewService) Create(ctx context.Context, userID string, req request_models.ReviewCreateRequest) (*db_models.Review, error) {
	trip, err := s.tripRepo.FindByID(ctx, req.TripID)
	if err != nil {
		logger.Log.Errorw("trip lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("user lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	existing, err := s.reviewRepo.FindByTripAndUser(ctx, req.TripID, userID)
	if err != nil {
		logger.Log.Errorw("review lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrAlreadyReviewed
	}

	id, err := s.reviewRepo.NextID(ctx)
	if err != nil {
		logger.Log.Errorw("review id generation failed", "err", err)
		return nil, utils.ErrDatabaseError
	}

	review := &db_models.Review{
		ID:      id,
		TripID:  req.TripID,
		UserID:  userID,
		Comment: req.Comment,
		Rating:  req.Rating,
	}

	if err := s.reviewRepo.Insert(ctx, review); err != nil {
		logger.Log.Errorw("review create failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return review, nil
}

func (s *reviewService) Delete(ctx context.Context, id string) error {
	review, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.reviewRepo.Delete(ctx, review); err != nil {
		logger.Log.Errorw("review delete failed", "err", err, "review_id", id)
		return utils.ErrDatabaseError
	}
	return nil
}
