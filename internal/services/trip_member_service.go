package services

import (
	"context"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/logger"
	"tripmate/pkg/utils"
)

type TripMemberService interface {
	List(ctx context.Context) ([]*db_models.TripMember, error)
	Get(ctx context.Context, userID, tripID string) (*db_models.TripMember, error)
	GetBy(ctx context.Context, field repositories.TripMemberLookupField, lookup string) ([]*db_models.TripMember, error)
	Create(ctx context.Context, req request_models.TripMemberRequest) (*db_models.TripMember, error)
	Delete(ctx context.Context, userID, tripID string) error
}

type tripMemberService struct {
	memberRepo repositories.TripMemberRepository
	userRepo   repositories.UserRepository
	tripRepo   repositories.TripRepository
}

func NewTripMemberService(
	memberRepo repositories.TripMemberRepository,
	userRepo repositories.UserRepository,
	tripRepo repositories.TripRepository,
) TripMemberService {
	return &tripMemberService{
		memberRepo: memberRepo,
		userRepo:   userRepo,
		tripRepo:   tripRepo,
	}
}

func (s *tripMemberService) List(ctx context.Context) ([]*db_models.TripMember, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		logger.Log.Errorw("trip member listing failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return members, nil
}

func (s *tripMemberService) Get(ctx context.Context, userID, tripID string) (*db_models.TripMember, error) {
	member, err := s.memberRepo.Find(ctx, userID, tripID)
	if err != nil {
		logger.Log.Errorw("trip member lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, utils.ErrTripMemberNotFound
	}
	return member, nil
}

func (s *tripMemberService) GetBy(ctx context.Context, field repositories.TripMemberLookupField, lookup string) ([]*db_models.TripMember, error) {
	members, err := s.memberRepo.FindBy(ctx, field, lookup)
	if err != nil {
		logger.Log.Errorw("trip member lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return members, nil
}

// Create requires both sides of the edge to exist and rejects duplicates.
func (s *tripMemberService) Create(ctx context.Context, req request_models.TripMemberRequest) (*db_models.TripMember, error) {
	user, err := s.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		logger.Log.Errorw("user lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	trip, err := s.tripRepo.FindByID(ctx, req.TripID)
	if err != nil {
		logger.Log.Errorw("trip lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	existing, err := s.memberRepo.Find(ctx, req.UserID, req.TripID)
	if err != nil {
		logger.Log.Errorw("trip member lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrAlreadyExists
	}

	member := &db_models.TripMember{UserID: req.UserID, TripID: req.TripID}
	if err := s.memberRepo.Insert(ctx, member); err != nil {
		logger.Log.Errorw("trip member create failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return member, nil
}

func (s *tripMemberService) Delete(ctx context.Context, userID, tripID string) error {
	if _, err := s.Get(ctx, userID, tripID); err != nil {
		return err
	}
	if err := s.memberRepo.Delete(ctx, userID, tripID); err != nil {
		logger.Log.Errorw("trip member delete failed", "err", err)
		return utils.ErrDatabaseError
	}
	return nil
}
