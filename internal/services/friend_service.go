package services

import (
	"context"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/logger"
	"tripmate/pkg/utils"
)

type FriendService interface {
	List(ctx context.Context) ([]*db_models.Friend, error)
	AcceptedOf(ctx context.Context, userID string) ([]*db_models.Friend, error)
	Create(ctx context.Context, req request_models.FriendCreateRequest) (*db_models.Friend, error)
	Update(ctx context.Context, req request_models.FriendUpdateRequest) (*db_models.Friend, error)
	Delete(ctx context.Context, userID, friendID string) error
}

type friendService struct {
	friendRepo repositories.FriendRepository
	userRepo   repositories.UserRepository
}

func NewFriendService(
	friendRepo repositories.FriendRepository,
	userRepo repositories.UserRepository,
) FriendService {
	return &friendService{
		friendRepo: friendRepo,
		userRepo:   userRepo,
	}
}

func (s *friendService) List(ctx context.Context) ([]*db_models.Friend, error) {
	friends, err := s.friendRepo.List(ctx)
	if err != nil {
		logger.Log.Errorw("friendship listing failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return friends, nil
}

func (s *friendService) AcceptedOf(ctx context.Context, userID string) ([]*db_models.Friend, error) {
	friends, err := s.friendRepo.AcceptedOf(ctx, userID)
	if err != nil {
		logger.Log.Errorw("friendship lookup failed", "err", err, "user_id", userID)
		return nil, utils.ErrDatabaseError
	}
	if len(friends) == 0 {
		return nil, utils.ErrFriendshipNotFound
	}
	return friends, nil
}

// Create adds a pending edge. Both users must exist, self-friendship is
// rejected, and an edge in either direction counts as a duplicate.
func (s *friendService) Create(ctx context.Context, req request_models.FriendCreateRequest) (*db_models.Friend, error) {
	if req.UserID == req.FriendID {
		return nil, utils.ErrSelfFriendship
	}

	for _, id := range []string{req.UserID, req.FriendID} {
		user, err := s.userRepo.FindByID(ctx, id)
		if err != nil {
			logger.Log.Errorw("user lookup failed", "err", err)
			return nil, utils.ErrDatabaseError
		}
		if user == nil {
			return nil, utils.ErrUserNotFound
		}
	}

	existing, err := s.friendRepo.Find(ctx, req.UserID, req.FriendID)
	if err != nil {
		logger.Log.Errorw("friendship lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrFriendshipExists
	}

	friend := &db_models.Friend{
		UserID:   req.UserID,
		FriendID: req.FriendID,
		Accepted: false,
	}
	if err := s.friendRepo.Insert(ctx, friend); err != nil {
		logger.Log.Errorw("friendship create failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return friend, nil
}

func (s *friendService) Update(ctx context.Context, req request_models.FriendUpdateRequest) (*db_models.Friend, error) {
	existing, err := s.friendRepo.Find(ctx, req.UserID, req.FriendID)
	if err != nil {
		logger.Log.Errorw("friendship lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, utils.ErrFriendshipNotFound
	}

	existing.Accepted = req.Accepted
	if err := s.friendRepo.Update(ctx, existing); err != nil {
		logger.Log.Errorw("friendship update failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return existing, nil
}

func (s *friendService) Delete(ctx context.Context, userID, friendID string) error {
	existing, err := s.friendRepo.Find(ctx, userID, friendID)
	if err != nil {
		logger.Log.Errorw("friendship lookup failed", "err", err)
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrFriendshipNotFound
	}

	if err := s.friendRepo.Delete(ctx, userID, friendID); err != nil {
		logger.Log.Errorw("friendship delete failed", "err", err)
		return utils.ErrDatabaseError
	}
	return nil
}
