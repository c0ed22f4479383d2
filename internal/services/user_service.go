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

type UserService interface {
	List(ctx context.Context) ([]response_models.UserResponse, error)
	GetByID(ctx context.Context, id string) (*response_models.UserResponse, error)
	GetBy(ctx context.Context, field repositories.UserLookupField, lookup string) (*response_models.UserResponse, error)
	Create(ctx context.Context, req request_models.CreateUserRequest) (*response_models.UserResponse, error)
	Update(ctx context.Context, id string, req request_models.UpdateUserRequest) (*response_models.UserResponse, error)
	Delete(ctx context.Context, id string) error

	Trips(ctx context.Context, userID string) ([]*db_models.Trip, error)
	Bookings(ctx context.Context, userID string) ([]*db_models.Booking, error)
	FriendRequestsOf(ctx context.Context, userID string) ([]response_models.UserResponse, error)
	FriendRequestsTo(ctx context.Context, userID string) ([]response_models.UserResponse, error)
	ReviewedTrips(ctx context.Context, userID string) ([]*db_models.Trip, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List(ctx context.Context) ([]response_models.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		logger.Log.Errorw("user listing failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return response_models.NewUserResponses(users), nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*response_models.UserResponse, error) {
	return s.GetBy(ctx, repositories.UserByID, id)
}

func (s *userService) GetBy(ctx context.Context, field repositories.UserLookupField, lookup string) (*response_models.UserResponse, error) {
	user, err := s.userRepo.FindBy(ctx, field, lookup)
	if err != nil {
		logger.Log.Errorw("user lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	resp := response_models.NewUserResponse(user)
	return &resp, nil
}

func (s *userService) Create(ctx context.Context, req request_models.CreateUserRequest) (*response_models.UserResponse, error) {
	if err := s.checkUniqueness(ctx, "", req.Username, req.Email, req.PhoneNumber); err != nil {
		return nil, err
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Log.Errorw("password hashing failed", "err", err)
		return nil, utils.ErrDatabaseError
	}

	id, err := s.userRepo.NextID(ctx)
	if err != nil {
		logger.Log.Errorw("user id generation failed", "err", err)
		return nil, utils.ErrDatabaseError
	}

	user := &db_models.User{
		ID:          id,
		Name:        req.Name,
		Username:    req.Username,
		Password:    hashed,
		Gender:      req.Gender,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Avatar:      req.Avatar,
	}
	cred := &db_models.Credential{
		Username:       req.Username,
		HashedPassword: hashed,
	}

	if err := s.userRepo.CreateWithCredential(ctx, user, cred); err != nil {
		logger.Log.Errorw("user create failed", "err", err, "username", req.Username)
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.NewUserResponse(user)
	return &resp, nil
}

// checkUniqueness rejects a username/email/phone already held by a row other
// than selfID.
func (s *userService) checkUniqueness(ctx context.Context, selfID, username string, email, phone *string) error {
	if username != "" {
		other, err := s.userRepo.FindBy(ctx, repositories.UserByUsername, username)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if other != nil && other.ID != selfID {
			return utils.ErrUserAlreadyExists
		}
	}
	if email != nil && *email != "" {
		other, err := s.userRepo.FindBy(ctx, repositories.UserByEmail, *email)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if other != nil && other.ID != selfID {
			return utils.ErrUserAlreadyExists
		}
	}
	if phone != nil && *phone != "" {
		other, err := s.userRepo.FindBy(ctx, repositories.UserByPhone, *phone)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if other != nil && other.ID != selfID {
			return utils.ErrUserAlreadyExists
		}
	}
	return nil
}

func (s *userService) Update(ctx context.Context, id string, req request_models.UpdateUserRequest) (*response_models.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("user lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	username := ""
	if req.Username != nil {
		username = *req.Username
	}
	if err := s.checkUniqueness(ctx, id, username, req.Email, req.PhoneNumber); err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Gender != nil {
		user.Gender = req.Gender
	}
	if req.Email != nil {
		user.Email = req.Email
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.Avatar != nil {
		user.Avatar = req.Avatar
	}
	if req.Theme != nil {
		user.Theme = *req.Theme
	}
	if req.Language != nil {
		user.Language = *req.Language
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		logger.Log.Errorw("user update failed", "err", err, "user_id", id)
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.NewUserResponse(user)
	return &resp, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("user lookup failed", "err", err)
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrUserNotFound
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		logger.Log.Errorw("user delete failed", "err", err, "user_id", id)
		return utils.ErrDatabaseError
	}
	logger.Log.Infow("user deleted", "user_id", id)
	return nil
}

func (s *userService) Trips(ctx context.Context, userID string) ([]*db_models.Trip, error) {
	if err := s.mustExist(ctx, userID); err != nil {
		return nil, err
	}
	trips, err := s.userRepo.TripsOfUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("user trips lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return trips, nil
}

func (s *userService) Bookings(ctx context.Context, userID string) ([]*db_models.Booking, error) {
	if err := s.mustExist(ctx, userID); err != nil {
		return nil, err
	}
	bookings, err := s.userRepo.BookingsOfUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("user bookings lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return bookings, nil
}

func (s *userService) FriendRequestsOf(ctx context.Context, userID string) ([]response_models.UserResponse, error) {
	if err := s.mustExist(ctx, userID); err != nil {
		return nil, err
	}
	users, err := s.userRepo.FriendRequestsOf(ctx, userID)
	if err != nil {
		logger.Log.Errorw("friend requests lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return response_models.NewUserResponses(users), nil
}

func (s *userService) FriendRequestsTo(ctx context.Context, userID string) ([]response_models.UserResponse, error) {
	if err := s.mustExist(ctx, userID); err != nil {
		return nil, err
	}
	users, err := s.userRepo.FriendRequestsTo(ctx, userID)
	if err != nil {
		logger.Log.Errorw("friend requests lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return response_models.NewUserResponses(users), nil
}

func (s *userService) ReviewedTrips(ctx context.Context, userID string) ([]*db_models.Trip, error) {
	if err := s.mustExist(ctx, userID); err != nil {
		return nil, err
	}
	trips, err := s.userRepo.ReviewedTrips(ctx, userID)
	if err != nil {
		logger.Log.Errorw("reviewed trips lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return trips, nil
}

func (s *userService) mustExist(ctx context.Context, userID string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("user lookup failed", "err", err)
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrUserNotFound
	}
	return nil
}
