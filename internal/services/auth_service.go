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

type AuthService interface {
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error)
	Register(ctx context.Context, req request_models.RegisterRequest) (*response_models.RegisterResponse, error)
	SocialLogin(ctx context.Context, req request_models.SocialLoginRequest) (*response_models.SocialLoginResponse, error)
}

type authService struct {
	userRepo repositories.UserRepository
	credRepo repositories.CredentialRepository
	tokens   *utils.TokenMaker
	verifier utils.SocialVerifier
}

func NewAuthService(
	userRepo repositories.UserRepository,
	credRepo repositories.CredentialRepository,
	tokens *utils.TokenMaker,
	verifier utils.SocialVerifier,
) AuthService {
	return &authService{
		userRepo: userRepo,
		credRepo: credRepo,
		tokens:   tokens,
		verifier: verifier,
	}
}

// Login checks the password against the credential row, then loads the
// profile row to fill the response. Unknown username and wrong password are
// indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error) {
	cred, err := s.credRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		logger.Log.Errorw("login credential lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	if cred == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(cred.HashedPassword, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindBy(ctx, repositories.UserByUsername, req.Username)
	if err != nil {
		logger.Log.Errorw("login profile lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		// Credential row without a profile row means a half-finished signup.
		// The password was right, so this is a missing account, not bad
		// credentials.
		return nil, utils.ErrUserNotFound
	}

	return s.loginResponse(user)
}

func (s *authService) loginResponse(user *db_models.User) (*response_models.LoginResponse, error) {
	token, err := s.tokens.CreateToken(user.Username, user.ID, user.Name)
	if err != nil {
		logger.Log.Errorw("token signing failed", "err", err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		UserID:      user.ID,
		Username:    user.Username,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Gender:      user.Gender,
		Theme:       user.Theme,
		Language:    user.Language,
	}, nil
}

// Register creates the credential row and the profile row in one
// transaction. Username and email must be unused; the phone number is only
// checked on the admin create path.
func (s *authService) Register(ctx context.Context, req request_models.RegisterRequest) (*response_models.RegisterResponse, error) {
	if taken, err := s.identityTaken(ctx, req.Username, req.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, utils.ErrUserAlreadyExists
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
	}
	cred := &db_models.Credential{
		Username:       req.Username,
		HashedPassword: hashed,
	}

	if err := s.userRepo.CreateWithCredential(ctx, user, cred); err != nil {
		logger.Log.Errorw("registration write failed", "err", err, "username", req.Username)
		return nil, utils.ErrDatabaseError
	}

	logger.Log.Infow("user registered", "user_id", id, "username", req.Username)
	return &response_models.RegisterResponse{
		Message:  "User registered successfully",
		Username: req.Username,
		UserID:   id,
	}, nil
}

func (s *authService) identityTaken(ctx context.Context, username string, email *string) (bool, error) {
	existing, err := s.userRepo.FindBy(ctx, repositories.UserByUsername, username)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	if existing != nil {
		return true, nil
	}

	if email != nil && *email != "" {
		existing, err = s.userRepo.FindBy(ctx, repositories.UserByEmail, *email)
		if err != nil {
			return false, utils.ErrDatabaseError
		}
		if existing != nil {
			return true, nil
		}
	}

	return false, nil
}

// SocialLogin verifies the provider token, then either logs the matching
// account in or returns the verified profile so the client can finish
// registration.
func (s *authService) SocialLogin(ctx context.Context, req request_models.SocialLoginRequest) (*response_models.SocialLoginResponse, error) {
	if req.Provider != "google" {
		return nil, utils.ErrInvalidInput
	}

	profile, err := s.verifier.Verify(ctx, req.Provider, req.Token)
	if err != nil {
		logger.Log.Warnw("social token rejected", "provider", req.Provider, "err", err)
		return nil, utils.ErrInvalidSocialToken
	}

	user, err := s.userRepo.FindBy(ctx, repositories.UserByEmail, profile.Email)
	if err != nil {
		logger.Log.Errorw("social login lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}

	if user == nil {
		return &response_models.SocialLoginResponse{
			IsNewUser: true,
			Message:   "Account not found, registration required",
			ProfileData: map[string]any{
				"email":   profile.Email,
				"name":    profile.Name,
				"picture": profile.Picture,
			},
		}, nil
	}

	cred, err := s.credRepo.FindByUsername(ctx, user.Username)
	if err != nil {
		logger.Log.Errorw("social login credential lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	if cred == nil {
		// Profile exists but the signup never finished; the client must
		// complete registration before logging in.
		return &response_models.SocialLoginResponse{
			IsNewUser: true,
			Message:   "Registration incomplete",
			Username:  user.Username,
			Name:      user.Name,
		}, nil
	}

	login, err := s.loginResponse(user)
	if err != nil {
		return nil, err
	}

	return &response_models.SocialLoginResponse{
		IsNewUser: false,
		Username:  user.Username,
		Name:      user.Name,
		Login:     login,
	}, nil
}
