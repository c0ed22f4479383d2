package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/pkg/utils"
)

func newAuthFixture(t *testing.T) (AuthService, *fakeUserRepo, *fakeCredRepo, *fakeVerifier) {
	t.Helper()
	userRepo := newFakeUserRepo()
	credRepo := newFakeCredRepo()
	verifier := &fakeVerifier{}
	tokens := utils.NewTokenMaker("test-secret", 30*time.Minute)
	return NewAuthService(userRepo, credRepo, tokens, verifier), userRepo, credRepo, verifier
}

func seedAccount(t *testing.T, userRepo *fakeUserRepo, credRepo *fakeCredRepo, username, password string) *db_models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	email := username + "@example.com"
	user := &db_models.User{
		ID:       utils.GenerateCode(utils.UserCodePrefix),
		Name:     "Test " + username,
		Username: username,
		Password: hash,
		Email:    &email,
	}
	userRepo.users[user.ID] = user
	credRepo.creds[username] = &db_models.Credential{Username: username, HashedPassword: hash}
	return user
}

func TestLogin(t *testing.T) {
	svc, userRepo, credRepo, _ := newAuthFixture(t)
	user := seedAccount(t, userRepo, credRepo, "alice", "secret123")

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"success", "alice", "secret123", nil},
		{"wrong password", "alice", "nope", utils.ErrInvalidCredentials},
		{"unknown user", "bob", "secret123", utils.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Login(context.Background(), request_models.LoginRequest{
				Username: tt.username,
				Password: tt.password,
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "bearer", resp.TokenType)
			assert.Equal(t, user.ID, resp.UserID)
			assert.Equal(t, "alice", resp.Username)
			assert.NotEmpty(t, resp.AccessToken)
		})
	}
}

func TestLoginCredentialWithoutProfile(t *testing.T) {
	svc, _, credRepo, _ := newAuthFixture(t)

	// A credential row with no matching user is a reachable half-finished
	// signup; the password checks out, so the account is reported missing.
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)
	credRepo.creds["ghost"] = &db_models.Credential{Username: "ghost", HashedPassword: hash}

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Username: "ghost", Password: "secret123",
	})
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}

func TestLoginTokenClaims(t *testing.T) {
	svc, userRepo, credRepo, _ := newAuthFixture(t)
	user := seedAccount(t, userRepo, credRepo, "alice", "secret123")

	resp, err := svc.Login(context.Background(), request_models.LoginRequest{
		Username: "alice", Password: "secret123",
	})
	require.NoError(t, err)

	claims, err := utils.NewTokenMaker("test-secret", 30*time.Minute).ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestRegister(t *testing.T) {
	svc, userRepo, credRepo, _ := newAuthFixture(t)

	resp, err := svc.Register(context.Background(), request_models.RegisterRequest{
		Username: "carol",
		Password: "secret123",
		Name:     "Carol",
	})
	require.NoError(t, err)
	assert.Equal(t, "carol", resp.Username)
	assert.Len(t, resp.UserID, 6)
	assert.Equal(t, "US", resp.UserID[:2])

	// Both rows written.
	user := userRepo.users[resp.UserID]
	require.NotNil(t, user)
	assert.NotEqual(t, "secret123", user.Password)
	require.NotNil(t, userRepo.creds["carol"])
	assert.NoError(t, utils.ComparePasswords(userRepo.creds["carol"].HashedPassword, "secret123"))
	_ = credRepo
}

func TestRegisterDuplicates(t *testing.T) {
	svc, userRepo, credRepo, _ := newAuthFixture(t)
	seedAccount(t, userRepo, credRepo, "alice", "secret123")

	email := "alice@example.com"
	tests := []struct {
		name string
		req  request_models.RegisterRequest
	}{
		{"duplicate username", request_models.RegisterRequest{Username: "alice", Password: "x12345", Name: "A"}},
		{"duplicate email", request_models.RegisterRequest{Username: "alice2", Password: "x12345", Name: "A", Email: &email}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, utils.ErrUserAlreadyExists)
		})
	}
}

func TestRegisterAllowsSharedPhone(t *testing.T) {
	svc, userRepo, credRepo, _ := newAuthFixture(t)
	phone := "0123456789"
	existing := seedAccount(t, userRepo, credRepo, "alice", "secret123")
	existing.PhoneNumber = &phone

	// Self-registration only guards username and email; the phone number is
	// enforced on the admin create path.
	resp, err := svc.Register(context.Background(), request_models.RegisterRequest{
		Username:    "carol",
		Password:    "secret123",
		Name:        "Carol",
		PhoneNumber: &phone,
	})
	require.NoError(t, err)
	assert.NotNil(t, userRepo.users[resp.UserID])
}

func TestSocialLogin(t *testing.T) {
	svc, userRepo, credRepo, verifier := newAuthFixture(t)
	seedAccount(t, userRepo, credRepo, "alice", "secret123")

	t.Run("known email logs in", func(t *testing.T) {
		verifier.profile = &utils.SocialProfile{Email: "alice@example.com", Name: "Alice"}
		verifier.err = nil

		resp, err := svc.SocialLogin(context.Background(), request_models.SocialLoginRequest{
			Provider: "google", Token: "tok",
		})
		require.NoError(t, err)
		assert.False(t, resp.IsNewUser)
		require.NotNil(t, resp.Login)
		assert.NotEmpty(t, resp.Login.AccessToken)
	})

	t.Run("unknown email needs registration", func(t *testing.T) {
		verifier.profile = &utils.SocialProfile{Email: "new@example.com", Name: "New"}
		verifier.err = nil

		resp, err := svc.SocialLogin(context.Background(), request_models.SocialLoginRequest{
			Provider: "google", Token: "tok",
		})
		require.NoError(t, err)
		assert.True(t, resp.IsNewUser)
		assert.Equal(t, "new@example.com", resp.ProfileData["email"])
		assert.Nil(t, resp.Login)
	})

	t.Run("unsupported provider rejected", func(t *testing.T) {
		verifier.calls = 0

		_, err := svc.SocialLogin(context.Background(), request_models.SocialLoginRequest{
			Provider: "facebook", Token: "tok",
		})
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
		assert.Zero(t, verifier.calls)
	})

	t.Run("bad token rejected", func(t *testing.T) {
		verifier.err = utils.ErrInvalidSocialToken

		_, err := svc.SocialLogin(context.Background(), request_models.SocialLoginRequest{
			Provider: "google", Token: "bad",
		})
		assert.ErrorIs(t, err, utils.ErrInvalidSocialToken)
	})
}
