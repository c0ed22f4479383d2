package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmate/internal/models/db_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

type stubUserRepo struct {
	user *db_models.User
}

func (s *stubUserRepo) List(ctx context.Context) ([]*db_models.User, error) { return nil, nil }

func (s *stubUserRepo) FindByID(ctx context.Context, id string) (*db_models.User, error) {
	return nil, nil
}

func (s *stubUserRepo) FindBy(ctx context.Context, field repositories.UserLookupField, lookup string) (*db_models.User, error) {
	if s.user != nil && field == repositories.UserByUsername && s.user.Username == lookup {
		return s.user, nil
	}
	return nil, nil
}

func (s *stubUserRepo) CreateWithCredential(ctx context.Context, user *db_models.User, cred *db_models.Credential) error {
	return nil
}

func (s *stubUserRepo) Insert(ctx context.Context, user *db_models.User) error { return nil }
func (s *stubUserRepo) Update(ctx context.Context, user *db_models.User) error { return nil }
func (s *stubUserRepo) Delete(ctx context.Context, id string) error            { return nil }
func (s *stubUserRepo) NextID(ctx context.Context) (string, error)             { return "US0000", nil }

func (s *stubUserRepo) TripsOfUser(ctx context.Context, userID string) ([]*db_models.Trip, error) {
	return nil, nil
}

func (s *stubUserRepo) BookingsOfUser(ctx context.Context, userID string) ([]*db_models.Booking, error) {
	return nil, nil
}

func (s *stubUserRepo) FriendRequestsOf(ctx context.Context, userID string) ([]*db_models.User, error) {
	return nil, nil
}

func (s *stubUserRepo) FriendRequestsTo(ctx context.Context, userID string) ([]*db_models.User, error) {
	return nil, nil
}

func (s *stubUserRepo) ReviewedTrips(ctx context.Context, userID string) ([]*db_models.Trip, error) {
	return nil, nil
}

func newAuthedRouter(t *testing.T, tokens *utils.TokenMaker, repo *stubUserRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", JWTAuthMiddleware(tokens, repo), func(c *gin.Context) {
		user, ok := CurrentUser(c)
		require.True(t, ok)
		c.String(http.StatusOK, user.ID)
	})
	return r
}

func TestJWTAuthMiddleware(t *testing.T) {
	tokens := utils.NewTokenMaker("test-secret", 30*time.Minute)
	repo := &stubUserRepo{user: &db_models.User{ID: "US0001", Username: "alice"}}
	r := newAuthedRouter(t, tokens, repo)

	valid, err := tokens.CreateToken("alice", "US0001", "Alice")
	require.NoError(t, err)
	stale, err := tokens.CreateToken("ghost", "US0002", "Ghost")
	require.NoError(t, err)
	foreign, err := utils.NewTokenMaker("other-secret", 30*time.Minute).CreateToken("alice", "US0001", "Alice")
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid token", "Bearer " + valid, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + foreign, http.StatusUnauthorized},
		{"subject no longer exists", "Bearer " + stale, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
			} else {
				assert.Equal(t, "US0001", w.Body.String())
			}
		})
	}
}

func TestCurrentUserUnset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := CurrentUser(c)
	assert.False(t, ok)
}
