package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/pkg/utils"
)

type fakeAuthService struct {
	loginResp  *response_models.LoginResponse
	loginErr   error
	registered *request_models.RegisterRequest
}

func (f *fakeAuthService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginResp, nil
}

func (f *fakeAuthService) Register(ctx context.Context, req request_models.RegisterRequest) (*response_models.RegisterResponse, error) {
	f.registered = &req
	return &response_models.RegisterResponse{
		Message:  "User registered successfully",
		Username: req.Username,
		UserID:   "US1234",
	}, nil
}

func (f *fakeAuthService) SocialLogin(ctx context.Context, req request_models.SocialLoginRequest) (*response_models.SocialLoginResponse, error) {
	return &response_models.SocialLoginResponse{IsNewUser: true}, nil
}

func newAuthRouter(svc *fakeAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewAuthController(svc)
	r := gin.New()
	r.POST("/login", ctrl.Login)
	r.POST("/register", ctrl.Register)
	r.POST("/social-login", ctrl.SocialLogin)
	return r
}

func TestAuthLoginForm(t *testing.T) {
	svc := &fakeAuthService{loginResp: &response_models.LoginResponse{
		AccessToken: "tok", TokenType: "bearer", UserID: "US0001", Username: "alice",
	}}
	r := newAuthRouter(svc)

	form := url.Values{"username": {"alice"}, "password": {"secret123"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	data := body.Data.(map[string]interface{})
	assert.Equal(t, "tok", data["access_token"])
	assert.Equal(t, "bearer", data["token_type"])
}

func TestAuthLoginFailures(t *testing.T) {
	tests := []struct {
		name       string
		svc        *fakeAuthService
		form       url.Values
		wantStatus int
	}{
		{
			"bad credentials",
			&fakeAuthService{loginErr: utils.ErrInvalidCredentials},
			url.Values{"username": {"alice"}, "password": {"wrong"}},
			http.StatusUnauthorized,
		},
		{
			"missing password",
			&fakeAuthService{},
			url.Values{"username": {"alice"}},
			http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newAuthRouter(tt.svc)
			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)

			var body utils.APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "error", body.Status)
		})
	}
}

func TestAuthRegister(t *testing.T) {
	svc := &fakeAuthService{}
	r := newAuthRouter(svc)

	payload := `{"username":"carol","password":"secret123","name":"Carol"}`
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.registered)
	assert.Equal(t, "carol", svc.registered.Username)
}

func TestAuthRegisterBadPayload(t *testing.T) {
	r := newAuthRouter(&fakeAuthService{})

	// Password below the minimum length fails binding before the service runs.
	payload := `{"username":"carol","password":"x","name":"Carol"}`
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
