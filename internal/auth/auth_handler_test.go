package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/auth"
	autherrors "github.com/lFelipelalves/Crm-Wsc-Clean/internal/auth/errors"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeAuthService struct {
	LoginFn          func(ctx context.Context, email, password string) (auth.TokenPair, auth.AuthResponse, error)
	RefreshTokenFn   func(ctx context.Context, token string) (auth.TokenPair, auth.AuthResponse, error)
	MeFn             func(ctx context.Context, authID string) (auth.AuthResponse, error)
	CreateIdentityFn func(ctx context.Context, email, password string) (string, error)
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (auth.TokenPair, auth.AuthResponse, error) {
	return f.LoginFn(ctx, email, password)
}
func (f *fakeAuthService) RefreshToken(ctx context.Context, token string) (auth.TokenPair, auth.AuthResponse, error) {
	return f.RefreshTokenFn(ctx, token)
}
func (f *fakeAuthService) Me(ctx context.Context, authID string) (auth.AuthResponse, error) {
	return f.MeFn(ctx, authID)
}
func (f *fakeAuthService) CreateIdentity(ctx context.Context, email, password string) (string, error) {
	return f.CreateIdentityFn(ctx, email, password)
}

func setupRouter(h *auth.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.POST("/auth/refresh", h.RefreshToken)
	r.POST("/auth/logout", h.Logout)
	return r
}

func TestHandler_Login_WebSetsCookies(t *testing.T) {
	svc := &fakeAuthService{LoginFn: func(ctx context.Context, email, password string) (auth.TokenPair, auth.AuthResponse, error) {
		return auth.TokenPair{AccessToken: "acc", RefreshToken: "ref"}, auth.AuthResponse{Email: email, Role: "user"}, nil
	}}
	r := setupRouter(auth.NewHandler(svc, false))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@b.com","password":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Client-Type", "web")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	names := map[string]string{}
	for _, c := range cookies {
		names[c.Name] = c.Value
	}
	assert.Equal(t, "acc", names["access_token"])
	assert.Equal(t, "ref", names["refresh_token"])
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	svc := &fakeAuthService{LoginFn: func(ctx context.Context, email, password string) (auth.TokenPair, auth.AuthResponse, error) {
		return auth.TokenPair{}, auth.AuthResponse{}, autherrors.ErrInvalidCredentials
	}}
	r := setupRouter(auth.NewHandler(svc, false))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@b.com","password":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestHandler_Refresh_WebWithoutCookie(t *testing.T) {
	r := setupRouter(auth.NewHandler(&fakeAuthService{}, false))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.Header.Set("X-Client-Type", "web")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Missing refresh token")
}

func TestHandler_Refresh_APIBody(t *testing.T) {
	svc := &fakeAuthService{RefreshTokenFn: func(ctx context.Context, token string) (auth.TokenPair, auth.AuthResponse, error) {
		assert.Equal(t, "ref", token)
		return auth.TokenPair{AccessToken: "acc2", RefreshToken: "ref2"}, auth.AuthResponse{}, nil
	}}
	r := setupRouter(auth.NewHandler(svc, false))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(`{"refresh_token":"ref"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Client-Type", "api")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "acc2")
}

func TestHandler_Logout_ClearsCookies(t *testing.T) {
	r := setupRouter(auth.NewHandler(&fakeAuthService{}, true))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	for _, c := range w.Result().Cookies() {
		assert.Equal(t, -1, c.MaxAge)
		assert.True(t, c.Secure)
	}
}
