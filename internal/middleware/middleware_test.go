package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/domain"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/middleware"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

type fakeActors struct {
	ResolveFn func(ctx context.Context, authID string) (contextutil.Actor, error)
	calls     int
}

func (f *fakeActors) ResolveActor(ctx context.Context, authID string) (contextutil.Actor, error) {
	f.calls++
	return f.ResolveFn(ctx, authID)
}

type fakeRBAC struct {
	EnforceFn func(req domain.EnforceRequest) (bool, error)
}

func (f *fakeRBAC) Enforce(req domain.EnforceRequest) (bool, error) {
	return f.EnforceFn(req)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return tok
}

func TestAuthMiddleware(t *testing.T) {
	r := setupRouter()
	r.GET("/p", middleware.AuthMiddleware(testSecret), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("user_id")+"|"+c.GetString("role"))
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/p", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid bearer", func(t *testing.T) {
		tok := signToken(t, jwt.MapClaims{"user_id": "auth-1", "role": "admin", "exp": time.Now().Add(time.Minute).Unix()})
		req := httptest.NewRequest(http.MethodGet, "/p", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "auth-1|admin", w.Body.String())
	})

	t.Run("cookie token", func(t *testing.T) {
		tok := signToken(t, jwt.MapClaims{"user_id": "auth-2", "exp": time.Now().Add(time.Minute).Unix()})
		req := httptest.NewRequest(http.MethodGet, "/p", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: tok})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("expired", func(t *testing.T) {
		tok := signToken(t, jwt.MapClaims{"user_id": "auth-1", "exp": time.Now().Add(-time.Minute).Unix()})
		req := httptest.NewRequest(http.MethodGet, "/p", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token expired")
	})

	t.Run("wrong secret", func(t *testing.T) {
		tok, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": "x"}).SignedString([]byte("other"))
		req := httptest.NewRequest(http.MethodGet, "/p", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthMiddleware_RejectsRefreshToken(t *testing.T) {
	r := setupRouter()
	r.GET("/p", middleware.AuthMiddleware(testSecret), func(c *gin.Context) { c.Status(http.StatusOK) })

	tok := signToken(t, jwt.MapClaims{"user_id": "auth-1", "typ": "refresh", "exp": time.Now().Add(time.Hour).Unix()})
	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFlatAuthMiddleware(t *testing.T) {
	r := setupRouter()
	r.POST("/admin", middleware.FlatAuthMiddleware(testSecret), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
}

func withAuthID(authID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", authID)
		c.Next()
	}
}

func TestResolveActor(t *testing.T) {
	t.Run("stores actor once per request", func(t *testing.T) {
		actors := &fakeActors{ResolveFn: func(ctx context.Context, authID string) (contextutil.Actor, error) {
			assert.Equal(t, "auth-1", authID)
			return contextutil.Actor{AuthID: authID, UserID: "u-1", Role: contextutil.RoleUser, Active: true}, nil
		}}

		r := setupRouter()
		r.GET("/p", withAuthID("auth-1"), middleware.ResolveActor(actors), func(c *gin.Context) {
			actor, ok := contextutil.GetActor(c.Request.Context())
			assert.True(t, ok)
			c.String(http.StatusOK, actor.UserID)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/p", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "u-1", w.Body.String())
		assert.Equal(t, 1, actors.calls)
	})

	lookupErrors := []struct {
		name   string
		err    error
		status int
	}{
		{"unknown profile", gorm.ErrRecordNotFound, http.StatusUnauthorized},
		{"profile not found app error", apperror.New(apperror.CodeNotFound, "Usuário não encontrado", http.StatusNotFound), http.StatusUnauthorized},
		{"store outage", apperror.WithCause(apperror.ErrUpstream, errors.New("connection refused")), http.StatusInternalServerError},
		{"unexpected error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range lookupErrors {
		t.Run(tc.name, func(t *testing.T) {
			actors := &fakeActors{ResolveFn: func(ctx context.Context, authID string) (contextutil.Actor, error) {
				return contextutil.Actor{}, tc.err
			}}
			r := setupRouter()
			r.GET("/p", withAuthID("auth-1"), middleware.ResolveActor(actors), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/p", nil))
			assert.Equal(t, tc.status, w.Code)
		})
	}

	t.Run("inactive profile", func(t *testing.T) {
		actors := &fakeActors{ResolveFn: func(ctx context.Context, authID string) (contextutil.Actor, error) {
			return contextutil.Actor{UserID: "u-1", Active: false}, nil
		}}
		r := setupRouter()
		r.GET("/p", withAuthID("auth-1"), middleware.ResolveActor(actors), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/p", nil))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func withActor(actor *contextutil.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if actor != nil {
			c.Request = c.Request.WithContext(contextutil.WithActor(c.Request.Context(), *actor))
		}
		c.Next()
	}
}

func TestRequireAdmin(t *testing.T) {
	cases := []struct {
		name   string
		actor  *contextutil.Actor
		status int
		body   string
	}{
		{"no actor", nil, http.StatusUnauthorized, `{"error":"Unauthorized"}`},
		{"user role", &contextutil.Actor{Role: contextutil.RoleUser}, http.StatusForbidden, `{"error":"Forbidden: Admins only"}`},
		{"admin", &contextutil.Actor{Role: contextutil.RoleAdmin}, http.StatusOK, `ok`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouter()
			r.GET("/p", withActor(tc.actor), middleware.RequireAdmin(), func(c *gin.Context) {
				c.String(http.StatusOK, "ok")
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/p", nil))

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.body, w.Body.String())
		})
	}
}

func TestRBACAuthorize(t *testing.T) {
	rbac := &fakeRBAC{EnforceFn: func(req domain.EnforceRequest) (bool, error) {
		return req.Role == contextutil.RoleAdmin || req.Resource == domain.ResourceRoster, nil
	}}

	r := setupRouter()
	user := &contextutil.Actor{Role: contextutil.RoleUser}
	r.GET("/roster", withActor(user), middleware.RBACAuthorize(rbac, domain.ResourceRoster, domain.ActionRead), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/users", withActor(user), middleware.RBACAuthorize(rbac, domain.ResourceUser, domain.ActionRead), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/roster", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "user:read")
}

func TestCallbackSecret(t *testing.T) {
	r := setupRouter()
	r.POST("/open", middleware.CallbackSecret(""), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/closed", middleware.CallbackSecret("s3cret"), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/open", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/closed", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/closed", nil)
	req.Header.Set(middleware.CallbackSecretHeader, "s3cret")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestIdempotency(t *testing.T) {
	const ttl = time.Hour
	cacheKey := middleware.IdempotencyCacheKey("/disparar", "", "k-1")
	lockKey := cacheKey + ":lock"

	t.Run("stores first response", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(cacheKey, `{"status":200,"body":{"success":true}}`, ttl).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		r := setupRouter()
		r.POST("/disparar", middleware.Idempotency(rdb, ttl), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true})
		})

		req := httptest.NewRequest(http.MethodPost, "/disparar", strings.NewReader(`{}`))
		req.Header.Set(middleware.IdempotencyHeader, "k-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replays cached response", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).SetVal(`{"status":200,"body":{"success":true,"logs_criados":2}}`)

		called := false
		r := setupRouter()
		r.POST("/disparar", middleware.Idempotency(rdb, ttl), func(c *gin.Context) {
			called = true
		})

		req := httptest.NewRequest(http.MethodPost, "/disparar", nil)
		req.Header.Set(middleware.IdempotencyHeader, "k-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replay"))
		assert.JSONEq(t, `{"success":true,"logs_criados":2}`, w.Body.String())
	})

	t.Run("concurrent duplicate", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(false)

		r := setupRouter()
		r.POST("/disparar", middleware.Idempotency(rdb, ttl), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodPost, "/disparar", nil)
		req.Header.Set(middleware.IdempotencyHeader, "k-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("no key passes through", func(t *testing.T) {
		rdb, _ := redismock.NewClientMock()
		r := setupRouter()
		r.POST("/disparar", middleware.Idempotency(rdb, ttl), func(c *gin.Context) {
			c.Status(http.StatusCreated)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/disparar", nil))
		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestRateLimitByUser(t *testing.T) {
	r := setupRouter()
	r.GET("/p", withAuthID("auth-1"), middleware.RateLimitByUser(0.001, 1), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/p", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/p", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimitByIP_RetryAfter(t *testing.T) {
	r := setupRouter()
	r.GET("/p", middleware.RateLimitByIP(0.5, 1), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/p", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/p", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "2", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "TOO_MANY_REQUESTS")
}

func TestKeyedRateLimiter_ReusesKey(t *testing.T) {
	l := middleware.NewKeyedRateLimiter(1, 1)
	assert.Same(t, l.Limiter("a"), l.Limiter("a"))
	l.Limiter("b")
	assert.Equal(t, 2, l.Len())
}

func TestRequestID(t *testing.T) {
	r := setupRouter()
	r.Use(middleware.RequestID())
	r.GET("/p", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	t.Run("keeps a well formed id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/p", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		r.ServeHTTP(w, req)
		assert.Equal(t, "abc-123", w.Body.String())
		assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	})

	t.Run("replaces junk", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/p", nil)
		req.Header.Set("X-Request-ID", "bad id\ninjected")
		r.ServeHTTP(w, req)
		assert.NotEqual(t, "bad id\ninjected", w.Body.String())
		assert.Len(t, w.Body.String(), 36)
	})
}
