package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/contextutil"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ActorLookup loads the caller's profile by auth id.
type ActorLookup interface {
	ResolveActor(ctx context.Context, authID string) (contextutil.Actor, error)
}

// ResolveActor loads the profile of the authenticated caller once and puts
// it on the request context. Missing or inactive profiles are rejected;
// store failures answer 500.
func ResolveActor(lookup ActorLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		authID := c.GetString("user_id")
		if authID == "" {
			response.Fail(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		actor, err := lookup.ResolveActor(c.Request.Context(), authID)
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			if errors.Is(err, gorm.ErrRecordNotFound) || httpErr.Status < http.StatusInternalServerError {
				response.Fail(c, http.StatusUnauthorized, "Unauthorized")
				c.Abort()
				return
			}
			zap.L().Named("middleware.actor").Error("resolve actor failed",
				zap.String("auth_id", authID),
				zap.String("request_id", contextutil.GetRequestID(c.Request.Context())),
				zap.Error(err),
			)
			response.Fail(c, httpErr.Status, httpErr.Message)
			c.Abort()
			return
		}
		if !actor.Active {
			response.Fail(c, http.StatusForbidden, "Usuário inativo")
			c.Abort()
			return
		}

		c.Set("user_id_validated", actor.UserID)
		c.Set("role", actor.Role)

		c.Request = c.Request.WithContext(contextutil.WithActor(c.Request.Context(), actor))

		c.Next()
	}
}

// RequireAdmin answers 401 without an actor and 403 for non-admins.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := contextutil.GetActor(c.Request.Context())
		if !ok {
			response.Fail(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}
		if !actor.IsAdmin() {
			response.Fail(c, http.StatusForbidden, "Forbidden: Admins only")
			c.Abort()
			return
		}
		c.Next()
	}
}
