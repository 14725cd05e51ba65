package middleware

import (
	"net/http"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/domain"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/contextutil"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService is satisfied by anything that can answer an EnforceRequest.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

// RBACAuthorize checks the resolved actor's role against resource/action.
func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := contextutil.GetActor(c.Request.Context())
		if !ok {
			response.Fail(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			Role:     actor.Role,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			response.FailFromError(c, apperror.WithCause(apperror.ErrInternal, err))
			c.Abort()
			return
		}

		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{
				"error":    apperror.ErrForbidden.Message,
				"code":     apperror.ErrForbidden.Code,
				"required": resource + ":" + action,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
