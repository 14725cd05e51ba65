package middleware

import (
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextLogger puts a logger tagged with the request id and the resolved
// actor on the request context. It runs after ResolveActor.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if contextutil.GetRequestID(ctx) == "" {
			rid := uuid.NewString()
			c.Header(requestIDHeader, rid)
			ctx = contextutil.WithRequestID(ctx, rid)
		}

		md := contextutil.ExtractMetadata(ctx)
		reqLogger := logger.With(md.Fields()...)
		c.Request = c.Request.WithContext(contextutil.WithLogger(ctx, reqLogger))

		c.Next()
	}
}
