package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Stack bundles what protected route groups need.
type Stack struct {
	JWTSecret string
	Actors    ActorLookup
	RBAC      RBACService
	Logger    *zap.Logger
}

// Protected authenticates the token, resolves the actor and scopes the
// logger, in that order.
func (s Stack) Protected() []gin.HandlerFunc {
	return []gin.HandlerFunc{
		AuthMiddleware(s.JWTSecret),
		ResolveActor(s.Actors),
		ContextLogger(s.Logger),
	}
}

// AdminOnly is Protected with flat {error} bodies, followed by RequireAdmin.
func (s Stack) AdminOnly() []gin.HandlerFunc {
	return []gin.HandlerFunc{
		FlatAuthMiddleware(s.JWTSecret),
		ResolveActor(s.Actors),
		ContextLogger(s.Logger),
		RequireAdmin(),
	}
}

func (s Stack) Can(resource, action string) gin.HandlerFunc {
	return RBACAuthorize(s.RBAC, resource, action)
}
